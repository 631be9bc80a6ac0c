// Copyright 2026 Ben Asher. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package scope tracks lexical block nesting and constant bindings during
// a single traversal of one source file.
//
// The registry is an arena of block records. Entering a block appends a
// record whose parent is the block currently on top of the open stack, so
// the parent chain of any record reproduces the lexical nesting at the
// moment the block was entered. Records are never removed: a binding
// recorded in a closed block stays addressable, but is unreachable from
// later lookups because no open chain leads to it.
package scope

import "github.com/benasher44/eslint-plugin-react/internal/report"

// Ref addresses a block record within a registry.
type Ref int32

// None is the parent of top-level blocks.
const None Ref = -1

type record struct {
	parent   Ref
	bindings map[string]report.Kind
}

// Registry records which constants are bound to allocation literals,
// block by block. The zero value is not usable; call [NewRegistry].
//
// All methods must be called from a single goroutine, interleaved with
// the traversal: Enter when a block opens, Leave when it closes, Record
// and Lookup only while the enclosing blocks are open.
type Registry struct {
	arena   []record
	open    []Ref
	entered map[uint32]struct{}
}

// NewRegistry creates an empty registry for one file.
func NewRegistry() *Registry {
	return &Registry{entered: make(map[uint32]struct{})}
}

// Enter opens a block and returns its record's ref. The start offset
// identifies the block node; entering the same block twice is a defect
// in the traversal and panics.
func (r *Registry) Enter(start uint32) Ref {
	if _, ok := r.entered[start]; ok {
		panic("scope entered twice")
	}
	r.entered[start] = struct{}{}

	parent := None
	if len(r.open) > 0 {
		parent = r.open[len(r.open)-1]
	}

	ref := Ref(len(r.arena))
	r.arena = append(r.arena, record{parent: parent})
	r.open = append(r.open, ref)

	return ref
}

// Leave closes the innermost open block. Leaving with no block open is a
// defect in the traversal and panics.
func (r *Registry) Leave() {
	if len(r.open) == 0 {
		panic("no open scope")
	}

	r.open = r.open[:len(r.open)-1]
}

// Open reports whether any block is currently open.
func (r *Registry) Open() bool {
	return len(r.open) > 0
}

// Record binds name to an allocation kind in the innermost open block.
// Rebinding a name in the same block overwrites the earlier entry.
// Recording with no block open is a defect in the traversal and panics.
func (r *Registry) Record(name string, kind report.Kind) {
	if len(r.open) == 0 {
		panic("no open scope")
	}

	rec := &r.arena[r.open[len(r.open)-1]]
	if rec.bindings == nil {
		rec.bindings = make(map[string]report.Kind)
	}
	rec.bindings[name] = kind
}

// Lookup resolves name against the chain of open blocks, innermost
// first. The first block that binds the name wins; blocks above it are
// not consulted. Outside any block, or when no open block binds the
// name, the second result is false.
func (r *Registry) Lookup(name string) (report.Kind, bool) {
	if len(r.open) == 0 {
		return 0, false
	}

	for ref := r.open[len(r.open)-1]; ref != None; ref = r.arena[ref].parent {
		if kind, ok := r.arena[ref].bindings[name]; ok {
			return kind, true
		}
	}

	return 0, false
}
