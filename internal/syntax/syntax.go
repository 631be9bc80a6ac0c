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

// Package syntax wraps the tree-sitter JavaScript grammar behind a small
// tree API.
//
// The grammar parses plain JavaScript and JSX alike, so one [Parse] covers
// every source file the linter accepts. Nodes are identified by their
// grammar production name (see the Kind constants); positions are 1-based
// lines and columns.
//
// tree-sitter is error-tolerant: [Parse] fails only on invalid input
// encoding or cancellation, never on syntax errors. Callers that need a
// well-formed tree check [Tree.HasError] first.
package syntax

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// ErrInvalidEncoding is returned for source that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("source is not valid UTF-8")

// Tree is one parsed source file. It owns the source bytes for the lifetime
// of the tree; call [Tree.Close] to release the underlying parse tree.
type Tree struct {
	inner *sitter.Tree
	src   []byte
}

// Parse parses JavaScript or JSX source. Each call creates its own
// tree-sitter parser instance, so Parse is safe for concurrent use.
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	if !utf8.Valid(src) {
		return nil, ErrInvalidEncoding
	}

	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return &Tree{inner: tree, src: src}, nil
}

// Close releases the underlying parse tree. The tree and all nodes obtained
// from it must not be used afterwards.
func (t *Tree) Close() {
	t.inner.Close()
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return Node{inner: t.inner.RootNode(), src: t.src}
}

// HasError reports whether the parse produced any error or missing nodes.
func (t *Tree) HasError() bool {
	return t.inner.RootNode().HasError()
}

// FirstError returns the first error or missing node in the tree, if any.
func (t *Tree) FirstError() (Node, bool) {
	return firstError(t.Root())
}

func firstError(n Node) (Node, bool) {
	if n.Kind() == KindError || n.IsMissing() {
		return n, true
	}

	for i := range n.ChildCount() {
		c := n.Child(i)
		if !c.inner.HasError() {
			continue
		}

		if e, ok := firstError(c); ok {
			return e, true
		}
	}

	return Node{}, false
}

// Comments yields every comment node of the tree in source order.
func (t *Tree) Comments() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		comments(t.Root(), yield)
	}
}

func comments(n Node, yield func(Node) bool) bool {
	if n.Kind() == KindComment {
		return yield(n)
	}

	for i := range n.NamedChildCount() {
		if !comments(n.NamedChild(i), yield) {
			return false
		}
	}

	return true
}
