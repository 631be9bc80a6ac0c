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

package scope_test

import (
	"testing"

	"github.com/benasher44/eslint-plugin-react/internal/report"
	. "github.com/benasher44/eslint-plugin-react/internal/scope"
)

func TestLookupInnermostWins(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	r.Enter(0)
	r.Record("a", report.KindArray)

	r.Enter(10)
	r.Record("a", report.KindObject)

	if kind, ok := r.Lookup("a"); !ok || kind != report.KindObject {
		t.Errorf("inner lookup = %v, %t; want object binding", kind, ok)
	}

	r.Leave()

	if kind, ok := r.Lookup("a"); !ok || kind != report.KindArray {
		t.Errorf("outer lookup = %v, %t; want array binding", kind, ok)
	}
}

func TestLookupWalksUp(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	r.Enter(0)
	r.Record("style", report.KindObject)

	r.Enter(10)
	r.Enter(20)

	if kind, ok := r.Lookup("style"); !ok || kind != report.KindObject {
		t.Errorf("lookup = %v, %t; want binding from outermost block", kind, ok)
	}
}

func TestSiblingBlocksIsolated(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	r.Enter(0)

	r.Enter(10)
	r.Record("b", report.KindArray)
	r.Leave()

	r.Enter(20)

	if _, ok := r.Lookup("b"); ok {
		t.Error("binding from a closed sibling block resolved")
	}
}

func TestRebindingOverwrites(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	r.Enter(0)
	r.Record("a", report.KindArray)
	r.Record("a", report.KindObject)

	if kind, ok := r.Lookup("a"); !ok || kind != report.KindObject {
		t.Errorf("lookup = %v, %t; want the later binding", kind, ok)
	}
}

func TestLookupOutsideBlocks(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	if _, ok := r.Lookup("a"); ok {
		t.Error("lookup with no open block resolved a binding")
	}

	if r.Open() {
		t.Error("fresh registry reports an open block")
	}
}

func TestLookupUnboundName(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Enter(0)

	if _, ok := r.Lookup("missing"); ok {
		t.Error("unbound name resolved")
	}
}

func wantPanic(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()

	f()
}

func TestTraversalDefects(t *testing.T) {
	t.Parallel()

	t.Run("EnterTwice", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		r.Enter(0)

		wantPanic(t, func() { r.Enter(0) })
	})

	t.Run("LeaveWithoutEnter", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()

		wantPanic(t, r.Leave)
	})

	t.Run("RecordOutsideBlock", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()

		wantPanic(t, func() { r.Record("a", report.KindArray) })
	})
}
