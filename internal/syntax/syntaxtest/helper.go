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

// Package syntaxtest provides utilities for parsing JavaScript and JSX
// source in tests.
//
// It is designed to simplify testing of the analysis packages by handling
// the common boilerplate of parsing, error checking and tree cleanup.
package syntaxtest

import (
	"context"
	"strings"
	"testing"

	"github.com/benasher44/eslint-plugin-react/internal/syntax"
)

// Parse parses a complete JavaScript or JSX source file and fails the test
// on invalid syntax. The tree is closed automatically when the test ends.
func Parse(tb testing.TB, src string) *syntax.Tree {
	tb.Helper()

	tree, err := syntax.Parse(context.Background(), []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	tb.Cleanup(tree.Close)

	if n, ok := tree.FirstError(); ok {
		tb.Fatalf("Source %q has a syntax error at %d:%d", src, n.Start().Line, n.Start().Col)
	}

	return tree
}

// ParseFragment wraps src in a component function body and parses it. This
// allows testing statement-level fragments without manually constructing
// the surrounding function scaffolding. The wrapper occupies line 1, so
// fragment line numbers are shifted by one.
func ParseFragment(tb testing.TB, src string) *syntax.Tree {
	tb.Helper()

	var b strings.Builder
	b.Grow(len(src) + 32)

	b.WriteString("function Component() {\n") // ignore error
	b.WriteString(src)                        // ignore error
	b.WriteString("\n}\n")                    // ignore error

	return Parse(tb, b.String())
}

// FirstOfKind returns the first node of the given kind in pre-order and
// fails the test when the tree has none.
func FirstOfKind(tb testing.TB, tree *syntax.Tree, kind string) syntax.Node {
	tb.Helper()

	f := finder{kind: kind}
	syntax.Walk(&f, tree.Root())

	if !f.found.Exists() {
		tb.Fatalf("No %s node in tree", kind)
	}

	return f.found
}

type finder struct {
	kind  string
	found syntax.Node
}

func (f *finder) Enter(n syntax.Node) bool {
	if f.found.Exists() {
		return false
	}

	if n.Kind() == f.kind {
		f.found = n

		return false
	}

	return true
}

func (f *finder) Leave(syntax.Node) {}
