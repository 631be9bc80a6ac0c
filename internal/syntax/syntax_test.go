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

package syntax_test

import (
	"context"
	"testing"

	. "github.com/benasher44/eslint-plugin-react/internal/syntax"
	"github.com/benasher44/eslint-plugin-react/internal/syntax/syntaxtest"
)

func TestParsePositions(t *testing.T) {
	t.Parallel()

	tree := syntaxtest.Parse(t, "const a = 1;\nconst b = 2;\n")

	root := tree.Root()
	if root.Kind() != KindProgram {
		t.Fatalf("root kind = %q, want %q", root.Kind(), KindProgram)
	}

	if root.NamedChildCount() != 2 {
		t.Fatalf("program has %d statements, want 2", root.NamedChildCount())
	}

	second := root.NamedChild(1)
	if got := second.Start(); got.Line != 2 || got.Col != 1 {
		t.Errorf("second statement starts at %d:%d, want 2:1", got.Line, got.Col)
	}

	if got := second.Text(); got != "const b = 2;" {
		t.Errorf("second statement text = %q", got)
	}
}

func TestDeclarationKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		kind string
		want DeclKind
	}{
		{name: "Const", src: "const a = [];", kind: KindLexicalDeclaration, want: DeclConst},
		{name: "Let", src: "let a = [];", kind: KindLexicalDeclaration, want: DeclLet},
		{name: "Var", src: "var a = [];", kind: KindVariableDeclaration, want: DeclVar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := syntaxtest.Parse(t, tt.src)
			decl := syntaxtest.FirstOfKind(t, tree, tt.kind)

			if got := DeclarationKind(decl); got != tt.want {
				t.Errorf("DeclarationKind(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestUnparenthesize(t *testing.T) {
	t.Parallel()

	tree := syntaxtest.ParseFragment(t, "const a = (([1]));")

	decl := syntaxtest.FirstOfKind(t, tree, KindVariableDeclarator)

	value := decl.Field(FieldValue)
	if value.Kind() != KindParenthesized {
		t.Fatalf("initializer kind = %q, want %q", value.Kind(), KindParenthesized)
	}

	inner := Unparenthesize(value)
	if inner.Kind() != KindArray {
		t.Errorf("Unparenthesize kind = %q, want %q", inner.Kind(), KindArray)
	}
}

func TestExpressionAt(t *testing.T) {
	t.Parallel()

	tree := syntaxtest.ParseFragment(t, "return f(a, /* skip */ b);")

	call := syntaxtest.FirstOfKind(t, tree, KindCall)
	args := call.Field(FieldArguments)

	if got := ExpressionAt(args, 0).Text(); got != "a" {
		t.Errorf("argument 0 = %q, want %q", got, "a")
	}

	if got := ExpressionAt(args, 1).Text(); got != "b" {
		t.Errorf("argument 1 = %q, want %q", got, "b")
	}

	if ExpressionAt(args, 2).Exists() {
		t.Error("argument 2 should not exist")
	}
}

func TestStringContent(t *testing.T) {
	t.Parallel()

	tree := syntaxtest.Parse(t, `f('div');`)

	str := syntaxtest.FirstOfKind(t, tree, KindString)
	if got := StringContent(str); got != "div" {
		t.Errorf("StringContent = %q, want %q", got, "div")
	}
}

func TestJSXAttribute(t *testing.T) {
	t.Parallel()

	tree := syntaxtest.ParseFragment(t, "return <App style={[1, 2]} disabled />;")

	element := syntaxtest.FirstOfKind(t, tree, KindJSXSelfClosingElement)
	if got := JSXTagName(element).Text(); got != "App" {
		t.Errorf("JSXTagName = %q, want %q", got, "App")
	}

	attr := syntaxtest.FirstOfKind(t, tree, KindJSXAttribute)
	if got := JSXAttributeName(attr).Text(); got != "style" {
		t.Errorf("JSXAttributeName = %q, want %q", got, "style")
	}

	value := JSXAttributeValue(attr)
	if value.Kind() != KindJSXExpression {
		t.Fatalf("value kind = %q, want %q", value.Kind(), KindJSXExpression)
	}

	if got := Expression(value).Kind(); got != KindArray {
		t.Errorf("expression kind = %q, want %q", got, KindArray)
	}
}

func TestJSXBareAttribute(t *testing.T) {
	t.Parallel()

	tree := syntaxtest.ParseFragment(t, "return <input disabled />;")

	attr := syntaxtest.FirstOfKind(t, tree, KindJSXAttribute)
	if JSXAttributeValue(attr).Exists() {
		t.Error("bare attribute should have no value")
	}
}

func TestJSXAttributeCommentedValue(t *testing.T) {
	t.Parallel()

	tree := syntaxtest.ParseFragment(t, "return <App tags=/* list */{[1]} />;")

	attr := syntaxtest.FirstOfKind(t, tree, KindJSXAttribute)
	if got := JSXAttributeName(attr).Text(); got != "tags" {
		t.Errorf("JSXAttributeName = %q, want %q", got, "tags")
	}

	if got := JSXAttributeValue(attr).Kind(); got != KindJSXExpression {
		t.Errorf("value kind = %q, want %q", got, KindJSXExpression)
	}
}

func TestComments(t *testing.T) {
	t.Parallel()

	tree := syntaxtest.Parse(t, "// first\nconst a = 1; // second\n/* third */\n")

	var lines []int
	for c := range tree.Comments() {
		lines = append(lines, c.Start().Line)
	}

	want := []int{1, 2, 3}
	if len(lines) != len(want) {
		t.Fatalf("found %d comments, want %d", len(lines), len(want))
	}

	for i, line := range lines {
		if line != want[i] {
			t.Errorf("comment %d on line %d, want %d", i, line, want[i])
		}
	}
}

func TestFirstError(t *testing.T) {
	t.Parallel()

	tree, err := Parse(context.Background(), []byte("function f( {\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	t.Cleanup(tree.Close)

	if !tree.HasError() {
		t.Fatal("expected a parse error")
	}

	if _, ok := tree.FirstError(); !ok {
		t.Error("FirstError found nothing in a broken tree")
	}
}

func TestParseInvalidEncoding(t *testing.T) {
	t.Parallel()

	if _, err := Parse(context.Background(), []byte{0xff, 0xfe}); err == nil {
		t.Error("expected an encoding error")
	}
}

type blockCounter struct {
	enters int
	leaves int
	skip   bool
	inner  int
}

func (b *blockCounter) Enter(n Node) bool {
	switch n.Kind() {
	case KindStatementBlock:
		b.enters++

		return !b.skip

	case KindLexicalDeclaration:
		b.inner++
	}

	return true
}

func (b *blockCounter) Leave(n Node) {
	if n.Kind() == KindStatementBlock {
		b.leaves++
	}
}

func TestWalkBalanced(t *testing.T) {
	t.Parallel()

	tree := syntaxtest.Parse(t, "function f() { if (x) { const a = 1; } }")

	c := &blockCounter{}
	Walk(c, tree.Root())

	if c.enters != 2 || c.leaves != 2 {
		t.Errorf("enters/leaves = %d/%d, want 2/2", c.enters, c.leaves)
	}

	if c.inner != 1 {
		t.Errorf("declarations seen = %d, want 1", c.inner)
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	t.Parallel()

	tree := syntaxtest.Parse(t, "function f() { const a = 1; }")

	c := &blockCounter{skip: true}
	Walk(c, tree.Root())

	if c.leaves != 0 {
		t.Errorf("leaves = %d, want 0 when subtree skipped", c.leaves)
	}

	if c.inner != 0 {
		t.Errorf("declarations seen = %d, want 0 when subtree skipped", c.inner)
	}
}
