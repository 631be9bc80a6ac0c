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

package syntax

import sitter "github.com/smacker/go-tree-sitter"

// Node is one node of a parsed tree. Node values are cheap to copy and
// remain valid until the owning [Tree] is closed.
//
// The zero Node marks absence. It is safe to use: its kind and text are
// empty, its counts are zero, and its children and parent are absent
// again. Check [Node.Exists] where presence matters.
type Node struct {
	inner *sitter.Node
	src   []byte
}

// Exists reports whether the node is present.
func (n Node) Exists() bool {
	return n.inner != nil
}

// Kind returns the grammar production name of the node.
func (n Node) Kind() string {
	if n.inner == nil {
		return ""
	}

	return n.inner.Type()
}

// Text returns the source text covered by the node.
func (n Node) Text() string {
	if n.inner == nil {
		return ""
	}

	return string(n.src[n.inner.StartByte():n.inner.EndByte()])
}

// StartByte returns the source offset of the node's first byte. It is
// unique per node within a file and serves as a stable node identity.
func (n Node) StartByte() uint32 {
	if n.inner == nil {
		return 0
	}

	return n.inner.StartByte()
}

// Start returns the 1-based position of the node's first character.
func (n Node) Start() Position {
	if n.inner == nil {
		return Position{}
	}

	p := n.inner.StartPoint()

	return Position{Line: int(p.Row) + 1, Col: int(p.Column) + 1}
}

// End returns the 1-based position one past the node's last character.
func (n Node) End() Position {
	if n.inner == nil {
		return Position{}
	}

	p := n.inner.EndPoint()

	return Position{Line: int(p.Row) + 1, Col: int(p.Column) + 1}
}

// Parent returns the node's parent, which does not exist for the root.
func (n Node) Parent() Node {
	if n.inner == nil {
		return Node{}
	}

	return n.wrap(n.inner.Parent())
}

// Child returns the i-th child, counting anonymous tokens.
func (n Node) Child(i int) Node {
	if n.inner == nil {
		return Node{}
	}

	return n.wrap(n.inner.Child(i))
}

// ChildCount returns the number of children, counting anonymous tokens.
func (n Node) ChildCount() int {
	if n.inner == nil {
		return 0
	}

	return int(n.inner.ChildCount())
}

// NamedChild returns the i-th named child, skipping anonymous tokens.
func (n Node) NamedChild(i int) Node {
	if n.inner == nil {
		return Node{}
	}

	return n.wrap(n.inner.NamedChild(i))
}

// NamedChildCount returns the number of named children.
func (n Node) NamedChildCount() int {
	if n.inner == nil {
		return 0
	}

	return int(n.inner.NamedChildCount())
}

// Field returns the child occupying the given grammar field.
func (n Node) Field(name string) Node {
	if n.inner == nil {
		return Node{}
	}

	return n.wrap(n.inner.ChildByFieldName(name))
}

// IsNamed reports whether the node is a named grammar production rather
// than an anonymous token.
func (n Node) IsNamed() bool {
	return n.inner != nil && n.inner.IsNamed()
}

// IsMissing reports whether the node was inserted by error recovery.
func (n Node) IsMissing() bool {
	return n.inner != nil && n.inner.IsMissing()
}

func (n Node) wrap(inner *sitter.Node) Node {
	if inner == nil {
		return Node{}
	}

	return Node{inner: inner, src: n.src}
}

// Position is a 1-based line and column in a source file.
type Position struct {
	Line int
	Col  int
}
