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

// Expression returns the first named child of n that is not a comment.
// jsx_expression and parenthesized_expression nodes wrap their payload this
// way.
func Expression(n Node) Node {
	return ExpressionAt(n, 0)
}

// ExpressionAt returns named child i of n, not counting comments. Comments
// are grammar extras and can sit between any two tokens, so counting them
// would let a stray comment shift every later child by one slot.
func ExpressionAt(n Node, i int) Node {
	for j := range n.NamedChildCount() {
		c := n.NamedChild(j)
		if c.Kind() == KindComment {
			continue
		}

		if i == 0 {
			return c
		}
		i--
	}

	return Node{}
}

// Unparenthesize returns the expression inside any nesting of parentheses.
// The ESTree source model has no parenthesis nodes, so parentheses must be
// transparent to classification.
func Unparenthesize(n Node) Node {
	for n.Exists() && n.Kind() == KindParenthesized {
		n = Expression(n)
	}

	return n
}

// StringContent returns the text of a string literal without its quotes.
func StringContent(n Node) string {
	for i := range n.NamedChildCount() {
		if c := n.NamedChild(i); c.Kind() == KindStringFragment {
			return c.Text()
		}
	}

	// Older grammar versions have no string_fragment nodes.
	text := n.Text()
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}

	return text
}

// JSXTagName returns the tag name node of a jsx_opening_element or
// jsx_self_closing_element.
func JSXTagName(n Node) Node {
	if name := n.Field(FieldName); name.Exists() {
		return name
	}

	// Older grammar versions expose the name as the first named child.
	return ExpressionAt(n, 0)
}

// JSXAttributeName returns the property name node of a jsx_attribute.
func JSXAttributeName(attr Node) Node {
	return ExpressionAt(attr, 0)
}

// JSXAttributeValue returns the value node of a jsx_attribute, which does
// not exist for bare attributes such as <input disabled />.
func JSXAttributeValue(attr Node) Node {
	return ExpressionAt(attr, 1)
}
