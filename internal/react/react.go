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

// Package react models the framework conventions the linter needs to
// recognize: which calls create elements, and which elements render
// host (DOM) components rather than user components.
package react

import "github.com/benasher44/eslint-plugin-react/internal/syntax"

// DefaultPragma is the object component factories are addressed through
// when no pragma is configured.
const DefaultPragma = "React"

// defaultFactory is always recognized, bare or pragma-qualified.
const defaultFactory = "createElement"

// Model decides factory and host-element questions for one framework
// configuration. The zero value is not usable; call [NewModel].
type Model struct {
	pragma    string
	factories map[string]struct{}
}

// NewModel creates a model for the given pragma and extra factory
// names. An empty pragma selects [DefaultPragma]. Each factory name is
// recognized both bare (`h(...)`) and qualified by the pragma
// (`React.h(...)`); `createElement` is always included.
func NewModel(pragma string, factories ...string) *Model {
	if pragma == "" {
		pragma = DefaultPragma
	}

	names := make(map[string]struct{}, len(factories)+1)
	names[defaultFactory] = struct{}{}
	for _, name := range factories {
		names[name] = struct{}{}
	}

	return &Model{pragma: pragma, factories: names}
}

// IsFactoryCall reports whether n is a call to a recognized component
// factory.
func (m *Model) IsFactoryCall(n syntax.Node) bool {
	if n.Kind() != syntax.KindCall {
		return false
	}

	callee := n.Field(syntax.FieldFunction)
	switch callee.Kind() {
	case syntax.KindIdentifier:
		_, ok := m.factories[callee.Text()]

		return ok

	case syntax.KindMember:
		object := callee.Field(syntax.FieldObject)
		if object.Kind() != syntax.KindIdentifier || object.Text() != m.pragma {
			return false
		}

		_, ok := m.factories[callee.Field(syntax.FieldProperty).Text()]

		return ok

	default:
		return false
	}
}

// IsHostElement reports whether n renders a host component. For JSX
// elements the tag name decides: lowercase and namespaced tags are host
// elements, while capitalized and member tags reference user
// components. For factory calls the first argument decides: a string
// tag is a host element.
func (m *Model) IsHostElement(n syntax.Node) bool {
	switch n.Kind() {
	case syntax.KindJSXOpeningElement, syntax.KindJSXSelfClosingElement:
		return isHostTag(syntax.JSXTagName(n))

	case syntax.KindCall:
		args := n.Field(syntax.FieldArguments)

		return syntax.ExpressionAt(args, 0).Kind() == syntax.KindString

	default:
		return false
	}
}

func isHostTag(name syntax.Node) bool {
	switch name.Kind() {
	case syntax.KindJSXNamespaceName:
		// <svg:rect/> addresses a host namespace.
		return true

	case syntax.KindNestedIdentifier, syntax.KindMember:
		// <Menu.Item/> references a user component.
		return false
	}

	text := name.Text()

	return text != "" && text[0] >= 'a' && text[0] <= 'z'
}
