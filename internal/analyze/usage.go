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

package analyze

import "github.com/benasher44/eslint-plugin-react/internal/syntax"

// checkAttribute treats a JSX attribute as a usage site. String values
// and bare attributes allocate nothing and are skipped; expression
// containers are resolved against the scope chain.
func (v *visitor) checkAttribute(attr syntax.Node) {
	if v.stage.Settings.IgnoreDOMComponents && v.stage.Framework.IsHostElement(attr.Parent()) {
		return
	}

	value := syntax.JSXAttributeValue(attr)
	if value.Kind() != syntax.KindJSXExpression {
		return
	}

	expr := syntax.Expression(value)
	if !expr.Exists() {
		return
	}

	v.resolve(expr, attr)
}

// checkFactoryCall treats the property object of a recognized factory
// call as a collection of usage sites, one per pair and shorthand
// property. Spread entries and methods are not usage sites. The
// traversal still descends into the arguments afterwards, so element
// children and nested factory calls are analyzed on their own.
func (v *visitor) checkFactoryCall(call syntax.Node) {
	if !v.stage.Framework.IsFactoryCall(call) {
		return
	}

	args := call.Field(syntax.FieldArguments)

	props := syntax.ExpressionAt(args, 1)
	if props.Kind() != syntax.KindObject {
		return
	}

	if v.stage.Settings.IgnoreDOMComponents && v.stage.Framework.IsHostElement(call) {
		return
	}

	for i := range props.NamedChildCount() {
		member := props.NamedChild(i)
		switch member.Kind() {
		case syntax.KindPair:
			v.resolve(member.Field(syntax.FieldValue), member)

		case syntax.KindShorthandProperty:
			v.resolveName(member.Text(), member)
		}
	}
}

// resolve reports at site when expr is a fresh allocation, or when it
// is a bare identifier bound to one in the enclosing block chain.
// Unresolved identifiers stay silent: the value may well be stable.
func (v *visitor) resolve(expr, site syntax.Node) {
	expr = syntax.Unparenthesize(expr)

	if expr.Kind() == syntax.KindIdentifier {
		v.resolveName(expr.Text(), site)

		return
	}

	if kind, ok := Classify(v.stage.Settings, expr); ok {
		v.stage.Report(site, kind)
	}
}

// resolveName reports at site when name is bound to an allocation in
// the enclosing block chain, innermost block first, first hit wins.
func (v *visitor) resolveName(name string, site syntax.Node) {
	if kind, ok := v.scopes.Lookup(name); ok {
		v.stage.Report(site, kind)
	}
}
