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

// recordBindings notes allocation-valued constants of one declaration
// in the innermost open block. Only plain `const name = value`
// declarators count: `let`, `var` and destructuring patterns are not
// tracked, and module top-level declarations have no block to land in.
// Declarations never produce findings themselves.
func (v *visitor) recordBindings(decl syntax.Node) {
	if !v.scopes.Open() {
		return
	}

	if syntax.DeclarationKind(decl) != syntax.DeclConst {
		return
	}

	for i := range decl.NamedChildCount() {
		d := decl.NamedChild(i)
		if d.Kind() != syntax.KindVariableDeclarator {
			continue
		}

		name := d.Field(syntax.FieldName)
		if name.Kind() != syntax.KindIdentifier {
			continue
		}

		value := d.Field(syntax.FieldValue)
		if !value.Exists() {
			continue
		}

		if kind, ok := Classify(v.stage.Settings, value); ok {
			v.scopes.Record(name.Text(), kind)
		}
	}
}
