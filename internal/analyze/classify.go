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

import (
	"github.com/benasher44/eslint-plugin-react/internal/config"
	"github.com/benasher44/eslint-plugin-react/internal/report"
	"github.com/benasher44/eslint-plugin-react/internal/syntax"
)

// Classify reports whether expr is a fresh allocation under the given
// settings, and of which kind. Parentheses are transparent. A
// conditional expression is classified branch by branch, condition
// first, and the first allocation found wins; an allocation exempted by
// its allow flag does not stop the search.
func Classify(settings config.Settings, expr syntax.Node) (report.Kind, bool) {
	switch expr.Kind() {
	case syntax.KindParenthesized:
		return Classify(settings, syntax.Expression(expr))

	case syntax.KindTernary:
		for _, field := range [...]string{syntax.FieldCondition, syntax.FieldConsequence, syntax.FieldAlternative} {
			if kind, ok := Classify(settings, expr.Field(field)); ok {
				return kind, true
			}
		}

		return 0, false

	case syntax.KindArray:
		if settings.AllowArrays {
			return 0, false
		}

		return report.KindArray, true

	case syntax.KindObject:
		if settings.AllowObjects {
			return 0, false
		}

		return report.KindObject, true

	default:
		return 0, false
	}
}
