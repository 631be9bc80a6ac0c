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

// Package report defines the diagnostic vocabulary of the linter: violation
// kinds and their fixed messages, diagnostics, inline suppression directives
// and output formatters.
package report

import (
	"cmp"
	"slices"

	"github.com/benasher44/eslint-plugin-react/analyzer/level"
)

// SyntaxRule is the pseudo-rule name used for parse-error diagnostics.
const SyntaxRule = "syntax"

// Diagnostic is one finding in one source file. Lines and columns are
// 1-based; End positions are exclusive.
type Diagnostic struct {
	Path     string         `json:"path"`
	Line     int            `json:"line"`
	Col      int            `json:"column"`
	EndLine  int            `json:"endLine"`
	EndCol   int            `json:"endColumn"`
	Rule     string         `json:"rule"`
	Severity level.Severity `json:"severity"`
	Message  string         `json:"message"`
}

// Sort orders diagnostics by path, position and rule.
func Sort(ds []Diagnostic) {
	slices.SortFunc(ds, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.Path, b.Path); c != 0 {
			return c
		}

		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}

		if c := cmp.Compare(a.Col, b.Col); c != 0 {
			return c
		}

		return cmp.Compare(a.Rule, b.Rule)
	})
}
