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

package analyzer

import (
	"github.com/benasher44/eslint-plugin-react/analyzer/level"
	"github.com/benasher44/eslint-plugin-react/internal/report"
)

// Diagnostic is one finding in one source file. Lines and columns are
// 1-based; End positions are exclusive.
//
// Parse errors are reported as diagnostics under the pseudo-rule "syntax"
// rather than as errors from the Lint methods.
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

func convert(ds []report.Diagnostic) []Diagnostic {
	out := make([]Diagnostic, len(ds))
	for i, d := range ds {
		out[i] = Diagnostic(d)
	}

	return out
}
