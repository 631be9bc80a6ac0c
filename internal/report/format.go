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

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/benasher44/eslint-plugin-react/analyzer/level"
)

// Formatter renders a diagnostic list for output.
type Formatter interface {
	Format(w io.Writer, ds []Diagnostic) error
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case "", "text":
		return TextFormatter{}, nil

	case "json":
		return JSONFormatter{}, nil

	default:
		return nil, fmt.Errorf("unknown output format %q", name)
	}
}

// TextFormatter writes one "path:line:col: message (rule)" line per
// diagnostic.
type TextFormatter struct{}

// Format implements [Formatter].
func (TextFormatter) Format(w io.Writer, ds []Diagnostic) error {
	for _, d := range ds {
		prefix := ""
		if d.Severity == level.SeverityWarning {
			prefix = "warning: "
		}

		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s%s (%s)\n",
			d.Path, d.Line, d.Col, prefix, d.Message, d.Rule); err != nil {
			return err
		}
	}

	return nil
}

// JSONFormatter writes the diagnostics as one JSON array.
type JSONFormatter struct{}

// Format implements [Formatter].
func (JSONFormatter) Format(w io.Writer, ds []Diagnostic) error {
	if ds == nil {
		ds = []Diagnostic{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(ds)
}
