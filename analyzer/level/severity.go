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

// Package level defines the reporting levels of lint rules.
package level

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity specifies how findings of a rule are classified. The text
// forms mirror ESLint's severity vocabulary, including the numeric
// aliases "0", "1" and "2".
type Severity uint8

const (
	// SeverityError marks findings that fail the run.
	SeverityError Severity = iota

	// SeverityWarning marks findings that are reported without failing the run.
	SeverityWarning

	// SeverityOff disables the rule entirely.
	SeverityOff
)

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SeverityError:
		return []byte("error"), nil

	case SeverityWarning:
		return []byte("warning"), nil

	case SeverityOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown severity %d", s)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "error", "2":
		*s = SeverityError

	case "warn", "warning", "1":
		*s = SeverityWarning

	case "off", "0":
		*s = SeverityOff

	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}

	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. The YAML decoder does
// not consult [encoding.TextUnmarshaler], so the text forms are wired
// up here for configuration files.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: severity must be a scalar", value.Line)
	}

	return s.UnmarshalText([]byte(value.Value))
}
