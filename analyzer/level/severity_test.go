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

package level_test

import (
	"testing"

	"gopkg.in/yaml.v3"

	. "github.com/benasher44/eslint-plugin-react/analyzer/level"
)

func TestSeverityUnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		want    Severity
		wantErr bool
	}{
		{name: "Error", text: "error", want: SeverityError},
		{name: "Numeric", text: "2", want: SeverityError},
		{name: "Warn", text: "warn", want: SeverityWarning},
		{name: "Warning", text: "warning", want: SeverityWarning},
		{name: "Off", text: "off", want: SeverityOff},
		{name: "Empty", text: "", want: SeverityError},
		{name: "Unknown", text: "fatal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s Severity
			err := s.UnmarshalText([]byte(tt.text))

			if tt.wantErr {
				if err == nil {
					t.Fatalf("UnmarshalText(%q): expected error", tt.text)
				}

				return
			}

			if err != nil {
				t.Fatalf("UnmarshalText(%q): %v", tt.text, err)
			}

			if s != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, s, tt.want)
			}
		})
	}
}

func TestSeverityMarshalText(t *testing.T) {
	t.Parallel()

	got, err := SeverityWarning.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	if string(got) != "warning" {
		t.Errorf("MarshalText() = %q, want %q", got, "warning")
	}

	if _, err := Severity(9).MarshalText(); err == nil {
		t.Error("MarshalText(9): expected error")
	}
}

func TestSeverityUnmarshalYAML(t *testing.T) {
	t.Parallel()

	var s Severity
	if err := yaml.Unmarshal([]byte("warn"), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if s != SeverityWarning {
		t.Errorf("Unmarshal = %v, want %v", s, SeverityWarning)
	}

	if err := yaml.Unmarshal([]byte("[error]"), &s); err == nil {
		t.Error("expected error for non-scalar severity")
	}
}
