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

// Package config reads and validates linter configuration.
//
// Configuration comes from a YAML document (JSON is a YAML subset, so
// the .json form needs no separate decoder). Rule payloads stay raw
// [yaml.Node] values; the rule registry decodes them against the keys
// each rule actually knows, so unknown options fail with a suggestion
// instead of being dropped.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultNames are the configuration file names searched for, in order.
var DefaultNames = []string{".reactlint.yaml", ".reactlint.yml", ".reactlint.json"}

// File is a decoded configuration document.
type File struct {
	// Rules maps rule names to their raw options payload.
	Rules map[string]yaml.Node `yaml:"rules"`

	// Settings holds framework settings shared by all rules.
	Settings Shared `yaml:"settings"`

	// Ignore lists path patterns excluded from linting.
	Ignore []string `yaml:"ignore"`
}

// Load reads and decodes the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("configuration %s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a configuration document. Unknown top-level and
// settings keys are errors; an empty document is a valid empty
// configuration.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}

		return nil, err
	}

	return &f, nil
}

// Find searches dir and its parents for a file named after
// [DefaultNames] and returns the first match, or the empty string when
// no directory on the way to the root has one.
func Find(dir string) string {
	for {
		for _, name := range DefaultNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
