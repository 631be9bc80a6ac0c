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

package ruleset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/benasher44/eslint-plugin-react/analyzer"
	"github.com/benasher44/eslint-plugin-react/internal/config"
)

// Sentinel errors of configuration decoding.
var (
	// ErrUnknownRule flags a rule name this module does not provide.
	ErrUnknownRule = config.ErrUnknownRule

	// ErrUnknownOption flags a rule option no settings field matches.
	ErrUnknownOption = config.ErrUnknownOption
)

// Rules lists the rule names this module provides.
func Rules() []string {
	return []string{analyzer.Name}
}

// Decode checks the rule name and decodes its raw options payload.
// A nil or null payload yields default settings.
func Decode(name string, payload *yaml.Node) (*Settings, error) {
	if name != analyzer.Name {
		if s := config.Suggest(name, Rules()); s != "" {
			return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownRule, name, s)
		}

		return nil, fmt.Errorf("%w %q", ErrUnknownRule, name)
	}

	var s Settings

	if payload != nil {
		if err := config.DecodeRule(payload, &s, ruleKeys...); err != nil {
			return nil, fmt.Errorf("rule %s: %w", name, err)
		}
	}

	return &s, nil
}

// New builds the analyzer one configuration entry describes. Options in
// extra apply after the decoded settings and take precedence.
func New(name string, payload *yaml.Node, extra ...analyzer.Option) (*analyzer.Analyzer, error) {
	s, err := Decode(name, payload)
	if err != nil {
		return nil, err
	}

	opts := append(s.Options(), extra...)

	return analyzer.New(opts...), nil
}
