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
	"github.com/benasher44/eslint-plugin-react/analyzer"
	"github.com/benasher44/eslint-plugin-react/analyzer/level"
)

// Settings represents one rule entry of a configuration document.
type Settings struct {
	// AllowArrays exempts array literals from the rule.
	AllowArrays *bool `yaml:"allowArrays"`
	// AllowObjects exempts object literals from the rule.
	AllowObjects *bool `yaml:"allowObjects"`
	// IgnoreDOMComponents exempts props of host elements from the rule.
	IgnoreDOMComponents *bool `yaml:"ignoreDOMComponents"`
	// Severity classifies the rule's findings.
	Severity *level.Severity `yaml:"severity"`
}

// ruleKeys lists the YAML keys of [Settings].
var ruleKeys = []string{"allowArrays", "allowObjects", "ignoreDOMComponents", "severity"}

// Options converts [Settings] into a list of [analyzer.Option] values.
// It processes settings and applies them only when explicitly set (non-nil).
func (s *Settings) Options() analyzer.Options {
	var opts analyzer.Options

	opts = appendOption(opts, s.AllowArrays, analyzer.WithAllowArrays)
	opts = appendOption(opts, s.AllowObjects, analyzer.WithAllowObjects)
	opts = appendOption(opts, s.IgnoreDOMComponents, analyzer.WithIgnoreDOMComponents)
	opts = appendOption(opts, s.Severity, analyzer.WithSeverity)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Options] list.
func appendOption[T any](opts analyzer.Options, value *T, constructor func(T) analyzer.Option) analyzer.Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
