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

package config

import "github.com/benasher44/eslint-plugin-react/analyzer/level"

// Settings holds the options of the allocation rule. The zero value is
// the default configuration: nothing allowed, host components included,
// findings reported as errors.
type Settings struct {
	// AllowArrays exempts array literals from the rule.
	AllowArrays bool `yaml:"allowArrays"`

	// AllowObjects exempts object literals from the rule.
	AllowObjects bool `yaml:"allowObjects"`

	// IgnoreDOMComponents exempts properties of host (DOM) components.
	IgnoreDOMComponents bool `yaml:"ignoreDOMComponents"`

	// Severity selects how findings are classified.
	Severity level.Severity `yaml:"severity"`
}

// Shared holds framework settings that apply to every rule.
type Shared struct {
	// Pragma is the object component factories are addressed through.
	// Empty selects the React default.
	Pragma string `yaml:"pragma"`

	// Factories lists extra component-factory names beside createElement.
	Factories []string `yaml:"factories"`
}
