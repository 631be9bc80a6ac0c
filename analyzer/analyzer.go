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
	"context"

	"github.com/benasher44/eslint-plugin-react/internal/run"
)

// Public API constants for the allocation rule.
const (
	// Name is the rule name diagnostics are reported under.
	Name = "jsx-no-new-allocation-as-prop"

	// Doc is a short description of what the rule checks.
	Doc = "disallow freshly allocated arrays and objects as component props"
)

// Analyzer lints JavaScript and JSX sources for fresh allocations used as
// component props. It is immutable after [New] and safe for concurrent use.
type Analyzer struct {
	run *run.Options
}

// New creates an analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the rule into other tools. Command-line use typically
// goes through the reactlint binary instead.
func New(opts ...Option) *Analyzer {
	return &Analyzer{run: makeRunOptions(opts).runner()}
}

// Lint discovers and lints every JavaScript and JSX file under the given
// paths. Files are named explicitly; directories are walked recursively.
// Diagnostics come back sorted by path and position.
func (a *Analyzer) Lint(ctx context.Context, paths ...string) ([]Diagnostic, error) {
	ds, err := a.run.Lint(ctx, paths)
	if err != nil {
		return nil, err
	}

	return convert(ds), nil
}

// LintFile reads and lints one source file.
func (a *Analyzer) LintFile(ctx context.Context, path string) ([]Diagnostic, error) {
	ds, err := a.run.LintFile(ctx, path)
	if err != nil {
		return nil, err
	}

	return convert(ds), nil
}

// LintSource lints one source buffer under the given display path.
func (a *Analyzer) LintSource(ctx context.Context, path string, src []byte) ([]Diagnostic, error) {
	ds, err := a.run.LintSource(ctx, path, src)
	if err != nil {
		return nil, err
	}

	return convert(ds), nil
}
