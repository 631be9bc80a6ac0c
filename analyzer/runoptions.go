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
	"log/slog"

	"github.com/benasher44/eslint-plugin-react/internal/config"
	"github.com/benasher44/eslint-plugin-react/internal/react"
	"github.com/benasher44/eslint-plugin-react/internal/run"
)

// runOptions collect the configuration [Option] values apply to.
type runOptions struct {
	// settings are the rule options.
	settings config.Settings

	// pragma is the factory namespace; empty selects the default.
	pragma string

	// factories are additional element factory names.
	factories []string

	// inline reports whether eslint-disable comments are honored.
	inline bool

	// ignore holds glob patterns of paths skipped during discovery.
	ignore []string

	// logger receives progress messages.
	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

func defaultRunOptions() *runOptions {
	return &runOptions{inline: true}
}

// runner converts the collected configuration into run options.
func (r *runOptions) runner() *run.Options {
	return &run.Options{
		Settings:       r.settings,
		Rule:           Name,
		Framework:      react.NewModel(r.pragma, r.factories...),
		NoInlineConfig: !r.inline,
		Ignore:         r.ignore,
		Logger:         r.logger,
	}
}
