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

package run

import (
	"log/slog"

	"github.com/benasher44/eslint-plugin-react/internal/analyze"
	"github.com/benasher44/eslint-plugin-react/internal/config"
	"github.com/benasher44/eslint-plugin-react/internal/react"
)

// Options configure one linter run.
type Options struct {
	// Settings are the resolved options of the allocation rule.
	Settings config.Settings

	// Rule is the name diagnostics are reported under and inline
	// directives must match.
	Rule string

	// Framework answers factory and host-element questions for the
	// pass. Nil selects the default React model.
	Framework analyze.Framework

	// NoInlineConfig disables eslint-disable comment directives.
	NoInlineConfig bool

	// Ignore holds glob patterns of paths to skip during discovery.
	// Patterns use slash separators and match the paths as walked.
	Ignore []string

	// Logger receives progress messages. Nil means [slog.Default].
	Logger *slog.Logger
}

func (o *Options) framework() analyze.Framework {
	if o.Framework != nil {
		return o.Framework
	}

	return react.NewModel("")
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}
