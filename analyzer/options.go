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

	"github.com/benasher44/eslint-plugin-react/analyzer/level"
)

// Option configures an [Analyzer] built by [New]. Every option also
// renders itself as a log attribute, so a run can record the
// configuration it is operating under.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options bundles several [Option] values into one value that satisfies
// [Option] itself, so option sets compose and nest.
type Options []Option

// LogValue implements [slog.LogValuer]. Nested bundles flatten into a
// single group, and nil entries render as a placeholder.
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr renders the whole bundle under one "options" key for
// [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithAllowArrays is an [Option] to exempt array literals from the rule.
func WithAllowArrays(allow bool) Option { return allowArraysOption{allow: allow} }

type allowArraysOption struct{ allow bool }

func (o allowArraysOption) apply(r *runOptions) {
	r.settings.AllowArrays = o.allow
}

func (o allowArraysOption) LogAttr() slog.Attr {
	return slog.Bool("allowArrays", o.allow)
}

// WithAllowObjects is an [Option] to exempt object literals from the rule.
func WithAllowObjects(allow bool) Option { return allowObjectsOption{allow: allow} }

type allowObjectsOption struct{ allow bool }

func (o allowObjectsOption) apply(r *runOptions) {
	r.settings.AllowObjects = o.allow
}

func (o allowObjectsOption) LogAttr() slog.Attr {
	return slog.Bool("allowObjects", o.allow)
}

// WithIgnoreDOMComponents is an [Option] to exempt props of host elements
// such as <div> from the rule.
func WithIgnoreDOMComponents(ignore bool) Option { return ignoreDOMOption{ignore: ignore} }

type ignoreDOMOption struct{ ignore bool }

func (o ignoreDOMOption) apply(r *runOptions) {
	r.settings.IgnoreDOMComponents = o.ignore
}

func (o ignoreDOMOption) LogAttr() slog.Attr {
	return slog.Bool("ignoreDOMComponents", o.ignore)
}

// WithSeverity is an [Option] to configure how findings are classified.
// [level.SeverityOff] disables the rule.
func WithSeverity(severity level.Severity) Option { return severityOption{severity: severity} }

type severityOption struct{ severity level.Severity }

func (o severityOption) apply(r *runOptions) {
	r.settings.Severity = o.severity
}

func (o severityOption) LogAttr() slog.Attr {
	return slog.Any("severity", o.severity)
}

// WithPragma is an [Option] to configure the factory namespace recognized
// in createElement-style calls. The default is "React".
func WithPragma(pragma string) Option { return pragmaOption{pragma: pragma} }

type pragmaOption struct{ pragma string }

func (o pragmaOption) apply(r *runOptions) {
	r.pragma = o.pragma
}

func (o pragmaOption) LogAttr() slog.Attr {
	return slog.String("pragma", o.pragma)
}

// WithFactories is an [Option] to configure additional element factory
// names recognized next to createElement.
func WithFactories(factories ...string) Option { return factoriesOption{factories: factories} }

type factoriesOption struct{ factories []string }

func (o factoriesOption) apply(r *runOptions) {
	r.factories = o.factories
}

func (o factoriesOption) LogAttr() slog.Attr {
	return slog.Any("factories", o.factories)
}

// WithInlineDirectives is an [Option] to configure whether eslint-disable
// comments are honored. They are honored by default.
func WithInlineDirectives(inline bool) Option { return inlineOption{inline: inline} }

type inlineOption struct{ inline bool }

func (o inlineOption) apply(r *runOptions) {
	r.inline = o.inline
}

func (o inlineOption) LogAttr() slog.Attr {
	return slog.Bool("inlineDirectives", o.inline)
}

// WithIgnore is an [Option] to configure glob patterns of paths skipped
// during discovery.
func WithIgnore(patterns ...string) Option { return ignoreOption{patterns: patterns} }

type ignoreOption struct{ patterns []string }

func (o ignoreOption) apply(r *runOptions) {
	r.ignore = o.patterns
}

func (o ignoreOption) LogAttr() slog.Attr {
	return slog.Any("ignore", o.patterns)
}

// WithLogger is an [Option] to configure the logger progress messages go
// to. The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
