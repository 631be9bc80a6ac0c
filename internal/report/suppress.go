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

package report

import (
	"slices"
	"strings"
)

// Suppressions tracks inline "eslint-disable" directives for one file.
//
// Four directive forms are recognized, in line or block comments:
//
//	// eslint-disable-line [rules]
//	// eslint-disable-next-line [rules]
//	/* eslint-disable [rules] */
//	/* eslint-enable [rules] */
//
// A directive without a rule list applies to every rule. Text after a
// " -- " separator is a comment and is ignored.
type Suppressions struct {
	lines []lineDirective
	spans []spanDirective
}

// lineDirective silences matching diagnostics on exactly one line.
type lineDirective struct {
	line  int
	rules []string
}

// spanDirective toggles matching diagnostics from its line to the end of
// the file, until countermanded by a later directive.
type spanDirective struct {
	line   int
	enable bool
	rules  []string
}

// NewSuppressions returns an empty suppression set.
func NewSuppressions() *Suppressions {
	return &Suppressions{}
}

// Add parses one comment and records any suppression directive found in it.
// Comments must be added in source order; non-directive comments are ignored.
func (s *Suppressions) Add(line int, comment string) {
	text := trimComment(comment)

	if rest, ok := cutDirective(text, "eslint-disable-next-line"); ok {
		s.lines = append(s.lines, lineDirective{line: line + 1, rules: ruleList(rest)})

		return
	}

	if rest, ok := cutDirective(text, "eslint-disable-line"); ok {
		s.lines = append(s.lines, lineDirective{line: line, rules: ruleList(rest)})

		return
	}

	if rest, ok := cutDirective(text, "eslint-enable"); ok {
		s.spans = append(s.spans, spanDirective{line: line, enable: true, rules: ruleList(rest)})

		return
	}

	if rest, ok := cutDirective(text, "eslint-disable"); ok {
		s.spans = append(s.spans, spanDirective{line: line, rules: ruleList(rest)})
	}
}

// Suppressed reports whether a diagnostic of the given rule at the given
// line is silenced by a directive.
func (s *Suppressions) Suppressed(line int, rule string) bool {
	if s == nil {
		return false
	}

	for _, d := range s.lines {
		if d.line == line && matches(d.rules, rule) {
			return true
		}
	}

	disabled := false

	for _, d := range s.spans {
		if d.line > line {
			break
		}

		if matches(d.rules, rule) {
			disabled = !d.enable
		}
	}

	return disabled
}

// trimComment strips the comment delimiters and any trailing " -- reason".
func trimComment(comment string) string {
	text := strings.TrimPrefix(comment, "//")
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")

	if directive, _, ok := strings.Cut(text, "--"); ok {
		text = directive
	}

	return strings.TrimSpace(text)
}

// cutDirective matches a directive keyword followed by a word boundary.
func cutDirective(text, keyword string) (string, bool) {
	rest, ok := strings.CutPrefix(text, keyword)
	if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}

	return rest, true
}

// ruleList parses the comma-separated rule names after a directive keyword.
// A nil result means the directive applies to all rules.
func ruleList(rest string) []string {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil
	}

	var rules []string

	for rule := range strings.SplitSeq(rest, ",") {
		if rule = strings.TrimSpace(rule); rule != "" {
			rules = append(rules, rule)
		}
	}

	return rules
}

func matches(rules []string, rule string) bool {
	return len(rules) == 0 || slices.Contains(rules, rule)
}
