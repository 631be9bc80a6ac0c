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

// Package linttest checks analyzer output against expectations embedded in
// fixture files.
package linttest

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/benasher44/eslint-plugin-react/analyzer"
)

// Run lints each named fixture with the given analyzer and checks the
// diagnostics against the expectations embedded in its comments.
//
// An expectation is written on the line it applies to:
//
//	return <Item tags={[1]} />; // want "array allocations"
//
// Each quoted string after "want" is a regular expression that must match
// the message of one diagnostic on that line. Diagnostics without a
// matching expectation and expectations without a matching diagnostic
// fail the test.
func Run(tb testing.TB, a *analyzer.Analyzer, files ...string) {
	tb.Helper()

	for _, file := range files {
		runFile(tb, a, file)
	}
}

// expectation is one want pattern awaiting a diagnostic on its line.
type expectation struct {
	line int
	rx   *regexp.Regexp
	met  bool
}

func runFile(tb testing.TB, a *analyzer.Analyzer, file string) {
	tb.Helper()

	src, err := os.ReadFile(file)
	if err != nil {
		tb.Fatalf("reading fixture: %v", err)
	}

	want, err := parseExpectations(string(src))
	if err != nil {
		tb.Fatalf("%s: %v", file, err)
	}

	got, err := a.LintSource(context.Background(), file, src)
	if err != nil {
		tb.Fatalf("linting fixture: %v", err)
	}

	for _, d := range got {
		if !meet(want, d.Line, d.Message) {
			tb.Errorf("%s:%d: unexpected diagnostic %q", file, d.Line, d.Message)
		}
	}

	for _, w := range want {
		if !w.met {
			tb.Errorf("%s:%d: no diagnostic matching %q", file, w.line, w.rx)
		}
	}
}

// meet marks and reports the first open expectation matching a diagnostic.
func meet(want []*expectation, line int, message string) bool {
	for _, w := range want {
		if !w.met && w.line == line && w.rx.MatchString(message) {
			w.met = true

			return true
		}
	}

	return false
}

var wantPattern = regexp.MustCompile(`//\s*want\s+(.*)$`)

func parseExpectations(src string) ([]*expectation, error) {
	var want []*expectation

	for i, text := range strings.Split(src, "\n") {
		m := wantPattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		patterns, err := parsePatterns(m[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		if len(patterns) == 0 {
			return nil, fmt.Errorf("line %d: want comment without patterns", i+1)
		}

		for _, p := range patterns {
			rx, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}

			want = append(want, &expectation{line: i + 1, rx: rx})
		}
	}

	return want, nil
}

// parsePatterns splits the quoted regular expressions after a want keyword.
func parsePatterns(s string) ([]string, error) {
	var patterns []string

	for {
		s = strings.TrimSpace(s)
		if s == "" {
			return patterns, nil
		}

		q, err := strconv.QuotedPrefix(s)
		if err != nil {
			return nil, fmt.Errorf("malformed want pattern %q", s)
		}

		p, err := strconv.Unquote(q)
		if err != nil {
			return nil, fmt.Errorf("malformed want pattern %q", q)
		}

		patterns = append(patterns, p)
		s = s[len(q):]
	}
}
