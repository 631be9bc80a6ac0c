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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"github.com/benasher44/eslint-plugin-react/analyzer/level"
	"github.com/benasher44/eslint-plugin-react/internal/analyze"
	"github.com/benasher44/eslint-plugin-react/internal/report"
	"github.com/benasher44/eslint-plugin-react/internal/syntax"
)

// Lint discovers and lints every file under the given paths, fanning the
// files out over all available CPUs. Diagnostics come back sorted by path
// and position.
func (o *Options) Lint(ctx context.Context, paths []string) ([]report.Diagnostic, error) {
	files, err := o.Discover(paths)
	if err != nil {
		return nil, err
	}

	o.logger().Debug("linting", slog.Int("files", len(files)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	results := make([][]report.Diagnostic, len(files))

	for i, path := range files {
		g.Go(func() error {
			ds, err := o.LintFile(ctx, path)
			if err != nil {
				return err
			}

			results[i] = ds

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []report.Diagnostic

	for _, ds := range results {
		all = append(all, ds...)
	}

	report.Sort(all)

	return all, nil
}

// LintFile reads and lints one source file.
func (o *Options) LintFile(ctx context.Context, path string) ([]report.Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	return o.LintSource(ctx, path, src)
}

// LintSource lints one source buffer. Unparsable input yields syntax
// diagnostics, not an error; errors are reserved for I/O and cancellation.
func (o *Options) LintSource(ctx context.Context, path string, src []byte) ([]report.Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "Lint")
	defer task.End()

	trace.Log(ctx, "file", path)

	tree, err := parse(ctx, src)
	if err != nil {
		if errors.Is(err, syntax.ErrInvalidEncoding) {
			return []report.Diagnostic{encodingDiagnostic(path, err)}, nil
		}

		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer tree.Close()

	if tree.HasError() {
		return []report.Diagnostic{syntaxDiagnostic(path, tree)}, nil
	}

	if o.Settings.Severity == level.SeverityOff {
		return nil, nil
	}

	var sup *report.Suppressions
	if !o.NoInlineConfig {
		sup = suppressions(ctx, tree)
	}

	var out []report.Diagnostic

	stage := &analyze.Stage{
		Settings:  o.Settings,
		Framework: o.framework(),
		Report: func(site syntax.Node, kind report.Kind) {
			start, end := site.Start(), site.End()
			if sup.Suppressed(start.Line, o.Rule) {
				return
			}

			out = append(out, report.Diagnostic{
				Path:     path,
				Line:     start.Line,
				Col:      start.Col,
				EndLine:  end.Line,
				EndCol:   end.Col,
				Rule:     o.Rule,
				Severity: o.Settings.Severity,
				Message:  kind.Message(),
			})
		},
	}

	stage.Analyze(ctx, tree)

	report.Sort(out)

	return out, nil
}

func parse(ctx context.Context, src []byte) (*syntax.Tree, error) {
	defer trace.StartRegion(ctx, "parse").End()

	return syntax.Parse(ctx, src)
}

// suppressions collects the inline directives of a well-formed tree.
func suppressions(ctx context.Context, tree *syntax.Tree) *report.Suppressions {
	defer trace.StartRegion(ctx, "suppressions").End()

	sup := report.NewSuppressions()
	for c := range tree.Comments() {
		sup.Add(c.Start().Line, c.Text())
	}

	return sup
}

// syntaxDiagnostic describes the first parse error of a malformed tree.
func syntaxDiagnostic(path string, tree *syntax.Tree) report.Diagnostic {
	site, ok := tree.FirstError()
	if !ok {
		site = tree.Root()
	}

	message := "syntax error"
	if site.IsMissing() {
		message = fmt.Sprintf("syntax error: missing %s", site.Kind())
	}

	start, end := site.Start(), site.End()

	return report.Diagnostic{
		Path:     path,
		Line:     start.Line,
		Col:      start.Col,
		EndLine:  end.Line,
		EndCol:   end.Col,
		Rule:     report.SyntaxRule,
		Severity: level.SeverityError,
		Message:  message,
	}
}

func encodingDiagnostic(path string, err error) report.Diagnostic {
	return report.Diagnostic{
		Path:     path,
		Line:     1,
		Col:      1,
		EndLine:  1,
		EndCol:   1,
		Rule:     report.SyntaxRule,
		Severity: level.SeverityError,
		Message:  err.Error(),
	}
}
