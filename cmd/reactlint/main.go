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

// Reactlint lints JavaScript and JSX sources for fresh allocations used
// as component props.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/benasher44/eslint-plugin-react/analyzer"
	"github.com/benasher44/eslint-plugin-react/analyzer/level"
	"github.com/benasher44/eslint-plugin-react/internal/config"
	"github.com/benasher44/eslint-plugin-react/internal/report"
	"github.com/benasher44/eslint-plugin-react/ruleset"
)

// Exit codes of the reactlint binary.
const (
	exitClean    = 0
	exitFindings = 1
	exitError    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "reactlint:", err)
		os.Exit(exitError)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "reactlint",
		Usage:     analyzer.Doc,
		ArgsUsage: "[path ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read configuration from `FILE` instead of searching for it",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "output format, text or json",
			},
			&cli.BoolFlag{
				Name:  "allow-arrays",
				Usage: "exempt array literals from the rule",
			},
			&cli.BoolFlag{
				Name:  "allow-objects",
				Usage: "exempt object literals from the rule",
			},
			&cli.BoolFlag{
				Name:  "ignore-dom-components",
				Usage: "exempt props of host elements such as <div> from the rule",
			},
			&cli.BoolFlag{
				Name:  "no-inline-config",
				Usage: "ignore eslint-disable comments",
			},
			&cli.IntFlag{
				Name:  "max-warnings",
				Value: -1,
				Usage: "number of warnings to trigger a nonzero exit",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "report errors only",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "watch the given paths and relint on changes",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: lint,
	}
}

func lint(c *cli.Context) error {
	logger := newLogger(c.Bool("verbose"))

	a, err := configure(c, logger)
	if err != nil {
		return err
	}

	paths := c.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if c.Bool("watch") {
		return watch(c, a, logger, paths)
	}

	ds, err := a.Lint(c.Context, paths...)
	if err != nil {
		return err
	}

	code, err := emit(c, ds)
	if err != nil {
		return err
	}

	if code != exitClean {
		return cli.Exit("", code)
	}

	return nil
}

// configure resolves the configuration file and command-line flags into
// an analyzer. Flags apply last and override the file.
func configure(c *cli.Context, logger *slog.Logger) (*analyzer.Analyzer, error) {
	cfg, err := loadConfig(c.String("config"), logger)
	if err != nil {
		return nil, err
	}

	settings := &ruleset.Settings{}

	for _, name := range slices.Sorted(maps.Keys(cfg.Rules)) {
		payload := cfg.Rules[name]

		s, err := ruleset.Decode(name, &payload)
		if err != nil {
			return nil, err
		}

		settings = s
	}

	opts := settings.Options()
	opts = append(opts,
		analyzer.WithPragma(cfg.Settings.Pragma),
		analyzer.WithFactories(cfg.Settings.Factories...),
		analyzer.WithIgnore(cfg.Ignore...),
		analyzer.WithLogger(logger),
	)
	opts = append(opts, flagOptions(c)...)

	logger.Debug("options resolved", "options", opts)

	return analyzer.New(opts...), nil
}

func loadConfig(path string, logger *slog.Logger) (*config.File, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("locating configuration: %w", err)
		}

		if path = config.Find(wd); path == "" {
			return &config.File{}, nil
		}
	}

	logger.Debug("configuration loaded", slog.String("path", path))

	return config.Load(path)
}

// flagOptions converts the set command-line flags into analyzer options.
func flagOptions(c *cli.Context) analyzer.Options {
	var opts analyzer.Options

	if c.IsSet("allow-arrays") {
		opts = append(opts, analyzer.WithAllowArrays(c.Bool("allow-arrays")))
	}

	if c.IsSet("allow-objects") {
		opts = append(opts, analyzer.WithAllowObjects(c.Bool("allow-objects")))
	}

	if c.IsSet("ignore-dom-components") {
		opts = append(opts, analyzer.WithIgnoreDOMComponents(c.Bool("ignore-dom-components")))
	}

	if c.IsSet("no-inline-config") {
		opts = append(opts, analyzer.WithInlineDirectives(!c.Bool("no-inline-config")))
	}

	return opts
}

// emit renders the diagnostics to standard output and classifies the run
// for the process exit code.
func emit(c *cli.Context, ds []analyzer.Diagnostic) (int, error) {
	if c.Bool("quiet") {
		ds = errorsOnly(ds)
	}

	f, err := report.NewFormatter(c.String("format"))
	if err != nil {
		return exitError, err
	}

	if err := f.Format(c.App.Writer, internal(ds)); err != nil {
		return exitError, err
	}

	return exitCode(ds, c.Int("max-warnings")), nil
}

// exitCode classifies a diagnostic list. Any error-severity finding fails
// the run; warnings fail it only past the given threshold, with -1 meaning
// unlimited.
func exitCode(ds []analyzer.Diagnostic, maxWarnings int) int {
	var errs, warnings int

	for _, d := range ds {
		if d.Severity == level.SeverityWarning {
			warnings++
		} else {
			errs++
		}
	}

	if errs > 0 {
		return exitFindings
	}

	if maxWarnings >= 0 && warnings > maxWarnings {
		return exitFindings
	}

	return exitClean
}

func errorsOnly(ds []analyzer.Diagnostic) []analyzer.Diagnostic {
	return slices.DeleteFunc(slices.Clone(ds), func(d analyzer.Diagnostic) bool {
		return d.Severity == level.SeverityWarning
	})
}

func internal(ds []analyzer.Diagnostic) []report.Diagnostic {
	out := make([]report.Diagnostic, len(ds))
	for i, d := range ds {
		out[i] = report.Diagnostic(d)
	}

	return out
}

func newLogger(verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
