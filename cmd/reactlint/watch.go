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

package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/benasher44/eslint-plugin-react/analyzer"
	"github.com/benasher44/eslint-plugin-react/internal/run"
)

// watchDebounce batches filesystem events before relinting.
const watchDebounce = 300 * time.Millisecond

// watch lints the given paths, then relints them whenever a JavaScript
// file under them changes. It returns when the context is canceled.
func watch(c *cli.Context, a *analyzer.Analyzer, logger *slog.Logger, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := addRecursive(watcher, path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	relint := func() {
		ds, err := a.Lint(c.Context, paths...)
		if err != nil {
			logger.Error("lint failed", slog.Any("error", err))

			return
		}

		if _, err := emit(c, ds); err != nil {
			logger.Error("reporting failed", slog.Any("error", err))
		}
	}

	relint()

	var timer *time.Timer

	for {
		select {
		case <-c.Context.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// New directories join the watch before the filter, so
			// files created inside them are seen later.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = addRecursive(watcher, ev.Name)
				}
			}

			if !slices.Contains(run.Extensions, filepath.Ext(ev.Name)) {
				continue
			}

			logger.Debug("change detected", slog.String("path", ev.Name))

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, relint)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watch error", slog.Any("error", err))
		}
	}
}

// addRecursive watches a path and, for directories, everything below it.
// Hidden directories and node_modules stay out of the watch, matching
// discovery.
func addRecursive(w *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	// Watching the parent survives editors that replace files on save.
	if !info.IsDir() {
		return w.Add(filepath.Dir(root))
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		name := d.Name()
		if path != root && (name == "node_modules" || strings.HasPrefix(name, ".")) {
			return fs.SkipDir
		}

		return w.Add(path)
	})
}
