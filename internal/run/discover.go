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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// Extensions lists the file extensions accepted when walking directories.
var Extensions = []string{".js", ".jsx", ".mjs", ".cjs"}

// Discover expands the given paths into lintable files. Explicit files are
// taken as given; directories are walked recursively, skipping hidden
// entries, node_modules and anything matching an ignore pattern.
func (o *Options) Discover(paths []string) ([]string, error) {
	ignore := compileGlobs(o.Ignore)

	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("discovering files: %w", err)
		}

		if !info.IsDir() {
			files = append(files, path)

			continue
		}

		if err := walk(path, ignore, &files); err != nil {
			return nil, fmt.Errorf("discovering files: %w", err)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func walk(root string, ignore []*regexp.Regexp, files *[]string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()

		if d.IsDir() {
			if path != root && (name == "node_modules" || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}

			return nil
		}

		if !slices.Contains(Extensions, filepath.Ext(name)) || ignored(path, ignore) {
			return nil
		}

		*files = append(*files, path)

		return nil
	})
}

// ignored reports whether path matches one of the compiled ignore patterns.
func ignored(path string, ignore []*regexp.Regexp) bool {
	path = filepath.ToSlash(path)

	for _, re := range ignore {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// compileGlobs translates slash-separated glob patterns into anchored
// regular expressions, compiled once per [Options.Discover] call. A "*"
// stays within one path element, "**" crosses directories, and a leading
// "**/" also matches zero directories.
func compileGlobs(patterns []string) []*regexp.Regexp {
	globs := make([]*regexp.Regexp, len(patterns))

	for i, pattern := range patterns {
		escaped := regexp.QuoteMeta(filepath.ToSlash(pattern))
		escaped = strings.ReplaceAll(escaped, `\*\*/`, `(?:.*/)?`)
		escaped = strings.ReplaceAll(escaped, `\*\*`, `.*`)
		escaped = strings.ReplaceAll(escaped, `\*`, `[^/]*`)

		globs[i] = regexp.MustCompile("^" + escaped + "$")
	}

	return globs
}
