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

package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownRule flags a configured rule name no rule implements.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrUnknownOption flags a rule option no rule settings field matches.
	ErrUnknownOption = errors.New("unknown option")
)

// Suggest returns the known name closest to name, or the empty string
// when nothing ranks as a plausible match.
func Suggest(name string, known []string) string {
	if len(known) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(name, known)
	if len(ranks) > 0 {
		return ranks[0].Target
	}

	return ""
}

// DecodeRule decodes a rule's options payload into out, accepting only
// the given keys. A null payload leaves out untouched; any other
// non-mapping payload is an error.
func DecodeRule(node *yaml.Node, out any, known ...string) error {
	if node.IsZero() || node.Tag == "!!null" {
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: rule options must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if slices.Contains(known, key.Value) {
			continue
		}

		if s := Suggest(key.Value, known); s != "" {
			return fmt.Errorf("line %d: %w %q (did you mean %q?)", key.Line, ErrUnknownOption, key.Value, s)
		}

		return fmt.Errorf("line %d: %w %q", key.Line, ErrUnknownOption, key.Value)
	}

	return node.Decode(out)
}
