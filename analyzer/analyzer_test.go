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

package analyzer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/benasher44/eslint-plugin-react/analyzer"
	"github.com/benasher44/eslint-plugin-react/analyzer/level"
	"github.com/benasher44/eslint-plugin-react/internal/linttest"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		options Option
	}{
		{
			name: "Allocations",
			file: "testdata/allocations.jsx",
		},
		{
			name: "Bindings",
			file: "testdata/bindings.jsx",
		},
		{
			name: "Factory",
			file: "testdata/factory.jsx",
		},
		{
			name:    "IgnoreDOM",
			file:    "testdata/dom.jsx",
			options: WithIgnoreDOMComponents(true),
		},
		{
			name:    "AllowArrays",
			file:    "testdata/allow.jsx",
			options: Options{WithAllowArrays(true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			linttest.Run(t, New(tt.options), tt.file)
		})
	}
}

func TestOptionPrecedence(t *testing.T) {
	t.Parallel()

	src := "function App() {\n  return <Item tags={[1]} />;\n}\n"

	// The last applied option wins.
	a := New(WithAllowArrays(true), WithAllowArrays(false))

	got, err := a.LintSource(context.Background(), "app.jsx", []byte(src))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSeverityOff(t *testing.T) {
	t.Parallel()

	src := "function App() {\n  return <Item tags={[1]} />;\n}\n"

	a := New(WithSeverity(level.SeverityOff))

	got, err := a.LintSource(context.Background(), "app.jsx", []byte(src))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCustomFactories(t *testing.T) {
	t.Parallel()

	src := "function cell() {\n  return h(Cell, {tags: [1]});\n}\n"

	a := New(WithPragma("Preact"), WithFactories("h"))

	got, err := a.LintSource(context.Background(), "cell.js", []byte(src))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, Name, got[0].Rule)
	assert.Equal(t, "Props should not use array allocations", got[0].Message)
}
