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

package linttest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benasher44/eslint-plugin-react/analyzer"
	. "github.com/benasher44/eslint-plugin-react/internal/linttest"
)

// recorder counts failures instead of failing the surrounding test.
type recorder struct {
	testing.TB
	failures int
}

func (r *recorder) Errorf(string, ...any) { r.failures++ }

func fixture(tb testing.TB, src string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "fixture.jsx")
	require.NoError(tb, os.WriteFile(path, []byte(src), 0o644))

	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	path := fixture(t, `function App() {
  return <Item tags={[1]} style={{}} />; // want "array allocations" "object allocations"
}
`)

	Run(t, analyzer.New(), path)
}

func TestRunUnexpectedDiagnostic(t *testing.T) {
	t.Parallel()

	path := fixture(t, `function App() {
  return <Item tags={[1]} />;
}
`)

	r := &recorder{TB: t}
	Run(r, analyzer.New(), path)

	assert.Equal(t, 1, r.failures)
}

func TestRunUnmetExpectation(t *testing.T) {
	t.Parallel()

	path := fixture(t, `function App() {
  return <Item tags={stable} />; // want "array allocations"
}
`)

	r := &recorder{TB: t}
	Run(r, analyzer.New(), path)

	assert.Equal(t, 1, r.failures)
}
