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

package analyze

import (
	"context"
	"runtime/trace"

	"github.com/benasher44/eslint-plugin-react/internal/config"
	"github.com/benasher44/eslint-plugin-react/internal/report"
	"github.com/benasher44/eslint-plugin-react/internal/scope"
	"github.com/benasher44/eslint-plugin-react/internal/syntax"
)

// Framework answers the two framework-specific questions the pass asks.
// [react.Model] is the standard implementation.
type Framework interface {
	// IsFactoryCall reports whether n is a call creating a component
	// element, such as React.createElement.
	IsFactoryCall(n syntax.Node) bool

	// IsHostElement reports whether n renders a host (DOM) component
	// rather than a user component.
	IsHostElement(n syntax.Node) bool
}

// Stage holds everything one file's pass needs. All fields are
// required.
type Stage struct {
	// Settings are the resolved rule options.
	Settings config.Settings

	// Framework decides factory and host-element questions.
	Framework Framework

	// Report receives each finding: the usage site and the allocation
	// kind. It must not retain the node past the tree's lifetime.
	Report func(site syntax.Node, kind report.Kind)
}

// Analyze runs the pass over tree in a single pre-order traversal.
func (s *Stage) Analyze(ctx context.Context, tree *syntax.Tree) {
	defer trace.StartRegion(ctx, "analyze").End()

	v := &visitor{stage: s, scopes: scope.NewRegistry()}
	syntax.Walk(v, tree.Root())
}

// visitor dispatches traversal events to the recorder and resolver.
// Blocks are entered before their contents and left after them, so the
// registry's open chain always mirrors the lexical nesting of the node
// under visit.
type visitor struct {
	stage  *Stage
	scopes *scope.Registry
}

func (v *visitor) Enter(n syntax.Node) bool {
	switch n.Kind() {
	case syntax.KindStatementBlock:
		v.scopes.Enter(n.StartByte())

	case syntax.KindLexicalDeclaration:
		v.recordBindings(n)

	case syntax.KindJSXAttribute:
		v.checkAttribute(n)

	case syntax.KindCall:
		v.checkFactoryCall(n)
	}

	return true
}

func (v *visitor) Leave(n syntax.Node) {
	if n.Kind() == syntax.KindStatementBlock {
		v.scopes.Leave()
	}
}
