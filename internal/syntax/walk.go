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

package syntax

// Visitor is the callback pair for [Walk].
type Visitor interface {
	// Enter is called before any child of n is visited. Returning false
	// skips the subtree, including the matching Leave call.
	Enter(n Node) bool

	// Leave is called after all children of n have been visited.
	Leave(n Node)
}

// Walk performs a single pre-order traversal of the subtree rooted at n,
// visiting named nodes only.
func Walk(v Visitor, n Node) {
	if !n.Exists() || !v.Enter(n) {
		return
	}

	for i := range n.NamedChildCount() {
		Walk(v, n.NamedChild(i))
	}

	v.Leave(n)
}
