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

// Package analyze implements the fresh-allocation rule pass.
//
// # Overview
//
// The pass flags array and object literals supplied as component
// property values. A fresh literal compares unequal to its previous
// render's value, so memoized children re-render every time:
//
//	function Toolbar() {
//	    return <Menu items={['save', 'load']}/>;  // new array every render
//	}
//
// The indirect form through a local constant is flagged at the point of
// use:
//
//	function Toolbar() {
//	    const items = ['save', 'load'];
//	    return <Menu items={items}/>;  // same array, still fresh per render
//	}
//
// Hoisting the literal out of the component, or memoizing it, resolves
// both findings.
//
// # Architecture
//
// One pre-order traversal drives four small units:
//
//  1. Classifier: decide whether an expression is a fresh allocation,
//     looking through parentheses and conditional branches
//  2. Recorder: note which block-scoped constants are bound to such
//     allocations
//  3. Resolver: inspect property sites (JSX attributes and
//     createElement-style property objects), following bare
//     identifiers through the recorded bindings
//  4. Reporter: an injected callback receiving the offending site and
//     the allocation kind
//
// Block nesting is tracked by [scope.Registry]; what counts as a
// component factory or a host element is decided by an injected
// [Framework].
//
// # Limitations
//
// The analysis is purely syntactic. It does not follow reassignment,
// mutation, values returned from calls, or bindings imported from other
// files, and it never proves runtime identity. `let` and `var` bindings
// are deliberately not tracked.
package analyze
