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

// Package analyzer implements the jsx-no-new-allocation-as-prop lint rule.
//
// # Overview
//
// The rule flags array and object literals allocated directly in component
// props. A fresh literal compares unequal to the previous render's value,
// which defeats memoized children and effect dependency lists.
//
// # Example
//
// Reported:
//
//	function Toolbar() {
//	    return <Menu items={["cut", "copy"]} style={{width: 80}} />;
//	}
//
// Hoisting the allocations out of the component keeps the prop values
// stable across renders:
//
//	const ITEMS = ["cut", "copy"];
//	const STYLE = {width: 80};
//
//	function Toolbar() {
//	    return <Menu items={ITEMS} style={STYLE} />;
//	}
//
// # Recognized Allocation Sites
//
// The rule reports:
//
//   - Literals in JSX attribute values, directly or behind parentheses
//     and ternary branches
//   - Local const bindings of such literals, resolved through the lexical
//     block chain of the usage site
//   - Literals in the props argument of createElement-style factory calls
package analyzer
