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

/*
Package ruleset builds configured analyzers from configuration documents.

# Usage

A configuration document names each rule and its options:

	---
	rules:
	  jsx-no-new-allocation-as-prop:
	    allowArrays: false
	    severity: warning

[New] checks the rule name against the rules this module provides, decodes
the raw options payload and returns the configured analyzer. Unknown rule
names and unknown option keys are rejected with a suggestion for the
closest known name.
*/
package ruleset
