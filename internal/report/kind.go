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

package report

import (
	"fmt"
	"strings"
)

// Kind classifies the allocation a finding is about.
type Kind uint8

const (
	// KindArray marks a freshly allocated array literal.
	KindArray Kind = iota

	// KindObject marks a freshly allocated object literal.
	KindObject
)

// Message returns the fixed diagnostic message for the kind.
func (k Kind) Message() string {
	switch k {
	case KindArray:
		return "Props should not use array allocations"

	case KindObject:
		return "Props should not use object allocations"

	default:
		panic(fmt.Sprintf("unknown violation kind %d", k))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindArray:
		return []byte("array"), nil

	case KindObject:
		return []byte("object"), nil

	default:
		return nil, fmt.Errorf("unknown violation kind %d", k)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "array":
		*k = KindArray

	case "object":
		*k = KindObject

	default:
		return fmt.Errorf("unknown violation kind %q", string(text))
	}

	return nil
}
