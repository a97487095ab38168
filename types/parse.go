// Copyright 2025 Google LLC
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

package types

import (
	"strings"

	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/types/kind"
)

// Parse returns the type given its name.
// Supported names are the names of base types (e.g. int, [double], general)
// and arrays of supported types written between braces (e.g. {{int}}).
func Parse(name string) (Type, error) {
	name = strings.TrimSpace(name)
	if inner, ok := strings.CutPrefix(name, "{"); ok {
		inner, ok = strings.CutSuffix(inner, "}")
		if !ok {
			return nil, fmterr.Malformed(name, "type", nil)
		}
		elem, err := Parse(inner)
		if err != nil {
			return nil, err
		}
		return NewArray(elem), nil
	}
	k, ok := kind.FromString(name)
	if !ok || k.IsStructured() {
		return nil, fmterr.Malformed(name, "type", nil)
	}
	return TypeFromKind(k), nil
}
