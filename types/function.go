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
	"fmt"
	"slices"
	"strings"

	"github.com/gx-org/tokens/types/kind"
)

// Function is the type of functions.
// Functions are contravariant in their arguments and covariant in their result.
type Function struct {
	args   []Type
	result Type
}

var _ Type = (*Function)(nil)

// NewFunction returns a function type.
func NewFunction(args []Type, result Type) *Function {
	return &Function{args: slices.Clone(args), result: result}
}

func (*Function) typ() {}

// Kind of the type.
func (*Function) Kind() kind.Kind {
	return kind.Function
}

// Args returns the types of the arguments.
func (t *Function) Args() []Type {
	return slices.Clone(t.args)
}

// Result returns the type of the result.
func (t *Function) Result() Type {
	return t.result
}

// Equal returns true if other is a function type with the same signature.
func (t *Function) Equal(other Type) bool {
	o, ok := other.(*Function)
	if !ok || len(t.args) != len(o.args) {
		return false
	}
	for i, arg := range t.args {
		if !arg.Equal(o.args[i]) {
			return false
		}
	}
	return t.result.Equal(o.result)
}

// IsInstantiable returns true if all the arguments and the result are instantiable.
func (t *Function) IsInstantiable() bool {
	for _, arg := range t.args {
		if !arg.IsInstantiable() {
			return false
		}
	}
	return t.result.IsInstantiable()
}

// String representation of the type.
func (t *Function) String() string {
	var b strings.Builder
	b.WriteString("(function(")
	for i, arg := range t.args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "a%d:%s", i, arg.String())
	}
	b.WriteString(") ")
	b.WriteString(t.result.String())
	b.WriteString(")")
	return b.String()
}
