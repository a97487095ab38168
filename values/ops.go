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

package values

import (
	"sync"

	"github.com/gx-org/tokens/types"
)

// DefaultMaxUpdateDepth is the maximum number of updates chained on an array
// when Options.MaxUpdateDepth is not set.
const DefaultMaxUpdateDepth = 64

// Options to evaluate operators on tokens.
type Options struct {
	// MaxUpdateDepth is the maximum number of updates chained on an array.
	// Past that depth, the updates are flattened into a new array.
	MaxUpdateDepth int
}

// Ops evaluates operators on tokens given a type lattice.
type Ops struct {
	lat  *types.Lattice
	opts Options
}

// NewOps returns a new evaluator of operators.
func NewOps(lat *types.Lattice, opts Options) *Ops {
	if opts.MaxUpdateDepth <= 0 {
		opts.MaxUpdateDepth = DefaultMaxUpdateDepth
	}
	return &Ops{lat: lat, opts: opts}
}

var defaultOps = sync.OnceValue(func() *Ops {
	return NewOps(types.Default(), Options{})
})

// Default returns the evaluator using the default type lattice and options.
func Default() *Ops {
	return defaultOps()
}

// Lattice returns the type lattice used to unify operands.
func (o *Ops) Lattice() *types.Lattice {
	return o.lat
}

// Options returns the options of the evaluator.
func (o *Ops) Options() Options {
	return o.opts
}
