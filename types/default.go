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
	"sync"

	"github.com/gx-org/tokens/base/fmterr"
)

var defaultLattice = sync.OnceValue(func() *Lattice {
	lat, err := NewLattice()
	if err != nil {
		panic(fmterr.Internal(err))
	}
	return lat
})

// Default returns the type lattice shared by the whole process.
// The lattice is built on the first call.
func Default() *Lattice {
	return defaultLattice()
}
