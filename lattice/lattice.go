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

// Package lattice implements finite lattices over comparable nodes.
//
// A lattice is built once from a set of nodes and a set of edges
// where an edge from x to y states that x is lower than y.
// Build computes the partial order (the reflexive transitive closure of the edges)
// and checks that every pair of nodes has a unique least upper bound and
// a unique greatest lower bound. Queries on the resulting Lattice are
// read-only and safe for concurrent use.
package lattice

import (
	"fmt"
	"math/bits"
)

// Relation between two elements of a partial order.
type Relation int

const (
	// Incomparable means neither element is lower than the other.
	Incomparable Relation = iota
	// Lower means the first element is strictly lower than the second.
	Lower
	// Same means both elements are equal.
	Same
	// Higher means the first element is strictly higher than the second.
	Higher
)

// Inverse returns the relation obtained by swapping the operands.
func (r Relation) Inverse() Relation {
	switch r {
	case Lower:
		return Higher
	case Higher:
		return Lower
	}
	return r
}

// String representation of the relation.
func (r Relation) String() string {
	switch r {
	case Lower:
		return "LOWER"
	case Same:
		return "SAME"
	case Higher:
		return "HIGHER"
	case Incomparable:
		return "INCOMPARABLE"
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (s bitset) set(i int) {
	s[i/64] |= 1 << (uint(i) % 64)
}

func (s bitset) has(i int) bool {
	return s[i/64]&(1<<(uint(i)%64)) != 0
}

func (s bitset) or(o bitset) {
	for i := range s {
		s[i] |= o[i]
	}
}

func (s bitset) and(o bitset) bitset {
	r := make(bitset, len(s))
	for i := range s {
		r[i] = s[i] & o[i]
	}
	return r
}

// subsetOf returns true if all the elements of s are in o.
func (s bitset) subsetOf(o bitset) bool {
	for i := range s {
		if s[i]&^o[i] != 0 {
			return false
		}
	}
	return true
}

func (s bitset) count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Lattice is an immutable finite lattice.
type Lattice[N comparable] struct {
	nodes []N
	index map[N]int
	// up[i] is the set of nodes j such that i <= j.
	up []bitset
	// down[i] is the set of nodes j such that j <= i.
	down []bitset
	// lub[i][j] and glb[i][j] are precomputed node indices.
	lub, glb [][]int
	bottom   int
	top      int
}

func (l *Lattice[N]) indices(a, b N) (int, int, bool) {
	i, aOk := l.index[a]
	j, bOk := l.index[b]
	return i, j, aOk && bOk
}

// Contains returns true if n is a node of the lattice.
func (l *Lattice[N]) Contains(n N) bool {
	_, ok := l.index[n]
	return ok
}

// Compare returns the relation of a with respect to b.
// Nodes which are not in the lattice are incomparable to everything.
func (l *Lattice[N]) Compare(a, b N) Relation {
	i, j, ok := l.indices(a, b)
	if !ok {
		return Incomparable
	}
	switch {
	case i == j:
		return Same
	case l.up[i].has(j):
		return Lower
	case l.up[j].has(i):
		return Higher
	}
	return Incomparable
}

// LeastUpperBound returns the least upper bound of a and b.
// Returns false if a or b is not in the lattice.
func (l *Lattice[N]) LeastUpperBound(a, b N) (N, bool) {
	i, j, ok := l.indices(a, b)
	if !ok {
		var zero N
		return zero, false
	}
	return l.nodes[l.lub[i][j]], true
}

// GreatestLowerBound returns the greatest lower bound of a and b.
// Returns false if a or b is not in the lattice.
func (l *Lattice[N]) GreatestLowerBound(a, b N) (N, bool) {
	i, j, ok := l.indices(a, b)
	if !ok {
		var zero N
		return zero, false
	}
	return l.nodes[l.glb[i][j]], true
}

// Top returns the greatest element of the lattice.
func (l *Lattice[N]) Top() N {
	return l.nodes[l.top]
}

// Bottom returns the least element of the lattice.
func (l *Lattice[N]) Bottom() N {
	return l.nodes[l.bottom]
}

// Nodes returns the nodes of the lattice in the order in which they were added.
func (l *Lattice[N]) Nodes() []N {
	return append([]N{}, l.nodes...)
}

// Above returns all the nodes strictly higher than n.
func (l *Lattice[N]) Above(n N) []N {
	i, ok := l.index[n]
	if !ok {
		return nil
	}
	var r []N
	for j, node := range l.nodes {
		if j != i && l.up[i].has(j) {
			r = append(r, node)
		}
	}
	return r
}
