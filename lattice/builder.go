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

package lattice

import (
	"github.com/gx-org/tokens/base/fmterr"
)

// Builder accumulates nodes and edges before building a lattice.
// A builder is not safe for concurrent use.
type Builder[N comparable] struct {
	nodes []N
	index map[N]int
	succ  [][]int
	errs  fmterr.Errors
}

// NewBuilder returns a new empty lattice builder.
func NewBuilder[N comparable]() *Builder[N] {
	return &Builder[N]{index: make(map[N]int)}
}

// AddNode adds nodes to the lattice.
func (b *Builder[N]) AddNode(nodes ...N) *Builder[N] {
	for _, n := range nodes {
		if _, dup := b.index[n]; dup {
			b.errs.Append(fmterr.Latticef("node %v added more than once", n))
			continue
		}
		b.index[n] = len(b.nodes)
		b.nodes = append(b.nodes, n)
		b.succ = append(b.succ, nil)
	}
	return b
}

// AddEdge states that lower is lower than higher.
// Both nodes need to have been added before.
func (b *Builder[N]) AddEdge(lower, higher N) *Builder[N] {
	i, iOk := b.index[lower]
	j, jOk := b.index[higher]
	switch {
	case !iOk:
		b.errs.Append(fmterr.Latticef("edge %v->%v: node %v has not been added", lower, higher, lower))
	case !jOk:
		b.errs.Append(fmterr.Latticef("edge %v->%v: node %v has not been added", lower, higher, higher))
	case i == j:
		b.errs.Append(fmterr.Latticef("edge %v->%v: self loop", lower, higher))
	default:
		b.succ[i] = append(b.succ[i], j)
	}
	return b
}

// topologicalOrder returns the node indices such that every node appears
// before all its successors. Returns false if the graph has a cycle.
func (b *Builder[N]) topologicalOrder() ([]int, bool) {
	inDegree := make([]int, len(b.nodes))
	for _, succ := range b.succ {
		for _, j := range succ {
			inDegree[j]++
		}
	}
	var queue, order []int
	for i, d := range inDegree {
		if d == 0 {
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, j := range b.succ[i] {
			inDegree[j]--
			if inDegree[j] == 0 {
				queue = append(queue, j)
			}
		}
	}
	return order, len(order) == len(b.nodes)
}

// Build the lattice. Returns all the violations found in the definition:
// cycles, pairs of nodes without a unique least upper bound or without
// a unique greatest lower bound.
func (b *Builder[N]) Build() (*Lattice[N], error) {
	if !b.errs.Empty() {
		return nil, b.errs.ToError()
	}
	n := len(b.nodes)
	if n == 0 {
		return nil, fmterr.Latticef("lattice has no node")
	}
	order, ok := b.topologicalOrder()
	if !ok {
		return nil, fmterr.Latticef("edges define a cycle: the graph is not a partial order")
	}
	l := &Lattice[N]{
		nodes: append([]N{}, b.nodes...),
		index: make(map[N]int, n),
		up:    make([]bitset, n),
		down:  make([]bitset, n),
	}
	for k, v := range b.index {
		l.index[k] = v
	}
	for i := range n {
		l.up[i] = newBitset(n)
		l.up[i].set(i)
		l.down[i] = newBitset(n)
	}
	// Successors come after in the topological order: close in reverse order.
	for k := n - 1; k >= 0; k-- {
		i := order[k]
		for _, j := range b.succ[i] {
			l.up[i].or(l.up[j])
		}
	}
	for i := range n {
		for j := range n {
			if l.up[i].has(j) {
				l.down[j].set(i)
			}
		}
	}
	var errs fmterr.Errors
	l.bottom, l.top = -1, -1
	for i := range n {
		if l.up[i].count() == n {
			l.bottom = i
		}
		if l.down[i].count() == n {
			l.top = i
		}
	}
	if l.bottom < 0 {
		errs.Append(fmterr.Latticef("lattice has no bottom element"))
	}
	if l.top < 0 {
		errs.Append(fmterr.Latticef("lattice has no top element"))
	}
	l.lub = make([][]int, n)
	l.glb = make([][]int, n)
	for i := range n {
		l.lub[i] = make([]int, n)
		l.glb[i] = make([]int, n)
	}
	for i := range n {
		for j := i; j < n; j++ {
			lub := least(l.up[i].and(l.up[j]), l.up)
			if lub < 0 {
				errs.Append(fmterr.Latticef("%v and %v have no least upper bound", l.nodes[i], l.nodes[j]))
			}
			glb := least(l.down[i].and(l.down[j]), l.down)
			if glb < 0 {
				errs.Append(fmterr.Latticef("%v and %v have no greatest lower bound", l.nodes[i], l.nodes[j]))
			}
			l.lub[i][j], l.lub[j][i] = lub, lub
			l.glb[i][j], l.glb[j][i] = glb, glb
		}
	}
	if !errs.Empty() {
		return nil, errs.ToError()
	}
	return l, nil
}

// least returns the element c of candidates such that all candidates are in rel[c].
// Returns -1 if no such element exists.
func least(candidates bitset, rel []bitset) int {
	for c := range rel {
		if !candidates.has(c) {
			continue
		}
		if candidates.subsetOf(rel[c]) {
			return c
		}
	}
	return -1
}
