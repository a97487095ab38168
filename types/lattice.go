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
	"slices"

	"github.com/gx-org/tokens/base/sync"
	"github.com/gx-org/tokens/lattice"
	"github.com/gx-org/tokens/types/kind"
)

// edges of the lattice of base kinds. Each pair is (lower, higher).
// Edges from Unknown are added by NewLattice.
var edges = [][2]kind.Kind{
	{kind.UnsignedByte, kind.Int},
	{kind.Int, kind.Long},
	{kind.Long, kind.Double},
	{kind.Double, kind.Complex},
	{kind.Complex, kind.Scalar},
	{kind.FixedPoint, kind.Scalar},
	{kind.Scalar, kind.Matrix},

	{kind.Boolean, kind.BooleanMatrix},
	{kind.Int, kind.IntMatrix},
	{kind.Long, kind.LongMatrix},
	{kind.Double, kind.DoubleMatrix},
	{kind.Complex, kind.ComplexMatrix},
	{kind.FixedPoint, kind.FixedPointMatrix},

	{kind.IntMatrix, kind.LongMatrix},
	{kind.LongMatrix, kind.DoubleMatrix},
	{kind.DoubleMatrix, kind.ComplexMatrix},
	{kind.ComplexMatrix, kind.Matrix},
	{kind.FixedPointMatrix, kind.Matrix},
	{kind.BooleanMatrix, kind.Matrix},

	{kind.Matrix, kind.General},
	{kind.String, kind.General},
	{kind.Object, kind.General},
	{kind.XML, kind.General},
	{kind.Date, kind.General},
	{kind.Event, kind.General},
	{kind.Array, kind.General},
	{kind.Record, kind.General},
	{kind.Union, kind.General},
	{kind.Function, kind.General},
}

type typePair struct {
	a, b string
}

// Lattice orders types.
// Base types are ordered by the lattice of their kinds.
// Structured types of the same kind are ordered by their parameters.
// Two types of different structured kinds are incomparable.
type Lattice struct {
	kinds *lattice.Lattice[kind.Kind]
	memo  sync.Map[typePair, lattice.Relation]
}

// NewLattice builds the type lattice.
func NewLattice() (*Lattice, error) {
	b := lattice.NewBuilder[kind.Kind]()
	b.AddNode(kind.All()...)
	hasLower := make(map[kind.Kind]bool)
	for _, edge := range edges {
		b.AddEdge(edge[0], edge[1])
		hasLower[edge[1]] = true
	}
	for _, k := range kind.All() {
		if k == kind.Unknown || hasLower[k] {
			continue
		}
		b.AddEdge(kind.Unknown, k)
	}
	kinds, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &Lattice{kinds: kinds}, nil
}

// Kinds returns the lattice of kinds.
func (l *Lattice) Kinds() *lattice.Lattice[kind.Kind] {
	return l.kinds
}

// Top returns the type higher than all other types.
func (l *Lattice) Top() Type {
	return TypeFromKind(l.kinds.Top())
}

// Bottom returns the type lower than all other types.
func (l *Lattice) Bottom() Type {
	return TypeFromKind(l.kinds.Bottom())
}

// Supertypes returns the types strictly higher than a base type,
// in the order in which their kinds were added to the lattice.
// Returns nil for structured types. Structured kinds are skipped.
func (l *Lattice) Supertypes(t Type) []Type {
	k := t.Kind()
	if k.IsStructured() || !l.kinds.Contains(k) {
		return nil
	}
	var typs []Type
	for _, above := range l.kinds.Above(k) {
		if above.IsStructured() {
			continue
		}
		typs = append(typs, TypeFromKind(above))
	}
	return typs
}

// IsInstantiable returns true if a token can be of type t.
func (l *Lattice) IsInstantiable(t Type) bool {
	return t.IsInstantiable()
}

func isStructuredPair(a, b Type) bool {
	return a.Kind() == b.Kind() && a.Kind().IsStructured()
}

// Compare returns the relation between a and b in the lattice.
func (l *Lattice) Compare(a, b Type) lattice.Relation {
	if !isStructuredPair(a, b) {
		return l.kinds.Compare(a.Kind(), b.Kind())
	}
	key := typePair{a: a.String(), b: b.String()}
	return l.memo.LoadOrCompute(key, func() lattice.Relation {
		return l.compareStructured(a, b)
	})
}

// IsLowerOrSame returns true if a token of type a can be converted to type b.
func (l *Lattice) IsLowerOrSame(a, b Type) bool {
	switch l.Compare(a, b) {
	case lattice.Lower, lattice.Same:
		return true
	}
	return false
}

func (l *Lattice) compareStructured(a, b Type) lattice.Relation {
	if a.Equal(b) {
		return lattice.Same
	}
	var le func(x, y Type) bool
	switch a.(type) {
	case *Array:
		le = l.arrayLE
	case *Record:
		le = l.recordLE
	case *Union:
		le = l.unionLE
	case *Function:
		le = l.functionLE
	default:
		return lattice.Incomparable
	}
	if le(a, b) {
		return lattice.Lower
	}
	if le(b, a) {
		return lattice.Higher
	}
	return lattice.Incomparable
}

func (l *Lattice) arrayLE(x, y Type) bool {
	return l.IsLowerOrSame(x.(*Array).elem, y.(*Array).elem)
}

// fieldsLE returns true if every label of sub is defined in super and
// the field of sub is lower or the same as the field of super.
func (l *Lattice) fieldsLE(sub, super *fields) bool {
	for _, label := range sub.labels {
		superTyp, ok := super.types[label]
		if !ok || !l.IsLowerOrSame(sub.types[label], superTyp) {
			return false
		}
	}
	return true
}

// recordLE returns true if x is a subtype of y, that is x defines at least
// all the labels of y with fields lower or the same.
func (l *Lattice) recordLE(x, y Type) bool {
	rx, ry := x.(*Record), y.(*Record)
	if ry.ordered {
		// Only an ordered record with the same label sequence can be lower.
		return rx.ordered && slices.Equal(rx.labels, ry.labels) && l.fieldsLE(&rx.fields, &ry.fields)
	}
	for _, label := range ry.labels {
		xTyp, ok := rx.types[label]
		if !ok || !l.IsLowerOrSame(xTyp, ry.types[label]) {
			return false
		}
	}
	return true
}

func (l *Lattice) unionLE(x, y Type) bool {
	return l.fieldsLE(&x.(*Union).fields, &y.(*Union).fields)
}

func (l *Lattice) functionLE(x, y Type) bool {
	fx, fy := x.(*Function), y.(*Function)
	if len(fx.args) != len(fy.args) {
		return false
	}
	for i, argX := range fx.args {
		if !l.IsLowerOrSame(fy.args[i], argX) {
			return false
		}
	}
	return l.IsLowerOrSame(fx.result, fy.result)
}

// LeastUpperBound returns the lowest type higher or the same as both a and b.
func (l *Lattice) LeastUpperBound(a, b Type) Type {
	switch l.Compare(a, b) {
	case lattice.Same, lattice.Higher:
		return a
	case lattice.Lower:
		return b
	}
	if isStructuredPair(a, b) {
		return l.structuredLUB(a, b)
	}
	k, _ := l.kinds.LeastUpperBound(a.Kind(), b.Kind())
	return TypeFromKind(k)
}

// LeastUpperBoundOf returns the least upper bound of all the types.
// Returns the bottom of the lattice if no type is given.
func (l *Lattice) LeastUpperBoundOf(typs ...Type) Type {
	var lub Type = l.Bottom()
	for _, typ := range typs {
		lub = l.LeastUpperBound(lub, typ)
	}
	return lub
}

func (l *Lattice) structuredLUB(a, b Type) Type {
	switch ta := a.(type) {
	case *Array:
		return NewArray(l.LeastUpperBound(ta.elem, b.(*Array).elem))
	case *Record:
		return l.recordLUB(ta, b.(*Record))
	case *Union:
		return l.unionLUB(ta, b.(*Union))
	case *Function:
		tb := b.(*Function)
		if len(ta.args) != len(tb.args) {
			return General
		}
		args := make([]Type, len(ta.args))
		for i, arg := range ta.args {
			args[i] = l.GreatestLowerBound(arg, tb.args[i])
		}
		return NewFunction(args, l.LeastUpperBound(ta.result, tb.result))
	}
	return General
}

func (l *Lattice) recordLUB(a, b *Record) Type {
	if a.ordered && b.ordered && slices.Equal(a.labels, b.labels) {
		typs := make([]Type, len(a.labels))
		for i, label := range a.labels {
			typs[i] = l.LeastUpperBound(a.types[label], b.types[label])
		}
		return &Record{
			fields:  fields{labels: slices.Clone(a.labels), types: zipTypes(a.labels, typs)},
			ordered: true,
		}
	}
	common := a.LabelSet().Intersect(b.LabelSet())
	m := make(map[string]Type, common.Size())
	for label := range common.Items() {
		m[label] = l.LeastUpperBound(a.types[label], b.types[label])
	}
	return RecordFromMap(m)
}

func (l *Lattice) unionLUB(a, b *Union) Type {
	all := a.LabelSet().Union(b.LabelSet())
	m := make(map[string]Type, all.Size())
	for label := range all.Items() {
		ta, okA := a.types[label]
		tb, okB := b.types[label]
		switch {
		case okA && okB:
			m[label] = l.LeastUpperBound(ta, tb)
		case okA:
			m[label] = ta
		default:
			m[label] = tb
		}
	}
	return UnionFromMap(m)
}

// GreatestLowerBound returns the highest type lower or the same as both a and b.
func (l *Lattice) GreatestLowerBound(a, b Type) Type {
	switch l.Compare(a, b) {
	case lattice.Same, lattice.Lower:
		return a
	case lattice.Higher:
		return b
	}
	if isStructuredPair(a, b) {
		return l.structuredGLB(a, b)
	}
	k, _ := l.kinds.GreatestLowerBound(a.Kind(), b.Kind())
	return TypeFromKind(k)
}

func (l *Lattice) structuredGLB(a, b Type) Type {
	switch ta := a.(type) {
	case *Array:
		return NewArray(l.GreatestLowerBound(ta.elem, b.(*Array).elem))
	case *Record:
		return l.recordGLB(ta, b.(*Record))
	case *Union:
		tb := b.(*Union)
		common := ta.LabelSet().Intersect(tb.LabelSet())
		m := make(map[string]Type, common.Size())
		for label := range common.Items() {
			m[label] = l.GreatestLowerBound(ta.types[label], tb.types[label])
		}
		return UnionFromMap(m)
	case *Function:
		tb := b.(*Function)
		if len(ta.args) != len(tb.args) {
			return Unknown
		}
		args := make([]Type, len(ta.args))
		for i, arg := range ta.args {
			args[i] = l.LeastUpperBound(arg, tb.args[i])
		}
		return NewFunction(args, l.GreatestLowerBound(ta.result, tb.result))
	}
	return Unknown
}

func (l *Lattice) recordGLB(a, b *Record) Type {
	switch {
	case a.ordered && b.ordered:
		if !slices.Equal(a.labels, b.labels) {
			return Unknown
		}
		return l.orderedGLB(a, b)
	case a.ordered:
		return l.orderedGLB(a, b)
	case b.ordered:
		return l.orderedGLB(b, a)
	}
	all := a.LabelSet().Union(b.LabelSet())
	m := make(map[string]Type, all.Size())
	for label := range all.Items() {
		ta, okA := a.types[label]
		tb, okB := b.types[label]
		switch {
		case okA && okB:
			m[label] = l.GreatestLowerBound(ta, tb)
		case okA:
			m[label] = ta
		default:
			m[label] = tb
		}
	}
	return RecordFromMap(m)
}

// orderedGLB returns the greatest lower bound of an ordered record and another record
// defining a subset of its labels. The result keeps the order of the ordered record.
func (l *Lattice) orderedGLB(ordered, other *Record) Type {
	if !ordered.LabelSet().Subset(other.LabelSet()) {
		return Unknown
	}
	typs := make([]Type, len(ordered.labels))
	for i, label := range ordered.labels {
		typs[i] = ordered.types[label]
		if otherTyp, ok := other.types[label]; ok {
			typs[i] = l.GreatestLowerBound(typs[i], otherTyp)
		}
	}
	return &Record{
		fields:  fields{labels: slices.Clone(ordered.labels), types: zipTypes(ordered.labels, typs)},
		ordered: true,
	}
}

func zipTypes(labels []string, typs []Type) map[string]Type {
	m := make(map[string]Type, len(labels))
	for i, label := range labels {
		m[label] = typs[i]
	}
	return m
}
