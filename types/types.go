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

// Package types defines the types of tokens and the lattice ordering them.
//
// A type A is lower than a type B if any token of type A can be converted
// to type B without losing information.
package types

import "github.com/gx-org/tokens/types/kind"

// Type of a token.
type Type interface {
	typ() // Make sure all types are implemented in this package.

	// Kind returns the tag of the type.
	Kind() kind.Kind

	// Equal returns true if other is the same type.
	Equal(other Type) bool

	// IsInstantiable returns true if a token can have exactly that type.
	IsInstantiable() bool

	// String representation of the type.
	String() string
}

// Base is a type without parameters, fully identified by its kind.
type Base struct {
	knd kind.Kind
}

var _ Type = (*Base)(nil)

var bases = func() []*Base {
	bs := make([]*Base, kind.Max)
	for _, k := range kind.All() {
		if k.IsStructured() {
			continue
		}
		bs[k] = &Base{knd: k}
	}
	return bs
}()

// Base types.
var (
	Unknown          = bases[kind.Unknown]
	Boolean          = bases[kind.Boolean]
	UnsignedByte     = bases[kind.UnsignedByte]
	Int              = bases[kind.Int]
	Long             = bases[kind.Long]
	Double           = bases[kind.Double]
	Complex          = bases[kind.Complex]
	FixedPoint       = bases[kind.FixedPoint]
	Scalar           = bases[kind.Scalar]
	BooleanMatrix    = bases[kind.BooleanMatrix]
	IntMatrix        = bases[kind.IntMatrix]
	LongMatrix       = bases[kind.LongMatrix]
	DoubleMatrix     = bases[kind.DoubleMatrix]
	ComplexMatrix    = bases[kind.ComplexMatrix]
	FixedPointMatrix = bases[kind.FixedPointMatrix]
	Matrix           = bases[kind.Matrix]
	String           = bases[kind.String]
	Object           = bases[kind.Object]
	XML              = bases[kind.XML]
	Date             = bases[kind.Date]
	Event            = bases[kind.Event]
	General          = bases[kind.General]
)

// TypeFromKind returns the base type of a kind.
// Returns nil if the kind is structured.
func TypeFromKind(k kind.Kind) *Base {
	if k >= kind.Max {
		return nil
	}
	return bases[k]
}

func (*Base) typ() {}

// Kind of the type.
func (t *Base) Kind() kind.Kind {
	return t.knd
}

// Equal returns true if other is the same base type.
func (t *Base) Equal(other Type) bool {
	o, ok := other.(*Base)
	return ok && o.knd == t.knd
}

// IsInstantiable returns true if the kind is not abstract.
func (t *Base) IsInstantiable() bool {
	return !t.knd.IsAbstract()
}

// String returns the name of the kind.
func (t *Base) String() string {
	return t.knd.String()
}

// Array is the type of arrays with elements of the same type.
type Array struct {
	elem Type
}

var _ Type = (*Array)(nil)

// NewArray returns the type of arrays with elements of type elem.
func NewArray(elem Type) *Array {
	return &Array{elem: elem}
}

func (*Array) typ() {}

// Kind of the type.
func (*Array) Kind() kind.Kind {
	return kind.Array
}

// Elem returns the type of the elements.
func (t *Array) Elem() Type {
	return t.elem
}

// Equal returns true if other is an array type with the same element type.
func (t *Array) Equal(other Type) bool {
	o, ok := other.(*Array)
	return ok && t.elem.Equal(o.elem)
}

// IsInstantiable returns true if the element type is instantiable.
func (t *Array) IsInstantiable() bool {
	return t.elem.IsInstantiable()
}

// String representation of the type.
func (t *Array) String() string {
	return "{" + t.elem.String() + "}"
}
