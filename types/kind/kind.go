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

// Package kind defines the tags identifying the variants of types and tokens.
package kind

import "github.com/gx-org/backend/dtype"

// Kind of a type.
type Kind uint

// Kinds of the type system.
const (
	// Unknown is the bottom of the type lattice (not a type).
	// It converts to every other type and no token has this kind.
	Unknown Kind = iota

	Boolean
	UnsignedByte
	Int
	Long
	Double
	Complex
	FixedPoint
	// Scalar is the abstract supertype of all numbers.
	Scalar

	BooleanMatrix
	IntMatrix
	LongMatrix
	DoubleMatrix
	ComplexMatrix
	FixedPointMatrix
	// Matrix is the abstract supertype of all matrices.
	Matrix

	String
	Object
	XML
	Date
	Event

	Array
	Record
	Union
	Function

	// General is the top of the type lattice.
	General

	// Max value for a Kind constant.
	Max
)

var names = [...]string{
	Unknown:          "unknown",
	Boolean:          "boolean",
	UnsignedByte:     "unsignedByte",
	Int:              "int",
	Long:             "long",
	Double:           "double",
	Complex:          "complex",
	FixedPoint:       "fixedpoint",
	Scalar:           "scalar",
	BooleanMatrix:    "[boolean]",
	IntMatrix:        "[int]",
	LongMatrix:       "[long]",
	DoubleMatrix:     "[double]",
	ComplexMatrix:    "[complex]",
	FixedPointMatrix: "[fixedpoint]",
	Matrix:           "matrix",
	String:           "string",
	Object:           "object",
	XML:              "xmltoken",
	Date:             "date",
	Event:            "event",
	Array:            "arrayType",
	Record:           "record",
	Union:            "union",
	Function:         "function",
	General:          "general",
}

// String returns a string representation of a kind.
func (k Kind) String() string {
	if k >= Max {
		return "invalid"
	}
	return names[k]
}

// All returns all the valid kinds.
func All() []Kind {
	all := make([]Kind, Max)
	for i := range all {
		all[i] = Kind(i)
	}
	return all
}

// FromString returns a kind given its name.
// Returns false if the name does not match any kind.
func FromString(ident string) (Kind, bool) {
	for k, name := range names {
		if name == ident {
			return Kind(k), true
		}
	}
	return Max, false
}

// IsStructured returns true if the types of the kind are parameterized by other types.
func (k Kind) IsStructured() bool {
	switch k {
	case Array, Record, Union, Function:
		return true
	}
	return false
}

// IsAbstract returns true if no token can be of that kind.
func (k Kind) IsAbstract() bool {
	switch k {
	case Unknown, Scalar, Matrix, General:
		return true
	}
	return false
}

// IsInteger returns true if the kind is an integer.
func (k Kind) IsInteger() bool {
	switch k {
	case UnsignedByte, Int, Long:
		return true
	}
	return false
}

// IsFloat returns true if the kind is a floating point number
// (for which closeness is not equality).
func (k Kind) IsFloat() bool {
	switch k {
	case Double, Complex:
		return true
	}
	return false
}

// IsScalar returns true if the kind is a concrete number.
func (k Kind) IsScalar() bool {
	switch k {
	case UnsignedByte, Int, Long, Double, Complex, FixedPoint:
		return true
	}
	return false
}

// IsMatrix returns true if the kind is a concrete matrix.
func (k Kind) IsMatrix() bool {
	return k.ElementKind() != Unknown
}

// SupportsBitwise returns true if bit patterns of tokens of that kind are meaningful.
// A matrix supports bitwise operations if its elements do.
func (k Kind) SupportsBitwise() bool {
	if k.IsMatrix() {
		k = k.ElementKind()
	}
	return k == Boolean || k.IsInteger()
}

// SupportsOrdering returns true if tokens of that kind can be compared with less than.
func (k Kind) SupportsOrdering() bool {
	switch k {
	case UnsignedByte, Int, Long, Double, FixedPoint, Date, String:
		return true
	}
	return false
}

var matrixOf = map[Kind]Kind{
	Boolean:    BooleanMatrix,
	Int:        IntMatrix,
	Long:       LongMatrix,
	Double:     DoubleMatrix,
	Complex:    ComplexMatrix,
	FixedPoint: FixedPointMatrix,
}

// ElementKind returns the kind of the elements of a matrix kind.
// Returns Unknown if the kind is not a concrete matrix.
func (k Kind) ElementKind() Kind {
	for elt, mat := range matrixOf {
		if mat == k {
			return elt
		}
	}
	return Unknown
}

// MatrixKind returns the kind of a matrix with elements of kind k.
// Returns Unknown if no matrix has elements of that kind.
func (k Kind) MatrixKind() Kind {
	mat, ok := matrixOf[k]
	if !ok {
		return Unknown
	}
	return mat
}

// DType returns the backend data type storing a value of that kind or of the
// elements of a matrix of that kind. Returns dtype.Invalid if the backend
// has no corresponding data type.
func (k Kind) DType() dtype.DataType {
	if k.IsMatrix() {
		k = k.ElementKind()
	}
	switch k {
	case Boolean:
		return dtype.Bool
	case Int:
		return dtype.Int32
	case Long:
		return dtype.Int64
	case Double:
		return dtype.Float64
	}
	return dtype.Invalid
}
