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
	"go/token"
	"slices"

	tokfmt "github.com/gx-org/tokens/base/fmt"
	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/types"
)

// ArrayToken is a sequence of tokens of the same type.
type ArrayToken interface {
	Token

	// ElementType returns the type of the elements.
	ElementType() types.Type

	// Len returns the number of elements.
	Len() int

	// Element returns the element at index i.
	Element(i int) (Token, error)

	// Elements returns all the elements.
	Elements() []Token

	// depth returns the number of updates chained on the array.
	depth() int
}

// Array is a sequence of tokens converted to the same type.
type Array struct {
	elemType types.Type
	elems    []Token
}

var (
	_ ArrayToken      = (*Array)(nil)
	_ binaryToken     = (*Array)(nil)
	_ comparableToken = (*Array)(nil)
)

// NewArray returns an array. The type of the elements is the least upper bound
// of the types of all elements and all elements are converted to that type.
// The array needs at least one element: use NewEmptyArray to create
// an empty array.
func (o *Ops) NewArray(elems ...Token) (*Array, error) {
	if len(elems) == 0 {
		return nil, fmterr.Unsupportedf("cannot infer the type of an empty array")
	}
	typs := make([]types.Type, len(elems))
	for i, elem := range elems {
		typs[i] = elem.Type()
	}
	return o.newArrayOfType(o.lat.LeastUpperBoundOf(typs...), elems)
}

// NewArray returns an array using the default evaluator.
func NewArray(elems ...Token) (*Array, error) {
	return Default().NewArray(elems...)
}

// NewEmptyArray returns an array without any element.
func NewEmptyArray(elemType types.Type) *Array {
	return &Array{elemType: elemType}
}

func (o *Ops) newArrayOfType(elemType types.Type, elems []Token) (*Array, error) {
	converted := make([]Token, len(elems))
	for i, elem := range elems {
		var err error
		if converted[i], err = o.Convert(elemType, elem); err != nil {
			return nil, err
		}
	}
	return &Array{elemType: elemType, elems: converted}, nil
}

func (*Array) token() {}

// Type of the token.
func (a *Array) Type() types.Type {
	return types.NewArray(a.elemType)
}

// ElementType returns the type of the elements.
func (a *Array) ElementType() types.Type {
	return a.elemType
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.elems)
}

// Element returns the element at index i.
func (a *Array) Element(i int) (Token, error) {
	if i < 0 || i >= len(a.elems) {
		return nil, fmterr.Index(i, len(a.elems))
	}
	return a.elems[i], nil
}

// Elements returns a copy of the elements.
func (a *Array) Elements() []Token {
	return slices.Clone(a.elems)
}

// Subarray returns count elements starting at index.
// The subarray is truncated if it extends past the end of the array.
func (a *Array) Subarray(index, count int) (*Array, error) {
	if index < 0 || index > len(a.elems) {
		return nil, fmterr.Index(index, len(a.elems)+1)
	}
	if count < 0 {
		return nil, fmterr.Unsupportedf("subarray: negative number of elements %d", count)
	}
	end := min(index+count, len(a.elems))
	return &Array{elemType: a.elemType, elems: slices.Clone(a.elems[index:end])}, nil
}

func (*Array) depth() int { return 0 }

// Equal returns true if other is an array with the same element type and
// the same elements.
func (a *Array) Equal(other Token) bool {
	return equalArrays(a, other)
}

func equalArrays(a ArrayToken, other Token) bool {
	o, ok := other.(ArrayToken)
	if !ok || a.Len() != o.Len() || !a.ElementType().Equal(o.ElementType()) {
		return false
	}
	aElems, oElems := a.Elements(), o.Elements()
	for i, elem := range aElems {
		if !elem.Equal(oElems[i]) {
			return false
		}
	}
	return true
}

// String returns the elements between braces.
// Empty arrays are written emptyArray(type).
func (a *Array) String() string {
	if len(a.elems) == 0 {
		return "emptyArray(" + a.elemType.String() + ")"
	}
	return "{" + tokfmt.Join(a.elems, ", ") + "}"
}

func (o *Ops) mapArray(a ArrayToken, f func(Token) (Token, error)) (*Array, error) {
	elems := a.Elements()
	if len(elems) == 0 {
		return NewEmptyArray(a.ElementType()), nil
	}
	out := make([]Token, len(elems))
	for i, elem := range elems {
		var err error
		if out[i], err = f(elem); err != nil {
			return nil, err
		}
	}
	return o.NewArray(out...)
}

func (a *Array) binary(ops *Ops, op token.Token, y Token) (Token, error) {
	b := y.(ArrayToken)
	if a.Len() != b.Len() {
		return nil, fmterr.Unsupportedf("%s not supported between arrays of length %d and %d", opName(op), a.Len(), b.Len())
	}
	if a.Len() == 0 {
		return NewEmptyArray(ops.lat.LeastUpperBound(a.elemType, b.ElementType())), nil
	}
	bElems := b.Elements()
	out := make([]Token, len(a.elems))
	for i, elem := range a.elems {
		var err error
		if out[i], err = ops.binary(op, elem, bElems[i]); err != nil {
			return nil, err
		}
	}
	return ops.NewArray(out...)
}

func (a *Array) unary(ops *Ops, op token.Token) (Token, error) {
	return ops.mapArray(a, func(x Token) (Token, error) {
		return ops.unary(op, x)
	})
}

func (a *Array) absolute(ops *Ops) (Token, error) {
	return ops.mapArray(a, ops.Absolute)
}

func (a *Array) one(ops *Ops) (Token, error) {
	return ops.mapArray(a, ops.One)
}

func (a *Array) zero(ops *Ops) (Token, error) {
	return ops.mapArray(a, ops.Zero)
}

func (a *Array) compare(ops *Ops, op token.Token, y Token) (bool, error) {
	if op != token.EQL {
		return false, fmterr.Unsupported(opName(op), a.Type())
	}
	b := y.(ArrayToken)
	if a.Len() != b.Len() {
		return false, nil
	}
	bElems := b.Elements()
	for i, elem := range a.elems {
		eq, err := ops.IsEqualTo(elem, bElems[i])
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

func (a *Array) isCloseTo(ops *Ops, y Token, epsilon float64) (bool, error) {
	b := y.(ArrayToken)
	if a.Len() != b.Len() {
		return false, nil
	}
	bElems := b.Elements()
	for i, elem := range a.elems {
		near, err := ops.IsCloseTo(elem, bElems[i], epsilon)
		if err != nil || !near {
			return false, err
		}
	}
	return true, nil
}

// UpdatedArray is an array with one element replaced.
// The array being updated is shared and not copied.
type UpdatedArray struct {
	ops      *Ops
	base     ArrayToken
	index    int
	value    Token
	elemType types.Type
	updates  int
}

var (
	_ ArrayToken      = (*UpdatedArray)(nil)
	_ binaryToken     = (*UpdatedArray)(nil)
	_ comparableToken = (*UpdatedArray)(nil)
)

// Update returns an array with the element at index replaced by value.
// The type of the elements of the returned array is the least upper bound of
// the type of the elements of arr and the type of value.
// If more than Options.MaxUpdateDepth updates are chained, a new array
// holding all the elements is returned.
func (o *Ops) Update(arr ArrayToken, index int, value Token) (ArrayToken, error) {
	if index < 0 || index >= arr.Len() {
		return nil, fmterr.Index(index, arr.Len())
	}
	elemType := o.lat.LeastUpperBound(arr.ElementType(), value.Type())
	value, err := o.Convert(elemType, value)
	if err != nil {
		return nil, err
	}
	updates := arr.depth() + 1
	if updates > o.opts.MaxUpdateDepth {
		elems := arr.Elements()
		elems[index] = value
		flat, err := o.newArrayOfType(elemType, elems)
		if err != nil {
			return nil, err
		}
		return flat, nil
	}
	return &UpdatedArray{
		ops:      o,
		base:     arr,
		index:    index,
		value:    value,
		elemType: elemType,
		updates:  updates,
	}, nil
}

// Update returns an array with one element replaced using the default evaluator.
func Update(arr ArrayToken, index int, value Token) (ArrayToken, error) {
	return Default().Update(arr, index, value)
}

func (*UpdatedArray) token() {}

// Type of the token.
func (u *UpdatedArray) Type() types.Type {
	return types.NewArray(u.elemType)
}

// ElementType returns the type of the elements.
func (u *UpdatedArray) ElementType() types.Type {
	return u.elemType
}

// Len returns the number of elements.
func (u *UpdatedArray) Len() int {
	return u.base.Len()
}

// Element returns the element at index i.
func (u *UpdatedArray) Element(i int) (Token, error) {
	if i == u.index {
		return u.value, nil
	}
	elem, err := u.base.Element(i)
	if err != nil {
		return nil, err
	}
	return u.ops.Convert(u.elemType, elem)
}

// Elements returns all the elements.
func (u *UpdatedArray) Elements() []Token {
	elems := make([]Token, u.Len())
	for i := range elems {
		// Errors cannot happen: the index is valid and the type of
		// the base elements is lower than the type of the elements.
		elems[i], _ = u.Element(i)
	}
	return elems
}

func (u *UpdatedArray) depth() int { return u.updates }

// Flatten returns an array with all the elements of the updated array.
func (u *UpdatedArray) Flatten() *Array {
	return &Array{elemType: u.elemType, elems: u.Elements()}
}

// Equal returns true if other is an array with the same element type and
// the same elements.
func (u *UpdatedArray) Equal(other Token) bool {
	return equalArrays(u, other)
}

// String returns the elements between braces.
func (u *UpdatedArray) String() string {
	return u.Flatten().String()
}

func (u *UpdatedArray) binary(ops *Ops, op token.Token, y Token) (Token, error) {
	return u.Flatten().binary(ops, op, y)
}

func (u *UpdatedArray) unary(ops *Ops, op token.Token) (Token, error) {
	return u.Flatten().unary(ops, op)
}

func (u *UpdatedArray) absolute(ops *Ops) (Token, error) {
	return u.Flatten().absolute(ops)
}

func (u *UpdatedArray) one(ops *Ops) (Token, error) {
	return u.Flatten().one(ops)
}

func (u *UpdatedArray) zero(ops *Ops) (Token, error) {
	return u.Flatten().zero(ops)
}

func (u *UpdatedArray) compare(ops *Ops, op token.Token, y Token) (bool, error) {
	return u.Flatten().compare(ops, op, y)
}

func (u *UpdatedArray) isCloseTo(ops *Ops, y Token, epsilon float64) (bool, error) {
	return u.Flatten().isCloseTo(ops, y, epsilon)
}
