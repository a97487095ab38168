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
	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/lattice"
	"github.com/gx-org/tokens/types"
	"github.com/gx-org/tokens/types/kind"
)

// Convert returns a token of type target holding the value of tok.
// The conversion is legal only if the type of tok is lower or the same as target.
// Converting a token to an abstract type returns the token.
func (o *Ops) Convert(target types.Type, tok Token) (Token, error) {
	src := tok.Type()
	switch o.lat.Compare(src, target) {
	case lattice.Same:
		return tok, nil
	case lattice.Lower:
	case lattice.Higher:
		return nil, fmterr.Unsupportedf("cannot convert %s of type %s to %s: the conversion would lose information", tok, src, target)
	default:
		return nil, fmterr.Incomparable("convert", src, target)
	}
	if target.Kind().IsAbstract() {
		return tok, nil
	}
	switch target.Kind() {
	case kind.Int:
		switch tokT := tok.(type) {
		case UnsignedByte:
			return Int(tokT.Int()), nil
		}
	case kind.Long:
		switch tokT := tok.(type) {
		case UnsignedByte:
			return Long(tokT.Long()), nil
		case Int:
			return Long(tokT), nil
		}
	case kind.Double:
		switch tokT := tok.(type) {
		case UnsignedByte:
			return Double(tokT.Double()), nil
		case Int:
			return Double(tokT), nil
		case Long:
			return Double(tokT), nil
		}
	case kind.Complex:
		d, err := o.Convert(types.Double, tok)
		if err != nil {
			return nil, err
		}
		return Complex(complex(float64(d.(Double)), 0)), nil
	case kind.BooleanMatrix:
		return convertToMatrix[bool](o, target, tok)
	case kind.IntMatrix:
		return convertToMatrix[int32](o, target, tok)
	case kind.LongMatrix:
		return convertToMatrix[int64](o, target, tok)
	case kind.DoubleMatrix:
		return convertToMatrix[float64](o, target, tok)
	case kind.ComplexMatrix:
		return convertToMatrix[complex128](o, target, tok)
	case kind.FixedPointMatrix:
		return convertToMatrix[FixedPoint](o, target, tok)
	case kind.Array:
		return o.convertToArray(target.(*types.Array), tok)
	case kind.Record:
		return o.convertToRecord(target.(*types.Record), tok)
	case kind.Union:
		return o.convertToUnion(target.(*types.Union), tok)
	case kind.Function:
		return o.convertToFunction(target.(*types.Function), tok)
	}
	return nil, fmterr.Internalf("conversion from %s to %s not implemented", src, target)
}

func convertToMatrix[T Element](o *Ops, target types.Type, tok Token) (*Matrix[T], error) {
	elemType := types.TypeFromKind(target.Kind().ElementKind())
	if !tok.Type().Kind().IsMatrix() {
		// Scalar to a 1x1 matrix.
		elem, err := o.Convert(elemType, tok)
		if err != nil {
			return nil, err
		}
		m, ok := matrixFromScalar[T](elem)
		if !ok {
			return nil, fmterr.Internalf("cannot store %s in a %s", elem, target)
		}
		return m, nil
	}
	var out *Matrix[T]
	var err error
	convert := func(x Token) (Token, error) {
		return o.Convert(elemType, x)
	}
	switch tokT := tok.(type) {
	case *IntMatrix:
		out, err = mapElements[int32, T](tokT, convert)
	case *LongMatrix:
		out, err = mapElements[int64, T](tokT, convert)
	case *DoubleMatrix:
		out, err = mapElements[float64, T](tokT, convert)
	default:
		return nil, fmterr.Internalf("conversion from %s to %s not implemented", tok.Type(), target)
	}
	return out, err
}

func convertTo[T Token](o *Ops, target types.Type, tok Token) (T, error) {
	var zero T
	r, err := o.Convert(target, tok)
	if err != nil {
		return zero, err
	}
	rT, ok := r.(T)
	if !ok {
		return zero, fmterr.Internalf("conversion of %s to %s returned %T", tok, target, r)
	}
	return rT, nil
}

// ToInt converts a token to an integer.
func (o *Ops) ToInt(tok Token) (Int, error) {
	return convertTo[Int](o, types.Int, tok)
}

// ToLong converts a token to a long.
func (o *Ops) ToLong(tok Token) (Long, error) {
	return convertTo[Long](o, types.Long, tok)
}

// ToDouble converts a token to a double.
func (o *Ops) ToDouble(tok Token) (Double, error) {
	return convertTo[Double](o, types.Double, tok)
}

// ToComplex converts a token to a complex number.
func (o *Ops) ToComplex(tok Token) (Complex, error) {
	return convertTo[Complex](o, types.Complex, tok)
}

// ToDoubleMatrix converts a token to a matrix of doubles.
func (o *Ops) ToDoubleMatrix(tok Token) (*DoubleMatrix, error) {
	return convertTo[*DoubleMatrix](o, types.DoubleMatrix, tok)
}

// ToComplexMatrix converts a token to a matrix of complex numbers.
func (o *Ops) ToComplexMatrix(tok Token) (*ComplexMatrix, error) {
	return convertTo[*ComplexMatrix](o, types.ComplexMatrix, tok)
}

// Convert converts a token using the default evaluator.
func Convert(target types.Type, tok Token) (Token, error) {
	return Default().Convert(target, tok)
}

// ToInt converts a token to an integer using the default evaluator.
func ToInt(tok Token) (Int, error) {
	return Default().ToInt(tok)
}

// ToLong converts a token to a long using the default evaluator.
func ToLong(tok Token) (Long, error) {
	return Default().ToLong(tok)
}

// ToDouble converts a token to a double using the default evaluator.
func ToDouble(tok Token) (Double, error) {
	return Default().ToDouble(tok)
}

// ToComplex converts a token to a complex number using the default evaluator.
func ToComplex(tok Token) (Complex, error) {
	return Default().ToComplex(tok)
}
