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
	"math"
	"strconv"

	tokfmt "github.com/gx-org/tokens/base/fmt"
	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/types"
)

type (
	// Boolean is a token in the field with two elements.
	// Addition is exclusive or and multiplication is and.
	Boolean bool

	// UnsignedByte is an 8-bit integer read as a value between 0 and 255.
	UnsignedByte uint8

	// Int is a 32-bit signed integer.
	Int int32

	// Long is a 64-bit signed integer.
	Long int64

	// Double is a 64-bit floating point number.
	Double float64

	// Complex is a complex number with 64-bit floating point parts.
	Complex complex128
)

var (
	_ binaryToken     = Boolean(false)
	_ unaryToken      = UnsignedByte(0)
	_ shiftToken      = Int(0)
	_ comparableToken = Long(0)
	_ closeToken      = Double(0)
	_ absoluteToken   = Complex(0)
)

// ----------------------------------------------------------------------------
// Boolean.

func (Boolean) token() {}

// Type of the token.
func (Boolean) Type() types.Type { return types.Boolean }

// Bool returns the value of the token.
func (x Boolean) Bool() bool { return bool(x) }

// Equal returns true if other is the same boolean.
func (x Boolean) Equal(other Token) bool {
	o, ok := other.(Boolean)
	return ok && o == x
}

// String returns true or false.
func (x Boolean) String() string {
	return strconv.FormatBool(bool(x))
}

func (x Boolean) binary(_ *Ops, op token.Token, y Token) (Token, error) {
	b := y.(Boolean)
	switch op {
	case token.ADD, token.SUB, token.XOR:
		return Boolean(x != b), nil
	case token.MUL, token.AND:
		return x && b, nil
	case token.OR:
		return x || b, nil
	case token.QUO:
		if !b {
			return nil, fmterr.DivideByZero(opName(op), x)
		}
		return x, nil
	}
	return nil, fmterr.Unsupported(opName(op), x.Type())
}

func (x Boolean) unary(_ *Ops, op token.Token) (Token, error) {
	switch op {
	case token.SUB:
		return x, nil
	case token.XOR:
		return !x, nil
	}
	return nil, fmterr.Unsupported(unaryName(op), x.Type())
}

func (x Boolean) absolute(*Ops) (Token, error) { return x, nil }

func (Boolean) one(*Ops) (Token, error) { return Boolean(true), nil }

func (Boolean) zero(*Ops) (Token, error) { return Boolean(false), nil }

func (x Boolean) compare(_ *Ops, op token.Token, y Token) (bool, error) {
	if op != token.EQL {
		return false, fmterr.Unsupported(opName(op), x.Type())
	}
	return x == y.(Boolean), nil
}

// ----------------------------------------------------------------------------
// UnsignedByte.

// NewUnsignedByte returns an unsigned byte given its bit pattern.
func NewUnsignedByte(b int8) UnsignedByte {
	return UnsignedByte(uint8(b))
}

// NewUnsignedByteFromInt returns an unsigned byte keeping the lower 8 bits of an integer.
func NewUnsignedByteFromInt(v int) UnsignedByte {
	return UnsignedByte(uint8(v))
}

func (UnsignedByte) token() {}

// Type of the token.
func (UnsignedByte) Type() types.Type { return types.UnsignedByte }

// Byte returns the bit pattern of the byte as a signed byte.
func (x UnsignedByte) Byte() int8 { return int8(x) }

// Unsigned returns the value of the byte.
func (x UnsignedByte) Unsigned() uint8 { return uint8(x) }

// Int returns the value of the byte, between 0 and 255.
func (x UnsignedByte) Int() int32 { return int32(x) }

// Long returns the value of the byte, between 0 and 255.
func (x UnsignedByte) Long() int64 { return int64(x) }

// Double returns the value of the byte, between 0 and 255.
func (x UnsignedByte) Double() float64 { return float64(x) }

// Equal returns true if other is the same byte.
func (x UnsignedByte) Equal(other Token) bool {
	o, ok := other.(UnsignedByte)
	return ok && o == x
}

// String returns the value of the byte followed by ub.
func (x UnsignedByte) String() string {
	return strconv.Itoa(int(x)) + "ub"
}

func (x UnsignedByte) binary(_ *Ops, op token.Token, y Token) (Token, error) {
	r, err := integerBinary(x, op, uint8(x), uint8(y.(UnsignedByte)))
	return UnsignedByte(r), err
}

func (x UnsignedByte) unary(_ *Ops, op token.Token) (Token, error) {
	r, err := integerUnary(x, op, uint8(x))
	return UnsignedByte(r), err
}

func (x UnsignedByte) absolute(*Ops) (Token, error) { return x, nil }

func (UnsignedByte) one(*Ops) (Token, error) { return UnsignedByte(1), nil }

func (UnsignedByte) zero(*Ops) (Token, error) { return UnsignedByte(0), nil }

func (x UnsignedByte) compare(_ *Ops, op token.Token, y Token) (bool, error) {
	return compareOrdered(x, op, uint8(x), uint8(y.(UnsignedByte)))
}

func (x UnsignedByte) shift(op shiftOp, n uint) (Token, error) {
	n &= 31
	return UnsignedByte(integerShift(op, uint8(x), n)), nil
}

// ----------------------------------------------------------------------------
// Int.

func (Int) token() {}

// Type of the token.
func (Int) Type() types.Type { return types.Int }

// Int returns the value of the token.
func (x Int) Int() int32 { return int32(x) }

// Long returns the value of the token as a 64-bit integer.
func (x Int) Long() int64 { return int64(x) }

// Double returns the value of the token as a float.
func (x Int) Double() float64 { return float64(x) }

// Equal returns true if other is the same integer.
func (x Int) Equal(other Token) bool {
	o, ok := other.(Int)
	return ok && o == x
}

// String returns the decimal representation of the integer.
func (x Int) String() string {
	return strconv.FormatInt(int64(x), 10)
}

func (x Int) binary(_ *Ops, op token.Token, y Token) (Token, error) {
	r, err := integerBinary(x, op, int32(x), int32(y.(Int)))
	return Int(r), err
}

func (x Int) unary(_ *Ops, op token.Token) (Token, error) {
	r, err := integerUnary(x, op, int32(x))
	return Int(r), err
}

func (x Int) absolute(*Ops) (Token, error) { return Int(absInteger(int32(x))), nil }

func (Int) one(*Ops) (Token, error) { return Int(1), nil }

func (Int) zero(*Ops) (Token, error) { return Int(0), nil }

func (x Int) compare(_ *Ops, op token.Token, y Token) (bool, error) {
	return compareOrdered(x, op, int32(x), int32(y.(Int)))
}

func (x Int) shift(op shiftOp, n uint) (Token, error) {
	n &= 31
	if op == shiftRightLogical {
		return Int(int32(uint32(x) >> n)), nil
	}
	return Int(integerShift(op, int32(x), n)), nil
}

// ----------------------------------------------------------------------------
// Long.

func (Long) token() {}

// Type of the token.
func (Long) Type() types.Type { return types.Long }

// Long returns the value of the token.
func (x Long) Long() int64 { return int64(x) }

// Double returns the value of the token as a float.
func (x Long) Double() float64 { return float64(x) }

// Equal returns true if other is the same long.
func (x Long) Equal(other Token) bool {
	o, ok := other.(Long)
	return ok && o == x
}

// String returns the decimal representation of the integer followed by L.
func (x Long) String() string {
	return strconv.FormatInt(int64(x), 10) + "L"
}

func (x Long) binary(_ *Ops, op token.Token, y Token) (Token, error) {
	r, err := integerBinary(x, op, int64(x), int64(y.(Long)))
	return Long(r), err
}

func (x Long) unary(_ *Ops, op token.Token) (Token, error) {
	r, err := integerUnary(x, op, int64(x))
	return Long(r), err
}

func (x Long) absolute(*Ops) (Token, error) { return Long(absInteger(int64(x))), nil }

func (Long) one(*Ops) (Token, error) { return Long(1), nil }

func (Long) zero(*Ops) (Token, error) { return Long(0), nil }

func (x Long) compare(_ *Ops, op token.Token, y Token) (bool, error) {
	return compareOrdered(x, op, int64(x), int64(y.(Long)))
}

func (x Long) shift(op shiftOp, n uint) (Token, error) {
	n &= 63
	if op == shiftRightLogical {
		return Long(int64(uint64(x) >> n)), nil
	}
	return Long(integerShift(op, int64(x), n)), nil
}

// ----------------------------------------------------------------------------
// Double.

func (Double) token() {}

// Type of the token.
func (Double) Type() types.Type { return types.Double }

// Double returns the value of the token.
func (x Double) Double() float64 { return float64(x) }

// Equal returns true if other is the same double.
// NaN is equal to NaN.
func (x Double) Equal(other Token) bool {
	o, ok := other.(Double)
	if !ok {
		return false
	}
	if math.IsNaN(float64(x)) {
		return math.IsNaN(float64(o))
	}
	return o == x
}

// String returns the representation of the double.
// The representation always includes a decimal point, an exponent, or is one of
// NaN, Infinity, or -Infinity.
func (x Double) String() string {
	return tokfmt.Float(float64(x))
}

func (x Double) binary(_ *Ops, op token.Token, y Token) (Token, error) {
	r, err := floatBinary(x, op, float64(x), float64(y.(Double)))
	return Double(r), err
}

func (x Double) unary(_ *Ops, op token.Token) (Token, error) {
	if op != token.SUB {
		return nil, fmterr.Unsupported(unaryName(op), x.Type())
	}
	return -x, nil
}

func (x Double) absolute(*Ops) (Token, error) { return Double(math.Abs(float64(x))), nil }

func (Double) one(*Ops) (Token, error) { return Double(1), nil }

func (Double) zero(*Ops) (Token, error) { return Double(0), nil }

func (x Double) compare(_ *Ops, op token.Token, y Token) (bool, error) {
	return compareOrdered(x, op, float64(x), float64(y.(Double)))
}

func (x Double) isCloseTo(_ *Ops, y Token, epsilon float64) (bool, error) {
	return isCloseFloat(float64(x), float64(y.(Double)), epsilon), nil
}

// ----------------------------------------------------------------------------
// Complex.

func (Complex) token() {}

// Type of the token.
func (Complex) Type() types.Type { return types.Complex }

// Complex returns the value of the token.
func (x Complex) Complex() complex128 { return complex128(x) }

// Real returns the real part.
func (x Complex) Real() float64 { return real(x) }

// Imag returns the imaginary part.
func (x Complex) Imag() float64 { return imag(x) }

// Equal returns true if other is the same complex number.
// NaN parts are equal to NaN parts.
func (x Complex) Equal(other Token) bool {
	o, ok := other.(Complex)
	if !ok {
		return false
	}
	return Double(real(x)).Equal(Double(real(o))) && Double(imag(x)).Equal(Double(imag(o)))
}

// String returns the complex number as re + imi or re - imi.
func (x Complex) String() string {
	re, im := real(x), imag(x)
	sep := " + "
	if math.Signbit(im) && !math.IsNaN(im) {
		sep = " - "
		im = -im
	}
	return tokfmt.Float(re) + sep + tokfmt.Float(im) + "i"
}

func (x Complex) binary(_ *Ops, op token.Token, y Token) (Token, error) {
	r, err := complexBinary(x, op, complex128(x), complex128(y.(Complex)))
	return Complex(r), err
}

func (x Complex) unary(_ *Ops, op token.Token) (Token, error) {
	if op != token.SUB {
		return nil, fmterr.Unsupported(unaryName(op), x.Type())
	}
	return -x, nil
}

// absolute returns the magnitude of the complex number as a double.
func (x Complex) absolute(*Ops) (Token, error) { return Double(absComplex(complex128(x))), nil }

func (Complex) one(*Ops) (Token, error) { return Complex(1), nil }

func (Complex) zero(*Ops) (Token, error) { return Complex(0), nil }

func (x Complex) compare(_ *Ops, op token.Token, y Token) (bool, error) {
	if op != token.EQL {
		return false, fmterr.Unsupported(opName(op), x.Type())
	}
	return x == y.(Complex), nil
}

func (x Complex) isCloseTo(_ *Ops, y Token, epsilon float64) (bool, error) {
	return isCloseComplex(complex128(x), complex128(y.(Complex)), epsilon), nil
}
