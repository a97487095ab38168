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
	"fmt"
	"go/token"
	"math/big"
	"strings"

	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/types"
	"github.com/pkg/errors"
)

// Precision of a signed fixed point number.
type Precision struct {
	// Bits is the total number of bits, including the sign bit.
	Bits int
	// IntegerBits is the number of bits before the binary point, including the sign bit.
	IntegerBits int
}

// FractionBits returns the number of bits after the binary point.
func (p Precision) FractionBits() int {
	return p.Bits - p.IntegerBits
}

func (p Precision) check() error {
	if p.Bits <= 0 || p.IntegerBits < 0 || p.IntegerBits > p.Bits {
		return errors.Errorf("invalid fixed point precision: %d bits with %d integer bits", p.Bits, p.IntegerBits)
	}
	return nil
}

func (p Precision) maxMantissa() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(p.Bits-1))
	return m.Sub(m, big.NewInt(1))
}

func (p Precision) minMantissa() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(p.Bits-1))
	return m.Neg(m)
}

// saturate clamps a mantissa to the range of the precision.
func (p Precision) saturate(m *big.Int) *big.Int {
	if hi := p.maxMantissa(); m.Cmp(hi) > 0 {
		return hi
	}
	if lo := p.minMantissa(); m.Cmp(lo) < 0 {
		return lo
	}
	return m
}

func (p Precision) inRange(m *big.Int) bool {
	return m.Cmp(p.minMantissa()) >= 0 && m.Cmp(p.maxMantissa()) <= 0
}

// wrap returns a mantissa modulo 2^Bits in two's complement.
func (p Precision) wrap(m *big.Int) *big.Int {
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(p.Bits))
	r := new(big.Int).Mod(m, modulus)
	if r.Cmp(p.maxMantissa()) > 0 {
		r.Sub(r, modulus)
	}
	return r
}

// quantize rounds a rational to the nearest mantissa, half away from zero,
// and saturates the result.
func (p Precision) quantize(x *big.Rat) *big.Int {
	return Quantizer{}.mantissa(x, p)
}

// Rounding selects how a value is rounded to a mantissa.
type Rounding int

const (
	// RoundHalfAwayFromZero rounds to the nearest mantissa, ties away from zero.
	RoundHalfAwayFromZero Rounding = iota
	// RoundHalfEven rounds to the nearest mantissa, ties to the even mantissa.
	RoundHalfEven
	// RoundFloor rounds towards negative infinity.
	RoundFloor
	// RoundCeiling rounds towards positive infinity.
	RoundCeiling
	// RoundToZero truncates towards zero.
	RoundToZero
)

// Overflow selects what happens to a value out of the range of a precision.
type Overflow int

const (
	// Saturate clamps the value to the largest or smallest representable value.
	Saturate Overflow = iota
	// OverflowToZero replaces the value with zero.
	OverflowToZero
	// Wrap keeps the low bits of the mantissa in two's complement.
	Wrap
)

// Quantizer maps rationals to fixed point numbers.
// The zero value rounds half away from zero and saturates.
type Quantizer struct {
	Rounding Rounding
	Overflow Overflow
}

func (q Quantizer) round(num, den *big.Int) *big.Int {
	floor, rem := new(big.Int).DivMod(num, den, new(big.Int))
	switch q.Rounding {
	case RoundFloor:
		return floor
	case RoundCeiling:
		if rem.Sign() != 0 {
			floor.Add(floor, big.NewInt(1))
		}
		return floor
	case RoundToZero:
		return new(big.Int).Quo(num, den)
	case RoundHalfEven:
		switch new(big.Int).Lsh(rem, 1).Cmp(den) {
		case 1:
			floor.Add(floor, big.NewInt(1))
		case 0:
			if floor.Bit(0) == 1 {
				floor.Add(floor, big.NewInt(1))
			}
		}
		return floor
	}
	// Round half away from zero: (2|num| + den) / (2 den).
	neg := num.Sign() < 0
	m := new(big.Int).Abs(num)
	m.Lsh(m, 1)
	m.Add(m, den)
	m.Quo(m, new(big.Int).Lsh(den, 1))
	if neg {
		m.Neg(m)
	}
	return m
}

func (q Quantizer) mantissa(x *big.Rat, p Precision) *big.Int {
	scaled := new(big.Rat).Mul(x, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(p.FractionBits()))))
	m := q.round(scaled.Num(), scaled.Denom())
	switch q.Overflow {
	case OverflowToZero:
		if !p.inRange(m) {
			return new(big.Int)
		}
		return m
	case Wrap:
		return p.wrap(m)
	}
	return p.saturate(m)
}

// Quantize returns the fixed point number representing x with a given precision.
func (q Quantizer) Quantize(x *big.Rat, prec Precision) (FixedPoint, error) {
	if err := prec.check(); err != nil {
		return FixedPoint{}, err
	}
	return FixedPoint{mantissa: q.mantissa(x, prec), prec: prec}, nil
}

// FixedPoint is a signed fixed point number.
// Its value is mantissa * 2^-FractionBits.
type FixedPoint struct {
	mantissa *big.Int
	prec     Precision
}

var (
	_ binaryToken     = FixedPoint{}
	_ comparableToken = FixedPoint{}
	_ closeToken      = FixedPoint{}
)

// NewFixedPoint returns the fixed point number closest to x given a precision.
// Values out of the range of the precision saturate.
func NewFixedPoint(x float64, prec Precision) (FixedPoint, error) {
	r := new(big.Rat)
	if r.SetFloat64(x) == nil {
		return FixedPoint{}, errors.Errorf("cannot represent %v as a fixed point number", x)
	}
	return NewFixedPointFromRat(r, prec)
}

// NewFixedPointFromRat returns the fixed point number closest to a rational given a precision.
// Values out of the range of the precision saturate.
func NewFixedPointFromRat(x *big.Rat, prec Precision) (FixedPoint, error) {
	return Quantizer{}.Quantize(x, prec)
}

// Requantize returns x with a new precision.
func (x FixedPoint) Requantize(prec Precision, q Quantizer) (FixedPoint, error) {
	return q.Quantize(x.Rat(), prec)
}

func (FixedPoint) token() {}

// Type of the token.
func (FixedPoint) Type() types.Type { return types.FixedPoint }

// Precision returns the precision of the number.
func (x FixedPoint) Precision() Precision {
	return x.prec
}

// Mantissa returns a copy of the integer representation of the number.
func (x FixedPoint) Mantissa() *big.Int {
	return new(big.Int).Set(x.mant())
}

func (x FixedPoint) mant() *big.Int {
	if x.mantissa == nil {
		return new(big.Int)
	}
	return x.mantissa
}

// Rat returns the exact value of the number.
func (x FixedPoint) Rat() *big.Rat {
	den := new(big.Int).Lsh(big.NewInt(1), uint(x.prec.FractionBits()))
	return new(big.Rat).SetFrac(x.mant(), den)
}

// Double returns the value of the number rounded to the nearest float.
func (x FixedPoint) Double() float64 {
	f, _ := x.Rat().Float64()
	return f
}

// Equal returns true if other is a fixed point number with the same value and precision.
func (x FixedPoint) Equal(other Token) bool {
	o, ok := other.(FixedPoint)
	return ok && x.prec == o.prec && x.mant().Cmp(o.mant()) == 0
}

// decimal returns the exact decimal representation of the number.
func (x FixedPoint) decimal() string {
	s := x.Rat().FloatString(x.prec.FractionBits())
	if !strings.Contains(s, ".") {
		return s + ".0"
	}
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// String returns fix(value, bits, integerBits).
func (x FixedPoint) String() string {
	return fmt.Sprintf("fix(%s, %d, %d)", x.decimal(), x.prec.Bits, x.prec.IntegerBits)
}

// align returns the mantissas of x and y with the same number of fraction bits.
func align(x, y FixedPoint) (mx, my *big.Int, frac int) {
	fx, fy := x.prec.FractionBits(), y.prec.FractionBits()
	frac = max(fx, fy)
	mx = new(big.Int).Lsh(x.mant(), uint(frac-fx))
	my = new(big.Int).Lsh(y.mant(), uint(frac-fy))
	return
}

func (x FixedPoint) binary(_ *Ops, op token.Token, y Token) (Token, error) {
	b := y.(FixedPoint)
	intBits := max(x.prec.IntegerBits, b.prec.IntegerBits)
	switch op {
	case token.ADD, token.SUB:
		mx, my, frac := align(x, b)
		if op == token.ADD {
			mx.Add(mx, my)
		} else {
			mx.Sub(mx, my)
		}
		// One more integer bit holds the carry.
		return FixedPoint{mantissa: mx, prec: Precision{Bits: intBits + 1 + frac, IntegerBits: intBits + 1}}, nil
	case token.MUL:
		m := new(big.Int).Mul(x.mant(), b.mant())
		return FixedPoint{mantissa: m, prec: Precision{
			Bits:        x.prec.Bits + b.prec.Bits,
			IntegerBits: x.prec.IntegerBits + b.prec.IntegerBits,
		}}, nil
	case token.QUO:
		if b.mant().Sign() == 0 {
			return nil, fmterr.DivideByZero(opName(op), x)
		}
		prec := Precision{
			Bits:        intBits + max(x.prec.FractionBits(), b.prec.FractionBits()),
			IntegerBits: intBits,
		}
		return FixedPoint{mantissa: prec.quantize(new(big.Rat).Quo(x.Rat(), b.Rat())), prec: prec}, nil
	}
	return nil, fmterr.Unsupported(opName(op), x.Type())
}

func (x FixedPoint) unary(_ *Ops, op token.Token) (Token, error) {
	if op != token.SUB {
		return nil, fmterr.Unsupported(unaryName(op), x.Type())
	}
	return FixedPoint{mantissa: x.prec.saturate(new(big.Int).Neg(x.mant())), prec: x.prec}, nil
}

func (x FixedPoint) absolute(*Ops) (Token, error) {
	return FixedPoint{mantissa: x.prec.saturate(new(big.Int).Abs(x.mant())), prec: x.prec}, nil
}

func (x FixedPoint) one(*Ops) (Token, error) {
	return FixedPoint{mantissa: x.prec.quantize(big.NewRat(1, 1)), prec: x.prec}, nil
}

func (x FixedPoint) zero(*Ops) (Token, error) {
	return FixedPoint{mantissa: new(big.Int), prec: x.prec}, nil
}

func (x FixedPoint) compare(_ *Ops, op token.Token, y Token) (bool, error) {
	c := x.Rat().Cmp(y.(FixedPoint).Rat())
	switch op {
	case token.EQL:
		return c == 0, nil
	case token.LSS:
		return c < 0, nil
	}
	return false, fmterr.Unsupported(opName(op), x.Type())
}

func (x FixedPoint) isCloseTo(_ *Ops, y Token, epsilon float64) (bool, error) {
	return isCloseFloat(x.Double(), y.(FixedPoint).Double(), epsilon), nil
}
