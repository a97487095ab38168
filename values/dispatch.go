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

	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/lattice"
	"github.com/gx-org/tokens/types/kind"
)

// isContainer returns true for tokens recursing into their elements
// without unifying their types first.
func isContainer(k kind.Kind) bool {
	switch k {
	case kind.Array, kind.Record, kind.Union:
		return true
	}
	return false
}

// unify converts the operand with the lower type to the type of the other operand.
func (o *Ops) unify(name string, x, y Token) (Token, Token, error) {
	xt, yt := x.Type(), y.Type()
	if xt.Kind() == yt.Kind() && isContainer(xt.Kind()) {
		return x, y, nil
	}
	switch o.lat.Compare(xt, yt) {
	case lattice.Same:
		return x, y, nil
	case lattice.Lower:
		xc, err := o.Convert(yt, x)
		if err != nil {
			return nil, nil, err
		}
		return xc, y, nil
	case lattice.Higher:
		yc, err := o.Convert(xt, y)
		if err != nil {
			return nil, nil, err
		}
		return x, yc, nil
	}
	return nil, nil, fmterr.Incomparable(name, xt, yt)
}

// isBitwise returns true if op is a bitwise operator.
func isBitwise(op token.Token) bool {
	switch op {
	case token.AND, token.OR, token.XOR:
		return true
	}
	return false
}

// checkBitwise returns an error if the bit patterns of x are not meaningful.
// Containers are checked element by element.
func checkBitwise(name string, x Token) error {
	k := x.Type().Kind()
	if isContainer(k) || k.SupportsBitwise() {
		return nil
	}
	return fmterr.Unsupported(name, x.Type())
}

func (o *Ops) binary(op token.Token, x, y Token) (Token, error) {
	name := opName(op)
	x, y, err := o.unify(name, x, y)
	if err != nil {
		return nil, err
	}
	if isBitwise(op) {
		if err := checkBitwise(name, x); err != nil {
			return nil, err
		}
	}
	xB, ok := x.(binaryToken)
	if !ok {
		return nil, fmterr.Unsupported(name, x.Type())
	}
	return xB.binary(o, op, y)
}

// Add returns x + y.
func (o *Ops) Add(x, y Token) (Token, error) {
	return o.binary(token.ADD, x, y)
}

// Subtract returns x - y.
func (o *Ops) Subtract(x, y Token) (Token, error) {
	return o.binary(token.SUB, x, y)
}

// Multiply returns x * y.
// The product of two matrices is the matrix product.
func (o *Ops) Multiply(x, y Token) (Token, error) {
	return o.binary(token.MUL, x, y)
}

// Divide returns x / y.
func (o *Ops) Divide(x, y Token) (Token, error) {
	return o.binary(token.QUO, x, y)
}

// Modulo returns the remainder of x / y.
func (o *Ops) Modulo(x, y Token) (Token, error) {
	return o.binary(token.REM, x, y)
}

// BitwiseAnd returns x & y.
func (o *Ops) BitwiseAnd(x, y Token) (Token, error) {
	return o.binary(token.AND, x, y)
}

// BitwiseOr returns x | y.
func (o *Ops) BitwiseOr(x, y Token) (Token, error) {
	return o.binary(token.OR, x, y)
}

// BitwiseXor returns x ^ y.
func (o *Ops) BitwiseXor(x, y Token) (Token, error) {
	return o.binary(token.XOR, x, y)
}

func (o *Ops) unary(op token.Token, x Token) (Token, error) {
	xU, ok := x.(unaryToken)
	if !ok {
		return nil, fmterr.Unsupported(unaryName(op), x.Type())
	}
	return xU.unary(o, op)
}

// Negate returns -x.
func (o *Ops) Negate(x Token) (Token, error) {
	return o.unary(token.SUB, x)
}

// BitwiseNot returns ^x.
func (o *Ops) BitwiseNot(x Token) (Token, error) {
	if err := checkBitwise(unaryName(token.XOR), x); err != nil {
		return nil, err
	}
	return o.unary(token.XOR, x)
}

// Absolute returns the absolute value of x.
// The absolute value of a complex number is its magnitude.
func (o *Ops) Absolute(x Token) (Token, error) {
	xA, ok := x.(absoluteToken)
	if !ok {
		return nil, fmterr.Unsupported("absolute", x.Type())
	}
	return xA.absolute(o)
}

// One returns the multiplicative identity of the domain of x.
func (o *Ops) One(x Token) (Token, error) {
	xI, ok := x.(identityToken)
	if !ok {
		return nil, fmterr.Unsupported("one", x.Type())
	}
	return xI.one(o)
}

// Zero returns the additive identity of the domain of x.
func (o *Ops) Zero(x Token) (Token, error) {
	xI, ok := x.(identityToken)
	if !ok {
		return nil, fmterr.Unsupported("zero", x.Type())
	}
	return xI.zero(o)
}

// IsEqualTo returns true if x and y are equal after their types have been unified.
func (o *Ops) IsEqualTo(x, y Token) (bool, error) {
	x, y, err := o.unify(opName(token.EQL), x, y)
	if err != nil {
		return false, err
	}
	return o.isEqualToUnified(x, y)
}

func (o *Ops) isEqualToUnified(x, y Token) (bool, error) {
	xC, ok := x.(comparableToken)
	if !ok {
		return x.Equal(y), nil
	}
	return xC.compare(o, token.EQL, y)
}

// IsCloseTo returns true if x and y are equal within epsilon after
// their types have been unified. Tokens which are not floating point
// numbers are close only if they are equal.
func (o *Ops) IsCloseTo(x, y Token, epsilon float64) (bool, error) {
	x, y, err := o.unify("isCloseTo", x, y)
	if err != nil {
		return false, err
	}
	return o.isCloseToUnified(x, y, epsilon)
}

func (o *Ops) isCloseToUnified(x, y Token, epsilon float64) (bool, error) {
	xC, ok := x.(closeToken)
	if !ok {
		return o.isEqualToUnified(x, y)
	}
	return xC.isCloseTo(o, y, epsilon)
}

// IsLessThan returns true if x < y after their types have been unified.
func (o *Ops) IsLessThan(x, y Token) (bool, error) {
	name := opName(token.LSS)
	x, y, err := o.unify(name, x, y)
	if err != nil {
		return false, err
	}
	if !x.Type().Kind().SupportsOrdering() {
		return false, fmterr.Unsupported(name, x.Type())
	}
	return x.(comparableToken).compare(o, token.LSS, y)
}

func (o *Ops) shift(op shiftOp, x Token, n uint) (Token, error) {
	xS, ok := x.(shiftToken)
	if !ok || !x.Type().Kind().SupportsBitwise() {
		return nil, fmterr.Unsupported(op.String(), x.Type())
	}
	return xS.shift(op, n)
}

// LeftShift returns x << n.
// Only the low 5 bits of n are used for bytes and ints, the low 6 bits for longs.
func (o *Ops) LeftShift(x Token, n uint) (Token, error) {
	return o.shift(shiftLeft, x, n)
}

// RightShift returns x >> n, extending the sign bit.
func (o *Ops) RightShift(x Token, n uint) (Token, error) {
	return o.shift(shiftRight, x, n)
}

// LogicalRightShift returns x >> n, filling the high bits with zeros.
func (o *Ops) LogicalRightShift(x Token, n uint) (Token, error) {
	return o.shift(shiftRightLogical, x, n)
}
