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
	"math/cmplx"

	"github.com/gx-org/tokens/base/fmterr"
	"golang.org/x/exp/constraints"
)

// integerBinary evaluates a binary operator on integers.
// Overflows wrap around.
func integerBinary[T constraints.Integer](x Token, op token.Token, a, b T) (T, error) {
	switch op {
	case token.ADD:
		return a + b, nil
	case token.SUB:
		return a - b, nil
	case token.MUL:
		return a * b, nil
	case token.QUO:
		if b == 0 {
			return 0, fmterr.DivideByZero(opName(op), x)
		}
		return a / b, nil
	case token.REM:
		if b == 0 {
			return 0, fmterr.DivideByZero(opName(op), x)
		}
		return a % b, nil
	case token.AND:
		return a & b, nil
	case token.OR:
		return a | b, nil
	case token.XOR:
		return a ^ b, nil
	}
	return 0, fmterr.Unsupported(opName(op), x.Type())
}

func integerUnary[T constraints.Integer](x Token, op token.Token, a T) (T, error) {
	switch op {
	case token.SUB:
		return -a, nil
	case token.XOR:
		return ^a, nil
	}
	return 0, fmterr.Unsupported(unaryName(op), x.Type())
}

func integerShift[T constraints.Integer](op shiftOp, a T, n uint) T {
	if op == shiftLeft {
		return a << n
	}
	return a >> n
}

// floatBinary evaluates a binary operator following IEEE 754.
func floatBinary[T constraints.Float](x Token, op token.Token, a, b T) (T, error) {
	switch op {
	case token.ADD:
		return a + b, nil
	case token.SUB:
		return a - b, nil
	case token.MUL:
		return a * b, nil
	case token.QUO:
		return a / b, nil
	case token.REM:
		return T(math.Mod(float64(a), float64(b))), nil
	}
	return 0, fmterr.Unsupported(opName(op), x.Type())
}

func complexBinary[T constraints.Complex](x Token, op token.Token, a, b T) (T, error) {
	switch op {
	case token.ADD:
		return a + b, nil
	case token.SUB:
		return a - b, nil
	case token.MUL:
		return a * b, nil
	case token.QUO:
		return a / b, nil
	}
	return 0, fmterr.Unsupported(opName(op), x.Type())
}

func compareOrdered[T constraints.Ordered](x Token, op token.Token, a, b T) (bool, error) {
	switch op {
	case token.EQL:
		return a == b, nil
	case token.LSS:
		return a < b, nil
	}
	return false, fmterr.Unsupported(opName(op), x.Type())
}

func absInteger[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

func isCloseFloat(a, b, epsilon float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if a == b {
		return true
	}
	return math.Abs(a-b) <= epsilon
}

func isCloseComplex(a, b complex128, epsilon float64) bool {
	return isCloseFloat(real(a), real(b), epsilon) && isCloseFloat(imag(a), imag(b), epsilon)
}

func absComplex(a complex128) float64 {
	return cmplx.Abs(a)
}
