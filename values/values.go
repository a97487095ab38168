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

// Package values implements tokens: the immutable values exchanged between actors.
//
// Binary operators are evaluated by Ops. Ops first unifies the types of both
// operands using the type lattice: if one operand has a type lower than the other,
// it is converted to the higher type. The operator is then evaluated by the
// token of the unified type. Tokens cannot be modified after construction and
// can be shared between goroutines.
package values

import (
	"go/token"

	"github.com/gx-org/tokens/types"
)

type (
	// Token is an immutable value with a type.
	Token interface {
		token() // Make sure all tokens are implemented in this package.

		// Type returns the type of the token.
		Type() types.Type

		// Equal returns true if other has the same type and the same value.
		// Contrary to Ops.IsEqualTo, no conversion is applied.
		Equal(other Token) bool

		// String returns the textual representation of the token.
		String() string
	}

	// binaryToken is a token evaluating binary operators.
	// y has the same type as the receiver or, for structured tokens,
	// the same kind.
	binaryToken interface {
		Token
		binary(ops *Ops, op token.Token, y Token) (Token, error)
	}

	// unaryToken evaluates token.SUB (negation) and token.XOR (bitwise not).
	unaryToken interface {
		Token
		unary(ops *Ops, op token.Token) (Token, error)
	}

	absoluteToken interface {
		Token
		absolute(ops *Ops) (Token, error)
	}

	// identityToken returns the multiplicative and additive identities
	// of the domain of the token.
	identityToken interface {
		Token
		one(ops *Ops) (Token, error)
		zero(ops *Ops) (Token, error)
	}

	// comparableToken evaluates token.EQL and token.LSS.
	comparableToken interface {
		Token
		compare(ops *Ops, op token.Token, y Token) (bool, error)
	}

	closeToken interface {
		Token
		isCloseTo(ops *Ops, y Token, epsilon float64) (bool, error)
	}

	shiftToken interface {
		Token
		shift(op shiftOp, n uint) (Token, error)
	}
)

type shiftOp int

const (
	shiftLeft shiftOp = iota
	shiftRight
	shiftRightLogical
)

func (op shiftOp) String() string {
	switch op {
	case shiftLeft:
		return "leftShift"
	case shiftRight:
		return "rightShift"
	default:
		return "logicalRightShift"
	}
}

var opNames = map[token.Token]string{
	token.ADD: "add",
	token.SUB: "subtract",
	token.MUL: "multiply",
	token.QUO: "divide",
	token.REM: "modulo",
	token.AND: "bitwiseAnd",
	token.OR:  "bitwiseOr",
	token.XOR: "bitwiseXor",
	token.EQL: "isEqualTo",
	token.LSS: "isLessThan",
}

func opName(op token.Token) string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return op.String()
}

func unaryName(op token.Token) string {
	switch op {
	case token.SUB:
		return "negate"
	case token.XOR:
		return "bitwiseNot"
	}
	return op.String()
}
