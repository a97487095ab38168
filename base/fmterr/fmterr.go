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

// Package fmterr defines the errors returned when operating on types and tokens
// and helpers to accumulate and format them.
package fmterr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error categories. Use errors.Is to test the category of an error.
var (
	// ErrIncomparable is the category of errors raised when two types
	// have no relation in the type lattice.
	ErrIncomparable = errors.New("incomparable types")
	// ErrUnsupported is the category of errors raised when a token does not
	// implement an operation.
	ErrUnsupported = errors.New("operation not supported")
	// ErrMalformedLiteral is the category of errors raised when a literal
	// cannot be parsed into a token.
	ErrMalformedLiteral = errors.New("malformed literal")
	// ErrDivideByZero is the category of errors raised when dividing by
	// the additive identity of a domain which is not closed under division.
	ErrDivideByZero = errors.New("division by zero")
	// ErrIndex is the category of errors raised when accessing an element
	// outside of an array or a matrix.
	ErrIndex = errors.New("index out of range")
	// ErrLattice is the category of errors raised when a lattice definition is invalid.
	ErrLattice = errors.New("invalid lattice")
)

// PrefixWith returns a function to prefix errors with a formatted string.
func PrefixWith(s string, o ...any) func(err error) error {
	return func(err error) error {
		return fmt.Errorf("%s%w", fmt.Sprintf(s, o...), err)
	}
}
