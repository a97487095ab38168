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

package fmterr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is an error of a given category with a message for the user.
type Error struct {
	// Category of the error. One of the Err* variables of this package.
	Category error
	// Msg is the message reported to the user.
	Msg string
}

func newError(category error, format string, a ...any) error {
	return errors.WithStack(&Error{
		Category: category,
		Msg:      fmt.Sprintf(format, a...),
	})
}

// Error returns the message of the error.
func (err *Error) Error() string {
	return err.Msg
}

// Is returns true if target is the category of the error.
func (err *Error) Is(target error) bool {
	return err.Category == target
}

// Format writes the error into the state of the formatter.
func (err *Error) Format(s fmt.State, verb rune) {
	format(err, s, verb)
}

// Incomparable returns an error reporting that an operation cannot be applied
// to two operands because their types are not related in the lattice.
func Incomparable(op string, x, y any) error {
	return newError(ErrIncomparable, "%s not supported between types %s and %s: incomparable types", op, x, y)
}

// Unsupported returns an error reporting that an operation is not implemented
// for a given operand.
func Unsupported(op string, x any) error {
	return newError(ErrUnsupported, "%s not supported for %s", op, x)
}

// Unsupportedf returns a formatted error of the unsupported category.
func Unsupportedf(format string, a ...any) error {
	return newError(ErrUnsupported, format, a...)
}

// Malformed returns an error reporting that a literal cannot be parsed into a target domain.
func Malformed(literal, target string, cause error) error {
	if cause == nil {
		return newError(ErrMalformedLiteral, "cannot parse %q as %s", literal, target)
	}
	return newError(ErrMalformedLiteral, "cannot parse %q as %s: %v", literal, target, cause)
}

// DivideByZero returns an error reporting a division by zero.
func DivideByZero(op string, x any) error {
	return newError(ErrDivideByZero, "%s: %s divided by zero", op, x)
}

// Index returns an error reporting an access outside of a sequence.
func Index(i, n int) error {
	return newError(ErrIndex, "index %d out of range [0, %d)", i, n)
}

// Latticef returns a formatted error of the lattice category.
func Latticef(format string, a ...any) error {
	return newError(ErrLattice, format, a...)
}

// Internal marks an error as internal, potentially adding additional information.
func Internal(err error) error {
	return fmt.Errorf("tokens internal error. This is a bug. Please report it. Error:\n%+v", err)
}

// Internalf returns a formatted internal error.
func Internalf(format string, a ...any) error {
	return Internal(errors.Errorf(format, a...))
}
