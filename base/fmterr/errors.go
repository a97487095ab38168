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

import "go.uber.org/multierr"

// Errors is a set of errors.
// The zero value is an empty set ready to use.
type Errors struct {
	err error
}

// Append an error to the set. Nil errors are ignored.
// Always returns false so that callers can write `return errs.Append(err)`
// in functions reporting success.
func (errs *Errors) Append(err error) bool {
	errs.err = multierr.Append(errs.err, err)
	return false
}

// Empty returns true if no error has been appended.
func (errs *Errors) Empty() bool {
	return errs.err == nil
}

// Errors returns the list of all collected errors.
func (errs *Errors) Errors() []error {
	return multierr.Errors(errs.err)
}

// ToError returns the errors as an error interface or nil if the set is empty.
func (errs *Errors) ToError() error {
	if errs == nil {
		return nil
	}
	return errs.err
}
