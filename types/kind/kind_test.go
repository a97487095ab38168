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

package kind_test

import (
	"testing"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/tokens/types/kind"
)

func TestString(t *testing.T) {
	for _, k := range kind.All() {
		name := k.String()
		got, ok := kind.FromString(name)
		if !ok {
			t.Errorf("kind %d: name %q not found", k, name)
			continue
		}
		if got != k {
			t.Errorf("kind %d: FromString(%q) = %d", k, name, got)
		}
	}
	if _, ok := kind.FromString("notAKind"); ok {
		t.Errorf("FromString accepted an invalid name")
	}
	if got := kind.Max.String(); got != "invalid" {
		t.Errorf("got %q but want invalid", got)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		k                                  kind.Kind
		abstract, structured, scalar, mat bool
	}{
		{k: kind.Unknown, abstract: true},
		{k: kind.Boolean},
		{k: kind.Int, scalar: true},
		{k: kind.FixedPoint, scalar: true},
		{k: kind.Scalar, abstract: true},
		{k: kind.DoubleMatrix, mat: true},
		{k: kind.Matrix, abstract: true},
		{k: kind.String},
		{k: kind.Record, structured: true},
		{k: kind.Function, structured: true},
		{k: kind.General, abstract: true},
	}
	for i, test := range tests {
		if got := test.k.IsAbstract(); got != test.abstract {
			t.Errorf("test %d: %s.IsAbstract() = %v", i, test.k, got)
		}
		if got := test.k.IsStructured(); got != test.structured {
			t.Errorf("test %d: %s.IsStructured() = %v", i, test.k, got)
		}
		if got := test.k.IsScalar(); got != test.scalar {
			t.Errorf("test %d: %s.IsScalar() = %v", i, test.k, got)
		}
		if got := test.k.IsMatrix(); got != test.mat {
			t.Errorf("test %d: %s.IsMatrix() = %v", i, test.k, got)
		}
	}
	if !kind.Long.IsInteger() || kind.Double.IsInteger() {
		t.Errorf("IsInteger: unexpected result")
	}
	if !kind.Complex.IsFloat() || kind.FixedPoint.IsFloat() {
		t.Errorf("IsFloat: unexpected result")
	}
	if !kind.Boolean.SupportsBitwise() || kind.Double.SupportsBitwise() || !kind.IntMatrix.SupportsBitwise() || kind.DoubleMatrix.SupportsBitwise() {
		t.Errorf("SupportsBitwise: unexpected result")
	}
	if !kind.Date.SupportsOrdering() || kind.Complex.SupportsOrdering() {
		t.Errorf("SupportsOrdering: unexpected result")
	}
}

func TestMatrixKinds(t *testing.T) {
	tests := []struct {
		elt, mat kind.Kind
		dtype    dtype.DataType
	}{
		{elt: kind.Boolean, mat: kind.BooleanMatrix, dtype: dtype.Bool},
		{elt: kind.Int, mat: kind.IntMatrix, dtype: dtype.Int32},
		{elt: kind.Long, mat: kind.LongMatrix, dtype: dtype.Int64},
		{elt: kind.Double, mat: kind.DoubleMatrix, dtype: dtype.Float64},
		{elt: kind.Complex, mat: kind.ComplexMatrix, dtype: dtype.Invalid},
		{elt: kind.FixedPoint, mat: kind.FixedPointMatrix, dtype: dtype.Invalid},
	}
	for i, test := range tests {
		if got := test.elt.MatrixKind(); got != test.mat {
			t.Errorf("test %d: %s.MatrixKind() = %s but want %s", i, test.elt, got, test.mat)
		}
		if got := test.mat.ElementKind(); got != test.elt {
			t.Errorf("test %d: %s.ElementKind() = %s but want %s", i, test.mat, got, test.elt)
		}
		if got := test.mat.DType(); got != test.dtype {
			t.Errorf("test %d: %s.DType() = %v but want %v", i, test.mat, got, test.dtype)
		}
	}
	if got := kind.String.MatrixKind(); got != kind.Unknown {
		t.Errorf("got %s but want %s", got, kind.Unknown)
	}
}
