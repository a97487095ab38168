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
package values_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/values"
)

func TestFixedPointQuantize(t *testing.T) {
	tests := []struct {
		x             float64
		bits, intBits int
		want          string
	}{
		{x: 0.3, bits: 8, intBits: 4, want: "fix(0.3125, 8, 4)"},
		{x: 100, bits: 8, intBits: 4, want: "fix(7.9375, 8, 4)"},
		{x: -100, bits: 8, intBits: 4, want: "fix(-8.0, 8, 4)"},
		{x: -0.03125, bits: 8, intBits: 4, want: "fix(-0.0625, 8, 4)"},
		{x: 0.03125, bits: 8, intBits: 4, want: "fix(0.0625, 8, 4)"},
		{x: 3, bits: 4, intBits: 4, want: "fix(3.0, 4, 4)"},
		{x: 0, bits: 8, intBits: 4, want: "fix(0.0, 8, 4)"},
	}
	for i, test := range tests {
		got := fixedPoint(t, test.x, test.bits, test.intBits)
		if got.String() != test.want {
			t.Errorf("test %d: got %s but want %s", i, got, test.want)
		}
	}
}

func TestQuantizer(t *testing.T) {
	prec := values.Precision{Bits: 8, IntegerBits: 4}
	tests := []struct {
		q    values.Quantizer
		x    *big.Rat
		want string
	}{
		{x: big.NewRat(3, 32), want: "fix(0.125, 8, 4)"},
		{q: values.Quantizer{Rounding: values.RoundHalfEven}, x: big.NewRat(3, 32), want: "fix(0.125, 8, 4)"},
		{q: values.Quantizer{Rounding: values.RoundHalfEven}, x: big.NewRat(5, 32), want: "fix(0.125, 8, 4)"},
		{q: values.Quantizer{Rounding: values.RoundHalfEven}, x: big.NewRat(-3, 32), want: "fix(-0.125, 8, 4)"},
		{q: values.Quantizer{Rounding: values.RoundHalfEven}, x: big.NewRat(11, 64), want: "fix(0.1875, 8, 4)"},
		{x: big.NewRat(5, 32), want: "fix(0.1875, 8, 4)"},
		{x: big.NewRat(-3, 32), want: "fix(-0.125, 8, 4)"},
		{q: values.Quantizer{Rounding: values.RoundFloor}, x: big.NewRat(3, 32), want: "fix(0.0625, 8, 4)"},
		{q: values.Quantizer{Rounding: values.RoundFloor}, x: big.NewRat(-3, 32), want: "fix(-0.125, 8, 4)"},
		{q: values.Quantizer{Rounding: values.RoundCeiling}, x: big.NewRat(3, 32), want: "fix(0.125, 8, 4)"},
		{q: values.Quantizer{Rounding: values.RoundCeiling}, x: big.NewRat(-3, 32), want: "fix(-0.0625, 8, 4)"},
		{q: values.Quantizer{Rounding: values.RoundCeiling}, x: big.NewRat(1, 8), want: "fix(0.125, 8, 4)"},
		{q: values.Quantizer{Rounding: values.RoundToZero}, x: big.NewRat(3, 32), want: "fix(0.0625, 8, 4)"},
		{q: values.Quantizer{Rounding: values.RoundToZero}, x: big.NewRat(-3, 32), want: "fix(-0.0625, 8, 4)"},
		{x: big.NewRat(100, 1), want: "fix(7.9375, 8, 4)"},
		{q: values.Quantizer{Overflow: values.OverflowToZero}, x: big.NewRat(100, 1), want: "fix(0.0, 8, 4)"},
		{q: values.Quantizer{Overflow: values.OverflowToZero}, x: big.NewRat(7, 1), want: "fix(7.0, 8, 4)"},
		{q: values.Quantizer{Overflow: values.Wrap}, x: big.NewRat(100, 1), want: "fix(4.0, 8, 4)"},
		{q: values.Quantizer{Overflow: values.Wrap}, x: big.NewRat(-100, 1), want: "fix(-4.0, 8, 4)"},
		{q: values.Quantizer{Overflow: values.Wrap}, x: big.NewRat(9, 1), want: "fix(-7.0, 8, 4)"},
		{q: values.Quantizer{Overflow: values.Wrap}, x: big.NewRat(-8, 1), want: "fix(-8.0, 8, 4)"},
	}
	for i, test := range tests {
		got, err := test.q.Quantize(test.x, prec)
		if err != nil {
			t.Errorf("test %d: %+v", i, err)
			continue
		}
		if got.String() != test.want {
			t.Errorf("test %d: quantizing %s: got %s but want %s", i, test.x.RatString(), got, test.want)
		}
	}
	if _, err := (values.Quantizer{}).Quantize(big.NewRat(1, 1), values.Precision{Bits: 2, IntegerBits: 3}); err == nil {
		t.Errorf("invalid precision accepted")
	}
}

func TestRequantize(t *testing.T) {
	x := fixedPoint(t, 1.75, 9, 5)
	tests := []struct {
		q    values.Quantizer
		prec values.Precision
		want string
	}{
		{prec: values.Precision{Bits: 16, IntegerBits: 8}, want: "fix(1.75, 16, 8)"},
		{q: values.Quantizer{Rounding: values.RoundToZero}, prec: values.Precision{Bits: 4, IntegerBits: 4}, want: "fix(1.0, 4, 4)"},
		{q: values.Quantizer{Rounding: values.RoundHalfEven}, prec: values.Precision{Bits: 4, IntegerBits: 4}, want: "fix(2.0, 4, 4)"},
		{prec: values.Precision{Bits: 3, IntegerBits: 1}, want: "fix(0.75, 3, 1)"},
		{q: values.Quantizer{Overflow: values.Wrap}, prec: values.Precision{Bits: 3, IntegerBits: 1}, want: "fix(-0.25, 3, 1)"},
	}
	for i, test := range tests {
		got, err := x.Requantize(test.prec, test.q)
		if err != nil {
			t.Errorf("test %d: %+v", i, err)
			continue
		}
		if got.String() != test.want {
			t.Errorf("test %d: got %s but want %s", i, got, test.want)
		}
	}
}

func TestFixedPointArithmetic(t *testing.T) {
	ops := values.Default()
	x := fixedPoint(t, 1.5, 8, 4)
	y := fixedPoint(t, 0.25, 8, 4)
	tests := []struct {
		op   binaryFunc
		want string
	}{
		{op: ops.Add, want: "fix(1.75, 9, 5)"},
		{op: ops.Subtract, want: "fix(1.25, 9, 5)"},
		{op: ops.Multiply, want: "fix(0.375, 16, 8)"},
		{op: ops.Divide, want: "fix(6.0, 8, 4)"},
	}
	for i, test := range tests {
		got, err := test.op(x, y)
		if err != nil {
			t.Errorf("test %d: %+v", i, err)
			continue
		}
		if got.String() != test.want {
			t.Errorf("test %d: got %s but want %s", i, got, test.want)
		}
	}
	if _, err := ops.Divide(x, fixedPoint(t, 0, 8, 4)); !errors.Is(err, fmterr.ErrDivideByZero) {
		t.Errorf("dividing by zero returned error %v but want %v", err, fmterr.ErrDivideByZero)
	}
	if _, err := ops.Modulo(x, y); !errors.Is(err, fmterr.ErrUnsupported) {
		t.Errorf("modulo returned error %v but want %v", err, fmterr.ErrUnsupported)
	}
}

func TestFixedPointUnary(t *testing.T) {
	ops := values.Default()
	neg, err := ops.Negate(fixedPoint(t, -8, 8, 4))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if want := "fix(7.9375, 8, 4)"; neg.String() != want {
		t.Errorf("negate: got %s but want %s", neg, want)
	}
	abs, err := ops.Absolute(fixedPoint(t, -2.5, 8, 4))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if want := "fix(2.5, 8, 4)"; abs.String() != want {
		t.Errorf("absolute: got %s but want %s", abs, want)
	}
	one, err := ops.One(fixedPoint(t, 3, 8, 4))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if want := "fix(1.0, 8, 4)"; one.String() != want {
		t.Errorf("one: got %s but want %s", one, want)
	}
	if _, err := ops.BitwiseNot(one); !errors.Is(err, fmterr.ErrUnsupported) {
		t.Errorf("bitwise not returned error %v but want %v", err, fmterr.ErrUnsupported)
	}
}

func TestFixedPointCompare(t *testing.T) {
	ops := values.Default()
	half := fixedPoint(t, 0.5, 8, 4)
	wide := fixedPoint(t, 0.5, 16, 8)
	if half.Equal(wide) {
		t.Errorf("%s and %s have different precisions but are equal", half, wide)
	}
	eq, err := ops.IsEqualTo(half, wide)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Errorf("%s is not equal to %s", half, wide)
	}
	less, err := ops.IsLessThan(half, fixedPoint(t, 0.75, 8, 4))
	if err != nil {
		t.Fatal(err)
	}
	if !less {
		t.Errorf("0.5 is not less than 0.75")
	}
	near, err := ops.IsCloseTo(half, fixedPoint(t, 0.5625, 8, 4), 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if !near {
		t.Errorf("0.5 is not close to 0.5625")
	}
}

func TestFixedPointAccessors(t *testing.T) {
	x := fixedPoint(t, 1.5, 8, 4)
	if got := x.Mantissa(); got.Cmp(big.NewInt(24)) != 0 {
		t.Errorf("got mantissa %s but want 24", got)
	}
	if got := x.Rat(); got.Cmp(big.NewRat(3, 2)) != 0 {
		t.Errorf("got value %s but want 3/2", got)
	}
	if got := x.Double(); got != 1.5 {
		t.Errorf("got %v but want 1.5", got)
	}
	if got := x.Precision().FractionBits(); got != 4 {
		t.Errorf("got %d fraction bits but want 4", got)
	}
	for i, prec := range []values.Precision{
		{Bits: 0, IntegerBits: 0},
		{Bits: 8, IntegerBits: 9},
		{Bits: 8, IntegerBits: -1},
	} {
		if _, err := values.NewFixedPoint(1, prec); err == nil {
			t.Errorf("test %d: precision %v accepted", i, prec)
		}
	}
}
