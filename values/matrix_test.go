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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/types"
	"github.com/gx-org/tokens/values"
)

func doubleMatrix(t *testing.T, rows, cols int, vals ...float64) *values.DoubleMatrix {
	m, err := values.NewMatrix(rows, cols, vals)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return m
}

func TestMatrixOps(t *testing.T) {
	ops := values.Default()
	m := intMatrix(t, 2, 2, 1, 2, 3, 4)
	tests := []struct {
		op   binaryFunc
		x, y values.Token
		want string
	}{
		{op: ops.Add, x: m, y: m, want: "[2, 4; 6, 8]"},
		{op: ops.Subtract, x: m, y: values.Int(1), want: "[0, 1; 2, 3]"},
		{op: ops.Add, x: values.Int(1), y: m, want: "[2, 3; 4, 5]"},
		{op: ops.Multiply, x: m, y: m, want: "[7, 10; 15, 22]"},
		{op: ops.Multiply, x: values.Int(2), y: m, want: "[2, 4; 6, 8]"},
		{op: ops.Multiply, x: intMatrix(t, 1, 3, 1, 2, 3), y: intMatrix(t, 3, 1, 4, 5, 6), want: "[32]"},
		{op: ops.Add, x: m, y: doubleMatrix(t, 2, 2, 0.5, 0.5, 0.5, 0.5), want: "[1.5, 2.5; 3.5, 4.5]"},
		{op: ops.Divide, x: doubleMatrix(t, 1, 2, 1, 2), y: values.Double(2), want: "[0.5, 1.0]"},
		{op: ops.BitwiseAnd, x: m, y: values.Int(6), want: "[0, 2; 2, 4]"},
	}
	for i, test := range tests {
		got, err := test.op(test.x, test.y)
		if err != nil {
			t.Errorf("test %d: %+v", i, err)
			continue
		}
		if got.String() != test.want {
			t.Errorf("test %d: got %s but want %s", i, got, test.want)
		}
	}
}

func TestMatrixErrors(t *testing.T) {
	ops := values.Default()
	m := intMatrix(t, 2, 2, 1, 2, 3, 4)
	bm, err := values.NewMatrix(1, 2, []bool{true, false})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		op   binaryFunc
		x, y values.Token
		want error
	}{
		{op: ops.Add, x: m, y: intMatrix(t, 1, 2, 1, 2), want: fmterr.ErrUnsupported},
		{op: ops.Multiply, x: m, y: intMatrix(t, 1, 2, 1, 2), want: fmterr.ErrUnsupported},
		{op: ops.Multiply, x: intMatrix(t, 2, 0), y: intMatrix(t, 0, 2), want: fmterr.ErrUnsupported},
		{op: ops.Add, x: bm, y: bm, want: fmterr.ErrUnsupported},
		{op: ops.Divide, x: m, y: values.Int(0), want: fmterr.ErrDivideByZero},
		{op: ops.Add, x: m, y: values.Double(1), want: fmterr.ErrIncomparable},
		{op: ops.BitwiseOr, x: doubleMatrix(t, 1, 1, 1), y: doubleMatrix(t, 1, 1, 1), want: fmterr.ErrUnsupported},
		{op: ops.Add, x: values.Long(1), y: m, want: fmterr.ErrIncomparable},
	}
	for i, test := range tests {
		got, err := test.op(test.x, test.y)
		if err == nil {
			t.Errorf("test %d: got %s but want an error", i, got)
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("test %d: got error %v but want %v", i, err, test.want)
		}
	}
	if _, err := ops.IsLessThan(m, m); !errors.Is(err, fmterr.ErrUnsupported) {
		t.Errorf("IsLessThan: got error %v but want %v", err, fmterr.ErrUnsupported)
	}
	if _, err := values.NewMatrix(2, 2, []int32{1, 2, 3}); !errors.Is(err, fmterr.ErrUnsupported) {
		t.Errorf("NewMatrix: got error %v but want %v", err, fmterr.ErrUnsupported)
	}
	if _, err := m.At(2, 0); !errors.Is(err, fmterr.ErrIndex) {
		t.Errorf("At: got error %v but want %v", err, fmterr.ErrIndex)
	}
	if _, err := m.Element(0, -1); !errors.Is(err, fmterr.ErrIndex) {
		t.Errorf("Element: got error %v but want %v", err, fmterr.ErrIndex)
	}
}

func TestBooleanMatrix(t *testing.T) {
	x, err := values.NewMatrix(1, 3, []bool{true, true, false})
	if err != nil {
		t.Fatal(err)
	}
	y, err := values.NewMatrix(1, 3, []bool{true, false, false})
	if err != nil {
		t.Fatal(err)
	}
	got, err := values.Default().BitwiseXor(x, y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if want := "[false, true, false]"; got.String() != want {
		t.Errorf("got %s but want %s", got, want)
	}
	if !got.Type().Equal(types.BooleanMatrix) {
		t.Errorf("got type %s but want %s", got.Type(), types.BooleanMatrix)
	}
}

func TestMatrixUnary(t *testing.T) {
	ops := values.Default()
	m := intMatrix(t, 2, 2, 1, -2, 3, -4)
	neg, err := ops.Negate(m)
	if err != nil {
		t.Fatal(err)
	}
	if want := "[-1, 2; -3, 4]"; neg.String() != want {
		t.Errorf("negate: got %s but want %s", neg, want)
	}
	one, err := ops.One(m)
	if err != nil {
		t.Fatal(err)
	}
	if want := "[1, 0; 0, 1]"; one.String() != want {
		t.Errorf("one: got %s but want %s", one, want)
	}
	zero, err := ops.Zero(m)
	if err != nil {
		t.Fatal(err)
	}
	if want := "[0, 0; 0, 0]"; zero.String() != want {
		t.Errorf("zero: got %s but want %s", zero, want)
	}
	if _, err := ops.One(intMatrix(t, 1, 2, 1, 2)); !errors.Is(err, fmterr.ErrUnsupported) {
		t.Errorf("one of a non-square matrix: got error %v but want %v", err, fmterr.ErrUnsupported)
	}
	cm, err := values.NewMatrix(1, 2, []complex128{3 + 4i, -1})
	if err != nil {
		t.Fatal(err)
	}
	abs, err := ops.Absolute(cm)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := abs.(*values.DoubleMatrix); !ok {
		t.Errorf("absolute of a complex matrix returned %T but want %T", abs, (*values.DoubleMatrix)(nil))
	}
	if want := "[5.0, 1.0]"; abs.String() != want {
		t.Errorf("absolute: got %s but want %s", abs, want)
	}
}

func TestMatrixAccessors(t *testing.T) {
	m := intMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	if m.Rows() != 2 || m.Columns() != 3 {
		t.Errorf("got a %dx%d matrix but want 2x3", m.Rows(), m.Columns())
	}
	sh := m.Shape()
	if sh.DType != dtype.Int32 {
		t.Errorf("got data type %v but want %v", sh.DType, dtype.Int32)
	}
	if diff := cmp.Diff([]int{2, 3}, sh.AxisLengths); diff != "" {
		t.Errorf("unexpected axis lengths:\n%s", diff)
	}
	if diff := cmp.Diff([]int32{1, 2, 3, 4, 5, 6}, m.Values()); diff != "" {
		t.Errorf("unexpected values:\n%s", diff)
	}
	v, err := m.At(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if v != 6 {
		t.Errorf("At(1, 2) = %d but want 6", v)
	}
	elt, err := m.Element(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !elt.Equal(values.Int(2)) {
		t.Errorf("Element(0, 1) = %s but want 2", elt)
	}
	m.Values()[0] = 42
	if v, _ := m.At(0, 0); v != 1 {
		t.Errorf("modifying the values returned by Values changed the matrix")
	}
}

func TestMatrixCompare(t *testing.T) {
	ops := values.Default()
	m := intMatrix(t, 1, 2, 1, 2)
	d := doubleMatrix(t, 1, 2, 1, 2.05)
	eq, err := ops.IsEqualTo(m, doubleMatrix(t, 1, 2, 1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Errorf("%s is not equal to [1.0, 2.0]", m)
	}
	eq, err = ops.IsEqualTo(m, d)
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Errorf("%s is equal to %s", m, d)
	}
	near, err := ops.IsCloseTo(m, d, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if !near {
		t.Errorf("%s is not close to %s", m, d)
	}
	eq, err = ops.IsEqualTo(m, intMatrix(t, 2, 1, 1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Errorf("matrices of different shapes are equal")
	}
}

func TestMatrixCrop(t *testing.T) {
	m := intMatrix(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	tests := []struct {
		row, col, rows, cols int
		want                 string
	}{
		{row: 1, col: 1, rows: 2, cols: 2, want: "[5, 6; 8, 9]"},
		{row: 0, col: 0, rows: 3, cols: 3, want: "[1, 2, 3; 4, 5, 6; 7, 8, 9]"},
		{row: 2, col: 0, rows: 1, cols: 3, want: "[7, 8, 9]"},
		{row: 0, col: 2, rows: 3, cols: 1, want: "[3; 6; 9]"},
	}
	for i, test := range tests {
		got, err := m.Crop(test.row, test.col, test.rows, test.cols)
		if err != nil {
			t.Errorf("test %d: %+v", i, err)
			continue
		}
		if got.String() != test.want {
			t.Errorf("test %d: got %s but want %s", i, got, test.want)
		}
	}
	errs := []struct {
		row, col, rows, cols int
		want                 error
	}{
		{row: 2, col: 0, rows: 2, cols: 1, want: fmterr.ErrIndex},
		{row: -1, col: 0, rows: 1, cols: 1, want: fmterr.ErrIndex},
		{row: 0, col: 2, rows: 1, cols: 2, want: fmterr.ErrIndex},
		{row: 0, col: -1, rows: 1, cols: 1, want: fmterr.ErrIndex},
		{row: 0, col: 0, rows: 0, cols: 1, want: fmterr.ErrUnsupported},
	}
	for i, test := range errs {
		if _, err := m.Crop(test.row, test.col, test.rows, test.cols); !errors.Is(err, test.want) {
			t.Errorf("test %d: got error %v but want %v", i, err, test.want)
		}
	}
}

func TestMatrixSplitJoin(t *testing.T) {
	m := intMatrix(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	tests := []struct {
		rows, cols []int
		want       [][]string
	}{
		{
			rows: []int{2, 1}, cols: []int{1, 2},
			want: [][]string{{"[1; 4]", "[2, 3; 5, 6]"}, {"[7]", "[8, 9]"}},
		},
		{
			rows: []int{2, 2}, cols: []int{3},
			want: [][]string{{"[1, 2, 3; 4, 5, 6]"}, {"[7, 8, 9; 0, 0, 0]"}},
		},
		{
			rows: []int{1}, cols: []int{1, 1},
			want: [][]string{{"[1]", "[2]"}},
		},
	}
	for i, test := range tests {
		tiles, err := m.Split(test.rows, test.cols)
		if err != nil {
			t.Errorf("test %d: %+v", i, err)
			continue
		}
		got := make([][]string, len(tiles))
		for r, line := range tiles {
			for _, tile := range line {
				got[r] = append(got[r], tile.String())
			}
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("test %d: unexpected tiles:\n%s", i, diff)
		}
	}
	if _, err := m.Split([]int{-1}, []int{1}); !errors.Is(err, fmterr.ErrUnsupported) {
		t.Errorf("got error %v but want %v", err, fmterr.ErrUnsupported)
	}

	tiles, err := m.Split([]int{2, 1}, []int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	joined, err := values.Join(tiles)
	if err != nil {
		t.Fatal(err)
	}
	if !joined.Equal(m) {
		t.Errorf("joining the tiles of %s returned %s", m, joined)
	}
}

func TestMatrixJoin(t *testing.T) {
	a := intMatrix(t, 1, 1, 1)
	b := intMatrix(t, 1, 2, 2, 3)
	c := intMatrix(t, 2, 1, 4, 5)
	d := intMatrix(t, 1, 1, 6)
	got, err := values.Join([][]*values.IntMatrix{{a, b}, {c, d}})
	if err != nil {
		t.Fatal(err)
	}
	if want := "[1, 2, 3; 4, 6, 0; 5, 0, 0]"; got.String() != want {
		t.Errorf("got %s but want %s", got, want)
	}
	errs := [][][]*values.IntMatrix{
		nil,
		{{}},
		{{a, b}, {c}},
		{{a, nil}},
	}
	for i, tiles := range errs {
		if _, err := values.Join(tiles); !errors.Is(err, fmterr.ErrUnsupported) {
			t.Errorf("test %d: got error %v but want %v", i, err, fmterr.ErrUnsupported)
		}
	}
}

func TestFixedPointMatrixSplit(t *testing.T) {
	m, err := values.NewMatrix(1, 1, []values.FixedPoint{fixedPoint(t, 1.5, 8, 4)})
	if err != nil {
		t.Fatal(err)
	}
	tiles, err := m.Split([]int{1}, []int{2})
	if err != nil {
		t.Fatal(err)
	}
	if want := "[fix(1.5, 8, 4), fix(0.0, 8, 4)]"; tiles[0][0].String() != want {
		t.Errorf("got %s but want %s", tiles[0][0], want)
	}
}

func TestNewMatrixFromTokens(t *testing.T) {
	ops := values.Default()
	got, err := values.NewMatrixFromTokens[float64](ops, 1, 3, []values.Token{values.Int(1), values.Long(2), values.Double(0.5)})
	if err != nil {
		t.Fatal(err)
	}
	if want := doubleMatrix(t, 1, 3, 1, 2, 0.5); !got.Equal(want) {
		t.Errorf("got %s but want %s", got, want)
	}
	ub, err := values.NewMatrixFromTokens[int32](ops, 2, 1, []values.Token{values.UnsignedByte(255), values.Int(-1)})
	if err != nil {
		t.Fatal(err)
	}
	if want := "[255; -1]"; ub.String() != want {
		t.Errorf("got %s but want %s", ub, want)
	}
	errs := []struct {
		rows, cols int
		toks       []values.Token
		want       error
	}{
		{rows: 1, cols: 1, toks: []values.Token{values.Double(1)}, want: fmterr.ErrUnsupported},
		{rows: 1, cols: 1, toks: []values.Token{values.String("a")}, want: fmterr.ErrIncomparable},
		{rows: 1, cols: 2, toks: []values.Token{values.Int(1)}, want: fmterr.ErrUnsupported},
		{rows: -1, cols: 0, want: fmterr.ErrUnsupported},
	}
	for i, test := range errs {
		if _, err := values.NewMatrixFromTokens[int32](ops, test.rows, test.cols, test.toks); !errors.Is(err, test.want) {
			t.Errorf("test %d: got error %v but want %v", i, err, test.want)
		}
	}
}
