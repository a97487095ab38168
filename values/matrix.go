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
	"slices"
	"strings"

	"github.com/gx-org/backend/shape"
	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/types"
	"github.com/gx-org/tokens/types/kind"
)

// Element is the Go type of the elements of a matrix.
type Element interface {
	bool | int32 | int64 | float64 | complex128 | FixedPoint
}

// Matrix is a two dimensional matrix stored in row-major order.
type Matrix[T Element] struct {
	shape *shape.Shape
	data  []T
}

// Matrix tokens.
type (
	BooleanMatrix    = Matrix[bool]
	IntMatrix        = Matrix[int32]
	LongMatrix       = Matrix[int64]
	DoubleMatrix     = Matrix[float64]
	ComplexMatrix    = Matrix[complex128]
	FixedPointMatrix = Matrix[FixedPoint]
)

var (
	_ binaryToken     = (*IntMatrix)(nil)
	_ unaryToken      = (*DoubleMatrix)(nil)
	_ identityToken   = (*ComplexMatrix)(nil)
	_ comparableToken = (*BooleanMatrix)(nil)
	_ closeToken      = (*FixedPointMatrix)(nil)
)

func elementKind[T Element]() kind.Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return kind.Boolean
	case int32:
		return kind.Int
	case int64:
		return kind.Long
	case float64:
		return kind.Double
	case complex128:
		return kind.Complex
	case FixedPoint:
		return kind.FixedPoint
	}
	return kind.Unknown
}

// elementToken returns the scalar token of an element of a matrix.
func elementToken[T Element](v T) Token {
	switch vT := any(v).(type) {
	case bool:
		return Boolean(vT)
	case int32:
		return Int(vT)
	case int64:
		return Long(vT)
	case float64:
		return Double(vT)
	case complex128:
		return Complex(vT)
	case FixedPoint:
		return vT
	}
	return nil
}

// tokenElement returns the matrix element of a scalar token.
func tokenElement[T Element](tok Token) (T, bool) {
	var v any
	switch tokT := tok.(type) {
	case Boolean:
		v = bool(tokT)
	case Int:
		v = int32(tokT)
	case Long:
		v = int64(tokT)
	case Double:
		v = float64(tokT)
	case Complex:
		v = complex128(tokT)
	case FixedPoint:
		v = tokT
	}
	t, ok := v.(T)
	return t, ok
}

// NewMatrix returns a matrix given its values in row-major order.
func NewMatrix[T Element](rows, columns int, vals []T) (*Matrix[T], error) {
	if rows < 0 || columns < 0 {
		return nil, fmterr.Unsupportedf("invalid matrix dimensions %dx%d", rows, columns)
	}
	if len(vals) != rows*columns {
		return nil, fmterr.Unsupportedf("cannot create a %dx%d matrix from %d values", rows, columns, len(vals))
	}
	return newMatrix(rows, columns, slices.Clone(vals)), nil
}

func newMatrix[T Element](rows, columns int, vals []T) *Matrix[T] {
	return &Matrix[T]{
		shape: &shape.Shape{
			DType:       elementKind[T]().DType(),
			AxisLengths: []int{rows, columns},
		},
		data: vals,
	}
}

func (*Matrix[T]) token() {}

// Type of the token.
func (*Matrix[T]) Type() types.Type {
	return types.TypeFromKind(elementKind[T]().MatrixKind())
}

// Shape returns the shape of the matrix.
func (m *Matrix[T]) Shape() *shape.Shape {
	return m.shape
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.shape.AxisLengths[0]
}

// Columns returns the number of columns.
func (m *Matrix[T]) Columns() int {
	return m.shape.AxisLengths[1]
}

// Values returns a copy of the elements of the matrix in row-major order.
func (m *Matrix[T]) Values() []T {
	return slices.Clone(m.data)
}

// At returns the element at a given row and column.
func (m *Matrix[T]) At(row, column int) (T, error) {
	if row < 0 || row >= m.Rows() {
		var zero T
		return zero, fmterr.Index(row, m.Rows())
	}
	if column < 0 || column >= m.Columns() {
		var zero T
		return zero, fmterr.Index(column, m.Columns())
	}
	return m.data[row*m.Columns()+column], nil
}

// Element returns the token at a given row and column.
func (m *Matrix[T]) Element(row, column int) (Token, error) {
	v, err := m.At(row, column)
	if err != nil {
		return nil, err
	}
	return elementToken(v), nil
}

func (m *Matrix[T]) sameShape(o *Matrix[T]) bool {
	return m.Rows() == o.Rows() && m.Columns() == o.Columns()
}

func (m *Matrix[T]) isScalar() bool {
	return m.Rows() == 1 && m.Columns() == 1
}

// Equal returns true if other is a matrix of the same type, shape, and elements.
func (m *Matrix[T]) Equal(other Token) bool {
	o, ok := other.(*Matrix[T])
	if !ok || !m.sameShape(o) {
		return false
	}
	for i, v := range m.data {
		if !elementToken(v).Equal(elementToken(o.data[i])) {
			return false
		}
	}
	return true
}

// String returns the rows of the matrix separated by semicolons.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range m.data {
		if i > 0 {
			if i%m.Columns() == 0 {
				b.WriteString("; ")
			} else {
				b.WriteString(", ")
			}
		}
		b.WriteString(elementToken(v).String())
	}
	b.WriteString("]")
	return b.String()
}

// mapElements applies f to every element of a matrix.
func mapElements[T, U Element](m *Matrix[T], f func(Token) (Token, error)) (*Matrix[U], error) {
	out := make([]U, len(m.data))
	for i, v := range m.data {
		r, err := f(elementToken(v))
		if err != nil {
			return nil, err
		}
		var ok bool
		if out[i], ok = tokenElement[U](r); !ok {
			return nil, fmterr.Internalf("%s: cannot store %s in a %s", m.Type(), r, (*Matrix[U])(nil).Type())
		}
	}
	return newMatrix(m.Rows(), m.Columns(), out), nil
}

func elementBinary(ops *Ops, op token.Token, x, y Token) (Token, error) {
	return x.(binaryToken).binary(ops, op, y)
}

func (m *Matrix[T]) binary(ops *Ops, op token.Token, y Token) (Token, error) {
	o := y.(*Matrix[T])
	if elementKind[T]() == kind.Boolean {
		switch op {
		case token.AND, token.OR, token.XOR:
		default:
			return nil, fmterr.Unsupported(opName(op), m.Type())
		}
	}
	if op == token.MUL && !m.isScalar() && !o.isScalar() {
		return m.product(ops, o)
	}
	return m.elementWise(ops, op, o)
}

// elementWise applies op to the elements of both matrices.
// A 1x1 matrix is broadcast to the shape of the other operand.
func (m *Matrix[T]) elementWise(ops *Ops, op token.Token, o *Matrix[T]) (*Matrix[T], error) {
	switch {
	case m.sameShape(o):
		out := make([]T, len(m.data))
		for i := range m.data {
			if err := m.store(ops, op, out, i, m.data[i], o.data[i]); err != nil {
				return nil, err
			}
		}
		return newMatrix(m.Rows(), m.Columns(), out), nil
	case m.isScalar():
		out := make([]T, len(o.data))
		for i := range o.data {
			if err := m.store(ops, op, out, i, m.data[0], o.data[i]); err != nil {
				return nil, err
			}
		}
		return newMatrix(o.Rows(), o.Columns(), out), nil
	case o.isScalar():
		out := make([]T, len(m.data))
		for i := range m.data {
			if err := m.store(ops, op, out, i, m.data[i], o.data[0]); err != nil {
				return nil, err
			}
		}
		return newMatrix(m.Rows(), m.Columns(), out), nil
	}
	return nil, fmterr.Unsupportedf("%s not supported between matrices of shapes %v and %v", opName(op), m.shape.AxisLengths, o.shape.AxisLengths)
}

func (m *Matrix[T]) store(ops *Ops, op token.Token, out []T, i int, a, b T) error {
	r, err := elementBinary(ops, op, elementToken(a), elementToken(b))
	if err != nil {
		return err
	}
	var ok bool
	if out[i], ok = tokenElement[T](r); !ok {
		return fmterr.Internalf("%s: cannot store %s in a %s", opName(op), r, m.Type())
	}
	return nil
}

// product returns the matrix product m x o.
func (m *Matrix[T]) product(ops *Ops, o *Matrix[T]) (*Matrix[T], error) {
	if m.Columns() != o.Rows() {
		return nil, fmterr.Unsupportedf("cannot multiply a %dx%d matrix with a %dx%d matrix", m.Rows(), m.Columns(), o.Rows(), o.Columns())
	}
	if m.Columns() == 0 {
		return nil, fmterr.Unsupportedf("cannot multiply matrices with no columns")
	}
	rows, cols, inner := m.Rows(), o.Columns(), m.Columns()
	out := make([]T, rows*cols)
	for r := range rows {
		for c := range cols {
			var sum Token
			for k := range inner {
				p, err := elementBinary(ops, token.MUL, elementToken(m.data[r*inner+k]), elementToken(o.data[k*cols+c]))
				if err != nil {
					return nil, err
				}
				if sum == nil {
					sum = p
					continue
				}
				if sum, err = elementBinary(ops, token.ADD, sum, p); err != nil {
					return nil, err
				}
			}
			var ok bool
			if out[r*cols+c], ok = tokenElement[T](sum); !ok {
				return nil, fmterr.Internalf("multiply: cannot store %s in a %s", sum, m.Type())
			}
		}
	}
	return newMatrix(rows, cols, out), nil
}

func (m *Matrix[T]) unary(ops *Ops, op token.Token) (Token, error) {
	return mapElements[T, T](m, func(x Token) (Token, error) {
		return x.(unaryToken).unary(ops, op)
	})
}

func (m *Matrix[T]) absolute(ops *Ops) (Token, error) {
	abs := func(x Token) (Token, error) {
		return x.(absoluteToken).absolute(ops)
	}
	if cm, ok := any(m).(*ComplexMatrix); ok {
		return mapElements[complex128, float64](cm, abs)
	}
	return mapElements[T, T](m, abs)
}

// one returns the identity matrix.
func (m *Matrix[T]) one(ops *Ops) (Token, error) {
	if m.Rows() != m.Columns() {
		return nil, fmterr.Unsupportedf("one not supported for a non-square %dx%d matrix", m.Rows(), m.Columns())
	}
	if len(m.data) == 0 {
		return m, nil
	}
	elt := elementToken(m.data[0]).(identityToken)
	one, err := elt.one(ops)
	if err != nil {
		return nil, err
	}
	zero, err := elt.zero(ops)
	if err != nil {
		return nil, err
	}
	oneV, _ := tokenElement[T](one)
	zeroV, _ := tokenElement[T](zero)
	n := m.Rows()
	out := make([]T, n*n)
	for i := range out {
		out[i] = zeroV
		if i/n == i%n {
			out[i] = oneV
		}
	}
	return newMatrix(n, n, out), nil
}

func (m *Matrix[T]) zero(ops *Ops) (Token, error) {
	return mapElements[T, T](m, func(x Token) (Token, error) {
		return x.(identityToken).zero(ops)
	})
}

func (m *Matrix[T]) compare(ops *Ops, op token.Token, y Token) (bool, error) {
	if op != token.EQL {
		return false, fmterr.Unsupported(opName(op), m.Type())
	}
	o := y.(*Matrix[T])
	if !m.sameShape(o) {
		return false, nil
	}
	for i, v := range m.data {
		eq, err := elementToken(v).(comparableToken).compare(ops, op, elementToken(o.data[i]))
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

func (m *Matrix[T]) isCloseTo(ops *Ops, y Token, epsilon float64) (bool, error) {
	o := y.(*Matrix[T])
	if !m.sameShape(o) {
		return false, nil
	}
	for i, v := range m.data {
		near, err := ops.isCloseToUnified(elementToken(v), elementToken(o.data[i]), epsilon)
		if err != nil || !near {
			return false, err
		}
	}
	return true, nil
}

// matrixFromScalar returns a 1x1 matrix holding a scalar already converted
// to the element type of the matrix.
func matrixFromScalar[T Element](tok Token) (*Matrix[T], bool) {
	v, ok := tokenElement[T](tok)
	if !ok {
		return nil, false
	}
	return newMatrix(1, 1, []T{v}), true
}

// NewMatrixFromTokens returns a matrix given its elements in row-major order.
// Every token is converted to the element type of the matrix.
func NewMatrixFromTokens[T Element](o *Ops, rows, columns int, toks []Token) (*Matrix[T], error) {
	if rows < 0 || columns < 0 {
		return nil, fmterr.Unsupportedf("invalid matrix dimensions %dx%d", rows, columns)
	}
	if len(toks) != rows*columns {
		return nil, fmterr.Unsupportedf("cannot create a %dx%d matrix from %d tokens", rows, columns, len(toks))
	}
	elemType := types.TypeFromKind(elementKind[T]())
	vals := make([]T, len(toks))
	for i, tok := range toks {
		elem, err := o.Convert(elemType, tok)
		if err != nil {
			return nil, fmterr.PrefixWith("element %d: ", i)(err)
		}
		var ok bool
		if vals[i], ok = tokenElement[T](elem); !ok {
			return nil, fmterr.Internalf("cannot store %s in a %s", elem, (*Matrix[T])(nil).Type())
		}
	}
	return newMatrix(rows, columns, vals), nil
}

// zeroElement returns the additive identity of the elements of a matrix.
// like provides the precision of fixed point elements.
func zeroElement[T Element](like []T) T {
	var zero T
	if len(like) == 0 {
		return zero
	}
	if fp, ok := any(like[0]).(FixedPoint); ok {
		zero, _ = any(FixedPoint{prec: fp.prec}).(T)
	}
	return zero
}

func newFilled[T Element](rows, columns int, v T) *Matrix[T] {
	vals := make([]T, rows*columns)
	for i := range vals {
		vals[i] = v
	}
	return newMatrix(rows, columns, vals)
}

// copyBlock copies a block of src starting at (srcRow, srcCol) into dst at (dstRow, dstCol).
// The block is clipped to the bounds of both matrices.
func copyBlock[T Element](dst *Matrix[T], dstRow, dstCol int, src *Matrix[T], srcRow, srcCol, rows, columns int) {
	rows = min(rows, dst.Rows()-dstRow, src.Rows()-srcRow)
	columns = min(columns, dst.Columns()-dstCol, src.Columns()-srcCol)
	for r := range max(rows, 0) {
		for c := range max(columns, 0) {
			dst.data[(dstRow+r)*dst.Columns()+dstCol+c] = src.data[(srcRow+r)*src.Columns()+srcCol+c]
		}
	}
}

// Crop returns the sub-matrix of rows x columns elements starting at (row, column).
func (m *Matrix[T]) Crop(row, column, rows, columns int) (*Matrix[T], error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmterr.Unsupportedf("cannot crop an empty %dx%d matrix", rows, columns)
	}
	if row < 0 {
		return nil, fmterr.Index(row, m.Rows())
	}
	if row+rows > m.Rows() {
		return nil, fmterr.Index(row+rows-1, m.Rows())
	}
	if column < 0 {
		return nil, fmterr.Index(column, m.Columns())
	}
	if column+columns > m.Columns() {
		return nil, fmterr.Index(column+columns-1, m.Columns())
	}
	out := newMatrix(rows, columns, make([]T, rows*columns))
	copyBlock(out, 0, 0, m, row, column, rows, columns)
	return out, nil
}

// Split cuts a matrix into tiles. Tile (i, j) has rows[i] rows and columns[j] columns.
// Parts of a tile beyond the bounds of m are filled with zeros.
func (m *Matrix[T]) Split(rows, columns []int) ([][]*Matrix[T], error) {
	for _, n := range slices.Concat(rows, columns) {
		if n < 0 {
			return nil, fmterr.Unsupportedf("cannot split a matrix into tiles of size %v x %v", rows, columns)
		}
	}
	zero := zeroElement(m.data)
	out := make([][]*Matrix[T], len(rows))
	row := 0
	for i, nRows := range rows {
		out[i] = make([]*Matrix[T], len(columns))
		column := 0
		for j, nCols := range columns {
			tile := newFilled(nRows, nCols, zero)
			copyBlock(tile, 0, 0, m, row, column, nRows, nCols)
			out[i][j] = tile
			column += nCols
		}
		row += nRows
	}
	return out, nil
}

// Join tiles matrices into a single matrix.
// The number of rows of the result is the sum of the rows of the first column of tiles
// and its number of columns the sum of the columns of the first row of tiles.
// Tiles overlapping previous tiles overwrite them and gaps are filled with zeros.
func Join[T Element](tiles [][]*Matrix[T]) (*Matrix[T], error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, fmterr.Unsupportedf("cannot join matrices: no input matrices")
	}
	var rows, columns int
	var like []T
	for i, line := range tiles {
		if len(line) != len(tiles[0]) {
			return nil, fmterr.Unsupportedf("cannot join matrices: row %d has %d tiles but row 0 has %d", i, len(line), len(tiles[0]))
		}
		for _, tile := range line {
			if tile == nil {
				return nil, fmterr.Unsupportedf("cannot join matrices: missing tile in row %d", i)
			}
			if like == nil && len(tile.data) > 0 {
				like = tile.data
			}
		}
		rows += line[0].Rows()
	}
	for _, tile := range tiles[0] {
		columns += tile.Columns()
	}
	out := newFilled(rows, columns, zeroElement(like))
	row := 0
	for _, line := range tiles {
		column := 0
		for j, tile := range line {
			copyBlock(out, row, column, tile, 0, 0, tile.Rows(), tile.Columns())
			column += tiles[0][j].Columns()
		}
		row += line[0].Rows()
	}
	return out, nil
}
