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
	"maps"
	"slices"
	"strings"

	tokfmt "github.com/gx-org/tokens/base/fmt"
	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/base/ordered"
	"github.com/gx-org/tokens/types"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
)

// Record maps labels to tokens.
// The labels of a plain record are sorted. The labels of an ordered record
// keep the order in which they have been given.
type Record struct {
	fields  *ordered.Map[string, Token]
	ordered bool
	typ     *types.Record
}

var (
	_ binaryToken     = (*Record)(nil)
	_ comparableToken = (*Record)(nil)
	_ closeToken      = (*Record)(nil)
)

func checkLabels(labels []string, vals []Token) error {
	if len(labels) != len(vals) {
		return errors.Errorf("got %d labels but %d values", len(labels), len(vals))
	}
	seen := set.New[string](len(labels))
	for i, label := range labels {
		if !seen.Insert(label) {
			return errors.Errorf("label %s defined more than once", tokfmt.Label(label))
		}
		if vals[i] == nil {
			return errors.Errorf("label %s has no value", tokfmt.Label(label))
		}
	}
	return nil
}

func newRecord(labels []string, vals []Token, isOrdered bool) *Record {
	typs := make([]types.Type, len(vals))
	for i, val := range vals {
		typs[i] = val.Type()
	}
	var fields *ordered.Map[string, Token]
	var typ *types.Record
	if isOrdered {
		fields = ordered.FromSlices(labels, vals)
		// Labels have been checked: the type cannot fail.
		typ, _ = types.NewOrderedRecord(labels, typs)
	} else {
		fields = ordered.NewMap[string, Token]()
		m := make(map[string]types.Type, len(labels))
		vm := make(map[string]Token, len(labels))
		for i, label := range labels {
			m[label] = typs[i]
			vm[label] = vals[i]
		}
		for _, label := range slices.Sorted(maps.Keys(vm)) {
			fields.Store(label, vm[label])
		}
		typ = types.RecordFromMap(m)
	}
	return &Record{fields: fields, ordered: isOrdered, typ: typ}
}

// NewRecord returns a record given labels and their values.
func NewRecord(labels []string, vals []Token) (*Record, error) {
	if err := checkLabels(labels, vals); err != nil {
		return nil, errors.WithMessage(err, "cannot create record")
	}
	return newRecord(labels, vals, false), nil
}

// RecordFromMap returns a record given a map from labels to values.
func RecordFromMap(m map[string]Token) *Record {
	labels := slices.Sorted(maps.Keys(m))
	vals := make([]Token, len(labels))
	for i, label := range labels {
		vals[i] = m[label]
	}
	return newRecord(labels, vals, false)
}

// NewOrderedRecord returns an ordered record given labels and their values.
func NewOrderedRecord(labels []string, vals []Token) (*Record, error) {
	if err := checkLabels(labels, vals); err != nil {
		return nil, errors.WithMessage(err, "cannot create ordered record")
	}
	return newRecord(labels, vals, true), nil
}

// Merge returns a record with the fields of both records.
// Fields of r1 take precedence over the fields of r2 with the same label.
// The result is ordered if r1 is ordered, in which case the labels of r1
// come first followed by the labels only defined by r2.
func Merge(r1, r2 *Record) *Record {
	labels := r1.Labels()
	vals := make([]Token, 0, r1.Len()+r2.Len())
	for _, val := range r1.fields.Iter() {
		vals = append(vals, val)
	}
	for label, val := range r2.fields.Iter() {
		if _, ok := r1.fields.Load(label); ok {
			continue
		}
		labels = append(labels, label)
		vals = append(vals, val)
	}
	return newRecord(labels, vals, r1.ordered)
}

func (*Record) token() {}

// Type of the token.
func (r *Record) Type() types.Type {
	return r.typ
}

// Ordered returns true if the order of the labels is significant.
func (r *Record) Ordered() bool {
	return r.ordered
}

// Labels returns the labels of the record.
func (r *Record) Labels() []string {
	return r.fields.KeySlice()
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return r.fields.Size()
}

// Get returns the value of a field given its label.
func (r *Record) Get(label string) (Token, bool) {
	return r.fields.Load(label)
}

func (r *Record) labelSet() *set.Set[string] {
	return set.From(r.fields.KeySlice())
}

// sameLabels returns true if both records define the same labels.
// The order is checked only if both records are ordered.
func (r *Record) sameLabels(o *Record) bool {
	if r.ordered && o.ordered {
		return r.fields.SameOrder(o.fields)
	}
	return r.labelSet().Equal(o.labelSet())
}

// Equal returns true if other is a record with the same kind of ordering,
// the same labels, and equal values.
func (r *Record) Equal(other Token) bool {
	o, ok := other.(*Record)
	if !ok || r.ordered != o.ordered || !r.sameLabels(o) {
		return false
	}
	for label, val := range r.fields.Iter() {
		oVal, _ := o.fields.Load(label)
		if !val.Equal(oVal) {
			return false
		}
	}
	return true
}

// String returns {label = value, ...} for records and [label = value, ...]
// for ordered records.
func (r *Record) String() string {
	var b strings.Builder
	openB, closeB := "{", "}"
	if r.ordered {
		openB, closeB = "[", "]"
	}
	b.WriteString(openB)
	i := 0
	for label, val := range r.fields.Iter() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(tokfmt.Label(label))
		b.WriteString(" = ")
		b.WriteString(val.String())
		i++
	}
	b.WriteString(closeB)
	return b.String()
}

// commonLabels returns the labels defined by both records in the order of r.
func (r *Record) commonLabels(o *Record) []string {
	common := r.labelSet().Intersect(o.labelSet())
	var labels []string
	for label := range r.fields.Keys() {
		if common.Contains(label) {
			labels = append(labels, label)
		}
	}
	return labels
}

// binary applies op to the fields with the labels defined by both records.
// Other fields are dropped.
func (r *Record) binary(ops *Ops, op token.Token, y Token) (Token, error) {
	o := y.(*Record)
	labels := r.commonLabels(o)
	vals := make([]Token, len(labels))
	for i, label := range labels {
		a, _ := r.fields.Load(label)
		b, _ := o.fields.Load(label)
		var err error
		if vals[i], err = ops.binary(op, a, b); err != nil {
			return nil, fmterr.PrefixWith("field %s: ", tokfmt.Label(label))(err)
		}
	}
	return newRecord(labels, vals, r.ordered), nil
}

func (r *Record) mapFields(f func(Token) (Token, error)) (*Record, error) {
	labels := r.Labels()
	vals := make([]Token, len(labels))
	for i, label := range labels {
		x, _ := r.fields.Load(label)
		var err error
		if vals[i], err = f(x); err != nil {
			return nil, fmterr.PrefixWith("field %s: ", tokfmt.Label(label))(err)
		}
	}
	return newRecord(labels, vals, r.ordered), nil
}

func (r *Record) unary(ops *Ops, op token.Token) (Token, error) {
	return r.mapFields(func(x Token) (Token, error) {
		return ops.unary(op, x)
	})
}

func (r *Record) absolute(ops *Ops) (Token, error) {
	return r.mapFields(ops.Absolute)
}

func (r *Record) one(ops *Ops) (Token, error) {
	return r.mapFields(ops.One)
}

func (r *Record) zero(ops *Ops) (Token, error) {
	return r.mapFields(ops.Zero)
}

// fieldsMatch returns true if both records have the same kind of ordering,
// the same labels, and all their fields match.
func (r *Record) fieldsMatch(o *Record, match func(x, y Token) (bool, error)) (bool, error) {
	if r.ordered != o.ordered || !r.sameLabels(o) {
		return false, nil
	}
	for label, x := range r.fields.Iter() {
		y, _ := o.fields.Load(label)
		ok, err := match(x, y)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (r *Record) compare(ops *Ops, op token.Token, y Token) (bool, error) {
	if op != token.EQL {
		return false, fmterr.Unsupported(opName(op), r.Type())
	}
	return r.fieldsMatch(y.(*Record), ops.IsEqualTo)
}

func (r *Record) isCloseTo(ops *Ops, y Token, epsilon float64) (bool, error) {
	return r.fieldsMatch(y.(*Record), func(x, y Token) (bool, error) {
		return ops.IsCloseTo(x, y, epsilon)
	})
}

func (o *Ops) convertToRecord(target *types.Record, tok Token) (*Record, error) {
	r, ok := tok.(*Record)
	if !ok {
		return nil, fmterr.Internalf("cannot convert %T to a record", tok)
	}
	labels := target.Labels()
	vals := make([]Token, len(labels))
	for i, label := range labels {
		val, ok := r.fields.Load(label)
		if !ok {
			return nil, fmterr.Internalf("record %s has no field %s", r, tokfmt.Label(label))
		}
		fieldType, _ := target.Field(label)
		var err error
		if vals[i], err = o.Convert(fieldType, val); err != nil {
			return nil, err
		}
	}
	return newRecord(labels, vals, target.Ordered()), nil
}

// Union holds the value of exactly one field.
type Union struct {
	label string
	value Token
}

var (
	_ binaryToken     = (*Union)(nil)
	_ comparableToken = (*Union)(nil)
	_ closeToken      = (*Union)(nil)
)

// NewUnion returns a union with one field set.
func NewUnion(label string, value Token) *Union {
	return &Union{label: label, value: value}
}

func (*Union) token() {}

// Type returns the type of the union. The type has a single field.
func (u *Union) Type() types.Type {
	return types.UnionFromMap(map[string]types.Type{u.label: u.value.Type()})
}

// Label returns the label of the field set in the union.
func (u *Union) Label() string {
	return u.label
}

// Value returns the value of the field set in the union.
func (u *Union) Value() Token {
	return u.value
}

// Equal returns true if other is a union with the same label and an equal value.
func (u *Union) Equal(other Token) bool {
	o, ok := other.(*Union)
	return ok && u.label == o.label && u.value.Equal(o.value)
}

// String returns {|label = value|}.
func (u *Union) String() string {
	return "{|" + tokfmt.Label(u.label) + " = " + u.value.String() + "|}"
}

func (u *Union) binary(ops *Ops, op token.Token, y Token) (Token, error) {
	o := y.(*Union)
	if u.label != o.label {
		return nil, fmterr.Unsupportedf("%s not supported between unions with different labels %s and %s", opName(op), tokfmt.Label(u.label), tokfmt.Label(o.label))
	}
	val, err := ops.binary(op, u.value, o.value)
	if err != nil {
		return nil, err
	}
	return NewUnion(u.label, val), nil
}

func (u *Union) mapValue(f func(Token) (Token, error)) (Token, error) {
	val, err := f(u.value)
	if err != nil {
		return nil, err
	}
	return NewUnion(u.label, val), nil
}

func (u *Union) unary(ops *Ops, op token.Token) (Token, error) {
	return u.mapValue(func(x Token) (Token, error) {
		return ops.unary(op, x)
	})
}

func (u *Union) absolute(ops *Ops) (Token, error) {
	return u.mapValue(ops.Absolute)
}

func (u *Union) one(ops *Ops) (Token, error) {
	return u.mapValue(ops.One)
}

func (u *Union) zero(ops *Ops) (Token, error) {
	return u.mapValue(ops.Zero)
}

func (u *Union) compare(ops *Ops, op token.Token, y Token) (bool, error) {
	if op != token.EQL {
		return false, fmterr.Unsupported(opName(op), u.Type())
	}
	o := y.(*Union)
	if u.label != o.label {
		return false, nil
	}
	return ops.IsEqualTo(u.value, o.value)
}

func (u *Union) isCloseTo(ops *Ops, y Token, epsilon float64) (bool, error) {
	o := y.(*Union)
	if u.label != o.label {
		return false, nil
	}
	return ops.IsCloseTo(u.value, o.value, epsilon)
}

func (o *Ops) convertToUnion(target *types.Union, tok Token) (*Union, error) {
	u, ok := tok.(*Union)
	if !ok {
		return nil, fmterr.Internalf("cannot convert %T to a union", tok)
	}
	fieldType, ok := target.Field(u.label)
	if !ok {
		return nil, fmterr.Internalf("union type %s has no field %s", target, tokfmt.Label(u.label))
	}
	val, err := o.Convert(fieldType, u.value)
	if err != nil {
		return nil, err
	}
	return NewUnion(u.label, val), nil
}
