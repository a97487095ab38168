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

package types

import (
	"slices"
	"strings"

	tokfmt "github.com/gx-org/tokens/base/fmt"
	"github.com/gx-org/tokens/types/kind"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
)

// fields maps labels to types.
type fields struct {
	labels []string
	types  map[string]Type
}

func newFields(labels []string, typs []Type, sorted bool) (fields, error) {
	if len(labels) != len(typs) {
		return fields{}, errors.Errorf("got %d labels but %d types", len(labels), len(typs))
	}
	fs := fields{
		labels: slices.Clone(labels),
		types:  make(map[string]Type, len(labels)),
	}
	for i, label := range labels {
		if _, dup := fs.types[label]; dup {
			return fields{}, errors.Errorf("label %s defined more than once", tokfmt.Label(label))
		}
		if typs[i] == nil {
			return fields{}, errors.Errorf("label %s has no type", tokfmt.Label(label))
		}
		fs.types[label] = typs[i]
	}
	if sorted {
		slices.Sort(fs.labels)
	}
	return fs, nil
}

func fieldsFromMap(m map[string]Type) fields {
	fs := fields{types: make(map[string]Type, len(m))}
	for label, typ := range m {
		fs.labels = append(fs.labels, label)
		fs.types[label] = typ
	}
	slices.Sort(fs.labels)
	return fs
}

// Labels returns the labels of the fields.
func (fs *fields) Labels() []string {
	return slices.Clone(fs.labels)
}

// LabelSet returns the set of labels.
func (fs *fields) LabelSet() *set.Set[string] {
	return set.From(fs.labels)
}

// Field returns the type of a field given its label.
func (fs *fields) Field(label string) (Type, bool) {
	typ, ok := fs.types[label]
	return typ, ok
}

// Len returns the number of fields.
func (fs *fields) Len() int {
	return len(fs.labels)
}

func (fs *fields) equal(o *fields) bool {
	if len(fs.labels) != len(o.labels) {
		return false
	}
	for label, typ := range fs.types {
		otherTyp, ok := o.types[label]
		if !ok || !typ.Equal(otherTyp) {
			return false
		}
	}
	return true
}

func (fs *fields) isInstantiable() bool {
	for _, typ := range fs.types {
		if !typ.IsInstantiable() {
			return false
		}
	}
	return true
}

func (fs *fields) write(b *strings.Builder, open, close string) {
	b.WriteString(open)
	for i, label := range fs.labels {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(tokfmt.Label(label))
		b.WriteString(" = ")
		b.WriteString(fs.types[label].String())
	}
	b.WriteString(close)
}

// Record is the type of records: a mapping from labels to types.
// The labels of an ordered record are kept in insertion order.
type Record struct {
	fields
	ordered bool
}

var _ Type = (*Record)(nil)

// NewRecord returns a record type given labels and the types of their fields.
func NewRecord(labels []string, typs []Type) (*Record, error) {
	fs, err := newFields(labels, typs, true)
	if err != nil {
		return nil, errors.WithMessage(err, "cannot create record type")
	}
	return &Record{fields: fs}, nil
}

// RecordFromMap returns a record type given a map from labels to types.
func RecordFromMap(m map[string]Type) *Record {
	return &Record{fields: fieldsFromMap(m)}
}

// NewOrderedRecord returns an ordered record type. The order of the labels is kept.
func NewOrderedRecord(labels []string, typs []Type) (*Record, error) {
	fs, err := newFields(labels, typs, false)
	if err != nil {
		return nil, errors.WithMessage(err, "cannot create ordered record type")
	}
	return &Record{fields: fs, ordered: true}, nil
}

func (*Record) typ() {}

// Kind of the type.
func (*Record) Kind() kind.Kind {
	return kind.Record
}

// Ordered returns true if the order of the labels is significant.
func (t *Record) Ordered() bool {
	return t.ordered
}

// Unordered returns the record type with the same fields but without order.
func (t *Record) Unordered() *Record {
	if !t.ordered {
		return t
	}
	fs := fields{labels: slices.Clone(t.labels), types: t.types}
	slices.Sort(fs.labels)
	return &Record{fields: fs}
}

// Equal returns true if other is a record type with the same fields.
// The order of the labels is compared for ordered records.
func (t *Record) Equal(other Type) bool {
	o, ok := other.(*Record)
	if !ok || t.ordered != o.ordered {
		return false
	}
	if t.ordered && !slices.Equal(t.labels, o.labels) {
		return false
	}
	return t.equal(&o.fields)
}

// IsInstantiable returns true if all the fields are instantiable.
func (t *Record) IsInstantiable() bool {
	return t.isInstantiable()
}

// String representation of the type.
func (t *Record) String() string {
	var b strings.Builder
	if t.ordered {
		t.write(&b, "[", "]")
	} else {
		t.write(&b, "{", "}")
	}
	return b.String()
}

// Union is the type of unions: a token of a union type holds the value
// of exactly one of the fields.
type Union struct {
	fields
}

var _ Type = (*Union)(nil)

// NewUnion returns a union type given labels and the types of their fields.
func NewUnion(labels []string, typs []Type) (*Union, error) {
	fs, err := newFields(labels, typs, true)
	if err != nil {
		return nil, errors.WithMessage(err, "cannot create union type")
	}
	return &Union{fields: fs}, nil
}

// UnionFromMap returns a union type given a map from labels to types.
func UnionFromMap(m map[string]Type) *Union {
	return &Union{fields: fieldsFromMap(m)}
}

func (*Union) typ() {}

// Kind of the type.
func (*Union) Kind() kind.Kind {
	return kind.Union
}

// Equal returns true if other is a union type with the same fields.
func (t *Union) Equal(other Type) bool {
	o, ok := other.(*Union)
	return ok && t.equal(&o.fields)
}

// IsInstantiable returns true if all the fields are instantiable.
func (t *Union) IsInstantiable() bool {
	return t.isInstantiable()
}

// String representation of the type.
func (t *Union) String() string {
	var b strings.Builder
	t.write(&b, "{|", "|}")
	return b.String()
}
