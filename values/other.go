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
	"encoding/xml"
	"fmt"
	"go/token"
	"io"
	"reflect"
	"strings"
	"time"

	tokfmt "github.com/gx-org/tokens/base/fmt"
	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/types"
)

// String is a token holding a string.
type String string

var (
	_ binaryToken     = String("")
	_ comparableToken = String("")
)

func (String) token() {}

// Type of the token.
func (String) Type() types.Type { return types.String }

// Value returns the string without quotes.
func (s String) Value() string { return string(s) }

// Equal returns true if other is the same string.
func (s String) Equal(other Token) bool {
	o, ok := other.(String)
	return ok && o == s
}

// String returns the string quoted and escaped.
func (s String) String() string {
	return tokfmt.Quote(string(s))
}

// binary concatenates strings. All other operators are not supported.
func (s String) binary(_ *Ops, op token.Token, y Token) (Token, error) {
	if op != token.ADD {
		return nil, fmterr.Unsupported(opName(op), s.Type())
	}
	return s + y.(String), nil
}

func (s String) compare(_ *Ops, op token.Token, y Token) (bool, error) {
	return compareOrdered(s, op, string(s), string(y.(String)))
}

// Object is a token holding a reference to a Go value.
type Object struct {
	value any
}

// NewObject returns a token holding a Go value.
func NewObject(value any) *Object {
	return &Object{value: value}
}

func (*Object) token() {}

// Type of the token.
func (*Object) Type() types.Type { return types.Object }

// Value returns the Go value.
func (o *Object) Value() any { return o.value }

// Equal returns true if other holds a Go value equal to the value of o.
// Values which cannot be compared, including structs holding slices or maps
// in interface fields, are equal only if they are held by the same token.
func (o *Object) Equal(other Token) bool {
	ot, ok := other.(*Object)
	if !ok {
		return false
	}
	if o == ot {
		return true
	}
	if o.value == nil || ot.value == nil {
		return o.value == nil && ot.value == nil
	}
	typ := reflect.TypeOf(o.value)
	if typ != reflect.TypeOf(ot.value) || !typ.Comparable() {
		return false
	}
	return safeEqual(o.value, ot.value)
}

// safeEqual compares two values of a comparable type.
// Returns false if the comparison panics, for example when an interface
// field of a struct holds a slice.
func safeEqual(x, y any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return x == y
}

// String returns object(value).
func (o *Object) String() string {
	if o.value == nil {
		return "object(null)"
	}
	return fmt.Sprintf("object(%v)", o.value)
}

// XML is a token holding a well-formed XML document.
type XML struct {
	doc string
}

// NewXML returns a token holding a document.
// Returns an error if the document is not well-formed.
func NewXML(doc string) (*XML, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmterr.Malformed(doc, types.XML.String(), err)
		}
	}
	return &XML{doc: doc}, nil
}

func (*XML) token() {}

// Type of the token.
func (*XML) Type() types.Type { return types.XML }

// Document returns the XML document.
func (x *XML) Document() string { return x.doc }

// Equal returns true if other holds the same document.
func (x *XML) Equal(other Token) bool {
	o, ok := other.(*XML)
	return ok && o.doc == x.doc
}

// String returns the document quoted and escaped.
func (x *XML) String() string {
	return tokfmt.Quote(x.doc)
}

// DateLayout is the layout used to write dates.
const DateLayout = "2006-01-02 15:04:05.000 -0700"

// Date is a point in time with a millisecond precision.
type Date struct {
	t time.Time
}

var (
	_ binaryToken     = Date{}
	_ comparableToken = Date{}
)

// NewDate returns a date truncated to the millisecond.
func NewDate(t time.Time) Date {
	return Date{t: t.Truncate(time.Millisecond)}
}

// NewDateFromMillis returns a date given a number of milliseconds since the Unix epoch.
func NewDateFromMillis(ms int64) Date {
	return Date{t: time.UnixMilli(ms)}
}

func (Date) token() {}

// Type of the token.
func (Date) Type() types.Type { return types.Date }

// Time returns the date.
func (d Date) Time() time.Time { return d.t }

// Millis returns the number of milliseconds since the Unix epoch.
func (d Date) Millis() int64 { return d.t.UnixMilli() }

// Equal returns true if other is the same point in time.
func (d Date) Equal(other Token) bool {
	o, ok := other.(Date)
	return ok && d.t.Equal(o.t)
}

// String returns date("yyyy-mm-dd hh:mm:ss.sss zone").
func (d Date) String() string {
	return "date(" + tokfmt.Quote(d.t.Format(DateLayout)) + ")"
}

// binary subtracts dates, returning the number of milliseconds between both dates.
func (d Date) binary(_ *Ops, op token.Token, y Token) (Token, error) {
	if op != token.SUB {
		return nil, fmterr.Unsupported(opName(op), d.Type())
	}
	return Long(d.Millis() - y.(Date).Millis()), nil
}

func (d Date) compare(_ *Ops, op token.Token, y Token) (bool, error) {
	return compareOrdered(d, op, d.Millis(), y.(Date).Millis())
}

// Event is a token without value signaling that something happened.
type Event struct{}

func (Event) token() {}

// Type of the token.
func (Event) Type() types.Type { return types.Event }

// Equal returns true if other is an event.
func (Event) Equal(other Token) bool {
	_, ok := other.(Event)
	return ok
}

// String returns event.
func (Event) String() string { return "event" }

// Func is the Go implementation of a function token.
type Func func(args ...Token) (Token, error)

// Function is a token wrapping a Go function with a signature.
type Function struct {
	typ *types.Function
	fn  Func
}

// NewFunction returns a function token given a signature and its implementation.
func NewFunction(typ *types.Function, fn Func) *Function {
	return &Function{typ: typ, fn: fn}
}

func (*Function) token() {}

// Type of the token.
func (f *Function) Type() types.Type { return f.typ }

// Equal returns true if other is the same function token.
func (f *Function) Equal(other Token) bool {
	o, ok := other.(*Function)
	return ok && o == f
}

// String returns the signature of the function.
func (f *Function) String() string {
	return f.typ.String()
}

// Apply calls the function after converting the arguments to the types of
// the signature. The result is converted to the result type of the signature.
func (f *Function) Apply(ops *Ops, args ...Token) (Token, error) {
	params := f.typ.Args()
	if len(args) != len(params) {
		return nil, fmterr.Unsupportedf("function %s called with %d arguments", f.typ, len(args))
	}
	converted := make([]Token, len(args))
	for i, arg := range args {
		var err error
		if converted[i], err = ops.Convert(params[i], arg); err != nil {
			return nil, fmterr.PrefixWith("argument %d: ", i)(err)
		}
	}
	res, err := f.fn(converted...)
	if err != nil {
		return nil, err
	}
	return ops.Convert(f.typ.Result(), res)
}

// convertToFunction wraps a function in a function with a higher type.
// The arguments of the higher type are lower than the arguments of the
// wrapped function and can be converted.
func (o *Ops) convertToFunction(target *types.Function, tok Token) (*Function, error) {
	f, ok := tok.(*Function)
	if !ok {
		return nil, fmterr.Internalf("cannot convert %T to a function", tok)
	}
	return NewFunction(target, func(args ...Token) (Token, error) {
		return f.Apply(o, args...)
	}), nil
}

func (o *Ops) convertToArray(target *types.Array, tok Token) (*Array, error) {
	a, ok := tok.(ArrayToken)
	if !ok {
		return nil, fmterr.Internalf("cannot convert %T to an array", tok)
	}
	return o.newArrayOfType(target.Elem(), a.Elements())
}
