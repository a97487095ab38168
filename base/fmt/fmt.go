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

// Package fmt provides utility methods for building the textual
// representation of types and tokens.
package fmt

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// IsIdentifier returns true if s can be written as a label without quotes.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// Escape the characters of s that cannot appear verbatim in a string literal.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Unescape reverts Escape.
func Unescape(s string) (string, error) {
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			b.WriteRune(r)
			continue
		}
		escaped = false
		switch r {
		case '\\', '"':
			b.WriteRune(r)
		case 'n':
			b.WriteRune('\n')
		case 't':
			b.WriteRune('\t')
		case 'r':
			b.WriteRune('\r')
		case 'b':
			b.WriteRune('\b')
		case 'f':
			b.WriteRune('\f')
		default:
			return "", errors.Errorf("unknown escape sequence \\%c", r)
		}
	}
	if escaped {
		return "", errors.Errorf("trailing backslash")
	}
	return b.String(), nil
}

// Quote returns s as a double-quoted escaped string literal.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}

// Unquote parses a string literal written by Quote.
func Unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", errors.Errorf("%s is not a quoted string", s)
	}
	return Unescape(s[1 : len(s)-1])
}

// Label returns a record or union label as written in a literal:
// labels which are not identifiers are quoted.
func Label(label string) string {
	if IsIdentifier(label) {
		return label
	}
	return Quote(label)
}

// Float returns the textual representation of a float.
// The representation always includes a decimal point or an exponent
// so that it is not read back as an integer.
func Float(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// ParseFloat parses a float written by Float.
func ParseFloat(s string) (float64, error) {
	switch s {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, 64)
}

// Join returns the representation of the elements separated by sep.
func Join[T interface{ String() string }](elts []T, sep string) string {
	ss := make([]string, len(elts))
	for i, elt := range elts {
		ss[i] = elt.String()
	}
	return strings.Join(ss, sep)
}
