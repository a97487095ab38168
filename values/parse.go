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
	"math/big"
	"strconv"
	"strings"

	tokfmt "github.com/gx-org/tokens/base/fmt"
	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/types"
	"github.com/pkg/errors"
)

// ParseScalar parses the textual representation of a scalar token
// (including booleans). It is the inverse of String for scalar tokens.
func ParseScalar(s string) (Token, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "true":
		return Boolean(true), nil
	case "false":
		return Boolean(false), nil
	}
	if inner, ok := strings.CutPrefix(s, "fix("); ok {
		return parseFixedPoint(s, inner)
	}
	if digits, ok := strings.CutSuffix(s, "ub"); ok {
		v, err := strconv.ParseUint(digits, 10, 8)
		if err != nil {
			return nil, fmterr.Malformed(s, types.UnsignedByte.String(), err)
		}
		return UnsignedByte(v), nil
	}
	if digits, ok := strings.CutSuffix(s, "L"); ok {
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return nil, fmterr.Malformed(s, types.Long.String(), err)
		}
		return Long(v), nil
	}
	if strings.HasSuffix(s, "i") && !strings.HasSuffix(s, "Infinity") {
		return parseComplex(s)
	}
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return Int(v), nil
	}
	v, err := tokfmt.ParseFloat(s)
	if err != nil {
		return nil, fmterr.Malformed(s, "scalar", err)
	}
	return Double(v), nil
}

// parseComplex parses re + imi or re - imi.
func parseComplex(s string) (Token, error) {
	body := strings.TrimSuffix(s, "i")
	sep := strings.LastIndex(body, " + ")
	sign := 1.0
	if minus := strings.LastIndex(body, " - "); minus > sep {
		sep = minus
		sign = -1
	}
	if sep < 0 {
		return nil, fmterr.Malformed(s, types.Complex.String(), nil)
	}
	re, err := tokfmt.ParseFloat(body[:sep])
	if err != nil {
		return nil, fmterr.Malformed(s, types.Complex.String(), err)
	}
	im, err := tokfmt.ParseFloat(body[sep+3:])
	if err != nil {
		return nil, fmterr.Malformed(s, types.Complex.String(), err)
	}
	return Complex(complex(re, sign*im)), nil
}

func parseFixedPoint(s, inner string) (Token, error) {
	args, ok := strings.CutSuffix(inner, ")")
	if !ok {
		return nil, fmterr.Malformed(s, types.FixedPoint.String(), nil)
	}
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return nil, fmterr.Malformed(s, types.FixedPoint.String(), errors.Errorf("got %d arguments but want 3", len(parts)))
	}
	val, ok := new(big.Rat).SetString(strings.TrimSpace(parts[0]))
	if !ok {
		return nil, fmterr.Malformed(s, types.FixedPoint.String(), errors.Errorf("invalid value %q", parts[0]))
	}
	bits, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmterr.Malformed(s, types.FixedPoint.String(), err)
	}
	intBits, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmterr.Malformed(s, types.FixedPoint.String(), err)
	}
	fp, err := NewFixedPointFromRat(val, Precision{Bits: bits, IntegerBits: intBits})
	if err != nil {
		return nil, fmterr.Malformed(s, types.FixedPoint.String(), err)
	}
	return fp, nil
}
