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

package fmt_test

import (
	"math"
	"testing"

	tokfmt "github.com/gx-org/tokens/base/fmt"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{label: "a", want: "a"},
		{label: "_x1", want: "_x1"},
		{label: "1x", want: `"1x"`},
		{label: "a b", want: `"a b"`},
		{label: `say "hi"`, want: `"say \"hi\""`},
		{label: "", want: `""`},
	}
	for i, test := range tests {
		got := tokfmt.Label(test.label)
		if got != test.want {
			t.Errorf("test %d: got %s but want %s", i, got, test.want)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for i, s := range []string{"", "abc", "a\"b", "back\\slash", "line\nfeed\ttab", "été"} {
		q := tokfmt.Quote(s)
		got, err := tokfmt.Unquote(q)
		if err != nil {
			t.Errorf("test %d: cannot unquote %s: %v", i, q, err)
			continue
		}
		if got != s {
			t.Errorf("test %d: got %q but want %q", i, got, s)
		}
	}
	if _, err := tokfmt.Unquote(`"abc\q"`); err == nil {
		t.Errorf("expected an error for an unknown escape sequence")
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{x: 0.5, want: "0.5"},
		{x: 1, want: "1.0"},
		{x: -3, want: "-3.0"},
		{x: 1e21, want: "1e+21"},
		{x: math.Inf(1), want: "Infinity"},
		{x: math.Inf(-1), want: "-Infinity"},
		{x: math.NaN(), want: "NaN"},
	}
	for i, test := range tests {
		got := tokfmt.Float(test.x)
		if got != test.want {
			t.Errorf("test %d: got %s but want %s", i, got, test.want)
		}
		back, err := tokfmt.ParseFloat(got)
		if err != nil {
			t.Errorf("test %d: cannot parse %s: %v", i, got, err)
			continue
		}
		if back != test.x && !(math.IsNaN(back) && math.IsNaN(test.x)) {
			t.Errorf("test %d: got %v after round trip but want %v", i, back, test.x)
		}
	}
}
