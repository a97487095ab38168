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

package lattice_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gx-org/tokens/base/fmterr"
	"github.com/gx-org/tokens/lattice"
	"go.uber.org/multierr"
)

// diamond builds:
//
//	   top
//	  /   \
//	 a     b
//	 |     |
//	 c     |
//	  \   /
//	   bot
func diamond(t *testing.T) *lattice.Lattice[string] {
	l, err := lattice.NewBuilder[string]().
		AddNode("bot", "a", "b", "c", "top").
		AddEdge("bot", "c").
		AddEdge("c", "a").
		AddEdge("bot", "b").
		AddEdge("a", "top").
		AddEdge("b", "top").
		Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return l
}

func TestCompare(t *testing.T) {
	l := diamond(t)
	tests := []struct {
		a, b string
		want lattice.Relation
	}{
		{a: "bot", b: "top", want: lattice.Lower},
		{a: "c", b: "top", want: lattice.Lower},
		{a: "top", b: "c", want: lattice.Higher},
		{a: "a", b: "b", want: lattice.Incomparable},
		{a: "c", b: "b", want: lattice.Incomparable},
		{a: "a", b: "a", want: lattice.Same},
		{a: "a", b: "notanode", want: lattice.Incomparable},
	}
	for i, test := range tests {
		got := l.Compare(test.a, test.b)
		if got != test.want {
			t.Errorf("test %d: Compare(%s, %s) = %s but want %s", i, test.a, test.b, got, test.want)
		}
	}
}

func TestBounds(t *testing.T) {
	l := diamond(t)
	tests := []struct {
		a, b     string
		lub, glb string
	}{
		{a: "a", b: "b", lub: "top", glb: "bot"},
		{a: "c", b: "a", lub: "a", glb: "c"},
		{a: "c", b: "b", lub: "top", glb: "bot"},
		{a: "top", b: "bot", lub: "top", glb: "bot"},
	}
	for i, test := range tests {
		lub, ok := l.LeastUpperBound(test.a, test.b)
		if !ok || lub != test.lub {
			t.Errorf("test %d: LeastUpperBound(%s, %s) = %s but want %s", i, test.a, test.b, lub, test.lub)
		}
		glb, ok := l.GreatestLowerBound(test.a, test.b)
		if !ok || glb != test.glb {
			t.Errorf("test %d: GreatestLowerBound(%s, %s) = %s but want %s", i, test.a, test.b, glb, test.glb)
		}
	}
	if l.Top() != "top" || l.Bottom() != "bot" {
		t.Errorf("got top=%s bottom=%s but want top=top bottom=bot", l.Top(), l.Bottom())
	}
	if _, ok := l.LeastUpperBound("a", "notanode"); ok {
		t.Errorf("LeastUpperBound with a node not in the lattice returned ok")
	}
}

func TestProperties(t *testing.T) {
	l := diamond(t)
	nodes := l.Nodes()
	for _, a := range nodes {
		for _, b := range nodes {
			if got, want := l.Compare(b, a), l.Compare(a, b).Inverse(); got != want {
				t.Errorf("Compare(%s, %s) = %s but want %s", b, a, got, want)
			}
			lub, _ := l.LeastUpperBound(a, b)
			if r := l.Compare(a, lub); r != lattice.Lower && r != lattice.Same {
				t.Errorf("%s is not lower than its upper bound %s with %s", a, lub, b)
			}
			for _, c := range nodes {
				if l.Compare(a, b) == lattice.Lower && l.Compare(b, c) == lattice.Lower && l.Compare(a, c) != lattice.Lower {
					t.Errorf("transitivity: %s < %s < %s but Compare(%s, %s) = %s", a, b, c, a, c, l.Compare(a, c))
				}
			}
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		build func() (*lattice.Lattice[string], error)
		want  []string
	}{
		{
			build: func() (*lattice.Lattice[string], error) {
				return lattice.NewBuilder[string]().Build()
			},
			want: []string{"no node"},
		},
		{
			build: func() (*lattice.Lattice[string], error) {
				return lattice.NewBuilder[string]().
					AddNode("a", "b").
					AddEdge("a", "b").
					AddEdge("b", "a").
					Build()
			},
			want: []string{"cycle"},
		},
		{
			build: func() (*lattice.Lattice[string], error) {
				return lattice.NewBuilder[string]().
					AddNode("a", "a").
					AddEdge("a", "z").
					Build()
			},
			want: []string{"more than once", "z has not been added"},
		},
		{
			// Two incomparable upper bounds for x and y: not a lattice.
			build: func() (*lattice.Lattice[string], error) {
				return lattice.NewBuilder[string]().
					AddNode("bot", "x", "y", "u", "v", "top").
					AddEdge("bot", "x").
					AddEdge("bot", "y").
					AddEdge("x", "u").
					AddEdge("x", "v").
					AddEdge("y", "u").
					AddEdge("y", "v").
					AddEdge("u", "top").
					AddEdge("v", "top").
					Build()
			},
			want: []string{"x and y have no least upper bound", "u and v have no greatest lower bound"},
		},
	}
	for i, test := range tests {
		_, err := test.build()
		if err == nil {
			t.Errorf("test %d: expected an error but got nil", i)
			continue
		}
		if !errors.Is(err, fmterr.ErrLattice) {
			t.Errorf("test %d: error %v is not a lattice error", i, err)
		}
		for _, want := range test.want {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("test %d: error %q does not contain %q", i, err.Error(), want)
			}
		}
		if len(test.want) > 1 && len(multierr.Errors(err)) < len(test.want) {
			t.Errorf("test %d: got %d errors but want at least %d", i, len(multierr.Errors(err)), len(test.want))
		}
	}
}
