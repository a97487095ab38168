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

// Utility typelattice prints how types are ordered by the type lattice.
//
// Example:
//
//	typelattice --op=lub,glb --op=supertypes --types=int,double,{int},{long}
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gx-org/tokens/tools/tokflag"
	"github.com/gx-org/tokens/types"
	"github.com/pkg/errors"
)

var (
	opList   = tokflag.StringList(flag.CommandLine, "op", "comma separated list of tables to print: compare, lub, glb, or supertypes (default: compare)")
	typeList = tokflag.TypeList(flag.CommandLine, "types", "comma separated list of types (default: all base types)")
)

func exit(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

func baseTypes(lat *types.Lattice) []types.Type {
	var typs []types.Type
	for _, k := range lat.Kinds().Nodes() {
		if k.IsStructured() {
			continue
		}
		typs = append(typs, types.TypeFromKind(k))
	}
	return typs
}

func cellFunc(lat *types.Lattice, name string) (func(x, y types.Type) string, bool) {
	switch name {
	case "compare":
		return func(x, y types.Type) string {
			return lat.Compare(x, y).String()
		}, true
	case "lub":
		return func(x, y types.Type) string {
			return lat.LeastUpperBound(x, y).String()
		}, true
	case "glb":
		return func(x, y types.Type) string {
			return lat.GreatestLowerBound(x, y).String()
		}, true
	}
	return nil, false
}

func writeTable(w io.Writer, name string, typs []types.Type, cell func(x, y types.Type) string) {
	header := make([]string, len(typs))
	for i, typ := range typs {
		header[i] = typ.String()
	}
	fmt.Fprintf(w, "%s\t%s\t\n", name, strings.Join(header, "\t"))
	for _, x := range typs {
		row := make([]string, len(typs))
		for i, y := range typs {
			row[i] = cell(x, y)
		}
		fmt.Fprintf(w, "%s\t%s\t\n", x, strings.Join(row, "\t"))
	}
}

func writeSupertypes(w io.Writer, lat *types.Lattice, typs []types.Type) {
	fmt.Fprintf(w, "supertypes\t\n")
	for _, typ := range typs {
		var names []string
		for _, super := range lat.Supertypes(typ) {
			names = append(names, super.String())
		}
		fmt.Fprintf(w, "%s\t%s\t\n", typ, strings.Join(names, ", "))
	}
}

// writeTables writes one table per operation, separated by empty lines.
func writeTables(out io.Writer, lat *types.Lattice, ops []string, typs []types.Type) error {
	if len(ops) == 0 {
		ops = []string{"compare"}
	}
	if len(typs) == 0 {
		typs = baseTypes(lat)
	}
	for _, op := range ops {
		if _, ok := cellFunc(lat, op); !ok && op != "supertypes" {
			return errors.Errorf("unknown table %q: use compare, lub, glb, or supertypes", op)
		}
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, op := range ops {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if cell, ok := cellFunc(lat, op); ok {
			writeTable(w, op, typs, cell)
		} else {
			writeSupertypes(w, lat, typs)
		}
	}
	return w.Flush()
}

func main() {
	flag.Parse()
	if err := writeTables(os.Stdout, types.Default(), *opList, *typeList); err != nil {
		exit("%v", err)
	}
}
