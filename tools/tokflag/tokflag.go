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

// Package tokflag provides flag types for the tools of the tokens module.
package tokflag

import (
	"flag"
	"strings"

	"github.com/gx-org/tokens/types"
)

func split(values string) []string {
	var items []string
	for _, value := range strings.Split(values, ",") {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		items = append(items, value)
	}
	return items
}

type stringList struct {
	list *[]string
}

func (sl *stringList) String() string {
	if sl.list == nil {
		return ""
	}
	return strings.Join(*sl.list, ",")
}

func (sl *stringList) Set(values string) error {
	*sl.list = append(*sl.list, split(values)...)
	return nil
}

// StringList returns a flag to pass a list of string from the command line.
func StringList(fs *flag.FlagSet, name, doc string) *[]string {
	var list []string
	fs.Var(&stringList{&list}, name, doc)
	return &list
}

type typeList struct {
	list *[]types.Type
}

func (tl *typeList) String() string {
	if tl.list == nil {
		return ""
	}
	names := make([]string, len(*tl.list))
	for i, typ := range *tl.list {
		names[i] = typ.String()
	}
	return strings.Join(names, ",")
}

func (tl *typeList) Set(values string) error {
	for _, name := range split(values) {
		typ, err := types.Parse(name)
		if err != nil {
			return err
		}
		*tl.list = append(*tl.list, typ)
	}
	return nil
}

// TypeList returns a flag to pass a list of types from the command line.
// Types are separated by commas and written as returned by their String method.
func TypeList(fs *flag.FlagSet, name, doc string) *[]types.Type {
	var list []types.Type
	fs.Var(&typeList{&list}, name, doc)
	return &list
}
