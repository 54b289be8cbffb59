// Copyright 2026 The go-lrumemo Authors
// This file is part of the go-lrumemo library.
//
// The go-lrumemo library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-lrumemo library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-lrumemo library. If not, see <http://www.gnu.org/licenses/>.

package memo

import (
	"sort"

	"github.com/davecgh/go-spew/spew"
)

// keyConfig renders values deterministically, types included: map keys are
// sorted and pointer addresses and slice capacities are left out, so that
// equal values always produce equal text and 1 and "1" stay apart.
var keyConfig = spew.ConfigState{
	Indent:                  "",
	DisableMethods:          true,
	DisablePointerMethods:   true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
}

// Args is an explicit argument set made of positional and named arguments.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Pos builds an argument set from positional arguments.
func Pos(args ...any) Args {
	return Args{Positional: args}
}

// With returns a copy of a with the named argument set.
func (a Args) With(name string, value any) Args {
	named := make(map[string]any, len(a.Named)+1)
	for k, v := range a.Named {
		named[k] = v
	}
	named[name] = value
	return Args{Positional: a.Positional, Named: named}
}

// Key returns the canonical encoding of the argument set. Named arguments are
// ordered by name, so the order they were supplied in does not matter. Two
// argument sets are cache-equivalent iff their keys are equal.
func (a Args) Key() string {
	names := make([]string, 0, len(a.Named))
	for name := range a.Named {
		names = append(names, name)
	}
	sort.Strings(names)

	named := make([]any, 0, 2*len(names))
	for _, name := range names {
		named = append(named, name, a.Named[name])
	}
	positional := a.Positional
	if positional == nil {
		positional = []any{}
	}
	return keyConfig.Sdump(positional, named)
}

// canonicalKey renders a cache key as a string for in-flight deduplication.
func canonicalKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	}
	return keyConfig.Sdump(key)
}
