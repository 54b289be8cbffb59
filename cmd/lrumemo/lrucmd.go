// Copyright 2026 The go-lrumemo Authors
// This file is part of go-lrumemo.
//
// go-lrumemo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-lrumemo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-lrumemo. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"strings"

	"github.com/lrumemo/go-lrumemo/common/lru"
	"github.com/lrumemo/go-lrumemo/log"
	"github.com/urfave/cli/v2"
)

var lruCommand = &cli.Command{
	Action:    runLRU,
	Name:      "lru",
	Usage:     "Apply a sequence of operations to a fresh LRU cache",
	ArgsUsage: "<put:key=value|get:key|del:key>...",
	Flags:     cacheFlags,
	Description: `
The lru command creates an empty cache of --lru.capacity entries, applies the
given operations in order and prints the outcome of each, followed by the keys
from least to most recently used.

    lrumemo lru put:A=1 put:B=2 get:A put:C=3 get:B`,
}

type lruOp struct {
	kind  string
	key   string
	value string
}

func parseLRUOp(arg string) (lruOp, error) {
	kind, rest, ok := strings.Cut(arg, ":")
	if !ok || rest == "" {
		return lruOp{}, fmt.Errorf("invalid operation %q", arg)
	}
	switch kind {
	case "get", "del":
		return lruOp{kind: kind, key: rest}, nil
	case "put":
		key, value, ok := strings.Cut(rest, "=")
		if !ok || key == "" {
			return lruOp{}, fmt.Errorf("invalid put operation %q, want put:key=value", arg)
		}
		return lruOp{kind: kind, key: key, value: value}, nil
	}
	return lruOp{}, fmt.Errorf("unknown operation %q", kind)
}

// runLRU is the lru command.
func runLRU(ctx *cli.Context) error {
	cfg := loadBaseConfig(ctx)

	// Validate everything up front so a typo doesn't leave half a run behind.
	ops := make([]lruOp, 0, ctx.NArg())
	for _, arg := range ctx.Args().Slice() {
		op, err := parseLRUOp(arg)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}
	cache, err := lru.NewCache[string, string](cfg.LRU.Capacity)
	if err != nil {
		return err
	}
	out := ctx.App.Writer
	for _, op := range ops {
		switch op.kind {
		case "put":
			evicted := cache.Add(op.key, op.value)
			log.Trace("Inserted cache entry", "key", op.key, "evicted", evicted)
			fmt.Fprintf(out, "put %s=%s evicted=%t\n", op.key, op.value, evicted)
		case "get":
			if v, ok := cache.Get(op.key); ok {
				fmt.Fprintf(out, "get %s=%s\n", op.key, v)
			} else {
				fmt.Fprintf(out, "get %s: not found\n", op.key)
			}
		case "del":
			fmt.Fprintf(out, "del %s removed=%t\n", op.key, cache.Remove(op.key))
		}
	}
	fmt.Fprintf(out, "order: %s\n", cache)
	fmt.Fprintf(out, "len: %d/%d\n", cache.Len(), cache.Cap())
	return nil
}
