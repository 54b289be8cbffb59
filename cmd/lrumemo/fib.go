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
	"errors"
	"fmt"
	"io"

	"github.com/holiman/uint256"
	"github.com/lrumemo/go-lrumemo/log"
	"github.com/lrumemo/go-lrumemo/memo"
	"github.com/lrumemo/go-lrumemo/metrics"
	"github.com/urfave/cli/v2"
)

var errOverflow = errors.New("fibonacci value exceeds 256 bits")

var fibCommand = &cli.Command{
	Action: runFib,
	Name:   "fib",
	Usage:  "Compute the Fibonacci sequence through a memoized recursive function (default)",
	Flags:  cacheFlags,
	Description: `
The fib command computes fib(0) .. fib(n-1) in order through one memoized
recursive function and prints each value followed by the cache statistics.`,
}

type fibFunc = memo.Func[uint64, uint64, *uint256.Int]

// newFibonacci returns a memoized Fibonacci function. The recursion goes
// through the wrapper itself, so every sub-result is cached as well.
func newFibonacci(cfg memo.Config) (*fibFunc, error) {
	var fib *fibFunc
	fib, err := memo.New(func(n uint64) (*uint256.Int, error) {
		if n <= 1 {
			return uint256.NewInt(n), nil
		}
		a, err := fib.Call(n - 1)
		if err != nil {
			return nil, err
		}
		b, err := fib.Call(n - 2)
		if err != nil {
			return nil, err
		}
		sum, overflow := new(uint256.Int).AddOverflow(a, b)
		if overflow {
			return nil, fmt.Errorf("%w: fib(%d)", errOverflow, n)
		}
		return sum, nil
	}, cfg.MaxSize, append(cfg.Options(), memo.WithName("fib"))...)
	return fib, err
}

// runFib is the fib command.
func runFib(ctx *cli.Context) error {
	if args := ctx.Args().Slice(); len(args) > 0 {
		return fmt.Errorf("invalid command: %s", args[0])
	}
	cfg := loadBaseConfig(ctx)
	if err := checkMetricsFormat(cfg.Metrics.Format); err != nil {
		return err
	}
	fib, err := newFibonacci(cfg.Memo)
	if err != nil {
		return err
	}
	out := ctx.App.Writer
	for i := uint64(0); i < cfg.Fib.Count; i++ {
		v, err := fib.Call(i)
		if err != nil {
			return err
		}
		log.Debug("Computed Fibonacci value", "n", i, "value", v)
		fmt.Fprintln(out, v.Dec())
	}
	info := fib.CacheInfo()
	log.Info("Fibonacci sequence computed", "count", cfg.Fib.Count, "hits", info.Hits, "misses", info.Misses, "ratio", fmt.Sprintf("%.2f", info.HitRatio()))
	fmt.Fprintln(out, info)

	if cfg.Metrics.Enabled {
		return writeMetrics(out, cfg.Metrics.Format, fib)
	}
	return nil
}

func checkMetricsFormat(format string) error {
	switch format {
	case "text", "expvar":
		return nil
	}
	return fmt.Errorf("unknown metrics format: %q", format)
}

// writeMetrics reports the statistics of the given caches in the requested format.
func writeMetrics(w io.Writer, format string, sources ...metrics.Source) error {
	switch format {
	case "expvar":
		var e metrics.Expvar
		e.Publish(sources...)
		metrics.WriteExpvar(w)
		return nil
	case "text":
		reg, err := metrics.NewRegistry(metrics.NewCacheCollector(clientIdentifier, sources...))
		if err != nil {
			return err
		}
		return metrics.WriteText(w, reg)
	}
	return checkMetricsFormat(format)
}
