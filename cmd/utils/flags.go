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

// Package utils contains internal helper functions for go-lrumemo commands.
package utils

import (
	"github.com/lrumemo/go-lrumemo/internal/flags"
	"github.com/lrumemo/go-lrumemo/memo"
	"github.com/urfave/cli/v2"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	// General settings
	ConfigFileFlag = &flags.PathFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}

	// Cache settings
	CacheSizeFlag = &cli.IntFlag{
		Name:     "cache.size",
		Usage:    "Maximum number of memoized results to retain (0 disables retention)",
		Value:    memo.Defaults.MaxSize,
		Category: flags.CacheCategory,
	}
	CacheDedupFlag = &cli.BoolFlag{
		Name:     "cache.dedup",
		Usage:    "Collapse concurrent misses on the same arguments into one computation",
		Category: flags.CacheCategory,
	}
	FibCountFlag = &cli.Uint64Flag{
		Name:     "fib.count",
		Usage:    "Number of Fibonacci values to compute",
		Value:    16,
		Category: flags.CacheCategory,
	}
	LRUCapacityFlag = &cli.IntFlag{
		Name:     "lru.capacity",
		Usage:    "Capacity of the cache driven by the lru command",
		Value:    2,
		Category: flags.CacheCategory,
	}

	// Metrics
	MetricsEnabledFlag = &cli.BoolFlag{
		Name:     "metrics",
		Usage:    "Print cache metrics when the command completes",
		Category: flags.MetricsCategory,
	}
	MetricsFormatFlag = &cli.StringFlag{
		Name:     "metrics.format",
		Usage:    "Metrics output format (text|expvar)",
		Value:    "text",
		Category: flags.MetricsCategory,
	}
)

var (
	// MemoFlags configure every memoized computation.
	MemoFlags = []cli.Flag{
		CacheSizeFlag,
		CacheDedupFlag,
	}
	// MetricsFlags control the metrics report.
	MetricsFlags = []cli.Flag{
		MetricsEnabledFlag,
		MetricsFormatFlag,
	}
)

// SetMemoConfig applies memo-related command line flags to the config.
func SetMemoConfig(ctx *cli.Context, cfg *memo.Config) {
	if ctx.IsSet(CacheSizeFlag.Name) {
		cfg.MaxSize = ctx.Int(CacheSizeFlag.Name)
	}
	if ctx.IsSet(CacheDedupFlag.Name) {
		cfg.Dedup = ctx.Bool(CacheDedupFlag.Name)
	}
}
