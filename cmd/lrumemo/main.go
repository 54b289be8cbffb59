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

// lrumemo is the command-line client for go-lrumemo.
package main

import (
	"fmt"
	"os"

	"github.com/lrumemo/go-lrumemo/cmd/utils"
	"github.com/lrumemo/go-lrumemo/internal/debug"
	"github.com/lrumemo/go-lrumemo/internal/flags"
	"github.com/urfave/cli/v2"
)

const (
	clientIdentifier = "lrumemo" // Client identifier used in metrics and logs
)

var (
	cacheFlags = flags.Merge([]cli.Flag{
		utils.ConfigFileFlag,
		utils.FibCountFlag,
		utils.LRUCapacityFlag,
	}, utils.MemoFlags)

	app = newApp()
)

func newApp() *cli.App {
	app := flags.NewApp("memoized computations over a least-recently-used cache")
	// Initialize the CLI app and start lrumemo
	app.Action = runFib
	app.Commands = []*cli.Command{
		// See fib.go
		fibCommand,
		// See lrucmd.go
		lruCommand,
		// See config.go
		dumpConfigCommand,
		// See misccmd.go
		versionCommand,
	}
	app.Flags = flags.Merge(
		cacheFlags,
		utils.MetricsFlags,
		debug.Flags,
	)
	app.Before = func(ctx *cli.Context) error {
		flags.MigrateGlobalFlags(ctx)
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
	return app
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
