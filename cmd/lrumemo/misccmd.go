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

	"github.com/lrumemo/go-lrumemo/internal/version"
	"github.com/urfave/cli/v2"
)

var versionCommand = &cli.Command{
	Action:    printVersion,
	Name:      "version",
	Usage:     "Print version numbers",
	ArgsUsage: " ",
	Description: `
The output of this command is supposed to be machine-readable.
`,
}

func printVersion(ctx *cli.Context) error {
	vsn, lines := version.Info()

	out := ctx.App.Writer
	fmt.Fprintln(out, strings.ToUpper(clientIdentifier[:1])+clientIdentifier[1:])
	fmt.Fprintln(out, "Version:", vsn)
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}
