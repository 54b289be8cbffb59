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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"unicode"

	"github.com/lrumemo/go-lrumemo/cmd/utils"
	"github.com/lrumemo/go-lrumemo/internal/flags"
	"github.com/lrumemo/go-lrumemo/memo"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

var (
	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile (optional)>",
		Flags:       cacheFlags,
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type fibConfig struct {
	Count uint64 // Number of values computed by the fib command
}

type lruConfig struct {
	Capacity int
}

type metricsConfig struct {
	Enabled bool   `toml:",omitempty"`
	Format  string // text or expvar
}

type lrumemoConfig struct {
	Memo    memo.Config
	Fib     fibConfig
	LRU     lruConfig
	Metrics metricsConfig
}

var defaultConfig = lrumemoConfig{
	Memo:    memo.Defaults,
	Fib:     fibConfig{Count: 16},
	LRU:     lruConfig{Capacity: 2},
	Metrics: metricsConfig{Format: "text"},
}

func loadConfig(file string, cfg *lrumemoConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig loads the lrumemoConfig based on the given command line
// parameters and config file.
func loadBaseConfig(ctx *cli.Context) lrumemoConfig {
	// Load defaults.
	cfg := defaultConfig

	// Load config file.
	if file := ctx.String(utils.ConfigFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			utils.Fatalf("%v", err)
		}
	}

	// Apply flags.
	utils.SetMemoConfig(ctx, &cfg.Memo)
	if ctx.IsSet(utils.FibCountFlag.Name) {
		cfg.Fib.Count = ctx.Uint64(utils.FibCountFlag.Name)
	}
	if ctx.IsSet(utils.LRUCapacityFlag.Name) {
		cfg.LRU.Capacity = ctx.Int(utils.LRUCapacityFlag.Name)
	}
	if ctx.IsSet(utils.MetricsEnabledFlag.Name) {
		cfg.Metrics.Enabled = ctx.Bool(utils.MetricsEnabledFlag.Name)
	}
	if ctx.IsSet(utils.MetricsFormatFlag.Name) {
		cfg.Metrics.Format = ctx.String(utils.MetricsFormatFlag.Name)
	}
	return cfg
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg := loadBaseConfig(ctx)
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	var dump io.Writer = ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(flags.ExpandPath(ctx.Args().Get(0)), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}
