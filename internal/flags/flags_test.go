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

package flags

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestPathExpansion(t *testing.T) {
	home := HomeDir()
	t.Setenv("LRUMEMO_TEST_DIR", "/var/lib/lrumemo")
	tests := map[string]string{
		"/home/someuser/tmp":         "/home/someuser/tmp",
		"~/tmp":                      filepath.Join(home, "tmp"),
		"~thisOtherUser/b/":          "~thisOtherUser/b",
		"$LRUMEMO_TEST_DIR/cfg.toml": "/var/lib/lrumemo/cfg.toml",
		"/a/b/../c//d":               "/a/c/d",
	}
	for test, expected := range tests {
		assert.Equal(t, expected, ExpandPath(test), "input %q", test)
	}
}

func TestPathFlagKeepsDefault(t *testing.T) {
	f := &PathFlag{Name: "config", Value: "default.toml"}

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, f.Apply(set))
	require.NoError(t, set.Parse([]string{"--config", "~/other.toml"}))
	assert.Equal(t, filepath.Join(HomeDir(), "other.toml"), set.Lookup("config").Value.String())

	// A second application starts from the default again.
	set = flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, f.Apply(set))
	assert.Equal(t, "default.toml", set.Lookup("config").Value.String())
}

func TestPathFlagEnv(t *testing.T) {
	t.Setenv("LRUMEMO_CONFIG", "/etc/lrumemo.toml")
	f := &PathFlag{Name: "config", EnvVars: []string{"LRUMEMO_CONFIG"}}

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, f.Apply(set))
	assert.True(t, f.IsSet())
	assert.Equal(t, "/etc/lrumemo.toml", set.Lookup("config").Value.String())
}

func TestMigrateGlobalFlags(t *testing.T) {
	level := &cli.IntFlag{Name: "level", Value: 1}
	var got int
	app := NewApp("test app")
	app.Flags = []cli.Flag{level}
	app.Commands = []*cli.Command{{
		Name:  "run",
		Flags: []cli.Flag{level},
		Action: func(ctx *cli.Context) error {
			got = ctx.Int(level.Name)
			return nil
		},
	}}
	require.NoError(t, app.Run([]string{"app", "--level", "4", "run"}))
	assert.Equal(t, 4, got)
}

func TestWordWrap(t *testing.T) {
	assert.Equal(t, "aaa bbb\nccc", wordWrap("aaa bbb ccc", 8))
	assert.Equal(t, "   x\n   y", indent("x\ny", 3))
}
