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

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTimeTermFormat(t *testing.T) {
	var b bytes.Buffer
	writeTimeTermFormat(&b, time.Date(2026, time.October, 9, 7, 5, 3, 42_000_000, time.UTC))
	assert.Equal(t, "10-09|07:05:03.042", b.String())
}

func TestTerminalHandlerFormat(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(NewTerminalHandler(&out, false))
	l.Info("Memoized call", "name", "fib", "key", 15, "hit", true)

	line := out.String()
	assert.True(t, strings.HasPrefix(line, "INFO ["), "unexpected prefix: %q", line)
	assert.Contains(t, line, "logger_test.go:")
	assert.Contains(t, line, "Memoized call")
	assert.Contains(t, line, "name=fib key=15 hit=true")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestTerminalHandlerWithAttrs(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(NewTerminalHandler(&out, false)).With("cache", "fib")
	l.Warn("Evicted", "key", "a b")
	assert.Contains(t, out.String(), `cache=fib key="a b"`)
}

func TestTerminalHandlerLevel(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(NewTerminalHandlerWithLevel(&out, slog.LevelWarn, false))
	l.Info("dropped")
	assert.Empty(t, out.String())
	l.Error("kept")
	assert.Contains(t, out.String(), "ERROR")
}

func TestFormatSlogValue(t *testing.T) {
	tests := []struct {
		in   slog.Value
		want string
	}{
		{slog.Int64Value(1234567), "1,234,567"},
		{slog.Int64Value(-99), "-99"},
		{slog.Uint64Value(100000), "100,000"},
		{slog.StringValue("plain"), "plain"},
		{slog.StringValue("has space"), `"has space"`},
		{slog.AnyValue(errors.New("boom")), "boom"},
		{slog.AnyValue(uint256.NewInt(610)), "610"},
		{slog.AnyValue((*uint256.Int)(nil)), "<nil>"},
		{slog.AnyValue(nil), "<nil>"},
	}
	for _, tt := range tests {
		have := string(FormatSlogValue(tt.in, nil))
		assert.Equal(t, tt.want, have, "value %v", tt.in)
	}
}

func TestJSONHandler(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(JSONHandler(&out))
	l.Debug("Cache cleared", "value", uint256.NewInt(42))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "debug", rec["lvl"])
	assert.Equal(t, "Cache cleared", rec["msg"])
	assert.Equal(t, "42", rec["value"])
}

func TestLogfmtHandler(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(LogfmtHandlerWithLevel(&out, slog.LevelInfo))
	l.Trace("hidden")
	l.Info("shown", "n", 3)
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "lvl=info")
	assert.Contains(t, out.String(), "n=3")
}

func TestGlogHandlerVerbosity(t *testing.T) {
	var out bytes.Buffer
	glog := NewGlogHandler(NewTerminalHandler(&out, false))
	glog.Verbosity(FromLegacyLevel(2)) // warn
	l := NewLogger(glog)

	l.Info("too verbose")
	assert.Empty(t, out.String())
	l.Warn("warned")
	assert.Contains(t, out.String(), "warned")
}

func TestGlogHandlerVmodule(t *testing.T) {
	var out bytes.Buffer
	glog := NewGlogHandler(NewTerminalHandler(&out, false))
	glog.Verbosity(FromLegacyLevel(2))
	require.NoError(t, glog.Vmodule("logger_test.go=5"))
	l := NewLogger(glog)

	l.Trace("traced via vmodule")
	assert.Contains(t, out.String(), "traced via vmodule")

	assert.ErrorIs(t, glog.Vmodule("broken"), errVmoduleSyntax)
	assert.ErrorIs(t, glog.Vmodule("x.go=abc"), errVmoduleSyntax)
}

func TestFromLegacyLevel(t *testing.T) {
	assert.Equal(t, LevelCrit, FromLegacyLevel(0))
	assert.Equal(t, slog.LevelInfo, FromLegacyLevel(3))
	assert.Equal(t, LevelTrace, FromLegacyLevel(5))
	assert.Equal(t, LevelTrace, FromLegacyLevel(9))
	assert.Equal(t, LevelCrit, FromLegacyLevel(-1))
}

func TestOddAttributes(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(NewTerminalHandler(&out, false))
	l.Info("odd", "lonely")
	assert.Contains(t, out.String(), errorKey)
}
