// Copyright 2026 The hotcache Authors
// This file is part of the hotcache library.
//
// The hotcache library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The hotcache library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the hotcache library. If not, see <http://www.gnu.org/licenses/>.


package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestWriteTimeTermFormat(t *testing.T) {
	b := new(bytes.Buffer)
	writeTimeTermFormat(b, time.Date(2026, time.March, 7, 4, 5, 6, 789_000_000, time.UTC))
	require.Equal(t, "03-07|04:05:06.789", b.String())
}

func TestTerminalHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false))
	l.Info("range cache ready", "capacity", 1000, "hits", uint64(1234567))

	line := out.String()
	require.True(t, strings.HasPrefix(line, "INFO ["), line)
	require.Contains(t, line, "range cache ready")
	require.Contains(t, line, "capacity=1000")
	require.Contains(t, line, "hits=1,234,567")
	require.True(t, strings.HasSuffix(line, "\n"))
}

func TestTerminalHandlerOddArgs(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false))
	l.Warn("odd", "key")
	require.Contains(t, out.String(), errorKey)
}

func TestFormatSlogValue(t *testing.T) {
	big := new(uint256.Int).Lsh(uint256.NewInt(1), 100)
	tests := []struct {
		in   any
		want string
	}{
		{uint256.NewInt(42), "42"},
		{big, "1,267,650,600,228,229,401,496,703,205,376"},
		{errors.New("store: index out of range"), `"store: index out of range"`},
		{"plain", "plain"},
		{"with space", `"with space"`},
		{int64(-1234567), "-1,234,567"},
		{(*uint256.Int)(nil), "<nil>"},
	}
	for _, tt := range tests {
		out := new(bytes.Buffer)
		NewLogger(NewTerminalHandler(out, false)).Info("x", "v", tt.in)
		require.Contains(t, out.String(), "v="+tt.want, "value %v", tt.in)
	}
}

func TestGlogVerbosity(t *testing.T) {
	out := new(bytes.Buffer)
	glog := NewGlogHandler(NewTerminalHandler(out, false))
	glog.Verbosity(LevelInfo)
	l := NewLogger(glog)

	l.Debug("hidden")
	l.Trace("hidden")
	require.Zero(t, out.Len())

	l.Info("shown")
	require.Contains(t, out.String(), "shown")

	glog.Verbosity(FromLegacyLevel(5))
	out.Reset()
	l.With("component", "splay").Trace("deep")
	require.Contains(t, out.String(), "component=splay")
}

func TestGlogPassesEverythingBeforeVerbosity(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewGlogHandler(NewTerminalHandler(out, false)))

	l.Trace("lowest level")
	require.Contains(t, out.String(), "lowest level")
	require.True(t, strings.HasPrefix(out.String(), "TRACE["), out.String())
}

func TestJSONHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(JSONHandler(out))
	l.Error("update failed", "index", 7, "value", uint256.NewInt(9))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	require.Equal(t, "error", rec["lvl"])
	require.Equal(t, "update failed", rec["msg"])
	require.Equal(t, "9", rec["value"])
	require.Contains(t, rec, "t")
}

func TestLogfmtHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(LogfmtHandler(out))
	l.Info("done", "n", 3)
	require.Contains(t, out.String(), "lvl=info")
	require.Contains(t, out.String(), "n=3")
}

func TestFromLegacyLevel(t *testing.T) {
	require.Equal(t, LevelCrit, FromLegacyLevel(0))
	require.Equal(t, LevelInfo, FromLegacyLevel(3))
	require.Equal(t, LevelTrace, FromLegacyLevel(5))
	require.Equal(t, LevelTrace, FromLegacyLevel(9))
	require.Equal(t, LevelCrit, FromLegacyLevel(-1))
}

func TestRootDiscardsByDefault(t *testing.T) {
	require.False(t, Root().Enabled(context.Background(), LevelCrit))
}

func TestLevelNames(t *testing.T) {
	tests := []struct {
		lvl     slog.Level
		name    string
		aligned string
	}{
		{LevelTrace, "trace", "TRACE"},
		{LevelDebug, "debug", "DEBUG"},
		{LevelInfo, "info", "INFO "},
		{LevelWarn, "warn", "WARN "},
		{LevelError, "error", "ERROR"},
		{LevelCrit, "crit", "CRIT "},
		{slog.Level(3), "unknown", "unknown level"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.name, LevelString(tt.lvl))
		require.Equal(t, tt.aligned, LevelAlignedString(tt.lvl))
	}
}

func TestRootSetDefault(t *testing.T) {
	prev := Root()
	t.Cleanup(func() { SetDefault(prev) })

	out := new(bytes.Buffer)
	SetDefault(NewLogger(slog.NewTextHandler(out, &slog.HandlerOptions{AddSource: true, Level: LevelTrace})))

	Info("from root", "k", 1)
	require.Contains(t, out.String(), "from root")
	require.Contains(t, out.String(), "logger_test.go", "call site must be the test, not the log package")

	out.Reset()
	New("cache", "range").Trace("derived")
	require.Contains(t, out.String(), "cache=range")
	require.Contains(t, out.String(), "logger_test.go")

	out.Reset()
	slog.Info("via slog")
	require.Contains(t, out.String(), "via slog")
}
