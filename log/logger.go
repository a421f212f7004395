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

// Package log is a thin key/value layer over log/slog with the extra trace
// and crit levels.
package log

import (
	"context"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strings"
	"time"
)

// errorKey tags the padding added to a record with an odd argument list.
const errorKey = "LOG_ERROR"

// Levels on top of slog's own. Trace sits below debug and crit above error.
const (
	LevelTrace slog.Level = -8
	LevelDebug            = slog.LevelDebug
	LevelInfo             = slog.LevelInfo
	LevelWarn             = slog.LevelWarn
	LevelError            = slog.LevelError
	LevelCrit  slog.Level = 12

	// levelMaxVerbosity lets everything through a level-filtered handler.
	levelMaxVerbosity slog.Level = math.MinInt
)

// verbosityLevels maps the numeric -verbosity flag (0 crit .. 5 trace) to
// slog levels.
var verbosityLevels = [...]slog.Level{LevelCrit, LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}

// levelNames holds the lower case name of every level this package emits.
var levelNames = map[slog.Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelCrit:  "crit",
}

// FromLegacyLevel converts a 0 (crit) .. 5 (trace) verbosity number into an
// slog level. Numbers above 5 clamp to trace, negative ones to crit.
func FromLegacyLevel(lvl int) slog.Level {
	switch {
	case lvl < 0:
		return LevelCrit
	case lvl >= len(verbosityLevels):
		return LevelTrace
	}
	return verbosityLevels[lvl]
}

// LevelString names l in lower case, or "unknown".
func LevelString(l slog.Level) string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// LevelAlignedString names l in upper case, padded to five columns for the
// terminal format.
func LevelAlignedString(l slog.Level) string {
	name, ok := levelNames[l]
	if !ok {
		return "unknown level"
	}
	return strings.ToUpper(name) + strings.Repeat(" ", 5-len(name))
}

// Logger emits messages with alternating key/value context.
type Logger interface {
	// With and New derive a logger that carries ctx on every record.
	With(ctx ...interface{}) Logger
	New(ctx ...interface{}) Logger

	Log(level slog.Level, msg string, ctx ...interface{})
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})

	// Crit logs and then terminates the process.
	Crit(msg string, ctx ...interface{})

	// Write is the single sink every other method funnels into.
	Write(level slog.Level, msg string, attrs ...any)

	Enabled(ctx context.Context, level slog.Level) bool
	Handler() slog.Handler
}

type logger struct {
	inner *slog.Logger
}

// NewLogger wraps h.
func NewLogger(h slog.Handler) Logger {
	return &logger{inner: slog.New(h)}
}

// callerDepth is the number of frames between runtime.Callers inside Write
// and the user code that logged. Every path into Write must be exactly one
// call deep for this to hold.
const callerDepth = 3

func (l *logger) Write(level slog.Level, msg string, attrs ...any) {
	ctx := context.Background()
	if !l.inner.Enabled(ctx, level) {
		return
	}
	var pc [1]uintptr
	runtime.Callers(callerDepth, pc[:])

	if len(attrs)%2 == 1 {
		attrs = append(attrs, nil, errorKey, "Normalized odd number of arguments by adding nil")
	}
	rec := slog.NewRecord(time.Now(), level, msg, pc[0])
	rec.Add(attrs...)
	l.inner.Handler().Handle(ctx, rec)
}

func (l *logger) Log(level slog.Level, msg string, ctx ...any) { l.Write(level, msg, ctx...) }
func (l *logger) Trace(msg string, ctx ...any)                 { l.Write(LevelTrace, msg, ctx...) }
func (l *logger) Debug(msg string, ctx ...any)                 { l.Write(LevelDebug, msg, ctx...) }
func (l *logger) Info(msg string, ctx ...any)                  { l.Write(LevelInfo, msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...any)                  { l.Write(LevelWarn, msg, ctx...) }
func (l *logger) Error(msg string, ctx ...any)                 { l.Write(LevelError, msg, ctx...) }

func (l *logger) Crit(msg string, ctx ...any) {
	l.Write(LevelCrit, msg, ctx...)
	os.Exit(1)
}

func (l *logger) With(ctx ...any) Logger {
	return &logger{inner: l.inner.With(ctx...)}
}

func (l *logger) New(ctx ...any) Logger { return l.With(ctx...) }

func (l *logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.inner.Enabled(ctx, level)
}

func (l *logger) Handler() slog.Handler { return l.inner.Handler() }
