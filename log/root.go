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
	"log/slog"
	"os"
	"sync/atomic"
)

// rootLogger boxes the process-wide Logger so it can sit in an atomic.Pointer.
type rootLogger struct{ Logger }

var root atomic.Pointer[rootLogger]

func init() {
	root.Store(&rootLogger{NewLogger(DiscardHandler())})
}

// SetDefault replaces the process-wide logger. Loggers built by this package
// also become the slog default so stray slog calls end up in the same place.
func SetDefault(l Logger) {
	root.Store(&rootLogger{l})
	if lg, ok := l.(*logger); ok {
		slog.SetDefault(lg.inner)
	}
}

// Root is the process-wide logger. It drops everything until SetDefault runs.
func Root() Logger {
	return root.Load().Logger
}

// New derives a logger from Root carrying ctx.
func New(ctx ...any) Logger {
	return Root().With(ctx...)
}

// The helpers below call Write directly rather than Root().Info and friends,
// so the recorded call site stays callerDepth frames up.

func Trace(msg string, ctx ...any) { Root().Write(LevelTrace, msg, ctx...) }
func Debug(msg string, ctx ...any) { Root().Write(LevelDebug, msg, ctx...) }
func Info(msg string, ctx ...any)  { Root().Write(LevelInfo, msg, ctx...) }
func Warn(msg string, ctx ...any)  { Root().Write(LevelWarn, msg, ctx...) }
func Error(msg string, ctx ...any) { Root().Write(LevelError, msg, ctx...) }

// Crit logs through Root and exits with status 1.
func Crit(msg string, ctx ...any) {
	Root().Write(LevelCrit, msg, ctx...)
	os.Exit(1)
}
