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
	"context"
	"log/slog"
	"math"
	"sync/atomic"
)

// GlogHandler wraps another handler and drops records below a global
// verbosity level that can be changed at runtime.
type GlogHandler struct {
	origin slog.Handler
	level  *atomic.Int32
}

// NewGlogHandler creates a verbosity gate in front of h. Until Verbosity is
// called every level passes.
func NewGlogHandler(h slog.Handler) *GlogHandler {
	level := new(atomic.Int32)
	level.Store(math.MinInt32)
	return &GlogHandler{origin: h, level: level}
}

// Verbosity sets the lowest level that still gets through.
func (h *GlogHandler) Verbosity(level slog.Level) {
	h.level.Store(int32(level))
}

// Enabled implements slog.Handler.
func (h *GlogHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= slog.Level(h.level.Load())
}

// Handle implements slog.Handler.
func (h *GlogHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.Enabled(ctx, r.Level) {
		return nil
	}
	return h.origin.Handle(ctx, r)
}

// WithAttrs implements slog.Handler. The derived handler shares the
// verbosity setting with h.
func (h *GlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &GlogHandler{origin: h.origin.WithAttrs(attrs), level: h.level}
}

// WithGroup implements slog.Handler.
func (h *GlogHandler) WithGroup(name string) slog.Handler {
	panic("not implemented")
}
