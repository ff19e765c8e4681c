// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tracekit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for tracekit and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by tracekit:
//   - [slog.LevelDebug]: resize, layout and per-check diagnostics
//   - [slog.LevelInfo]: round lifecycle (word changes, round complete)
//   - [slog.LevelWarn]: usage anomalies (empty targets, stale geometry)
//
// Example:
//
//	tracekit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (ink, score, session)
// call this so they share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
