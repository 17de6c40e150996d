// Package util holds ambient infrastructure shared across m4syntax's
// commands: slog setup, and the per-table logger a syntax.Table tags
// its changesyntax traces with.
package util

import (
	"log/slog"
	"os"
	"strings"
)

// InitSlog configures the default logger from the LOG_LEVEL
// environment variable (debug, info, warn, error; unset leaves slog's
// own default in place). Directive tracing only becomes visible once
// this raises the level to debug, at which point source locations are
// attached so a trace line points at the call site that issued it.
func InitSlog() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return
	}

	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))
}

// TableLogger returns the logger a syntax.Table should tag its traces
// with, correlating every log line a single table session produces
// across however many directives it goes on to apply.
func TableLogger(tableID string) *slog.Logger {
	return slog.Default().With("table_id", tableID)
}
