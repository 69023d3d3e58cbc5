// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command
// operations at the given config level ("debug", "info", "warn",
// "error"). When w is a terminal (or nil, meaning stderr), it uses
// slog.TextHandler for human-readable output. When output is piped or
// redirected (CI, scripts), it uses slog.JSONHandler for
// machine-parseable output.
func NewCommandLogger(w io.Writer, level string) *slog.Logger {
	options := &slog.HandlerOptions{Level: parseLevel(level)}

	if w == nil {
		w = os.Stderr
	}

	isTerminal := false
	if file, ok := w.(*os.File); ok {
		isTerminal = term.IsTerminal(int(file.Fd()))
	}

	var handler slog.Handler
	if isTerminal {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
