// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command operations.
// When stderr is a terminal, uses slog.TextHandler for human-readable output.
// When stderr is piped or redirected (CI, scripts, integration tests),
// uses slog.JSONHandler for machine-parseable output.
//
// The default level is Info, which keeps per-file progress logs (at
// Debug) out of normal runs; setting NPY_DEBUG to any non-empty value
// lowers the level to Debug.
//
// Commands receive a logger already scoped with their command path;
// they add call-specific context via With():
//
//	logger.With("path", path).Debug("array opened", "shape", shape)
func NewCommandLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("NPY_DEBUG") != "" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
