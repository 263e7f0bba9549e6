// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates a structured logger for CLI operations. When
// stderr is a terminal, it uses slog.TextHandler for human-readable
// output. When stderr is piped or redirected (CI, scripts), it uses
// slog.JSONHandler for machine-parseable output.
//
// The result line itself never goes through the logger; this carries
// the transport-level detail (connect, publish) at debug level.
func NewLogger() *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
