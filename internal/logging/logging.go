// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"
)

// New creates a text slog.Logger writing to out. Verbose enables debug
// level output.
func New(out io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}
