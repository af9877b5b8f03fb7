// Package logging builds the process logger: log/slog backed by a
// charmbracelet/log handler on stderr.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// New returns a logger writing to w. verbose lowers the level to debug and
// adds timestamps.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	h := log.NewWithOptions(w, log.Options{
		Prefix:          "nextcheck",
		Level:           level,
		ReportTimestamp: verbose,
	})
	return slog.New(h)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext retrieves the logger stored by WithLogger, or a discard logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return slog.New(slog.DiscardHandler)
}
