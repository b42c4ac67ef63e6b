// Package logging builds the slog loggers used across mojifix.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelFromString converts a level name to a slog.Level. Unknown names map
// to info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to file, or to fallback when file is
// empty or cannot be opened. The returned closer releases the file.
func New(level, file string, fallback io.Writer) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{Level: LevelFromString(level)}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) // #nosec G304 -- user supplied log path
		if err == nil {
			return slog.New(slog.NewTextHandler(f, opts)), f
		}

		logger := slog.New(slog.NewTextHandler(fallback, opts))
		logger.Warn("failed to open log file, logging to stderr", "file", file, "error", err)

		return logger, nopCloser{}
	}

	return slog.New(slog.NewTextHandler(fallback, opts)), nopCloser{}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
