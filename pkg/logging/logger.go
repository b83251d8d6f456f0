package logging

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger for the site backend. Handlers write to stdout;
// the lead pipeline relies on these lines as its only per-request audit trail.
type Logger struct {
	*slog.Logger
}

// New creates a logger with the given level ("debug", "info", "warn",
// "error"). JSON output, one object per line.
func New(level string) *Logger {
	return newLogger(level, false)
}

// NewText creates a logger with human-readable key=value output for local
// development.
func NewText(level string) *Logger {
	return newLogger(level, true)
}

func newLogger(level string, text bool) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns an info-level JSON logger.
func Default() *Logger {
	return New("info")
}
