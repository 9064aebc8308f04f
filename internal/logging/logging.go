package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a logger writing to w. A JSON handler is used when structured
// is true, a text handler otherwise.
func New(w io.Writer, structured bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if structured {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Init builds a logger on w (normally stderr) and installs it as the slog
// default. Pass structured=true when results are printed to stdout as JSON so
// the two streams stay machine-readable.
func Init(w io.Writer, structured bool, level slog.Level) *slog.Logger {
	l := New(w, structured, level)
	slog.SetDefault(l)
	return l
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
