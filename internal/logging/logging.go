// Package logging builds the process logger. It wraps log/slog with a text
// handler on stderr and a level taken from SNAKE_LOG_LEVEL.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a logger writing to stderr at the level named by SNAKE_LOG_LEVEL.
func New() *slog.Logger {
	return NewWithWriter(os.Stderr, LevelFromEnv())
}

func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LevelFromEnv reads SNAKE_LOG_LEVEL. Valid levels: DEBUG, INFO, WARN, ERROR.
// Defaults to INFO.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("SNAKE_LOG_LEVEL"))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
