// Package logging configures the process-wide slog logger.
//
// Production emits JSON lines on stdout. Every other environment gets the
// colored tint handler on stderr.
//
// LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default logger for env at the given level name.
func Setup(env, level string) {
	slog.SetDefault(New(env, level, nil))
}

// New builds a logger without installing it. A nil w selects stdout for JSON
// and stderr for the console handler.
func New(env, level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	if env == "production" {
		if w == nil {
			w = os.Stdout
		}
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}

	if w == nil {
		w = os.Stderr
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
