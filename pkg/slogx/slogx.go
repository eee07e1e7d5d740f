package slogx

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options controls logger construction.
type Options struct {
	App    string
	Env    string // e.g. "dev", "prod"
	Level  string // e.g. "debug", "info", "warn", "error"
	Format string // e.g. "json", "text"
	Output io.Writer
}

// New returns a configured slog.Logger and installs it as the default.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	hopts := &slog.HandlerOptions{
		AddSource: opts.Env == "dev",
		Level:     ParseLevel(opts.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "text":
		handler = slog.NewTextHandler(out, hopts)
	default:
		handler = slog.NewJSONHandler(out, hopts)
	}

	logger := slog.New(handler).With(
		"app", opts.App,
		"env", opts.Env,
	)

	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a string to slog.Level, defaulting to info.
func ParseLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
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
