// Package logger builds the application slog logger: leveled stdout output,
// an optional rotating file sink, sensitive-field masking and Sentry fan-out
// for error records.
package logger

import (
	"io"
	"log/slog"
	"os"

	slogsentry "github.com/samber/slog-sentry/v2"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the sinks and level for New.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json

	// File enables a rotating log file next to stdout when non-empty.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// SentryEnabled adds a Sentry handler for warn-and-above records.
	// sentry.Init must have been called first.
	SentryEnabled bool
}

// New constructs the application logger.
func New(opts Options) *slog.Logger {
	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		})
	}

	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}

	var base slog.Handler
	if opts.Format == "text" {
		base = slog.NewTextHandler(out, handlerOpts)
	} else {
		base = slog.NewJSONHandler(out, handlerOpts)
	}

	handlers := []slog.Handler{base}
	if opts.SentryEnabled {
		handlers = append(handlers, slogsentry.Option{
			Level: slog.LevelWarn,
		}.NewSentryHandler())
	}

	return slog.New(NewMaskingHandler(newFanoutHandler(handlers...)))
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
