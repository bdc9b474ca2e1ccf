package observe

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/jonwraymond/faultops/fault"
	"github.com/jonwraymond/faultops/rescue"
)

// ParseLevel parses a string log level. Unknown strings map to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a JSON structured logger writing to w.
// A nil writer defaults to stderr.
func NewLogger(level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// NewTintLogger creates a colorized logger for terminal output.
// A nil writer defaults to stderr.
func NewTintLogger(level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: time.Kitchen,
	}))
}

// Log returns an action that logs each claimed failure with its tag and
// class attached.
func Log(logger *slog.Logger, level slog.Level) rescue.Action {
	return func(ctx context.Context, err error) {
		args := []any{
			slog.String("fault.class", fault.ClassOf(err).String()),
		}
		if tag, ok := fault.TagOf(err); ok {
			args = append(args, slog.String("fault.tag", tag.Name()))
		}
		logger.Log(ctx, level, err.Error(), args...)
	}
}
