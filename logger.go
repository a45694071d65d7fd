package guard

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with guard-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogSizeMismatch reports two containers that were expected to have the same size.
func (l *Logger) LogSizeMismatch(ctx context.Context, observed, expected int) {
	l.WarnContext(ctx, "wrong size",
		"observed_size", observed,
		"expected_size", expected,
	)
}

// LogToleranceExceeded reports a distance that is not within tolerance.
func (l *Logger) LogToleranceExceeded(ctx context.Context, dist, tolerance float64) {
	l.DebugContext(ctx, "tolerance exceeded",
		"distance", dist,
		"tolerance", tolerance,
	)
}
