package mafigo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with mafigo-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMinSupport adds a min_support field to the logger.
func (l *Logger) WithMinSupport(minSupport int) *Logger {
	return &Logger{
		Logger: l.Logger.With("min_support", minSupport),
	}
}

// WithUniverse adds item-universe size and transaction-count fields.
func (l *Logger) WithUniverse(items, transactions int) *Logger {
	return &Logger{
		Logger: l.Logger.With("items", items, "transactions", transactions),
	}
}

// LogIndexBuild logs the construction of the bitmap index.
func (l *Logger) LogIndexBuild(ctx context.Context, items, transactions int) {
	l.DebugContext(ctx, "bitmap index built",
		"items", items,
		"transactions", transactions,
	)
}

// LogMine logs a completed mining run.
func (l *Logger) LogMine(ctx context.Context, minSupport, mfis int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "mining failed",
			"min_support", minSupport,
			"duration", duration,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "mining completed",
			"min_support", minSupport,
			"mfis", mfis,
			"duration", duration,
		)
	}
}
