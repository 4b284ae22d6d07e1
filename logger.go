package booklist

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with booklist-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses the default text handler to stderr.
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

// WithSize adds a size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// WithOffset adds an offset field to the logger.
func (l *Logger) WithOffset(offset int) *Logger {
	return &Logger{
		Logger: l.Logger.With("offset", offset),
	}
}

// WithTitle adds a book title field to the logger.
func (l *Logger) WithTitle(title string) *Logger {
	return &Logger{
		Logger: l.Logger.With("title", title),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(title string, offset int, err error) {
	if err != nil {
		l.Error("insert failed",
			"title", title,
			"offset", offset,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"title", title,
			"offset", offset,
		)
	}
}

// LogDuplicate logs a suppressed duplicate insert.
func (l *Logger) LogDuplicate(title string) {
	l.Debug("duplicate insert suppressed",
		"title", title,
	)
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(offset int, err error) {
	if err != nil {
		l.Error("remove failed",
			"offset", offset,
			"error", err,
		)
	} else {
		l.Debug("remove completed",
			"offset", offset,
		)
	}
}

// LogMoveToTop logs a move-to-top operation.
func (l *Logger) LogMoveToTop(title string, err error) {
	if err != nil {
		l.Error("move to top failed",
			"title", title,
			"error", err,
		)
	} else {
		l.Debug("move to top completed",
			"title", title,
		)
	}
}
