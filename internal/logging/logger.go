// Package logging wraps log/slog with fixedarray-specific fields.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger wraps slog.Logger with array-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// New creates a new Logger with the given handler.
// If handler is nil, all output is discarded.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.DiscardHandler
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSON creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSON(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewText creates a Logger that writes human-readable text logs to w.
func NewText(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Noop creates a Logger that discards all log output.
func Noop() *Logger {
	return New(nil)
}

// ParseLevel parses debug, info, warn or error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// FromConfig builds a Logger writing to w. format is "text" or "json".
func FromConfig(w io.Writer, format, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "text", "":
		return NewText(w, lvl), nil
	case "json":
		return NewJSON(w, lvl), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// WithSize adds a size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// WithCommand adds a command field to the logger.
func (l *Logger) WithCommand(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("command", name),
	}
}

// LogMutation logs a write to one element (index >= 0) or to all of them
// (index < 0).
func (l *Logger) LogMutation(ctx context.Context, op string, index int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "mutation failed",
			"op", op,
			"index", index,
			"error", err,
		)
		return
	}
	if index < 0 {
		l.DebugContext(ctx, "mutation completed",
			"op", op,
		)
		return
	}
	l.DebugContext(ctx, "mutation completed",
		"op", op,
		"index", index,
	)
}

// LogTraversal logs a completed traversal.
func (l *Logger) LogTraversal(ctx context.Context, direction string, visited int) {
	l.DebugContext(ctx, "traversal completed",
		"direction", direction,
		"visited", visited,
	)
}

// LogAccessError logs a failed indexed access.
func (l *Logger) LogAccessError(ctx context.Context, op string, index int, err error) {
	l.WarnContext(ctx, "access failed",
		"op", op,
		"index", index,
		"error", err,
	)
}
