package vertexbuf

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vertex buffer specific helpers.
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
	return NewLogger(slog.DiscardHandler)
}

// WithCompression adds a compression field to the logger.
func (l *Logger) WithCompression(c Compression) *Logger {
	return &Logger{
		Logger: l.Logger.With("compression", c.String()),
	}
}

// LogWrite logs a stream write.
func (l *Logger) LogWrite(vectors, blocks int, written int64, err error) {
	if err != nil {
		l.Error("vertex buffer write failed",
			"vectors", vectors,
			"written", written,
			"error", err,
		)
		return
	}
	l.Debug("vertex buffer written",
		"vectors", vectors,
		"blocks", blocks,
		"written", written,
	)
}

// LogRead logs a stream read.
func (l *Logger) LogRead(vectors int, read int64, err error) {
	if err != nil {
		l.Error("vertex buffer read failed",
			"read", read,
			"error", err,
		)
		return
	}
	l.Debug("vertex buffer read",
		"vectors", vectors,
		"read", read,
	)
}
