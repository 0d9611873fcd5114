// Package logger provides leveled logging for the command-line tools.
// Messages are printf-style; records are written through log/slog as text
// or JSON.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var defaultLogger = slog.New(slog.DiscardHandler)

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Unknown names fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// New builds a logger writing to w. format is "json" or "text".
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Init sets the package logger, writing to stderr.
func Init(level, format string) {
	defaultLogger = New(os.Stderr, level, format)
}

// Slog returns the package logger for libraries that take a *slog.Logger.
func Slog() *slog.Logger {
	return defaultLogger
}

func logf(level slog.Level, format string, args ...any) {
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}
	defaultLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug logs a message at debug level.
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info logs a message at info level.
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn logs a message at warn level.
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error logs a message at error level.
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// Fatal logs a message at error level and exits.
func Fatal(format string, args ...any) {
	logf(slog.LevelError, format, args...)
	os.Exit(1)
}
