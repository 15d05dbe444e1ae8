// Package logger adapts log/slog to the domain.Logger interface.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"pdf-analyzer-client/internal/domain"
)

// AppLogger writes key=value records through a slog text handler
type AppLogger struct {
	slog *slog.Logger
}

// NewLogger creates a logger writing to stdout
func NewLogger(levelStr string) domain.Logger {
	return NewLoggerWithWriter(levelStr, os.Stdout)
}

// NewLoggerWithWriter creates a logger writing to w at the given level
func NewLoggerWithWriter(levelStr string, w io.Writer) domain.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLogLevel(levelStr)})
	return &AppLogger{slog: slog.New(handler)}
}

func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.slog.Info(msg, fields...)
}

// Error records err under the "error" key ahead of the other fields
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	l.slog.Error(msg, append([]interface{}{"error", err}, fields...)...)
}

func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.slog.Debug(msg, fields...)
}

func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.slog.Warn(msg, fields...)
}

// parseLogLevel maps LOG_LEVEL values onto slog levels, defaulting to info.
func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
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
