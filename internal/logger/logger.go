// Package logger provides the leveled console logger used across cvr.
// Output is timestamped and colorized per level; the logger is safe for
// concurrent use from the worker pool.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Log levels, lowest to highest severity.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a level name to its numeric level.
// Unknown or empty names default to info.
func ParseLevel(s string) int {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped messages to a writer, filtered by level.
type Logger struct {
	mu     sync.Mutex
	writer io.Writer
	level  int
}

// New creates a Logger writing to w at the given minimum level name
// (debug, info, warn, error). A nil writer discards all messages.
func New(w io.Writer, level string) *Logger {
	return &Logger{writer: w, level: ParseLevel(level)}
}

// Debug logs a debug-level message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, "DEBUG", color.New(color.FgHiBlack), format, args...)
}

// Info logs an info-level message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, "INFO", color.New(color.FgCyan), format, args...)
}

// Warn logs a warn-level message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, "WARN", color.New(color.FgYellow), format, args...)
}

// Error logs an error-level message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, "ERROR", color.New(color.FgRed), format, args...)
}

func (l *Logger) log(level int, label string, c *color.Color, format string, args ...any) {
	if l == nil || l.writer == nil || level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("15:04:05")
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.writer, "[%s] %s %s\n", timestamp, c.Sprintf("%-5s", label), message)
}
