// Package log is a small leveled logger for diagnostics. Output goes to
// stderr so it never mixes with rendered art on stdout.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level slog.LevelVar

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// defaultLevel keeps informational messages quiet unless asked for.
const defaultLevel = LevelWarn

func init() {
	level.Set(defaultLevel)
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetOutput redirects log output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func logf(l slog.Level, format string, args ...any) {
	if l < level.Level() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "["+l.String()+"] "+format+"\n", args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	logf(LevelWarn, format, args...)
}
