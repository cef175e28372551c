// Package logger writes structured diagnostics to a file. The terminal
// belongs to the UI while it runs, so nothing is ever logged to stdout or
// stderr. Until Init is called every message is discarded.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	level   = new(slog.LevelVar)
	slogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// Init opens path for appending and routes all further messages to it.
// An empty path keeps logging disabled.
func Init(path string, lvl slog.Level) error {
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	level.Set(lvl)
	slogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	slogger.Info("logger initialized", "path", path)
	return nil
}

// SetOutput routes messages to w. Intended for tests.
func SetOutput(w io.Writer, lvl slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	level.Set(lvl)
	slogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Close flushes and closes the log file, if any, and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	slogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return slogger
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }
func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }
