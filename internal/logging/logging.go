// Package logging holds the structured logger shared by the gallery widgets.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	outputMu sync.Mutex
	output   io.Writer = os.Stderr

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetOutput changes where records are written.
func SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	outputMu.Lock()
	output = w
	outputMu.Unlock()
}

// currentOutput forwards to whatever writer is configured at write time.
type currentOutput struct{}

func (currentOutput) Write(p []byte) (int, error) {
	outputMu.Lock()
	defer outputMu.Unlock()
	return output.Write(p)
}

// Logger returns the package logger, creating it on first use.
// A library should stay quiet by default so the initial level is Error.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		levelVar.Set(slog.LevelError)

		handler := slog.NewJSONHandler(currentOutput{}, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler).With("component", "xgallery")
	})
	return logger
}

func SetLevel(level slog.Level) {
	Logger()
	levelVar.Set(level)
}

func Level() slog.Level {
	Logger()
	return levelVar.Level()
}

// SetRawLevel parses a level name such as "debug" or "warn".
// Unknown names fall back to info.
func SetRawLevel(rawLevel string) {
	var level slog.Level

	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	SetLevel(level)
}
