package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide logger. Setup must run before any package logs.
var Log = slog.New(slog.NewTextHandler(io.Discard, nil))

// Setup initializes the global logger for the given environment.
// Deployed environments (staging, production) log JSON; everything else logs text.
func Setup(env string) {
	SetupWithWriter(env, os.Stdout)
}

// SetupWithWriter is Setup with an explicit destination, used by the CLI and tests.
func SetupWithWriter(env string, w io.Writer) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	switch strings.ToLower(env) {
	case "production", "staging":
		handler = slog.NewJSONHandler(w, opts)
	case "test":
		handler = slog.NewTextHandler(io.Discard, opts)
	default:
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	}

	Log = slog.New(handler).With("service", "prospect-quote-api")
	slog.SetDefault(Log)
}

// With returns a child logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return Log.With(args...)
}

func Info(msg string, args ...any) {
	Log.Info(msg, args...)
}

func Error(msg string, args ...any) {
	Log.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}
