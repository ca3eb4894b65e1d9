package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/jwebster45206/language-rpg/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global slog logger based on environment.
// Records go to cfg.LogFile through a rotating writer, or to stderr when no file is set.
// The returned closer releases the log file.
func Setup(cfg *config.Config) (*slog.Logger, io.Closer) {
	var out io.WriteCloser = nopCloser{os.Stderr}
	if cfg.LogFile != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    max(1, cfg.LogMaxSizeMB),
			MaxBackups: max(0, cfg.LogMaxBackups),
		}
	}
	return New(cfg, out), out
}

// New builds a logger writing to w, JSON in production and text otherwise.
// It is also set as the default logger.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// WithSessionID adds the game session ID to logger context
func WithSessionID(logger *slog.Logger, sessionID string) *slog.Logger {
	return logger.With("session_id", sessionID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
