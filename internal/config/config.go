package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings. LogFile receives log records since the
// console owns the terminal; an empty LogFile logs to stderr.
type Config struct {
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelName  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE" envDefault:"language-rpg.log"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"5"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`

	// CatalogPath overrides the embedded catalog.
	CatalogPath string `env:"CATALOG_PATH"`
	// RNGSeed makes a run reproducible. Zero seeds from the clock.
	RNGSeed    uint64 `env:"RNG_SEED"`
	PlayerName string `env:"PLAYER_NAME"`

	LogLevel slog.Level `env:"-"`
}

// Load reads a .env file from the working directory, if there is one, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
