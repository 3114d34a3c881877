package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultDBPath is used when neither ADDRESSBOOK_DB nor XDG_DATA_HOME is set
const DefaultDBPath = "~/.local/share/addressbook/addressbook.db"

// Config holds settings read from the environment
type Config struct {
	DBPath       string `env:"ADDRESSBOOK_DB"`
	LogLevel     string `env:"ADDRESSBOOK_LOG_LEVEL"     envDefault:"info"`
	HistoryLimit int    `env:"ADDRESSBOOK_HISTORY_LIMIT" envDefault:"100"`
}

// Load reads configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	if cfg.HistoryLimit < 0 {
		return Config{}, fmt.Errorf("ADDRESSBOOK_HISTORY_LIMIT must not be negative, got %d", cfg.HistoryLimit)
	}
	return cfg, nil
}

// defaultDBPath places the database under XDG_DATA_HOME when it is set
func defaultDBPath() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "addressbook", "addressbook.db")
	}
	return DefaultDBPath
}

// NewLogger builds a zap logger writing to stderr: JSON at info and above,
// the development console format at debug
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
