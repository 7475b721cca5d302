package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the operational knobs. Gameplay constants (lives, guess
// deadline) are fixed by the rules and deliberately not configurable.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogDev    bool   `env:"LOG_DEV" envDefault:"true"`
	WordsFile string `env:"WORDS_FILE"`
}

// Load reads a local .env if one exists, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Logger builds the process logger from the configured level and mode.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zcfg zap.Config
	if c.LogDev {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = level
	return zcfg.Build()
}
