// Package config loads explorer settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/talgya/expedition/internal/movement"
)

// Config holds the settings for one explorer session.
type Config struct {
	Seed              int64   `env:"EXPLORER_SEED" envDefault:"42"`
	DBPath            string  `env:"EXPLORER_DB_PATH" envDefault:"data/expedition.db"`
	Rows              int     `env:"EXPLORER_ROWS" envDefault:"40"`
	Columns           int     `env:"EXPLORER_COLUMNS" envDefault:"60"`
	LogLevel          string  `env:"EXPLORER_LOG_LEVEL" envDefault:"info"`
	Steps             int     `env:"EXPLORER_STEPS" envDefault:"12"`
	Speed             string  `env:"EXPLORER_SPEED" envDefault:"normal"`
	Minutes           int     `env:"EXPLORER_MINUTES" envDefault:"480"` // Hunting and gathering budget
	NothingProportion float64 `env:"EXPLORER_NOTHING_PROPORTION" envDefault:"0.5"`
	SubordinateMaps   int     `env:"EXPLORER_SUBORDINATE_MAPS" envDefault:"1"`
	Regenerate        bool    `env:"EXPLORER_REGENERATE" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads a Config from the environment and checks it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Rows <= 0 || cfg.Columns <= 0 {
		return Config{}, fmt.Errorf("map size %dx%d must be positive", cfg.Rows, cfg.Columns)
	}
	if cfg.NothingProportion < 0 || cfg.NothingProportion >= 1 {
		return Config{}, fmt.Errorf("nothing proportion %v outside [0, 1)", cfg.NothingProportion)
	}
	if _, err := movement.ParseSpeed(cfg.Speed); err != nil {
		return Config{}, err
	}
	if cfg.SubordinateMaps < 0 {
		return Config{}, fmt.Errorf("subordinate maps %d must not be negative", cfg.SubordinateMaps)
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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

// Pace is the movement speed the unit walks at.
func (c Config) Pace() movement.Speed {
	s, _ := movement.ParseSpeed(c.Speed)
	return s
}
