package game

import (
	"github.com/caarlos0/env/v11"
)

const (
	minWidth  = 12
	minHeight = 8
)

// Config holds the runtime tunables. The defaults give the classic 50x22
// board; the environment can override them for odd-sized terminals.
type Config struct {
	Width       int    `env:"GOSNAKE_WIDTH"   envDefault:"50"`
	Height      int    `env:"GOSNAKE_HEIGHT"  envDefault:"22"`
	StartTickMs int    `env:"GOSNAKE_TICK_MS" envDefault:"110"`
	LogFile     string `env:"GOSNAKE_LOG"`
}

func DefaultConfig() Config {
	return Config{Width: 50, Height: 22, StartTickMs: 110}
}

// LoadConfig returns the configuration with environment overrides applied,
// falling back to the defaults when parsing fails.
func LoadConfig() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig()
	}

	return cfg.clamped()
}

// clamped enforces the minimum playable size and the tick floor.
func (cfg Config) clamped() Config {
	if cfg.Width < minWidth {
		cfg.Width = minWidth
	}
	if cfg.Height < minHeight {
		cfg.Height = minHeight
	}
	if cfg.StartTickMs < minTickMs {
		cfg.StartTickMs = minTickMs
	}

	return cfg
}
