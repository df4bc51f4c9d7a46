package xgxassert

import (
	"fmt"
	"sync"

	env "github.com/caarlos0/env/v11"
)

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config controls report construction and printing. It is usually loaded from
// the environment with LoadConfig.
type Config struct {
	// CaptureStack records the call stack of Build on every report.
	CaptureStack bool `json:"capture_stack" env:"CAPTURE_STACK" envDefault:"true"`
	// MaxStackDepth bounds the number of captured frames.
	MaxStackDepth int `json:"max_stack_depth" env:"MAX_STACK_DEPTH" envDefault:"64"`
	// MaxValueLength truncates expected/actual display text. Zero disables it.
	MaxValueLength int `json:"max_value_length" env:"MAX_VALUE_LENGTH" envDefault:"0"`
	// Color selects highlighting for Fprint: auto, always or never.
	Color string `json:"color" env:"COLOR" envDefault:"auto"`
}

// envPrefix namespaces every variable read by LoadConfig.
const envPrefix = "XGX_ASSERT_"

// LoadConfig loads configuration from XGX_ASSERT_* environment variables,
// applying defaults for anything unset.
func LoadConfig() (*Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("xgxassert: invalid %sCOLOR %q (want auto, always or never)", envPrefix, c.Color)
	}
	if c.MaxStackDepth < 0 {
		return fmt.Errorf("xgxassert: invalid %sMAX_STACK_DEPTH %d", envPrefix, c.MaxStackDepth)
	}
	if c.MaxValueLength < 0 {
		return fmt.Errorf("xgxassert: invalid %sMAX_VALUE_LENGTH %d", envPrefix, c.MaxValueLength)
	}
	return nil
}

// builtinConfig mirrors the envDefault tags.
func builtinConfig() *Config {
	return &Config{
		CaptureStack:  true,
		MaxStackDepth: defaultMaxDepth,
		Color:         ColorAuto,
	}
}

var defaultConfig = sync.OnceValue(func() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		return builtinConfig()
	}
	return cfg
})

// DefaultConfig returns the process-wide configuration, loaded from the
// environment on first use. An invalid environment yields the built-in
// defaults. Callers must not mutate the returned value.
func DefaultConfig() *Config {
	return defaultConfig()
}
