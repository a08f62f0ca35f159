// Package config holds the tunable dimensions and timings of the lab.
// Values resolve in order: defaults, then a YAML file, then WOLFCA_*
// environment variables, then command-line flags.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 64
	DefaultDepth      = 50
	DefaultStepMS     = 250
	DefaultDebounceMS = 600
	DefaultFPS        = 30

	// RandomRule marks the rule as unset; the launcher fills it with a
	// uniformly random Wolfram code.
	RandomRule = -1
)

type Config struct {
	// Width is the cell count K of every generation, at most 64 so a row
	// round-trips through a uint64 seed.
	Width int `yaml:"width" env:"WOLFCA_WIDTH"`
	// Depth is the number of retained generations N.
	Depth int `yaml:"depth" env:"WOLFCA_DEPTH"`
	// StepMS is the evolution period in milliseconds.
	StepMS int `yaml:"step_ms" env:"WOLFCA_STEP_MS"`
	// DebounceMS is the rule-entry settle time in milliseconds.
	DebounceMS int `yaml:"debounce_ms" env:"WOLFCA_DEBOUNCE_MS"`
	// Rule is the Wolfram code, or RandomRule to pick one at launch.
	Rule int `yaml:"rule" env:"WOLFCA_RULE"`
	// Seed is the initial row as a decimal or 0x-prefixed integer; empty
	// means a random 64-bit value at launch.
	Seed string `yaml:"seed,omitempty" env:"WOLFCA_SEED"`
	// FPS is the TUI frame rate.
	FPS int `yaml:"fps" env:"WOLFCA_FPS"`
}

func Default() *Config {
	return &Config{
		Width:      DefaultWidth,
		Depth:      DefaultDepth,
		StepMS:     DefaultStepMS,
		DebounceMS: DefaultDebounceMS,
		Rule:       RandomRule,
		FPS:        DefaultFPS,
	}
}

// Load reads a YAML config over the defaults and applies environment
// overrides. An empty path skips the file and still honors the env.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width < 1 || c.Width > 64 {
		return fmt.Errorf("width must be in [1,64], got %d", c.Width)
	}
	if c.Depth < 1 {
		return fmt.Errorf("depth must be positive, got %d", c.Depth)
	}
	if c.StepMS <= 0 {
		return fmt.Errorf("step_ms must be positive, got %d", c.StepMS)
	}
	if c.DebounceMS <= 0 {
		return fmt.Errorf("debounce_ms must be positive, got %d", c.DebounceMS)
	}
	if c.Rule < RandomRule || c.Rule > 255 {
		return fmt.Errorf("rule must be in [0,255], got %d", c.Rule)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Seed != "" {
		if _, err := ParseSeed(c.Seed); err != nil {
			return err
		}
	}
	return nil
}

// Step answers the evolution period.
func (c *Config) Step() time.Duration {
	return time.Duration(c.StepMS) * time.Millisecond
}

// Debounce answers the rule-entry settle time.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// ParseSeed decodes a seed written as decimal or 0x-prefixed hex.
func ParseSeed(s string) (uint64, error) {
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	seed, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("seed %q is not a 64-bit integer: %w", s, err)
	}
	return seed, nil
}
