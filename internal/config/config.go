// Package config loads go-memtiles settings from YAML.
package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/memtiles.yaml
var defaultYAML []byte

// Config holds every user-tunable setting.
type Config struct {
	Difficulty      string `yaml:"difficulty"`
	MismatchDelayMS int    `yaml:"mismatch_delay_ms"`
	TickRate        int    `yaml:"tick_rate"` // ticks per second
	Seed            int64  `yaml:"seed"`      // 0 = random
	ShowHelp        bool   `yaml:"show_help"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Difficulty:      "medium",
		MismatchDelayMS: 1000,
		TickRate:        30,
		ShowHelp:        true,
	}
}

// DefaultYAML returns the embedded default file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Validate replaces out-of-range values with defaults.
func (c *Config) Validate() {
	d := Default()
	if c.MismatchDelayMS <= 0 {
		c.MismatchDelayMS = d.MismatchDelayMS
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.Difficulty == "" {
		c.Difficulty = d.Difficulty
	}
}

func (c Config) MismatchDelay() time.Duration {
	return time.Duration(c.MismatchDelayMS) * time.Millisecond
}

func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / time.Duration(Default().TickRate)
	}
	return time.Second / time.Duration(c.TickRate)
}
