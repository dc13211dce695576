// Copyright 2026 The p5 Authors
// SPDX-License-Identifier: MIT

// Package config loads settings for the p5sketch runner.
//
// Values come from, in increasing priority: built-in defaults, an optional
// TOML file, and P5_* environment variables. Command-line flags are applied
// on top by the caller.
package config

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "P5"

type Config struct {
	Sketch   string `toml:"sketch" envconfig:"SKETCH"`
	Headless bool   `toml:"headless" envconfig:"HEADLESS"`
	Frames   uint64 `toml:"frames" envconfig:"FRAMES"`
	Hz       int    `toml:"hz" envconfig:"HZ"`
	Scale    int    `toml:"scale" envconfig:"SCALE"`
	Title    string `toml:"title" envconfig:"TITLE"`
	Seed     uint64 `toml:"seed" envconfig:"SEED"`
	LogLevel string `toml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Sketch:   "pattern",
		Scale:    1,
		Title:    "p5",
		LogLevel: "info",
	}
}

// Load reads path (skipped when empty) over the defaults, then applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config: unknown keys in %s: %v", path, undecoded)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	return &cfg, nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
