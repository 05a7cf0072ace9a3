package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the configured log level.
const EnvLogLevel = "MMSIM_LOG_LEVEL"

type config struct {
	Glob            string
	MaxSteps        int
	LogLevel        zerolog.Level
	ShowStepMap     bool
	UnexploredLocal bool
	Random          int
	Seed            uint64
}

type fileConfig struct {
	Glob            string `toml:"glob"`
	MaxSteps        int    `toml:"max_steps"`
	LogLevel        string `toml:"log_level"`
	ShowStepMap     bool   `toml:"show_stepmap"`
	UnexploredLocal bool   `toml:"unexplored_local"`
	Random          int    `toml:"random"`
	Seed            uint64 `toml:"seed"`
}

func defaultConfig() config {
	return config{
		Glob:        "assets/*.txt",
		MaxSteps:    10000,
		LogLevel:    zerolog.InfoLevel,
		ShowStepMap: true,
	}
}

// loadConfig layers the TOML file at path (if any) and the environment
// over the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path != "" {
		var raw fileConfig
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return config{}, fmt.Errorf("load mmsim config: %w", err)
		}
		if meta.IsDefined("glob") {
			if g := strings.TrimSpace(raw.Glob); g != "" {
				cfg.Glob = g
			}
		}
		if meta.IsDefined("max_steps") {
			if raw.MaxSteps < 0 {
				return config{}, fmt.Errorf("max_steps must not be negative: %d", raw.MaxSteps)
			}
			cfg.MaxSteps = raw.MaxSteps
		}
		if meta.IsDefined("log_level") {
			lvl, err := parseLevel(raw.LogLevel)
			if err != nil {
				return config{}, err
			}
			cfg.LogLevel = lvl
		}
		if meta.IsDefined("show_stepmap") {
			cfg.ShowStepMap = raw.ShowStepMap
		}
		if meta.IsDefined("unexplored_local") {
			cfg.UnexploredLocal = raw.UnexploredLocal
		}
		if meta.IsDefined("random") {
			if raw.Random < 0 {
				return config{}, fmt.Errorf("random must not be negative: %d", raw.Random)
			}
			cfg.Random = raw.Random
		}
		if meta.IsDefined("seed") {
			cfg.Seed = raw.Seed
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *config) {
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		if lvl, err := parseLevel(raw); err == nil {
			cfg.LogLevel = lvl
		}
	}
}

func parseLevel(raw string) (zerolog.Level, error) {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case "off", "none", "disabled":
		return zerolog.Disabled, nil
	case "warning":
		return zerolog.WarnLevel, nil
	default:
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return zerolog.InfoLevel, fmt.Errorf("parse log_level %q: %w", raw, err)
		}
		return lvl, nil
	}
}
