package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// probeConfig controls one tsxprobe run.
type probeConfig struct {
	Attempts  int
	AbortCode uint8
	Output    string // "console" or "json"
	Verbose   bool
}

func defaultConfig() probeConfig {
	return probeConfig{
		Attempts:  10,
		AbortCode: 5,
		Output:    "console",
	}
}

type fileConfig struct {
	Attempts  int    `toml:"attempts"`
	AbortCode int    `toml:"abort_code"`
	Output    string `toml:"output"`
	Verbose   bool   `toml:"verbose"`
}

func loadConfig(path string) (probeConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return probeConfig{}, fmt.Errorf("load probe config: %w", err)
	}

	if meta.IsDefined("attempts") {
		if raw.Attempts <= 0 {
			return probeConfig{}, fmt.Errorf("attempts must be positive, got %d", raw.Attempts)
		}
		cfg.Attempts = raw.Attempts
	}

	if meta.IsDefined("abort_code") {
		if raw.AbortCode < 0 || raw.AbortCode > 255 {
			return probeConfig{}, fmt.Errorf("abort_code must fit in 8 bits, got %d", raw.AbortCode)
		}
		cfg.AbortCode = uint8(raw.AbortCode)
	}

	if meta.IsDefined("output") {
		switch out := strings.TrimSpace(raw.Output); out {
		case "console", "json":
			cfg.Output = out
		default:
			return probeConfig{}, fmt.Errorf("unknown output %q", raw.Output)
		}
	}

	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}

	return cfg, nil
}
