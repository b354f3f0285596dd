package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors the scheduler parameter file. All times are nanoseconds.
type Config struct {
	TimeQuantum    uint64 `yaml:"time_quantum_ns"`    // scheduling latency target
	MinGranularity uint64 `yaml:"min_granularity_ns"` // atomic accounting unit
}

// Conventional kernel-ish defaults: 100ms latency, 4ms granularity.
func defaultConfig() Config {
	return Config{
		TimeQuantum:    100_000_000,
		MinGranularity: 4_000_000,
	}
}

// LoadConfig reads YAML and overrides defaults; empty path = defaults only.
func LoadConfig(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.TimeQuantum == 0 {
		cfg.TimeQuantum = 100_000_000
	}
	if cfg.MinGranularity == 0 {
		cfg.MinGranularity = 4_000_000
	}
	if cfg.MinGranularity > cfg.TimeQuantum {
		cfg.MinGranularity = cfg.TimeQuantum
	}

	return cfg
}
