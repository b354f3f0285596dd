package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")
	assert.Equal(t, uint64(100_000_000), cfg.TimeQuantum)
	assert.Equal(t, uint64(4_000_000), cfg.MinGranularity)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg := LoadConfig("does-not-exist.yml")
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yml")
	data := "time_quantum_ns: 50000000\nmin_granularity_ns: 2000000\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg := LoadConfig(path)
	assert.Equal(t, uint64(50_000_000), cfg.TimeQuantum)
	assert.Equal(t, uint64(2_000_000), cfg.MinGranularity)
}

func TestLoadConfigClampsGranularity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yml")
	data := "time_quantum_ns: 1000000\nmin_granularity_ns: 8000000\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg := LoadConfig(path)
	assert.Equal(t, cfg.TimeQuantum, cfg.MinGranularity,
		"granularity must never exceed the latency target")
}
