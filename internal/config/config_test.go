package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverlaysOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"default_step_log2: 3\nmetrics_addr: \":9090\"\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint8(3), cfg.DefaultStepLog2)
	require.Equal(t, ":9090", cfg.MetricsAddr)
	require.Equal(t, Default().LogLevel, cfg.LogLevel)
	require.Equal(t, Default().InitialArenaCapacity, cfg.InitialArenaCapacity)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
