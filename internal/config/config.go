// Package config loads the CLI's YAML configuration file, following the
// yaml.v3 load pattern in jinterlante1206-AleutianLocal's
// cmd/aleutian/config/loader.go. Unlike that package's Global singleton,
// Load here returns a value the caller threads through explicitly — only
// cmd/hashlife ever reads configuration; the engine packages and the
// hashlife facade never do.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the CLI's defaults. Zero-value fields are filled in by
// Default() for anything a loaded file omits.
type Config struct {
	// InitialArenaCapacity is parsed from the file but not passed to the
	// arena, whose initial backing-slice capacity is fixed at 1024 nodes.
	InitialArenaCapacity int `yaml:"initial_arena_capacity"`
	// DefaultStepLog2 seeds Universe.SetStepLog2 for commands that don't
	// override it with --log2.
	DefaultStepLog2 uint8 `yaml:"default_step_log2"`
	// MetricsAddr, if non-empty, is the default --metrics-addr value.
	MetricsAddr string `yaml:"metrics_addr"`
	// LogLevel names a zap level ("debug", "info", "warn", "error"). It is
	// parsed from the file but not applied: the CLI's logger level comes
	// from --verbose alone.
	LogLevel string `yaml:"log_level"`
}

// Default returns the CLI's built-in defaults.
func Default() Config {
	return Config{
		InitialArenaCapacity: 1024,
		DefaultStepLog2:      0,
		MetricsAddr:          "",
		LogLevel:             "info",
	}
}

// Load reads and parses a YAML config file at path, overlaying it onto
// Default(). A missing file is not an error; Default() is returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
