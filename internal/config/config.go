// Package config loads the soartimer configuration. Only the I/O shell is
// configurable: tick cadence, audio rendering, logging and the simulated
// input controls. The competition timing constants are fixed by the
// discipline and compiled into the core.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full soartimer configuration
type Config struct {
	TickMs int         `json:"tickMs"`
	Audio  AudioConfig `json:"audio"`
	Log    LogConfig   `json:"log"`
	Input  InputConfig `json:"input"`
}

// AudioConfig contains cue rendering settings
type AudioConfig struct {
	Enabled     bool   `json:"enabled"`
	ProfilePath string `json:"profilePath"`
}

// LogConfig contains logging settings
type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

// InputConfig contains simulated-control settings
type InputConfig struct {
	// ElevatorStep is the percentage change per arrow-key press.
	ElevatorStep float64 `json:"elevatorStep"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		TickMs: 100,
		Audio: AudioConfig{
			Enabled:     true,
			ProfilePath: "",
		},
		Log: LogConfig{
			File:  filepath.Join(homeDir, ".soartimer", "soartimer.log"),
			Level: "info",
		},
		Input: InputConfig{
			ElevatorStep: 10,
		},
	}
}

// LoadConfig loads configuration with priority:
// 1. CLI flags (handled by the caller)
// 2. The given path, or .soartimer.json in the working directory
// 3. Defaults
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ".soartimer.json"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return MergeWithDefaults(cfg), nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.TickMs <= 0 {
		cfg.TickMs = defaults.TickMs
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Input.ElevatorStep <= 0 {
		cfg.Input.ElevatorStep = defaults.Input.ElevatorStep
	}

	return cfg
}
