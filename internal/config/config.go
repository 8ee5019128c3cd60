// Package config provides unified configuration loading for twinsim.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config contains all twinsim configuration settings.
type Config struct {
	// Experiment contains settings for the simulation-and-fitting sweep.
	Experiment ExperimentConfig `json:"experiment" yaml:"experiment"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// ExperimentConfig configures the default sweep parameters.
type ExperimentConfig struct {
	// Conditions is the number of experimental conditions to generate.
	Conditions int `json:"conditions" yaml:"conditions"`

	// Samples is the number of observations per condition dataset.
	Samples int `json:"samples" yaml:"samples"`

	// Output is an optional path for the results CSV. Empty disables export.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// LoggingConfig configures twinsim's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults: the four-condition,
// hundred-sample sweep used throughout the alignment study.
func Default() *Config {
	return &Config{
		Experiment: ExperimentConfig{
			Conditions: 4,
			Samples:    100,
			Output:     "",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.twinsim/config.yaml -> environment variables
func Load() (*Config, error) {
	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".twinsim", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileCfg, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			cfg = fileCfg
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Experiment.Conditions < 0 {
		return fmt.Errorf("conditions must be non-negative, got %d", c.Experiment.Conditions)
	}
	if c.Experiment.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", c.Experiment.Samples)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TWINSIM_CONDITIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Experiment.Conditions = n
		}
	}
	if v := os.Getenv("TWINSIM_SAMPLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Experiment.Samples = n
		}
	}
	if v := os.Getenv("TWINSIM_OUTPUT"); v != "" {
		cfg.Experiment.Output = v
	}
	if v := os.Getenv("TWINSIM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
