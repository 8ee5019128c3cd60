package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	config := Default()

	if config.Experiment.Conditions != 4 {
		t.Errorf("expected Conditions 4, got %d", config.Experiment.Conditions)
	}
	if config.Experiment.Samples != 100 {
		t.Errorf("expected Samples 100, got %d", config.Experiment.Samples)
	}
	if config.Experiment.Output != "" {
		t.Errorf("expected empty Output, got '%s'", config.Experiment.Output)
	}
	if config.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got '%s'", config.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
experiment:
  conditions: 8
  samples: 250
  output: results/metrics.csv

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if config.Experiment.Conditions != 8 {
		t.Errorf("expected Conditions 8, got %d", config.Experiment.Conditions)
	}
	if config.Experiment.Samples != 250 {
		t.Errorf("expected Samples 250, got %d", config.Experiment.Samples)
	}
	if config.Experiment.Output != "results/metrics.csv" {
		t.Errorf("expected Output 'results/metrics.csv', got '%s'", config.Experiment.Output)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("expected Logging.Level 'debug', got '%s'", config.Logging.Level)
	}
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
experiment:
  conditions: 2
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if config.Experiment.Conditions != 2 {
		t.Errorf("expected Conditions 2, got %d", config.Experiment.Conditions)
	}
	if config.Experiment.Samples != 100 {
		t.Errorf("expected default Samples 100, got %d", config.Experiment.Samples)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TWINSIM_CONDITIONS", "6")
	t.Setenv("TWINSIM_SAMPLES", "500")
	t.Setenv("TWINSIM_OUTPUT", "/tmp/out.csv")
	t.Setenv("TWINSIM_LOG_LEVEL", "trace")

	config := Default()
	applyEnvOverrides(config)

	if config.Experiment.Conditions != 6 {
		t.Errorf("expected Conditions 6, got %d", config.Experiment.Conditions)
	}
	if config.Experiment.Samples != 500 {
		t.Errorf("expected Samples 500, got %d", config.Experiment.Samples)
	}
	if config.Experiment.Output != "/tmp/out.csv" {
		t.Errorf("expected Output '/tmp/out.csv', got '%s'", config.Experiment.Output)
	}
	if config.Logging.Level != "trace" {
		t.Errorf("expected Logging.Level 'trace', got '%s'", config.Logging.Level)
	}
}

func TestEnvOverrides_IgnoresMalformed(t *testing.T) {
	t.Setenv("TWINSIM_CONDITIONS", "not-a-number")

	config := Default()
	applyEnvOverrides(config)

	if config.Experiment.Conditions != 4 {
		t.Errorf("expected default Conditions 4, got %d", config.Experiment.Conditions)
	}
}

func TestValidate_Valid(t *testing.T) {
	config := Default()
	if err := config.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative conditions", func(c *Config) { c.Experiment.Conditions = -1 }},
		{"zero samples", func(c *Config) { c.Experiment.Samples = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.mutate(config)
			if err := config.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
