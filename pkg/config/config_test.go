package config

import (
	"os"
	"testing"
)

// clearEnv unsets every variable this package reads so each test starts
// from the documented defaults.
func clearEnv() {
	for _, key := range []string{
		"ENV",
		"SLCSP_PLANS_FILE",
		"SLCSP_ZIPS_FILE",
		"SLCSP_TARGETS_FILE",
		"SLCSP_OUTPUT_FILE",
		"SLCSP_RULES_FILE",
		"SLCSP_REPORT_UNRESOLVED",
		"LOG_LEVEL",
		"LOG_FORMAT",
	} {
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Files.Plans != "plans.csv" {
		t.Errorf("Expected Plans to be plans.csv, got %s", cfg.Files.Plans)
	}

	if cfg.Files.Targets != "slcsp.csv" {
		t.Errorf("Expected Targets to be slcsp.csv, got %s", cfg.Files.Targets)
	}

	if cfg.Files.Output != "slcsp_out.csv" {
		t.Errorf("Expected Output to be slcsp_out.csv, got %s", cfg.Files.Output)
	}

	if cfg.Files.Rules != "" {
		t.Errorf("Expected Rules to be empty, got %s", cfg.Files.Rules)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel to be info, got %s", cfg.LogLevel)
	}

	if !cfg.ReportUnresolved {
		t.Error("Expected ReportUnresolved to default to true")
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	clearEnv()
	os.Setenv("ENV", "production")
	os.Setenv("SLCSP_PLANS_FILE", "data/plans.csv")
	os.Setenv("SLCSP_OUTPUT_FILE", "out/rates.csv")
	os.Setenv("SLCSP_REPORT_UNRESOLVED", "false")
	os.Setenv("LOG_LEVEL", "debug")

	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Files.Plans != "data/plans.csv" {
		t.Errorf("Expected Plans to be data/plans.csv, got %s", cfg.Files.Plans)
	}

	if cfg.Files.Output != "out/rates.csv" {
		t.Errorf("Expected Output to be out/rates.csv, got %s", cfg.Files.Output)
	}

	if cfg.ReportUnresolved {
		t.Error("Expected ReportUnresolved to be false")
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	clearEnv()
	os.Setenv("ENV", "invalid")
	defer clearEnv()

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateMissingPaths(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty plans path", mutate: func(c *Config) { c.Files.Plans = "" }},
		{name: "empty zips path", mutate: func(c *Config) { c.Files.Zips = "" }},
		{name: "empty targets path", mutate: func(c *Config) { c.Files.Targets = "" }},
		{name: "empty output path", mutate: func(c *Config) { c.Files.Output = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}

			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	os.Setenv("TEST_BOOL", "true")
	defer os.Unsetenv("TEST_BOOL")

	value := getEnvAsBool("TEST_BOOL", false)
	if value != true {
		t.Errorf("Expected value to be true, got %v", value)
	}
}

func TestGetEnvAsBoolInvalid(t *testing.T) {
	os.Setenv("TEST_BOOL", "maybe")
	defer os.Unsetenv("TEST_BOOL")

	value := getEnvAsBool("TEST_BOOL", true)
	if value != true {
		t.Errorf("Expected invalid value to fall back to default, got %v", value)
	}
}
