package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Every environment
// variable is read here and nowhere else.
type Config struct {
	Env string // development, staging, production

	// Input and output tables
	Files FilesConfig

	// Logging
	LogLevel  string
	LogFormat string

	// Reporting
	ReportUnresolved bool
}

// FilesConfig holds the paths of the CSV tables and the optional benchmark
// rules file. An empty Rules path means the built-in defaults apply.
type FilesConfig struct {
	Plans   string
	Zips    string
	Targets string
	Output  string
	Rules   string
}

// Load reads configuration from environment variables, after loading a
// .env file when one is present. Only this function calls os.Getenv.
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Files: FilesConfig{
			Plans:   getEnv("SLCSP_PLANS_FILE", "plans.csv"),
			Zips:    getEnv("SLCSP_ZIPS_FILE", "zips.csv"),
			Targets: getEnv("SLCSP_TARGETS_FILE", "slcsp.csv"),
			Output:  getEnv("SLCSP_OUTPUT_FILE", "slcsp_out.csv"),
			Rules:   getEnv("SLCSP_RULES_FILE", ""),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		ReportUnresolved: getEnvAsBool("SLCSP_REPORT_UNRESOLVED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set. Callers that
// override fields after Load must validate again.
func (c *Config) Validate() error {
	if c.Files.Plans == "" {
		return fmt.Errorf("plans file path is required")
	}
	if c.Files.Zips == "" {
		return fmt.Errorf("zips file path is required")
	}
	if c.Files.Targets == "" {
		return fmt.Errorf("targets file path is required")
	}
	if c.Files.Output == "" {
		return fmt.Errorf("output file path is required")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
