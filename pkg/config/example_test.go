package config_test

import (
	"fmt"

	"github.com/benchrate/slcsp/pkg/config"
)

// Example demonstrates how to use the config package
func Example() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	// Access configuration values
	fmt.Printf("Environment: %s\n", cfg.Env)
	fmt.Printf("Plans table: %s\n", cfg.Files.Plans)
	fmt.Printf("Output table: %s\n", cfg.Files.Output)
}
