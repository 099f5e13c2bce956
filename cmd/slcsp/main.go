package main

import (
	"os"

	"github.com/benchrate/slcsp/cmd/slcsp/commands"
)

// main is the entry point for the slcsp CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
