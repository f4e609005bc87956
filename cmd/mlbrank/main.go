package main

import (
	"os"

	"github.com/jmoran/mlbrank/cmd/mlbrank/commands"
)

// main is the entry point for the mlbrank CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
