// Package main is the entry point for the tasker CLI.
package main

import (
	"os"

	"tasker/internal/cli"

	// Import all command packages to register them via init()
	_ "tasker/internal/commands"
)

func main() {
	os.Exit(cli.Execute())
}
