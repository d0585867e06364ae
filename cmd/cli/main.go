// Package main is the entry point for the takeoff-cost CLI.
package main

import (
	"os"

	"takeoff-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
