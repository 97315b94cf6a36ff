// Package main is the entry point for the charger-sizing CLI.
package main

import (
	"os"

	"charger-sizing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
