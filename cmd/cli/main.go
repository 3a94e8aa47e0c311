// Package main is the entry point for the fundraiser CLI.
package main

import (
	"os"

	"fundraiser/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
