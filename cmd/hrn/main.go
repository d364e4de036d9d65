// Package main is the entry point for the hrn CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/heron/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
