// Package main is the entry point for the iops-calculator CLI.
package main

import (
	"os"

	"iops-calculator/cmd/cli/cmd"
	"iops-calculator/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		logging.Sync()
		os.Exit(1)
	}
}
