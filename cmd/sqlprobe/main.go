// Package main is the entry point for the sqlprobe CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlprobe/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
