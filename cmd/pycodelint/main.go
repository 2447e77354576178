// Package main provides the pycodelint command.
package main

import (
	"os"

	"github.com/leapstack-labs/pycodelint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
