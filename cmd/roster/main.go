// Package main provides the roster command, an interactive employee
// management console.
package main

import (
	"os"

	"github.com/leapstack-labs/roster/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
