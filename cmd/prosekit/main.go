// Package main provides the prosekit CLI.
package main

import (
	"os"

	"github.com/draftstack-labs/prosekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
