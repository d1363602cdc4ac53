// Package main is the entry point for the tidylist CLI/TUI.
package main

import (
	"os"

	"github.com/tidylist-io/tidylist/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
