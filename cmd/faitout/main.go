// Package main is the entry point for the faitout notebook.
package main

import (
	"fmt"
	"os"

	"github.com/mlevasseur/faitout/internal/app"
	"github.com/mlevasseur/faitout/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	container := app.New()
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
