// Package main is the entry point for the revend CLI.
package main

import (
	"os"

	"github.com/revend/revend/cmd/rvd/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
