// Package main is the entry point for the seimei CLI.
package main

import (
	"os"

	"github.com/phrazzld/seimei-api/cmd/seimei/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
