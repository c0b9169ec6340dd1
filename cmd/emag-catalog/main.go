// Package main is the entry point for emag-catalog.
package main

import (
	"os"

	"github.com/donaldgifford/emag-catalog/cmd/emag-catalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
