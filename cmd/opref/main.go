// Package main provides the opref CLI.
package main

import (
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
