// Command emissions-engine calculates greenhouse gas emissions for activity
// records against a factor catalog, from single calculations to batch files.
package main

import (
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
