// Package main prints the Nen affinity table.
package main

import (
	"context"
	"flag"
	"os"

	affinitycmd "github.com/louisbranch/hunter-sheet/internal/cmd/affinity"
	"github.com/louisbranch/hunter-sheet/internal/platform/config"
)

func main() {
	cfg, err := affinitycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("affinity: parse flags: %v", err)
	}
	if err := affinitycmd.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("affinity: %v", err)
	}
}
