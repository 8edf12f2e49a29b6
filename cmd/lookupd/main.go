// Package main is the entrypoint for the phone lookup service.
// lookupd serves country detection, number parsing, and the country
// registry over HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/numera-labs/phone-lookup-platform/internal/config"
	"github.com/numera-labs/phone-lookup-platform/internal/server"
)

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return server.Run(ctx, server.Params{
		Name:               "lookupd",
		PortFromConfig:     func(cfg *config.Config) int { return cfg.Lookup.HTTPPort },
		GRPCPortFromConfig: func(cfg *config.Config) int { return cfg.Lookup.GRPCPort },
		Setup:              setup,
	}, server.Listeners{})
}
