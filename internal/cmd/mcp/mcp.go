// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"

	sheetcmd "github.com/louisbranch/hunter-sheet/internal/cmd/sheet"
	entrypoint "github.com/louisbranch/hunter-sheet/internal/platform/cmd"
	mcpservice "github.com/louisbranch/hunter-sheet/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	DBPath      string `env:"DB_PATH"        envDefault:"data/sheet.db"`
	SeedDefault bool   `env:"SEED_DEFAULT"   envDefault:"true"`
	HTTPAddr    string `env:"MCP_HTTP_ADDR"  envDefault:"localhost:8096"`
	Transport   string `env:"MCP_TRANSPORT"  envDefault:"stdio"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.BoolVar(&cfg.SeedDefault, "seed-default", cfg.SeedDefault, "Seed the example sheet into an empty store")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter over the sheet store.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		service, closeStore, err := sheetcmd.OpenService(ctx, cfg.DBPath, cfg.SeedDefault)
		if err != nil {
			return err
		}
		defer closeStore()

		return mcpservice.Run(ctx, mcpservice.Config{
			Transport: mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:  cfg.HTTPAddr,
			Service:   service,
		})
	})
}
