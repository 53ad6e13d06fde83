// Package sheet parses sheet web service flags and launches the service.
package sheet

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	entrypoint "github.com/louisbranch/hunter-sheet/internal/platform/cmd"
	sheetservice "github.com/louisbranch/hunter-sheet/internal/services/sheet"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/app"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/storage/sqlite"
)

// Config holds sheet command configuration.
type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:"localhost:8095"`
	DBPath      string `env:"DB_PATH" envDefault:"data/sheet.db"`
	SeedDefault bool   `env:"SEED_DEFAULT" envDefault:"true"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.BoolVar(&cfg.SeedDefault, "seed-default", cfg.SeedDefault, "Seed the example sheet into an empty store")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the store and serves the sheet web UI until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSheet, func(ctx context.Context) error {
		service, closeStore, err := OpenService(ctx, cfg.DBPath, cfg.SeedDefault)
		if err != nil {
			return err
		}
		defer closeStore()

		server, err := sheetservice.NewServer(sheetservice.Config{HTTPAddr: cfg.HTTPAddr, Service: service})
		if err != nil {
			return fmt.Errorf("init sheet server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve sheet: %w", err)
		}
		return nil
	})
}

// OpenService opens the sqlite store at dbPath and optionally seeds the
// example sheet. The returned func closes the store.
func OpenService(ctx context.Context, dbPath string, seed bool) (*app.Service, func(), error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, nil, fmt.Errorf("db path is required")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	store, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open sheet store: %w", err)
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			log.Printf("close sheet store: %v", err)
		}
	}

	service := app.NewService(store)
	if seed {
		created, err := service.SeedDefault(ctx)
		if err != nil {
			closeStore()
			return nil, nil, fmt.Errorf("seed default sheet: %w", err)
		}
		if created {
			log.Printf("seeded default sheet id=%s", character.DefaultID)
		}
	}
	return service, closeStore, nil
}
