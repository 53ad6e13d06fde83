package sheet

import (
	"context"
	"flag"
	"io"
	"path/filepath"
	"testing"

	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("sheet", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8095" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "data/sheet.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if !cfg.SeedDefault {
		t.Fatal("expected seeding enabled by default")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("HUNTER_SHEET_HTTP_ADDR", "env:9000")
	t.Setenv("HUNTER_SHEET_DB_PATH", "/tmp/env.db")

	fs := flag.NewFlagSet("sheet", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "flag:9001", "-seed-default=false"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag:9001" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "/tmp/env.db" {
		t.Fatalf("expected env db path, got %q", cfg.DBPath)
	}
	if cfg.SeedDefault {
		t.Fatal("expected seeding disabled by flag")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("sheet", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-nope"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestOpenServiceSeedsDefaultSheet(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "sheet.db")

	service, closeStore, err := OpenService(context.Background(), dbPath, true)
	if err != nil {
		t.Fatalf("open service: %v", err)
	}
	defer closeStore()

	c, err := service.Character(context.Background(), character.DefaultID)
	if err != nil {
		t.Fatalf("load seeded sheet: %v", err)
	}
	if c.Name != character.Default().Name {
		t.Fatalf("Name = %q, want %q", c.Name, character.Default().Name)
	}
}

func TestOpenServiceWithoutSeed(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sheet.db")

	service, closeStore, err := OpenService(context.Background(), dbPath, false)
	if err != nil {
		t.Fatalf("open service: %v", err)
	}
	defer closeStore()

	summaries, err := service.Characters(context.Background())
	if err != nil {
		t.Fatalf("list characters: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected empty store, got %d sheets", len(summaries))
	}
}

func TestOpenServiceRequiresPath(t *testing.T) {
	if _, _, err := OpenService(context.Background(), " ", true); err == nil {
		t.Fatal("expected missing path error")
	}
}
