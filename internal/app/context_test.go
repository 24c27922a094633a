package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"todosync/internal/config"
	"todosync/internal/db"
	todosyncsdk "todosync/sdk/go"
)

func TestResolveConfigDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	cfg, err := ResolveConfig(Options{Workspace: dir})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.API.BaseURL != config.DefaultBaseURL {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	raw := config.GenerateDefault("https://sync.example.com")
	if err := os.WriteFile(config.Path(dir), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = ResolveConfig(Options{Workspace: dir})
	if err != nil || cfg.API.BaseURL != "https://sync.example.com" {
		t.Fatalf("file config = %+v, %v", cfg, err)
	}
	cfg, err = ResolveConfig(Options{Workspace: dir, BaseURL: "http://127.0.0.1:9999"})
	if err != nil || cfg.API.BaseURL != "http://127.0.0.1:9999" {
		t.Fatalf("override = %+v, %v", cfg, err)
	}
	if _, err := ResolveConfig(Options{Workspace: dir, BaseURL: "not a url"}); err == nil {
		t.Fatalf("expected invalid override to fail")
	}
}

func TestOpenMigratesWorkspace(t *testing.T) {
	dir := t.TempDir()
	env, err := Open(context.Background(), Options{Workspace: dir, Token: "secret", Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer env.Close()
	if _, err := os.Stat(filepath.Join(dir, ".todosync", "todosync.db")); err != nil {
		t.Fatalf("db file missing: %v", err)
	}
	if db.Path(dir) != filepath.Join(dir, ".todosync", "todosync.db") {
		t.Fatalf("unexpected db path %s", db.Path(dir))
	}
	client, ok := env.Engine.Transport.(*todosyncsdk.Client)
	if !ok || client.Token != "secret" || client.Timeout != 2*time.Second {
		t.Fatalf("transport = %#v", env.Engine.Transport)
	}
	if _, err := env.Engine.Repo.ListMappings(context.Background()); err != nil {
		t.Fatalf("schema not migrated: %v", err)
	}
}
