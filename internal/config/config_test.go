package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"todosync/internal/resource"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default(DefaultBaseURL)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if got := cfg.Timeout(time.Second); got != 10*time.Second {
		t.Fatalf("timeout = %v", got)
	}
	if types := cfg.ResourceTypes(); len(types) != 1 || types[0] != resource.All {
		t.Fatalf("resource types = %v", types)
	}
	if !cfg.JournalEnabled() {
		t.Fatalf("journal should default on")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]string{
		"missing url":      "api: {}\nsync:\n  resource_types: [items]\n",
		"relative url":     "api:\n  base_url: /sync\nsync:\n  resource_types: [items]\n",
		"bad timeout":      "api:\n  base_url: http://x\n  timeout: soon\nsync:\n  resource_types: [items]\n",
		"negative timeout": "api:\n  base_url: http://x\n  timeout: -1s\nsync:\n  resource_types: [items]\n",
		"no selectors":     "api:\n  base_url: http://x\n",
		"unknown selector": "api:\n  base_url: http://x\nsync:\n  resource_types: [items, gadgets]\n",
	}
	for name, raw := range cases {
		if _, err := FromYAML([]byte(raw)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	_, err := FromYAML([]byte("api:\n  base_url: http://x\nsync:\n  resource_types: [Items]\n"))
	if !errors.Is(err, resource.ErrUnknownSelector) {
		t.Fatalf("expected selector error, got %v", err)
	}
}

func TestLoadOptionalAndLoad(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOptional(dir)
	if err != nil || cfg != nil {
		t.Fatalf("missing file should be nil,nil: %v %v", cfg, err)
	}
	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "config init") {
		t.Fatalf("expected hint to run config init, got %v", err)
	}
	raw := "api:\n  base_url: https://sync.example.com/v1\nsync:\n  resource_types: [items, projects]\n  journal: false\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JournalEnabled() {
		t.Fatalf("journal should be off")
	}
	if got := cfg.Timeout(3 * time.Second); got != 3*time.Second {
		t.Fatalf("unset timeout should fall back, got %v", got)
	}
	if types := cfg.ResourceTypes(); len(types) != 2 || types[1] != resource.Projects {
		t.Fatalf("resource types = %v", types)
	}
}
