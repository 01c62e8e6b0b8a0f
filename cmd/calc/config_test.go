package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing", "config.yaml")); err == nil {
		t.Fatal("expected error for explicit missing path")
	}

	// Empty path with no default file yields defaults.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DB != "calc.db" || cfg.HistoryLimit != 50 || cfg.Prompt != ">>> " {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "db: custom.db\nhistory_limit: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DB != "custom.db" {
		t.Errorf("expected custom.db, got %s", cfg.DB)
	}
	if cfg.HistoryLimit != 5 {
		t.Errorf("expected history_limit 5, got %d", cfg.HistoryLimit)
	}
	// Unset keys keep their defaults.
	if cfg.Prompt != ">>> " {
		t.Errorf("expected default prompt, got %q", cfg.Prompt)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
