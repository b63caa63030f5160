package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RequestTimeoutMS != 10000 {
		t.Errorf("RequestTimeoutMS = %d, want 10000", cfg.RequestTimeoutMS)
	}
	if cfg.ColorTheme != "auto" {
		t.Errorf("ColorTheme = %q, want auto", cfg.ColorTheme)
	}
	if cfg.StorePath == "" {
		t.Error("StorePath must have a default")
	}
}

func TestLoad_ParsesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `catalog_path: /tmp/catalog.yaml
request_timeout_ms: 2500
color_theme: dark
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CatalogPath != "/tmp/catalog.yaml" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.RequestTimeoutMS != 2500 {
		t.Errorf("RequestTimeoutMS = %d, want 2500", cfg.RequestTimeoutMS)
	}
	if cfg.ColorTheme != "dark" {
		t.Errorf("ColorTheme = %q, want dark", cfg.ColorTheme)
	}
	// Unset fields fall back to defaults.
	if cfg.WatchDebounceMS != 500 {
		t.Errorf("WatchDebounceMS = %d, want 500", cfg.WatchDebounceMS)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.CatalogPath = "/data/catalog.yaml"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.CatalogPath != cfg.CatalogPath {
		t.Errorf("CatalogPath = %q, want %q", reloaded.CatalogPath, cfg.CatalogPath)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("::: not yaml"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
