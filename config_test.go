package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wasteland.yaml")
	body := "seed: 99\nturns: 250\nstore:\n  type: json\n  file: save.json\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := defaultConfig()
	if err := loadConfigFile(path, &cfg); err != nil {
		t.Fatalf("loadConfigFile error: %v", err)
	}
	if cfg.Seed != 99 || cfg.Turns != 250 || cfg.Store.File != "save.json" {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.Radius != 1 || cfg.Lang != "en_GB" {
		t.Errorf("defaults lost: radius %d lang %q", cfg.Radius, cfg.Lang)
	}
}

func TestLoadConfigFile_Bad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("turns: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := defaultConfig()
	if err := loadConfigFile(path, &cfg); err == nil {
		t.Error("loadConfigFile accepted broken YAML")
	}
	if err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"), &cfg); err == nil {
		t.Error("loadConfigFile accepted a missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "host=db")
	t.Setenv("DB_FILE", "")
	cfg := defaultConfig()
	cfg.Store.File = "keep.json"
	applyEnv(&cfg)
	if cfg.Store.Type != "postgres" || cfg.Store.DatabaseURL != "host=db" || cfg.Store.File != "keep.json" {
		t.Errorf("store config = %+v", cfg.Store)
	}
}
