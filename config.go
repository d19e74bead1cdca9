package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wasteland/pkg/game/persistence"
)

// config is everything a run needs. It comes from an optional YAML file, then the
// environment for the store, then command line flags.
type config struct {
	Data   string             `yaml:"data"`
	Seed   int64              `yaml:"seed"`
	Turns  int                `yaml:"turns"`
	Radius int                `yaml:"radius"`
	Dump   string             `yaml:"dump"`
	HTML   string             `yaml:"html"`
	Locale string             `yaml:"locale"`
	Lang   string             `yaml:"lang"`
	Store  persistence.Config `yaml:"store"`
}

func defaultConfig() config {
	return config{
		Turns:  100,
		Radius: 1,
		Locale: "mo",
		Lang:   "en_GB",
	}
}

// loadConfigFile reads a YAML config over cfg. Keys missing from the file keep their value.
func loadConfigFile(path string, cfg *config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// applyEnv overrides the store settings from DB_TYPE, DATABASE_URL and DB_FILE
func applyEnv(cfg *config) {
	if v := os.Getenv("DB_TYPE"); v != "" {
		cfg.Store.Type = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Store.DatabaseURL = v
	}
	if v := os.Getenv("DB_FILE"); v != "" {
		cfg.Store.File = v
	}
}
