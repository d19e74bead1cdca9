package persistence

import (
	"context"
	"fmt"
	"log"
)

// Defaults used when no store location is configured
const (
	DefaultDatabaseURL = "host=localhost user=wasteland password=wasteland dbname=wasteland sslmode=disable"
	DefaultFile        = "world.json"
)

// Config selects and locates a store
type Config struct {
	Type        string `yaml:"type"`
	DatabaseURL string `yaml:"database_url"`
	File        string `yaml:"file"`
}

// Open creates the store described by cfg. Type "postgres" uses PostgreSQL,
// "json" or an empty type uses a JSON file.
func Open(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Type {
	case "postgres":
		url := cfg.DatabaseURL
		if url == "" {
			url = DefaultDatabaseURL
		}
		log.Println("Using PostgreSQL persistence")
		return NewPostgresStore(ctx, url)
	case "", "json":
		file := cfg.File
		if file == "" {
			file = DefaultFile
		}
		log.Println("Using JSON persistence")
		return NewJSONStore(file)
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
}
