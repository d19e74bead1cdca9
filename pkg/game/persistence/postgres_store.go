package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQL driver

	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/submap"
)

// PostgresStore keeps submaps in a PostgreSQL table as JSONB
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database and creates the schema if needed
func NewPostgresStore(ctx context.Context, connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema initializes the database schema
func (ps *PostgresStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS submaps (
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		z INTEGER NOT NULL,
		data JSONB NOT NULL,
		turn_last_touched BIGINT NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		PRIMARY KEY (x, y, z)
	);
	`

	_, err := ps.db.ExecContext(ctx, schema)
	return err
}

const upsertSubmap = `
	INSERT INTO submaps (x, y, z, data, turn_last_touched)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (x, y, z)
	DO UPDATE SET
		data = $4, turn_last_touched = $5,
		updated_at = NOW()
	`

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveSubmap(ctx context.Context, db execer, pos world.Tripoint, sm *submap.Submap) error {
	data, err := json.Marshal(sm)
	if err != nil {
		return fmt.Errorf("failed to marshal submap %v: %w", pos, err)
	}
	_, err = db.ExecContext(ctx, upsertSubmap, pos.X, pos.Y, pos.Z, string(data), int64(sm.TurnLastTouched()))
	if err != nil {
		return fmt.Errorf("failed to save submap %v: %w", pos, err)
	}
	return nil
}

// SaveSubmap inserts or replaces the submap at pos
func (ps *PostgresStore) SaveSubmap(ctx context.Context, pos world.Tripoint, sm *submap.Submap) error {
	return saveSubmap(ctx, ps.db, pos, sm)
}

// SaveSubmaps upserts every submap in a single transaction
func (ps *PostgresStore) SaveSubmaps(ctx context.Context, submaps map[world.Tripoint]*submap.Submap) error {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for pos, sm := range submaps {
		if err := saveSubmap(ctx, tx, pos, sm); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submaps: %w", err)
	}
	return nil
}

// LoadSubmap loads the submap at pos
func (ps *PostgresStore) LoadSubmap(ctx context.Context, pos world.Tripoint) (*submap.Submap, error) {
	query := `SELECT data FROM submaps WHERE x = $1 AND y = $2 AND z = $3`

	var data string
	err := ps.db.QueryRowContext(ctx, query, pos.X, pos.Y, pos.Z).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("submap %v: %w", pos, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load submap %v: %w", pos, err)
	}

	var sm submap.Submap
	if err := json.Unmarshal([]byte(data), &sm); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submap %v: %w", pos, err)
	}
	return &sm, nil
}

// DeleteSubmap removes the submap at pos
func (ps *PostgresStore) DeleteSubmap(ctx context.Context, pos world.Tripoint) error {
	res, err := ps.db.ExecContext(ctx, `DELETE FROM submaps WHERE x = $1 AND y = $2 AND z = $3`, pos.X, pos.Y, pos.Z)
	if err != nil {
		return fmt.Errorf("failed to delete submap %v: %w", pos, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("submap %v: %w", pos, ErrNotFound)
	}
	return nil
}

// Close closes the database connection
func (ps *PostgresStore) Close() error {
	log.Println("Closing database connection...")
	return ps.db.Close()
}
