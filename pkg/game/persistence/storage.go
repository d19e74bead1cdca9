// Package persistence stores submaps outside of memory, keyed by their world position.
package persistence

import (
	"context"
	"errors"

	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/submap"
)

// ErrNotFound is returned when no submap is stored at a position
var ErrNotFound = errors.New("submap not found")

// Storage defines the interface for submap persistence
type Storage interface {
	SaveSubmap(ctx context.Context, pos world.Tripoint, sm *submap.Submap) error
	// SaveSubmaps stores many submaps in one write
	SaveSubmaps(ctx context.Context, submaps map[world.Tripoint]*submap.Submap) error
	LoadSubmap(ctx context.Context, pos world.Tripoint) (*submap.Submap, error)
	DeleteSubmap(ctx context.Context, pos world.Tripoint) error
	Close() error
}
