// Package mapbuffer keeps the working set of submaps in memory and pages them
// in and out of a persistence.Storage.
package mapbuffer

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"wasteland/pkg/engine/calendar"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/persistence"
	"wasteland/pkg/game/submap"
)

// Buffer is the set of submaps currently in memory.
type Buffer struct {
	store   persistence.Storage
	submaps map[world.Tripoint]*submap.Submap
}

// New creates an empty buffer backed by store
func New(store persistence.Storage) *Buffer {
	return &Buffer{
		store:   store,
		submaps: make(map[world.Tripoint]*submap.Submap),
	}
}

// Len returns the number of submaps in memory
func (b *Buffer) Len() int {
	return len(b.submaps)
}

// Add puts sm in the buffer at pos, replacing whatever was there
func (b *Buffer) Add(pos world.Tripoint, sm *submap.Submap) {
	b.submaps[pos] = sm
}

// Lookup returns the submap at pos, loading it from the store if it is not in
// memory. It wraps persistence.ErrNotFound when the submap exists nowhere.
func (b *Buffer) Lookup(ctx context.Context, pos world.Tripoint) (*submap.Submap, error) {
	if sm, ok := b.submaps[pos]; ok {
		return sm, nil
	}
	sm, err := b.store.LoadSubmap(ctx, pos)
	if err != nil {
		return nil, fmt.Errorf("lookup %v: %w", pos, err)
	}
	b.submaps[pos] = sm
	return sm, nil
}

// Positions returns the positions in memory ordered by level, then row, then column
func (b *Buffer) Positions() []world.Tripoint {
	out := make([]world.Tripoint, 0, len(b.submaps))
	for pos := range b.submaps {
		out = append(out, pos)
	}
	slices.SortFunc(out, func(a, c world.Tripoint) int {
		return cmp.Or(cmp.Compare(a.Z, c.Z), cmp.Compare(a.Y, c.Y), cmp.Compare(a.X, c.X))
	})
	return out
}

// Save writes every submap in memory to the store in one batch
func (b *Buffer) Save(ctx context.Context) error {
	if err := b.store.SaveSubmaps(ctx, b.submaps); err != nil {
		return fmt.Errorf("save %d submaps: %w", len(b.submaps), err)
	}
	return nil
}

// Evict saves the submap at pos and drops it from memory. Evicting a position
// that is not in memory does nothing.
func (b *Buffer) Evict(ctx context.Context, pos world.Tripoint) error {
	sm, ok := b.submaps[pos]
	if !ok {
		return nil
	}
	if err := b.store.SaveSubmap(ctx, pos, sm); err != nil {
		return fmt.Errorf("evict %v: %w", pos, err)
	}
	delete(b.submaps, pos)
	return nil
}

// EvictOlder evicts every submap last touched before turn and returns how many were evicted.
// The evicted submaps are saved in one batch.
func (b *Buffer) EvictOlder(ctx context.Context, turn calendar.Point) (int, error) {
	old := map[world.Tripoint]*submap.Submap{}
	for pos, sm := range b.submaps {
		if sm.TurnLastTouched() < turn {
			old[pos] = sm
		}
	}
	if len(old) == 0 {
		return 0, nil
	}
	if err := b.store.SaveSubmaps(ctx, old); err != nil {
		return 0, fmt.Errorf("evict %d submaps: %w", len(old), err)
	}
	for pos := range old {
		delete(b.submaps, pos)
	}
	return len(old), nil
}
