package mapbuffer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasteland/pkg/engine/calendar"
	"wasteland/pkg/engine/data"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/field"
	"wasteland/pkg/game/mapdata"
	"wasteland/pkg/game/persistence"
	"wasteland/pkg/game/submap"
	"wasteland/pkg/game/trap"
)

func setup(t *testing.T) (*Buffer, persistence.Storage) {
	t.Helper()
	trap.Reset()
	field.Reset()
	mapdata.Reset()
	l := data.NewLoader()
	mapdata.Register(l)
	require.NoError(t, l.LoadBytes("t.json", []byte(`[
		{"type": "terrain", "id": "t_grass", "name": "grass", "move_cost": 2},
		{"type": "terrain", "id": "t_water", "name": "water", "move_cost": 8}
	]`)))
	trap.Finalize()
	field.Finalize()
	mapdata.Finalize()

	store, err := persistence.NewJSONStore(filepath.Join(t.TempDir(), "world.json"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store), store
}

func TestLookup_InMemoryAndFromStore(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()
	pos := world.Tripoint{X: 1, Y: 1}

	_, err := b.Lookup(ctx, pos)
	assert.ErrorIs(t, err, persistence.ErrNotFound)

	sm := submap.New(mapdata.TerLookup("t_water"))
	require.NoError(t, store.SaveSubmap(ctx, pos, sm))

	got, err := b.Lookup(ctx, pos)
	require.NoError(t, err)
	assert.Equal(t, "t_water", got.Ter(world.Pt(0, 0)).ID())
	assert.Equal(t, 1, b.Len())

	again, err := b.Lookup(ctx, pos)
	require.NoError(t, err)
	assert.Same(t, got, again)
}

func TestEvict(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()
	pos := world.Tripoint{X: 0, Y: 0, Z: -1}
	sm := submap.New(mapdata.TerLookup("t_grass"))
	b.Add(pos, sm)

	require.NoError(t, b.Evict(ctx, pos))
	assert.Equal(t, 0, b.Len())
	_, err := store.LoadSubmap(ctx, pos)
	assert.NoError(t, err)

	assert.NoError(t, b.Evict(ctx, pos))
}

func TestEvictOlder(t *testing.T) {
	b, _ := setup(t)
	ctx := context.Background()
	for i, turn := range []int{5, 50, 500} {
		sm := submap.New(mapdata.TerLookup("t_grass"))
		sm.Touch(calendar.Point(turn))
		b.Add(world.Tripoint{X: i}, sm)
	}

	n, err := b.EvictOlder(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []world.Tripoint{{X: 2}}, b.Positions())
}

func TestSaveAndPositions(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()
	positions := []world.Tripoint{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 5, Y: 5, Z: -1}}
	for _, pos := range positions {
		b.Add(pos, submap.New(mapdata.TerLookup("t_grass")))
	}
	assert.Equal(t, []world.Tripoint{{X: 5, Y: 5, Z: -1}, {X: 2, Y: 0}, {X: 0, Y: 1}}, b.Positions())

	require.NoError(t, b.Save(ctx))
	for _, pos := range positions {
		_, err := store.LoadSubmap(ctx, pos)
		assert.NoError(t, err, "submap %v", pos)
	}
}

// countingStore records how the buffer writes to its store
type countingStore struct {
	persistence.Storage
	single, batches int
}

func (c *countingStore) SaveSubmap(ctx context.Context, pos world.Tripoint, sm *submap.Submap) error {
	c.single++
	return c.Storage.SaveSubmap(ctx, pos, sm)
}

func (c *countingStore) SaveSubmaps(ctx context.Context, submaps map[world.Tripoint]*submap.Submap) error {
	c.batches++
	return c.Storage.SaveSubmaps(ctx, submaps)
}

func TestSave_WritesOneBatch(t *testing.T) {
	_, store := setup(t)
	counting := &countingStore{Storage: store}
	b := New(counting)
	ctx := context.Background()
	for x := range 10 {
		b.Add(world.Tripoint{X: x}, submap.New(mapdata.TerLookup("t_grass")))
	}

	require.NoError(t, b.Save(ctx))
	assert.Equal(t, 1, counting.batches)
	assert.Equal(t, 0, counting.single)
	for x := range 10 {
		_, err := store.LoadSubmap(ctx, world.Tripoint{X: x})
		assert.NoError(t, err)
	}
}
