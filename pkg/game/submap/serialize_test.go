package submap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasteland/pkg/engine/debug"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/field"
	"wasteland/pkg/game/mapdata"
)

func TestSerialize_RoundTrip(t *testing.T) {
	loadFixture(t)
	s := New(ter(t, "t_dirt"))
	for y := range SEEY {
		s.SetTer(world.Pt(0, y), ter(t, "t_wall"))
	}
	s.SetFurn(world.Pt(3, 3), furn(t, "f_chair"))
	s.SetTrap(world.Pt(4, 4), trp(t, "tr_beartrap"))
	s.AddField(world.Pt(5, 5), field.Fire, 2, 17)
	s.AddField(world.Pt(5, 5), field.Smoke, 1, 0)
	s.AddItem(world.Pt(6, 6), Item{Type: "lit_torch", Charges: 20, Active: true})
	s.SetRadiation(world.Pt(7, 7), 15)
	s.SetGraffiti(world.Pt(8, 8), "no entry")
	s.AddSpawn(Spawn{Monster: "mon_dog", Count: 2, Pos: world.Pt(9, 9)})
	h := s.AddVehicle(&Vehicle{Name: "car", Pos: world.Pt(2, 10), Facing: world.South, Parts: []string{"frame", "wheel"}})
	s.SetComputer(&Computer{Name: "terminal", Pos: world.Pt(1, 1), Security: 3, Options: []string{"unlock"}})
	s.SetCamp(&BaseCamp{Name: "outpost", Pos: world.Pt(10, 10)})
	s.Touch(1234)

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var got Submap
	require.NoError(t, json.Unmarshal(b, &got))

	EachPoint(func(p world.Point) {
		assert.Equal(t, s.Ter(p), got.Ter(p), "terrain at %v", p)
		assert.Equal(t, s.Furn(p), got.Furn(p), "furniture at %v", p)
		assert.Equal(t, s.Trap(p), got.Trap(p), "trap at %v", p)
		assert.Equal(t, s.Radiation(p), got.Radiation(p), "radiation at %v", p)
		assert.Equal(t, s.Items(p), got.Items(p), "items at %v", p)
		assert.Equal(t, s.Graffiti(p), got.Graffiti(p), "graffiti at %v", p)
	})

	fire := got.Field(world.Pt(5, 5)).Find(field.Fire)
	require.NotNil(t, fire)
	assert.Equal(t, 2, fire.Intensity())
	assert.EqualValues(t, 17, fire.Age())
	assert.NotNil(t, got.Field(world.Pt(5, 5)).Find(field.Smoke))

	assert.Equal(t, 2, got.FieldCount())
	assert.NoError(t, got.CheckFieldCount())
	assert.Equal(t, 1, got.ActiveItemCount())
	assert.EqualValues(t, 1234, got.TurnLastTouched())
	assert.Equal(t, s.Spawns(), got.Spawns())
	require.NotNil(t, got.Vehicle(h))
	assert.Equal(t, []string{"frame", "wheel"}, got.Vehicle(h).Parts)
	assert.Equal(t, s.Computer(), got.Computer())
	assert.Equal(t, s.Camp(), got.Camp())

	got.AddField(world.Pt(0, 0), field.Blood, 1, 0)
	assert.Equal(t, 3, got.FieldCount(), "loaded submap fields stay bound to its counter")
}

func TestSerialize_TerrainIsRunLengthEncoded(t *testing.T) {
	loadFixture(t)
	s := New(ter(t, "t_dirt"))
	s.SetTer(world.Pt(SEEX-1, SEEY-1), ter(t, "t_wall"))

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var raw struct {
		Terrain   [][]any `json:"terrain"`
		Radiation [][]any `json:"radiation"`
	}
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, [][]any{{"t_dirt", float64(SEEX*SEEY - 1)}, {"t_wall", float64(1)}}, raw.Terrain)
	assert.Equal(t, [][]any{{float64(0), float64(SEEX * SEEY)}}, raw.Radiation)
}

func TestSerialize_UnknownIDsBecomeNull(t *testing.T) {
	loadFixture(t)
	in := `{"version": 1, "terrain": [["t_dirt", 143], ["t_gone", 1]],
		"furniture": [{"x": 1, "y": 1, "id": "f_gone"}],
		"fields": [{"x": 2, "y": 2, "fields": [{"type": "fd_gone", "intensity": 1, "age": 0}]}]}`

	stop := debug.Capture()
	var s Submap
	err := json.Unmarshal([]byte(in), &s)
	msgs := stop()

	require.NoError(t, err)
	assert.Equal(t, mapdata.TerNull, s.Ter(world.Pt(SEEX-1, SEEY-1)))
	assert.Equal(t, mapdata.FurnNull, s.Furn(world.Pt(1, 1)))
	assert.Equal(t, 0, s.FieldCount())
	assert.Len(t, msgs, 3)
}

func TestSerialize_Errors(t *testing.T) {
	loadFixture(t)
	tests := map[string]string{
		"short terrain":   `{"version": 1, "terrain": [["t_dirt", 10]]}`,
		"long terrain":    `{"version": 1, "terrain": [["t_dirt", 145]]}`,
		"empty run":       `{"version": 1, "terrain": [["t_dirt", 0], ["t_dirt", 144]]}`,
		"bad run":         `{"version": 1, "terrain": [["t_dirt"]]}`,
		"newer version":   `{"version": 99, "terrain": [["t_dirt", 144]]}`,
		"furniture range": `{"version": 1, "terrain": [["t_dirt", 144]], "furniture": [{"x": 12, "y": 0, "id": "f_chair"}]}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			var s Submap
			assert.Error(t, json.Unmarshal([]byte(in), &s))
		})
	}
}

func TestSerialize_ErrorLeavesSubmapUnchanged(t *testing.T) {
	loadFixture(t)
	s := New(ter(t, "t_wall"))
	s.AddField(world.Pt(1, 1), field.Fire, 1, 0)
	bad := `{"version": 1, "terrain": [["t_dirt", 144]], "furniture": [{"x": 0, "y": 0, "id": "f_chair"}],
		"graffiti": [{"x": 40, "y": 0, "text": "x"}]}`

	require.Error(t, json.Unmarshal([]byte(bad), s))
	assert.Equal(t, ter(t, "t_wall"), s.Ter(world.Pt(5, 5)))
	assert.Equal(t, mapdata.FurnNull, s.Furn(world.Pt(0, 0)))
	assert.Equal(t, 1, s.FieldCount())

	s.AddField(world.Pt(2, 2), field.Smoke, 1, 0)
	assert.Equal(t, 2, s.FieldCount())
	assert.NoError(t, s.CheckFieldCount())
}

func TestSerialize_UnmarshalIntoUsedSubmap(t *testing.T) {
	loadFixture(t)
	src := New(ter(t, "t_dirt"))
	src.AddField(world.Pt(3, 3), field.Smoke, 2, 0)
	b, err := json.Marshal(src)
	require.NoError(t, err)

	dst := New(ter(t, "t_wall"))
	dst.AddField(world.Pt(0, 0), field.Fire, 1, 0)
	dst.AddField(world.Pt(1, 0), field.Fire, 1, 0)
	require.NoError(t, json.Unmarshal(b, dst))
	assert.Equal(t, 1, dst.FieldCount())
	dst.AddField(world.Pt(4, 4), field.Blood, 1, 0)
	assert.Equal(t, 2, dst.FieldCount())
	assert.NoError(t, dst.CheckFieldCount())
}
