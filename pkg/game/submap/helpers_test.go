package submap

import (
	"testing"

	"wasteland/pkg/engine/data"
	"wasteland/pkg/engine/debug"
	"wasteland/pkg/game/field"
	"wasteland/pkg/game/mapdata"
	"wasteland/pkg/game/trap"
)

const fixture = `[
	{"type": "trap", "id": "tr_beartrap", "name": "bear trap", "visibility": 2},
	{"type": "trap", "id": "tr_rollmat", "name": "roll mat", "benign": true},
	{"type": "terrain", "id": "t_dirt", "name": "dirt", "symbol": ".", "color": "brown", "move_cost": 2,
	 "flags": ["TRANSPARENT", "DIGGABLE"]},
	{"type": "terrain", "id": "t_rubble", "name": "rubble", "symbol": "^", "move_cost": 4, "flags": ["TRANSPARENT"]},
	{"type": "terrain", "id": "t_wall", "name": "wall", "symbol": "#", "move_cost": 0, "flags": ["WALL"],
	 "bash": {"str_min": 30, "str_max": 30, "ter_set": "t_rubble", "items": [{"item": "rock", "count": [2, 2]}]}},
	{"type": "terrain", "id": "t_vent", "name": "vent", "symbol": "=", "move_cost": 0, "flags": ["PERMEABLE"]},
	{"type": "terrain", "id": "t_sealed", "name": "sealed hatch", "symbol": "0", "move_cost": 2,
	 "flags": ["TRANSPARENT", "SEALED"]},
	{"type": "furniture", "id": "f_chair", "name": "chair", "symbol": "#", "move_cost": 1, "flags": ["TRANSPARENT"],
	 "bash": {"str_min": 5, "str_max": 5, "items": [{"item": "splinter"}]}},
	{"type": "furniture", "id": "f_locker", "name": "locker", "symbol": "{", "move_cost": -10},
	{"type": "field_type", "id": "fd_fire", "priority": 4, "half_life": 10,
	 "intensity_levels": [{"name": "small fire", "dangerous": true, "move_cost": 2}, {"name": "fire", "move_cost": 4},
	 {"name": "raging fire", "move_cost": 8, "transparent": false, "light_emitted": 40}]},
	{"type": "field_type", "id": "fd_smoke", "priority": 8, "phase": "gas", "percent_spread": 100,
	 "intensity_levels": [{"name": "thin smoke"}, {"name": "smoke"}, {"name": "thick smoke", "transparent": false}]},
	{"type": "field_type", "id": "fd_blood", "priority": 1, "phase": "liquid", "half_life": "2 minutes",
	 "accelerated_decay": true, "intensity_levels": [{"name": "blood splatter"}, {"name": "blood stain"},
	 {"name": "puddle of blood"}]}
]`

// loadFixture resets every table and loads the test data.
func loadFixture(t *testing.T) {
	t.Helper()
	trap.Reset()
	field.Reset()
	mapdata.Reset()
	l := data.NewLoader()
	trap.Register(l)
	field.Register(l)
	mapdata.Register(l)
	if err := l.LoadBytes("fixture.json", []byte(fixture)); err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}
	stop := debug.Capture()
	trap.Finalize()
	field.Finalize()
	mapdata.Finalize()
	if errs := mapdata.CheckConsistency(); len(errs) != 0 {
		t.Fatalf("CheckConsistency() = %v", errs)
	}
	stop()
}

func ter(t *testing.T, id string) mapdata.TerID {
	t.Helper()
	v, ok := mapdata.TerFromString(id)
	if !ok {
		t.Fatalf("terrain %q not loaded", id)
	}
	return v
}

func furn(t *testing.T, id string) mapdata.FurnID {
	t.Helper()
	v, ok := mapdata.FurnFromString(id)
	if !ok {
		t.Fatalf("furniture %q not loaded", id)
	}
	return v
}

func trp(t *testing.T, id string) trap.ID {
	t.Helper()
	v, ok := trap.FromString(id)
	if !ok {
		t.Fatalf("trap %q not loaded", id)
	}
	return v
}

// checkCount fails the test if the submap's field counter drifted from its tiles.
func checkCount(t *testing.T, s *Submap) {
	t.Helper()
	if err := s.CheckFieldCount(); err != nil {
		t.Error(err)
	}
}
