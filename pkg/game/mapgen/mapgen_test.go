package mapgen

import (
	"testing"

	"wasteland/pkg/engine/data"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/mapdata"
	"wasteland/pkg/game/submap"
	"wasteland/pkg/game/trap"
)

const fixture = `[
	{"type": "terrain", "id": "t_water_sh", "name": "shallow water", "move_cost": 5, "flags": ["TRANSPARENT"]},
	{"type": "terrain", "id": "t_grass", "name": "grass", "move_cost": 2, "flags": ["TRANSPARENT"]},
	{"type": "terrain", "id": "t_dirt", "name": "dirt", "move_cost": 2, "flags": ["TRANSPARENT"]},
	{"type": "terrain", "id": "t_tree", "name": "tree", "move_cost": 0},
	{"type": "terrain", "id": "t_rock", "name": "solid rock", "move_cost": 0},
	{"type": "terrain", "id": "t_open_air", "name": "open air", "move_cost": 2, "flags": ["TRANSPARENT"]},
	{"type": "furniture", "id": "f_boulder_small", "name": "small boulder", "move_cost": 3},
	{"type": "furniture", "id": "f_bush", "name": "bush", "move_cost": 2, "flags": ["TRANSPARENT"]}
]`

func setup(t *testing.T) {
	t.Helper()
	trap.Reset()
	mapdata.Reset()
	l := data.NewLoader()
	mapdata.Register(l)
	if err := l.LoadBytes("fixture.json", []byte(fixture)); err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}
	trap.Finalize()
	mapdata.Finalize()
}

func sameSubmap(a, b *submap.Submap) bool {
	same := true
	submap.EachPoint(func(p world.Point) {
		if a.Ter(p) != b.Ter(p) || a.Furn(p) != b.Furn(p) {
			same = false
		}
	})
	return same
}

func TestGenerate_Deterministic(t *testing.T) {
	setup(t)
	pos := world.Tripoint{X: 3, Y: -2}
	a := New(42).Generate(pos)
	b := New(42).Generate(pos)
	if !sameSubmap(a, b) {
		t.Error("same seed and position gave different submaps")
	}
	if sameSubmap(a, New(43).Generate(pos)) && sameSubmap(a, New(42).Generate(world.Tripoint{X: 9, Y: 9})) {
		t.Error("seed and position have no effect")
	}
}

func TestGenerate_UsesOnlyBandTerrain(t *testing.T) {
	setup(t)
	allowed := map[string]bool{"t_water_sh": true, "t_grass": true, "t_dirt": true, "t_tree": true}
	g := New(7)
	for x := range 4 {
		sm := g.Generate(world.Tripoint{X: x})
		submap.EachPoint(func(p world.Point) {
			if id := sm.Ter(p).ID(); !allowed[id] {
				t.Fatalf("terrain %s at %v is not from a band", id, p)
			}
			if f := sm.Furn(p); !f.IsNull() {
				on := sm.Ter(p).ID()
				if (f.ID() == "f_boulder_small" && on != "t_dirt") || (f.ID() == "f_bush" && on != "t_grass") {
					t.Errorf("%s scattered on %s", f.ID(), on)
				}
			}
		})
	}
}

func TestGenerate_OtherLevels(t *testing.T) {
	setup(t)
	g := New(1)
	tests := []struct {
		z    int
		want string
	}{
		{-1, UndergroundTer},
		{2, SkyTer},
	}
	for _, tt := range tests {
		sm := g.Generate(world.Tripoint{Z: tt.z})
		if !sm.IsUniform() || sm.Ter(world.Pt(0, 0)).ID() != tt.want {
			t.Errorf("level %d filled with %s, want uniform %s", tt.z, sm.Ter(world.Pt(0, 0)).ID(), tt.want)
		}
	}
}
