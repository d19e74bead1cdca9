package mapgen

import (
	"testing"

	"wasteland/pkg/engine/data"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/mapdata"
	"wasteland/pkg/game/submap"
	"wasteland/pkg/game/trap"
)

const buildingFixture = `[
	{"type": "terrain", "id": "t_wall", "name": "wall", "move_cost": 0},
	{"type": "terrain", "id": "t_floor", "name": "floor", "move_cost": 2, "flags": ["TRANSPARENT"]},
	{"type": "terrain", "id": "t_door_c", "name": "closed door", "move_cost": 0, "flags": ["DOOR"]},
	{"type": "furniture", "id": "f_chair", "name": "chair", "move_cost": 1},
	{"type": "furniture", "id": "f_locker", "name": "locker", "move_cost": -1},
	{"type": "furniture", "id": "f_crate_c", "name": "crate", "move_cost": -1},
	{"type": "furniture", "id": "f_toilet", "name": "toilet", "move_cost": 2}
]`

func setupBuilding(t *testing.T) {
	t.Helper()
	trap.Reset()
	mapdata.Reset()
	l := data.NewLoader()
	mapdata.Register(l)
	if err := l.LoadBytes("building.json", []byte(buildingFixture)); err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}
	trap.Finalize()
	mapdata.Finalize()
}

// walkable treats doors as open
func walkable(sm *submap.Submap, p world.Point) bool {
	if sm.Ter(p).HasFlagBit(mapdata.FlagDoor) {
		return true
	}
	return sm.MoveCost(p) > 0
}

// countReachable returns the number of walkable cells reachable from start via N/E/S/W
func countReachable(sm *submap.Submap, start world.Point) int {
	visited := map[world.Point]bool{start: true}
	queue := []world.Point{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range []world.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			n := c.Add(d)
			if sm.InBounds(n) && !visited[n] && walkable(sm, n) {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

func TestGenerateBuilding_WalledAndConnected(t *testing.T) {
	setupBuilding(t)
	for seed := int64(1); seed <= 20; seed++ {
		sm := New(seed).GenerateBuilding(world.Tripoint{X: int(seed)})

		doors, walkableCells := 0, 0
		var start world.Point
		submap.EachPoint(func(p world.Point) {
			edge := p.X == 0 || p.Y == 0 || p.X == submap.SEEX-1 || p.Y == submap.SEEY-1
			id := sm.Ter(p).ID()
			if edge && id != WallTer && id != DoorTer {
				t.Errorf("seed %d: perimeter %v is %s", seed, p, id)
			}
			if id == DoorTer {
				doors++
			}
			if walkable(sm, p) {
				walkableCells++
				start = p
			}
		})
		if doors < 2 {
			t.Errorf("seed %d: %d doors, want a front door and at least one inside", seed, doors)
		}
		if got := countReachable(sm, start); got != walkableCells {
			t.Errorf("seed %d: %d of %d walkable cells reachable", seed, got, walkableCells)
		}
	}
}

func TestGenerateBuilding_Deterministic(t *testing.T) {
	setupBuilding(t)
	pos := world.Tripoint{X: 4, Y: 4}
	if !sameSubmap(New(9).GenerateBuilding(pos), New(9).GenerateBuilding(pos)) {
		t.Error("same seed and position gave different buildings")
	}
}

func TestGenerateBuilding_Furnished(t *testing.T) {
	setupBuilding(t)
	sm := New(3).GenerateBuilding(world.Tripoint{})
	pieces := 0
	submap.EachPoint(func(p world.Point) {
		if !sm.Furn(p).IsNull() {
			pieces++
			if sm.Ter(p).ID() != FloorTer {
				t.Errorf("furniture %s on %s", sm.Furn(p).ID(), sm.Ter(p).ID())
			}
		}
	})
	if pieces == 0 {
		t.Error("building has no furniture")
	}
}
