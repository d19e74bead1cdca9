package iexamine

import (
	"strings"
	"testing"

	"wasteland/pkg/engine/data"
	"wasteland/pkg/engine/debug"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/mapdata"
	"wasteland/pkg/game/submap"
	"wasteland/pkg/game/trap"
)

const fixture = `[
	{"type": "terrain", "id": "t_floor", "name": "floor", "move_cost": 2, "flags": ["TRANSPARENT"]},
	{"type": "terrain", "id": "t_pit", "name": "pit", "move_cost": 10, "transforms_into": "t_pit_covered",
	 "examine_action": "pit", "flags": ["TRANSPARENT"]},
	{"type": "terrain", "id": "t_pit_covered", "name": "covered pit", "move_cost": 2, "transforms_into": "t_pit",
	 "examine_action": "pit_covered", "flags": ["TRANSPARENT"]},
	{"type": "terrain", "id": "t_card_science", "name": "card reader", "move_cost": 0, "examine_action": "cardreader"},
	{"type": "terrain", "id": "t_door_metal_locked", "name": "locked metal door", "move_cost": 0,
	 "open": "t_door_metal_o", "flags": ["DOOR"]},
	{"type": "terrain", "id": "t_door_metal_o", "name": "open metal door", "move_cost": 2, "flags": ["DOOR", "TRANSPARENT"]},
	{"type": "terrain", "id": "t_window_curtains", "name": "window with curtains", "move_cost": 0,
	 "close": "t_window_no_curtains", "examine_action": "curtains"},
	{"type": "terrain", "id": "t_window_no_curtains", "name": "window", "move_cost": 0,
	 "open": "t_window_curtains", "examine_action": "curtains", "flags": ["TRANSPARENT"]},
	{"type": "terrain", "id": "t_shrub_blueberry", "name": "blueberry bush", "move_cost": 8,
	 "harvest_item": "blueberries", "transforms_into": "t_shrub", "examine_action": "harvest_ter"},
	{"type": "terrain", "id": "t_shrub", "name": "shrub", "move_cost": 8},
	{"type": "terrain", "id": "t_sign", "name": "sign", "move_cost": 2, "examine_action": "sign"},
	{"type": "furniture", "id": "f_rubble", "name": "rubble", "move_cost": 6, "examine_action": "rubble"},
	{"type": "furniture", "id": "f_vending_c", "name": "vending machine", "move_cost": -1,
	 "harvest_item": "cola", "examine_action": "vending"},
	{"type": "furniture", "id": "f_crate_c", "name": "closed crate", "move_cost": -1, "open": "f_crate_o",
	 "examine_action": "locked_object"},
	{"type": "furniture", "id": "f_crate_o", "name": "open crate", "move_cost": -1},
	{"type": "furniture", "id": "f_chair", "name": "chair", "move_cost": 1}
]`

type fakeActor struct {
	items    map[string]int
	messages []string
}

func newActor(items ...string) *fakeActor {
	a := &fakeActor{items: map[string]int{}}
	for _, it := range items {
		a.items[it]++
	}
	return a
}

func (a *fakeActor) Name() string          { return "tester" }
func (a *fakeActor) AddMessage(msg string) { a.messages = append(a.messages, msg) }
func (a *fakeActor) HasItem(item string) bool {
	return a.items[item] > 0
}
func (a *fakeActor) UseItem(item string) bool {
	if a.items[item] == 0 {
		return false
	}
	a.items[item]--
	return true
}
func (a *fakeActor) ReceiveItem(item string, count int) { a.items[item] += count }

func (a *fakeActor) lastMessage() string {
	if len(a.messages) == 0 {
		return ""
	}
	return a.messages[len(a.messages)-1]
}

func setup(t *testing.T) *submap.Submap {
	t.Helper()
	trap.Reset()
	mapdata.Reset()
	l := data.NewLoader()
	mapdata.Register(l)
	if err := l.LoadBytes("fixture.json", []byte(fixture)); err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}
	trap.Finalize()
	stop := debug.Capture()
	mapdata.Finalize()
	stop()
	return submap.New(mapdata.TerLookup("t_floor"))
}

func TestBehaviorsCoverEveryAction(t *testing.T) {
	for i, b := range behaviors {
		if b == nil {
			t.Errorf("examine action %s has no behavior", mapdata.ExamineAction(i))
		}
	}
}

func TestExamine_None(t *testing.T) {
	m := setup(t)
	a := newActor()
	m.SetFurn(world.Pt(1, 1), mapdata.FurnLookup("f_chair"))
	if Examine(a, m, world.Pt(1, 1)) {
		t.Error("examining a chair changed something")
	}
	if got := a.lastMessage(); got != "That is a chair." {
		t.Errorf("message = %q, want \"That is a chair.\"", got)
	}
}

func TestExamine_PitCoverAndUncover(t *testing.T) {
	m := setup(t)
	p := world.Pt(2, 2)
	m.SetTer(p, mapdata.TerLookup("t_pit"))

	a := newActor()
	if Examine(a, m, p) {
		t.Error("covering a pit without a plank succeeded")
	}
	a.ReceiveItem(ItemPlank, 1)
	if !Examine(a, m, p) {
		t.Fatal("covering a pit with a plank failed")
	}
	if m.Ter(p).ID() != "t_pit_covered" || a.HasItem(ItemPlank) {
		t.Errorf("after covering terrain = %s, plank kept = %v", m.Ter(p).ID(), a.HasItem(ItemPlank))
	}
	if !Examine(a, m, p) || m.Ter(p).ID() != "t_pit" || !a.HasItem(ItemPlank) {
		t.Errorf("uncovering left terrain %s, plank returned = %v", m.Ter(p).ID(), a.HasItem(ItemPlank))
	}
}

func TestExamine_Cardreader(t *testing.T) {
	m := setup(t)
	reader, door := world.Pt(5, 5), world.Pt(6, 5)
	m.SetTer(reader, mapdata.TerLookup("t_card_science"))
	m.SetTer(door, mapdata.TerLookup("t_door_metal_locked"))

	a := newActor(ItemIDCard)
	if !Examine(a, m, reader) {
		t.Fatal("card reader did nothing")
	}
	if m.Ter(door).ID() != "t_door_metal_o" {
		t.Errorf("door = %s, want t_door_metal_o", m.Ter(door).ID())
	}
	if a.HasItem(ItemIDCard) {
		t.Error("ID card was not used up")
	}
}

func TestExamine_CardreaderAtEdge(t *testing.T) {
	m := setup(t)
	corner := world.Pt(0, 0)
	m.SetTer(corner, mapdata.TerLookup("t_card_science"))
	a := newActor(ItemIDCard)
	if Examine(a, m, corner) {
		t.Error("card reader with no doors reported a change")
	}
	if !a.HasItem(ItemIDCard) {
		t.Error("ID card used without opening anything")
	}
}

func TestExamine_FurnitureBeforeTerrain(t *testing.T) {
	m := setup(t)
	p := world.Pt(3, 3)
	m.SetTer(p, mapdata.TerLookup("t_pit"))
	m.SetFurn(p, mapdata.FurnLookup("f_rubble"))
	if got := ActionAt(m, p); got != mapdata.ExamineRubble {
		t.Errorf("ActionAt = %s, want rubble", got)
	}
	a := newActor(ItemShovel)
	if !Examine(a, m, p) || !m.Furn(p).IsNull() {
		t.Error("shovel did not clear the rubble")
	}
	if m.Ter(p).ID() != "t_pit" {
		t.Errorf("terrain under rubble changed to %s", m.Ter(p).ID())
	}
}

func TestExamine_Vending(t *testing.T) {
	m := setup(t)
	p := world.Pt(4, 4)
	m.SetFurn(p, mapdata.FurnLookup("f_vending_c"))
	a := newActor()
	if Examine(a, m, p) {
		t.Error("vending without a cash card succeeded")
	}
	a.ReceiveItem(ItemCashCard, 1)
	if !Examine(a, m, p) || !a.HasItem("cola") {
		t.Errorf("vending with a cash card failed: %v", a.messages)
	}
}

func TestExamine_Curtains(t *testing.T) {
	m := setup(t)
	p := world.Pt(7, 7)
	m.SetTer(p, mapdata.TerLookup("t_window_curtains"))
	a := newActor()
	Examine(a, m, p)
	if m.Ter(p).ID() != "t_window_no_curtains" {
		t.Errorf("after drawing terrain = %s", m.Ter(p).ID())
	}
	Examine(a, m, p)
	if m.Ter(p).ID() != "t_window_curtains" {
		t.Errorf("after opening terrain = %s", m.Ter(p).ID())
	}
}

func TestExamine_HarvestAndSign(t *testing.T) {
	m := setup(t)
	bush := world.Pt(8, 8)
	m.SetTer(bush, mapdata.TerLookup("t_shrub_blueberry"))
	a := newActor()
	if !Examine(a, m, bush) || !a.HasItem("blueberries") || m.Ter(bush).ID() != "t_shrub" {
		t.Errorf("harvest failed: terrain %s, messages %v", m.Ter(bush).ID(), a.messages)
	}

	sign := world.Pt(9, 9)
	m.SetTer(sign, mapdata.TerLookup("t_sign"))
	m.SetGraffiti(sign, "Keep out")
	Examine(a, m, sign)
	if !strings.Contains(a.lastMessage(), "Keep out") {
		t.Errorf("sign message = %q, want the graffiti", a.lastMessage())
	}
}

func TestExamine_LockedObject(t *testing.T) {
	m := setup(t)
	p := world.Pt(10, 10)
	m.SetFurn(p, mapdata.FurnLookup("f_crate_c"))
	a := newActor()
	if Examine(a, m, p) {
		t.Error("opened a locked crate without a crowbar")
	}
	a.ReceiveItem(ItemCrowbar, 1)
	if !Examine(a, m, p) || m.Furn(p).ID() != "f_crate_o" {
		t.Errorf("crowbar left furniture %s", m.Furn(p).ID())
	}
	if !a.HasItem(ItemCrowbar) {
		t.Error("crowbar was used up")
	}
}
