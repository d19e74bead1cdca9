// Package iexamine implements what happens when a character examines a tile.
//
// Terrain and furniture name their behavior with a mapdata.ExamineAction resolved
// at load time. Examine picks the behavior of the furniture if there is any, else
// of the terrain, and runs it from a table indexed by the action.
package iexamine

import (
	"github.com/leonelquinteros/gotext"

	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/mapdata"
)

// Actor is the character doing the examining
type Actor interface {
	Name() string
	AddMessage(msg string)
	HasItem(item string) bool
	// UseItem consumes one of the item and reports whether the actor had it
	UseItem(item string) bool
	ReceiveItem(item string, count int)
}

// Tiles is the map around the examined tile
type Tiles interface {
	InBounds(p world.Point) bool
	Ter(p world.Point) mapdata.TerID
	SetTer(p world.Point, t mapdata.TerID)
	Furn(p world.Point) mapdata.FurnID
	SetFurn(p world.Point, f mapdata.FurnID)
	Graffiti(p world.Point) string
}

// Items the behaviors look for
const (
	ItemShovel       = "shovel"
	ItemPlank        = "2x4"
	ItemIDCard       = "id_science"
	ItemCashCard     = "cash_card"
	ItemContainer    = "jug_plastic"
	ItemWater        = "water"
	ItemCrowbar      = "crowbar"
	ItemJerrycan     = "jerrycan"
	ItemGasoline     = "gasoline"
	ItemPetrifiedEye = "petrified_eye"
)

type behavior func(a Actor, m Tiles, p world.Point) bool

var behaviors = [mapdata.NumExamineActions]behavior{
	mapdata.ExamineNone:           none,
	mapdata.ExamineRubble:         rubble,
	mapdata.ExaminePit:            pit,
	mapdata.ExaminePitCovered:     pitCovered,
	mapdata.ExamineCardreader:     cardreader,
	mapdata.ExamineVending:        vending,
	mapdata.ExamineWaterSource:    waterSource,
	mapdata.ExamineHarvestTer:     harvestTer,
	mapdata.ExamineHarvestFurn:    harvestFurn,
	mapdata.ExamineSign:           sign,
	mapdata.ExamineCurtains:       curtains,
	mapdata.ExamineLockedObject:   lockedObject,
	mapdata.ExamineFswitch:        fswitch,
	mapdata.ExamineDoorPeephole:   doorPeephole,
	mapdata.ExamineGaspump:        gaspump,
	mapdata.ExamineToilet:         toilet,
	mapdata.ExaminePedestalWyrm:   pedestalWyrm,
	mapdata.ExaminePedestalTemple: pedestalTemple,
}

// ActionAt returns the examine action of the tile at p
func ActionAt(m Tiles, p world.Point) mapdata.ExamineAction {
	if f := m.Furn(p); !f.IsNull() {
		return f.Obj().Examine
	}
	return m.Ter(p).Obj().Examine
}

// Examine runs the examine action of the tile at p for a and reports whether the
// map or the actor changed.
func Examine(a Actor, m Tiles, p world.Point) bool {
	act := ActionAt(m, p)
	if act >= mapdata.NumExamineActions {
		act = mapdata.ExamineNone
	}
	return behaviors[act](a, m, p)
}

func say(a Actor, format string, vars ...any) {
	a.AddMessage(gotext.Get(format, vars...))
}

// tileName is the name of the furniture at p, or of the terrain without furniture
func tileName(m Tiles, p world.Point) string {
	if f := m.Furn(p); !f.IsNull() {
		return f.Obj().DisplayName()
	}
	return m.Ter(p).Obj().DisplayName()
}

func none(a Actor, m Tiles, p world.Point) bool {
	say(a, "That is a %s.", tileName(m, p))
	return false
}

func rubble(a Actor, m Tiles, p world.Point) bool {
	if !a.HasItem(ItemShovel) {
		say(a, "If only you had a shovel...")
		return false
	}
	name := tileName(m, p)
	if f := m.Furn(p); !f.IsNull() {
		m.SetFurn(p, mapdata.FurnNull)
	} else if next := m.Ter(p).Obj().TransformsIntoID(); !next.IsNull() {
		m.SetTer(p, next)
	}
	say(a, "You clear up the %s.", name)
	return true
}

func pit(a Actor, m Tiles, p world.Point) bool {
	next := m.Ter(p).Obj().TransformsIntoID()
	if next.IsNull() {
		return none(a, m, p)
	}
	if !a.UseItem(ItemPlank) {
		say(a, "You need a plank of wood to cover the pit.")
		return false
	}
	m.SetTer(p, next)
	say(a, "You place a plank of wood over the pit.")
	return true
}

func pitCovered(a Actor, m Tiles, p world.Point) bool {
	next := m.Ter(p).Obj().TransformsIntoID()
	if next.IsNull() {
		return none(a, m, p)
	}
	m.SetTer(p, next)
	a.ReceiveItem(ItemPlank, 1)
	say(a, "You remove the plank.")
	return true
}

func cardreader(a Actor, m Tiles, p world.Point) bool {
	if !a.HasItem(ItemIDCard) {
		say(a, "The card reader is locked. You have no ID card.")
		return false
	}
	opened := 0
	for _, n := range world.Neighbors(p) {
		if !m.InBounds(n) {
			continue
		}
		t := m.Ter(n)
		if open := t.Obj().OpenID(); t.HasFlagBit(mapdata.FlagDoor) && !open.IsNull() {
			m.SetTer(n, open)
			opened++
		}
	}
	if opened == 0 {
		say(a, "The card reader beeps, but nothing happens.")
		return false
	}
	a.UseItem(ItemIDCard)
	say(a, "You insert your ID card. The nearby doors slide open.")
	return true
}

func vending(a Actor, m Tiles, p world.Point) bool {
	product := m.Furn(p).Obj().HarvestItem
	if product == "" {
		say(a, "The vending machine is empty.")
		return false
	}
	if !a.UseItem(ItemCashCard) {
		say(a, "You need a cash card to use the vending machine.")
		return false
	}
	a.ReceiveItem(product, 1)
	say(a, "The vending machine dispenses a %s.", product)
	return true
}

func waterSource(a Actor, m Tiles, p world.Point) bool {
	if !a.HasItem(ItemContainer) {
		say(a, "You need a container to carry water.")
		return false
	}
	a.ReceiveItem(ItemWater, 1)
	say(a, "You fill your container with water.")
	return true
}

func harvestTer(a Actor, m Tiles, p world.Point) bool {
	t := m.Ter(p).Obj()
	if t.HarvestItem == "" {
		say(a, "There is nothing to harvest here.")
		return false
	}
	a.ReceiveItem(t.HarvestItem, 1)
	if next := t.TransformsIntoID(); !next.IsNull() {
		m.SetTer(p, next)
	}
	say(a, "You harvest %s from the %s.", t.HarvestItem, t.DisplayName())
	return true
}

func harvestFurn(a Actor, m Tiles, p world.Point) bool {
	f := m.Furn(p).Obj()
	if f.HarvestItem == "" {
		say(a, "There is nothing to harvest here.")
		return false
	}
	a.ReceiveItem(f.HarvestItem, 1)
	m.SetFurn(p, f.TransformsIntoID())
	say(a, "You harvest %s from the %s.", f.HarvestItem, f.DisplayName())
	return true
}

func sign(a Actor, m Tiles, p world.Point) bool {
	if text := m.Graffiti(p); text != "" {
		say(a, "The sign says: %s", text)
	} else {
		say(a, "The sign is blank.")
	}
	return false
}

func curtains(a Actor, m Tiles, p world.Point) bool {
	t := m.Ter(p).Obj()
	switch {
	case !t.CloseID().IsNull():
		m.SetTer(p, t.CloseID())
		say(a, "You draw the curtains.")
	case !t.OpenID().IsNull():
		m.SetTer(p, t.OpenID())
		say(a, "You open the curtains.")
	default:
		return none(a, m, p)
	}
	return true
}

func lockedObject(a Actor, m Tiles, p world.Point) bool {
	name := tileName(m, p)
	if !a.HasItem(ItemCrowbar) {
		say(a, "The %s is locked. If only you had something to pry it with...", name)
		return false
	}
	if f := m.Furn(p); !f.IsNull() {
		open := f.Obj().OpenID()
		if open.IsNull() {
			return none(a, m, p)
		}
		m.SetFurn(p, open)
	} else {
		open := m.Ter(p).Obj().OpenID()
		if open.IsNull() {
			return none(a, m, p)
		}
		m.SetTer(p, open)
	}
	say(a, "You pry open the %s.", name)
	return true
}

func fswitch(a Actor, m Tiles, p world.Point) bool {
	f := m.Furn(p).Obj()
	switch {
	case !f.OpenID().IsNull():
		m.SetFurn(p, f.OpenID())
	case !f.CloseID().IsNull():
		m.SetFurn(p, f.CloseID())
	default:
		say(a, "The switch is stuck.")
		return false
	}
	say(a, "You flip the switch.")
	return true
}

func doorPeephole(a Actor, m Tiles, p world.Point) bool {
	say(a, "You peer through the peephole of the %s.", tileName(m, p))
	return false
}

func gaspump(a Actor, m Tiles, p world.Point) bool {
	if !a.HasItem(ItemJerrycan) {
		say(a, "You need a jerrycan to hold the gasoline.")
		return false
	}
	a.ReceiveItem(ItemGasoline, 1)
	say(a, "You fill the jerrycan with gasoline.")
	return true
}

func toilet(a Actor, m Tiles, p world.Point) bool {
	say(a, "The toilet is dry.")
	return false
}

func pedestalWyrm(a Actor, m Tiles, p world.Point) bool {
	next := m.Ter(p).Obj().TransformsIntoID()
	if next.IsNull() {
		say(a, "This pedestal is carved in the shape of a coiled worm.")
		return false
	}
	m.SetTer(p, next)
	say(a, "The pedestal sinks into the ground with an ominous grinding noise...")
	return true
}

func pedestalTemple(a Actor, m Tiles, p world.Point) bool {
	next := m.Ter(p).Obj().TransformsIntoID()
	if next.IsNull() || !a.UseItem(ItemPetrifiedEye) {
		say(a, "This pedestal is engraved in eye-shaped diagrams, and has a large semi-spherical indentation at the top.")
		return false
	}
	m.SetTer(p, next)
	say(a, "You place the petrified eye on the pedestal. It sinks into the ground...")
	return true
}
