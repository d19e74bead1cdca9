package devtools

import (
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/field"
	"wasteland/pkg/game/mapdata"
	"wasteland/pkg/game/submap"
	"wasteland/pkg/game/trap"
)

// cursor walks the submap row-major and can skip to the start of the next row
type cursor struct {
	p    world.Point
	full bool
}

func (c *cursor) next() (world.Point, bool) {
	if c.full {
		return world.Point{}, false
	}
	p := c.p
	c.p.X++
	if c.p.X == submap.SEEX {
		c.p = world.Pt(0, c.p.Y+1)
	}
	if c.p.Y == submap.SEEY {
		c.full = true
	}
	return p, true
}

func (c *cursor) newRow() {
	if c.p.X != 0 && !c.full {
		c.p = world.Pt(0, c.p.Y+1)
		c.full = c.p.Y == submap.SEEY
	}
}

// DevSubmap builds a developer showcase on floor: every terrain type, then every
// furniture type, then every field type at full intensity, then every trap, each
// group starting on a new row. Groups stop when the submap is full. Tables must be
// finalized.
func DevSubmap(floor mapdata.TerID) *submap.Submap {
	sm := submap.New(floor)
	c := &cursor{}

	mapdata.EachTerrain(func(id mapdata.TerID, t *mapdata.TerrainType) {
		if id.IsNull() || id == floor {
			return
		}
		if p, ok := c.next(); ok {
			sm.SetTer(p, id)
		}
	})
	c.newRow()

	mapdata.EachFurniture(func(id mapdata.FurnID, f *mapdata.FurnitureType) {
		if id.IsNull() {
			return
		}
		if p, ok := c.next(); ok {
			sm.SetFurn(p, id)
		}
	})
	c.newRow()

	for i := 1; i < field.Count(); i++ {
		t := field.TypeID(i)
		if p, ok := c.next(); ok {
			sm.AddField(p, t, t.Obj().MaxIntensity(), 0)
		}
	}
	c.newRow()

	for i := 1; i < trap.Count(); i++ {
		if p, ok := c.next(); ok {
			sm.SetTrap(p, trap.ID(i))
		}
	}
	sm.SetGraffiti(world.Pt(submap.SEEX-1, submap.SEEY-1), "dev submap")
	return sm
}
