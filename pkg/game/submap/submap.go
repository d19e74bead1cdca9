// Package submap provides the fixed-size chunk of tiles that the world is streamed,
// simulated and saved in.
//
// A Submap owns every per-tile layer: terrain, furniture, traps, fields, items,
// radiation and graffiti, plus the spawn points, vehicles, computer and base camp
// anchored to it. Coordinates are local, 0 <= x < SEEX and 0 <= y < SEEY. Passing an
// out-of-range point to a tile accessor is a programming error and panics.
package submap

import (
	"fmt"

	"github.com/google/uuid"

	"wasteland/pkg/engine/calendar"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/field"
	"wasteland/pkg/game/mapdata"
	"wasteland/pkg/game/trap"
)

// Submap dimensions in tiles
const (
	SEEX = 12
	SEEY = 12
)

// Item is a single item lying on a tile.
type Item struct {
	Type    string `json:"typeid"`
	Charges int    `json:"charges,omitempty"`
	Active  bool   `json:"active,omitempty"`
}

// Spawn is a monster spawn point
type Spawn struct {
	Monster  string      `json:"monster"`
	Count    int         `json:"count"`
	Pos      world.Point `json:"pos"`
	Friendly bool        `json:"friendly,omitempty"`
	Name     string      `json:"name,omitempty"`
}

// Vehicle is a vehicle anchored in a submap. The submap that holds it owns it.
type Vehicle struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Pos    world.Point     `json:"pos"`
	Facing world.Direction `json:"facing"`
	Parts  []string        `json:"parts,omitempty"`
}

// Computer is a terminal anchored in a submap
type Computer struct {
	Name     string      `json:"name"`
	Pos      world.Point `json:"pos"`
	Security int         `json:"security"`
	Options  []string    `json:"options,omitempty"`
}

// BaseCamp is a faction camp anchored in a submap
type BaseCamp struct {
	Name string      `json:"name"`
	Pos  world.Point `json:"pos"`
}

// Submap is one SEEX by SEEY chunk of the world.
type Submap struct {
	ter      [SEEX][SEEY]mapdata.TerID
	furn     [SEEX][SEEY]mapdata.FurnID
	trp      [SEEX][SEEY]trap.ID
	fld      [SEEX][SEEY]field.Field
	itm      [SEEX][SEEY][]Item
	rad      [SEEX][SEEY]int
	graffiti map[world.Point]string

	spawns   []Spawn
	vehicles []*Vehicle
	comp     *Computer
	camp     *BaseCamp

	fieldCount  field.Counter
	activeItems int
	lastTouched calendar.Point
}

// New creates a submap covered with terrain ter. The submap must not be copied
// by value since every tile's field is bound to its counter.
func New(ter mapdata.TerID) *Submap {
	s := &Submap{}
	for x := range SEEX {
		for y := range SEEY {
			s.ter[x][y] = ter
			s.fld[x][y].Bind(&s.fieldCount)
		}
	}
	return s
}

// InBounds reports whether p is a local coordinate of the submap
func (s *Submap) InBounds(p world.Point) bool {
	return p.X >= 0 && p.X < SEEX && p.Y >= 0 && p.Y < SEEY
}

// EachPoint calls fn for every tile position, x major
func EachPoint(fn func(p world.Point)) {
	for x := range SEEX {
		for y := range SEEY {
			fn(world.Pt(x, y))
		}
	}
}

// Ter returns the terrain at p
func (s *Submap) Ter(p world.Point) mapdata.TerID {
	return s.ter[p.X][p.Y]
}

// SetTer replaces the terrain at p
func (s *Submap) SetTer(p world.Point, t mapdata.TerID) {
	s.ter[p.X][p.Y] = t
}

// Furn returns the furniture at p
func (s *Submap) Furn(p world.Point) mapdata.FurnID {
	return s.furn[p.X][p.Y]
}

// SetFurn replaces the furniture at p
func (s *Submap) SetFurn(p world.Point, f mapdata.FurnID) {
	s.furn[p.X][p.Y] = f
}

// Trap returns the trap at p. Traps built into the terrain are not included.
func (s *Submap) Trap(p world.Point) trap.ID {
	return s.trp[p.X][p.Y]
}

// SetTrap places or clears the trap at p
func (s *Submap) SetTrap(p world.Point, t trap.ID) {
	s.trp[p.X][p.Y] = t
}

// Field returns the field of the tile at p. It stays bound to the submap's field counter.
func (s *Submap) Field(p world.Point) *field.Field {
	return &s.fld[p.X][p.Y]
}

// AddField adds a field effect at p, see field.Field.Add
func (s *Submap) AddField(p world.Point, t field.TypeID, intensity int, age calendar.Duration) bool {
	return s.Field(p).Add(t, intensity, age)
}

// RemoveField removes a field effect at p
func (s *Submap) RemoveField(p world.Point, t field.TypeID) bool {
	return s.Field(p).Remove(t)
}

// FieldCount returns the number of field entries in the submap
func (s *Submap) FieldCount() int {
	return s.fieldCount.Value()
}

// RecountFields recomputes the field counter from the tiles and returns it
func (s *Submap) RecountFields() int {
	n := 0
	for x := range SEEX {
		for y := range SEEY {
			n += s.fld[x][y].Count()
		}
	}
	s.fieldCount.Set(n)
	return n
}

// CheckFieldCount verifies that the field counter matches the tiles
func (s *Submap) CheckFieldCount() error {
	want := s.fieldCount.Value()
	n := 0
	for x := range SEEX {
		for y := range SEEY {
			n += s.fld[x][y].Count()
		}
	}
	if n != want {
		return fmt.Errorf("submap field count is %d but tiles hold %d entries", want, n)
	}
	return nil
}

// Items returns the item stack at p. The slice must not be modified.
func (s *Submap) Items(p world.Point) []Item {
	return s.itm[p.X][p.Y]
}

// AddItem puts an item on the tile at p
func (s *Submap) AddItem(p world.Point, it Item) {
	s.itm[p.X][p.Y] = append(s.itm[p.X][p.Y], it)
	if it.Active {
		s.activeItems++
	}
}

// RemoveItem takes the i-th item off the tile at p
func (s *Submap) RemoveItem(p world.Point, i int) Item {
	stack := s.itm[p.X][p.Y]
	it := stack[i]
	s.itm[p.X][p.Y] = append(stack[:i:i], stack[i+1:]...)
	if it.Active {
		s.activeItems--
	}
	return it
}

// ClearItems removes every item from the tile at p
func (s *Submap) ClearItems(p world.Point) {
	for _, it := range s.itm[p.X][p.Y] {
		if it.Active {
			s.activeItems--
		}
	}
	s.itm[p.X][p.Y] = nil
}

// ActiveItemCount returns the number of items that need per-turn processing
func (s *Submap) ActiveItemCount() int {
	return s.activeItems
}

// Radiation returns the radiation level at p
func (s *Submap) Radiation(p world.Point) int {
	return s.rad[p.X][p.Y]
}

// SetRadiation sets the radiation level at p
func (s *Submap) SetRadiation(p world.Point, r int) {
	s.rad[p.X][p.Y] = r
}

// Graffiti returns the writing on the tile at p, or ""
func (s *Submap) Graffiti(p world.Point) string {
	s.mustBeInBounds(p)
	return s.graffiti[p]
}

// HasGraffiti reports whether the tile at p has writing on it
func (s *Submap) HasGraffiti(p world.Point) bool {
	return s.Graffiti(p) != ""
}

// SetGraffiti writes on the tile at p. An empty string erases it.
func (s *Submap) SetGraffiti(p world.Point, text string) {
	s.mustBeInBounds(p)
	if text == "" {
		delete(s.graffiti, p)
		return
	}
	if s.graffiti == nil {
		s.graffiti = make(map[world.Point]string)
	}
	s.graffiti[p] = text
}

func (s *Submap) mustBeInBounds(p world.Point) {
	if !s.InBounds(p) {
		panic(fmt.Sprintf("submap: point %v out of bounds", p))
	}
}

// AddSpawn adds a monster spawn point
func (s *Submap) AddSpawn(sp Spawn) {
	s.mustBeInBounds(sp.Pos)
	s.spawns = append(s.spawns, sp)
}

// Spawns returns the spawn points
func (s *Submap) Spawns() []Spawn {
	return s.spawns
}

// ClearSpawns drops every spawn point, typically after they were spawned
func (s *Submap) ClearSpawns() {
	s.spawns = nil
}

// AddVehicle moves v into the submap and returns its handle. A vehicle without an
// id is given a new one.
func (s *Submap) AddVehicle(v *Vehicle) uuid.UUID {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	s.vehicles = append(s.vehicles, v)
	return v.ID
}

// Vehicle returns the vehicle with handle h, or nil
func (s *Submap) Vehicle(h uuid.UUID) *Vehicle {
	for _, v := range s.vehicles {
		if v.ID == h {
			return v
		}
	}
	return nil
}

// DetachVehicle removes the vehicle with handle h and hands it to the caller.
// It returns nil if the submap has no such vehicle.
func (s *Submap) DetachVehicle(h uuid.UUID) *Vehicle {
	for i, v := range s.vehicles {
		if v.ID == h {
			s.vehicles = append(s.vehicles[:i:i], s.vehicles[i+1:]...)
			return v
		}
	}
	return nil
}

// Vehicles returns the vehicles in the submap
func (s *Submap) Vehicles() []*Vehicle {
	return s.vehicles
}

// Computer returns the computer anchored here, or nil
func (s *Submap) Computer() *Computer {
	return s.comp
}

// SetComputer anchors a computer here, replacing any other. nil removes it.
func (s *Submap) SetComputer(c *Computer) {
	s.comp = c
}

// Camp returns the base camp anchored here, or nil
func (s *Submap) Camp() *BaseCamp {
	return s.camp
}

// SetCamp anchors a base camp here, replacing any other. nil removes it.
func (s *Submap) SetCamp(c *BaseCamp) {
	s.camp = c
}

// TurnLastTouched returns the last turn the submap was simulated or modified
func (s *Submap) TurnLastTouched() calendar.Point {
	return s.lastTouched
}

// Touch records that the submap was active at turn
func (s *Submap) Touch(turn calendar.Point) {
	s.lastTouched = turn
}

// MoveCost returns the cost of walking onto p, 0 meaning impassable.
// Terrain with a non-positive cost or furniture with a negative cost blocks;
// otherwise the terrain, furniture and field costs add up.
func (s *Submap) MoveCost(p world.Point) int {
	ter := s.Ter(p).MoveCost()
	if ter <= 0 {
		return 0
	}
	furn := s.Furn(p).MoveCost()
	if furn < 0 {
		return 0
	}
	return ter + furn + s.Field(p).MoveCost()
}

// IsTransparent reports whether light passes through p
func (s *Submap) IsTransparent(p world.Point) bool {
	return s.Ter(p).HasFlagBit(mapdata.FlagTransparent) &&
		s.Furn(p).HasFlagBit(mapdata.FlagTransparent) &&
		s.Field(p).IsTransparent()
}

// IsDangerous reports whether stepping onto p harms a creature: a dangerous
// field or an armed trap.
func (s *Submap) IsDangerous(p world.Point) bool {
	if s.Field(p).IsDangerous() {
		return true
	}
	t := s.Trap(p)
	if t.IsNull() {
		t = s.Ter(p).Obj().TrapID()
	}
	return !t.IsNull() && !t.Obj().Benign
}

// HasFlag reports whether the terrain or furniture at p has the flag
func (s *Submap) HasFlag(p world.Point, name string) bool {
	return s.Ter(p).HasFlag(name) || s.Furn(p).HasFlag(name)
}

// HasFlagBit reports whether the terrain or furniture at p has the built-in flag
func (s *Submap) HasFlagBit(p world.Point, f mapdata.TerFurnFlag) bool {
	return s.Ter(p).HasFlagBit(f) || s.Furn(p).HasFlagBit(f)
}

// IsUniform reports whether the submap is a single terrain with nothing else on it.
func (s *Submap) IsUniform() bool {
	if s.fieldCount.Value() != 0 || len(s.graffiti) != 0 || len(s.spawns) != 0 ||
		len(s.vehicles) != 0 || s.comp != nil || s.camp != nil {
		return false
	}
	first := s.ter[0][0]
	for x := range SEEX {
		for y := range SEEY {
			if s.ter[x][y] != first || !s.furn[x][y].IsNull() || !s.trp[x][y].IsNull() ||
				len(s.itm[x][y]) != 0 || s.rad[x][y] != 0 {
				return false
			}
		}
	}
	return true
}
