package mapdata

import (
	"encoding/json"

	"wasteland/pkg/engine/registry"
	"wasteland/pkg/game/trap"
)

// TerID is the dense id of a terrain type
type TerID uint16

// TerNull is the inert null terrain
const TerNull TerID = 0

// TerrainType is the static description of one terrain type.
type TerrainType struct {
	MapDataCommon

	Open           string
	Close          string
	TransformsInto string
	Roof           string
	Trap           string

	open           TerID
	close          TerID
	transformsInto TerID
	roof           TerID
	trap           trap.ID
}

// OpenID is what the terrain becomes when opened, or TerNull
func (t *TerrainType) OpenID() TerID { return t.open }

// CloseID is what the terrain becomes when closed, or TerNull
func (t *TerrainType) CloseID() TerID { return t.close }

// TransformsIntoID is the terrain this one changes into (harvest, growth), or TerNull
func (t *TerrainType) TransformsIntoID() TerID { return t.transformsInto }

// RoofID is the terrain placed on the level above, or TerNull
func (t *TerrainType) RoofID() TerID { return t.roof }

// TrapID is the trap built into this terrain, or trap.Null
func (t *TerrainType) TrapID() trap.ID { return t.trap }

// IsPassable reports whether the terrain can be walked on at all
func (t *TerrainType) IsPassable() bool {
	return t.MoveCost > 0
}

var terrains = registry.New("terrain", "t_null", func() TerrainType {
	t := TerrainType{MapDataCommon: MapDataCommon{ID: "t_null", Name: "nothing", Symbol: ' ', MoveCost: 2}}
	t.SetFlag("TRANSPARENT")
	return t
})

type terrainJSON struct {
	commonJSON
	Open           string `json:"open"`
	Close          string `json:"close"`
	TransformsInto string `json:"transforms_into"`
	Roof           string `json:"roof"`
	Trap           string `json:"trap"`
}

// LoadTerrain reads one "terrain" object
func LoadTerrain(obj json.RawMessage, src string) error {
	var j terrainJSON
	if err := json.Unmarshal(obj, &j); err != nil {
		return err
	}
	common, err := j.build(src, 2)
	if err != nil {
		return err
	}
	_, err = terrains.Insert(j.ID, TerrainType{
		MapDataCommon:  common,
		Open:           j.Open,
		Close:          j.Close,
		TransformsInto: j.TransformsInto,
		Roof:           j.Roof,
		Trap:           j.Trap,
	})
	return err
}

// TerFromString returns the id of a terrain type
func TerFromString(s string) (TerID, bool) {
	i, ok := terrains.Find(s)
	return TerID(i), ok
}

// TerLookup returns the id of a terrain type, or TerNull with a diagnostic
func TerLookup(s string) TerID {
	return TerID(terrains.Lookup(s))
}

// TerrainCount returns the number of terrain types including t_null
func TerrainCount() int {
	return terrains.Len()
}

// Obj returns the terrain type. Invalid ids give the null terrain with a diagnostic.
func (id TerID) Obj() *TerrainType {
	return terrains.Get(int(id))
}

// ID returns the string id
func (id TerID) ID() string {
	return terrains.ID(int(id))
}

// IsNull reports whether this is t_null
func (id TerID) IsNull() bool {
	return id == TerNull
}

// HasFlag reports whether the terrain has a flag, by data name
func (id TerID) HasFlag(name string) bool {
	return id.Obj().HasFlag(name)
}

// HasFlagBit reports whether the terrain has a built-in flag
func (id TerID) HasFlagBit(f TerFurnFlag) bool {
	return id.Obj().HasFlagBit(f)
}

// MoveCost returns the configured movement cost. Non-positive means impassable.
func (id TerID) MoveCost() int {
	return id.Obj().MoveCost
}

// EachTerrain calls fn for every terrain type, t_null first
func EachTerrain(fn func(id TerID, t *TerrainType)) {
	terrains.Each(func(i int, _ string, t *TerrainType) {
		fn(TerID(i), t)
	})
}
