package mapdata

import (
	"encoding/json"

	"wasteland/pkg/engine/registry"
)

// FurnID is the dense id of a furniture type
type FurnID uint16

// FurnNull means no furniture
const FurnNull FurnID = 0

// FurnitureType is the static description of one furniture type.
type FurnitureType struct {
	MapDataCommon

	Open               string
	Close              string
	TransformsInto     string
	CurtainTransform   string
	CraftingPseudoItem string
	DeployedItem       string
	MoveStrReq         int
	Comfort            int
	KegCapacity        int

	open             FurnID
	close            FurnID
	transformsInto   FurnID
	curtainTransform FurnID
}

// OpenID is what the furniture becomes when opened, or FurnNull
func (f *FurnitureType) OpenID() FurnID { return f.open }

// CloseID is what the furniture becomes when closed, or FurnNull
func (f *FurnitureType) CloseID() FurnID { return f.close }

// TransformsIntoID is the furniture this one changes into, or FurnNull
func (f *FurnitureType) TransformsIntoID() FurnID { return f.transformsInto }

// CurtainTransformID is the furniture left when curtains are torn down, or FurnNull
func (f *FurnitureType) CurtainTransformID() FurnID { return f.curtainTransform }

// IsPassable reports whether the furniture can be walked through.
// Furniture with a negative move cost blocks movement.
func (f *FurnitureType) IsPassable() bool {
	return f.MoveCost >= 0
}

var furnitures = registry.New("furniture", "f_null", func() FurnitureType {
	f := FurnitureType{MapDataCommon: MapDataCommon{ID: "f_null", Name: "nothing", Symbol: ' '}}
	f.SetFlag("TRANSPARENT")
	return f
})

type furnitureJSON struct {
	commonJSON
	Open               string `json:"open"`
	Close              string `json:"close"`
	TransformsInto     string `json:"transforms_into"`
	CurtainTransform   string `json:"curtain_transform"`
	CraftingPseudoItem string `json:"crafting_pseudo_item"`
	DeployedItem       string `json:"deployed_item"`
	MoveStrReq         int    `json:"required_str"`
	Comfort            int    `json:"comfort"`
	KegCapacity        int    `json:"keg_capacity"`
}

// LoadFurniture reads one "furniture" object
func LoadFurniture(obj json.RawMessage, src string) error {
	var j furnitureJSON
	if err := json.Unmarshal(obj, &j); err != nil {
		return err
	}
	common, err := j.build(src, 0)
	if err != nil {
		return err
	}
	_, err = furnitures.Insert(j.ID, FurnitureType{
		MapDataCommon:      common,
		Open:               j.Open,
		Close:              j.Close,
		TransformsInto:     j.TransformsInto,
		CurtainTransform:   j.CurtainTransform,
		CraftingPseudoItem: j.CraftingPseudoItem,
		DeployedItem:       j.DeployedItem,
		MoveStrReq:         j.MoveStrReq,
		Comfort:            j.Comfort,
		KegCapacity:        j.KegCapacity,
	})
	return err
}

// FurnFromString returns the id of a furniture type
func FurnFromString(s string) (FurnID, bool) {
	i, ok := furnitures.Find(s)
	return FurnID(i), ok
}

// FurnLookup returns the id of a furniture type, or FurnNull with a diagnostic
func FurnLookup(s string) FurnID {
	return FurnID(furnitures.Lookup(s))
}

// FurnitureCount returns the number of furniture types including f_null
func FurnitureCount() int {
	return furnitures.Len()
}

// Obj returns the furniture type. Invalid ids give the null furniture with a diagnostic.
func (id FurnID) Obj() *FurnitureType {
	return furnitures.Get(int(id))
}

// ID returns the string id
func (id FurnID) ID() string {
	return furnitures.ID(int(id))
}

// IsNull reports whether this is f_null
func (id FurnID) IsNull() bool {
	return id == FurnNull
}

// HasFlag reports whether the furniture has a flag, by data name
func (id FurnID) HasFlag(name string) bool {
	return id.Obj().HasFlag(name)
}

// HasFlagBit reports whether the furniture has a built-in flag
func (id FurnID) HasFlagBit(f TerFurnFlag) bool {
	return id.Obj().HasFlagBit(f)
}

// MoveCost returns the configured movement cost. Negative means impassable.
func (id FurnID) MoveCost() int {
	return id.Obj().MoveCost
}

// EachFurniture calls fn for every furniture type, f_null first
func EachFurniture(fn func(id FurnID, f *FurnitureType)) {
	furnitures.Each(func(i int, _ string, f *FurnitureType) {
		fn(FurnID(i), f)
	})
}
