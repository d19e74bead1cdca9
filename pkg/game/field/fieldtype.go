// Package field models transient effects on tiles such as fire, smoke, gas and electricity.
//
// A Type is static data loaded from "field_type" objects. An Entry is one live
// instance of a type on a tile, and a Field is the per-tile set of entries with
// at most one entry per type.
package field

import (
	"encoding/json"
	"fmt"
	"strings"

	"wasteland/pkg/engine/calendar"
	"wasteland/pkg/engine/data"
	"wasteland/pkg/engine/debug"
	"wasteland/pkg/engine/palette"
	"wasteland/pkg/engine/registry"
)

// MaxIntensity is the highest intensity any field type can declare
const MaxIntensity = 3

// Phase is the state of matter of a field. Gas fields spread to neighbors.
type Phase uint8

// Phases
const (
	PhaseNull Phase = iota
	PhaseSolid
	PhaseLiquid
	PhaseGas
	PhasePlasma
)

var phaseNames = [...]string{
	PhaseNull:   "null",
	PhaseSolid:  "solid",
	PhaseLiquid: "liquid",
	PhaseGas:    "gas",
	PhasePlasma: "plasma",
}

func (p Phase) String() string {
	if int(p) >= len(phaseNames) {
		return phaseNames[PhaseNull]
	}
	return phaseNames[p]
}

// PhaseFromName parses "gas", "LIQUID", "pnull" and the like
func PhaseFromName(name string) (Phase, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "pnull" {
		return PhaseNull, true
	}
	for i, s := range phaseNames {
		if s == n {
			return Phase(i), true
		}
	}
	return PhaseNull, false
}

// Level is what a field type looks like and does at one intensity.
type Level struct {
	Name         string
	Symbol       rune
	Color        palette.Color
	Transparent  bool
	Dangerous    bool
	MoveCost     int
	LightEmitted int
}

// Type is the static description of one field type.
type Type struct {
	ID               string
	Levels           []Level
	Priority         int
	HalfLife         calendar.Duration
	Phase            Phase
	AcceleratedDecay bool
	PercentSpread    int
	HasFire          bool
	HasAcid          bool
	HasElec          bool
	HasFume          bool
	DisplayItems     bool
	DisplayField     bool
	DescriptionAffix string
}

// MaxIntensity returns the highest intensity of this type, the number of its levels
func (t *Type) MaxIntensity() int {
	return len(t.Levels)
}

// Level returns the properties at intensity i, clamped into the valid range.
func (t *Type) Level(i int) *Level {
	if i > len(t.Levels) {
		i = len(t.Levels)
	}
	if i < 1 {
		i = 1
	}
	return &t.Levels[i-1]
}

// Dangerous reports whether any intensity of the type is dangerous
func (t *Type) Dangerous() bool {
	for _, l := range t.Levels {
		if l.Dangerous {
			return true
		}
	}
	return false
}

// TypeID is the dense id of a field type
type TypeID uint16

// Null is the empty field type
const Null TypeID = 0

var types = registry.New("field type", "fd_null", func() Type {
	return Type{
		ID:     "fd_null",
		Levels: []Level{{Symbol: ' ', Transparent: true}},
		Phase:  PhaseNull,
	}
})

// Well-known field types used by game code. Each is Null until Finalize finds it.
var (
	Fire        TypeID
	Smoke       TypeID
	ToxicGas    TypeID
	TearGas     TypeID
	NukeGas     TypeID
	Electricity TypeID
	Blood       TypeID
	Acid        TypeID
	Web         TypeID
	Slime       TypeID
	Rubble      TypeID
	FungalHaze  TypeID
)

var wellKnown = []struct {
	id  string
	dst *TypeID
}{
	{"fd_fire", &Fire},
	{"fd_smoke", &Smoke},
	{"fd_toxic_gas", &ToxicGas},
	{"fd_tear_gas", &TearGas},
	{"fd_nuke_gas", &NukeGas},
	{"fd_electricity", &Electricity},
	{"fd_blood", &Blood},
	{"fd_acid", &Acid},
	{"fd_web", &Web},
	{"fd_slime", &Slime},
	{"fd_rubble", &Rubble},
	{"fd_fungal_haze", &FungalHaze},
}

type levelJSON struct {
	Name         *string        `json:"name"`
	Symbol       *string        `json:"sym"`
	Color        *palette.Color `json:"color"`
	Transparent  *bool          `json:"transparent"`
	Dangerous    *bool          `json:"dangerous"`
	MoveCost     *int           `json:"move_cost"`
	LightEmitted *int           `json:"light_emitted"`
}

type typeJSON struct {
	ID               string            `json:"id"`
	Levels           []levelJSON       `json:"intensity_levels"`
	Priority         int               `json:"priority"`
	HalfLife         calendar.Duration `json:"half_life"`
	Phase            string            `json:"phase"`
	AcceleratedDecay bool              `json:"accelerated_decay"`
	PercentSpread    int               `json:"percent_spread"`
	HasFire          bool              `json:"has_fire"`
	HasAcid          bool              `json:"has_acid"`
	HasElec          bool              `json:"has_elec"`
	HasFume          bool              `json:"has_fume"`
	DisplayItems     *bool             `json:"display_items"`
	DisplayField     bool              `json:"display_field"`
	DescriptionAffix string            `json:"description_affix"`
}

// Register adds the field type loader to l
func Register(l *data.Loader) {
	l.Register("field_type", Load)
}

// Load reads one "field_type" object. Levels inherit unset properties from the level below.
func Load(obj json.RawMessage, src string) error {
	var j typeJSON
	if err := json.Unmarshal(obj, &j); err != nil {
		return err
	}
	if j.ID == "" {
		return fmt.Errorf("field_type without id")
	}
	if len(j.Levels) == 0 {
		return fmt.Errorf("field_type %s has no intensity_levels", j.ID)
	}
	if len(j.Levels) > MaxIntensity {
		debug.Msg("%s: field_type %s has %d intensity levels, keeping %d", src, j.ID, len(j.Levels), MaxIntensity)
		j.Levels = j.Levels[:MaxIntensity]
	}
	phase, ok := PhaseFromName(j.Phase)
	if !ok {
		debug.Msg("%s: field_type %s has unknown phase %q", src, j.ID, j.Phase)
	}

	t := Type{
		ID:               j.ID,
		Priority:         j.Priority,
		HalfLife:         j.HalfLife,
		Phase:            phase,
		AcceleratedDecay: j.AcceleratedDecay,
		PercentSpread:    j.PercentSpread,
		HasFire:          j.HasFire,
		HasAcid:          j.HasAcid,
		HasElec:          j.HasElec,
		HasFume:          j.HasFume,
		DisplayItems:     true,
		DisplayField:     j.DisplayField,
		DescriptionAffix: j.DescriptionAffix,
	}
	if j.DisplayItems != nil {
		t.DisplayItems = *j.DisplayItems
	}

	prev := Level{Name: j.ID, Symbol: '*', Color: palette.White, Transparent: true}
	for _, lj := range j.Levels {
		l := prev
		if lj.Name != nil {
			l.Name = *lj.Name
		}
		if lj.Symbol != nil && *lj.Symbol != "" {
			l.Symbol = []rune(*lj.Symbol)[0]
		}
		if lj.Color != nil {
			l.Color = *lj.Color
		}
		if lj.Transparent != nil {
			l.Transparent = *lj.Transparent
		}
		if lj.Dangerous != nil {
			l.Dangerous = *lj.Dangerous
		}
		if lj.MoveCost != nil {
			l.MoveCost = *lj.MoveCost
		}
		if lj.LightEmitted != nil {
			l.LightEmitted = *lj.LightEmitted
		}
		t.Levels = append(t.Levels, l)
		prev = l
	}

	_, err := types.Insert(j.ID, t)
	return err
}

// Reset empties the table and clears the well-known ids
func Reset() {
	types.Reset()
	for _, w := range wellKnown {
		*w.dst = Null
	}
}

// Finalize resolves the well-known ids and freezes the table
func Finalize() {
	for _, w := range wellKnown {
		id, _ := types.Find(w.id)
		*w.dst = TypeID(id)
	}
	types.Finalize()
}

// CheckConsistency reports field types that cannot work
func CheckConsistency() []error {
	var errs []error
	types.Each(func(i int, id string, t *Type) {
		if i == 0 {
			return
		}
		for n, l := range t.Levels {
			if l.Name == "" {
				errs = append(errs, fmt.Errorf("field type %s intensity %d has no name", id, n+1))
			}
		}
		if t.HalfLife < 0 {
			errs = append(errs, fmt.Errorf("field type %s has negative half_life %v", id, t.HalfLife))
		}
		if t.PercentSpread < 0 || t.PercentSpread > 100 {
			errs = append(errs, fmt.Errorf("field type %s percent_spread %d is outside 0..100", id, t.PercentSpread))
		}
		if t.AcceleratedDecay && t.HalfLife == 0 {
			errs = append(errs, fmt.Errorf("field type %s has accelerated_decay but no half_life", id))
		}
	})
	for _, err := range errs {
		debug.Msg("%v", err)
	}
	return errs
}

// FromIdent returns the id of a field type, or Null with a diagnostic when unknown.
func FromIdent(s string) TypeID {
	return TypeID(types.Lookup(s))
}

// FromString returns the id of a field type without reporting unknown ids
func FromString(s string) (TypeID, bool) {
	i, ok := types.Find(s)
	return TypeID(i), ok
}

// TypeDangerous reports whether any intensity of the type is dangerous.
// Pathfinding uses it to avoid a tile whatever the current intensity.
func TypeDangerous(id TypeID) bool {
	return id.Obj().Dangerous()
}

// Count returns the number of field types including fd_null
func Count() int {
	return types.Len()
}

// Obj returns the field type. Invalid ids give fd_null with a diagnostic.
func (id TypeID) Obj() *Type {
	return types.Get(int(id))
}

// ID returns the string id
func (id TypeID) ID() string {
	return types.ID(int(id))
}

// IsNull reports whether this is fd_null
func (id TypeID) IsNull() bool {
	return id == Null
}

func (id TypeID) String() string {
	return id.ID()
}
