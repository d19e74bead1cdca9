package mapdata

import (
	"fmt"

	"wasteland/pkg/engine/data"
	"wasteland/pkg/engine/debug"
	"wasteland/pkg/game/trap"
)

// unresolved collects references Finalize could not resolve, reported by CheckConsistency.
var unresolved []error

// Register adds the terrain and furniture loaders to l
func Register(l *data.Loader) {
	l.Register("terrain", LoadTerrain)
	l.Register("furniture", LoadFurniture)
}

// Reset empties both tables for a full data reload
func Reset() {
	terrains.Reset()
	furnitures.Reset()
	unresolved = nil
}

// Finalized reports whether the tables are frozen
func Finalized() bool {
	return terrains.Frozen() && furnitures.Frozen()
}

func resolveTer(owner, field, ref string) TerID {
	if ref == "" {
		return TerNull
	}
	id, ok := TerFromString(ref)
	if !ok {
		err := fmt.Errorf("%s: %s refers to unknown terrain %q", owner, field, ref)
		debug.Msg("%v", err)
		unresolved = append(unresolved, err)
	}
	return id
}

func resolveFurn(owner, field, ref string) FurnID {
	if ref == "" {
		return FurnNull
	}
	id, ok := FurnFromString(ref)
	if !ok {
		err := fmt.Errorf("%s: %s refers to unknown furniture %q", owner, field, ref)
		debug.Msg("%v", err)
		unresolved = append(unresolved, err)
	}
	return id
}

func finalizeCommon(m *MapDataCommon) {
	if b := m.Bash; b != nil {
		b.terSet = resolveTer(m.ID, "bash.ter_set", b.TerSet)
		b.furnSet = resolveFurn(m.ID, "bash.furn_set", b.FurnSet)
		if b.StrMax > 0 {
			m.bits.Set(FlagBashable)
		}
	}
	if d := m.Deconstruct; d != nil {
		d.terSet = resolveTer(m.ID, "deconstruct.ter_set", d.TerSet)
		d.furnSet = resolveFurn(m.ID, "deconstruct.furn_set", d.FurnSet)
		if d.CanDo {
			m.bits.Set(FlagDeconstruct)
		}
	}
}

// Finalize resolves string references between types and freezes both tables.
// Trap types must already be loaded. Unknown references resolve to the null entry.
func Finalize() {
	unresolved = nil
	terrains.Each(func(i int, _ string, t *TerrainType) {
		finalizeCommon(&t.MapDataCommon)
		t.open = resolveTer(t.ID, "open", t.Open)
		t.close = resolveTer(t.ID, "close", t.Close)
		t.transformsInto = resolveTer(t.ID, "transforms_into", t.TransformsInto)
		t.roof = resolveTer(t.ID, "roof", t.Roof)
		t.trap = trap.Null
		if t.Trap != "" {
			id, ok := trap.FromString(t.Trap)
			if !ok {
				err := fmt.Errorf("%s: trap refers to unknown trap %q", t.ID, t.Trap)
				debug.Msg("%v", err)
				unresolved = append(unresolved, err)
			}
			t.trap = id
		}
	})
	furnitures.Each(func(i int, _ string, f *FurnitureType) {
		finalizeCommon(&f.MapDataCommon)
		f.open = resolveFurn(f.ID, "open", f.Open)
		f.close = resolveFurn(f.ID, "close", f.Close)
		f.transformsInto = resolveFurn(f.ID, "transforms_into", f.TransformsInto)
		f.curtainTransform = resolveFurn(f.ID, "curtain_transform", f.CurtainTransform)
	})
	terrains.Finalize()
	furnitures.Finalize()
}

// checkFlagParity verifies that string and bit lookups agree for every built-in flag.
func checkFlagParity(kind string, m *MapDataCommon) []error {
	var errs []error
	for _, f := range AllFlags() {
		if m.HasFlag(f.String()) != m.HasFlagBit(f) {
			errs = append(errs, fmt.Errorf("%s %s: flag %s disagrees between name and bit lookup", kind, m.ID, f))
		}
	}
	if m.extra != nil {
		m.extra.Each(func(name string) {
			if _, ok := FlagFromName(name); ok {
				errs = append(errs, fmt.Errorf("%s %s: built-in flag %s stored as a string flag", kind, m.ID, name))
			}
		})
	}
	return errs
}

// CheckConsistency validates the finalized tables. Problems are reported, never fatal.
func CheckConsistency() []error {
	errs := append([]error(nil), unresolved...)
	terrains.Each(func(i int, id string, t *TerrainType) {
		errs = append(errs, checkFlagParity("terrain", &t.MapDataCommon)...)
		if t.MoveCost < 0 {
			errs = append(errs, fmt.Errorf("terrain %s has negative move_cost %d", id, t.MoveCost))
		}
		if t.Bash != nil && t.Bash.StrMin > t.Bash.StrMax {
			errs = append(errs, fmt.Errorf("terrain %s bash str_min %d > str_max %d", id, t.Bash.StrMin, t.Bash.StrMax))
		}
		if t.Open != "" && t.open == t.close && t.Close != "" {
			errs = append(errs, fmt.Errorf("terrain %s opens and closes into the same terrain", id))
		}
	})
	furnitures.Each(func(i int, id string, f *FurnitureType) {
		errs = append(errs, checkFlagParity("furniture", &f.MapDataCommon)...)
		if f.Bash != nil && f.Bash.StrMin > f.Bash.StrMax {
			errs = append(errs, fmt.Errorf("furniture %s bash str_min %d > str_max %d", id, f.Bash.StrMin, f.Bash.StrMax))
		}
	})
	for _, err := range errs[len(unresolved):] {
		debug.Msg("%v", err)
	}
	return errs
}
