package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"wasteland/pkg/engine/calendar"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/field"
	"wasteland/pkg/game/submap"
)

// DefaultDumpFile is where DumpToFile writes without an explicit path
const DefaultDumpFile = "submap.txt"

// WriteDump writes a full debug dump of one submap: metadata, the map, the id of
// every distinct terrain and furniture, then each field, item stack, trap and
// anchored object with its coordinates.
// Format is human-readable (sections, key: value, consistent structure).
func WriteDump(w io.Writer, pos world.Tripoint, sm *submap.Submap, turn calendar.Point) error {
	ew := &errWriter{w: w}

	// --- Metadata ---
	ew.println("=== SUBMAP DUMP ===")
	ew.println("")
	ew.println("--- Metadata ---")
	ew.printf("position: %s\n", pos)
	ew.printf("size: %dx%d\n", submap.SEEX, submap.SEEY)
	ew.printf("coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	ew.printf("turn: %d\n", turn)
	ew.printf("last_touched: %d\n", sm.TurnLastTouched())
	ew.printf("field_count: %d\n", sm.FieldCount())
	ew.printf("active_items: %d\n", sm.ActiveItemCount())
	ew.printf("uniform: %v\n", sm.IsUniform())
	ew.println("")

	// --- Map ---
	ew.println("--- Map ---")
	if ew.err == nil {
		ew.err = Render(w, sm, false)
	}
	ew.println("")

	// --- Legend ---
	ew.println("--- Legend ---")
	ters := map[string]int{}
	furns := map[string]int{}
	submap.EachPoint(func(p world.Point) {
		ters[sm.Ter(p).ID()]++
		if f := sm.Furn(p); !f.IsNull() {
			furns[f.ID()]++
		}
	})
	ew.println("Terrain:")
	for _, id := range sortedKeys(ters) {
		ew.printf("  %s: %d\n", id, ters[id])
	}
	ew.println("Furniture:")
	for _, id := range sortedKeys(furns) {
		ew.printf("  %s: %d\n", id, furns[id])
	}
	ew.println("")

	ew.println("--- Tiles ---")
	ew.println("Fields:")
	submap.EachPoint(func(p world.Point) {
		sm.Field(p).Each(func(e *field.Entry) bool {
			ew.printf("  x: %d y: %d type: %s intensity: %d age: %d name: %q\n",
				p.X, p.Y, e.Type().ID(), e.Intensity(), e.Age(), e.Name())
			return true
		})
	})
	ew.println("Items:")
	submap.EachPoint(func(p world.Point) {
		for _, it := range sm.Items(p) {
			ew.printf("  x: %d y: %d type: %s charges: %d active: %v\n", p.X, p.Y, it.Type, it.Charges, it.Active)
		}
	})
	ew.println("Traps:")
	submap.EachPoint(func(p world.Point) {
		if tr := sm.Trap(p); !tr.IsNull() {
			ew.printf("  x: %d y: %d type: %s benign: %v\n", p.X, p.Y, tr.ID(), tr.Obj().Benign)
		}
	})
	ew.println("Hazards:")
	submap.EachPoint(func(p world.Point) {
		if sm.IsDangerous(p) {
			ew.printf("  x: %d y: %d move_cost: %d\n", p.X, p.Y, sm.MoveCost(p))
		}
	})
	ew.println("Graffiti:")
	submap.EachPoint(func(p world.Point) {
		if sm.HasGraffiti(p) {
			ew.printf("  x: %d y: %d text: %q\n", p.X, p.Y, sm.Graffiti(p))
		}
	})
	ew.println("Radiation:")
	submap.EachPoint(func(p world.Point) {
		if r := sm.Radiation(p); r != 0 {
			ew.printf("  x: %d y: %d level: %d\n", p.X, p.Y, r)
		}
	})
	ew.println("")

	ew.println("--- Anchored ---")
	ew.println("Spawns:")
	for _, sp := range sm.Spawns() {
		ew.printf("  x: %d y: %d monster: %s count: %d friendly: %v\n", sp.Pos.X, sp.Pos.Y, sp.Monster, sp.Count, sp.Friendly)
	}
	ew.println("Vehicles:")
	for _, v := range sm.Vehicles() {
		ew.printf("  x: %d y: %d id: %s name: %q facing: %s parts: %d\n", v.Pos.X, v.Pos.Y, v.ID, v.Name, v.Facing, len(v.Parts))
	}
	if c := sm.Computer(); c != nil {
		ew.printf("Computer: x: %d y: %d name: %q security: %d\n", c.Pos.X, c.Pos.Y, c.Name, c.Security)
	}
	if c := sm.Camp(); c != nil {
		ew.printf("Camp: x: %d y: %d name: %q\n", c.Pos.X, c.Pos.Y, c.Name)
	}
	return ew.err
}

// DumpToFile writes the dump to path, or DefaultDumpFile when path is empty,
// and returns the absolute path written.
func DumpToFile(path string, pos world.Tripoint, sm *submap.Submap, turn calendar.Point) (string, error) {
	if path == "" {
		path = DefaultDumpFile
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, pos, sm, turn); err != nil {
		return "", err
	}
	return absPath, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// errWriter keeps the first write error and skips everything after it
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintf(ew.w, format, a...)
	}
}

func (ew *errWriter) println(s string) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintln(ew.w, s)
	}
}
