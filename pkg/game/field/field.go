package field

import (
	"slices"

	"wasteland/pkg/engine/calendar"
)

// Counter tracks the number of entries across every Field bound to it.
// A submap binds all of its cells to one Counter.
type Counter struct {
	n int
}

// Value returns the current count
func (c *Counter) Value() int {
	return c.n
}

// Set overwrites the count, for recounting from scratch
func (c *Counter) Set(n int) {
	c.n = n
}

func (c *Counter) add(d int) {
	if c != nil {
		c.n += d
	}
}

// Field is the set of effects on one tile. Entries are kept sorted by type id
// and there is never more than one entry per type. The zero value is an empty field.
type Field struct {
	entries []Entry
	counter *Counter
}

// Bind attaches the field to c. The entries already present move from the old counter to c.
func (f *Field) Bind(c *Counter) {
	f.counter.add(-len(f.entries))
	f.counter = c
	f.counter.add(len(f.entries))
}

func (f *Field) search(t TypeID) (int, bool) {
	return slices.BinarySearchFunc(f.entries, t, func(e Entry, t TypeID) int {
		return int(e.typ) - int(t)
	})
}

// Add puts intensity levels of type t on the tile. If the type is already present
// its intensity grows, up to the type's maximum, and Add returns false. Otherwise a
// new entry is inserted with the given age and Add returns true. A dead entry that
// has not been swept yet counts as absent: it is revived with the new intensity and
// age and Add returns true.
func (f *Field) Add(t TypeID, intensity int, age calendar.Duration) bool {
	if t.IsNull() {
		return false
	}
	i, found := f.search(t)
	if found {
		e := &f.entries[i]
		if intensity < 1 {
			intensity = 1
		}
		if !e.alive {
			e.age = age
			e.SetIntensity(intensity)
			return true
		}
		e.SetIntensity(e.intensity + intensity)
		return false
	}
	f.entries = slices.Insert(f.entries, i, NewEntry(t, intensity, age))
	f.counter.add(1)
	return true
}

// Remove deletes the entry of type t and reports whether a live one was present.
// A dead entry is deleted too but reports false.
func (f *Field) Remove(t TypeID) bool {
	i, found := f.search(t)
	if !found {
		return false
	}
	alive := f.entries[i].alive
	f.RemoveAt(i)
	return alive
}

// RemoveAt deletes the i-th entry in type order
func (f *Field) RemoveAt(i int) {
	f.entries = slices.Delete(f.entries, i, i+1)
	f.counter.add(-1)
}

// Clear removes every entry
func (f *Field) Clear() {
	f.counter.add(-len(f.entries))
	f.entries = nil
}

// Find returns the live entry of type t, or nil
func (f *Field) Find(t TypeID) *Entry {
	i, found := f.search(t)
	if !found || !f.entries[i].alive {
		return nil
	}
	return &f.entries[i]
}

// Count returns the number of distinct types stored. Killed entries count until swept.
func (f *Field) Count() int {
	return len(f.entries)
}

// At returns the i-th entry in type order
func (f *Field) At(i int) *Entry {
	return &f.entries[i]
}

// Each calls fn for every live entry in ascending type order until fn returns false.
// fn may kill entries; they are skipped for the rest of the walk and removed by Sweep.
func (f *Field) Each(fn func(e *Entry) bool) {
	for i := range f.entries {
		if !f.entries[i].alive {
			continue
		}
		if !fn(&f.entries[i]) {
			return
		}
	}
}

// Sweep removes dead entries and returns how many were removed
func (f *Field) Sweep() int {
	before := len(f.entries)
	f.entries = slices.DeleteFunc(f.entries, func(e Entry) bool { return !e.alive })
	removed := before - len(f.entries)
	f.counter.add(-removed)
	if len(f.entries) == 0 {
		f.entries = nil
	}
	return removed
}

// Symbol returns the type that should be drawn: the live entry with the lowest
// priority value, ties going to the lower type id. Null when nothing is present.
func (f *Field) Symbol() TypeID {
	best := Null
	bestPriority := 0
	f.Each(func(e *Entry) bool {
		p := e.typ.Obj().Priority
		if best.IsNull() || p < bestPriority {
			best, bestPriority = e.typ, p
		}
		return true
	})
	return best
}

// MoveCost returns the sum of the move costs of all live entries
func (f *Field) MoveCost() int {
	cost := 0
	f.Each(func(e *Entry) bool {
		cost += e.MoveCost()
		return true
	})
	return cost
}

// IsDangerous reports whether any live entry is dangerous
func (f *Field) IsDangerous() bool {
	dangerous := false
	f.Each(func(e *Entry) bool {
		dangerous = e.IsDangerous()
		return !dangerous
	})
	return dangerous
}

// IsTransparent reports whether every live entry lets light through
func (f *Field) IsTransparent() bool {
	transparent := true
	f.Each(func(e *Entry) bool {
		transparent = e.IsTransparent()
		return transparent
	})
	return transparent
}

// LightEmitted returns the brightest light given off by any live entry
func (f *Field) LightEmitted() int {
	light := 0
	f.Each(func(e *Entry) bool {
		light = max(light, e.LightEmitted())
		return true
	})
	return light
}
