package field

import (
	"github.com/leonelquinteros/gotext"

	"wasteland/pkg/engine/calendar"
	"wasteland/pkg/engine/palette"
)

// tr translates a name loaded from data. Names are not format strings.
var tr = gotext.Get

// Entry is one field type present on one tile.
type Entry struct {
	typ       TypeID
	intensity int
	age       calendar.Duration
	alive     bool
}

// NewEntry creates a live entry with intensity clamped to the type's range
func NewEntry(t TypeID, intensity int, age calendar.Duration) Entry {
	e := Entry{typ: t, age: age}
	if intensity < 1 {
		intensity = 1
	}
	e.SetIntensity(intensity)
	return e
}

// Type returns the field type of the entry
func (e *Entry) Type() TypeID {
	return e.typ
}

// Intensity returns the current intensity, always in [1, max]
func (e *Entry) Intensity() int {
	return e.intensity
}

// SetIntensity stores n clamped to the type's range and returns the stored value.
// A value below 1 kills the entry; a positive value revives it.
func (e *Entry) SetIntensity(n int) int {
	e.alive = n > 0
	top := e.typ.Obj().MaxIntensity()
	switch {
	case n < 1:
		n = 1
	case n > top:
		n = top
	}
	e.intensity = n
	return n
}

// Age returns how long the entry has existed since its last decay step
func (e *Entry) Age() calendar.Duration {
	return e.age
}

// SetAge replaces the age
func (e *Entry) SetAge(d calendar.Duration) {
	e.age = d
}

// ModAge adds delta to the age and returns the new age
func (e *Entry) ModAge(delta calendar.Duration) calendar.Duration {
	e.age += delta
	return e.age
}

// IsAlive reports whether the entry is still in effect. Dead entries wait for Field.Sweep.
func (e *Entry) IsAlive() bool {
	return e.alive
}

// Kill marks the entry for removal by the next sweep
func (e *Entry) Kill() {
	e.alive = false
}

func (e *Entry) level() *Level {
	return e.typ.Obj().Level(e.intensity)
}

// IsDangerous reports whether the entry harms things at its current intensity
func (e *Entry) IsDangerous() bool {
	return e.level().Dangerous
}

// IsTransparent reports whether the entry lets light through at its current intensity
func (e *Entry) IsTransparent() bool {
	return e.level().Transparent
}

// Name returns the translated name for the current intensity
func (e *Entry) Name() string {
	name := e.level().Name
	if name == "" {
		return ""
	}
	return tr(name)
}

// Color returns the display color for the current intensity
func (e *Entry) Color() palette.Color {
	return e.level().Color
}

// Symbol returns the display glyph for the current intensity
func (e *Entry) Symbol() rune {
	return e.level().Symbol
}

// MoveCost returns the extra movement cost for the current intensity
func (e *Entry) MoveCost() int {
	return e.level().MoveCost
}

// LightEmitted returns the light given off at the current intensity
func (e *Entry) LightEmitted() int {
	return e.level().LightEmitted
}

// DecaysOnActualize reports whether the entry keeps decaying while its submap is not simulated
func (e *Entry) DecaysOnActualize() bool {
	return e.typ.Obj().AcceleratedDecay
}
