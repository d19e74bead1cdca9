// Package trap holds the static trap type table referenced by terrain.
package trap

import (
	"encoding/json"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"wasteland/pkg/engine/data"
	"wasteland/pkg/engine/palette"
	"wasteland/pkg/engine/registry"
)

// tr translates a name loaded from data. Names are not format strings.
var tr = gotext.Get

// ID is the dense id of a trap type. Null is the empty trap.
type ID uint16

// Null means no trap
const Null ID = 0

// Trap is one trap type
type Trap struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Symbol     string        `json:"symbol"`
	Color      palette.Color `json:"color"`
	Visibility int           `json:"visibility"`
	Avoidance  int           `json:"avoidance"`
	Difficulty int           `json:"difficulty"`
	Benign     bool          `json:"benign"`
	Action     string        `json:"action"`
}

var traps = registry.New("trap", "tr_null", func() Trap {
	return Trap{ID: "tr_null", Name: "none", Symbol: " ", Benign: true}
})

// Register adds the trap loader to l
func Register(l *data.Loader) {
	l.Register("trap", Load)
}

// Load reads one "trap" object
func Load(obj json.RawMessage, src string) error {
	var t Trap
	if err := json.Unmarshal(obj, &t); err != nil {
		return err
	}
	if t.ID == "" {
		return fmt.Errorf("trap without id")
	}
	if t.Symbol == "" {
		t.Symbol = "^"
	}
	_, err := traps.Insert(t.ID, t)
	return err
}

// Reset empties the table
func Reset() {
	traps.Reset()
}

// Finalize freezes the table
func Finalize() {
	traps.Finalize()
}

// CheckConsistency reports trap definitions that cannot work
func CheckConsistency() []error {
	var errs []error
	traps.Each(func(i int, id string, t *Trap) {
		if i != 0 && t.Name == "" {
			errs = append(errs, fmt.Errorf("trap %s has no name", id))
		}
		if t.Visibility < 0 || t.Avoidance < 0 || t.Difficulty < 0 {
			errs = append(errs, fmt.Errorf("trap %s has negative visibility, avoidance or difficulty", id))
		}
	})
	return errs
}

// FromString returns the id of a trap type
func FromString(s string) (ID, bool) {
	i, ok := traps.Find(s)
	return ID(i), ok
}

// Count returns the number of trap types including the null trap
func Count() int {
	return traps.Len()
}

// Obj returns the trap type. Invalid ids give the null trap.
func (id ID) Obj() *Trap {
	return traps.Get(int(id))
}

// ID returns the string id
func (id ID) ID() string {
	return traps.ID(int(id))
}

// IsNull reports whether this is the empty trap
func (id ID) IsNull() bool {
	return id == Null
}

// DisplayName returns the translated name
func (t *Trap) DisplayName() string {
	return tr(t.Name)
}
