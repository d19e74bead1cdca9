package submap

import (
	"encoding/json"
	"fmt"

	"wasteland/pkg/engine/calendar"
	"wasteland/pkg/engine/debug"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/field"
	"wasteland/pkg/game/mapdata"
	"wasteland/pkg/game/trap"
)

// serialVersion is the current save format of a submap
const serialVersion = 1

// run is one run-length encoded stretch of equal values, stored as [value, count].
type run[T comparable] struct {
	V T
	N int
}

func (r run[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.V, r.N})
}

func (r *run[T]) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("run must be [value, count], got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &r.V); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &r.N)
}

// encodeRuns walks the grid row by row and collapses equal neighbors
func encodeRuns[T comparable](at func(p world.Point) T) []run[T] {
	var runs []run[T]
	for y := range SEEY {
		for x := range SEEX {
			v := at(world.Pt(x, y))
			if n := len(runs); n > 0 && runs[n-1].V == v {
				runs[n-1].N++
				continue
			}
			runs = append(runs, run[T]{V: v, N: 1})
		}
	}
	return runs
}

// decodeRuns is the inverse of encodeRuns. The runs must cover the grid exactly.
func decodeRuns[T comparable](what string, runs []run[T], set func(p world.Point, v T)) error {
	i := 0
	for _, r := range runs {
		if r.N <= 0 {
			return fmt.Errorf("%s: run of %d tiles", what, r.N)
		}
		for range r.N {
			if i >= SEEX*SEEY {
				return fmt.Errorf("%s: runs cover more than %d tiles", what, SEEX*SEEY)
			}
			set(world.Pt(i%SEEX, i/SEEX), r.V)
			i++
		}
	}
	if i != SEEX*SEEY {
		return fmt.Errorf("%s: runs cover %d of %d tiles", what, i, SEEX*SEEY)
	}
	return nil
}

type tileID struct {
	X  int    `json:"x"`
	Y  int    `json:"y"`
	ID string `json:"id"`
}

type fieldEntryJSON struct {
	Type      string            `json:"type"`
	Intensity int               `json:"intensity"`
	Age       calendar.Duration `json:"age"`
}

type tileFields struct {
	X      int              `json:"x"`
	Y      int              `json:"y"`
	Fields []fieldEntryJSON `json:"fields"`
}

type tileItems struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Items []Item `json:"items"`
}

type tileText struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Text string `json:"text"`
}

type submapJSON struct {
	Version         int            `json:"version"`
	TurnLastTouched calendar.Point `json:"turn_last_touched"`
	Terrain         []run[string]  `json:"terrain"`
	Radiation       []run[int]     `json:"radiation"`
	Furniture       []tileID       `json:"furniture,omitempty"`
	Traps           []tileID       `json:"traps,omitempty"`
	Fields          []tileFields   `json:"fields,omitempty"`
	Items           []tileItems    `json:"items,omitempty"`
	Graffiti        []tileText     `json:"graffiti,omitempty"`
	Spawns          []Spawn        `json:"spawns,omitempty"`
	Vehicles        []*Vehicle     `json:"vehicles,omitempty"`
	Computer        *Computer      `json:"computer,omitempty"`
	Camp            *BaseCamp      `json:"camp,omitempty"`
}

// MarshalJSON writes the submap with string ids so saves survive data reloads.
// Terrain and radiation are run-length encoded; the sparse layers are lists of tiles.
func (s *Submap) MarshalJSON() ([]byte, error) {
	j := submapJSON{
		Version:         serialVersion,
		TurnLastTouched: s.lastTouched,
		Terrain:         encodeRuns(func(p world.Point) string { return s.Ter(p).ID() }),
		Radiation:       encodeRuns(s.Radiation),
		Spawns:          s.spawns,
		Vehicles:        s.vehicles,
		Computer:        s.comp,
		Camp:            s.camp,
	}
	for y := range SEEY {
		for x := range SEEX {
			p := world.Pt(x, y)
			if f := s.Furn(p); !f.IsNull() {
				j.Furniture = append(j.Furniture, tileID{x, y, f.ID()})
			}
			if t := s.Trap(p); !t.IsNull() {
				j.Traps = append(j.Traps, tileID{x, y, t.ID()})
			}
			if f := s.Field(p); f.Count() > 0 {
				tf := tileFields{X: x, Y: y}
				f.Each(func(e *field.Entry) bool {
					tf.Fields = append(tf.Fields, fieldEntryJSON{e.Type().ID(), e.Intensity(), e.Age()})
					return true
				})
				if len(tf.Fields) > 0 {
					j.Fields = append(j.Fields, tf)
				}
			}
			if items := s.Items(p); len(items) > 0 {
				j.Items = append(j.Items, tileItems{x, y, items})
			}
			if g := s.Graffiti(p); g != "" {
				j.Graffiti = append(j.Graffiti, tileText{x, y, g})
			}
		}
	}
	return json.Marshal(j)
}

func (s *Submap) bindFields() {
	for x := range SEEX {
		for y := range SEEY {
			s.fld[x][y].Bind(&s.fieldCount)
		}
	}
}

func checkTile(what string, x, y int) error {
	if x < 0 || x >= SEEX || y < 0 || y >= SEEY {
		return fmt.Errorf("%s at %d,%d is outside the submap", what, x, y)
	}
	return nil
}

// UnmarshalJSON replaces the submap with a saved one. Unknown ids become the null
// entry with a diagnostic. Counters are rebuilt from the tiles. On error the
// submap is left unchanged.
func (s *Submap) UnmarshalJSON(b []byte) error {
	var j submapJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	if j.Version > serialVersion {
		return fmt.Errorf("submap save version %d is newer than supported %d", j.Version, serialVersion)
	}

	fresh := &Submap{}
	fresh.bindFields()
	if err := fresh.decode(&j); err != nil {
		return err
	}
	*s = *fresh
	s.bindFields()
	s.RecountFields()
	return nil
}

func (s *Submap) decode(j *submapJSON) error {
	s.lastTouched = j.TurnLastTouched
	if err := decodeRuns("terrain", j.Terrain, func(p world.Point, id string) {
		s.SetTer(p, mapdata.TerLookup(id))
	}); err != nil {
		return err
	}
	if len(j.Radiation) > 0 {
		if err := decodeRuns("radiation", j.Radiation, s.SetRadiation); err != nil {
			return err
		}
	}
	for _, t := range j.Furniture {
		if err := checkTile("furniture", t.X, t.Y); err != nil {
			return err
		}
		s.SetFurn(world.Pt(t.X, t.Y), mapdata.FurnLookup(t.ID))
	}
	for _, t := range j.Traps {
		if err := checkTile("trap", t.X, t.Y); err != nil {
			return err
		}
		id, ok := trap.FromString(t.ID)
		if !ok {
			debug.Msg("unknown trap id %q in saved submap", t.ID)
		}
		s.SetTrap(world.Pt(t.X, t.Y), id)
	}
	for _, tf := range j.Fields {
		if err := checkTile("field", tf.X, tf.Y); err != nil {
			return err
		}
		for _, e := range tf.Fields {
			s.AddField(world.Pt(tf.X, tf.Y), field.FromIdent(e.Type), e.Intensity, e.Age)
		}
	}
	for _, ti := range j.Items {
		if err := checkTile("items", ti.X, ti.Y); err != nil {
			return err
		}
		for _, it := range ti.Items {
			s.AddItem(world.Pt(ti.X, ti.Y), it)
		}
	}
	for _, g := range j.Graffiti {
		if err := checkTile("graffiti", g.X, g.Y); err != nil {
			return err
		}
		s.SetGraffiti(world.Pt(g.X, g.Y), g.Text)
	}
	for _, sp := range j.Spawns {
		if err := checkTile("spawn", sp.Pos.X, sp.Pos.Y); err != nil {
			return err
		}
		s.AddSpawn(sp)
	}
	for _, v := range j.Vehicles {
		if v != nil {
			s.AddVehicle(v)
		}
	}
	s.comp = j.Computer
	s.camp = j.Camp
	return nil
}
