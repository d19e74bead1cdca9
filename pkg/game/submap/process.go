package submap

import (
	"math/rand"

	"wasteland/pkg/engine/calendar"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/field"
	"wasteland/pkg/game/mapdata"
)

// spreadMove is one intensity level of gas arriving on a tile at the end of a turn
type spreadMove struct {
	to  world.Point
	typ field.TypeID
}

// ProcessStats summarizes one turn of field processing
type ProcessStats struct {
	Decayed int
	Spread  int
	Removed int
}

// dice rolls n dice with the given number of sides
func dice(rng *rand.Rand, n, sides int) int {
	total := 0
	for range n {
		total += 1 + rng.Intn(sides)
	}
	return total
}

// decays decides whether an entry of the given age loses an intensity level this turn.
// Young entries rarely decay; past the half-life most of them do.
func decays(rng *rand.Rand, halfLife, age calendar.Duration) bool {
	if halfLife <= 0 || age <= 0 {
		return false
	}
	return calendar.Duration(dice(rng, 2, int(age))) > halfLife
}

// ProcessFields advances every field in the submap by one turn: entries age,
// gases drift to neighboring tiles and entries decay by their half-life.
// Entries that fall below intensity 1 are removed at the end.
func (s *Submap) ProcessFields(rng *rand.Rand, turn calendar.Point) ProcessStats {
	var st ProcessStats
	defer s.Touch(turn)
	if s.fieldCount.Value() == 0 {
		return st
	}

	// Gas that drifts is added after the scan so every entry is processed once per turn.
	var moves []spreadMove
	pending := map[spreadMove]int{}
	for x := range SEEX {
		for y := range SEEY {
			f := &s.fld[x][y]
			if f.Count() == 0 {
				continue
			}
			p := world.Pt(x, y)
			f.Each(func(e *field.Entry) bool {
				typ := e.Type().Obj()
				e.ModAge(calendar.Turn)
				if typ.Phase == field.PhaseGas && typ.PercentSpread > 0 && rng.Intn(100) < typ.PercentSpread {
					if m, ok := s.spreadGas(rng, p, e, pending); ok {
						moves = append(moves, m)
						pending[m]++
						st.Spread++
					}
				}
				if e.IsAlive() && decays(rng, typ.HalfLife, e.Age()) {
					e.SetAge(0)
					e.SetIntensity(e.Intensity() - 1)
					st.Decayed++
				}
				return true
			})
		}
	}

	for _, m := range moves {
		s.Field(m.to).Add(m.typ, 1, 0)
	}
	for x := range SEEX {
		for y := range SEEY {
			st.Removed += s.fld[x][y].Sweep()
		}
	}
	return st
}

// gasCanEnter reports whether gas can drift onto p
func (s *Submap) gasCanEnter(p world.Point) bool {
	if s.HasFlagBit(p, mapdata.FlagSealed) {
		return false
	}
	return s.MoveCost(p) > 0 || s.HasFlagBit(p, mapdata.FlagPermeable)
}

// spreadGas takes one intensity level from e on p and picks a random neighbor inside
// the submap that gas can enter and that is not saturated, counting levels already
// pending for it this turn. The caller delivers the returned move.
func (s *Submap) spreadGas(rng *rand.Rand, p world.Point, e *field.Entry, pending map[spreadMove]int) (spreadMove, bool) {
	top := e.Type().Obj().MaxIntensity()
	var targets []world.Point
	for _, n := range world.Neighbors(p) {
		if !s.InBounds(n) || !s.gasCanEnter(n) {
			continue
		}
		have := pending[spreadMove{n, e.Type()}]
		if other := s.Field(n).Find(e.Type()); other != nil {
			have += other.Intensity()
		}
		if have >= top {
			continue
		}
		targets = append(targets, n)
	}
	if len(targets) == 0 {
		return spreadMove{}, false
	}
	e.SetIntensity(e.Intensity() - 1)
	return spreadMove{targets[rng.Intn(len(targets))], e.Type()}, true
}

// Actualize catches the submap up after it spent elapsed turns out of simulation.
// Fields with accelerated decay lose one intensity level per half-life elapsed;
// the remainder carries into their age. Returns the number of entries removed.
func (s *Submap) Actualize(elapsed calendar.Duration) int {
	if elapsed <= 0 || s.fieldCount.Value() == 0 {
		return 0
	}
	removed := 0
	for x := range SEEX {
		for y := range SEEY {
			f := &s.fld[x][y]
			if f.Count() == 0 {
				continue
			}
			f.Each(func(e *field.Entry) bool {
				half := e.Type().Obj().HalfLife
				if !e.DecaysOnActualize() || half <= 0 {
					return true
				}
				total := e.Age() + elapsed
				if drops := int(total / half); drops > 0 {
					e.SetIntensity(e.Intensity() - drops)
				}
				e.SetAge(total % half)
				return true
			})
			removed += f.Sweep()
		}
	}
	return removed
}
