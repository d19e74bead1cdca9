package submap

import (
	"math/rand"

	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/mapdata"
)

// BashResult describes the outcome of smashing a tile
type BashResult struct {
	Attempted bool
	Success   bool
	Sound     string
	Volume    int
	Items     []Item
}

func roll(rng *rand.Rand, r mapdata.Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// bashRoll decides whether strength beats a threshold drawn from [str_min, str_max]
func bashRoll(rng *rand.Rand, b *mapdata.BashInfo, strength int) BashResult {
	threshold := roll(rng, mapdata.Range{Min: b.StrMin, Max: b.StrMax})
	res := BashResult{Attempted: true, Success: strength >= threshold}
	if res.Success {
		res.Sound, res.Volume = b.Sound, b.SoundVol
		if res.Sound == "" {
			res.Sound = "smash!"
		}
	} else {
		res.Sound, res.Volume = b.SoundFail, b.SoundFailVol
		if res.Sound == "" {
			res.Sound = "thump!"
		}
	}
	return res
}

// dropItems spawns the bash yield at p and returns it
func (s *Submap) dropItems(rng *rand.Rand, p world.Point, drops []mapdata.ItemDrop) []Item {
	var out []Item
	for _, d := range drops {
		n := 1
		if d.Count != (mapdata.Range{}) {
			n = roll(rng, d.Count)
		}
		for range n {
			it := Item{Type: d.Item, Charges: roll(rng, d.Charges)}
			s.AddItem(p, it)
			out = append(out, it)
		}
	}
	return out
}

// Bash smashes whatever is at p with the given strength. Bashable furniture is hit
// before terrain; furniture that cannot be bashed leaves the blow to the terrain.
// On success the furniture or terrain becomes its bash result and the debris is
// dropped on the tile.
func (s *Submap) Bash(rng *rand.Rand, p world.Point, strength int) BashResult {
	if furn := s.Furn(p); !furn.IsNull() && furn.Obj().IsBashable() {
		obj := furn.Obj()
		res := bashRoll(rng, obj.Bash, strength)
		if res.Success {
			s.SetFurn(p, obj.Bash.FurnSetID())
			res.Items = s.dropItems(rng, p, obj.Bash.Items)
		}
		return res
	}

	obj := s.Ter(p).Obj()
	if !obj.IsBashable() {
		return BashResult{}
	}
	res := bashRoll(rng, obj.Bash, strength)
	if res.Success {
		if next := obj.Bash.TerSetID(); !next.IsNull() {
			s.SetTer(p, next)
		}
		res.Items = s.dropItems(rng, p, obj.Bash.Items)
	}
	return res
}
