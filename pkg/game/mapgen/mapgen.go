// Package mapgen fills submaps with wilderness terrain from a noise field.
package mapgen

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/mapdata"
	"wasteland/pkg/game/submap"
)

// DefaultScale is the noise frequency per tile
const DefaultScale = 0.06

// Band maps noise values below Below to a terrain type.
type Band struct {
	Below float64
	Ter   string
}

// Scatter places furniture on a terrain type with a chance given per thousand tiles.
type Scatter struct {
	Furn    string
	On      string
	PerMill int
}

// DefaultBands runs from lakes through fields to woods
var DefaultBands = []Band{
	{Below: -0.45, Ter: "t_water_sh"},
	{Below: 0.15, Ter: "t_grass"},
	{Below: 0.4, Ter: "t_dirt"},
	{Below: 2, Ter: "t_tree"},
}

// DefaultScatter drops the odd boulder and shrub
var DefaultScatter = []Scatter{
	{Furn: "f_boulder_small", On: "t_dirt", PerMill: 30},
	{Furn: "f_bush", On: "t_grass", PerMill: 15},
}

// Underground and sky fill for levels other than the surface
const (
	UndergroundTer = "t_rock"
	SkyTer         = "t_open_air"
)

// Generator produces the same submap for the same seed and position.
type Generator struct {
	Seed    int64
	Scale   float64
	Bands   []Band
	Scatter []Scatter

	noise opensimplex.Noise
}

// New returns a generator with the default bands and scatter
func New(seed int64) *Generator {
	return &Generator{
		Seed:    seed,
		Scale:   DefaultScale,
		Bands:   DefaultBands,
		Scatter: DefaultScatter,
	}
}

type band struct {
	below float64
	ter   mapdata.TerID
}

type scatter struct {
	furn    mapdata.FurnID
	on      mapdata.TerID
	perMill int
}

// Generate builds the submap at pos. Terrain and furniture tables must be finalized.
func (g *Generator) Generate(pos world.Tripoint) *submap.Submap {
	switch {
	case pos.Z < 0:
		return submap.New(mapdata.TerLookup(UndergroundTer))
	case pos.Z > 0:
		return submap.New(mapdata.TerLookup(SkyTer))
	}
	if g.noise == nil {
		g.noise = opensimplex.New(g.Seed)
	}
	scale := g.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	bands := make([]band, len(g.Bands))
	for i, b := range g.Bands {
		bands[i] = band{b.Below, mapdata.TerLookup(b.Ter)}
	}
	scatters := make([]scatter, len(g.Scatter))
	for i, s := range g.Scatter {
		scatters[i] = scatter{mapdata.FurnLookup(s.Furn), mapdata.TerLookup(s.On), s.PerMill}
	}

	rng := rand.New(rand.NewSource(g.submapSeed(pos)))
	sm := submap.New(mapdata.TerNull)
	submap.EachPoint(func(p world.Point) {
		gx := float64(pos.X*submap.SEEX + p.X)
		gy := float64(pos.Y*submap.SEEY + p.Y)
		v := g.noise.Eval2(gx*scale, gy*scale)

		t := mapdata.TerNull
		for _, b := range bands {
			if v < b.below {
				t = b.ter
				break
			}
		}
		sm.SetTer(p, t)

		for _, s := range scatters {
			if s.on == t && rng.Intn(1000) < s.perMill {
				sm.SetFurn(p, s.furn)
				break
			}
		}
	})
	return sm
}

// submapSeed mixes the generator seed with the submap position
func (g *Generator) submapSeed(pos world.Tripoint) int64 {
	const (
		px = 73856093
		py = 19349663
		pz = 83492791
	)
	return g.Seed ^ int64(pos.X)*px ^ int64(pos.Y)*py ^ int64(pos.Z)*pz
}
