package submap

import "wasteland/pkg/engine/world"

// LightFalloff is the brightness lost per tile of distance from a light source
const LightFalloff = 10

// LightEmitted returns the light given off at p by terrain, furniture and fields
func (s *Submap) LightEmitted(p world.Point) int {
	light := s.Ter(p).Obj().LightEmitted
	if f := s.Furn(p); !f.IsNull() {
		light = max(light, f.Obj().LightEmitted)
	}
	return max(light, s.Field(p).LightEmitted())
}

// LightMap returns the brightness of every tile, indexed [x][y]. Each source lights
// what it can see, losing LightFalloff per tile; overlapping sources do not add up.
func (s *Submap) LightMap() [SEEX][SEEY]int {
	var lm [SEEX][SEEY]int
	EachPoint(func(src world.Point) {
		light := s.LightEmitted(src)
		if light <= 0 {
			return
		}
		for _, q := range world.CalculateFOV(s, src, light/LightFalloff) {
			if b := light - LightFalloff*world.Chebyshev(src, q); b > lm[q.X][q.Y] {
				lm[q.X][q.Y] = b
			}
		}
	})
	return lm
}
