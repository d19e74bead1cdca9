package submap

import (
	"testing"

	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/field"
)

func TestLightMap_Dark(t *testing.T) {
	loadFixture(t)
	s := New(ter(t, "t_dirt"))
	lm := s.LightMap()
	EachPoint(func(p world.Point) {
		if lm[p.X][p.Y] != 0 {
			t.Fatalf("light at %v = %d in an empty submap", p, lm[p.X][p.Y])
		}
	})
}

func TestLightMap_FireBehindWall(t *testing.T) {
	loadFixture(t)
	s := New(ter(t, "t_dirt"))
	src := world.Pt(3, 5)
	s.AddField(src, field.Fire, 3, 0)
	for y := range SEEY {
		s.SetTer(world.Pt(6, y), ter(t, "t_wall"))
	}

	light := s.LightEmitted(src)
	if light <= 0 {
		t.Fatalf("LightEmitted(fire) = %d, want > 0", light)
	}
	lm := s.LightMap()
	if lm[src.X][src.Y] != light {
		t.Errorf("light at the fire = %d, want %d", lm[src.X][src.Y], light)
	}
	if got, want := lm[4][5], light-LightFalloff; got != want {
		t.Errorf("light one tile away = %d, want %d", got, want)
	}
	if lm[7][5] != 0 {
		t.Errorf("light behind the wall = %d, want 0", lm[7][5])
	}
}
