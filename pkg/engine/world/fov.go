package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// FOVRadius is the default field of view radius (Chebyshev distance).
const FOVRadius = 12

// TransparencyMap is anything that can say whether light passes through a point.
type TransparencyMap interface {
	InBounds(p Point) bool
	IsTransparent(p Point) bool
}

// CalculateFOV returns every point visible from center within radius, sorted by y then x.
// Uses a Chebyshev square with Bresenham line of sight. Opaque points are visible
// themselves but hide what lies behind them.
func CalculateFOV(m TransparencyMap, center Point, radius int) []Point {
	if m == nil || !m.InBounds(center) {
		return nil
	}

	visible := mapset.New[Point]()
	visible.Put(center)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := Point{center.X + dx, center.Y + dy}
			if !m.InBounds(p) {
				continue
			}
			if HasLineOfSight(m, center, p) {
				visible.Put(p)
			}
		}
	}

	result := make([]Point, 0, visible.Size())
	visible.Each(func(p Point) {
		result = append(result, p)
	})
	sort.Slice(result, func(i, j int) bool {
		if result[i].Y != result[j].Y {
			return result[i].Y < result[j].Y
		}
		return result[i].X < result[j].X
	})
	return result
}

// HasLineOfSight returns true if every point strictly between from and to is transparent.
// Uses Bresenham's line algorithm.
func HasLineOfSight(m TransparencyMap, from, to Point) bool {
	blocked := false
	walkLine(from, to, func(p Point) bool {
		if p == to {
			return false
		}
		if !m.InBounds(p) || !m.IsTransparent(p) {
			blocked = true
			return false
		}
		return true
	})
	return !blocked
}

// Line returns the Bresenham line from one point to another, excluding from and including to.
func Line(from, to Point) []Point {
	var pts []Point
	walkLine(from, to, func(p Point) bool {
		pts = append(pts, p)
		return true
	})
	return pts
}

// walkLine steps from (excluded) towards to (included), stopping early when fn returns false.
func walkLine(from, to Point, fn func(Point) bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return
	}

	absDx, absDy := abs(dx), abs(dy)

	var stepX, stepY int
	if dx > 0 {
		stepX = 1
	} else if dx < 0 {
		stepX = -1
	}
	if dy > 0 {
		stepY = 1
	} else if dy < 0 {
		stepY = -1
	}

	x, y := from.X, from.Y

	if absDx >= absDy {
		// Step along x
		err := 2*absDy - absDx
		for x != to.X {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy
			if !fn(Point{x, y}) {
				return
			}
		}
	} else {
		// Step along y
		err := 2*absDx - absDy
		for y != to.Y {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx
			if !fn(Point{x, y}) {
				return
			}
		}
	}
}
