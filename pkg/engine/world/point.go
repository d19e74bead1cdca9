// Package world provides generic 2D grid geometry: points, directions and line of sight.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Point is a position on a 2D grid
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{x, y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p minus q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// String returns "x,y"
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Chebyshev returns the chessboard distance between p and q.
func Chebyshev(p, q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

// Tripoint is a position in the layered world, Z being the vertical level.
type Tripoint struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// XY drops the level
func (t Tripoint) XY() Point {
	return Point{t.X, t.Y}
}

// String returns "x,y,z"
func (t Tripoint) String() string {
	return fmt.Sprintf("%d,%d,%d", t.X, t.Y, t.Z)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
