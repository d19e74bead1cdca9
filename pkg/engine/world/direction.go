package world

// Direction is one of the eight compass directions
type Direction int

// Direction constants, clockwise from north
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{"North", "NorthEast", "East", "SouthEast", "South", "SouthWest", "West", "NorthWest"}

var directionDeltas = [...]Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// AllDirections returns all eight directions for iteration
func AllDirections() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// CardinalDirections returns the four orthogonal directions
func CardinalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// IsValid returns true if the direction is one of the eight compass directions
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 4) % 8
}

// Delta returns the x/y offset of one step in this direction
func (d Direction) Delta() Point {
	if !d.IsValid() {
		return Point{}
	}
	return directionDeltas[d]
}

// Neighbors returns the eight points adjacent to p
func Neighbors(p Point) []Point {
	out := make([]Point, 0, len(directionDeltas))
	for _, d := range directionDeltas {
		out = append(out, p.Add(d))
	}
	return out
}
