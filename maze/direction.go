package maze

// Direction identifies one of the four compass directions a cell can open
// toward. The numeric order (North, East, South, West) is fixed: generation,
// loop injection, search and the serialized form all iterate directions in
// this order, so changing it changes every seeded maze.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four directions in canonical iteration order.
var Directions = [4]Direction{North, East, South, West}

// Unit vectors per direction, indexed by Direction.
var (
	dx = [4]int{0, 1, 0, -1}
	dy = [4]int{-1, 0, 1, 0}
)

// Opposite returns the direction pointing back at the caller:
// North<->South, East<->West.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// String returns the direction name, or "Unknown" for out-of-range values.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}
