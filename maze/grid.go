package maze

import "fmt"

// Grid is a rectangular collection of cells, one per coordinate. Its shape
// is fixed at creation; only the passage flags of its cells mutate, and
// only through OpenPassage, which keeps opposite flags symmetric.
type Grid struct {
	Width  int
	Height int
	cells  [][]Cell // indexed [y][x]
}

// NewGrid creates a grid of width x height cells with every passage
// closed. Both dimensions must be at least 1.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}, nil
}

// InBounds reports whether p falls inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Neighbor returns the position adjacent to p in direction d and true,
// or the zero position and false when that neighbor would fall outside
// the grid.
func (g *Grid) Neighbor(p Position, d Direction) (Position, bool) {
	n := Position{X: p.X + dx[d], Y: p.Y + dy[d]}
	if !g.InBounds(n) {
		return Position{}, false
	}
	return n, true
}

// HasPassage reports whether the cell at p has a carved passage toward d.
func (g *Grid) HasPassage(p Position, d Direction) bool {
	return g.cells[p.Y][p.X].open[d]
}

// OpenPassage carves the passage from p toward d and the symmetric
// passage from the neighbor back toward p. Callers are expected to
// pre-validate bounds; a call whose cell or neighbor falls outside the
// grid is a no-op.
func (g *Grid) OpenPassage(p Position, d Direction) {
	if !g.InBounds(p) {
		return
	}
	n, ok := g.Neighbor(p, d)
	if !ok {
		return
	}
	g.cells[p.Y][p.X].open[d] = true
	g.cells[n.Y][n.X].open[d.Opposite()] = true
}

// OpenPassages returns the number of open passage-pairs in the grid. A
// freshly generated perfect maze has exactly width*height - 1 of them;
// loop injection only ever raises the count.
func (g *Grid) OpenPassages() int {
	total := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			for _, d := range Directions {
				if g.cells[y][x].open[d] {
					total++
				}
			}
		}
	}
	return total / 2
}
