package maze

// Position identifies a cell by its column (X) and row (Y) in the grid,
// with (0,0) the top-left corner, X growing east and Y growing south.
type Position struct {
	X int
	Y int
}

// Cell is a single grid cell holding one passage flag per compass
// direction. A cell is born with all four passages closed; carving opens
// them and nothing ever closes them again.
type Cell struct {
	open [4]bool
}

// Open reports whether the passage toward d is carved.
func (c *Cell) Open(d Direction) bool {
	return c.open[d]
}
