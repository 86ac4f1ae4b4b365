package export

import (
	"fmt"
	"strings"

	"github.com/huyndao/mazegen/maze"
)

const (
	svgCellSize  = 24
	svgWallWidth = 2
)

// SVG renders the maze as a standalone SVG document. A wall segment is
// emitted only where a passage is closed; the outer boundary is always
// drawn so edge cells stay enclosed even where their border flag carries
// no internal wall. The start and end cells are marked with green and red
// circles at their centers.
func SVG(m *maze.Maze) string {
	grid := m.Grid
	w := grid.Width*svgCellSize + svgWallWidth
	h := grid.Height*svgCellSize + svgWallWidth

	line := func(x1, y1, x2, y2 int) string {
		return fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black" stroke-width="%d" />`,
			x1, y1, x2, y2, svgWallWidth)
	}

	var elements []string
	elements = append(elements,
		fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg" style="background:#fff">`, w, h))

	// Outer boundary.
	elements = append(elements,
		line(0, 0, w, 0),
		line(0, 0, 0, h),
		line(w, 0, w, h),
		line(0, h, w, h))

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := maze.Position{X: x, Y: y}
			px := x * svgCellSize
			py := y * svgCellSize

			if !grid.HasPassage(p, maze.North) {
				elements = append(elements, line(px, py, px+svgCellSize, py))
			}
			if !grid.HasPassage(p, maze.East) {
				elements = append(elements, line(px+svgCellSize, py, px+svgCellSize, py+svgCellSize))
			}
			if !grid.HasPassage(p, maze.South) {
				elements = append(elements, line(px, py+svgCellSize, px+svgCellSize, py+svgCellSize))
			}
			if !grid.HasPassage(p, maze.West) {
				elements = append(elements, line(px, py, px, py+svgCellSize))
			}
		}
	}

	marker := func(p maze.Position, fill string) string {
		cx := p.X*svgCellSize + svgCellSize/2
		cy := p.Y*svgCellSize + svgCellSize/2
		return fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s" />`,
			cx, cy, svgCellSize/4, fill)
	}
	elements = append(elements, marker(m.Start, "green"), marker(m.End, "red"))
	elements = append(elements, "</svg>")

	return strings.Join(elements, "\n")
}
