package export

import (
	"strings"

	"github.com/huyndao/mazegen/maze"
)

// ASCII renders the maze as a fixed-width character grid: "+---+" wall
// rows, 3-wide cell interiors, and S / E markers in the start and end
// cells. Walls shared between neighbors are drawn once.
func ASCII(m *maze.Maze) string {
	grid := m.Grid
	var b strings.Builder

	b.WriteString("+")
	b.WriteString(strings.Repeat("---+", grid.Width))

	for y := 0; y < grid.Height; y++ {
		b.WriteString("\n|")
		for x := 0; x < grid.Width; x++ {
			p := maze.Position{X: x, Y: y}
			switch p {
			case m.Start:
				b.WriteString(" S ")
			case m.End:
				b.WriteString(" E ")
			default:
				b.WriteString("   ")
			}
			if grid.HasPassage(p, maze.East) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}

		b.WriteString("\n+")
		for x := 0; x < grid.Width; x++ {
			if grid.HasPassage(maze.Position{X: x, Y: y}, maze.South) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
	}

	return b.String()
}
