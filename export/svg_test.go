package export

import (
	"strings"
	"testing"

	"github.com/huyndao/mazegen/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVGGoldenFixture(t *testing.T) {
	out := SVG(fixtureMaze(t))

	// 3x3 cells at 24px plus 2px wall -> 74x74 canvas.
	assert.True(t, strings.HasPrefix(out,
		`<svg width="74" height="74" xmlns="http://www.w3.org/2000/svg" style="background:#fff">`))
	assert.True(t, strings.HasSuffix(out, "</svg>"))

	// 4 boundary segments plus one segment per closed cell wall: the
	// fixture has 36 flags, 16 of them open, so 20 walls remain.
	assert.Equal(t, 24, strings.Count(out, "<line"))

	// Start (0,0) and end (1,0) markers at the cell centers.
	assert.Contains(t, out, `<circle cx="12" cy="12" r="6" fill="green" />`)
	assert.Contains(t, out, `<circle cx="36" cy="12" r="6" fill="red" />`)
}

func TestSVGOmitsWallsForOpenPassages(t *testing.T) {
	out := SVG(corridorMaze(t))

	// The corridor's internal east/west walls are all open; the only
	// segments are the outer boundary and each cell's north/south walls
	// plus the two end caps: 4 + 5*2 + 2 = 16.
	assert.Equal(t, 16, strings.Count(out, "<line"))
	// No vertical separator between cell 0 and cell 1 at x=24.
	assert.NotContains(t, out, `<line x1="24" y1="0" x2="24" y2="24"`)
}

func TestSVGSingleCellIncludesBoundary(t *testing.T) {
	g, err := maze.NewGrid(1, 1)
	require.NoError(t, err)
	m := &maze.Maze{Grid: g, Start: maze.Position{X: 0, Y: 0}, End: maze.Position{X: 0, Y: 0}}

	out := SVG(m)
	// Outer boundary plus the cell's own four closed walls.
	assert.Equal(t, 8, strings.Count(out, "<line"))
	assert.Equal(t, 2, strings.Count(out, "<circle"))
}
