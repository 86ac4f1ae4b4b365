package export

import (
	"testing"

	"github.com/huyndao/mazegen/maze"
	"github.com/stretchr/testify/require"
)

// fixtureMaze returns the maze Generate(3, 3) produces with seed 42, built
// by hand so the exporter tests do not depend on the generator. Start is
// (0,0) and end the farthest cell, (1,0).
func fixtureMaze(t *testing.T) *maze.Maze {
	t.Helper()

	g, err := maze.NewGrid(3, 3)
	require.NoError(t, err)

	pairs := []struct {
		p maze.Position
		d maze.Direction
	}{
		{maze.Position{X: 0, Y: 0}, maze.South},
		{maze.Position{X: 1, Y: 0}, maze.East},
		{maze.Position{X: 2, Y: 0}, maze.South},
		{maze.Position{X: 0, Y: 1}, maze.South},
		{maze.Position{X: 1, Y: 1}, maze.East},
		{maze.Position{X: 1, Y: 1}, maze.South},
		{maze.Position{X: 2, Y: 1}, maze.South},
		{maze.Position{X: 0, Y: 2}, maze.East},
	}
	for _, pair := range pairs {
		g.OpenPassage(pair.p, pair.d)
	}
	require.Equal(t, 8, g.OpenPassages())

	return &maze.Maze{
		Grid:       g,
		Start:      maze.Position{X: 0, Y: 0},
		End:        maze.Position{X: 1, Y: 0},
		LoopFactor: 0,
	}
}

// corridorMaze returns a 5x1 straight corridor from (0,0) to (4,0).
func corridorMaze(t *testing.T) *maze.Maze {
	t.Helper()

	g, err := maze.NewGrid(5, 1)
	require.NoError(t, err)
	for x := 0; x < 4; x++ {
		g.OpenPassage(maze.Position{X: x, Y: 0}, maze.East)
	}

	return &maze.Maze{
		Grid:  g,
		Start: maze.Position{X: 0, Y: 0},
		End:   maze.Position{X: 4, Y: 0},
	}
}
