// Package maze implements procedural generation of rectangular mazes: a
// randomized depth-first carver producing perfect (spanning-tree) mazes,
// optional loop injection for non-perfect ones, and a breadth-first
// farthest-cell search used to pick a default end point.
package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Maze is a finished, frozen maze: the carved grid plus its designated
// start and end cells and the loop factor that was requested. Renderers
// treat it as read-only; nothing mutates a Maze after Build returns it.
type Maze struct {
	Grid       *Grid
	Start      Position
	End        Position
	LoopFactor float64
}

// BuildRequest carries the parameters for one maze build. Seed nil means
// a non-deterministic maze; Start nil defaults to (0,0); End nil defaults
// to the farthest reachable cell from the resolved start.
type BuildRequest struct {
	Width      int
	Height     int
	Seed       *int64
	LoopFactor float64
	Start      *Position
	End        *Position
}

// Build validates the request, generates the maze and freezes it into a
// Maze value. Validation is all-or-nothing: on any failure no partial
// maze is returned. Identical width, height and seed always produce an
// identical maze.
func Build(req BuildRequest) (*Maze, error) {
	if req.Width < 1 || req.Height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, req.Width, req.Height)
	}
	if req.LoopFactor < 0.0 || req.LoopFactor > 1.0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLoopFactor, req.LoopFactor)
	}

	start := Position{X: 0, Y: 0}
	if req.Start != nil {
		start = *req.Start
	}
	if start.X < 0 || start.X >= req.Width || start.Y < 0 || start.Y >= req.Height {
		return nil, fmt.Errorf("%w: start %d,%d in %dx%d grid",
			ErrOutOfBounds, start.X, start.Y, req.Width, req.Height)
	}
	if req.End != nil {
		if req.End.X < 0 || req.End.X >= req.Width || req.End.Y < 0 || req.End.Y >= req.Height {
			return nil, fmt.Errorf("%w: end %d,%d in %dx%d grid",
				ErrOutOfBounds, req.End.X, req.End.Y, req.Width, req.Height)
		}
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	grid, err := Generate(req.Width, req.Height, rng)
	if err != nil {
		return nil, err
	}

	if req.LoopFactor > 0 {
		if err := AddLoops(grid, req.LoopFactor, rng); err != nil {
			return nil, err
		}
	}

	end := Position{}
	if req.End != nil {
		end = *req.End
	} else {
		end, err = Farthest(grid, start)
		if err != nil {
			return nil, err
		}
	}

	return &Maze{
		Grid:       grid,
		Start:      start,
		End:        end,
		LoopFactor: req.LoopFactor,
	}, nil
}
