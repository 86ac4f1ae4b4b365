package maze

import "math/rand"

// Generate carves a perfect maze over a new width x height grid using an
// iterative depth-first backtracker: starting from (0,0), it repeatedly
// opens a passage to a uniformly chosen unvisited neighbor of the cell on
// top of an explicit stack, backtracking when a cell has none left. The
// explicit stack keeps very large grids from exhausting call depth.
//
// The result is a spanning tree over the cell graph: every cell reachable,
// exactly width*height - 1 open passage-pairs. For a given rng state the
// layout is fully determined, so seeding the rng makes generation
// reproducible bit for bit.
func Generate(width, height int, rng *rand.Rand) (*Grid, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	start := Position{X: 0, Y: 0}
	visited[start.Y][start.X] = true
	stack := []Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []Direction
		for _, d := range Directions {
			if n, ok := grid.Neighbor(current, d); ok && !visited[n.Y][n.X] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		next, _ := grid.Neighbor(current, d)
		grid.OpenPassage(current, d)
		visited[next.Y][next.X] = true
		stack = append(stack, next)
	}

	return grid, nil
}
