package maze

import "fmt"

// Farthest returns the cell with the maximum shortest-path distance (in
// passage hops) from start, found with a breadth-first traversal of the
// passage graph. Neighbors are enqueued in the fixed North, East, South,
// West order and the first cell found at each new maximum wins, so the
// result is deterministic for a given grid. Grids produced by Generate are
// connected, so every cell is reachable.
func Farthest(grid *Grid, start Position) (Position, error) {
	if !grid.InBounds(start) {
		return Position{}, fmt.Errorf("%w: start %d,%d in %dx%d grid",
			ErrOutOfBounds, start.X, start.Y, grid.Width, grid.Height)
	}

	type frontierCell struct {
		pos  Position
		dist int
	}

	visited := make([][]bool, grid.Height)
	for y := range visited {
		visited[y] = make([]bool, grid.Width)
	}
	visited[start.Y][start.X] = true

	queue := []frontierCell{{pos: start}}
	farthest := start
	maxDist := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.dist > maxDist {
			maxDist = current.dist
			farthest = current.pos
		}

		for _, d := range Directions {
			if !grid.HasPassage(current.pos, d) {
				continue
			}
			if n, ok := grid.Neighbor(current.pos, d); ok && !visited[n.Y][n.X] {
				visited[n.Y][n.X] = true
				queue = append(queue, frontierCell{pos: n, dist: current.dist + 1})
			}
		}
	}

	return farthest, nil
}
