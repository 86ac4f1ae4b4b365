package maze

import (
	"fmt"
	"math/rand"
)

// AddLoops opens extra passages in an already carved grid so the maze
// gains cycles. It targets floor(width*height*loopFactor) additional
// passage-pairs: each attempt picks a uniformly random cell and, among its
// closed in-bounds walls, opens one at random. Attempts are capped at
// max(1000, target*10); a dense grid running out of closable walls simply
// delivers fewer loops than requested, which is not an error. Callers can
// read the achieved density off Grid.OpenPassages.
//
// A loopFactor of zero is a guaranteed no-op. Values outside [0.0, 1.0]
// are rejected with ErrInvalidLoopFactor.
func AddLoops(grid *Grid, loopFactor float64, rng *rand.Rand) error {
	if loopFactor < 0.0 || loopFactor > 1.0 {
		return fmt.Errorf("%w: got %v", ErrInvalidLoopFactor, loopFactor)
	}

	target := int(float64(grid.Width*grid.Height) * loopFactor)
	if target == 0 {
		return nil
	}

	maxAttempts := target * 10
	if maxAttempts < 1000 {
		maxAttempts = 1000
	}

	added := 0
	for attempts := 0; added < target && attempts < maxAttempts; attempts++ {
		p := Position{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}

		var candidates []Direction
		for _, d := range Directions {
			if _, ok := grid.Neighbor(p, d); ok && !grid.HasPassage(p, d) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			continue
		}

		grid.OpenPassage(p, candidates[rng.Intn(len(candidates))])
		added++
	}

	return nil
}
