package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLoops(t *testing.T) {
	t.Run("zero factor is a no-op", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		g, err := Generate(6, 6, rng)
		require.NoError(t, err)
		before := g.OpenPassages()

		require.NoError(t, AddLoops(g, 0.0, rng))
		assert.Equal(t, before, g.OpenPassages())
	})

	t.Run("rejects factor outside range", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		g, err := Generate(4, 4, rng)
		require.NoError(t, err)

		assert.ErrorIs(t, AddLoops(g, -0.1, rng), ErrInvalidLoopFactor)
		assert.ErrorIs(t, AddLoops(g, 1.1, rng), ErrInvalidLoopFactor)
	})

	t.Run("1x1 grid with factor 1.0 terminates without passages", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		g, err := Generate(1, 1, rng)
		require.NoError(t, err)

		require.NoError(t, AddLoops(g, 1.0, rng))
		assert.Equal(t, 0, g.OpenPassages())
	})

	t.Run("opens extra passages up to the target", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		g, err := Generate(10, 10, rng)
		require.NoError(t, err)
		tree := g.OpenPassages()

		require.NoError(t, AddLoops(g, 0.25, rng))
		added := g.OpenPassages() - tree
		assert.Greater(t, added, 0)
		assert.LessOrEqual(t, added, 25)
		assertSymmetric(t, g)
	})

	t.Run("never closes a passage", func(t *testing.T) {
		rng := rand.New(rand.NewSource(21))
		g, err := Generate(8, 8, rng)
		require.NoError(t, err)

		open := make(map[[3]int]bool)
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				for _, d := range Directions {
					if g.HasPassage(Position{X: x, Y: y}, d) {
						open[[3]int{x, y, int(d)}] = true
					}
				}
			}
		}

		require.NoError(t, AddLoops(g, 1.0, rng))
		for key := range open {
			assert.True(t, g.HasPassage(Position{X: key[0], Y: key[1]}, Direction(key[2])))
		}
	})

	t.Run("dense grid under-delivers silently", func(t *testing.T) {
		// On a saturated grid every wall is already open, so the
		// attempt cap is the only way out.
		g, err := NewGrid(3, 3)
		require.NoError(t, err)
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				p := Position{X: x, Y: y}
				for _, d := range []Direction{East, South} {
					if _, ok := g.Neighbor(p, d); ok {
						g.OpenPassage(p, d)
					}
				}
			}
		}
		saturated := g.OpenPassages()

		require.NoError(t, AddLoops(g, 1.0, rand.New(rand.NewSource(2))))
		assert.Equal(t, saturated, g.OpenPassages())
	})
}
