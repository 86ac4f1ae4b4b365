package export

import (
	"testing"

	"github.com/huyndao/mazegen/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goldenDocument = `{
  "width": 3,
  "height": 3,
  "start": [0, 0],
  "end": [1, 0],
  "loop_factor": 0,
  "cells": [
    { "position": [0, 0], "directions": [0, 0, 1, 0] },
    { "position": [1, 0], "directions": [0, 1, 0, 0] },
    { "position": [2, 0], "directions": [0, 0, 1, 1] },
    { "position": [0, 1], "directions": [1, 0, 1, 0] },
    { "position": [1, 1], "directions": [0, 1, 1, 0] },
    { "position": [2, 1], "directions": [1, 0, 1, 1] },
    { "position": [0, 2], "directions": [1, 1, 0, 0] },
    { "position": [1, 2], "directions": [1, 0, 0, 1] },
    { "position": [2, 2], "directions": [1, 0, 0, 0] }
  ]
}`

func TestJSONGoldenDocument(t *testing.T) {
	assert.Equal(t, goldenDocument, JSON(fixtureMaze(t)))
}

func TestJSONIsByteReproducible(t *testing.T) {
	m := fixtureMaze(t)
	assert.Equal(t, JSON(m), JSON(m))
}

func TestParseJSONRoundTrip(t *testing.T) {
	t.Run("golden document", func(t *testing.T) {
		m, err := ParseJSON(goldenDocument)
		require.NoError(t, err)
		assert.Equal(t, goldenDocument, JSON(m))
	})

	t.Run("generated maze with loops", func(t *testing.T) {
		seed := int64(123)
		built, err := maze.Build(maze.BuildRequest{Width: 6, Height: 4, Seed: &seed, LoopFactor: 0.25})
		require.NoError(t, err)

		document := JSON(built)
		parsed, err := ParseJSON(document)
		require.NoError(t, err)

		assert.Equal(t, document, JSON(parsed), "re-encoding must be byte-identical")
		assert.Equal(t, built.Grid.Width, parsed.Grid.Width)
		assert.Equal(t, built.Grid.Height, parsed.Grid.Height)
		assert.Equal(t, built.Start, parsed.Start)
		assert.Equal(t, built.End, parsed.End)
		assert.Equal(t, built.LoopFactor, parsed.LoopFactor)
		for y := 0; y < built.Grid.Height; y++ {
			for x := 0; x < built.Grid.Width; x++ {
				p := maze.Position{X: x, Y: y}
				for _, d := range maze.Directions {
					assert.Equal(t, built.Grid.HasPassage(p, d), parsed.Grid.HasPassage(p, d),
						"cell %v direction %s", p, d)
				}
			}
		}
	})
}

func TestParseJSONRejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"not json", "not a document"},
		{"missing cells", `{"width": 2, "height": 2, "start": [0,0], "end": [1,1], "loop_factor": 0, "cells": []}`},
		{
			"duplicate cell",
			`{"width": 1, "height": 2, "start": [0,0], "end": [0,1], "loop_factor": 0, "cells": [
				{"position": [0,0], "directions": [0,0,0,0]},
				{"position": [0,0], "directions": [0,0,0,0]}
			]}`,
		},
		{
			"cell out of bounds",
			`{"width": 1, "height": 1, "start": [0,0], "end": [0,0], "loop_factor": 0, "cells": [
				{"position": [2,0], "directions": [0,0,0,0]}
			]}`,
		},
		{
			"flag not boolean",
			`{"width": 1, "height": 1, "start": [0,0], "end": [0,0], "loop_factor": 0, "cells": [
				{"position": [0,0], "directions": [0,2,0,0]}
			]}`,
		},
		{
			"passage off the grid",
			`{"width": 1, "height": 1, "start": [0,0], "end": [0,0], "loop_factor": 0, "cells": [
				{"position": [0,0], "directions": [1,0,0,0]}
			]}`,
		},
		{
			"asymmetric passage",
			`{"width": 2, "height": 1, "start": [0,0], "end": [1,0], "loop_factor": 0, "cells": [
				{"position": [0,0], "directions": [0,1,0,0]},
				{"position": [1,0], "directions": [0,0,0,0]}
			]}`,
		},
		{
			"start outside grid",
			`{"width": 2, "height": 1, "start": [5,0], "end": [1,0], "loop_factor": 0, "cells": [
				{"position": [0,0], "directions": [0,0,0,0]},
				{"position": [1,0], "directions": [0,0,0,0]}
			]}`,
		},
		{
			"loop factor outside range",
			`{"width": 1, "height": 1, "start": [0,0], "end": [0,0], "loop_factor": 2.5, "cells": [
				{"position": [0,0], "directions": [0,0,0,0]}
			]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON(tc.text)
			assert.ErrorIs(t, err, ErrMalformedDocument)
		})
	}
}

func TestParseJSONRejectsInvalidDimensions(t *testing.T) {
	_, err := ParseJSON(`{"width": 0, "height": 3, "start": [0,0], "end": [0,0], "loop_factor": 0, "cells": []}`)
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
}
