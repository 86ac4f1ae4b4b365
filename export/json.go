// Package export renders a finished maze into its interchange and display
// formats: the canonical compact-lines JSON document, an ASCII wall grid,
// and an SVG drawing. All exporters are pure functions of the Maze; they
// share no state and may be called in any order.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/huyndao/mazegen/maze"
)

var (
	// ErrMalformedDocument is returned when a maze document cannot be
	// decoded or violates the structural invariants of the format.
	ErrMalformedDocument = errors.New("malformed maze document")
)

// JSON encodes m into the canonical compact-lines document: width, height,
// start, end and loop factor up front, then one line per cell in row-major
// order (y ascending, then x ascending) with its position and the four
// passage flags in North, East, South, West order, 1 meaning open. The
// byte layout is part of the interchange contract: identical mazes encode
// to identical bytes.
func JSON(m *maze.Maze) string {
	var b strings.Builder

	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"width\": %d,\n", m.Grid.Width)
	fmt.Fprintf(&b, "  \"height\": %d,\n", m.Grid.Height)
	fmt.Fprintf(&b, "  \"start\": [%d, %d],\n", m.Start.X, m.Start.Y)
	fmt.Fprintf(&b, "  \"end\": [%d, %d],\n", m.End.X, m.End.Y)
	fmt.Fprintf(&b, "  \"loop_factor\": %s,\n", strconv.FormatFloat(m.LoopFactor, 'g', -1, 64))
	b.WriteString("  \"cells\": [\n")

	last := m.Grid.Width*m.Grid.Height - 1
	i := 0
	for y := 0; y < m.Grid.Height; y++ {
		for x := 0; x < m.Grid.Width; x++ {
			p := maze.Position{X: x, Y: y}
			flags := [4]int{}
			for j, d := range maze.Directions {
				if m.Grid.HasPassage(p, d) {
					flags[j] = 1
				}
			}
			comma := ","
			if i == last {
				comma = ""
			}
			fmt.Fprintf(&b, "    { \"position\": [%d, %d], \"directions\": [%d, %d, %d, %d] }%s\n",
				x, y, flags[0], flags[1], flags[2], flags[3], comma)
			i++
		}
	}

	b.WriteString("  ]\n")
	b.WriteString("}")
	return b.String()
}

type cellDoc struct {
	Position   [2]int `json:"position"`
	Directions [4]int `json:"directions"`
}

type mazeDoc struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Start      [2]int    `json:"start"`
	End        [2]int    `json:"end"`
	LoopFactor float64   `json:"loop_factor"`
	Cells      []cellDoc `json:"cells"`
}

// ParseJSON reconstructs a Maze from its canonical document without
// re-running generation: dimensions, every cell's passage flags, start,
// end and the loop factor all round-trip. Documents with missing or
// duplicate cells, out-of-range flags, passages pointing off the grid or
// asymmetric passage pairs are rejected.
func ParseJSON(text string) (*maze.Maze, error) {
	var doc mazeDoc
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	grid, err := maze.NewGrid(doc.Width, doc.Height)
	if err != nil {
		return nil, err
	}

	if len(doc.Cells) != doc.Width*doc.Height {
		return nil, fmt.Errorf("%w: expected %d cells, got %d",
			ErrMalformedDocument, doc.Width*doc.Height, len(doc.Cells))
	}

	// Index cells by position, rejecting gaps and duplicates.
	flags := make([][]*[4]int, doc.Height)
	for y := range flags {
		flags[y] = make([]*[4]int, doc.Width)
	}
	for i := range doc.Cells {
		c := &doc.Cells[i]
		p := maze.Position{X: c.Position[0], Y: c.Position[1]}
		if !grid.InBounds(p) {
			return nil, fmt.Errorf("%w: cell position %d,%d outside %dx%d grid",
				ErrMalformedDocument, p.X, p.Y, doc.Width, doc.Height)
		}
		if flags[p.Y][p.X] != nil {
			return nil, fmt.Errorf("%w: duplicate cell at %d,%d", ErrMalformedDocument, p.X, p.Y)
		}
		for _, f := range c.Directions {
			if f != 0 && f != 1 {
				return nil, fmt.Errorf("%w: direction flag %d at %d,%d", ErrMalformedDocument, f, p.X, p.Y)
			}
		}
		flags[p.Y][p.X] = &c.Directions
	}

	// Every open flag must point at an in-bounds neighbor whose opposite
	// flag is also open, then each pair is carved exactly once from its
	// east/south side.
	for y := 0; y < doc.Height; y++ {
		for x := 0; x < doc.Width; x++ {
			p := maze.Position{X: x, Y: y}
			for j, d := range maze.Directions {
				if flags[y][x][j] == 0 {
					continue
				}
				n, ok := grid.Neighbor(p, d)
				if !ok {
					return nil, fmt.Errorf("%w: cell %d,%d opens %s off the grid",
						ErrMalformedDocument, x, y, d)
				}
				if flags[n.Y][n.X][d.Opposite()] == 0 {
					return nil, fmt.Errorf("%w: asymmetric passage between %d,%d and %d,%d",
						ErrMalformedDocument, x, y, n.X, n.Y)
				}
				if d == maze.East || d == maze.South {
					grid.OpenPassage(p, d)
				}
			}
		}
	}

	start := maze.Position{X: doc.Start[0], Y: doc.Start[1]}
	end := maze.Position{X: doc.End[0], Y: doc.End[1]}
	if !grid.InBounds(start) || !grid.InBounds(end) {
		return nil, fmt.Errorf("%w: start or end outside the grid", ErrMalformedDocument)
	}
	if doc.LoopFactor < 0.0 || doc.LoopFactor > 1.0 {
		return nil, fmt.Errorf("%w: loop factor %v", ErrMalformedDocument, doc.LoopFactor)
	}

	return &maze.Maze{
		Grid:       grid,
		Start:      start,
		End:        end,
		LoopFactor: doc.LoopFactor,
	}, nil
}
