package maze

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDimension is returned when a requested grid width or
	// height is smaller than one.
	ErrInvalidDimension = errors.New("maze dimensions must be at least 1x1")

	// ErrInvalidLoopFactor is returned when a loop factor falls outside
	// the [0.0, 1.0] range.
	ErrInvalidLoopFactor = errors.New("loop factor must be between 0.0 and 1.0")

	// ErrOutOfBounds is returned when a start or end position does not
	// fall inside the grid.
	ErrOutOfBounds = errors.New("position is outside the grid")

	// ErrMalformedPosition is returned when a position string cannot be
	// parsed into two integers.
	ErrMalformedPosition = errors.New("position must be two integers formatted as x,y")
)

// ParsePosition parses a position expressed as "x,y" (as accepted by the
// boundary layers) into a Position. Surrounding whitespace around either
// coordinate is tolerated.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrMalformedPosition, s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrMalformedPosition, s)
	}

	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrMalformedPosition, s)
	}

	return Position{X: x, Y: y}, nil
}
