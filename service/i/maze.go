package i

import (
	"context"

	"github.com/google/uuid"
	"github.com/huyndao/mazegen/maze"
)

// MazeService builds mazes and keeps them addressable for export.
type MazeService interface {
	// Create validates and builds a maze from the request, stores its
	// canonical document under a fresh ID and returns both.
	Create(ctx context.Context, req maze.BuildRequest) (uuid.UUID, *maze.Maze, error)

	// ByID reconstructs a previously created maze from its stored
	// canonical document. Returns ErrMazeNotFound for unknown or
	// expired IDs.
	ByID(ctx context.Context, id uuid.UUID) (*maze.Maze, error)
}
