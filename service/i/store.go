package i

import (
	"context"
	"errors"
)

// ErrMazeNotFound is returned by a MazeStore when no document exists for
// the requested ID, either because it never existed or because its TTL
// elapsed.
var ErrMazeNotFound = errors.New("maze not found")

// MazeStore holds canonical maze documents for the lifetime of a session,
// keyed by the ID assigned at generation time. Documents are written once
// and never updated; expiry is the store's concern.
type MazeStore interface {
	// Save stores the canonical document under id.
	Save(ctx context.Context, id string, document string) error

	// ByID retrieves the canonical document stored under id.
	// Returns ErrMazeNotFound when the id is unknown or expired.
	ByID(ctx context.Context, id string) (string, error)
}
