package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/huyndao/mazegen/export"
	"github.com/huyndao/mazegen/maze"
	"github.com/huyndao/mazegen/service/i"
)

const (
	defaultMaxWidth  = 200
	defaultMaxHeight = 200
)

// ErrMazeTooLarge is returned when a build request exceeds the configured
// size caps. Generation runs to completion once started, so oversized
// grids are rejected up front.
var ErrMazeTooLarge = errors.New("requested maze exceeds the size limit")

// Options configures a MazeService.
type Options struct {
	// MaxWidth and MaxHeight cap accepted build requests. Zero or
	// negative values fall back to the defaults.
	MaxWidth  int
	MaxHeight int
}

// MazeService builds mazes and stores their canonical documents so the
// export endpoints can serve any format of a maze without regenerating it.
type MazeService struct {
	store  i.MazeStore
	logger i.Logger
	opts   *Options
}

// NewMazeService creates a MazeService backed by the given store.
func NewMazeService(store i.MazeStore, logger i.Logger, opts *Options) (i.MazeService, error) {
	if store == nil {
		return nil, errors.New("maze store is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	if opts == nil {
		opts = &Options{}
	}
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = defaultMaxWidth
	}
	if opts.MaxHeight <= 0 {
		opts.MaxHeight = defaultMaxHeight
	}

	return &MazeService{
		store:  store,
		logger: logger,
		opts:   opts,
	}, nil
}

// Create builds a maze from the request, assigns it an ID and stores the
// canonical document under that ID.
func (s *MazeService) Create(ctx context.Context, req maze.BuildRequest) (uuid.UUID, *maze.Maze, error) {
	if req.Width > s.opts.MaxWidth || req.Height > s.opts.MaxHeight {
		return uuid.Nil, nil, fmt.Errorf("%w: %dx%d, limit %dx%d",
			ErrMazeTooLarge, req.Width, req.Height, s.opts.MaxWidth, s.opts.MaxHeight)
	}

	m, err := maze.Build(req)
	if err != nil {
		return uuid.Nil, nil, err
	}

	id := uuid.New()
	if err := s.store.Save(ctx, id.String(), export.JSON(m)); err != nil {
		s.logger.Error(fmt.Sprintf("Storing maze %s: %v", id, err))
		return uuid.Nil, nil, err
	}

	s.logger.Info(fmt.Sprintf("Created maze %s: %dx%d start=%d,%d end=%d,%d loops=%v",
		id, m.Grid.Width, m.Grid.Height, m.Start.X, m.Start.Y, m.End.X, m.End.Y, m.LoopFactor))
	return id, m, nil
}

// ByID loads and reconstructs a previously created maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*maze.Maze, error) {
	document, err := s.store.ByID(ctx, id.String())
	if err != nil {
		return nil, err
	}

	m, err := export.ParseJSON(document)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Stored document for maze %s is corrupt: %v", id, err))
		return nil, err
	}
	return m, nil
}
