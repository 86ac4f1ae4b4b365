// Package mazeapi exposes maze generation and export over HTTP.
package mazeapi

import "github.com/google/uuid"

// GenerateRequest represents a request to generate a new maze. Start and
// End are optional "x,y" strings; Start defaults to 0,0 and End to the
// farthest reachable cell from the start. Seed is optional; identical
// width, height and seed reproduce the same maze.
type GenerateRequest struct {
	Width      int     `json:"width" binding:"required"`
	Height     int     `json:"height" binding:"required"`
	Seed       *int64  `json:"seed"`
	LoopFactor float64 `json:"loop_factor"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
}

// GenerateResponse describes a freshly generated maze. OpenPassages is the
// achieved passage count, which reflects honest loop under-delivery on
// dense grids.
type GenerateResponse struct {
	ID           uuid.UUID `json:"id"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Start        [2]int    `json:"start"`
	End          [2]int    `json:"end"`
	LoopFactor   float64   `json:"loop_factor"`
	OpenPassages int       `json:"open_passages"`
}
