package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/pathery/grid"
	"github.com/katalvlaran/pathery/internal/config"
	"github.com/katalvlaran/pathery/pathfinder"
)

// Sentinel errors mapped to HTTP status codes by statusFor.
var (
	ErrBadRequest = errors.New("server: bad request")
	ErrTooLarge   = errors.New("server: grid too large")
)

// PathRequest describes one board. Either Map or the raw encoding
// (Height, Width, Checkpoints, Teleporters, Cells) must be set; Map wins.
type PathRequest struct {
	Map         string  `json:"map,omitempty"`
	Height      int     `json:"height,omitempty"`
	Width       int     `json:"width,omitempty"`
	Checkpoints int     `json:"checkpoints,omitempty"`
	Teleporters int     `json:"teleporters,omitempty"`
	Cells       []int32 `json:"cells,omitempty"`
	// Render asks for the board with the path drawn on it.
	Render bool `json:"render,omitempty"`
}

// Step is one cell of a path.
type Step struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PathResponse is the answer to a PathRequest.
type PathResponse struct {
	Reachable   bool   `json:"reachable"`
	Length      int    `json:"length"`
	Path        []Step `json:"path"`
	Teleporters []int  `json:"teleporters,omitempty"`
	// Blocked is the index of the first unreachable stage, or -1.
	Blocked  int    `json:"blocked"`
	Rendered string `json:"rendered,omitempty"`
}

// ErrorResponse is the body of every non-2xx reply and of failed stream
// messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// build validates req against the configured limits and returns its grid.
func (req *PathRequest) build(cfg config.Config) (*grid.Grid, error) {
	if req.Map != "" {
		// Size the board from the header before anything is allocated.
		head, err := grid.MapCodeHeader(req.Map)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		if exceeds(head.Height, head.Width, cfg.MaxCells) {
			return nil, fmt.Errorf("%w: %dx%d board, limit %d cells", ErrTooLarge, head.Width, head.Height, cfg.MaxCells)
		}
		mc, err := grid.ParseMapCode(req.Map)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		return mc.Grid, nil
	}

	if len(req.Cells) > cfg.MaxCells || exceeds(req.Height, req.Width, cfg.MaxCells) {
		return nil, fmt.Errorf("%w: %dx%d board, limit %d cells", ErrTooLarge, req.Height, req.Width, cfg.MaxCells)
	}
	g, err := grid.New(req.Cells, req.Height, req.Width, req.Checkpoints, req.Teleporters)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return g, nil
}

// exceeds reports whether a height×width board holds more than limit cells,
// without overflowing.
func exceeds(height, width, limit int) bool {
	return height > 0 && width > 0 && height > limit/width
}

func newPathResponse(g *grid.Grid, route *pathfinder.Route, render bool) PathResponse {
	resp := PathResponse{
		Reachable:   route.Reachable(),
		Length:      len(route.Path),
		Path:        make([]Step, len(route.Path)),
		Teleporters: route.Teleporters,
		Blocked:     route.Blocked,
	}
	for i, p := range route.Path {
		resp.Path[i] = Step{Row: p.Row, Col: p.Col}
	}
	if render {
		resp.Rendered = grid.Render(g, route.Path)
	}
	return resp
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
