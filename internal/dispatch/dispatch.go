// Package dispatch implements the unified entry point of spec.md §6: a
// single sample_type discriminator selects between the tiled and
// overlapping front-ends.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/rybkr/wfc/internal/color"
	"github.com/rybkr/wfc/internal/grid"
	"github.com/rybkr/wfc/internal/overlapping"
	"github.com/rybkr/wfc/internal/tiled"
)

// SampleType selects the front-end, per spec.md §6 (0 = tiled, 1 =
// overlapping).
type SampleType int

const (
	SampleTiled       SampleType = 0
	SampleOverlapping SampleType = 1
)

// ErrUnknownSampleType reports a sample_type outside {0, 1} (spec.md §7).
var ErrUnknownSampleType = errors.New("dispatch: unknown sample_type")

// ErrMissingOptions reports that the request's SampleType names a front-end
// whose Options/input were not supplied.
var ErrMissingOptions = errors.New("dispatch: missing options for selected sample_type")

// Request carries the union of both front-ends' inputs; only the fields
// matching Type are consulted.
type Request struct {
	Type SampleType

	OverlappingInput   *grid.Grid[color.Color]
	OverlappingOptions *overlapping.Options

	TiledOptions *tiled.Options
}

// Run selects a front-end by req.Type and runs it, returning one decoded
// grid per successful sample (spec.md §6, §4.9).
func Run(req Request) ([]*grid.Grid[color.Color], error) {
	switch req.Type {
	case SampleTiled:
		if req.TiledOptions == nil {
			return nil, fmt.Errorf("%w: tiled", ErrMissingOptions)
		}
		return tiled.Run(*req.TiledOptions)
	case SampleOverlapping:
		if req.OverlappingOptions == nil || req.OverlappingInput == nil {
			return nil, fmt.Errorf("%w: overlapping", ErrMissingOptions)
		}
		return overlapping.Run(req.OverlappingInput, *req.OverlappingOptions)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSampleType, req.Type)
	}
}
