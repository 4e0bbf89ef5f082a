package tiled

import (
	"errors"

	"github.com/rybkr/wfc/internal/color"
	"github.com/rybkr/wfc/internal/grid"
	"github.com/rybkr/wfc/internal/wfc"
)

// ErrNoTiles reports that a tiled-mode call was given an empty tile list,
// which has no pattern to collapse any cell to.
var ErrNoTiles = errors.New("tiled: no tiles provided")

// Options collects the tiled entry point's inputs (spec.md §6 "Tiled
// entry").
type Options struct {
	Seed uint32

	OutputWidth, OutputHeight int // in tile blocks
	PeriodicOutput            bool

	Tiles     []Tile
	Neighbors []NeighborRule

	NbSamples, NbTries uint32

	// Warnf, if non-nil, receives a diagnostic for each sample that
	// exhausts its retry budget (spec.md §4.9). Defaults to a no-op.
	Warnf func(format string, args ...interface{})
}

// Run is the tiled-mode entry point of spec.md §6: it expands tiles and
// neighbor rules, then drives nb_samples independent WFC tries, returning
// one decoded block-grid per successful sample.
func Run(opts Options) ([]*grid.Grid[color.Color], error) {
	if len(opts.Tiles) == 0 {
		return nil, ErrNoTiles
	}

	ex := expandTiles(opts.Tiles)
	table := buildTable(opts.Tiles, opts.Neighbors, ex)

	spec := wfc.Spec{
		Height:   opts.OutputHeight,
		Width:    opts.OutputWidth,
		Periodic: opts.PeriodicOutput,
		Weights:  ex.weights,
		Table:    table,
	}

	nbSamples := opts.NbSamples
	if nbSamples == 0 {
		nbSamples = 1
	}
	tileSize := opts.Tiles[0].Size

	results := make([]*grid.Grid[color.Color], 0, nbSamples)
	seed := opts.Seed
	for i := uint32(0); i < nbSamples; i++ {
		sol, err := wfc.Run(spec, seed, opts.NbTries)
		if err != nil {
			if opts.Warnf != nil {
				opts.Warnf("tiled: sample %d failed: %v", i, err)
			}
			seed++
			continue
		}
		results = append(results, decode(sol.Wave, ex.images, opts.OutputHeight, opts.OutputWidth, tileSize, opts.PeriodicOutput))
		seed = sol.Seed + 1
	}
	return results, nil
}
