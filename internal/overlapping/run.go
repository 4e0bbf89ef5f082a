package overlapping

import (
	"github.com/rybkr/wfc/internal/color"
	"github.com/rybkr/wfc/internal/grid"
	"github.com/rybkr/wfc/internal/wfc"
)

// Options collects the overlapping entry point's inputs (spec.md §6
// "Overlapping entry").
type Options struct {
	Seed uint32

	OutputWidth, OutputHeight     int
	PeriodicOutput, PeriodicInput bool

	N        int
	Ground   bool
	Symmetry int

	NbSamples, NbTries uint32

	// Warnf, if non-nil, receives a diagnostic for each sample that
	// exhausts its retry budget (spec.md §4.9 "A failed sample within a
	// multi-sample call produces a warning on the diagnostic channel and
	// contributes nothing to the output"). Defaults to a no-op.
	Warnf func(format string, args ...interface{})
}

// Run is the overlapping-mode entry point of spec.md §6: it extracts
// patterns and rules from input, then drives nb_samples independent WFC
// tries, returning one decoded grid per successful sample. Failed samples
// are skipped with a diagnostic and do not abort the call.
func Run(input *grid.Grid[color.Color], opts Options) ([]*grid.Grid[color.Color], error) {
	ex, err := extractPatterns(input, opts.N, opts.PeriodicInput, opts.Symmetry)
	if err != nil {
		return nil, err
	}
	table := buildTable(ex.patterns)

	waveHeight, waveWidth := opts.OutputHeight, opts.OutputWidth
	if !opts.PeriodicOutput {
		waveHeight = opts.OutputHeight - opts.N + 1
		waveWidth = opts.OutputWidth - opts.N + 1
	}

	spec := wfc.Spec{
		Height:   waveHeight,
		Width:    waveWidth,
		Periodic: opts.PeriodicOutput,
		Weights:  ex.weights,
		Table:    table,
	}
	if opts.Ground {
		if groundPattern, ok := ex.originPattern[[2]int{ex.maxY - 1, ex.maxX / 2}]; ok {
			spec.InitialConstraints = groundConstraint(groundPattern, waveHeight, waveWidth, len(ex.patterns))
		}
	}

	nbSamples := opts.NbSamples
	if nbSamples == 0 {
		nbSamples = 1
	}

	results := make([]*grid.Grid[color.Color], 0, nbSamples)
	seed := opts.Seed
	for i := uint32(0); i < nbSamples; i++ {
		sol, err := wfc.Run(spec, seed, opts.NbTries)
		if err != nil {
			if opts.Warnf != nil {
				opts.Warnf("overlapping: sample %d failed: %v", i, err)
			}
			seed++
			continue
		}
		results = append(results, decode(sol.Wave, ex.patterns, waveHeight, waveWidth, opts.N, opts.PeriodicOutput))
		seed = sol.Seed + 1
	}
	return results, nil
}
