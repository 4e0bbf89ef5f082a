package wfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/wfc/internal/propagator"
	"github.com/rybkr/wfc/internal/wfc"
)

func uniformTable(patternCount int) *propagator.Table {
	t := propagator.NewTable(patternCount)
	for d := 0; d < propagator.NumDirections; d++ {
		for p := 0; p < patternCount; p++ {
			for q := 0; q < patternCount; q++ {
				t.Add(d, p, q)
			}
		}
	}
	t.Finalize()
	return t
}

func TestRunOnceSolvesPermissiveTable(t *testing.T) {
	spec := wfc.Spec{
		Height:  3,
		Width:   3,
		Weights: []float64{1, 1},
		Table:   uniformTable(2),
	}
	w, err := wfc.RunOnce(spec, 42)
	require.NoError(t, err)
	for c := 0; c < w.NumCells(); c++ {
		assert.Equal(t, 1, w.Count(c))
	}
}

func TestRunRetriesOnContradiction(t *testing.T) {
	// Two patterns that can never be adjacent to each other or themselves
	// in any direction: every cell with a neighbor loses all its patterns
	// during the engine's Init, forcing every try to fail so Run must
	// exhaust nbTries and report ErrAllTriesFailed.
	tbl := propagator.NewTable(2)
	tbl.Finalize() // no rules at all: everything is incompatible

	spec := wfc.Spec{
		Height:  1,
		Width:   2,
		Weights: []float64{1, 1},
		Table:   tbl,
	}
	_, err := wfc.Run(spec, 42, 3)
	assert.ErrorIs(t, err, wfc.ErrAllTriesFailed)
}

func TestRunDeterministicGivenSameSeed(t *testing.T) {
	spec := wfc.Spec{
		Height:  4,
		Width:   4,
		Weights: []float64{3, 1, 1},
		Table:   uniformTable(3),
	}
	a, err := wfc.Run(spec, 7, 1)
	require.NoError(t, err)
	b, err := wfc.Run(spec, 7, 1)
	require.NoError(t, err)

	for c := 0; c < a.Wave.NumCells(); c++ {
		assert.Equal(t, a.Wave.SolePattern(c), b.Wave.SolePattern(c))
	}
}
