package propagator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/wfc/internal/propagator"
	"github.com/rybkr/wfc/internal/wave"
)

// buildUniformTable builds a table of patternCount patterns where every
// pattern is compatible with every other pattern in every direction — a
// permissive baseline for engine tests that don't exercise rule content.
func buildUniformTable(patternCount int) *propagator.Table {
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

func TestOppositeAndOffset(t *testing.T) {
	assert.Equal(t, 2, propagator.Opposite(0))
	assert.Equal(t, 3, propagator.Opposite(1))
	assert.Equal(t, 0, propagator.Opposite(2))
	assert.Equal(t, 1, propagator.Opposite(3))

	dy, dx := propagator.Offset(0)
	assert.Equal(t, [2]int{0, 1}, [2]int{dy, dx})
	dy, dx = propagator.Offset(3)
	assert.Equal(t, [2]int{1, 0}, [2]int{dy, dx})
}

func TestAssertSymmetricPassesForSymmetricTable(t *testing.T) {
	tbl := propagator.NewTable(2)
	tbl.AddSymmetric(0, 0, 1)
	tbl.Finalize()
	require.NoError(t, tbl.AssertSymmetric())
}

func TestAssertSymmetricCatchesAsymmetry(t *testing.T) {
	tbl := propagator.NewTable(2)
	tbl.Add(0, 0, 1) // no symmetric counterpart added
	tbl.Finalize()
	assert.Error(t, tbl.AssertSymmetric())
}

func TestUniformTablePropagatesWithoutContradiction(t *testing.T) {
	w := wave.New(3, 3, []float64{1, 1, 1}, rand.New(rand.NewSource(1)))
	tbl := buildUniformTable(3)
	e := propagator.NewEngine(tbl, w, 3, 3, false)
	require.NoError(t, e.Init(nil))

	require.NoError(t, e.Unset(4, 0))
	require.NoError(t, e.Unset(4, 1))
	require.NoError(t, e.Propagate())

	assert.Equal(t, 1, w.Count(4))
	assert.Equal(t, 3, w.Count(0), "uncorrelated cell is untouched by a permissive table")
}

func TestRestrictiveTablePropagatesForcedPattern(t *testing.T) {
	// Two patterns, 0 and 1, where a cell can only be adjacent (any
	// direction) to the same pattern as itself.
	w := wave.New(1, 2, []float64{1, 1}, rand.New(rand.NewSource(1)))
	tbl := propagator.NewTable(2)
	for d := 0; d < propagator.NumDirections; d++ {
		tbl.Add(d, 0, 0)
		tbl.Add(d, 1, 1)
	}
	tbl.Finalize()
	require.NoError(t, tbl.AssertSymmetric())

	e := propagator.NewEngine(tbl, w, 1, 2, false)
	require.NoError(t, e.Init(nil))

	// Force cell 0 to pattern 0; cell 1 should collapse to pattern 0 too.
	require.NoError(t, e.Unset(0, 1))
	require.NoError(t, e.Propagate())
	assert.Equal(t, 1, w.Count(1))
	assert.Equal(t, 0, w.SolePattern(1))
}

func TestOutOfBoundsSeedsInitialRemovals(t *testing.T) {
	w := wave.New(1, 1, []float64{1, 1}, rand.New(rand.NewSource(1)))
	tbl := buildUniformTable(2)
	e := propagator.NewEngine(tbl, w, 1, 1, false)

	err := e.Init(func(cell, pattern int) bool { return pattern == 1 })
	require.NoError(t, err)
	require.NoError(t, e.Propagate())

	assert.Equal(t, 1, w.Count(0))
	assert.Equal(t, 0, w.SolePattern(0))
}
