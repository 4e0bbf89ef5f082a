package wfc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWeightedChoiceLockedConvention pins the tie-breaking convention fixed
// by spec.md §9 Open Question (b): a single uniform draw s ∈ [0, Σw), then
// index-order accumulation, picking the first pattern whose cumulative
// weight strictly exceeds s.
func TestWeightedChoiceLockedConvention(t *testing.T) {
	weights := []float64{1, 2, 3}
	allowed := []int{0, 1, 2}

	rng := rand.New(rand.NewSource(1))
	s := rng.Float64() * 6 // total weight = 1+2+3

	want := allowed[len(allowed)-1]
	cumulative := 0.0
	for _, p := range allowed {
		cumulative += weights[p]
		if cumulative > s {
			want = p
			break
		}
	}

	rng2 := rand.New(rand.NewSource(1))
	got := weightedChoice(allowed, weights, rng2)
	assert.Equal(t, want, got)
}

// TestWeightedChoiceSkipsDisallowedPatterns confirms only patterns present
// in `allowed` can ever be chosen, regardless of their weight.
func TestWeightedChoiceSkipsDisallowedPatterns(t *testing.T) {
	weights := []float64{100, 1, 100}
	allowed := []int{1}
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 1, weightedChoice(allowed, weights, rng))
}
