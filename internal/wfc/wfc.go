// Package wfc implements the generic WFC solver loop described in spec.md
// §4.6 (component C6): observation by entropy minimization, propagation via
// the AC-3 engine, and the seed-increment retry policy of spec.md §5, §9.
package wfc

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rybkr/wfc/internal/propagator"
	"github.com/rybkr/wfc/internal/wave"
)

// ErrAllTriesFailed reports that every try in the retry budget ended in
// contradiction (spec.md §4.9).
var ErrAllTriesFailed = errors.New("wfc: exhausted all tries without finding a solution")

// Spec describes a single WFC problem instance in terms the generic solver
// needs: dimensions, periodicity, per-pattern weights, and the propagator
// table a front-end has already derived (spec.md §4.3).
type Spec struct {
	Height, Width int
	Periodic      bool
	Weights       []float64
	Table         *propagator.Table

	// OutOfBounds, if non-nil, preemptively forbids patterns whose
	// footprint/adjacency would exit a non-periodic grid (spec.md §4.5).
	OutOfBounds func(cell, pattern int) bool

	// InitialConstraints, if non-nil, is invoked once after the boundary
	// removals have propagated, to apply front-end-specific constraints
	// such as the overlapping front-end's ground pattern (spec.md §4.6
	// "Initial constraints"). It should call Engine.Unset and must not
	// call Engine.Propagate itself — the caller propagates afterward.
	InitialConstraints func(e *propagator.Engine) error
}

// Solution is the outcome of a successful try: a collapsed wave (every cell
// has exactly one allowed pattern) plus the seed that produced it.
type Solution struct {
	Wave *wave.Wave
	Seed uint32
}

// RunOnce attempts a single try of the WFC core loop (spec.md §4.6) at the
// given seed. It returns wave.ErrContradiction if the try fails locally;
// the caller decides whether to retry.
func RunOnce(spec Spec, seed uint32) (*wave.Wave, error) {
	rng := rand.New(rand.NewSource(int64(seed)))
	w := wave.New(spec.Height, spec.Width, spec.Weights, rng)
	e := propagator.NewEngine(spec.Table, w, spec.Height, spec.Width, spec.Periodic)

	if err := e.Init(spec.OutOfBounds); err != nil {
		return nil, err
	}
	if err := e.Propagate(); err != nil {
		return nil, err
	}

	if spec.InitialConstraints != nil {
		if err := spec.InitialConstraints(e); err != nil {
			return nil, err
		}
		if err := e.Propagate(); err != nil {
			return nil, err
		}
	}

	for {
		cell, status := w.MinEntropyCell()
		switch status {
		case wave.Done:
			return w, nil
		case wave.Contradiction:
			return nil, wave.ErrContradiction
		}

		allowed := w.AllowedPatterns(cell)
		choice := weightedChoice(allowed, spec.Weights, rng)
		for _, p := range allowed {
			if p == choice {
				continue
			}
			if err := e.Unset(cell, p); err != nil {
				return nil, err
			}
		}
		if err := e.Propagate(); err != nil {
			return nil, err
		}
	}
}

// weightedChoice samples a uniform variate s ∈ [0, Σw) over allowed (which
// must be in ascending index order, as returned by Wave.AllowedPatterns),
// then walks allowed accumulating weights and returns the first pattern
// whose cumulative weight strictly exceeds s. This fixes the tie-breaking
// convention left implementation-defined by spec.md §9 Open Question (b):
// index-order accumulation with a single stable variate draw.
func weightedChoice(allowed []int, weights []float64, rng *rand.Rand) int {
	var total float64
	for _, p := range allowed {
		total += weights[p]
	}
	s := rng.Float64() * total

	var cumulative float64
	for _, p := range allowed {
		cumulative += weights[p]
		if cumulative > s {
			return p
		}
	}
	return allowed[len(allowed)-1]
}

// Run drives the retry policy of spec.md §5/§9: on contradiction, the seed
// is incremented (wrapping at 2^32, which uint32 arithmetic does for free)
// and a fresh try is attempted, up to nbTries times. nbTries is honored by
// both the overlapping and tiled front-ends (spec.md §9 Open Question (a) —
// the original's tiled-only hard-coded bound of 10 is not reproduced).
//
// Any non-Contradiction error aborts immediately and is returned as-is.
func Run(spec Spec, seed uint32, nbTries uint32) (*Solution, error) {
	if nbTries == 0 {
		nbTries = 1
	}

	s := seed
	var lastErr error
	for try := uint32(0); try < nbTries; try++ {
		if try > 0 {
			s = s + 1 // wraps 2^32-1 -> 0 via uint32 overflow, per spec.md §5
		}

		w, err := RunOnce(spec, s)
		if err == nil {
			return &Solution{Wave: w, Seed: s}, nil
		}
		if !errors.Is(err, wave.ErrContradiction) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w (last: %v)", ErrAllTriesFailed, lastErr)
}
