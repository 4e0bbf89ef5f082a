// Package wave implements the per-cell pattern-allowance bitsets and
// entropy bookkeeping described in spec.md §4.4 (component C4).
package wave

import (
	"errors"
	"math"
	"math/bits"
	"math/rand"
)

// ErrContradiction reports that some cell's allowed-pattern count reached
// zero (spec.md §3 "Invariants", §7).
var ErrContradiction = errors.New("contradiction: cell has no allowed patterns")

// Status is the result of scanning the wave for the next cell to observe.
type Status int

const (
	// Undecided means a cell index was returned and should be observed.
	Undecided Status = iota
	// Done means every cell has exactly one allowed pattern.
	Done
	// Contradiction means some cell has zero allowed patterns.
	Contradiction
)

const wordBits = 64

// Wave holds, for every cell in an H×W grid, a bitset of which of
// patternCount patterns are still allowed, plus the running statistics
// needed to compute Shannon entropy in O(1) per removal.
type Wave struct {
	Height, Width int
	patternCount  int
	wordsPerCell  int

	bits   []uint64 // numCells*wordsPerCell words
	counts []int    // numCells

	weights      []float64 // per pattern, w(p)
	weightLogW   []float64 // per pattern, w(p)*ln(w(p))
	sumWeight    []float64 // per cell, Σ w(p) over allowed p
	sumWeightLog []float64 // per cell, Σ w(p)ln(w(p)) over allowed p

	noise []float64 // per cell, deterministic tiny perturbation in [0, 1e-6)
}

// New constructs a Wave over an H×W grid with every cell initially allowing
// every pattern, using the given per-pattern weights. rng seeds the
// deterministic per-cell tie-break noise (spec.md §3).
func New(height, width int, weights []float64, rng *rand.Rand) *Wave {
	numCells := height * width
	patternCount := len(weights)
	wordsPerCell := (patternCount + wordBits - 1) / wordBits

	w := &Wave{
		Height:       height,
		Width:        width,
		patternCount: patternCount,
		wordsPerCell: wordsPerCell,
		bits:         make([]uint64, numCells*wordsPerCell),
		counts:       make([]int, numCells),
		weights:      make([]float64, patternCount),
		weightLogW:   make([]float64, patternCount),
		sumWeight:    make([]float64, numCells),
		sumWeightLog: make([]float64, numCells),
		noise:        make([]float64, numCells),
	}
	copy(w.weights, weights)

	var totalWeight, totalWeightLog float64
	for p, wt := range weights {
		w.weightLogW[p] = wt * math.Log(wt)
		totalWeight += wt
		totalWeightLog += w.weightLogW[p]
	}

	allOnes := uint64(0xFFFFFFFFFFFFFFFF)
	lastWordBits := patternCount % wordBits
	for c := 0; c < numCells; c++ {
		w.counts[c] = patternCount
		w.sumWeight[c] = totalWeight
		w.sumWeightLog[c] = totalWeightLog
		w.noise[c] = rng.Float64() * 1e-6
		base := c * wordsPerCell
		for wi := 0; wi < wordsPerCell; wi++ {
			if wi == wordsPerCell-1 && lastWordBits != 0 {
				w.bits[base+wi] = allOnes >> (wordBits - lastWordBits)
			} else {
				w.bits[base+wi] = allOnes
			}
		}
	}

	return w
}

// PatternCount returns the number of patterns tracked per cell.
func (w *Wave) PatternCount() int { return w.patternCount }

// NumCells returns Height*Width.
func (w *Wave) NumCells() int { return w.Height * w.Width }

func (w *Wave) wordIndex(cell, pattern int) (word int, mask uint64) {
	word = cell*w.wordsPerCell + pattern/wordBits
	mask = uint64(1) << uint(pattern%wordBits)
	return
}

// IsPossible reports whether pattern is still allowed at cell.
func (w *Wave) IsPossible(cell, pattern int) bool {
	word, mask := w.wordIndex(cell, pattern)
	return w.bits[word]&mask != 0
}

// Count returns the number of patterns still allowed at cell.
func (w *Wave) Count(cell int) int {
	return w.counts[cell]
}

// Unset marks pattern impossible at cell. It reports whether this was a new
// removal (false if the pattern was already impossible), and returns
// ErrContradiction if this removal drove the cell's count to zero.
func (w *Wave) Unset(cell, pattern int) (removed bool, err error) {
	word, mask := w.wordIndex(cell, pattern)
	if w.bits[word]&mask == 0 {
		return false, nil
	}
	w.bits[word] &^= mask

	wt := w.weights[pattern]
	w.sumWeight[cell] -= wt
	w.sumWeightLog[cell] -= w.weightLogW[pattern]
	w.counts[cell]--

	if w.counts[cell] == 0 {
		return true, ErrContradiction
	}
	return true, nil
}

// AllowedPatterns returns the sorted indices of patterns still allowed at
// cell.
func (w *Wave) AllowedPatterns(cell int) []int {
	out := make([]int, 0, w.counts[cell])
	base := cell * w.wordsPerCell
	for wi := 0; wi < w.wordsPerCell; wi++ {
		word := w.bits[base+wi]
		for word != 0 {
			b := bits.TrailingZeros64(word)
			word &^= uint64(1) << uint(b)
			out = append(out, wi*wordBits+b)
		}
	}
	return out
}

// SolePattern returns the single pattern allowed at an observed cell (count
// == 1). Behavior is undefined if the cell is not observed.
func (w *Wave) SolePattern(cell int) int {
	base := cell * w.wordsPerCell
	for wi := 0; wi < w.wordsPerCell; wi++ {
		word := w.bits[base+wi]
		if word != 0 {
			return wi*wordBits + bits.TrailingZeros64(word)
		}
	}
	return -1
}

// entropy returns the Shannon entropy of the remaining patterns at cell,
// per spec.md §4.4: H = log(Σw) - (Σ w·log w)/Σw, plus the cell's
// precomputed tie-break noise.
func (w *Wave) entropy(cell int) float64 {
	sw := w.sumWeight[cell]
	return math.Log(sw) - w.sumWeightLog[cell]/sw + w.noise[cell]
}

// MinEntropyCell scans for the cell with the smallest positive entropy
// (count > 1), ties broken by precomputed per-cell noise. It reports Done
// if every cell is observed, or Contradiction if any cell has count 0.
func (w *Wave) MinEntropyCell() (cell int, status Status) {
	best := -1
	bestEntropy := math.Inf(1)

	for c := 0; c < len(w.counts); c++ {
		switch w.counts[c] {
		case 0:
			return c, Contradiction
		case 1:
			continue
		default:
			e := w.entropy(c)
			if e < bestEntropy {
				bestEntropy = e
				best = c
			}
		}
	}

	if best < 0 {
		return -1, Done
	}
	return best, Undecided
}
