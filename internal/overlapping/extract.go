package overlapping

import (
	"errors"

	"github.com/rybkr/wfc/internal/color"
	"github.com/rybkr/wfc/internal/grid"
)

// ErrEmptyExemplar reports that the input image had zero width or height
// (spec.md §7).
var ErrEmptyExemplar = errors.New("overlapping: input image is empty")

// ErrNoPatternsExtracted reports that pattern extraction produced zero
// patterns, e.g. because N exceeds the exemplar's dimensions (spec.md §7).
var ErrNoPatternsExtracted = errors.New("overlapping: no patterns could be extracted from input")

// extraction holds the result of pattern extraction and symmetry expansion:
// the deduplicated pattern list, per-pattern weights, and (for the ground
// constraint) the canonical pattern index of each unreflected extraction
// origin.
type extraction struct {
	patterns      []Pattern
	weights       []float64
	originPattern map[[2]int]int // (y, x) origin -> identity-variant pattern index
	maxY, maxX    int            // number of window origins along each axis
}

// extractPatterns slides an N×N window over input (wrapping if
// periodicInput, otherwise confined to (H-N+1)x(W-N+1) origins), expands
// each window into `symmetry` dihedral variants, and accumulates weights
// for patterns that coincide by pixel-array equality (spec.md §4.7.1).
func extractPatterns(input *grid.Grid[color.Color], n int, periodicInput bool, symmetry int) (*extraction, error) {
	if input.Height == 0 || input.Width == 0 {
		return nil, ErrEmptyExemplar
	}
	if periodicInput && !input.Periodic {
		view := *input
		view.Periodic = true
		input = &view
	}

	maxY, maxX := input.Height, input.Width
	if !periodicInput {
		maxY = input.Height - n + 1
		maxX = input.Width - n + 1
	}
	if maxY <= 0 || maxX <= 0 {
		return nil, ErrNoPatternsExtracted
	}

	index := map[string]int{}
	result := &extraction{originPattern: map[[2]int]int{}, maxY: maxY, maxX: maxX}

	for oy := 0; oy < maxY; oy++ {
		for ox := 0; ox < maxX; ox++ {
			base := extractWindow(input, n, oy, ox)

			for level := 0; level < symmetry; level++ {
				variant := transform(base, symmetryOrder[level])
				k := variant.key()
				idx, ok := index[k]
				if !ok {
					idx = len(result.patterns)
					index[k] = idx
					result.patterns = append(result.patterns, variant)
					result.weights = append(result.weights, 0)
				}
				result.weights[idx]++
				if level == 0 {
					result.originPattern[[2]int{oy, ox}] = idx
				}
			}
		}
	}

	if len(result.patterns) == 0 {
		return nil, ErrNoPatternsExtracted
	}
	return result, nil
}

// extractWindow reads the N×N window with top-left corner (oy, ox),
// wrapping through input when input is periodic.
func extractWindow(input *grid.Grid[color.Color], n, oy, ox int) Pattern {
	pixels := make([]color.Color, n*n)
	for dy := 0; dy < n; dy++ {
		for dx := 0; dx < n; dx++ {
			pixels[dy*n+dx] = input.At(oy+dy, ox+dx)
		}
	}
	return Pattern{N: n, pixels: pixels}
}
