package overlapping

import (
	"github.com/rybkr/wfc/internal/propagator"
)

// groundConstraint builds the initial-constraint closure of spec.md §4.7
// item 3: the pattern occupying the bottom-middle extraction window becomes
// the "ground" pattern g, forbidden everywhere outside the last wave row and
// made mandatory (all other patterns forbidden) on the last wave row.
func groundConstraint(groundPattern, waveHeight, waveWidth, patternCount int) func(e *propagator.Engine) error {
	lastRow := waveHeight - 1

	return func(e *propagator.Engine) error {
		for y := 0; y < waveHeight; y++ {
			for x := 0; x < waveWidth; x++ {
				cell := y*waveWidth + x
				if y == lastRow {
					for p := 0; p < patternCount; p++ {
						if p == groundPattern {
							continue
						}
						if err := e.Unset(cell, p); err != nil {
							return err
						}
					}
					continue
				}
				if err := e.Unset(cell, groundPattern); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
