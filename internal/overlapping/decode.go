package overlapping

import (
	"github.com/rybkr/wfc/internal/color"
	"github.com/rybkr/wfc/internal/grid"
	"github.com/rybkr/wfc/internal/wave"
)

// decode maps a collapsed wave back to an output grid (spec.md §4.7 item 4).
//
// For periodic output the wave has the same dimensions as the output and
// every cell contributes only its top-left pixel. For non-periodic output
// the wave is (waveHeight, waveWidth) = (H-N+1, W-N+1); every cell
// contributes its top-left pixel, and the last wave row/column additionally
// contribute the remaining N-1 pixels of their pattern to complete the
// H×W output.
func decode(w *wave.Wave, patterns []Pattern, waveHeight, waveWidth, n int, periodicOutput bool) *grid.Grid[color.Color] {
	if periodicOutput {
		out := grid.New[color.Color](waveHeight, waveWidth, true)
		for y := 0; y < waveHeight; y++ {
			for x := 0; x < waveWidth; x++ {
				p := patterns[w.SolePattern(y*waveWidth+x)]
				out.Set(y, x, p.At(0, 0))
			}
		}
		return out
	}

	outHeight := waveHeight + n - 1
	outWidth := waveWidth + n - 1
	out := grid.New[color.Color](outHeight, outWidth, false)

	for y := 0; y < waveHeight; y++ {
		for x := 0; x < waveWidth; x++ {
			p := patterns[w.SolePattern(y*waveWidth+x)]
			out.Set(y, x, p.At(0, 0))

			if y == waveHeight-1 {
				for dy := 1; dy < n; dy++ {
					out.Set(y+dy, x, p.At(dy, 0))
				}
			}
			if x == waveWidth-1 {
				for dx := 1; dx < n; dx++ {
					out.Set(y, x+dx, p.At(0, dx))
				}
			}
			if y == waveHeight-1 && x == waveWidth-1 {
				for dy := 1; dy < n; dy++ {
					for dx := 1; dx < n; dx++ {
						out.Set(y+dy, x+dx, p.At(dy, dx))
					}
				}
			}
		}
	}
	return out
}
