package tiled

import (
	"github.com/rybkr/wfc/internal/color"
	"github.com/rybkr/wfc/internal/grid"
	"github.com/rybkr/wfc/internal/wave"
)

// decode implements spec.md §4.8 item 3: each wave cell's chosen oriented
// tile image is blitted into its tileSize x tileSize output block.
func decode(w *wave.Wave, images []*grid.Grid[color.Color], waveHeight, waveWidth, tileSize int, periodicOutput bool) *grid.Grid[color.Color] {
	out := grid.New[color.Color](waveHeight*tileSize, waveWidth*tileSize, periodicOutput)

	for cy := 0; cy < waveHeight; cy++ {
		for cx := 0; cx < waveWidth; cx++ {
			img := images[w.SolePattern(cy*waveWidth+cx)]
			for y := 0; y < tileSize; y++ {
				for x := 0; x < tileSize; x++ {
					out.Set(cy*tileSize+y, cx*tileSize+x, img.At(y, x))
				}
			}
		}
	}
	return out
}
