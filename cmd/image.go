package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	wfccolor "github.com/rybkr/wfc/internal/color"
	"github.com/rybkr/wfc/internal/grid"
)

// loadImage reads a PNG file into a Color grid. Image decode/encode lives
// only in this outer shell, never in the core packages.
func loadImage(path string) (*grid.Grid[wfccolor.Color], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	g := grid.New[wfccolor.Color](bounds.Dy(), bounds.Dx(), false)
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			g.Set(y, x, wfccolor.FromNRGBA(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return g, nil
}

// saveImage writes a Color grid to path as a PNG.
func saveImage(path string, g *grid.Grid[wfccolor.Color]) error {
	out := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out.SetNRGBA(x, y, g.At(y, x).NRGBA())
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// writeSamples saves each successful sample to disk. A single sample is
// written to path as-is; multiple samples get an index suffixed before the
// extension (out.png -> out-0.png, out-1.png, ...).
func writeSamples(path string, samples []*grid.Grid[wfccolor.Color]) error {
	if len(samples) == 0 {
		return fmt.Errorf("wfc: every sample failed, nothing to write")
	}
	if len(samples) == 1 {
		return saveImage(path, samples[0])
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i, g := range samples {
		if err := saveImage(fmt.Sprintf("%s-%d%s", base, i, ext), g); err != nil {
			return err
		}
	}
	return nil
}
