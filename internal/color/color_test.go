package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	std "image/color"

	"github.com/rybkr/wfc/internal/color"
)

func TestFromNRGBAPreservesChannelsRegardlessOfAlpha(t *testing.T) {
	got := color.FromNRGBA(std.NRGBA{R: 10, G: 20, B: 30, A: 40})
	assert.Equal(t, color.Color{R: 10, G: 20, B: 30, A: 40}, got)
}

func TestFromNRGBAOpaqueRoundTripsThroughRGBA(t *testing.T) {
	rgba := std.RGBA{R: 200, G: 150, B: 100, A: 255}
	got := color.FromNRGBA(rgba)
	assert.Equal(t, color.Color{R: 200, G: 150, B: 100, A: 255}, got)
}

func TestNRGBARoundTripsWithFromNRGBA(t *testing.T) {
	c := color.Color{R: 1, G: 2, B: 3, A: 4}
	assert.Equal(t, c, color.FromNRGBA(c.NRGBA()))
}
