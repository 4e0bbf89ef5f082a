package overlapping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rybkr/wfc/internal/color"
)

func numbered(n int) Pattern {
	pixels := make([]color.Color, n*n)
	for i := range pixels {
		pixels[i] = color.Color{R: uint8(i)}
	}
	return Pattern{N: n, pixels: pixels}
}

func TestReflectHMirrorsColumns(t *testing.T) {
	p := numbered(2)
	r := reflectH(p)
	assert.Equal(t, p.At(0, 0), r.At(0, 1))
	assert.Equal(t, p.At(0, 1), r.At(0, 0))
	assert.Equal(t, p.At(1, 0), r.At(1, 1))
}

func TestRotate90FourTimesIsIdentity(t *testing.T) {
	p := numbered(3)
	q := p
	for i := 0; i < 4; i++ {
		q = rotate90(q)
	}
	assert.Equal(t, p.pixels, q.pixels)
}

func TestTransformIdentityIsNoOp(t *testing.T) {
	p := numbered(3)
	assert.Equal(t, p.pixels, transform(p, 0).pixels)
}

func TestTransformProducesEightDistinctVariantsForAsymmetricPattern(t *testing.T) {
	p := numbered(3)
	seen := map[string]bool{}
	for _, g := range symmetryOrder {
		seen[transform(p, g).key()] = true
	}
	assert.Len(t, seen, 8)
}

func TestKeyEqualForIdenticalPixelsDifferentSlices(t *testing.T) {
	a := numbered(2)
	b := numbered(2)
	assert.Equal(t, a.key(), b.key())
}
