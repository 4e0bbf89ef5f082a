package tiled

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rybkr/wfc/internal/color"
	"github.com/rybkr/wfc/internal/grid"
)

func numberedImage(n int) *grid.Grid[color.Color] {
	g := grid.New[color.Color](n, n, false)
	i := 0
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.Set(y, x, color.Color{R: uint8(i)})
			i++
		}
	}
	return g
}

func TestRotate90FourTimesIsIdentity(t *testing.T) {
	img := numberedImage(3)
	q := img
	for i := 0; i < 4; i++ {
		q = rotate90(q)
	}
	assert.True(t, grid.Equal(img, q))
}

func TestReflectHTwiceIsIdentity(t *testing.T) {
	img := numberedImage(3)
	assert.True(t, grid.Equal(img, reflectH(reflectH(img))))
}

func TestTransformImageIdentityIsNoOp(t *testing.T) {
	img := numberedImage(2)
	assert.True(t, grid.Equal(img, transformImage(img, 0)))
}

func TestImageKeyStable(t *testing.T) {
	a := numberedImage(2)
	b := numberedImage(2)
	assert.Equal(t, imageKey(a), imageKey(b))
}
