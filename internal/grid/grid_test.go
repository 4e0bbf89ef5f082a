package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/wfc/internal/grid"
)

func TestNonPeriodicBounds(t *testing.T) {
	g := grid.New[int](3, 4, false)
	require.True(t, g.InBounds(0, 0))
	require.True(t, g.InBounds(2, 3))
	require.False(t, g.InBounds(3, 0))
	require.False(t, g.InBounds(0, -1))
}

func TestPeriodicWrap(t *testing.T) {
	g := grid.New[int](3, 4, true)
	g.Set(0, 0, 7)
	assert.Equal(t, 7, g.At(3, 4))
	assert.Equal(t, 7, g.At(-3, -4))
}

func TestSetAndAt(t *testing.T) {
	g := grid.NewFilled[int](2, 2, false, -1)
	assert.Equal(t, -1, g.At(0, 0))
	g.Set(1, 1, 42)
	assert.Equal(t, 42, g.At(1, 1))
	assert.Equal(t, -1, g.At(0, 1))
}

func TestNonPeriodicOutOfRangePanics(t *testing.T) {
	g := grid.New[int](2, 2, false)
	assert.Panics(t, func() { g.At(2, 0) })
}

func TestEqual(t *testing.T) {
	a := grid.NewFilled[int](2, 2, false, 1)
	b := grid.NewFilled[int](2, 2, false, 1)
	assert.True(t, grid.Equal(a, b))
	b.Set(0, 0, 2)
	assert.False(t, grid.Equal(a, b))
}
