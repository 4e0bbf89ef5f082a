// Package grid implements the fixed-size 2-D container described in
// spec.md §4.1 (component C1), with an optional periodic (toroidal) index
// mode selected once at construction.
package grid

import "fmt"

// Grid is a rectangular, fixed-size container of T.
//
// A periodic Grid treats out-of-range (y, x) as wrapping modulo
// (Height, Width); a non-periodic Grid rejects out-of-range indices — the
// caller (the propagator engine, per spec.md §4.5) is responsible for never
// presenting an out-of-range index to a non-periodic Grid.
type Grid[T any] struct {
	Height, Width int
	Periodic      bool
	cells         []T
}

// New constructs a Grid of the given dimensions, every cell set to the zero
// value of T.
func New[T any](height, width int, periodic bool) *Grid[T] {
	return &Grid[T]{
		Height:   height,
		Width:    width,
		Periodic: periodic,
		cells:    make([]T, height*width),
	}
}

// NewFilled constructs a Grid with every cell initialized to fill.
func NewFilled[T any](height, width int, periodic bool, fill T) *Grid[T] {
	g := New[T](height, width, periodic)
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// index resolves (y, x) to a flat offset, wrapping for periodic grids.
// It panics on out-of-range indices for non-periodic grids, matching the
// "caller's responsibility" contract in spec.md §4.1.
func (g *Grid[T]) index(y, x int) int {
	if g.Periodic {
		y = ((y % g.Height) + g.Height) % g.Height
		x = ((x % g.Width) + g.Width) % g.Width
	} else if y < 0 || y >= g.Height || x < 0 || x >= g.Width {
		panic(fmt.Sprintf("grid: index (%d, %d) out of range for non-periodic %dx%d grid", y, x, g.Height, g.Width))
	}
	return y*g.Width + x
}

// InBounds reports whether (y, x) can be read/written without panicking.
// Always true for a periodic grid.
func (g *Grid[T]) InBounds(y, x int) bool {
	if g.Periodic {
		return true
	}
	return y >= 0 && y < g.Height && x >= 0 && x < g.Width
}

// At returns the value at (y, x).
func (g *Grid[T]) At(y, x int) T {
	return g.cells[g.index(y, x)]
}

// Set writes the value at (y, x).
func (g *Grid[T]) Set(y, x int, v T) {
	g.cells[g.index(y, x)] = v
}

// Equal reports whether two grids have the same dimensions and cell values.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.Height != b.Height || a.Width != b.Width {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}
