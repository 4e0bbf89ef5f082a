// Package tiled implements the tiled-mode front-end of spec.md §4.8
// (component C8): tile expansion by symmetry class, neighbor-rule expansion
// under the dihedral group, and block decode.
package tiled

import (
	"github.com/rybkr/wfc/internal/color"
	"github.com/rybkr/wfc/internal/grid"
	"github.com/rybkr/wfc/internal/symmetry"
)

// Tile is a square input tile (spec.md §3 "Tile (tiled mode)"): a name used
// to reference it from NeighborRule, its pixels, a symmetry class, and a
// weight.
type Tile struct {
	Name   string
	Pixels *grid.Grid[color.Color] // Size x Size, non-periodic
	Size   int
	Class  symmetry.Class
	Weight float64
}

// NeighborRule asserts that the tile named LeftName at LeftOrientation may
// sit immediately to the left of the tile named RightName at
// RightOrientation (spec.md §4.3 "Tiled mode", §6). Entries naming a tile
// absent from the accompanying Tile list are silently dropped during
// expansion (spec.md §6, scenario S5).
type NeighborRule struct {
	LeftName         string
	LeftOrientation  int
	RightName        string
	RightOrientation int
}

// baseRuleDirection is the direction a NeighborRule is expressed in before
// symmetry expansion: "to the left of" means the right tile sits at the
// left tile's +x neighbor.
const baseRuleDirection = 0

// reflectH mirrors a tile image left-right.
func reflectH(g *grid.Grid[color.Color]) *grid.Grid[color.Color] {
	n := g.Height
	out := grid.New[color.Color](n, n, false)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out.Set(y, x, g.At(y, n-1-x))
		}
	}
	return out
}

// rotate90 rotates a tile image 90 degrees clockwise.
func rotate90(g *grid.Grid[color.Color]) *grid.Grid[color.Color] {
	n := g.Height
	out := grid.New[color.Color](n, n, false)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out.Set(y, x, g.At(n-1-x, y))
		}
	}
	return out
}

// transformImage applies dihedral group element o to a tile image, using
// the same orientation convention as internal/symmetry (0-3 rotations, 4-7
// reflection then rotation).
func transformImage(g *grid.Grid[color.Color], o int) *grid.Grid[color.Color] {
	q := g
	if o >= 4 {
		q = reflectH(q)
	}
	for r := 0; r < o%4; r++ {
		q = rotate90(q)
	}
	return q
}

// imageKey returns a value usable as a map key for exact pixel-array
// equality, mirroring the overlapping front-end's pattern canonicalization
// (spec.md §4.7 item 1).
func imageKey(g *grid.Grid[color.Color]) string {
	buf := make([]byte, 0, g.Height*g.Width*4)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.At(y, x)
			buf = append(buf, c.R, c.G, c.B, c.A)
		}
	}
	return string(buf)
}
