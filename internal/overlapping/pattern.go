// Package overlapping implements the overlapping-mode front-end of spec.md
// §4.7 (component C7): N×N pattern extraction from an exemplar image,
// symmetry expansion, rule derivation, the ground constraint, and decode.
package overlapping

import (
	"github.com/rybkr/wfc/internal/color"
)

// Pattern is an N×N grid of Color, stored row-major (spec.md §3).
type Pattern struct {
	N      int
	pixels []color.Color // len N*N, row-major
}

// At returns the pixel at (y, x) within the pattern.
func (p Pattern) At(y, x int) color.Color {
	return p.pixels[y*p.N+x]
}

// key returns a value usable as a map key for canonicalizing pattern
// identity by pixel-array equality (spec.md §4.7 "Canonicalize pattern
// identity by pixel-array equality").
func (p Pattern) key() string {
	buf := make([]byte, len(p.pixels)*4)
	for i, c := range p.pixels {
		o := i * 4
		buf[o] = c.R
		buf[o+1] = c.G
		buf[o+2] = c.B
		buf[o+3] = c.A
	}
	return string(buf)
}

// symmetryOrder lists the 8 dihedral group elements in the order successive
// symmetry levels {1,2,4,8} add them: identity and its reflection first (the
// level-2 pair), then the 90-degree rotation and its reflection (completing
// level 4), then the remaining two rotations and their reflections
// (completing level 8). This fixes which half of the dihedral group a
// symmetry level of 2 or 4 picks, left unspecified by spec.md §4.7 beyond
// "symmetry variants up to the requested symmetry level".
var symmetryOrder = [8]int{0, 4, 1, 5, 2, 6, 3, 7}

// reflectH mirrors a pattern left-right.
func reflectH(p Pattern) Pattern {
	n := p.N
	out := make([]color.Color, len(p.pixels))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[y*n+x] = p.At(y, n-1-x)
		}
	}
	return Pattern{N: n, pixels: out}
}

// rotate90 rotates a pattern 90 degrees clockwise.
func rotate90(p Pattern) Pattern {
	n := p.N
	out := make([]color.Color, len(p.pixels))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[y*n+x] = p.At(n-1-x, y)
		}
	}
	return Pattern{N: n, pixels: out}
}

// transform applies dihedral group element g (spec.md §4.2 orientation
// convention: 0-3 rotations, 4-7 reflection then rotation) to a pattern,
// returning a new pattern of the same size.
func transform(p Pattern, g int) Pattern {
	q := p
	if g >= 4 {
		q = reflectH(q)
	}
	for r := 0; r < g%4; r++ {
		q = rotate90(q)
	}
	return q
}
