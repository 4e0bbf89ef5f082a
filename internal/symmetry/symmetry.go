// Package symmetry implements the 8-element dihedral group operations used
// to expand patterns/tiles into their distinct orientations and to close
// neighbor rules under rotation/reflection (spec.md §4.2, component C2).
//
// An orientation is an integer in [0, 8): orientations 0-3 are rotations by
// 0/90/180/270 degrees, orientations 4-7 are the same four rotations applied
// to the horizontal reflection of the base image.
package symmetry

import (
	"errors"
	"fmt"
)

// Class names the symmetry class of a tile or pattern.
type Class byte

const (
	ClassX         Class = iota // full symmetry: every orientation is identical
	ClassT                      // mirror symmetry along one axis, like a T piece
	ClassI                      // 180-degree rotational symmetry, like an I piece
	ClassL                      // mirror symmetry along one diagonal, like an L piece
	ClassBackslash              // 180-degree rotational symmetry along the diagonal
	ClassP                      // no symmetry at all
)

// ParseClass maps a symmetry class name to its Class, per spec.md §3/§6's
// {X, T, I, L, \, P} vocabulary.
func ParseClass(name string) (Class, error) {
	switch name {
	case "X":
		return ClassX, nil
	case "T":
		return ClassT, nil
	case "I":
		return ClassI, nil
	case "L":
		return ClassL, nil
	case `\`:
		return ClassBackslash, nil
	case "P":
		return ClassP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymmetryName, name)
	}
}

// String renders a Class back to its canonical name.
func (c Class) String() string {
	switch c {
	case ClassX:
		return "X"
	case ClassT:
		return "T"
	case ClassI:
		return "I"
	case ClassL:
		return "L"
	case ClassBackslash:
		return `\`
	case ClassP:
		return "P"
	default:
		return fmt.Sprintf("Class(%d)", byte(c))
	}
}

// orbit lists the subset of the 8 dihedral elements that produce a distinct
// image for each symmetry class, always starting with the identity element.
var orbit = map[Class][]int{
	ClassX:         {0},
	ClassI:         {0, 1},
	ClassBackslash: {0, 1},
	ClassT:         {0, 1, 2, 3},
	ClassL:         {0, 1, 2, 3},
	ClassP:         {0, 1, 2, 3, 4, 5, 6, 7},
}

// Orbit returns the distinct dihedral-group elements a tile/pattern of the
// given class expands into. Its length is the class's cardinality
// (X→1, I/\→2, T/L→4, P→8, per spec.md §3).
func Orbit(c Class) []int {
	o := orbit[c]
	out := make([]int, len(o))
	copy(out, o)
	return out
}

// group element g, applied to orientation a, composed via the dihedral
// group's Cayley table: elements 0-3 are rotations (r^k), elements 4-7 are
// reflection-then-rotation (f*r^k). Composition follows the standard
// dihedral group D4 multiplication rule.
//
// Compose returns the orientation that results from applying group element
// g to a pattern already in orientation a.
func Compose(a, g int) int {
	aRefl, aRot := a >= 4, a%4
	gRefl, gRot := g >= 4, g%4
	if gRefl {
		// A reflection reverses the sense of a's rotation (f*r^k = r^-k*f)
		// and toggles a's reflection, so reflecting an already-reflected
		// orientation cancels the reflection.
		rot := (gRot + (4 - aRot)) % 4
		if aRefl {
			return rot
		}
		return rot + 4
	}
	rot := (aRot + gRot) % 4
	if aRefl {
		return rot + 4
	}
	return rot
}

// Inverse returns the group element that undoes orientation o, i.e.
// Compose(o, Inverse(o)) == 0.
func Inverse(o int) int {
	if o >= 4 {
		return o // every reflection is its own inverse
	}
	return (4 - o) % 4
}

// RotateDirection rotates a cardinal direction (0=+x,1=-y,2=-x,3=+y, per
// spec.md §3) by group element g, so that neighbor rules expressed in one
// orientation translate correctly into another (spec.md §4.3).
//
// This must track the same image transform transformImage/rotate90 apply:
// one clockwise image rotation carries pixel (Y,X) to (X, n-1-Y), whose
// linear part sends a direction vector (dy,dx) to (dx,-dy) — i.e. +x (dir 0)
// to +y (dir 3), not -y (dir 1). So a single rotation step rotates a
// direction index backwards, d -> d-1 (mod 4), the opposite sense of how
// Compose advances a rotation orientation index.
func RotateDirection(d, g int) int {
	if g >= 4 {
		// Reflection mirrors left-right (flips directions 0 and 2) then
		// applies the residual rotation.
		mirrored := d
		if d == 0 {
			mirrored = 2
		} else if d == 2 {
			mirrored = 0
		}
		return (((mirrored - (g - 4)) % 4) + 4) % 4
	}
	return (((d - g) % 4) + 4) % 4
}

// ErrInvalidSymmetryName is returned when a symmetry class string isn't one
// of {X, T, I, L, \, P} (spec.md §7).
var ErrInvalidSymmetryName = errors.New("invalid symmetry class name")
