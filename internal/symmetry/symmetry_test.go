package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/wfc/internal/symmetry"
)

func TestParseClassRoundTrip(t *testing.T) {
	for _, name := range []string{"X", "T", "I", "L", `\`, "P"} {
		c, err := symmetry.ParseClass(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.String())
	}
}

func TestParseClassInvalid(t *testing.T) {
	_, err := symmetry.ParseClass("Q")
	assert.ErrorIs(t, err, symmetry.ErrInvalidSymmetryName)
}

func TestOrbitCardinality(t *testing.T) {
	cases := map[symmetry.Class]int{
		symmetry.ClassX:         1,
		symmetry.ClassI:         2,
		symmetry.ClassBackslash: 2,
		symmetry.ClassT:         4,
		symmetry.ClassL:         4,
		symmetry.ClassP:         8,
	}
	for class, want := range cases {
		assert.Len(t, symmetry.Orbit(class), want, "class %v", class)
	}
}

func TestComposeIdentity(t *testing.T) {
	for a := range 8 {
		assert.Equal(t, a, symmetry.Compose(a, 0))
	}
}

func TestComposeInverse(t *testing.T) {
	for o := range 8 {
		inv := symmetry.Inverse(o)
		assert.Equal(t, 0, symmetry.Compose(o, inv), "orientation %d", o)
	}
}

func TestRotateDirectionOpposite(t *testing.T) {
	// Rotating by 2 (180 degrees) twice returns to the original direction.
	for d := range 4 {
		once := symmetry.RotateDirection(d, 2)
		twice := symmetry.RotateDirection(once, 2)
		assert.Equal(t, d, twice)
	}
}
