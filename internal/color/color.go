// Package color defines the opaque Color value type used throughout the
// WFC engine (spec.md §3 "Color / Cell Value"). It wraps image/color so the
// engine can be driven directly from real images without a bespoke pixel
// struct, while keeping the equality/hash guarantees the wave and pattern
// extraction rely on.
package color

import "image/color"

// Color is a value-comparable RGBA pixel. Two Colors are equal iff their
// channel values are equal, which is what pattern/tile identity and the
// propagator's pairwise-agreement check (spec.md §4.3) depend on.
type Color struct {
	R, G, B, A uint8
}

// FromNRGBA converts a standard library color into a Color, normalizing to
// non-premultiplied channels.
func FromNRGBA(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// NRGBA returns the standard library color for this Color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color so a Color can be assigned directly into an
// image.Image during decode.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}
