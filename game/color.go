package game

import "math/rand/v2"

// Color is the RGB identity of a locked cell or piece. The zero Color marks an
// empty cell; dealt colors never have a channel below 128.
type Color struct {
	R, G, B uint8
}

// IsZero reports whether c is the empty marker.
func (c Color) IsZero() bool {
	return c == Color{}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func randomColor(rng *rand.Rand) Color {
	return Color{
		R: uint8(128 + rng.IntN(128)),
		G: uint8(128 + rng.IntN(128)),
		B: uint8(128 + rng.IntN(128)),
	}
}
