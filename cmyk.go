package colorconv

// CMYK is a subtractive color with cyan, magenta, yellow and key (black)
// components, nominally in [0, 1]. Components are not validated.
type CMYK struct {
	C, M, Y, K float32
}

// FromCMYK converts a CMYK color to an opaque Color.
// CMYK carries no alpha, so A is always 1. Out-of-range components
// propagate without clamping.
func FromCMYK(c CMYK) Color {
	k := 1 - c.K
	return Color{
		R: (1 - c.C) * k,
		G: (1 - c.M) * k,
		B: (1 - c.Y) * k,
		A: 1,
	}
}

// Color converts c with [FromCMYK].
func (c CMYK) Color() Color { return FromCMYK(c) }

// RGBA implements the image/color.Color interface.
func (c CMYK) RGBA() (r, g, b, a uint32) { return FromCMYK(c).RGBA() }
