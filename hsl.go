package colorconv

// HSL is a color in the hue/saturation/lightness model.
// H is in degrees [0, 360]; S and L are in [0, 1].
type HSL struct {
	H, S, L float32
}

// FromHSL converts an HSL color to an opaque Color.
//
// Lightness within [Epsilon] of zero yields black regardless of hue and
// saturation. Saturation within Epsilon of zero yields the gray (L, L, L).
func FromHSL(c HSL) Color {
	l, s := c.L, c.S
	if nearZero(l) {
		return Black
	}
	if nearZero(s) {
		return Color{R: l, G: l, B: l, A: 1}
	}

	h := c.H / 360

	var t2 float32
	if l < 0.5 {
		t2 = l * (1 + s)
	} else {
		t2 = l + s - l*s
	}
	t1 := 2*l - t2

	return Color{
		R: hueComponent(t1, t2, h+1.0/3),
		G: hueComponent(t1, t2, h),
		B: hueComponent(t1, t2, h-1.0/3),
		A: 1,
	}
}

// Color converts c with [FromHSL].
func (c HSL) Color() Color { return FromHSL(c) }

// RGBA implements the image/color.Color interface.
func (c HSL) RGBA() (r, g, b, a uint32) { return FromHSL(c).RGBA() }
