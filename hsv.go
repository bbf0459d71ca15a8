package colorconv

import "github.com/chewxy/math32"

// HSV is a color in the hue/saturation/value model.
// H is in degrees [0, 360]; S and V are in [0, 1].
type HSV struct {
	H, S, V float32
}

// FromHSV converts an HSV color to an opaque Color.
//
// Saturation within [Epsilon] of zero yields the gray (V, V, V). Otherwise
// the hue selects one of six 60° sectors. A hue of exactly 360° is treated
// as sector 0, and any index outside 0..4 uses the sector 5 mapping.
func FromHSV(c HSV) Color {
	v := c.V
	if nearZero(c.S) {
		return Color{R: v, G: v, B: v, A: 1}
	}

	h := c.H / 60
	if math32.Abs(c.H-360) < Epsilon {
		h = 0
	}
	i := math32.Floor(h)
	f := h - i

	p := v * (1 - c.S)
	q := v * (1 - c.S*f)
	t := v * (1 - c.S*(1-f))

	var r, g, b float32
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return Color{R: r, G: g, B: b, A: 1}
}

// Color converts c with [FromHSV].
func (c HSV) Color() Color { return FromHSV(c) }

// RGBA implements the image/color.Color interface.
func (c HSV) RGBA() (r, g, b, a uint32) { return FromHSV(c).RGBA() }
