package colorconv

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/gogpu/colorconv/internal/unorm"
)

// Color is the canonical color value every conversion produces.
//
// Components are float32, nominally in [0, 1], and stored premultiplied by
// alpha: a fully transparent color is expected to have R = G = B = 0.
// The type does not clamp; conversions may return out-of-gamut components
// and consumers clamp at the point of use (see [Color.Clamp]).
//
// Color is a plain value. Conversions always return a new Color and never
// modify an existing one.
type Color struct {
	R, G, B, A float32
}

// Common colors
var (
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// RGBA implements the image/color.Color interface.
// Components are clamped to [0, 1] and scaled to 16 bits. Color is already
// premultiplied, so no alpha weighting is applied here; R, G and B are
// capped at A so the result always satisfies the premultiplied contract.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = unorm.Quantize16(c.A)
	return min(unorm.Quantize16(c.R), a), min(unorm.Quantize16(c.G), a), min(unorm.Quantize16(c.B), a), a
}

// FromColor converts a standard color.Color to the canonical Color.
// The standard library returns premultiplied 16-bit channels, which map
// directly onto the canonical premultiplied form.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, a := c.RGBA()
	return Color{
		R: float32(r) / 0xffff,
		G: float32(g) / 0xffff,
		B: float32(b) / 0xffff,
		A: float32(a) / 0xffff,
	}
}

// Model converts any color.Color to Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// Clamp returns c with every component restricted to [0, 1].
func (c Color) Clamp() Color {
	return Color{
		R: unorm.Clamp(c.R),
		G: unorm.Clamp(c.G),
		B: unorm.Clamp(c.B),
		A: unorm.Clamp(c.A),
	}
}

// Packed quantizes c to 8-bit channels, clamping first and rounding half up.
// Channels are written as stored; no premultiplication is undone.
func (c Color) Packed() PackedRGBA {
	return PackedRGBA{
		R: unorm.Quantize(c.R),
		G: unorm.Quantize(c.G),
		B: unorm.Quantize(c.B),
		A: unorm.Quantize(c.A),
	}
}

// Premultiply returns c with R, G and B scaled by A.
//
// [FromPackedRGBA] stores channels without premultiplying them. Callers that
// hold translucent packed pixels use Premultiply to bring the result into
// the canonical convention.
func (c Color) Premultiply() Color {
	return Color{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Unpremultiply returns c with R, G and B divided by A.
// A color with alpha within [Epsilon] of zero becomes fully transparent.
func (c Color) Unpremultiply() Color {
	if nearZero(c.A) {
		return Transparent
	}
	return Color{
		R: c.R / c.A,
		G: c.G / c.A,
		B: c.B / c.A,
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Near reports whether every component of c is within tol of other.
func (c Color) Near(other Color, tol float32) bool {
	return math32.Abs(c.R-other.R) <= tol &&
		math32.Abs(c.G-other.G) <= tol &&
		math32.Abs(c.B-other.B) <= tol &&
		math32.Abs(c.A-other.A) <= tol
}

// InGamut reports whether every component lies in [0, 1].
func (c Color) InGamut() bool {
	return inUnit(c.R) && inUnit(c.G) && inUnit(c.B) && inUnit(c.A)
}

func (c Color) String() string {
	return fmt.Sprintf("Color{R: %g, G: %g, B: %g, A: %g}", c.R, c.G, c.B, c.A)
}

func inUnit(v float32) bool {
	return v >= 0 && v <= 1
}
