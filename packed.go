package colorconv

import "github.com/gogpu/colorconv/internal/unorm"

// PackedRGBA is a color with four 8-bit channels in [0, 255].
type PackedRGBA struct {
	R, G, B, A uint8
}

// FromPackedRGBA converts 8-bit channels to a Color by dividing each one by
// 255 in floating point.
//
// Alpha is copied through and R, G, B are NOT premultiplied here, even though
// Color is documented as premultiplied. Translucent inputs therefore need
// [Color.Premultiply] before compositing.
func FromPackedRGBA(p PackedRGBA) Color {
	return Color{
		R: unorm.ToFloat(p.R),
		G: unorm.ToFloat(p.G),
		B: unorm.ToFloat(p.B),
		A: unorm.ToFloat(p.A),
	}
}

// Color converts p with [FromPackedRGBA].
func (p PackedRGBA) Color() Color { return FromPackedRGBA(p) }

// RGBA implements the image/color.Color interface. Like color.NRGBA, the
// channels are premultiplied by alpha on the way out.
func (p PackedRGBA) RGBA() (r, g, b, a uint32) { return FromPackedRGBA(p).Premultiply().RGBA() }
