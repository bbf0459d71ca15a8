package colorconv

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/draw"
)

// TestDrawSourceModels fills an RGBA image with each source model through
// x/image/draw and reads back the canonical conversion.
func TestDrawSourceModels(t *testing.T) {
	tests := []struct {
		name string
		src  color.Color
		want color.RGBA
	}{
		{"hsv red", HSV{H: 0, S: 1, V: 1}, color.RGBA{255, 0, 0, 255}},
		{"hsl green", HSL{H: 120, S: 1, L: 0.5}, color.RGBA{0, 255, 0, 255}},
		{"cmyk blue", CMYK{C: 1, M: 1, Y: 0, K: 0}, color.RGBA{0, 0, 255, 255}},
		{"ycbcr white", YCbCr{Y: 255, Cb: 128, Cr: 128}, color.RGBA{255, 255, 255, 255}},
		{"packed gray", PackedRGBA{128, 128, 128, 255}, color.RGBA{128, 128, 128, 255}},
		{"canonical", Color{R: 0.5, A: 0.5}, color.RGBA{128, 0, 0, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
			draw.Draw(dst, dst.Bounds(), image.NewUniform(tt.src), image.Point{}, draw.Src)
			assert.Equal(t, tt.want, dst.RGBAAt(2, 2))
		})
	}
}

// TestModelOnImage converts every pixel of a standard image into Color.
func TestModelOnImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	src.SetNRGBA(1, 0, color.NRGBA{255, 0, 0, 0})

	opaque := Model.Convert(src.At(0, 0)).(Color)
	assert.Equal(t, White, opaque)

	// Premultiplied by the standard library: no color survives zero alpha.
	gone := Model.Convert(src.At(1, 0)).(Color)
	assert.Equal(t, Transparent, gone)
}

// TestDrawTranslucentOver composites translucent packed colors over white
// and compares against the standard library's straight-alpha NRGBA.
func TestDrawTranslucentOver(t *testing.T) {
	tests := []struct {
		name string
		src  color.Color
		ref  color.NRGBA
	}{
		{"packed half red", PackedRGBA{255, 0, 0, 128}, color.NRGBA{255, 0, 0, 128}},
		{"packed quarter teal", PackedRGBA{0, 128, 128, 64}, color.NRGBA{0, 128, 128, 64}},
		{"parsed hex", MustParse("#ff000080"), color.NRGBA{255, 0, 0, 128}},
		{"parsed rgba", MustParse("rgba(0, 128, 128, 64)"), color.NRGBA{0, 128, 128, 64}},
	}

	over := func(src color.Color) color.RGBA {
		dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
		draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		draw.Draw(dst, dst.Bounds(), image.NewUniform(src), image.Point{}, draw.Over)
		return dst.RGBAAt(1, 1)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, want := over(tt.src), over(tt.ref)
			assert.LessOrEqual(t, absDiff8(got.R, want.R), uint8(1), "R: got %v, want %v", got, want)
			assert.LessOrEqual(t, absDiff8(got.G, want.G), uint8(1), "G: got %v, want %v", got, want)
			assert.LessOrEqual(t, absDiff8(got.B, want.B), uint8(1), "B: got %v, want %v", got, want)
			assert.Equal(t, want.A, got.A)
		})
	}
}

// TestRGBAChannelsNotAboveAlpha checks the premultiplied contract for
// translucent values, including a straight-alpha Color.
func TestRGBAChannelsNotAboveAlpha(t *testing.T) {
	for _, c := range []color.Color{
		PackedRGBA{255, 255, 255, 128},
		FromPackedRGBA(PackedRGBA{255, 200, 10, 30}),
		Color{R: 1, G: 0.9, B: 2, A: 0.25},
		MustParse("#ffffff10"),
	} {
		r, g, b, a := c.RGBA()
		assert.LessOrEqual(t, r, a, "%v", c)
		assert.LessOrEqual(t, g, a, "%v", c)
		assert.LessOrEqual(t, b, a, "%v", c)
	}
}
