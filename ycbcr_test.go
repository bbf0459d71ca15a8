package colorconv

import (
	"image/color"
	"testing"
)

func TestFromYCbCr(t *testing.T) {
	tests := []struct {
		name  string
		input YCbCr
		want  Color
	}{
		{"white", YCbCr{255, 128, 128}, White},
		{"black", YCbCr{0, 128, 128}, Black},
		{"mid gray", YCbCr{128, 128, 128}, Color{R: 128.0 / 255, G: 128.0 / 255, B: 128.0 / 255, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromYCbCr(tt.input)
			if !got.Near(tt.want, 1e-6) {
				t.Errorf("FromYCbCr(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromYCbCr_Formula(t *testing.T) {
	in := YCbCr{Y: 100, Cb: 90, Cr: 200}
	cb, cr := 90.0-128, 200.0-128
	want := Color{
		R: float32((100 + 1.402*cr) / 255),
		G: float32((100 - 0.34414*cb - 0.71414*cr) / 255),
		B: float32((100 + 1.772*cb) / 255),
		A: 1,
	}
	if got := FromYCbCr(in); !bitsEqual(got, want) {
		t.Errorf("FromYCbCr(%v) = %v, want %v", in, got, want)
	}
}

// TestFromYCbCr_MatchesStdlib compares against image/color's integer
// approximation of the same transform.
func TestFromYCbCr_MatchesStdlib(t *testing.T) {
	for y := 16; y <= 235; y += 17 {
		for cb := 16; cb <= 240; cb += 28 {
			for cr := 16; cr <= 240; cr += 28 {
				in := YCbCr{Y: uint8(y), Cb: uint8(cb), Cr: uint8(cr)}
				r, g, b := color.YCbCrToRGB(in.Y, in.Cb, in.Cr)
				got := FromYCbCr(in).Clamp().Packed()
				if d := absDiff8(got.R, r); d > 1 {
					t.Errorf("%v: R = %d, stdlib %d", in, got.R, r)
				}
				if d := absDiff8(got.G, g); d > 1 {
					t.Errorf("%v: G = %d, stdlib %d", in, got.G, g)
				}
				if d := absDiff8(got.B, b); d > 1 {
					t.Errorf("%v: B = %d, stdlib %d", in, got.B, b)
				}
			}
		}
	}
}

func TestFromYCbCr_ExtremeChromaUnclamped(t *testing.T) {
	got := FromYCbCr(YCbCr{Y: 255, Cb: 255, Cr: 255})
	if got.R <= 1 || got.B <= 1 {
		t.Errorf("expected R and B above 1, got %v", got)
	}
	got = FromYCbCr(YCbCr{Y: 0, Cb: 0, Cr: 0})
	if got.R >= 0 || got.B >= 0 {
		t.Errorf("expected R and B below 0, got %v", got)
	}
}

func absDiff8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
