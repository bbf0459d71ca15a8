package colorconv

// BT.601 inverse transform coefficients (JFIF full range).
const (
	crToR = 1.402
	cbToG = 0.34414
	crToG = 0.71414
	cbToB = 1.772
)

// YCbCr is a luma/chroma color. All channels are in [0, 255]; the chroma
// channels are centered at 128.
type YCbCr struct {
	Y, Cb, Cr uint8
}

// FromYCbCr converts a YCbCr color to an opaque Color using the ITU-R BT.601
// inverse transform.
//
// The arithmetic runs in float64 and the result is narrowed to float32.
// Nothing is rounded or clamped, so extreme chroma produces components
// outside [0, 1].
func FromYCbCr(c YCbCr) Color {
	y := float64(c.Y)
	cb := float64(c.Cb) - 128
	cr := float64(c.Cr) - 128
	return Color{
		R: float32((y + crToR*cr) / 255),
		G: float32((y - cbToG*cb - crToG*cr) / 255),
		B: float32((y + cbToB*cb) / 255),
		A: 1,
	}
}

// Color converts c with [FromYCbCr].
func (c YCbCr) Color() Color { return FromYCbCr(c) }

// RGBA implements the image/color.Color interface.
func (c YCbCr) RGBA() (r, g, b, a uint32) { return FromYCbCr(c).RGBA() }
