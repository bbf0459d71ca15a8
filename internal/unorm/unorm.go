// Package unorm maps 8-bit unsigned normalized channels to float32 and back.
//
// The forward table caches float32(i)/255 for every byte value, so a lookup
// is bit-identical to the floating-point division it replaces. Integer
// division is never used; it would truncate every channel below 255 to zero.
package unorm

import "github.com/chewxy/math32"

// Max is the largest 8-bit channel value as a float32 divisor.
const Max float32 = 255.0

// toFloatLUT holds float32(i) / 255 for i in [0, 255].
// 256 entries, 1KB memory cost.
var toFloatLUT [256]float32

func init() {
	for i := 0; i < 256; i++ {
		toFloatLUT[i] = float32(i) / Max
	}
}

// ToFloat converts an 8-bit channel to float32 in [0,1].
//
// Example:
//
//	v := ToFloat(255) // 1.0
//	v = ToFloat(128)  // ~0.50196
func ToFloat(v uint8) float32 {
	return toFloatLUT[v]
}

// Clamp restricts v to [0,1]. NaN maps to 0.
func Clamp(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	return math32.Min(v, 1)
}

// Quantize clamps v to [0,1] and converts it to an 8-bit channel,
// rounding half up.
func Quantize(v float32) uint8 {
	v = Clamp(v)
	if v >= 1 {
		return 255
	}
	//nolint:gosec // G115: v*255+0.5 is in [0.5, 255.5)
	return uint8(v*Max + 0.5)
}

// Quantize16 clamps v to [0,1] and converts it to a 16-bit channel in a
// uint32, the layout used by image/color.
func Quantize16(v float32) uint32 {
	v = Clamp(v)
	if v >= 1 {
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}
