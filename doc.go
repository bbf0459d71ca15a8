// Package colorconv converts pixel colors from several color models into a
// single canonical value.
//
// # Overview
//
// [Color] holds four float32 components (R, G, B, A) in premultiplied-alpha
// form. Every conversion is a pure function from a source model value to a
// new Color:
//
//	FromPackedRGBA(PackedRGBA{R: 255, A: 255})  // 8-bit channels / 255
//	FromCMYK(CMYK{C: 0, M: 1, Y: 1, K: 0})       // subtractive
//	FromYCbCr(YCbCr{Y: 76, Cb: 85, Cr: 255})     // BT.601 inverse
//	FromHSV(HSV{H: 120, S: 1, V: 1})             // six-sector table
//	FromHSL(HSL{H: 240, S: 1, L: 0.5})           // piecewise hue ramp
//
// Conversions run one way only, into Color. They hold no state, never log,
// and are safe to call from any number of goroutines.
//
// # Numeric Policy
//
// Near-zero saturation and lightness, and the 360° hue wrap, are detected
// with the tolerance [Epsilon] rather than exact equality. Inputs are not
// validated: out-of-range values run through the arithmetic and may produce
// components outside [0, 1]. Use [Color.Clamp] or [Color.Packed] where a
// strict range is required.
//
// # Alpha
//
// [FromPackedRGBA] copies alpha through without premultiplying R, G and B.
// Translucent packed pixels need [Color.Premultiply] before compositing.
// All other models are opaque (A = 1).
//
// # Text
//
// [Parse] and [Named] turn expressions like "hsl(210, 0.5, 0.4)" or
// "cornflowerblue" into colors by dispatching to the conversions above.
//
// # Interoperability
//
// Color and every source model type implement image/color.Color, and
// [Model] converts any color.Color into a Color.
package colorconv
