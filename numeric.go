package colorconv

import "github.com/chewxy/math32"

// Epsilon is the tolerance used by every near-zero guard in this package
// (saturation, lightness, alpha) and by the 360° hue wrap.
const Epsilon float32 = 1e-6

// nearZero reports whether v is within Epsilon of zero.
func nearZero(v float32) bool {
	return math32.Abs(v) < Epsilon
}

// wrapUnit moves t back into [0, 1] by at most one whole cycle.
// Values more than one cycle out of range are left partly out of range.
func wrapUnit(t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	return t
}

// hueComponent evaluates the piecewise-linear HSL channel ramp at hue t,
// where t1 and t2 are the low and high channel levels.
func hueComponent(t1, t2, t float32) float32 {
	t = wrapUnit(t)
	switch {
	case t < 1.0/6:
		return t1 + (t2-t1)*6*t
	case t < 1.0/2:
		return t2
	case t < 2.0/3:
		return t1 + (t2-t1)*(2.0/3-t)*6
	default:
		return t1
	}
}
