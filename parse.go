package colorconv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Parse converts a textual color expression to a Color. Accepted forms:
//
//	#rgb  #rgba  #rrggbb  #rrggbbaa     packed RGBA, hexadecimal
//	rgb(r, g, b)  rgba(r, g, b, a)      packed RGBA, integers 0-255
//	cmyk(c, m, y, k)                    CMYK, floats
//	ycbcr(y, cb, cr)                    YCbCr, integers 0-255
//	hsv(h, s, v)  hsl(h, s, l)          hue in degrees, floats
//	cornflowerblue                      SVG 1.1 color keyword
//
// Each form is handed to exactly one From* conversion. Hex and rgb/rgba
// results are premultiplied, so translucent inputs come back in the
// canonical form rather than the straight alpha of [FromPackedRGBA].
// Integer channels
// must fit in 8 bits. Float components outside their nominal range are
// accepted unless [WithStrictRange] is given.
func Parse(s string, opts ...ParseOption) (Color, error) {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	c, model, err := parseExpr(strings.TrimSpace(s), &o)
	if err != nil {
		log.Debug("colorconv: rejected color", "input", s, "error", err)
		return Color{}, err
	}
	log.Debug("colorconv: parsed color", "input", s, "model", model, "color", c)
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// color tables.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseExpr(s string, o *parseOptions) (Color, string, error) {
	switch {
	case s == "":
		return Color{}, "", fmt.Errorf("%w: empty expression", ErrSyntax)
	case s[0] == '#':
		p, err := parseHex(s[1:])
		if err != nil {
			return Color{}, "", err
		}
		return FromPackedRGBA(p).Premultiply(), "hex", nil
	case strings.ContainsRune(s, '('):
		return parseFunc(s, o)
	case o.names:
		c, err := Named(s)
		return c, "name", err
	default:
		return Color{}, "", fmt.Errorf("%w: %q", ErrSyntax, s)
	}
}

// parseHex decodes 3, 4, 6 or 8 hex digits. Alpha defaults to opaque.
func parseHex(hex string) (PackedRGBA, error) {
	digits := 2
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
	default:
		return PackedRGBA{}, fmt.Errorf("%w: hex color #%s must have 3, 4, 6 or 8 digits", ErrSyntax, hex)
	}

	ch := [4]uint8{0, 0, 0, 255}
	for i := 0; i*digits < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return PackedRGBA{}, fmt.Errorf("%w: hex color #%s", ErrSyntax, hex)
		}
		if digits == 1 {
			v *= 17
		}
		ch[i] = uint8(v)
	}
	return PackedRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func parseFunc(s string, o *parseOptions) (Color, string, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return Color{}, "", fmt.Errorf("%w: missing ')' in %q", ErrSyntax, s)
	}
	model := strings.ToLower(strings.TrimSpace(s[:open]))
	args := strings.Split(s[open+1:len(s)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	var (
		c   Color
		err error
	)
	switch model {
	case "rgb", "rgba":
		n := 3
		if model == "rgba" {
			n = 4
		}
		var ch []uint8
		if ch, err = parseBytes(model, args, n); err == nil {
			p := PackedRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}
			if n == 4 {
				p.A = ch[3]
			}
			c = FromPackedRGBA(p).Premultiply()
		}
	case "ycbcr":
		var ch []uint8
		if ch, err = parseBytes(model, args, 3); err == nil {
			c = FromYCbCr(YCbCr{Y: ch[0], Cb: ch[1], Cr: ch[2]})
		}
	case "cmyk":
		var f []float32
		if f, err = parseFloats(model, args, o.strict, 1, 1, 1, 1); err == nil {
			c = FromCMYK(CMYK{C: f[0], M: f[1], Y: f[2], K: f[3]})
		}
	case "hsv":
		var f []float32
		if f, err = parseFloats(model, args, o.strict, 360, 1, 1); err == nil {
			c = FromHSV(HSV{H: f[0], S: f[1], V: f[2]})
		}
	case "hsl":
		var f []float32
		if f, err = parseFloats(model, args, o.strict, 360, 1, 1); err == nil {
			c = FromHSL(HSL{H: f[0], S: f[1], L: f[2]})
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	return c, model, err
}

// parseBytes parses n integer channels in [0, 255].
func parseBytes(model string, args []string, n int) ([]uint8, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: %s() takes %d arguments, got %d", ErrSyntax, model, n, len(args))
	}
	out := make([]uint8, n)
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s() argument %d: %q", ErrSyntax, model, i+1, a)
		}
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: %s() argument %d: %d not in [0, 255]", ErrOutOfRange, model, i+1, v)
		}
		out[i] = uint8(v)
	}
	return out, nil
}

// parseFloats parses one finite float per upper bound. With strict set, each
// value must lie in [0, upper].
func parseFloats(model string, args []string, strict bool, upper ...float32) ([]float32, error) {
	if len(args) != len(upper) {
		return nil, fmt.Errorf("%w: %s() takes %d arguments, got %d", ErrSyntax, model, len(upper), len(args))
	}
	out := make([]float32, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		f := float32(v)
		if err != nil || math32.IsNaN(f) || math32.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %s() argument %d: %q", ErrSyntax, model, i+1, a)
		}
		if strict && (f < 0 || f > upper[i]) {
			return nil, fmt.Errorf("%w: %s() argument %d: %g not in [0, %g]", ErrOutOfRange, model, i+1, f, upper[i])
		}
		out[i] = f
	}
	return out, nil
}
