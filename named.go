package colorconv

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Named returns the color for an SVG 1.1 / CSS color keyword such as
// "cornflowerblue". Matching ignores case and surrounding space.
func Named(name string) (Color, error) {
	// Caser is stateful; one per call keeps Named safe for concurrent use.
	key := cases.Fold().String(strings.TrimSpace(name))
	rgba, ok := colornames.Map[key]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return FromPackedRGBA(PackedRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}), nil
}
