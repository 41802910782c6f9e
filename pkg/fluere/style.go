package fluere

import (
	"strings"

	"github.com/fluere/fluere/pkg/errors"
)

// Style identifies one of the five field formulas that convert a pixel's
// relation to the knots into a byte value.
type Style int

const (
	// StyleFlow derives the value from the log-distance to each knot,
	// giving smooth concentric flows between sources and sinks.
	StyleFlow Style = iota
	// StyleSpin derives the value from the angle to each knot, optionally
	// perturbed by a decaying sine for a twisted spiral look.
	StyleSpin
	// StyleWave is flow passed through a sine, so colors reflect back and
	// forth instead of ramping.
	StyleWave
	// StyleLeaf derives the value from the squared ratio of the minor to
	// major axis distance, producing leaf-shaped lobes around each knot.
	StyleLeaf
	// StyleRays uses the same formula as StyleLeaf with independent sign and
	// discreteness parameters, so the two remain visually distinct when
	// checkerboarded together in one drawing.
	StyleRays
)

// styleNames maps styles to their canonical names, in enum order.
var styleNames = [...]string{"flow", "spin", "wave", "leaf", "rays"}

// Styles returns all drawing styles in their canonical order.
func Styles() []Style {
	return []Style{StyleFlow, StyleSpin, StyleWave, StyleLeaf, StyleRays}
}

// valid reports whether s is one of the five known styles.
func (s Style) valid() bool {
	return s >= StyleFlow && s <= StyleRays
}

// String returns the canonical lowercase name of the style.
func (s Style) String() string {
	if !s.valid() {
		return "unknown"
	}
	return styleNames[s]
}

// ParseStyle converts a style name (case-insensitive) to a Style.
func ParseStyle(name string) (Style, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == lower {
			return Style(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidStyle,
		"unknown style %q (must be one of: %s)", name, strings.Join(styleNames[:], ", "))
}
