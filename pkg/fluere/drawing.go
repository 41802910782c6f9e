package fluere

import (
	"github.com/fluere/fluere/pkg/errors"
	"github.com/fluere/fluere/pkg/rng"
)

// Config holds the caller-supplied parameters for a drawing. Everything else
// (knot placement, signs, shape parameters, discreteness factors) is drawn
// from the rng.Source at construction.
type Config struct {
	Width    int   // canvas width in pixels, > 0
	Height   int   // canvas height in pixels, > 0
	NumKnots int   // number of control points, > 0
	StyleA   Style // style for pixels where (col+row) is even
	StyleB   Style // style for pixels where (col+row) is odd
}

// validate checks the configuration, failing fast before any randomness is
// consumed. NumKnots must be at least 1: the flow and wave scale divides by it.
func (c Config) validate() error {
	if c.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "height must be positive, got %d", c.Height)
	}
	if c.NumKnots <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "need at least one knot, got %d", c.NumKnots)
	}
	if !c.StyleA.valid() {
		return errors.New(errors.ErrCodeInvalidStyle, "styleA %d is not a known style", c.StyleA)
	}
	if !c.StyleB.valid() {
		return errors.New(errors.ErrCodeInvalidStyle, "styleB %d is not a known style", c.StyleB)
	}
	return nil
}

// Drawing is a fully parameterized fluere drawing. It owns its knot set and
// is immutable after construction; Fill may be called any number of times and
// always produces the same bytes.
type Drawing struct {
	cfg   Config
	knots []knot

	// Per-drawing discreteness for the leaf and rays styles: 1 (continuous),
	// 4 or 7 (increasingly coarse angular sections).
	leafDiscrete int
	raysDiscrete int
}

// New creates a drawing, consuming src for the discreteness factors and then
// the knot set. The source is not retained: a Drawing is deterministic and
// side-effect-free once built.
func New(cfg Config, src rng.Source) (*Drawing, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	d := &Drawing{
		cfg:          cfg,
		leafDiscrete: 1 + 3*src.IntN(3),
		raysDiscrete: 1 + 3*src.IntN(3),
	}
	d.knots = defineKnots(cfg.NumKnots, cfg.Width, cfg.Height, src)
	return d, nil
}

// Width returns the canvas width in pixels.
func (d *Drawing) Width() int { return d.cfg.Width }

// Height returns the canvas height in pixels.
func (d *Drawing) Height() int { return d.cfg.Height }

// Fill writes the index image into buf in row-major order, one byte per
// pixel. Each byte is an index into a 512-entry color table, not a color.
// buf must have length Width*Height.
func (d *Drawing) Fill(buf []byte) error {
	if len(buf) != d.cfg.Width*d.cfg.Height {
		return errors.New(errors.ErrCodeInvalidBuffer,
			"buffer length %d, want %d (%dx%d)", len(buf), d.cfg.Width*d.cfg.Height, d.cfg.Width, d.cfg.Height)
	}

	for row := 0; row < d.cfg.Height; row++ {
		for col := 0; col < d.cfg.Width; col++ {
			buf[row*d.cfg.Width+col] = d.valueAt(col, row)
		}
	}
	return nil
}

// Pixels allocates and fills a fresh index image buffer.
func (d *Drawing) Pixels() []byte {
	buf := make([]byte, d.cfg.Width*d.cfg.Height)
	_ = d.Fill(buf) // length is correct by construction
	return buf
}

// valueAt computes the byte for one pixel, checkerboarding the two styles by
// coordinate parity.
func (d *Drawing) valueAt(col, row int) uint8 {
	style := d.cfg.StyleA
	if (col+row)%2 != 0 {
		style = d.cfg.StyleB
	}

	px, py := float64(col), float64(row)
	switch style {
	case StyleFlow:
		return flowValue(d.knots, px, py)
	case StyleSpin:
		return spinValue(d.knots, px, py)
	case StyleWave:
		return waveValue(d.knots, px, py)
	case StyleLeaf:
		return leafValue(d.knots, px, py, d.leafDiscrete)
	case StyleRays:
		return raysValue(d.knots, px, py, d.raysDiscrete)
	}
	return 0
}
