package fluere

import (
	"math"

	"github.com/fluere/fluere/pkg/rng"
)

// zoom controls how far outside the canvas knots may land. At 1.0 all knots
// lie on screen; at 1.1 they are placed in a region 10% larger than the
// canvas, centered on it, so field centers can sit just past the edges.
const zoom = 1.1

// knot is a randomly placed control point. The value of every pixel in a
// drawing is a function of the distance or angle to each of the knots.
type knot struct {
	x, y float64

	// Per-style signs: whether colors cycle in or out (flow/wave/leaf/rays)
	// or clockwise vs. counterclockwise (spin).
	flowSign float64
	spinSign float64
	waveSign float64
	leafSign int
	raysSign int

	// Spin-only shape parameters. sectors is n/(2*pi) for a spoke count n;
	// amplitude, frequency and decay control the optional waviness, with
	// amplitude zero (no waviness) half the time.
	sectors   float64
	amplitude float64
	frequency float64
	decay     float64
}

// sign converts a fair coin flip to +1/-1.
func sign(src rng.Source) float64 {
	if src.Bool() {
		return 1
	}
	return -1
}

// defineKnots materializes n knots for a width x height canvas, consuming
// src in a fixed order so that equal seeds give identical knot sets.
func defineKnots(n, width, height int, src rng.Source) []knot {
	originX := 0.5 * (zoom - 1) * float64(width)
	originY := 0.5 * (zoom - 1) * float64(height)

	knots := make([]knot, n)
	for i := range knots {
		k := &knots[i]

		k.x = zoom*float64(width)*src.Float64() - originX
		k.y = zoom*float64(height)*src.Float64() - originY

		k.flowSign = sign(src)
		k.spinSign = sign(src)
		k.leafSign = int(sign(src))
		k.raysSign = int(sign(src))
		k.waveSign = sign(src)

		// How many "spokes" (palette rotations) the knot has under spin.
		spokes := 1 + src.IntN(7)
		k.sectors = float64(spokes) / (2 * math.Pi)

		k.frequency = 6*src.Float64() + 3
		if src.Bool() {
			k.amplitude = 0
		} else {
			k.amplitude = 8 * k.frequency / float64(spokes*spokes)
		}
		k.decay = 20 + src.Float64()*30
	}
	return knots
}
