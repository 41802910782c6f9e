package fluere

import "math"

// totalClamp bounds non-finite per-pixel totals before truncation. A pixel
// that coincides exactly with a knot makes ln(0) = -Inf under flow; the
// original left the resulting cast unspecified, so the total is pinned to an
// extreme finite value to keep the output deterministic across platforms.
const totalClamp = 1 << 31

// truncMod256 reduces a float total to a byte using truncating (toward-zero)
// division remainder semantics. Negative totals wrap the same way a C cast
// through int does: -3 becomes 253. Mathematical modulo would pick different
// bytes for negative totals and change the observed imagery, so the
// truncating rule is kept deliberately. NaN totals map to 0.
func truncMod256(v float64) uint8 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > totalClamp:
		v = totalClamp
	case v < -totalClamp:
		v = -totalClamp
	}
	return uint8(int64(v) % 256)
}

// flowValue sums the signed log-distance to every knot. The 100/n scale
// uses integer division, matching the original: with more than 100 knots the
// scale collapses to zero and the field goes flat.
func flowValue(knots []knot, px, py float64) uint8 {
	val := 0.0
	for i := range knots {
		k := &knots[i]
		dx := px - k.x
		dy := py - k.y
		val += k.flowSign * math.Log(dx*dx+dy*dy)
	}
	val *= float64(100 / len(knots))

	return truncMod256(val)
}

// spinValue sums the signed, sector-wrapped angle to every knot. A sine term
// scaled by amplitude and damped exponentially with distance adds the twisted
// spiral look; knots with zero amplitude spin cleanly.
func spinValue(knots []knot, px, py float64) uint8 {
	val := 0.0
	for i := range knots {
		k := &knots[i]
		dx := px - k.x
		dy := py - k.y
		r := math.Sqrt(dx*dx + dy*dy)

		a := 0.0
		if dx != 0 || dy != 0 {
			a = math.Atan2(dy, dx)
		}

		a += k.amplitude * k.sectors * math.Sin(r/k.frequency) * math.Exp(-r/k.decay)
		a = k.sectors * math.Mod(a, 1/k.sectors)
		val += k.spinSign * a
	}

	return truncMod256(256 * val)
}

// waveValue is flowValue passed through a sine so that colors reflect
// instead of ramping. Scaling and wrap rules match flowValue.
func waveValue(knots []knot, px, py float64) uint8 {
	val := 0.0
	for i := range knots {
		k := &knots[i]
		dx := px - k.x
		dy := py - k.y
		val += k.waveSign * math.Sin(1.5*math.Log(dx*dx+dy*dy))
	}
	val *= float64(100 / len(knots))

	return truncMod256(val)
}

// axialValue is the shared formula behind the leaf and rays styles: the
// squared ratio of the minor to major axis distance, quantized to multiples
// of discrete and accumulated as integers. With discrete = 1 the picture is
// smooth; larger values give coarser angular sections.
func axialValue(knots []knot, px, py float64, discrete int, knotSign func(*knot) int) uint8 {
	val := 0
	for i := range knots {
		k := &knots[i]
		dx := math.Abs(px - k.x)
		dy := math.Abs(py - k.y)

		big := math.Max(dx, dy)
		small := math.Min(dx, dy)

		a := 0.0
		if big != 0 {
			a = float64(knotSign(k)) * 75 * (small / big) * (small / big)
		}

		val += int(a) / discrete * discrete
	}

	return uint8(val % 256)
}

// leafValue draws leaf-shaped lobes around each knot.
func leafValue(knots []knot, px, py float64, discrete int) uint8 {
	return axialValue(knots, px, py, discrete, func(k *knot) int { return k.leafSign })
}

// raysValue is leafValue with the rays-specific sign and discreteness, so the
// two styles stay visually distinct when checkerboarded in one drawing.
func raysValue(knots []knot, px, py float64, discrete int) uint8 {
	return axialValue(knots, px, py, discrete, func(k *knot) int { return k.raysSign })
}
