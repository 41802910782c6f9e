// Package fluere generates procedural "fluere" drawings.
//
// A drawing is an index image: a row-major byte buffer in which every byte is
// an index into a color table, not a direct color. The image is computed once
// from a set of randomly placed control points ("knots") and never changes;
// the screensaver-style animation consumers build on top of this package
// animate by rotating the color table, not by recomputing pixels.
//
// Each pixel's value is the sum of per-knot contributions under one of five
// field styles (flow, spin, wave, leaf, rays). Two styles are active per
// drawing and are composited in a checkerboard pattern by coordinate parity.
//
// All randomness is drawn from an explicit rng.Source passed to New, so a
// drawing is fully reproducible from its seed:
//
//	d, err := fluere.New(fluere.Config{
//	    Width:    800,
//	    Height:   600,
//	    NumKnots: 4,
//	    StyleA:   fluere.StyleFlow,
//	    StyleB:   fluere.StyleSpin,
//	}, rng.NewPCG(seed))
//	if err != nil {
//	    return err
//	}
//	pixels := d.Pixels()
package fluere
