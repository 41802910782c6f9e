package palette

import (
	"github.com/fluere/fluere/pkg/rng"
)

// TableSize is the number of entries in a color table: 256 colors followed by
// an identical copy. A consumer reading 256 contiguous entries starting at
// any offset in [0,256) never wraps.
const TableSize = 512

// Table is a cyclic color table. Immutable once built; the animation layer
// reads it through a rotating offset.
type Table struct {
	colors [TableSize]Color
}

// At returns entry i.
func (t *Table) At(i int) Color { return t.colors[i] }

// Window returns the 256 entries starting at offset, relying on the
// duplicated upper half. offset is reduced modulo 256.
func (t *Table) Window(offset int) []Color {
	offset = ((offset % 256) + 256) % 256
	return t.colors[offset : offset+256]
}

// Bytes flattens the table into 1536 bytes of packed RGB triples.
func (t *Table) Bytes() []byte {
	out := make([]byte, 0, TableSize*3)
	for _, c := range t.colors {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}

// BuildTable converts a palette into a color table by blending between a list
// of "stop" colors arranged in cyclic bands.
//
// With randomize false the palette colors are used in order, one band each.
// With randomize true a random number of stops is chosen (5-10, or 3-5 when
// striping since striping doubles the band count) and each stop is picked
// from the palette uniformly with replacement. With stripes true every
// odd-indexed stop is pure black, alternating the palette colors with black
// bands.
func BuildTable(p Palette, randomize, stripes bool, src rng.Source) *Table {
	nsteps := len(p.Colors)
	if randomize {
		if stripes {
			nsteps = src.IntN(3) + 3
		} else {
			nsteps = src.IntN(6) + 5
		}
	}
	if stripes {
		nsteps *= 2
	}

	stops := make([]Color, nsteps)
	next := 0
	for i := range stops {
		switch {
		case stripes && i%2 == 1:
			stops[i] = Color{} // black stripe
		case randomize:
			stops[i] = p.Colors[src.IntN(len(p.Colors))]
		default:
			stops[i] = p.Colors[next%len(p.Colors)]
			next++
		}
	}

	var t Table
	for i := 0; i < nsteps; i++ {
		start := stops[i]
		end := stops[(i+1)%nsteps]

		// Band boundaries use integer division so the bands partition the
		// 256 slots exactly the way the original tables did.
		lo := i * 256 / nsteps
		hi := (i + 1) * 256 / nsteps
		for idx := lo; idx < hi; idx++ {
			frac := float64(nsteps) / 256 * float64(idx-lo)
			c := blend(start, end, frac)
			t.colors[idx] = c
			t.colors[idx+256] = c
		}
	}
	return &t
}

// blend linearly interpolates between two colors; frac 0 gives start, 1 gives
// end. Channels round to nearest and clamp to [0,255].
func blend(start, end Color, frac float64) Color {
	return Color{
		R: blendChannel(start.R, end.R, frac),
		G: blendChannel(start.G, end.G, frac),
		B: blendChannel(start.B, end.B, frac),
	}
}

func blendChannel(a, b uint8, frac float64) uint8 {
	v := float64(a)*(1-frac) + float64(b)*frac + 0.5
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}
