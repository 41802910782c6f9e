package palette

import (
	"strings"
	"testing"

	"github.com/fluere/fluere/pkg/rng"
)

// scriptSource replays fixed draws, cycling when exhausted.
type scriptSource struct {
	ints []int
	i    int
}

func (s *scriptSource) Float64() float64 { return 0 }
func (s *scriptSource) Bool() bool       { return false }
func (s *scriptSource) IntN(n int) int {
	v := s.ints[s.i%len(s.ints)]
	s.i++
	return v % n
}

func mustPalette(t *testing.T, input string) Palette {
	t.Helper()
	l, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	p, err := l.At(0)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBuildTable_Duplication(t *testing.T) {
	p, _ := Default().Named("Hot")

	for _, tc := range []struct {
		name               string
		randomize, stripes bool
	}{
		{"plain", false, false},
		{"stripes", false, true},
		{"randomized", true, false},
		{"randomized stripes", true, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tbl := BuildTable(p, tc.randomize, tc.stripes, rng.NewPCG(11))
			for i := 0; i < 256; i++ {
				if tbl.At(i) != tbl.At(i+256) {
					t.Fatalf("entry %d != entry %d", i, i+256)
				}
			}
		})
	}
}

func TestBuildTable_OrderedStops(t *testing.T) {
	// Without randomization every palette color starts its own band, exactly.
	p, _ := Default().Named("Cold")
	tbl := BuildTable(p, false, false, rng.NewPCG(1))

	nsteps := len(p.Colors)
	for i, want := range p.Colors {
		slot := i * 256 / nsteps
		if got := tbl.At(slot); got != want {
			t.Errorf("band %d start (slot %d) = %+v, want %+v", i, slot, got, want)
		}
	}
}

func TestBuildTable_RedGreenBlend(t *testing.T) {
	p := mustPalette(t, "Number_of_palettes 1\nTest 2 0xff0000 0x00ff00\n")
	tbl := BuildTable(p, false, false, rng.NewPCG(1))

	// Two bands of 128 slots: red to green, then green back to red.
	if got := tbl.At(0); got != (Color{R: 255}) {
		t.Errorf("slot 0 = %+v, want pure red", got)
	}
	if got := tbl.At(64); got != (Color{R: 128, G: 128}) {
		t.Errorf("slot 64 = %+v, want midpoint (128,128,0)", got)
	}
	if got := tbl.At(128); got != (Color{G: 255}) {
		t.Errorf("slot 128 = %+v, want pure green (second band start)", got)
	}
	// Last slot before wrapping back to red.
	if got := tbl.At(255); got != (Color{R: 253, G: 2}) {
		t.Errorf("slot 255 = %+v, want (253,2,0)", got)
	}
}

func TestBuildTable_Stripes(t *testing.T) {
	p, _ := Default().Named("Hot")
	tbl := BuildTable(p, false, true, rng.NewPCG(1))

	nsteps := len(p.Colors) * 2
	for i := 0; i < nsteps; i++ {
		slot := i * 256 / nsteps
		got := tbl.At(slot)
		if i%2 == 1 {
			if got != (Color{}) {
				t.Errorf("odd band %d start (slot %d) = %+v, want black", i, slot, got)
			}
		} else {
			if want := p.Colors[i/2]; got != want {
				t.Errorf("even band %d start (slot %d) = %+v, want %+v", i, slot, got, want)
			}
		}
	}
}

func TestBuildTable_RandomizedStripes(t *testing.T) {
	p := mustPalette(t, "Number_of_palettes 1\nTest 2 0xff0000 0x00ff00\n")

	// First draw picks 3 stops, doubled to 6 bands by striping; the later
	// draws pick palette colors for the even bands.
	src := &scriptSource{ints: []int{0, 1, 0, 1}}
	tbl := BuildTable(p, true, true, src)

	wantStarts := []Color{
		{G: 255}, // picked color 1
		{},       // stripe
		{R: 255}, // picked color 0
		{},       // stripe
		{G: 255}, // picked color 1
		{},       // stripe
	}
	for i, want := range wantStarts {
		slot := i * 256 / 6
		if got := tbl.At(slot); got != want {
			t.Errorf("band %d start (slot %d) = %+v, want %+v", i, slot, got, want)
		}
	}
}

func TestBuildTable_RandomizedDeterministic(t *testing.T) {
	p, _ := Default().Named("Grayscale")

	a := BuildTable(p, true, false, rng.NewPCG(21))
	b := BuildTable(p, true, false, rng.NewPCG(21))
	if *a != *b {
		t.Error("same seed produced different randomized tables")
	}
}

func TestTable_Window(t *testing.T) {
	p, _ := Default().Named("Cold")
	tbl := BuildTable(p, false, false, rng.NewPCG(1))

	w := tbl.Window(100)
	if len(w) != 256 {
		t.Fatalf("window length = %d, want 256", len(w))
	}
	if w[0] != tbl.At(100) || w[255] != tbl.At(355) {
		t.Error("window does not start at the requested offset")
	}

	// Offsets reduce modulo 256, including negatives.
	if tbl.Window(300)[0] != tbl.At(44) {
		t.Error("offset 300 should reduce to 44")
	}
	if tbl.Window(-1)[0] != tbl.At(255) {
		t.Error("offset -1 should reduce to 255")
	}
}

func TestTable_Bytes(t *testing.T) {
	p, _ := Default().Named("Hot")
	tbl := BuildTable(p, false, false, rng.NewPCG(1))

	b := tbl.Bytes()
	if len(b) != TableSize*3 {
		t.Fatalf("Bytes length = %d, want %d", len(b), TableSize*3)
	}
	if c := tbl.At(0); b[0] != c.R || b[1] != c.G || b[2] != c.B {
		t.Error("Bytes does not pack RGB triples in table order")
	}
}
