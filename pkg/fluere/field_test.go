package fluere

import (
	"math"
	"testing"
)

func TestTruncMod256(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"zero", 0, 0},
		{"small positive", 5.9, 5},
		{"positive wrap", 300.2, 44},
		{"negative truncates toward zero", -5.9, 251},
		{"negative wrap", -300.7, 212},
		{"exact multiple", 512, 0},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncMod256(tt.in); got != tt.want {
				t.Errorf("truncMod256(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// -5.9 truncates to -5, not -6: mathematical (floor) modulo of the float
// would give byte 250 here instead of 251. The toward-zero rule is part of
// the observed imagery and must not be "fixed".
func TestTruncMod256_TruncatesNotFloors(t *testing.T) {
	if got := truncMod256(-5.9); got == 250 {
		t.Fatal("truncMod256 applied floor semantics to a negative total")
	}
}

func TestLeafRays_StructuralEquivalence(t *testing.T) {
	knots := []knot{
		{x: 3.5, y: -2, leafSign: 1, raysSign: 1},
		{x: 40, y: 17.25, leafSign: -1, raysSign: -1},
		{x: -8, y: 60, leafSign: 1, raysSign: 1},
	}

	for _, discrete := range []int{1, 4, 7} {
		for py := 0.0; py < 20; py++ {
			for px := 0.0; px < 20; px++ {
				l := leafValue(knots, px, py, discrete)
				r := raysValue(knots, px, py, discrete)
				if l != r {
					t.Fatalf("discrete=%d (%v,%v): leaf=%d rays=%d", discrete, px, py, l, r)
				}
			}
		}
	}
}

func TestLeafValue_Quantization(t *testing.T) {
	// One knot, one pixel on its diagonal: small/big = 1, contribution 75.
	knots := []knot{{x: 0, y: 0, leafSign: 1}}

	tests := []struct {
		discrete int
		want     uint8
	}{
		{1, 75},
		{4, 72}, // 75/4*4
		{7, 70}, // 75/7*7
	}

	for _, tt := range tests {
		if got := leafValue(knots, 10, 10, tt.discrete); got != tt.want {
			t.Errorf("discrete=%d: got %d, want %d", tt.discrete, got, tt.want)
		}
	}
}

func TestLeafValue_KnotCoincidesWithPixel(t *testing.T) {
	// big == 0 contributes nothing rather than dividing by zero.
	knots := []knot{{x: 5, y: 5, leafSign: 1}}
	if got := leafValue(knots, 5, 5, 1); got != 0 {
		t.Errorf("coincident pixel = %d, want 0", got)
	}
}

func TestFlowValue_KnownContribution(t *testing.T) {
	// Single knot at the origin, pixel at distance 1: ln(1) = 0 exactly.
	knots := []knot{{x: 0, y: 0, flowSign: 1}}
	if got := flowValue(knots, 1, 0); got != 0 {
		t.Errorf("unit distance flow = %d, want 0", got)
	}

	// Pixel at (3,4): ln(25)*100 = 321.88..., truncated and wrapped.
	if got := flowValue(knots, 3, 4); got != 65 { // 321 % 256
		t.Errorf("distance-5 flow = %d, want 65", got)
	}

	// A sink knot negates the total; source and sink bytes wrap to
	// complements modulo 256.
	sink := []knot{{x: 0, y: 0, flowSign: -1}}
	src := flowValue(knots, 3, 4)
	snk := flowValue(sink, 3, 4)
	if (int(src)+int(snk))%256 != 0 {
		t.Errorf("source %d and sink %d are not complements mod 256", src, snk)
	}
}

func TestFlowValue_IntegerScale(t *testing.T) {
	// The 100/n scale is integer division: with 7 knots it is 14, not 100/7.
	knots := make([]knot, 7)
	for i := range knots {
		knots[i] = knot{x: 0, y: 0, flowSign: 1}
	}
	// Each knot contributes ln(25) = 3.2188...; total 22.532..., scaled by 14.
	want := uint8(int64(7*math.Log(25)*14) % 256)
	if got := flowValue(knots, 3, 4); got != want {
		t.Errorf("7-knot flow = %d, want %d", got, want)
	}
}

func TestSpinValue_CleanSpin(t *testing.T) {
	// Zero amplitude means no waviness: the value is just the wrapped angle.
	k := knot{x: 0, y: 0, spinSign: 1, sectors: 1 / (2 * math.Pi), frequency: 5, decay: 30}
	knots := []knot{k}

	// Along the positive x axis atan2 = 0, so the total is 0.
	if got := spinValue(knots, 10, 0); got != 0 {
		t.Errorf("axis spin = %d, want 0", got)
	}

	// At the knot itself the angle convention forces a = 0.
	if got := spinValue(knots, 0, 0); got != 0 {
		t.Errorf("coincident spin = %d, want 0", got)
	}
}

func TestWaveValue_BoundedPerKnot(t *testing.T) {
	// A single-knot wave total is sin(...) in [-1,1] scaled by 100, so the
	// truncated result lives in {0..100} or wraps from {156..255}.
	knots := []knot{{x: 0.5, y: 0.5, waveSign: 1}}
	for py := 0.0; py < 10; py++ {
		for px := 0.0; px < 10; px++ {
			got := waveValue(knots, px, py)
			if got > 100 && got < 156 {
				t.Fatalf("(%v,%v): wave value %d outside +/-100 wrap range", px, py, got)
			}
		}
	}
}
