package fluere

import (
	"testing"

	"github.com/fluere/fluere/pkg/errors"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"flow", StyleFlow, false},
		{"spin", StyleSpin, false},
		{"wave", StyleWave, false},
		{"leaf", StyleLeaf, false},
		{"rays", StyleRays, false},
		{"LEAF", StyleLeaf, false},
		{" spin ", StyleSpin, false},
		{"swirl", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStyle(%q) expected error", tt.in)
				}
				if !errors.Is(err, errors.ErrCodeInvalidStyle) {
					t.Errorf("error code = %q, want INVALID_STYLE", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStyle(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStyleString_RoundTrip(t *testing.T) {
	for _, s := range Styles() {
		got, err := ParseStyle(s.String())
		if err != nil {
			t.Fatalf("ParseStyle(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("round trip %v -> %q -> %v", s, s.String(), got)
		}
	}
	if Style(99).String() != "unknown" {
		t.Errorf("Style(99).String() = %q, want unknown", Style(99).String())
	}
}
