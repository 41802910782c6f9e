package palette

import (
	"strings"
	"testing"

	"github.com/fluere/fluere/pkg/errors"
)

func TestParse_WellFormed(t *testing.T) {
	input := `Number_of_palettes 3
Cold        4 0x33ccff 0x0099ff 0x0033cc 0x0033ff
Grayscale   6 0xffffff 0x333333 0xcccccc 0x999999 0x666666 0x000000
Hot         5 0xffff33 0xffcc00 0xff6600 0xbb0033 0xff3300
`
	l, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}

	cold, err := l.At(0)
	if err != nil {
		t.Fatal(err)
	}
	if cold.Name != "Cold" {
		t.Errorf("palette 0 name = %q, want Cold", cold.Name)
	}
	if len(cold.Colors) != 4 {
		t.Fatalf("Cold has %d colors, want 4", len(cold.Colors))
	}
	// 0x33ccff unpacks red-high.
	if want := (Color{R: 0x33, G: 0xcc, B: 0xff}); cold.Colors[0] != want {
		t.Errorf("Cold[0] = %+v, want %+v", cold.Colors[0], want)
	}

	hot, err := l.Named("hot")
	if err != nil {
		t.Fatal(err)
	}
	if want := (Color{R: 0xbb, G: 0x00, B: 0x33}); hot.Colors[3] != want {
		t.Errorf("Hot[3] = %+v, want %+v", hot.Colors[3], want)
	}
}

func TestParse_PrefixOptional(t *testing.T) {
	// Hex values scan with or without the radix prefix.
	input := "Palettes 1\nTest 2 ff0000 0X00FF00\n"
	l, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	p, _ := l.At(0)
	if p.Colors[0] != (Color{R: 255}) || p.Colors[1] != (Color{G: 255}) {
		t.Errorf("colors = %+v", p.Colors)
	}
}

func TestParse_Errors(t *testing.T) {
	longName := strings.Repeat("x", MaxNameLength+1)

	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"empty input", "", errors.ErrCodeParseTruncated},
		{"missing count", "Number_of_palettes", errors.ErrCodeParseTruncated},
		{"count not a number", "Number_of_palettes many", errors.ErrCodeParseCount},
		{"negative count", "Number_of_palettes -1", errors.ErrCodeParseCount},
		{"truncated palette", "Number_of_palettes 1\nTest 3 0xff0000\n", errors.ErrCodeParseTruncated},
		{"missing palette", "Number_of_palettes 2\nTest 1 0xff0000\n", errors.ErrCodeParseTruncated},
		{"bad hex token", "Number_of_palettes 1\nTest 1 red\n", errors.ErrCodeParseColor},
		{"color too wide", "Number_of_palettes 1\nTest 1 0x1ffffff\n", errors.ErrCodeParseColor},
		{"zero colors", "Number_of_palettes 1\nTest 0\n", errors.ErrCodeParseCount},
		{"name too long", "Number_of_palettes 1\n" + longName + " 1 0xff0000\n", errors.ErrCodeParseName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	l := Default()
	if l.Len() != 3 {
		t.Fatalf("default list has %d palettes, want 3", l.Len())
	}
	for _, name := range []string{"Cold", "Grayscale", "Hot"} {
		if _, err := l.Named(name); err != nil {
			t.Errorf("default list missing %s: %v", name, err)
		}
	}
}

func TestList_Lookup(t *testing.T) {
	l := Default()

	if _, err := l.At(-1); !errors.Is(err, errors.ErrCodePaletteNotFound) {
		t.Error("At(-1) should fail with PALETTE_NOT_FOUND")
	}
	if _, err := l.At(3); !errors.Is(err, errors.ErrCodePaletteNotFound) {
		t.Error("At(3) should fail with PALETTE_NOT_FOUND")
	}
	if _, err := l.Named("nope"); !errors.Is(err, errors.ErrCodePaletteNotFound) {
		t.Error("Named(nope) should fail with PALETTE_NOT_FOUND")
	}

	names := l.Names()
	if len(names) != 3 || names[0] != "Cold" {
		t.Errorf("Names() = %v", names)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.txt")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %q, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
