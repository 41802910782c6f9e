// Package palette reads palette files and builds the cyclic color tables that
// give fluere drawings their colors.
//
// A palette file is a whitespace-delimited text format, kept byte-for-byte
// compatible with existing files:
//
//	Number_of_palettes 3
//	Cold        4 0x33ccff 0x0099ff 0x0033cc 0x0033ff
//	Grayscale   6 0xffffff 0x333333 0xcccccc 0x999999 0x666666 0x000000
//	Hot         5 0xffff33 0xffcc00 0xff6600 0xbb0033 0xff3300
//
// The first token is a label and is skipped; palette names are single tokens
// of at most 20 bytes. Malformed files fail with a structured parse error
// instead of the undefined behavior of unchecked scanning.
//
// A color table is 512 RGB entries: 256 colors followed by an identical copy,
// so an animation layer can read 256 contiguous entries starting at any
// offset in [0,256) without wrapping. The index image never changes; color
// motion comes entirely from advancing that offset.
package palette

import (
	_ "embed"
	"strings"

	"github.com/fluere/fluere/pkg/errors"
)

// MaxNameLength bounds palette name tokens, matching the fixed-size name
// field of the historical file format.
const MaxNameLength = 20

// defaultPalettes is the built-in palette set used when no file is given.
//
//go:embed palettes.txt
var defaultPalettes string

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// Palette is a named, ordered, non-empty list of colors.
type Palette struct {
	Name   string
	Colors []Color
}

// List is an ordered collection of palettes loaded from one file.
// It is immutable after load.
type List struct {
	palettes []Palette
}

// Default returns the built-in palette list.
func Default() *List {
	l, err := Parse(strings.NewReader(defaultPalettes))
	if err != nil {
		// The embedded file is validated by tests; a parse failure here is
		// a build defect.
		panic(err)
	}
	return l
}

// Len returns the number of palettes in the list.
func (l *List) Len() int { return len(l.palettes) }

// At returns the palette at index i.
func (l *List) At(i int) (Palette, error) {
	if i < 0 || i >= len(l.palettes) {
		return Palette{}, errors.New(errors.ErrCodePaletteNotFound,
			"palette index %d out of range [0,%d)", i, len(l.palettes))
	}
	return l.palettes[i], nil
}

// Named returns the palette with the given name (case-insensitive).
func (l *List) Named(name string) (Palette, error) {
	for _, p := range l.palettes {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Palette{}, errors.New(errors.ErrCodePaletteNotFound, "no palette named %q", name)
}

// Names returns the palette names in file order.
func (l *List) Names() []string {
	names := make([]string, len(l.palettes))
	for i, p := range l.palettes {
		names[i] = p.Name
	}
	return names
}
