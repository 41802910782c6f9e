package palette

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fluere/fluere/pkg/errors"
)

// Parse reads a palette file. The happy path accepts exactly the files the
// historical scanner accepted: a label token, the palette count, then per
// palette a name token, a color count, and that many 24-bit hexadecimal RGB
// values (red in the high byte), all whitespace-delimited. Where the old
// scanner left malformed input undefined, Parse returns a structured error.
func Parse(r io.Reader) (*List, error) {
	tok := newTokenizer(r)

	// Leading label token ("Number_of_palettes" by convention).
	if _, err := tok.next("palette count label"); err != nil {
		return nil, err
	}

	count, err := tok.nextInt("palette count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, errors.New(errors.ErrCodeParseCount, "palette count %d is negative", count)
	}

	palettes := make([]Palette, 0, count)
	for i := 0; i < count; i++ {
		p, err := parsePalette(tok)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}

	return &List{palettes: palettes}, nil
}

// ParseFile reads a palette file from disk. See Parse.
func ParseFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open palette file %s", path)
	}
	defer f.Close()
	return Parse(f)
}

func parsePalette(tok *tokenizer) (Palette, error) {
	name, err := tok.next("palette name")
	if err != nil {
		return Palette{}, err
	}
	if len(name) > MaxNameLength {
		return Palette{}, errors.New(errors.ErrCodeParseName,
			"palette name %q exceeds %d bytes", name, MaxNameLength)
	}

	n, err := tok.nextInt("color count for palette " + name)
	if err != nil {
		return Palette{}, err
	}
	if n <= 0 {
		return Palette{}, errors.New(errors.ErrCodeParseCount,
			"palette %q: color count must be positive, got %d", name, n)
	}

	colors := make([]Color, n)
	for i := range colors {
		c, err := tok.nextColor(name)
		if err != nil {
			return Palette{}, err
		}
		colors[i] = c
	}

	return Palette{Name: name, Colors: colors}, nil
}

// tokenizer yields whitespace-delimited tokens, the unit the historical
// format is defined in.
type tokenizer struct {
	s *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &tokenizer{s: s}
}

func (t *tokenizer) next(what string) (string, error) {
	if !t.s.Scan() {
		if err := t.s.Err(); err != nil {
			return "", errors.Wrap(errors.ErrCodeParseTruncated, err, "reading %s", what)
		}
		return "", errors.New(errors.ErrCodeParseTruncated, "file ended before %s", what)
	}
	return t.s.Text(), nil
}

func (t *tokenizer) nextInt(what string) (int, error) {
	raw, err := t.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeParseCount, "%s: %q is not an integer", what, raw)
	}
	return n, nil
}

// nextColor parses a packed 24-bit hex RGB value. An optional 0x/0X prefix is
// accepted, matching formatted hex scanning.
func (t *tokenizer) nextColor(palette string) (Color, error) {
	raw, err := t.next("color in palette " + palette)
	if err != nil {
		return Color{}, err
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	v, perr := strconv.ParseUint(hex, 16, 32)
	if perr != nil || v > 0xffffff {
		return Color{}, errors.New(errors.ErrCodeParseColor,
			"palette %q: %q is not a 24-bit hex color", palette, raw)
	}

	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
