// Package render turns an index image and a color table into viewable
// frames. It contains no generative logic: a drawing's pixels are computed
// once, and every frame here is just a palette lookup with a rotating offset
// (color cycling) and an optional fade toward black.
package render

import (
	"image"
	"image/color"

	"github.com/fluere/fluere/pkg/errors"
	"github.com/fluere/fluere/pkg/palette"
)

// Frame pairs an index image with its dimensions.
type Frame struct {
	Width  int
	Height int
	Pix    []byte // row-major palette indices, len Width*Height
}

// NewFrame validates and wraps an index image buffer.
func NewFrame(width, height int, pix []byte) (Frame, error) {
	if width <= 0 || height <= 0 {
		return Frame{}, errors.New(errors.ErrCodeInvalidConfig, "frame size %dx%d", width, height)
	}
	if len(pix) != width*height {
		return Frame{}, errors.New(errors.ErrCodeInvalidBuffer,
			"index buffer length %d, want %d", len(pix), width*height)
	}
	return Frame{Width: width, Height: height, Pix: pix}, nil
}

// Compose renders the frame as an RGBA image, reading the color table at the
// given offset. fade scales every channel toward black: 1 is full brightness,
// 0 is black (the fade-in/fade-out animation states).
func Compose(f Frame, t *palette.Table, offset int, fade float64) *image.RGBA {
	if fade < 0 {
		fade = 0
	}
	if fade > 1 {
		fade = 1
	}

	window := t.Window(offset)
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, idx := range f.Pix {
		c := window[idx]
		o := i * 4
		img.Pix[o+0] = uint8(float64(c.R) * fade)
		img.Pix[o+1] = uint8(float64(c.G) * fade)
		img.Pix[o+2] = uint8(float64(c.B) * fade)
		img.Pix[o+3] = 0xff
	}
	return img
}

// Paletted renders the frame as a paletted image whose 256-color palette is
// the table window at offset. The pixel data is shared with the frame: color
// cycling produces frames that differ only in their palettes.
func Paletted(f Frame, t *palette.Table, offset int, fade float64) *image.Paletted {
	if fade < 0 {
		fade = 0
	}
	if fade > 1 {
		fade = 1
	}

	window := t.Window(offset)
	pal := make(color.Palette, 256)
	for i, c := range window {
		pal[i] = color.RGBA{
			R: uint8(float64(c.R) * fade),
			G: uint8(float64(c.G) * fade),
			B: uint8(float64(c.B) * fade),
			A: 0xff,
		}
	}

	return &image.Paletted{
		Pix:     f.Pix,
		Stride:  f.Width,
		Rect:    image.Rect(0, 0, f.Width, f.Height),
		Palette: pal,
	}
}
