package render

import (
	"image/gif"
	"image/png"
	"io"

	"github.com/fluere/fluere/pkg/errors"
	"github.com/fluere/fluere/pkg/palette"
)

// WritePNG encodes a single frame at the given table offset as a PNG, the
// screenshot path of the original screensaver.
func WritePNG(w io.Writer, f Frame, t *palette.Table, offset int) error {
	if err := png.Encode(w, Compose(f, t, offset, 1)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding png")
	}
	return nil
}

// GIFOptions control animated GIF export.
type GIFOptions struct {
	Frames     int // number of color-cycling frames; <= 0 means one full cycle (256)
	FadeFrames int // frames spent fading in and out; 0 disables fading
	Delay      int // per-frame delay in 100ths of a second
}

// WriteGIF encodes a color-cycling animation. Every frame shares the frame's
// index buffer; only the attached 256-color palette changes, which is color
// cycling in its original form.
func WriteGIF(w io.Writer, f Frame, t *palette.Table, opts GIFOptions) error {
	frames := opts.Frames
	if frames <= 0 {
		frames = 256
	}
	delay := opts.Delay
	if delay <= 0 {
		delay = 4
	}

	anim := gif.GIF{LoopCount: 0}
	a := NewAnimator(opts.FadeFrames, frames)
	for {
		anim.Image = append(anim.Image, Paletted(f, t, a.Offset(), a.Fade()))
		anim.Delay = append(anim.Delay, delay)
		if !a.Step() {
			break
		}
	}

	if err := gif.EncodeAll(w, &anim); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding gif")
	}
	return nil
}
