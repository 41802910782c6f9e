// Package render turns index images and color tables into visible output.
//
// # Overview
//
// A drawing is a grid of byte values with no inherent color. This package
// provides the final stage that makes it visible:
//
//   - [Compose] and [Paletted] look each byte up in a rotated 256-entry
//     window of the color table, producing RGBA or paletted images
//   - [Animator] sequences palette rotation and brightness fades for
//     animation playback
//   - [WritePNG] and [WriteGIF] encode single frames and color-cycling
//     animations
//
// # Color Cycling
//
// Animation never re-evaluates the fields. The color table holds two
// identical cycles back to back, so rotating the 256-entry window by one
// step per frame shifts every color in the drawing at once:
//
//	frame, _ := render.NewFrame(w, h, d.Pixels())
//	a := render.NewAnimator(0, 256)
//	for {
//	    img := render.Paletted(frame, table, a.Offset(), a.Fade())
//	    // display img
//	    if !a.Step() {
//	        break
//	    }
//	}
package render
