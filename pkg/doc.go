// Package pkg provides the core libraries for fluere procedural imagery.
//
// # Overview
//
// Fluere generates animated imagery from scalar fields shaped by randomly
// placed knots. The pkg directory is organized into a few main areas:
//
//  1. [fluere] - Field evaluation (knot placement, the five field styles)
//  2. [palette] - Palette files and cyclic color table construction
//  3. [render] - Frame composition, animation, and PNG/GIF encoding
//  4. [cache] - Render caches for the HTTP preview server
//  5. [rng] - Seedable randomness source shared by the generators
//
// # Architecture
//
// The typical data flow:
//
//	seed
//	     ↓
//	[fluere] package (place knots, evaluate fields per pixel)
//	     ↓
//	[palette] package (build the cyclic color table)
//	     ↓
//	[render] package (compose frames, rotate the palette, encode)
//	     ↓
//	PNG/GIF output
//
// # Quick Start
//
// Generate a drawing and write it as a PNG:
//
//	import (
//	    "os"
//
//	    "github.com/fluere/fluere/pkg/fluere"
//	    "github.com/fluere/fluere/pkg/palette"
//	    "github.com/fluere/fluere/pkg/render"
//	    "github.com/fluere/fluere/pkg/rng"
//	)
//
//	// 1. Evaluate the fields
//	d, _ := fluere.New(fluere.Config{
//	    Width: 800, Height: 600, NumKnots: 4,
//	    StyleA: fluere.StyleFlow, StyleB: fluere.StyleSpin,
//	}, rng.NewPCG(42))
//
//	// 2. Build a color table
//	pal, _ := palette.Default().Named("Cold")
//	table := palette.BuildTable(pal, false, false, rng.NewPCG(43))
//
//	// 3. Encode
//	frame, _ := render.NewFrame(800, 600, d.Pixels())
//	out, _ := os.Create("drawing.png")
//	defer out.Close()
//	_ = render.WritePNG(out, frame, table, 0)
package pkg
