package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fluere/fluere/pkg/errors"
	"github.com/fluere/fluere/pkg/fluere"
	"github.com/fluere/fluere/pkg/palette"
	"github.com/fluere/fluere/pkg/render"
	"github.com/fluere/fluere/pkg/rng"
)

const (
	formatPNG = "png"
	formatGIF = "gif"
)

// drawOpts holds the command-line flags for the draw command.
type drawOpts struct {
	output      string // output file path; derived from format when empty
	format      string // "png" or "gif"
	seed        uint64 // generation seed; 0 picks a time-based seed
	width       int    // image width in pixels
	height      int    // image height in pixels
	numKnots    int    // number of knots shaping the fields
	styles      string // field style pair, e.g. "flow,spin"
	paletteName string // palette to build the color table from
	paletteFile string // optional palette file overriding the built-ins
	randomize   bool   // randomize color stop placement
	stripes     bool   // insert black stripes between color bands
	offset      int    // palette rotation for PNG output
	frames      int    // animation frames for GIF output
	fade        int    // fade-in/out frames for GIF output
	delay       int    // per-frame delay in 100ths of a second
}

// drawCommand creates the draw command for generating image files.
func (c *CLI) drawCommand() *cobra.Command {
	opts := drawOpts{
		format:      formatPNG,
		width:       c.Config.Width,
		height:      c.Config.Height,
		numKnots:    c.Config.NumKnots,
		styles:      c.Config.StyleA + "," + c.Config.StyleB,
		paletteName: c.Config.Palette,
		randomize:   c.Config.Randomize,
		stripes:     c.Config.Stripes,
		frames:      64,
		delay:       4,
	}

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Generate a drawing and write it as PNG or animated GIF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatPNG && opts.format != formatGIF {
				return fmt.Errorf("invalid format: %s (must be 'png' or 'gif')", opts.format)
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return runDraw(ctx, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default fluere_<seed>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png (default), gif")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "generation seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "image width")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "image height")
	cmd.Flags().IntVar(&opts.numKnots, "knots", opts.numKnots, "number of knots")
	cmd.Flags().StringVar(&opts.styles, "style", opts.styles, "field style pair: flow, spin, wave, leaf, rays (comma-separated)")
	cmd.Flags().StringVar(&opts.paletteName, "palette", opts.paletteName, "palette name")
	cmd.Flags().StringVar(&opts.paletteFile, "palette-file", "", "load palettes from a file instead of the built-ins")
	cmd.Flags().BoolVar(&opts.randomize, "randomize", opts.randomize, "randomize color stop placement")
	cmd.Flags().BoolVar(&opts.stripes, "stripes", opts.stripes, "insert black stripes between color bands")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "palette rotation offset (png only)")
	cmd.Flags().IntVar(&opts.frames, "frames", opts.frames, "animation frames (gif only)")
	cmd.Flags().IntVar(&opts.fade, "fade", 0, "fade-in/out frames (gif only)")
	cmd.Flags().IntVar(&opts.delay, "delay", opts.delay, "frame delay in 100ths of a second (gif only)")

	return cmd
}

// runDraw generates the drawing and writes it to the output file.
func runDraw(ctx context.Context, opts *drawOpts) error {
	logger := loggerFromContext(ctx)

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	styleA, styleB, err := parseStylePair(opts.styles)
	if err != nil {
		return err
	}

	pal, err := resolvePalette(opts.paletteFile, opts.paletteName)
	if err != nil {
		return err
	}

	logger.Infof("Drawing %dx%d, %d knots, styles %s/%s, seed %d",
		opts.width, opts.height, opts.numKnots, styleA, styleB, seed)

	p := newProgress(logger)
	d, err := fluere.New(fluere.Config{
		Width:    opts.width,
		Height:   opts.height,
		NumKnots: opts.numKnots,
		StyleA:   styleA,
		StyleB:   styleB,
	}, rng.NewPCG(seed))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Computed %d pixels", opts.width*opts.height))

	table := palette.BuildTable(pal, opts.randomize, opts.stripes, rng.NewPCG(seed+1))

	frame, err := render.NewFrame(opts.width, opts.height, d.Pixels())
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = fmt.Sprintf("fluere_%d.%s", seed, opts.format)
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "creating %s", path)
	}
	defer out.Close()

	p = newProgress(logger)
	switch opts.format {
	case formatGIF:
		err = render.WriteGIF(out, frame, table, render.GIFOptions{
			Frames:     opts.frames,
			FadeFrames: opts.fade,
			Delay:      opts.delay,
		})
		if err == nil {
			p.done(fmt.Sprintf("Encoded %d frames", opts.frames))
		}
	default:
		err = render.WritePNG(out, frame, table, opts.offset)
		if err == nil {
			p.done("Encoded PNG")
		}
	}
	if err != nil {
		return err
	}

	printSuccess("Generated drawing")
	printFile(path)
	return nil
}

// parseStylePair parses the --style flag. A single style applies to both the
// even and odd pixel grids.
func parseStylePair(s string) (fluere.Style, fluere.Style, error) {
	parts := strings.SplitN(s, ",", 2)
	a, err := fluere.ParseStyle(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	b := a
	if len(parts) == 2 {
		if b, err = fluere.ParseStyle(strings.TrimSpace(parts[1])); err != nil {
			return 0, 0, err
		}
	}
	return a, b, nil
}

// resolvePalette loads the named palette from a file when given, falling back
// to the embedded palette list.
func resolvePalette(file, name string) (palette.Palette, error) {
	list := palette.Default()
	if file != "" {
		var err error
		if list, err = palette.ParseFile(filepath.Clean(file)); err != nil {
			return palette.Palette{}, err
		}
	}
	return list.Named(name)
}
