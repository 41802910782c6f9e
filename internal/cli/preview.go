package cli

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/fluere/fluere/pkg/fluere"
	"github.com/fluere/fluere/pkg/palette"
	"github.com/fluere/fluere/pkg/render"
	"github.com/fluere/fluere/pkg/rng"
)

// previewScale oversamples the drawing relative to the terminal cell grid so
// downscaling smooths the fields instead of aliasing them.
const previewScale = 2

// previewCommand creates the preview command for animating a drawing in the
// terminal.
func (c *CLI) previewCommand() *cobra.Command {
	opts := drawOpts{
		numKnots:    c.Config.NumKnots,
		styles:      c.Config.StyleA + "," + c.Config.StyleB,
		paletteName: c.Config.Palette,
		randomize:   c.Config.Randomize,
		stripes:     c.Config.Stripes,
		delay:       8,
	}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Animate a drawing directly in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			m := newPreviewModel(previewParams{
				seed:      seed,
				numKnots:  opts.numKnots,
				styleA:    styleA,
				styleB:    styleB,
				pal:       pal,
				randomize: opts.randomize,
				stripes:   opts.stripes,
				delay:     time.Duration(opts.delay) * 10 * time.Millisecond,
			})
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "generation seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&opts.numKnots, "knots", opts.numKnots, "number of knots")
	cmd.Flags().StringVar(&opts.styles, "style", opts.styles, "field style pair: flow, spin, wave, leaf, rays (comma-separated)")
	cmd.Flags().StringVar(&opts.paletteName, "palette", opts.paletteName, "palette name")
	cmd.Flags().StringVar(&opts.paletteFile, "palette-file", "", "load palettes from a file instead of the built-ins")
	cmd.Flags().BoolVar(&opts.randomize, "randomize", opts.randomize, "randomize color stop placement")
	cmd.Flags().BoolVar(&opts.stripes, "stripes", opts.stripes, "insert black stripes between color bands")
	cmd.Flags().IntVar(&opts.delay, "delay", opts.delay, "frame delay in 100ths of a second")

	return cmd
}

type previewParams struct {
	seed      uint64
	numKnots  int
	styleA    fluere.Style
	styleB    fluere.Style
	pal       palette.Palette
	randomize bool
	stripes   bool
	delay     time.Duration
}

// tickMsg advances the palette rotation.
type tickMsg time.Time

// previewModel is the bubbletea model for the terminal preview. Each terminal
// cell shows two vertically stacked pixels using the upper half block glyph.
type previewModel struct {
	params previewParams
	table  *palette.Table
	frame  render.Frame
	offset int
	paused bool
	cols   int
	rows   int
	err    error
}

func newPreviewModel(p previewParams) previewModel {
	return previewModel{
		params: p,
		table:  palette.BuildTable(p.pal, p.randomize, p.stripes, rng.NewPCG(p.seed+1)),
	}
}

func (m previewModel) Init() tea.Cmd {
	return m.tick()
}

func (m previewModel) tick() tea.Cmd {
	return tea.Tick(m.params.delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "r":
			m.params.seed++
			m.regenerate()
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height - 1 // last line is the status bar
		m.regenerate()
	case tickMsg:
		if !m.paused {
			m.offset = (m.offset + 1) % 256
		}
		return m, m.tick()
	}
	return m, nil
}

// regenerate rebuilds the drawing for the current terminal size.
func (m *previewModel) regenerate() {
	if m.cols <= 0 || m.rows <= 0 {
		return
	}
	width := m.cols * previewScale
	height := m.rows * 2 * previewScale

	d, err := fluere.New(fluere.Config{
		Width:    width,
		Height:   height,
		NumKnots: m.params.numKnots,
		StyleA:   m.params.styleA,
		StyleB:   m.params.styleB,
	}, rng.NewPCG(m.params.seed))
	if err != nil {
		m.err = err
		return
	}
	m.frame, m.err = render.NewFrame(width, height, d.Pixels())
}

func (m previewModel) View() string {
	if m.err != nil {
		return m.err.Error()
	}
	if m.frame.Pix == nil {
		return "measuring terminal..."
	}

	src := render.Compose(m.frame, m.table, m.offset, 1.0)
	small := image.NewRGBA(image.Rect(0, 0, m.cols, m.rows*2))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	var b strings.Builder
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			top := small.RGBAAt(col, 2*row)
			bottom := small.RGBAAt(col, 2*row+1)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", top.R, top.G, top.B))).
				Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bottom.R, bottom.G, bottom.B)))
			b.WriteString(style.Render("▀"))
		}
		b.WriteString("\n")
	}

	status := "space pause"
	if m.paused {
		status = "space resume"
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf(" seed %d | %s/%s | %s | %s | r regenerate | q quit",
		m.params.seed, m.params.styleA, m.params.styleB, m.params.pal.Name, status)))
	return b.String()
}
