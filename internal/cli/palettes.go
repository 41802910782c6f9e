package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/fluere/fluere/pkg/palette"
	"github.com/fluere/fluere/pkg/rng"
)

// palettesCommand creates the palettes command for listing available palettes.
func (c *CLI) palettesCommand() *cobra.Command {
	var paletteFile string

	cmd := &cobra.Command{
		Use:   "palettes [name]",
		Short: "List color palettes with terminal swatches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := palette.Default()
			if paletteFile != "" {
				var err error
				if list, err = palette.ParseFile(paletteFile); err != nil {
					return err
				}
			}
			if len(args) == 1 {
				return printPaletteDetail(list, args[0])
			}
			printPaletteList(list)
			return nil
		},
	}

	cmd.Flags().StringVar(&paletteFile, "palette-file", "", "load palettes from a file instead of the built-ins")
	return cmd
}

// printPaletteList prints every palette as a name and a row of swatches.
func printPaletteList(list *palette.List) {
	fmt.Println(StyleTitle.Render("Palettes"))
	printNewline()

	for i := 0; i < list.Len(); i++ {
		p, err := list.At(i)
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s %s\n", palette.MaxNameLength, p.Name, swatchRow(p.Colors))
	}

	printNewline()
	printNextStep("Inspect one", "fluere palettes <name>")
}

// printPaletteDetail prints each color of one palette plus a strip of the
// color table it produces.
func printPaletteDetail(list *palette.List, name string) error {
	p, err := list.Named(name)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(p.Name))
	printNewline()

	for i, col := range p.Colors {
		hex := fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B)
		label := swatchLabel(col, " "+hex+" ")
		fmt.Printf("  %s %s\n", label, StyleDim.Render(fmt.Sprintf("stop %d", i)))
	}

	table := palette.BuildTable(p, false, false, rng.NewPCG(0))
	printNewline()
	printDetail("color table")
	fmt.Println("  " + tableStrip(table, 64))
	return nil
}

// swatchRow renders one block per palette color.
func swatchRow(colors []palette.Color) string {
	var b strings.Builder
	for _, col := range colors {
		b.WriteString(swatchStyle(col).Render("  "))
	}
	return b.String()
}

// swatchLabel renders text on a background of the given color, choosing a
// black or white foreground for contrast.
func swatchLabel(col palette.Color, text string) string {
	fg := lipgloss.Color("0")
	c := colorful.Color{R: float64(col.R) / 255, G: float64(col.G) / 255, B: float64(col.B) / 255}
	if _, _, l := c.Hcl(); l < 0.5 {
		fg = lipgloss.Color("15")
	}
	return swatchStyle(col).Foreground(fg).Render(text)
}

func swatchStyle(col palette.Color) lipgloss.Style {
	bg := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B))
	return lipgloss.NewStyle().Background(bg)
}

// tableStrip samples n evenly spaced entries from the first cycle of the
// color table.
func tableStrip(t *palette.Table, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		col := t.At(i * 256 / n)
		b.WriteString(swatchStyle(col).Render(" "))
	}
	return b.String()
}
