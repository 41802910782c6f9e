package cli

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRunDraw_PNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	opts := &drawOpts{
		output:      out,
		format:      formatPNG,
		seed:        11,
		width:       24,
		height:      16,
		numKnots:    2,
		styles:      "flow,spin",
		paletteName: "Cold",
	}

	if err := runDraw(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 16 {
		t.Errorf("size = %dx%d, want 24x16", b.Dx(), b.Dy())
	}
}

func TestRunDraw_UnknownPalette(t *testing.T) {
	opts := &drawOpts{
		output:      filepath.Join(t.TempDir(), "out.png"),
		format:      formatPNG,
		seed:        1,
		width:       8,
		height:      8,
		numKnots:    1,
		styles:      "flow",
		paletteName: "nonesuch",
	}
	if err := runDraw(context.Background(), opts); err == nil {
		t.Fatal("expected error for unknown palette")
	}
}

func TestRunDraw_GIF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.gif")
	opts := &drawOpts{
		output:      out,
		format:      formatGIF,
		seed:        5,
		width:       12,
		height:      8,
		numKnots:    1,
		styles:      "wave",
		paletteName: "Hot",
		frames:      3,
		delay:       4,
	}

	if err := runDraw(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{"draw": false, "palettes": false, "preview": false, "serve": false, "completion": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %s", name)
		}
	}
}
