package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/fluere/fluere/pkg/errors"
)

// Config holds user defaults for drawing generation, loaded from
// ~/.config/fluere/config.toml. Command-line flags override these values.
type Config struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	NumKnots  int    `toml:"knots"`
	StyleA    string `toml:"style_a"`
	StyleB    string `toml:"style_b"`
	Palette   string `toml:"palette"`
	Randomize bool   `toml:"randomize"`
	Stripes   bool   `toml:"stripes"`
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Width:    defaultWidth,
		Height:   defaultHeight,
		NumKnots: defaultNumKnots,
		StyleA:   "flow",
		StyleB:   "spin",
		Palette:  defaultPalette,
	}
}

// LoadConfig reads a TOML config file, filling unset fields with defaults.
// A missing file is not an error; a malformed file is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading config %s", path)
	}

	// Decode into a fresh struct so we can tell which fields were set.
	var file Config
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing config %s", path)
	}

	for _, key := range meta.Keys() {
		switch key.String() {
		case "width":
			cfg.Width = file.Width
		case "height":
			cfg.Height = file.Height
		case "knots":
			cfg.NumKnots = file.NumKnots
		case "style_a":
			cfg.StyleA = file.StyleA
		case "style_b":
			cfg.StyleB = file.StyleB
		case "palette":
			cfg.Palette = file.Palette
		case "randomize":
			cfg.Randomize = file.Randomize
		case "stripes":
			cfg.Stripes = file.Stripes
		}
	}
	return cfg, nil
}
