// Package cli implements the fluere command-line interface.
//
// This package provides commands for generating drawings as PNG images or
// animated GIFs, listing and inspecting color palettes, previewing drawings
// in the terminal, and serving drawings over HTTP. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - draw: Generate a drawing and write it as PNG or animated GIF
//   - palettes: List the available color palettes with terminal swatches
//   - preview: Animate a drawing directly in the terminal
//   - serve: Run the HTTP preview server
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fluere/fluere/pkg/buildinfo"
	"github.com/fluere/fluere/pkg/cache"
)

const (
	// appName is the application name used for directories and display.
	appName = "fluere"

	defaultWidth    = 800
	defaultHeight   = 600
	defaultNumKnots = 4
	defaultPalette  = "Cold"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the configuration
// loaded from the config file (or defaults when no file exists).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
	cfg, err := LoadConfig(configPath())
	if err != nil {
		// A broken config file must not brick the CLI; fall back to
		// defaults and surface the problem.
		c.Logger.Warn("ignoring config file", "err", err)
		cfg = DefaultConfig()
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "fluere",
		Short:        "Fluere generates flowing procedural imagery",
		Long:         `Fluere generates animated procedural imagery from scalar fields shaped by randomly placed knots, rendered through cycling color palettes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.drawCommand())
	root.AddCommand(c.palettesCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache builds the cache backend selected by the serve command.
func (c *CLI) newCache(ctx context.Context, backend, redisURL string) (cache.Cache, error) {
	switch backend {
	case "off":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, redisURL)
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/fluere/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the config file location using XDG standard
// (~/.config/fluere/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
