package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/fluere/fluere/internal/httpapi"
	"github.com/fluere/fluere/pkg/palette"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr        string // listen address
	cacheKind   string // cache backend: "file", "redis", or "off"
	redisURL    string // redis connection URL for the redis backend
	ttl         time.Duration
	paletteFile string // optional palette file overriding the built-ins
}

// serveCommand creates the serve command for running the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		cacheKind: "file",
		redisURL:  "redis://localhost:6379/0",
		ttl:       time.Hour,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve drawings over HTTP",
		Long: `Serve runs an HTTP server that generates drawings on demand.

Endpoints:
  GET /drawing.png   render a single frame
  GET /drawing.gif   render a color-cycling animation
  GET /palettes      list available palettes as JSON

Query parameters on the drawing endpoints: seed, width, height, knots,
style, palette, randomize, stripes, offset, frames, delay.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), c, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.cacheKind, "cache", opts.cacheKind, "cache backend: file (default), redis, off")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", opts.redisURL, "redis URL for --cache=redis")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", opts.ttl, "cache entry lifetime")
	cmd.Flags().StringVar(&opts.paletteFile, "palette-file", "", "load palettes from a file instead of the built-ins")

	return cmd
}

// runServe starts the HTTP server and blocks until the context is canceled.
func runServe(ctx context.Context, c *CLI, opts *serveOpts) error {
	list := palette.Default()
	if opts.paletteFile != "" {
		var err error
		if list, err = palette.ParseFile(opts.paletteFile); err != nil {
			return err
		}
	}

	store, err := c.newCache(ctx, opts.cacheKind, opts.redisURL)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           httpapi.New(c.Logger, list, store, opts.ttl).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr, "cache", opts.cacheKind)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
