// Package httpapi serves drawings over HTTP for quick previews.
//
// The server exposes the generator at its natural boundary: it asks the core
// for an index image and a color table, encodes a frame (or a color-cycling
// animation), and caches the encoded bytes keyed by the generation
// parameters. It contains no generative logic of its own.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/fluere/fluere/pkg/cache"
	"github.com/fluere/fluere/pkg/errors"
	"github.com/fluere/fluere/pkg/fluere"
	"github.com/fluere/fluere/pkg/observability"
	"github.com/fluere/fluere/pkg/palette"
	"github.com/fluere/fluere/pkg/render"
	"github.com/fluere/fluere/pkg/rng"
)

// Limits on requested drawing sizes; field evaluation is
// width*height*numKnots work and this is a preview endpoint.
const (
	maxDimension = 4096
	maxKnots     = 64
	maxFrames    = 512
)

// Server renders drawings on demand.
type Server struct {
	logger   *log.Logger
	palettes *palette.List
	cache    cache.Cache
	cacheTTL time.Duration
}

// New creates a server. A nil cache disables caching.
func New(logger *log.Logger, palettes *palette.List, c cache.Cache, ttl time.Duration) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Server{logger: logger, palettes: palettes, cache: c, cacheTTL: ttl}
}

// Routes builds the HTTP routing table.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/drawing.png", s.handlePNG)
	r.Get("/drawing.gif", s.handleGIF)
	r.Get("/palettes", s.handlePalettes)
	return r
}

// drawingParams is the full parameter set for one generated response. It is
// also the cache key: generation is deterministic given these values.
type drawingParams struct {
	Seed      uint64
	Width     int
	Height    int
	NumKnots  int
	StyleA    fluere.Style
	StyleB    fluere.Style
	Palette   string
	Randomize bool
	Stripes   bool
	Offset    int
	Frames    int
	Delay     int
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	s.serveDrawing(w, r, "png")
}

func (s *Server) handleGIF(w http.ResponseWriter, r *http.Request) {
	s.serveDrawing(w, r, "gif")
}

func (s *Server) serveDrawing(w http.ResponseWriter, r *http.Request, format string) {
	id := uuid.NewString()
	w.Header().Set("X-Fluere-Drawing", id)

	p, err := parseParams(r)
	if err != nil {
		s.logger.Warn("bad drawing request", "id", id, "err", err)
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}

	key := cache.Key(format, p)
	if data, ok, cerr := s.cache.Get(r.Context(), key); cerr == nil && ok {
		observability.Cache().OnCacheHit(r.Context(), format)
		s.logger.Debug("cache hit", "id", id, "key", key)
		w.Header().Set("X-Cache", "HIT")
		w.Header().Set("Content-Type", "image/"+format)
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), format)

	data, err := s.generate(r.Context(), p, format)
	if err != nil {
		status := http.StatusInternalServerError
		switch errors.GetCode(err) {
		case errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidStyle, errors.ErrCodePaletteNotFound:
			status = http.StatusBadRequest
		}
		s.logger.Error("drawing failed", "id", id, "err", err)
		http.Error(w, errors.UserMessage(err), status)
		return
	}

	if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
		// A broken cache only costs regeneration.
		s.logger.Warn("cache store failed", "id", id, "err", err)
	} else {
		observability.Cache().OnCacheSet(r.Context(), format, len(data))
	}

	s.logger.Info("drawing served", "id", id, "format", format,
		"size", len(data), "seed", p.Seed, "styles", p.StyleA.String()+"/"+p.StyleB.String())
	w.Header().Set("X-Cache", "MISS")
	w.Header().Set("Content-Type", "image/"+format)
	_, _ = w.Write(data)
}

// generate produces the encoded response for the given parameters.
func (s *Server) generate(ctx context.Context, p drawingParams, format string) ([]byte, error) {
	observability.Drawing().OnDrawStart(ctx, p.Width, p.Height, p.NumKnots)
	start := time.Now()
	d, err := fluere.New(fluere.Config{
		Width:    p.Width,
		Height:   p.Height,
		NumKnots: p.NumKnots,
		StyleA:   p.StyleA,
		StyleB:   p.StyleB,
	}, rng.NewPCG(p.Seed))
	observability.Drawing().OnDrawComplete(ctx, p.Width, p.Height, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	pal, err := s.palettes.Named(p.Palette)
	if err != nil {
		return nil, err
	}
	// The table draws from its own stream so image and colors are
	// independently reproducible.
	table := palette.BuildTable(pal, p.Randomize, p.Stripes, rng.NewPCG(p.Seed+1))

	frame, err := render.NewFrame(p.Width, p.Height, d.Pixels())
	if err != nil {
		return nil, err
	}

	frames := 1
	if format == "gif" {
		frames = p.Frames
	}
	observability.Drawing().OnEncodeStart(ctx, format, frames)
	start = time.Now()

	var buf bytes.Buffer
	switch format {
	case "gif":
		err = render.WriteGIF(&buf, frame, table, render.GIFOptions{Frames: p.Frames, Delay: p.Delay})
	default:
		err = render.WritePNG(&buf, frame, table, p.Offset)
	}
	observability.Drawing().OnEncodeComplete(ctx, format, buf.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Server) handlePalettes(w http.ResponseWriter, r *http.Request) {
	type paletteInfo struct {
		Name   string   `json:"name"`
		Colors []string `json:"colors"`
	}

	infos := make([]paletteInfo, 0, s.palettes.Len())
	for i := 0; i < s.palettes.Len(); i++ {
		p, err := s.palettes.At(i)
		if err != nil {
			http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
			return
		}
		info := paletteInfo{Name: p.Name}
		for _, c := range p.Colors {
			info.Colors = append(info.Colors, colorHex(c))
		}
		infos = append(infos, info)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(infos)
}

func colorHex(c palette.Color) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0xf]
	}
	return string(b)
}

// parseParams reads query parameters, applying preview-friendly defaults.
func parseParams(r *http.Request) (drawingParams, error) {
	q := r.URL.Query()
	p := drawingParams{
		Seed:     uint64(time.Now().UnixNano()),
		Width:    800,
		Height:   600,
		NumKnots: 4,
		StyleA:   fluere.StyleFlow,
		StyleB:   fluere.StyleSpin,
		Palette:  "Cold",
		Frames:   64,
		Delay:    4,
	}

	var err error
	if v := q.Get("seed"); v != "" {
		p.Seed, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return p, errors.New(errors.ErrCodeInvalidConfig, "seed %q is not an unsigned integer", v)
		}
	}
	if p.Width, err = intParam(q.Get("width"), p.Width, 1, maxDimension, "width"); err != nil {
		return p, err
	}
	if p.Height, err = intParam(q.Get("height"), p.Height, 1, maxDimension, "height"); err != nil {
		return p, err
	}
	if p.NumKnots, err = intParam(q.Get("knots"), p.NumKnots, 1, maxKnots, "knots"); err != nil {
		return p, err
	}
	if p.Offset, err = intParam(q.Get("offset"), 0, 0, 255, "offset"); err != nil {
		return p, err
	}
	if p.Frames, err = intParam(q.Get("frames"), p.Frames, 1, maxFrames, "frames"); err != nil {
		return p, err
	}
	if p.Delay, err = intParam(q.Get("delay"), p.Delay, 1, 100, "delay"); err != nil {
		return p, err
	}

	if v := q.Get("style"); v != "" {
		parts := strings.SplitN(v, ",", 2)
		if p.StyleA, err = fluere.ParseStyle(parts[0]); err != nil {
			return p, err
		}
		p.StyleB = p.StyleA
		if len(parts) == 2 {
			if p.StyleB, err = fluere.ParseStyle(parts[1]); err != nil {
				return p, err
			}
		}
	}

	if v := q.Get("palette"); v != "" {
		p.Palette = v
	}
	p.Randomize = boolParam(q.Get("randomize"))
	p.Stripes = boolParam(q.Get("stripes"))

	return p, nil
}

func intParam(raw string, def, min, max int, name string) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "%s %q is not an integer", name, raw)
	}
	if v < min || v > max {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "%s must be in [%d,%d], got %d", name, min, max, v)
	}
	return v, nil
}

func boolParam(raw string) bool {
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}
