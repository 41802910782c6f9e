// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about drawing generation and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDrawingHooks(&myDrawingHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Drawing().OnDrawStart(ctx, width, height, numKnots)
//	// ... generate ...
//	observability.Drawing().OnDrawComplete(ctx, width, height, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// DrawingHooks receives events from drawing generation.
type DrawingHooks interface {
	// OnDrawStart records the beginning of a field evaluation pass.
	OnDrawStart(ctx context.Context, width, height, numKnots int)

	// OnDrawComplete records the end of a field evaluation pass.
	OnDrawComplete(ctx context.Context, width, height int, duration time.Duration, err error)

	// OnEncodeStart records the beginning of image encoding.
	OnEncodeStart(ctx context.Context, format string, frames int)

	// OnEncodeComplete records the end of image encoding.
	OnEncodeComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, backend string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, backend string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, backend string, size int)
}

// NoopDrawingHooks is a no-op implementation of DrawingHooks.
type NoopDrawingHooks struct{}

func (NoopDrawingHooks) OnDrawStart(context.Context, int, int, int)                       {}
func (NoopDrawingHooks) OnDrawComplete(context.Context, int, int, time.Duration, error)   {}
func (NoopDrawingHooks) OnEncodeStart(context.Context, string, int)                       {}
func (NoopDrawingHooks) OnEncodeComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	drawingHooks DrawingHooks = NoopDrawingHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetDrawingHooks registers custom drawing hooks.
// This should be called once at application startup before any generation.
func SetDrawingHooks(h DrawingHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		drawingHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Drawing returns the registered drawing hooks.
func Drawing() DrawingHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return drawingHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	drawingHooks = NoopDrawingHooks{}
	cacheHooks = NoopCacheHooks{}
}
