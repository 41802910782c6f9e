// Package cache stores rendered drawings for the HTTP preview server.
//
// Generating a large drawing is CPU-bound (width*height*numKnots field
// evaluations), so the server caches encoded output keyed by the full set of
// generation parameters. Because generation is deterministic given a seed,
// a cache hit is byte-identical to regeneration.
//
// Three backends are provided: file (default for local use), redis (shared
// across instances), and null (caching disabled).
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores encoded render output by key.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Key builds a cache key from a prefix and the parameters that determine the
// output. Parameters are serialized and hashed so arbitrary values are safe
// to include.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash computes the SHA-256 hex digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
