// Package cache stores rendered artifacts between CLI runs.
//
// Rendering a scene graph to SVG goes through Graphviz and is the slowest step
// of "panels build". The same dashboard file produces the same DOT source, so
// the rendered bytes are cached under a key derived from the DOT hash and the
// output format.
//
// Two implementations are provided: [FileCache] for the CLI, storing one JSON
// entry file per key below a directory, and [NullCache], used when caching is
// disabled with --no-cache. Both report hits, misses and writes to the hooks
// registered with [observability.SetCacheHooks].
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found. Expired or
	// unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// namespace returns the part of key before the hash, used to label cache
// events.
func namespace(key string) string {
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
