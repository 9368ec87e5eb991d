package cache

import (
	"context"
	"time"

	"github.com/matzehuels/panels/pkg/observability"
)

// NullCache stores nothing; every lookup is a miss.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() *NullCache { return &NullCache{} }

// Get implements [Cache]. It always misses.
func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	observability.Cache().OnCacheMiss(ctx, namespace(key))
	return nil, false, nil
}

// Set implements [Cache]. The data is discarded.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete implements [Cache].
func (NullCache) Delete(context.Context, string) error { return nil }

// Close implements [Cache].
func (NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
