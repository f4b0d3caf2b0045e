// Package cachemanager caches rendered view fragments keyed by string.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values of type V under string keys with a TTL.
type CacheManager[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Flush(ctx context.Context)
}
