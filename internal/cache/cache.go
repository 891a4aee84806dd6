package cache

import (
	"context"
)

// ContentCache stores generated level content by key.
// Implemented by memory cache (dev) and Redis cache (prod).
// Entries never expire; a Set on an existing key replaces the whole value.
type ContentCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
