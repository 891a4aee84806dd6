package cache

import (
	"context"
	"sync"
)

// MemoryContentCache keeps entries for the lifetime of the process.
type MemoryContentCache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryContentCache() *MemoryContentCache {
	return &MemoryContentCache{
		items: make(map[string][]byte),
	}
}

func (c *MemoryContentCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	value, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (c *MemoryContentCache) Set(_ context.Context, key string, value []byte) error {
	// Copy to decouple from caller's buffer
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	c.mu.Lock()
	c.items[key] = valueCopy
	c.mu.Unlock()

	return nil
}

// Len returns the number of items currently in the cache.
func (c *MemoryContentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear removes all items from cache. Useful for tests or manual resets.
func (c *MemoryContentCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string][]byte)
	c.mu.Unlock()
}
