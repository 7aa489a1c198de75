package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryCache is an in-process fallback used when no Redis URL is configured.
// Expired entries are dropped lazily on read.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return false, nil
	}
	if err := json.Unmarshal(entry.payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{payload: b, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}
