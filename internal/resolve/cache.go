package resolve

import (
	"sync"
	"time"

	"github.com/vmunix/postarr/internal/library"
)

// childrenTTL bounds how long a child listing is reused within a run.
const childrenTTL = 10 * time.Minute

type cacheEntry struct {
	children []library.Item
	expires  time.Time
}

// childCache holds the seasons and episodes listed for a parent so records
// of the same show do not list them again.
type childCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newChildCache(ttl time.Duration) *childCache {
	return &childCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *childCache) get(ratingKey string) ([]library.Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[ratingKey]
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.children, true
}

func (c *childCache) set(ratingKey string, children []library.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[ratingKey] = cacheEntry{
		children: children,
		expires:  time.Now().Add(c.ttl),
	}
}
