package card

import (
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache stores encoded cards keyed by fingerprint. Purely an optimization:
// removing it never changes generate output, only latency. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(key string) ([]byte, bool)
	Put(key string, data []byte)
	Clear()
}

// Default cache bounds: tens of entries, tens of megabytes.
const (
	DefaultCacheEntries = 64
	DefaultCacheBytes   = 32 << 20
)

// LRUCache bounds stored cards by both entry count and total byte size.
// Count-based eviction is delegated to the underlying LRU; the byte ceiling
// is enforced here by discarding the oldest entries after each insert.
type LRUCache struct {
	mu       sync.Mutex
	entries  *lru.Cache[string, []byte]
	maxBytes int64
	bytes    int64
}

// NewLRUCache creates a cache bounded at maxEntries entries and maxBytes
// total stored bytes.
func NewLRUCache(maxEntries int, maxBytes int64) (*LRUCache, error) {
	c := &LRUCache{maxBytes: maxBytes}
	// The eviction callback runs synchronously under c.mu, from Add,
	// RemoveOldest, and Purge. It must not take the lock itself.
	inner, err := lru.NewWithEvict(maxEntries, func(_ string, val []byte) {
		c.bytes -= int64(len(val))
	})
	if err != nil {
		return nil, err
	}
	c.entries = inner
	return c, nil
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Get(key)
}

// Put stores data under key. An entry larger than the whole byte budget is
// not stored at all.
func (c *LRUCache) Put(key string, data []byte) {
	cost := int64(len(data))
	if cost > c.maxBytes {
		slog.Debug("card cache: entry exceeds byte budget, not cached", "cost", cost, "max", c.maxBytes)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Replacing an existing key does not fire the eviction callback.
	if old, ok := c.entries.Peek(key); ok {
		c.bytes -= int64(len(old))
	}
	c.entries.Add(key, data)
	c.bytes += cost

	for c.bytes > c.maxBytes {
		if _, _, ok := c.entries.RemoveOldest(); !ok {
			break
		}
	}
}

func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
	c.bytes = 0
	slog.Debug("card cache: cleared")
}

// Len returns the number of stored entries.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Bytes returns the total stored byte size.
func (c *LRUCache) Bytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}
