package tts

import (
	"container/list"
	"sync"
)

// Cache stores synthesized audio keyed by request fingerprint.
type Cache interface {
	// Get returns the cached result for a fingerprint, if present.
	Get(fingerprint string) (*Result, bool)
	// Put stores a result under a fingerprint.
	Put(fingerprint string, result *Result)
	// Len returns the number of cached entries.
	Len() int
	// Clear removes all entries.
	Clear()
}

const defaultCacheEntries = 128

// MemoryCache is an in-memory LRU cache for synthesized audio. Safe for
// concurrent use.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List
	max     int
}

type cacheEntry struct {
	key    string
	result *Result
}

// NewMemoryCache creates a cache bounded to maxEntries. A non-positive
// bound uses the default.
func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = defaultCacheEntries
	}
	return &MemoryCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		max:     maxEntries,
	}
}

// Get returns the cached result for a fingerprint, if present.
func (c *MemoryCache) Get(fingerprint string) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[fingerprint]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).result, true
}

// Put stores a result under a fingerprint, evicting the least recently
// used entry when full.
func (c *MemoryCache) Put(fingerprint string, result *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[fingerprint]; ok {
		el.Value.(*cacheEntry).result = result
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&cacheEntry{key: fingerprint, result: result})
	c.entries[fingerprint] = el

	if c.order.Len() > c.max {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear removes all entries.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.order.Init()
}
