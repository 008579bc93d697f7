package ai

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Cache memoizes AI responses keyed by a hash of the prompt text plus a
// version tag, so a prompt-format change invalidates old entries. Entries
// expire after a fixed TTL and the cache is bounded: inserting beyond the
// maximum evicts the oldest entry first.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry
	order      []string
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

type cacheEntry struct {
	value    string
	storedAt time.Time
}

// NewCache constructs a bounded TTL cache. Non-positive arguments fall back
// to 128 entries and 15 minutes.
func NewCache(maxEntries int, ttl time.Duration) *Cache {
	if maxEntries <= 0 {
		maxEntries = 128
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Cache{
		entries:    make(map[string]cacheEntry, maxEntries),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Key derives the cache key for a prompt and version tag.
func Key(prompt, version string) string {
	sum := sha256.Sum256([]byte(prompt + "|" + version))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached value for the key if present and not expired.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		c.remove(key)
		return "", false
	}
	return entry.value, true
}

// Set stores a value, evicting the oldest entry when the cache is full.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = cacheEntry{value: value, storedAt: c.now()}
		return
	}

	for len(c.entries) >= c.maxEntries && len(c.order) > 0 {
		c.remove(c.order[0])
	}

	c.entries[key] = cacheEntry{value: value, storedAt: c.now()}
	c.order = append(c.order, key)
}

// Len reports the current entry count.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove expects the caller to hold the lock.
func (c *Cache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
