package data

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sync"
	"time"
)

// Cache stores raw response payloads keyed by CacheKey.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, payload []byte)
}

type cacheEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryCache is an in-process TTL cache for API responses.
//
// Published values can be revised by the platform, so keep the TTL short
// for recent dates.
type MemoryCache struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
	ttl   time.Duration
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

// NewMemoryCache starts a cache whose entries live for ttl.
// Call Close to stop the background sweeper.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := &MemoryCache{
		store: make(map[string]cacheEntry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	go c.cleanup(5 * time.Minute)
	return c
}

// Get retrieves a cached payload if present and not expired.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.payload, true
}

func (c *MemoryCache) Set(key string, payload []byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = cacheEntry{
		payload:   append([]byte(nil), payload...),
		expiresAt: c.now().Add(c.ttl),
	}
}

// Clear removes all entries.
func (c *MemoryCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]cacheEntry)
}

func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *MemoryCache) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}

func (c *MemoryCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.evictExpired()
		}
	}
}

func (c *MemoryCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
		}
	}
}

// CacheKey derives a stable key from the endpoint path and its query.
// url.Values.Encode sorts by name, so parameter order does not matter.
func CacheKey(path string, params url.Values) string {
	hash := sha256.Sum256([]byte(path + "?" + params.Encode()))
	return hex.EncodeToString(hash[:])
}
