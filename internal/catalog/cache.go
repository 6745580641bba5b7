package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"
	"time"

	"exoplanet-transit/internal/model"
)

// CacheEntry is one cached catalog download.
type CacheEntry struct {
	Table     *model.CatalogTable
	ExpiresAt time.Time
}

// ResponseCache keeps downloaded catalogs in memory so repeated API calls
// do not re-download the full archive table.
//
// For local development only: it is enabled with ENABLE_ARCHIVE_CACHE=true
// and always disabled when API_ENV=production. The command-line downloaders
// never use it.
type ResponseCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
	now   func() time.Time
}

var globalCache *ResponseCache
var cacheOnce sync.Once

// NewResponseCache creates an empty cache with the given TTL.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		store: make(map[string]*CacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// GetCache returns the process-wide cache if caching is enabled, else nil.
func GetCache() *ResponseCache {
	if os.Getenv("ENABLE_ARCHIVE_CACHE") != "true" {
		return nil
	}
	if os.Getenv("API_ENV") == "production" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := 1 * time.Hour
		if ttlStr := os.Getenv("ARCHIVE_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			}
		}
		globalCache = NewResponseCache(ttl)
		go globalCache.cleanup(5 * time.Minute)
	})

	return globalCache
}

// Get returns a cached table if present and not expired.
func (c *ResponseCache) Get(url string) (*model.CatalogTable, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[GenerateCacheKey(url)]
	if !exists || c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Table, true
}

// Set stores a table under url.
func (c *ResponseCache) Set(url string, table *model.CatalogTable) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[GenerateCacheKey(url)] = &CacheEntry{
		Table:     table,
		ExpiresAt: c.now().Add(c.ttl),
	}
}

// Clear removes all entries.
func (c *ResponseCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

// evictExpired drops expired entries and returns how many were removed.
func (c *ResponseCache) evictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
			removed++
		}
	}
	return removed
}

func (c *ResponseCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for range ticker.C {
		c.evictExpired()
	}
}

// GenerateCacheKey hashes a request URL into a fixed-size key.
func GenerateCacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])
}
