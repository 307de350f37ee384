// Package cache provides a small TTL cache for fetched HTTP bodies.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Cache is a concurrency-safe string cache with per-entry TTL. Expired
// entries are dropped lazily on read and swept periodically by a janitor.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
}

// New creates a cache and starts its cleanup goroutine.
func New() *Cache {
	c := &Cache{items: make(map[string]entry)}
	go c.janitor()
	return c
}

// Set stores value under key for the given TTL.
func (c *Cache) Set(key, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
}

// Get returns the cached value and whether it is present and still fresh.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return "", false
	}
	return e.value, true
}

// Len returns the number of entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache) janitor() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, e := range c.items {
			if now.After(e.expiresAt) {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}
