package api

import (
	"sync"
	"time"

	"github.com/ivasik-k7/leetcode-stats/internal/stats"
)

type cacheEntry struct {
	at  time.Time
	res *stats.Result
}

// Cache keeps successful lookups per username for a fixed TTL.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *Cache) Get(username string) (*stats.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[username]
	if !ok || time.Since(e.at) > c.ttl {
		delete(c.entries, username)
		return nil, false
	}
	return e.res, true
}

func (c *Cache) Set(username string, res *stats.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[username] = cacheEntry{at: time.Now(), res: res}
}
