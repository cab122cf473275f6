package radios

import (
	"sync"
	"time"

	"github.com/mauiplayer/radio-api/internal/services/radiobrowser"
)

// DefaultCacheTTL is how long a cached station list is served
const DefaultCacheTTL = 10 * time.Minute

// Clock abstracts time for cache expiry
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time { return time.Now() }

// Cache stores station lists with a fixed TTL.
// Entries expire lazily on read and are only ever replaced by a later Set.
type Cache struct {
	mu    sync.RWMutex
	items map[string]cacheEntry
	ttl   time.Duration
	clock Clock
}

type cacheEntry struct {
	stations  []radiobrowser.RawStation
	createdAt time.Time
}

// NewCache creates a cache. A zero ttl uses DefaultCacheTTL, a nil clock the wall clock.
func NewCache(ttl time.Duration, clock Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Cache{
		items: make(map[string]cacheEntry),
		ttl:   ttl,
		clock: clock,
	}
}

// Get returns the stations stored under key while they are younger than the TTL
func (c *Cache) Get(key string) ([]radiobrowser.RawStation, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || c.clock.Now().Sub(entry.createdAt) >= c.ttl {
		return nil, false
	}
	return clone(entry.stations), true
}

// Set stores stations under key, replacing any previous entry
func (c *Cache) Set(key string, stations []radiobrowser.RawStation) {
	entry := cacheEntry{stations: clone(stations), createdAt: c.clock.Now()}

	c.mu.Lock()
	c.items[key] = entry
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// TTL returns the configured time to live
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// callers shuffle and truncate lists in place
func clone(stations []radiobrowser.RawStation) []radiobrowser.RawStation {
	if stations == nil {
		return nil
	}
	out := make([]radiobrowser.RawStation, len(stations))
	copy(out, stations)
	return out
}
