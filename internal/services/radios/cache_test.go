package radios

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauiplayer/radio-api/internal/services/radiobrowser"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestCache_TTL(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(10*time.Minute, clock)
	stations := []radiobrowser.RawStation{station("a", "http://a", 192)}

	_, ok := cache.Get("search:tag:jazz:5")
	assert.False(t, ok)

	cache.Set("search:tag:jazz:5", stations)
	got, ok := cache.Get("search:tag:jazz:5")
	require.True(t, ok)
	assert.Equal(t, stations, got)

	clock.Advance(10*time.Minute - time.Nanosecond)
	_, ok = cache.Get("search:tag:jazz:5")
	assert.True(t, ok, "still fresh just before the ttl")

	clock.Advance(time.Nanosecond)
	_, ok = cache.Get("search:tag:jazz:5")
	assert.False(t, ok, "expired exactly at the ttl")
	assert.Equal(t, 1, cache.Len(), "expired entries are not evicted on read")

	cache.Set("search:tag:jazz:5", nil)
	got, ok = cache.Get("search:tag:jazz:5")
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestCache_LastWriterWins(t *testing.T) {
	cache := NewCache(time.Minute, newFakeClock())

	cache.Set("k", []radiobrowser.RawStation{station("a", "1", 0)})
	cache.Set("k", []radiobrowser.RawStation{station("b", "2", 0)})

	got, ok := cache.Get("k")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].StationUUID)
}

func TestCache_ReturnsCopies(t *testing.T) {
	cache := NewCache(time.Minute, newFakeClock())
	in := []radiobrowser.RawStation{station("a", "1", 0), station("b", "2", 0)}
	cache.Set("k", in)

	in[0].StationUUID = "mutated"
	got, _ := cache.Get("k")
	got[1].StationUUID = "mutated"

	again, _ := cache.Get("k")
	assert.Equal(t, "a", again[0].StationUUID)
	assert.Equal(t, "b", again[1].StationUUID)
}

func TestCache_Defaults(t *testing.T) {
	cache := NewCache(0, nil)
	assert.Equal(t, DefaultCacheTTL, cache.TTL())

	cache.Set("k", []radiobrowser.RawStation{})
	_, ok := cache.Get("k")
	assert.True(t, ok)
}

func TestCache_Concurrent(t *testing.T) {
	cache := NewCache(time.Minute, newFakeClock())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%4)
			for j := 0; j < 100; j++ {
				cache.Set(key, []radiobrowser.RawStation{station(fmt.Sprint(i), "u", j)})
				_, _ = cache.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, cache.Len())
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "search:tag:jazz:5", searchKey("tag", "jazz", 5))
	assert.Equal(t, "topvoted:20", topVotedKey(20))
	assert.Equal(t, "random:10", randomKey(10))
	assert.Equal(t, "variety:pop|rock:10", varietyKey([]string{"pop", "rock"}, 10))
	assert.Equal(t, "comprehensive:1024", comprehensiveKey(1024))
	assert.Equal(t, "term:tag:salsa:es:22", termKey("tag", "salsa", "es", 22))
}
