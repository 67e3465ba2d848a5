package tint

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
	"github.com/BrandonKowalski/tintkit/pkg/tint/internal"
)

const defaultMaxCacheSize = 6

// CacheKey identifies a filter by its color and blend mode.
type CacheKey struct {
	Color color.Color
	Mode  BlendMode
}

// CacheStats counts cache traffic since the cache was created.
type CacheStats struct {
	Hits   int64
	Misses int64
	Builds int64
}

// FilterCache is a bounded LRU of filters keyed by (color, mode). It is meant
// to be created once by the composition root and shared by every Resolver.
// It is safe for concurrent use.
type FilterCache struct {
	mu      sync.Mutex
	filters *lru.Cache[CacheKey, *Filter]
	maxSize int

	hits   atomic.Int64
	misses atomic.Int64
	builds atomic.Int64
}

func NewFilterCache() *FilterCache {
	return NewFilterCacheWithSize(defaultMaxCacheSize)
}

// NewFilterCacheWithSize creates a cache holding at most maxSize filters.
// A non-positive size falls back to the default of 6.
func NewFilterCacheWithSize(maxSize int) *FilterCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}

	filters, err := lru.NewWithEvict(maxSize, func(key CacheKey, _ *Filter) {
		internal.GetInternalLogger().Debug("Evicted color filter", "color", key.Color.String(), "mode", key.Mode.String())
	})
	if err != nil {
		// Only returned for a non-positive size, which is handled above.
		panic(err)
	}

	return &FilterCache{filters: filters, maxSize: maxSize}
}

// Get returns the cached filter and marks it most recently used.
// Returns nil on a miss.
func (c *FilterCache) Get(col color.Color, mode BlendMode) *Filter {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.get(CacheKey{Color: col, Mode: mode})
}

// Put stores a filter, evicting the least recently used entry if the cache is full.
func (c *FilterCache) Put(col color.Color, mode BlendMode, filter *Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters.Add(CacheKey{Color: col, Mode: mode}, filter)
}

// GetOrBuild returns the cached filter for (color, mode), building and
// storing one on a miss. Each key is built at most once while it stays cached.
func (c *FilterCache) GetOrBuild(col color.Color, mode BlendMode) *Filter {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := CacheKey{Color: col, Mode: mode}
	if filter := c.get(key); filter != nil {
		return filter
	}

	filter := NewFilter(col, mode)
	c.builds.Inc()
	c.filters.Add(key, filter)
	return filter
}

func (c *FilterCache) get(key CacheKey) *Filter {
	if filter, ok := c.filters.Get(key); ok {
		c.hits.Inc()
		return filter
	}
	c.misses.Inc()
	return nil
}

// Contains reports whether a key is cached without touching its recency.
func (c *FilterCache) Contains(col color.Color, mode BlendMode) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.filters.Contains(CacheKey{Color: col, Mode: mode})
}

func (c *FilterCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.filters.Len()
}

// Keys returns the cached keys from least to most recently used.
func (c *FilterCache) Keys() []CacheKey {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.filters.Keys()
}

func (c *FilterCache) MaxSize() int {
	return c.maxSize
}

func (c *FilterCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Builds: c.builds.Load(),
	}
}
