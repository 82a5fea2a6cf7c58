package morphotactics

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"turkmorph.org/core/types"
)

const DefaultSurfaceCacheSize = 4

var surfaceCacheGrows = promauto.NewCounter(prometheus.CounterOpts{
	Name: "morph_surface_cache_grows_total",
	Help: "Times a surface cache table was replaced by a larger one",
})

// SurfaceCacheStats counts the cache lookups of one caller. It is not safe for
// concurrent use; each analysis keeps its own and publishes the totals once.
type SurfaceCacheStats struct {
	Hits   int
	Misses int
}

func (s *SurfaceCacheStats) record(hit bool) {
	if s == nil {
		return
	}
	if hit {
		s.Hits++
	} else {
		s.Misses++
	}
}

type cachedSurface struct {
	surface string
	ok      bool
}

// surfaceTable is immutable once published.
type surfaceTable struct {
	entries  map[uint32]cachedSurface
	capacity int
}

// SurfaceCache memoizes the surface a transition produces for a phonetic attribute set.
// Readers never lock: they load the current table atomically. Writers serialize on a mutex,
// copy the table with the new entry, doubling the capacity when it is full, and publish the copy.
// A reader may observe a stale table and recompute; it never observes a torn one.
type SurfaceCache struct {
	table atomic.Pointer[surfaceTable]
	mu    sync.Mutex
}

func NewSurfaceCache(initialSize int) *SurfaceCache {
	if initialSize <= 0 {
		initialSize = DefaultSurfaceCacheSize
	}
	c := &SurfaceCache{}
	c.table.Store(&surfaceTable{
		entries:  make(map[uint32]cachedSurface, initialSize),
		capacity: initialSize,
	})
	return c
}

func (c *SurfaceCache) Get(attrs types.PhoneticAttributes) (surface string, ok bool, found bool) {
	entry, found := c.table.Load().entries[attrs.Bits()]
	if found {
		return entry.surface, entry.ok, true
	}
	return "", false, false
}

func (c *SurfaceCache) Put(attrs types.PhoneticAttributes, surface string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.table.Load()
	key := attrs.Bits()
	if _, exists := current.entries[key]; exists {
		return
	}

	capacity := current.capacity
	if len(current.entries) >= capacity {
		capacity *= 2
		surfaceCacheGrows.Inc()
	}
	next := &surfaceTable{
		entries:  make(map[uint32]cachedSurface, capacity),
		capacity: capacity,
	}
	for k, v := range current.entries {
		next.entries[k] = v
	}
	next.entries[key] = cachedSurface{surface: surface, ok: ok}
	c.table.Store(next)
}

// GetOrCompute returns the cached surface or computes, stores and returns it.
// hit reports whether the cache answered.
func (c *SurfaceCache) GetOrCompute(attrs types.PhoneticAttributes, compute func() (string, bool)) (surface string, ok bool, hit bool) {
	if surface, ok, found := c.Get(attrs); found {
		return surface, ok, true
	}
	surface, ok = compute()
	c.Put(attrs, surface, ok)
	return surface, ok, false
}

func (c *SurfaceCache) Len() int {
	return len(c.table.Load().entries)
}

func (c *SurfaceCache) Capacity() int {
	return c.table.Load().capacity
}
