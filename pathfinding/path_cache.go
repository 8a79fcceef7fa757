package pathfinding

import (
	"context"
	"fmt"
	"gridpath/core"
	"gridpath/grid"
	"sync"
	"sync/atomic"
)

// Searcher is anything that can search a grid.
type Searcher interface {
	Search(ctx context.Context, g *grid.Grid) (Result, error)
}

// PathCacheKey represents a unique key for caching results
type PathCacheKey struct {
	Start, Destination core.Point
	GridHash           uint64 // grid.Fingerprint of the searched grid
}

// PathCache stores previously computed results for reuse. Cached results
// share their slices with every caller and must not be modified.
type PathCache struct {
	mu        sync.RWMutex
	cache     map[PathCacheKey]Result
	order     []PathCacheKey // insertion order, oldest first
	maxSize   int
	hits      int64 // Use atomic operations
	misses    int64 // Use atomic operations
	evictions int64 // Use atomic operations
}

// NewPathCache creates a new cache holding at most maxSize results.
// A maxSize of zero or less means unbounded.
func NewPathCache(maxSize int) *PathCache {
	return &PathCache{
		cache:   make(map[PathCacheKey]Result),
		maxSize: maxSize,
	}
}

// Get retrieves a result from the cache if it exists
func (pc *PathCache) Get(key PathCacheKey) (Result, bool) {
	pc.mu.RLock()
	res, found := pc.cache[key]
	pc.mu.RUnlock()

	if found {
		atomic.AddInt64(&pc.hits, 1)
	} else {
		atomic.AddInt64(&pc.misses, 1)
	}
	return res, found
}

// Put stores a result, evicting the oldest entry when full.
func (pc *PathCache) Put(key PathCacheKey, res Result) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if _, exists := pc.cache[key]; exists {
		pc.cache[key] = res
		return
	}
	for pc.maxSize > 0 && len(pc.cache) >= pc.maxSize {
		oldest := pc.order[0]
		pc.order = pc.order[1:]
		delete(pc.cache, oldest)
		atomic.AddInt64(&pc.evictions, 1)
	}
	pc.cache[key] = res
	pc.order = append(pc.order, key)
}

// Clear removes all entries from the cache
func (pc *PathCache) Clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.cache = make(map[PathCacheKey]Result)
	pc.order = nil
	atomic.StoreInt64(&pc.hits, 0)
	atomic.StoreInt64(&pc.misses, 0)
	atomic.StoreInt64(&pc.evictions, 0)
}

// Stats returns cache statistics
func (pc *PathCache) Stats() (hits, misses, evictions, size int) {
	pc.mu.RLock()
	size = len(pc.cache)
	pc.mu.RUnlock()

	hits = int(atomic.LoadInt64(&pc.hits))
	misses = int(atomic.LoadInt64(&pc.misses))
	evictions = int(atomic.LoadInt64(&pc.evictions))
	return hits, misses, evictions, size
}

// String returns a string representation of cache statistics
func (pc *PathCache) String() string {
	hits, misses, evictions, size := pc.Stats()
	hitRate := 0.0
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	return fmt.Sprintf("PathCache[size=%d/%d, hits=%d, misses=%d, hitRate=%.1f%%, evictions=%d]",
		size, pc.maxSize, hits, misses, hitRate, evictions)
}

// CachedPathFinder wraps a PathFinder with caching functionality
type CachedPathFinder struct {
	finder *PathFinder
	cache  *PathCache
}

// NewCachedPathFinder creates a new cached path finder
func NewCachedPathFinder(finder *PathFinder, cacheSize int) *CachedPathFinder {
	return &CachedPathFinder{
		finder: finder,
		cache:  NewPathCache(cacheSize),
	}
}

// Search returns the cached result for the same grid layout and endpoints,
// searching only on a miss. Errors are not cached.
func (cpf *CachedPathFinder) Search(ctx context.Context, g *grid.Grid) (Result, error) {
	start, ok := g.Start()
	if !ok {
		return Result{}, ErrNoStart
	}
	dest, ok := g.Destination()
	if !ok {
		return Result{}, ErrNoDestination
	}

	key := PathCacheKey{Start: start, Destination: dest, GridHash: g.Fingerprint()}
	if res, found := cpf.cache.Get(key); found {
		return res, nil
	}

	res, err := cpf.finder.Search(ctx, g)
	if err != nil {
		return res, err
	}
	cpf.cache.Put(key, res)
	return res, nil
}

// ClearCache clears the path cache
func (cpf *CachedPathFinder) ClearCache() {
	cpf.cache.Clear()
}

// CacheStats returns the cache statistics
func (cpf *CachedPathFinder) CacheStats() string {
	return cpf.cache.String()
}
