package pathfinding

import (
	"context"
	"gridpath/core"
	"strings"
	"testing"
)

func TestPathCache_BasicOperations(t *testing.T) {
	cache := NewPathCache(10)

	key1 := PathCacheKey{Start: core.Point{X: 1, Y: 1}, Destination: core.Point{X: 3, Y: 1}, GridHash: 1}
	key2 := PathCacheKey{Start: core.Point{X: 1, Y: 1}, Destination: core.Point{X: 1, Y: 3}, GridHash: 1}
	res1 := Result{Path: core.Path{Points: []core.Point{{X: 3, Y: 1}, {X: 2, Y: 1}}, Cost: 2}, Found: true}
	res2 := Result{Path: core.Path{Points: []core.Point{{X: 1, Y: 3}, {X: 1, Y: 2}}, Cost: 7}, Found: true}

	cache.Put(key1, res1)
	cache.Put(key2, res2)

	if got, found := cache.Get(key1); !found || got.Path.Cost != 2 {
		t.Errorf("Get(key1) = %v, %t", got.Path, found)
	}
	if got, found := cache.Get(key2); !found || got.Path.Cost != 7 {
		t.Errorf("Get(key2) = %v, %t", got.Path, found)
	}
	if _, found := cache.Get(PathCacheKey{GridHash: 2}); found {
		t.Error("Unexpected result found in cache")
	}

	hits, misses, _, size := cache.Stats()
	if hits != 2 || misses != 1 || size != 2 {
		t.Errorf("Stats() = hits %d, misses %d, size %d; want 2, 1, 2", hits, misses, size)
	}
}

func TestPathCache_EvictsOldest(t *testing.T) {
	cache := NewPathCache(2)
	keys := []PathCacheKey{{GridHash: 1}, {GridHash: 2}, {GridHash: 3}}
	for _, k := range keys {
		cache.Put(k, Result{Found: true})
	}

	if _, found := cache.Get(keys[0]); found {
		t.Error("oldest entry should have been evicted")
	}
	for _, k := range keys[1:] {
		if _, found := cache.Get(k); !found {
			t.Errorf("entry %v should still be cached", k)
		}
	}
	if _, _, evictions, size := cache.Stats(); evictions != 1 || size != 2 {
		t.Errorf("evictions = %d, size = %d; want 1, 2", evictions, size)
	}

	cache.Clear()
	if hits, misses, evictions, size := cache.Stats(); hits+misses+evictions+size != 0 {
		t.Errorf("Clear() left stats %d/%d/%d/%d", hits, misses, evictions, size)
	}
}

func TestCachedPathFinder(t *testing.T) {
	finder := NewCachedPathFinder(NewPathFinder(), 8)
	ctx := context.Background()

	first, err := finder.Search(ctx, parseGrid(t, openFiveByFive))
	if err != nil {
		t.Fatal(err)
	}
	// A marked copy of the same layout hits the cache.
	marked := parseGrid(t, openFiveByFive)
	marked.MarkChecked(first.Checked)
	second, err := finder.Search(ctx, marked)
	if err != nil {
		t.Fatal(err)
	}
	if second.Path.Cost != first.Path.Cost || len(second.Expanded) != len(first.Expanded) {
		t.Errorf("cached result differs: %v vs %v", second.Path, first.Path)
	}
	if !strings.Contains(finder.CacheStats(), "hits=1") {
		t.Errorf("expected one hit, got %s", finder.CacheStats())
	}

	// A wall changes the fingerprint.
	walled := parseGrid(t, `
XXXXX
XSX-X
X---X
X--DX
XXXXX`)
	if _, err := finder.Search(ctx, walled); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(finder.CacheStats(), "misses=2") {
		t.Errorf("expected two misses, got %s", finder.CacheStats())
	}

	finder.ClearCache()
	if !strings.Contains(finder.CacheStats(), "size=0/8") {
		t.Errorf("ClearCache left %s", finder.CacheStats())
	}
}

func TestCachedPathFinderPreconditions(t *testing.T) {
	finder := NewCachedPathFinder(NewPathFinder(), 1)
	g := parseGrid(t, `
XXXX
X--X
XXXX`)
	if _, err := finder.Search(context.Background(), g); err != ErrNoStart {
		t.Errorf("error = %v, want ErrNoStart", err)
	}
}
