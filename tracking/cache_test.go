package tracking

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/errs"
)

type cacheItem struct {
	id   string
	name string
}

type CacheTestSuite struct {
	suite.Suite
}

func TestCacheTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CacheTestSuite))
}

func newCacheItemCache() *Cache[string, cacheItem] {
	cache, err := NewCache[string, cacheItem](func(item cacheItem) string { return item.id })
	if err != nil {
		panic(err)
	}
	return cache
}

func (s *CacheTestSuite) TestNewCacheRejectsNilKeySelector() {
	// act
	_, err := NewCache[string, cacheItem](nil)

	// assert
	s.ErrorIs(err, errs.ErrNullArgument)
}

func (s *CacheTestSuite) TestAddOrUpdateDerivesKeyFromItem() {
	// arrange
	cache := newCacheItemCache()

	// act
	cache.AddOrUpdate(cacheItem{id: "a", name: "Alpha"})

	// assert
	s.True(cache.ContainsKey("a"))
	value, _ := cache.TryGetValue("a")
	s.Equal("Alpha", value.name)
}

func (s *CacheTestSuite) TestGetReturnsKeyNotFoundOnMissingKey() {
	// arrange
	cache := newCacheItemCache()

	// act
	_, err := cache.Get("missing")

	// assert
	s.ErrorIs(err, errs.ErrKeyNotFound)
}

func (s *CacheTestSuite) TestAddOrUpdateWithEqualValueIsNoOp() {
	// arrange
	cache := newCacheItemCache()
	cache.AddOrUpdate(cacheItem{id: "a", name: "Alpha"})
	cache.EnableChangeCollection()

	// act
	changed := cache.AddOrUpdate(cacheItem{id: "a", name: "Alpha"})
	result := cache.CaptureChangesAndClean(true)

	// assert
	s.False(changed)
	s.True(result.IsEmpty())
}

func (s *CacheTestSuite) TestRemoveUsesItemsDerivedKey() {
	// arrange
	cache := newCacheItemCache()
	cache.AddOrUpdate(cacheItem{id: "a", name: "Alpha"})

	// act
	removed := cache.Remove(cacheItem{id: "a", name: "ignored, key only"})

	// assert
	s.True(removed)
	s.Equal(0, cache.Count())
}

func (s *CacheTestSuite) TestRemoveKeyByExplicitKey() {
	// arrange
	cache := newCacheItemCache()
	cache.AddOrUpdate(cacheItem{id: "a", name: "Alpha"})

	// act
	removed := cache.RemoveKey("a")

	// assert
	s.True(removed)
}

func (s *CacheTestSuite) TestResetReplacesContentsKeyedBySelector() {
	// arrange
	cache := newCacheItemCache()
	cache.AddOrUpdate(cacheItem{id: "a", name: "Alpha"})
	cache.AddOrUpdate(cacheItem{id: "b", name: "Beta"})
	cache.EnableChangeCollection()

	// act
	cache.Reset([]cacheItem{{id: "c", name: "Gamma"}})
	result := cache.CaptureChangesAndClean(true)

	// assert
	s.Equal(changeset.Reset, result.Type())
	s.Equal(1, cache.Count())
	s.True(cache.ContainsKey("c"))
}

func (s *CacheTestSuite) TestResetOnEmptyCacheClassifiesAsReset() {
	// arrange
	cache := newCacheItemCache()
	cache.EnableChangeCollection()

	// act
	cache.Reset([]cacheItem{{id: "a", name: "Alpha"}})
	result := cache.CaptureChangesAndClean(true)

	// assert: the cache was already empty, so clear has nothing to remove,
	// but the source-cleared transition must still surface as Reset rather
	// than Update.
	s.Equal(changeset.Reset, result.Type())
	s.True(cache.ContainsKey("a"))
}

func (s *CacheTestSuite) TestAddOrUpdateRangeAppliesEachItem() {
	// arrange
	cache := newCacheItemCache()

	// act
	cache.AddOrUpdateRange([]cacheItem{{id: "a", name: "Alpha"}, {id: "b", name: "Beta"}})

	// assert
	s.Equal(2, cache.Count())
}
