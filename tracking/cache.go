package tracking

import (
	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/errs"
)

// Cache is the change-tracking engine behind a keyed collection where the
// key is derived from each item by a key selector, rather than supplied
// explicitly alongside it — the shape .NET DynamicData calls a cache of
// items with an intrinsic identity (an entity's primary key, say).
type Cache[K comparable, V any] struct {
	store       *keyedStore[K, V]
	keySelector func(item V) K
}

// NewCache returns an empty Cache that derives each item's key via
// keySelector, using K's native equality and go-cmp's structural equality
// for value comparisons. Unlike the equality parameters elsewhere in
// this package, keySelector is mandatory (spec.md §6): a nil
// keySelector returns errs.ErrNullArgument rather than panicking the
// first time a key needs deriving.
func NewCache[K comparable, V any](keySelector func(item V) K) (*Cache[K, V], error) {
	return NewCacheWithEquality[K, V](keySelector, nil, nil)
}

// NewCacheWithEquality is NewCache with custom key and/or value equality.
// Either may be nil to keep the default for that axis. keySelector is
// still mandatory; see NewCache.
func NewCacheWithEquality[K comparable, V any](keySelector func(item V) K, keyEquals func(a, b K) bool, valueEquals func(a, b V) bool) (*Cache[K, V], error) {
	if keySelector == nil {
		return nil, errs.NullArgument("keySelector")
	}
	return &Cache[K, V]{
		store:       newKeyedStore[K, V](keyEquals, valueEquals),
		keySelector: keySelector,
	}, nil
}

func (c *Cache[K, V]) EnableChangeCollection()         { c.store.enableChangeCollection() }
func (c *Cache[K, V]) DisableChangeCollection()        { c.store.disableChangeCollection() }
func (c *Cache[K, V]) IsChangeCollectionEnabled() bool { return c.store.isChangeCollectionEnabled() }
func (c *Cache[K, V]) IsDirty() bool                   { return c.store.isDirty() }

func (c *Cache[K, V]) CaptureChangesAndClean(reuseBuffer bool) changeset.KeyedChangeSet[K, V] {
	return c.store.captureChangesAndClean(reuseBuffer)
}

// KeyEquals reports whether a and b are the same key under this cache's
// key-equality relation (native == if none was supplied).
func (c *Cache[K, V]) KeyEquals(a, b K) bool {
	if c.store.keyEquals == nil {
		return a == b
	}
	return c.store.keyEquals(a, b)
}

// Key returns the key this cache derives for item via its key selector.
func (c *Cache[K, V]) Key(item V) K { return c.keySelector(item) }

func (c *Cache[K, V]) ContainsKey(key K) bool      { return c.store.containsKey(key) }
func (c *Cache[K, V]) TryGetValue(key K) (V, bool) { return c.store.tryGetValue(key) }

// Get is the indexer-get form: it returns errs.ErrKeyNotFound rather than
// an ok-boolean when key is absent.
func (c *Cache[K, V]) Get(key K) (V, error)            { return c.store.get(key) }
func (c *Cache[K, V]) Count() int                      { return c.store.count() }
func (c *Cache[K, V]) Keys() []K                       { return c.store.keys() }
func (c *Cache[K, V]) Values() []V                     { return c.store.values() }
func (c *Cache[K, V]) ForEach(fn func(key K, value V)) { c.store.forEach(fn) }

// AddOrUpdate inserts item, or replaces the item currently stored under
// item's key, reporting whether the cache changed. A replacement with a
// value equal to the one already stored is a no-op.
func (c *Cache[K, V]) AddOrUpdate(item V) bool {
	return c.store.addOrReplace(c.keySelector(item), item)
}

// Remove deletes the item whose key selector maps to the same key as
// item's, reporting whether the cache changed.
func (c *Cache[K, V]) Remove(item V) bool {
	return c.store.remove(c.keySelector(item))
}

// RemoveKey deletes the item stored under key, reporting whether the
// cache changed.
func (c *Cache[K, V]) RemoveKey(key K) bool { return c.store.remove(key) }

// Clear removes every item.
func (c *Cache[K, V]) Clear() { c.store.clear() }

// AddOrUpdateRange calls AddOrUpdate for every item.
func (c *Cache[K, V]) AddOrUpdateRange(items []V) {
	for _, item := range items {
		c.AddOrUpdate(item)
	}
}

// Reset replaces the cache's contents with items, keyed by keySelector.
func (c *Cache[K, V]) Reset(items []V) {
	target := make(map[K]V, len(items))
	for _, item := range items {
		target[c.keySelector(item)] = item
	}
	c.store.reset(target)
}
