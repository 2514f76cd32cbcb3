package subject

import (
	"github.com/reactivemarbles/DynamicDataVNext/change"
	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/reactive"
	"github.com/reactivemarbles/DynamicDataVNext/tracking"
)

// SubjectCache wraps a tracking.Cache and publishes every mutation as a
// change.KeyedChange stream. Unlike SubjectDictionary, each item carries
// its own key via the cache's key selector.
type SubjectCache[K comparable, V any] struct {
	cache *tracking.Cache[K, V]
	core  *core[changeset.KeyedChangeSet[K, V]]
}

// NewSubjectCache returns an empty SubjectCache that derives each item's
// key via keySelector, using K's native equality and structural value
// equality. keySelector is mandatory; a nil keySelector returns
// errs.ErrNullArgument, matching tracking.NewCache.
func NewSubjectCache[K comparable, V any](keySelector func(item V) K) (*SubjectCache[K, V], error) {
	cache, err := tracking.NewCache[K, V](keySelector)
	if err != nil {
		return nil, err
	}
	return newSubjectCache(cache), nil
}

// NewSubjectCacheWithEquality is NewSubjectCache with custom key and/or
// value equality.
func NewSubjectCacheWithEquality[K comparable, V any](keySelector func(item V) K, keyEquals func(a, b K) bool, valueEquals func(a, b V) bool) (*SubjectCache[K, V], error) {
	cache, err := tracking.NewCacheWithEquality[K, V](keySelector, keyEquals, valueEquals)
	if err != nil {
		return nil, err
	}
	return newSubjectCache(cache), nil
}

func newSubjectCache[K comparable, V any](cache *tracking.Cache[K, V]) *SubjectCache[K, V] {
	c := &SubjectCache[K, V]{cache: cache}
	c.core = newCore[changeset.KeyedChangeSet[K, V]](cache, c.snapshot)
	return c
}

func (c *SubjectCache[K, V]) snapshot() changeset.KeyedChangeSet[K, V] {
	keys := c.cache.Keys()
	if len(keys) == 0 {
		return changeset.EmptyKeyedChangeSet[K, V]()
	}
	builder := changeset.NewKeyedChangeSetBuilder[K, V]()
	for _, key := range keys {
		value, _ := c.cache.TryGetValue(key)
		builder.AddChange(change.NewKeyedAddition(key, value))
	}
	return builder.BuildAndClear(false)
}

func (c *SubjectCache[K, V]) ContainsKey(key K) bool          { return c.cache.ContainsKey(key) }
func (c *SubjectCache[K, V]) TryGetValue(key K) (V, bool)     { return c.cache.TryGetValue(key) }
func (c *SubjectCache[K, V]) Get(key K) (V, error)            { return c.cache.Get(key) }
func (c *SubjectCache[K, V]) Count() int                      { return c.cache.Count() }
func (c *SubjectCache[K, V]) IsDirty() bool                   { return c.cache.IsDirty() }
func (c *SubjectCache[K, V]) Keys() []K                       { return c.cache.Keys() }
func (c *SubjectCache[K, V]) Values() []V                     { return c.cache.Values() }
func (c *SubjectCache[K, V]) ForEach(fn func(key K, value V)) { c.cache.ForEach(fn) }

// AddOrUpdate inserts item, or replaces the item currently stored under
// item's key, publishing the resulting change set. A replacement with a
// value equal to the one already stored is a no-op.
func (c *SubjectCache[K, V]) AddOrUpdate(item V) bool {
	changed := c.cache.AddOrUpdate(item)
	c.core.PublishPendingNotifications()
	return changed
}

// Remove deletes the item whose key selector maps to item's key,
// publishing the resulting change set.
func (c *SubjectCache[K, V]) Remove(item V) bool {
	changed := c.cache.Remove(item)
	c.core.PublishPendingNotifications()
	return changed
}

// RemoveKey deletes the item stored under key, publishing the resulting
// change set.
func (c *SubjectCache[K, V]) RemoveKey(key K) bool {
	changed := c.cache.RemoveKey(key)
	c.core.PublishPendingNotifications()
	return changed
}

// Clear removes every item, publishing the resulting change set.
func (c *SubjectCache[K, V]) Clear() {
	c.cache.Clear()
	c.core.PublishPendingNotifications()
}

// AddOrUpdateRange applies AddOrUpdate to every item, publishing the
// combined result as a single batch.
func (c *SubjectCache[K, V]) AddOrUpdateRange(items []V) {
	c.cache.AddOrUpdateRange(items)
	c.core.PublishPendingNotifications()
}

// Reset replaces the cache's contents with items, publishing the
// resulting change set as a single batch.
func (c *SubjectCache[K, V]) Reset(items []V) {
	c.cache.Reset(items)
	c.core.PublishPendingNotifications()
}

// Subscribe joins the change-set stream. The first delivered value is a
// synthesised change set describing the cache's current contents.
func (c *SubjectCache[K, V]) Subscribe(observer reactive.Observer[changeset.KeyedChangeSet[K, V]]) reactive.Disposable {
	return c.core.Subscribe(observer)
}

// CollectionChanged emits a tick whenever a notification batch is about
// to be published.
func (c *SubjectCache[K, V]) CollectionChanged() reactive.Observable[reactive.Unit] {
	return c.core.CollectionChanged()
}

// SuspendNotifications defers publication until every returned handle has
// been disposed.
func (c *SubjectCache[K, V]) SuspendNotifications() reactive.Disposable {
	return c.core.SuspendNotifications()
}

// Dispose completes every stream this subject owns.
func (c *SubjectCache[K, V]) Dispose() {
	c.core.Dispose()
}

// ObserveValue streams the item stored under key, following the same
// presence/removal/replacement/clear semantics as
// SubjectDictionary.ObserveValue.
func (c *SubjectCache[K, V]) ObserveValue(key K) reactive.Observable[V] {
	return reactive.Switch[V](reactive.Select[reactive.Unit, reactive.Observable[V]](
		c.core.readySignal(),
		func(reactive.Unit) reactive.Observable[V] { return c.observeValueNow(key) },
	))
}

func (c *SubjectCache[K, V]) observeValueNow(key K) reactive.Observable[V] {
	c.cache.EnableChangeCollection()
	value, present := c.cache.TryGetValue(key)
	if !present {
		return reactive.Empty[V]()
	}

	live := reactive.ObservableFunc[V](func(observer reactive.Observer[V]) reactive.Disposable {
		var sub reactive.Disposable
		sub = c.core.subscribeToChanges().Subscribe(reactive.NewObserver(
			func(cs changeset.KeyedChangeSet[K, V]) {
				switch cs.Type() {
				case changeset.Clear:
					observer.OnCompleted()
					if sub != nil {
						sub.Dispose()
					}
				case changeset.Reset:
					v, ok := c.cache.TryGetValue(key)
					if !ok {
						observer.OnCompleted()
						if sub != nil {
							sub.Dispose()
						}
						return
					}
					observer.OnNext(v)
				default:
					for _, ch := range cs.Changes() {
						switch ch.Reason() {
						case change.KeyedRemoval:
							removedKey, _, _ := ch.Removal()
							if c.cache.KeyEquals(removedKey, key) {
								observer.OnCompleted()
								if sub != nil {
									sub.Dispose()
								}
								return
							}
						case change.KeyedReplacement:
							replacedKey, _, newItem, _ := ch.Replacement()
							if c.cache.KeyEquals(replacedKey, key) {
								observer.OnNext(newItem)
							}
						}
					}
				}
			},
			observer.OnError,
			observer.OnCompleted,
		))
		return sub
	})

	return reactive.Prepend[V](live, value)
}
