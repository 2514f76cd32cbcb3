package tracking

import (
	"github.com/reactivemarbles/DynamicDataVNext/change"
	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/errs"
)

// keyedStore is the change-tracking core shared by Dictionary and Cache:
// both are a map from K to V that records every mutation as a
// change.KeyedChange. Cache differs only in how the key for a given value
// is obtained (a key selector rather than an explicit argument), so it
// holds a keyedStore instead of duplicating this logic.
type keyedStore[K comparable, V any] struct {
	items       map[K]V
	keyEquals   func(a, b K) bool
	valueEquals func(a, b V) bool
	builder     *changeset.KeyedChangeSetBuilder[K, V]
	enabled     bool
	dirty       bool
}

func newKeyedStore[K comparable, V any](keyEquals func(a, b K) bool, valueEquals func(a, b V) bool) *keyedStore[K, V] {
	if valueEquals == nil {
		valueEquals = defaultEquals[V]
	}
	return &keyedStore[K, V]{
		items:       make(map[K]V),
		keyEquals:   keyEquals,
		valueEquals: valueEquals,
		builder:     changeset.NewKeyedChangeSetBuilder[K, V](),
	}
}

func (s *keyedStore[K, V]) enableChangeCollection() { s.enabled = true }

// disableChangeCollection stops recording mutations and discards any
// changes already buffered: per spec §4.2, turning collection back on
// later must start from an empty buffer rather than resume a stale one.
func (s *keyedStore[K, V]) disableChangeCollection() {
	s.enabled = false
	s.builder.Clear()
}

func (s *keyedStore[K, V]) isChangeCollectionEnabled() bool { return s.enabled }
func (s *keyedStore[K, V]) isDirty() bool                   { return s.dirty }

func (s *keyedStore[K, V]) captureChangesAndClean(reuseBuffer bool) changeset.KeyedChangeSet[K, V] {
	cs := s.builder.BuildAndClear(reuseBuffer)
	s.dirty = false
	return cs
}

func (s *keyedStore[K, V]) findKey(key K) (K, bool) {
	if s.keyEquals == nil {
		if _, ok := s.items[key]; ok {
			return key, true
		}
		var zero K
		return zero, false
	}
	for existing := range s.items {
		if s.keyEquals(existing, key) {
			return existing, true
		}
	}
	var zero K
	return zero, false
}

func (s *keyedStore[K, V]) containsKey(key K) bool {
	_, found := s.findKey(key)
	return found
}

func (s *keyedStore[K, V]) tryGetValue(key K) (V, bool) {
	stored, found := s.findKey(key)
	if !found {
		var zero V
		return zero, false
	}
	return s.items[stored], true
}

// get is the indexer-get from spec.md §7: errs.ErrKeyNotFound if key is
// absent, rather than TryGetValue's ok-boolean form.
func (s *keyedStore[K, V]) get(key K) (V, error) {
	value, found := s.tryGetValue(key)
	if !found {
		var zero V
		return zero, errs.KeyNotFound(key)
	}
	return value, nil
}

func (s *keyedStore[K, V]) count() int { return len(s.items) }

func (s *keyedStore[K, V]) keys() []K {
	out := make([]K, 0, len(s.items))
	for key := range s.items {
		out = append(out, key)
	}
	return out
}

func (s *keyedStore[K, V]) values() []V {
	out := make([]V, 0, len(s.items))
	for _, value := range s.items {
		out = append(out, value)
	}
	return out
}

func (s *keyedStore[K, V]) forEach(fn func(key K, value V)) {
	for key, value := range s.items {
		fn(key, value)
	}
}

func (s *keyedStore[K, V]) add(key K, value V) error {
	if s.containsKey(key) {
		return errs.DuplicateKey(key)
	}
	s.insert(key, value)
	return nil
}

// addOrReplace inserts key/value, or replaces the existing value under
// key. A replacement that carries a value equal to the one already stored
// is suppressed: no change is recorded and the method reports no change.
func (s *keyedStore[K, V]) addOrReplace(key K, value V) bool {
	stored, found := s.findKey(key)
	if !found {
		s.insert(key, value)
		return true
	}
	old := s.items[stored]
	if s.valueEquals(old, value) {
		return false
	}
	delete(s.items, stored)
	s.items[key] = value
	s.recordChange(change.NewKeyedReplacement(key, old, value))
	s.dirty = true
	return true
}

func (s *keyedStore[K, V]) remove(key K) bool {
	stored, found := s.findKey(key)
	if !found {
		return false
	}
	s.delete(stored)
	return true
}

// removeValue removes key only if its current value equals value,
// reporting whether the removal happened.
func (s *keyedStore[K, V]) removeValue(key K, value V) bool {
	stored, found := s.findKey(key)
	if !found {
		return false
	}
	if !s.valueEquals(s.items[stored], value) {
		return false
	}
	s.delete(stored)
	return true
}

func (s *keyedStore[K, V]) clear() {
	if len(s.items) == 0 {
		return
	}
	for key, value := range s.items {
		s.recordChange(change.NewKeyedRemoval(key, value))
	}
	s.items = make(map[K]V)
	s.onCleared()
	s.dirty = true
}

func (s *keyedStore[K, V]) addOrReplaceRange(items map[K]V) {
	for key, value := range items {
		s.addOrReplace(key, value)
	}
}

// reset replaces the store's contents with items: clear followed by
// re-adding, matching List.Reset. onCleared is signalled explicitly rather
// than relying on clear alone, since clear is a no-op when the store is
// already empty and the classifier still needs the source-cleared
// transition to derive Clear or Reset instead of Update.
func (s *keyedStore[K, V]) reset(items map[K]V) {
	s.clear()
	s.onCleared()
	for key, value := range items {
		s.addOrReplace(key, value)
	}
}

func (s *keyedStore[K, V]) insert(key K, value V) {
	s.items[key] = value
	s.recordChange(change.NewKeyedAddition(key, value))
	s.dirty = true
}

func (s *keyedStore[K, V]) delete(key K) {
	value := s.items[key]
	delete(s.items, key)
	s.recordChange(change.NewKeyedRemoval(key, value))
	s.dirty = true
	if len(s.items) == 0 {
		s.onCleared()
	}
}

func (s *keyedStore[K, V]) recordChange(c change.KeyedChange[K, V]) {
	if s.enabled {
		s.builder.AddChange(c)
	}
}

func (s *keyedStore[K, V]) onCleared() {
	if s.enabled {
		s.builder.OnSourceCleared()
	}
}

// Dictionary is the change-tracking engine behind a keyed collection where
// the caller supplies the key explicitly on every mutation.
type Dictionary[K comparable, V any] struct {
	store *keyedStore[K, V]
}

// NewDictionary returns an empty Dictionary using K's native equality and
// github.com/google/go-cmp's structural equality for value comparisons.
func NewDictionary[K comparable, V any]() *Dictionary[K, V] {
	return &Dictionary[K, V]{store: newKeyedStore[K, V](nil, nil)}
}

// NewDictionaryWithEquality returns an empty Dictionary with custom key
// and/or value equality. Either argument may be nil to keep the default
// for that axis.
func NewDictionaryWithEquality[K comparable, V any](keyEquals func(a, b K) bool, valueEquals func(a, b V) bool) *Dictionary[K, V] {
	return &Dictionary[K, V]{store: newKeyedStore[K, V](keyEquals, valueEquals)}
}

func (d *Dictionary[K, V]) EnableChangeCollection()  { d.store.enableChangeCollection() }
func (d *Dictionary[K, V]) DisableChangeCollection() { d.store.disableChangeCollection() }
func (d *Dictionary[K, V]) IsChangeCollectionEnabled() bool {
	return d.store.isChangeCollectionEnabled()
}
func (d *Dictionary[K, V]) IsDirty() bool { return d.store.isDirty() }

func (d *Dictionary[K, V]) CaptureChangesAndClean(reuseBuffer bool) changeset.KeyedChangeSet[K, V] {
	return d.store.captureChangesAndClean(reuseBuffer)
}

// KeyEquals reports whether a and b are the same key under this
// dictionary's key-equality relation (native == if none was supplied).
func (d *Dictionary[K, V]) KeyEquals(a, b K) bool {
	if d.store.keyEquals == nil {
		return a == b
	}
	return d.store.keyEquals(a, b)
}

func (d *Dictionary[K, V]) ContainsKey(key K) bool      { return d.store.containsKey(key) }
func (d *Dictionary[K, V]) TryGetValue(key K) (V, bool) { return d.store.tryGetValue(key) }

// Get is the indexer-get form: it returns errs.ErrKeyNotFound rather than
// an ok-boolean when key is absent.
func (d *Dictionary[K, V]) Get(key K) (V, error)            { return d.store.get(key) }
func (d *Dictionary[K, V]) Count() int                      { return d.store.count() }
func (d *Dictionary[K, V]) Keys() []K                       { return d.store.keys() }
func (d *Dictionary[K, V]) Values() []V                     { return d.store.values() }
func (d *Dictionary[K, V]) ForEach(fn func(key K, value V)) { d.store.forEach(fn) }

// Add inserts key/value. It returns errs.ErrDuplicateKey if key is already
// present.
func (d *Dictionary[K, V]) Add(key K, value V) error { return d.store.add(key, value) }

// AddOrReplace inserts key/value, or replaces the existing value under
// key, reporting whether the dictionary changed. A replacement with a
// value equal to the one already stored is a no-op.
func (d *Dictionary[K, V]) AddOrReplace(key K, value V) bool { return d.store.addOrReplace(key, value) }

// Remove deletes key if present, reporting whether the dictionary changed.
func (d *Dictionary[K, V]) Remove(key K) bool { return d.store.remove(key) }

// RemoveValue deletes key only if its current value equals value,
// reporting whether the removal happened.
func (d *Dictionary[K, V]) RemoveValue(key K, value V) bool { return d.store.removeValue(key, value) }

// Clear removes every entry.
func (d *Dictionary[K, V]) Clear() { d.store.clear() }

// AddOrReplaceRange calls AddOrReplace for every entry in items.
func (d *Dictionary[K, V]) AddOrReplaceRange(items map[K]V) { d.store.addOrReplaceRange(items) }

// Reset replaces the dictionary's contents with items.
func (d *Dictionary[K, V]) Reset(items map[K]V) { d.store.reset(items) }
