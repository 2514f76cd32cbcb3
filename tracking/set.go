package tracking

import (
	"github.com/reactivemarbles/DynamicDataVNext/change"
	"github.com/reactivemarbles/DynamicDataVNext/changeset"
)

// Set is the change-tracking engine behind a distinct-element collection.
// It behaves like a Go set backed by map[T]struct{}, recording every
// mutation as a change.DistinctChange while change collection is enabled.
type Set[T comparable] struct {
	items   map[T]struct{}
	equals  func(a, b T) bool
	builder *changeset.DistinctChangeSetBuilder[T]
	enabled bool
	dirty   bool
}

// NewSet returns an empty Set using T's native equality.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{
		items:   make(map[T]struct{}),
		builder: changeset.NewDistinctChangeSetBuilder[T](),
	}
}

// NewSetWithEquality returns an empty Set that uses equals, rather than
// native ==, for every membership test. Lookups against a custom equality
// fall back to a linear scan; see the tracking package doc comment.
func NewSetWithEquality[T comparable](equals func(a, b T) bool) *Set[T] {
	s := NewSet[T]()
	s.equals = equals
	return s
}

// EnableChangeCollection starts recording mutations as atomic changes.
func (s *Set[T]) EnableChangeCollection() {
	s.enabled = true
}

// DisableChangeCollection stops recording mutations and discards any
// changes already buffered: per spec §4.2, turning collection back on
// later must start from an empty buffer rather than resume a stale one.
func (s *Set[T]) DisableChangeCollection() {
	s.enabled = false
	s.builder.Clear()
}

// IsChangeCollectionEnabled reports whether mutations are being recorded.
func (s *Set[T]) IsChangeCollectionEnabled() bool {
	return s.enabled
}

// IsDirty reports whether the set has mutated since the last
// CaptureChangesAndClean, independent of whether change collection is
// enabled.
func (s *Set[T]) IsDirty() bool {
	return s.dirty
}

// CaptureChangesAndClean returns the accumulated change set and resets the
// builder and dirty flag, following changeset.DistinctChangeSetBuilder's
// reuseBuffer contract.
func (s *Set[T]) CaptureChangesAndClean(reuseBuffer bool) changeset.DistinctChangeSet[T] {
	cs := s.builder.BuildAndClear(reuseBuffer)
	s.dirty = false
	return cs
}

// Contains reports whether item is a member of the set.
func (s *Set[T]) Contains(item T) bool {
	_, found := s.find(item)
	return found
}

// Count reports the number of elements in the set.
func (s *Set[T]) Count() int {
	return len(s.items)
}

// Items returns a freshly allocated snapshot of the set's elements.
func (s *Set[T]) Items() []T {
	out := make([]T, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	return out
}

// ForEach calls fn once for every element currently in the set.
func (s *Set[T]) ForEach(fn func(item T)) {
	for item := range s.items {
		fn(item)
	}
}

// Add inserts item if it is not already present. It reports whether the
// set changed.
func (s *Set[T]) Add(item T) bool {
	if _, found := s.find(item); found {
		return false
	}
	s.insert(item)
	return true
}

// Remove deletes item if present. It reports whether the set changed.
func (s *Set[T]) Remove(item T) bool {
	stored, found := s.find(item)
	if !found {
		return false
	}
	s.delete(stored)
	return true
}

// Clear removes every element.
func (s *Set[T]) Clear() {
	if len(s.items) == 0 {
		return
	}
	for item := range s.items {
		s.recordChange(change.NewDistinctRemoval(item))
	}
	s.items = make(map[T]struct{})
	s.onCleared()
	s.dirty = true
}

// UnionWith adds every element of items not already present. It reports
// whether the set changed.
func (s *Set[T]) UnionWith(items []T) bool {
	changed := false
	for _, item := range items {
		if s.Add(item) {
			changed = true
		}
	}
	return changed
}

// ExceptWith removes every element of items that is present. It reports
// whether the set changed.
func (s *Set[T]) ExceptWith(items []T) bool {
	changed := false
	for _, item := range items {
		if s.Remove(item) {
			changed = true
		}
	}
	return changed
}

// IntersectWith removes every element not present in items. It reports
// whether the set changed.
func (s *Set[T]) IntersectWith(items []T) bool {
	member := s.membershipTest(items)
	var toRemove []T
	for existing := range s.items {
		if !member(existing) {
			toRemove = append(toRemove, existing)
		}
	}
	for _, item := range toRemove {
		s.Remove(item)
	}
	return len(toRemove) > 0
}

// SymmetricExceptWith removes elements that are members of both the set
// and items, and adds elements of items that are not already members —
// the symmetric difference. It reports whether the set changed.
func (s *Set[T]) SymmetricExceptWith(items []T) bool {
	changed := false
	var seen []T
	for _, item := range items {
		if s.containsSlice(seen, item) {
			continue
		}
		seen = append(seen, item)
		if _, found := s.find(item); found {
			s.Remove(item)
		} else {
			s.Add(item)
		}
		changed = true
	}
	return changed
}

// Reset replaces the set's contents with items: Clear followed by
// re-adding, matching List.Reset. onCleared is signalled explicitly rather
// than relying on Clear alone, since Clear is a no-op when the set is
// already empty and the classifier still needs the source-cleared
// transition to derive Clear or Reset instead of Update.
func (s *Set[T]) Reset(items []T) {
	s.Clear()
	s.onCleared()
	for _, item := range items {
		s.Add(item)
	}
}

func (s *Set[T]) find(item T) (T, bool) {
	if s.equals == nil {
		if _, ok := s.items[item]; ok {
			return item, true
		}
		var zero T
		return zero, false
	}
	for existing := range s.items {
		if s.equals(existing, item) {
			return existing, true
		}
	}
	var zero T
	return zero, false
}

func (s *Set[T]) containsSlice(items []T, item T) bool {
	if s.equals == nil {
		for _, it := range items {
			if it == item {
				return true
			}
		}
		return false
	}
	for _, it := range items {
		if s.equals(it, item) {
			return true
		}
	}
	return false
}

// membershipTest returns a predicate testing membership in items. With
// native equality it precomputes a lookup map for O(1) tests; with a
// custom equality function it falls back to a linear scan per test.
func (s *Set[T]) membershipTest(items []T) func(T) bool {
	if s.equals == nil {
		lookup := make(map[T]struct{}, len(items))
		for _, item := range items {
			lookup[item] = struct{}{}
		}
		return func(item T) bool {
			_, ok := lookup[item]
			return ok
		}
	}
	return func(item T) bool {
		return s.containsSlice(items, item)
	}
}

func (s *Set[T]) insert(item T) {
	s.items[item] = struct{}{}
	s.recordChange(change.NewDistinctAddition(item))
	s.dirty = true
}

func (s *Set[T]) delete(item T) {
	delete(s.items, item)
	s.recordChange(change.NewDistinctRemoval(item))
	s.dirty = true
	if len(s.items) == 0 {
		s.onCleared()
	}
}

func (s *Set[T]) recordChange(c change.DistinctChange[T]) {
	if s.enabled {
		s.builder.AddChange(c)
	}
}

func (s *Set[T]) onCleared() {
	if s.enabled {
		s.builder.OnSourceCleared()
	}
}
