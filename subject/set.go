package subject

import (
	"github.com/reactivemarbles/DynamicDataVNext/change"
	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/reactive"
	"github.com/reactivemarbles/DynamicDataVNext/tracking"
)

// SubjectSet wraps a tracking.Set and publishes every mutation as a
// change.DistinctChange stream.
type SubjectSet[T comparable] struct {
	set  *tracking.Set[T]
	core *core[changeset.DistinctChangeSet[T]]
}

// NewSubjectSet returns an empty SubjectSet using T's native equality.
func NewSubjectSet[T comparable]() *SubjectSet[T] {
	return newSubjectSet(tracking.NewSet[T]())
}

// NewSubjectSetWithEquality returns an empty SubjectSet that uses equals
// for membership tests.
func NewSubjectSetWithEquality[T comparable](equals func(a, b T) bool) *SubjectSet[T] {
	return newSubjectSet(tracking.NewSetWithEquality(equals))
}

func newSubjectSet[T comparable](set *tracking.Set[T]) *SubjectSet[T] {
	s := &SubjectSet[T]{set: set}
	s.core = newCore[changeset.DistinctChangeSet[T]](set, s.snapshot)
	return s
}

func (s *SubjectSet[T]) snapshot() changeset.DistinctChangeSet[T] {
	items := s.set.Items()
	if len(items) == 0 {
		return changeset.EmptyDistinctChangeSet[T]()
	}
	builder := changeset.NewDistinctChangeSetBuilder[T]()
	for _, item := range items {
		builder.AddChange(change.NewDistinctAddition(item))
	}
	return builder.BuildAndClear(false)
}

// Contains reports whether item is a member of the set.
func (s *SubjectSet[T]) Contains(item T) bool { return s.set.Contains(item) }

// Count reports the number of elements in the set.
func (s *SubjectSet[T]) Count() int { return s.set.Count() }

// IsDirty reports whether the set has mutated since the last publication.
func (s *SubjectSet[T]) IsDirty() bool { return s.set.IsDirty() }

// Items returns a freshly allocated snapshot of the set's elements.
func (s *SubjectSet[T]) Items() []T { return s.set.Items() }

// ForEach calls fn once for every element currently in the set.
func (s *SubjectSet[T]) ForEach(fn func(item T)) { s.set.ForEach(fn) }

// Add inserts item if not already present, publishing the resulting
// change set.
func (s *SubjectSet[T]) Add(item T) bool {
	changed := s.set.Add(item)
	s.core.PublishPendingNotifications()
	return changed
}

// Remove deletes item if present, publishing the resulting change set.
func (s *SubjectSet[T]) Remove(item T) bool {
	changed := s.set.Remove(item)
	s.core.PublishPendingNotifications()
	return changed
}

// Clear removes every element, publishing the resulting change set.
func (s *SubjectSet[T]) Clear() {
	s.set.Clear()
	s.core.PublishPendingNotifications()
}

// UnionWith adds every element of items not already present, publishing
// the resulting change set as a single batch.
func (s *SubjectSet[T]) UnionWith(items []T) bool {
	changed := s.set.UnionWith(items)
	s.core.PublishPendingNotifications()
	return changed
}

// ExceptWith removes every element of items that is present, publishing
// the resulting change set as a single batch.
func (s *SubjectSet[T]) ExceptWith(items []T) bool {
	changed := s.set.ExceptWith(items)
	s.core.PublishPendingNotifications()
	return changed
}

// IntersectWith removes every element not present in items, publishing
// the resulting change set as a single batch.
func (s *SubjectSet[T]) IntersectWith(items []T) bool {
	changed := s.set.IntersectWith(items)
	s.core.PublishPendingNotifications()
	return changed
}

// SymmetricExceptWith computes the symmetric difference with items,
// publishing the resulting change set as a single batch.
func (s *SubjectSet[T]) SymmetricExceptWith(items []T) bool {
	changed := s.set.SymmetricExceptWith(items)
	s.core.PublishPendingNotifications()
	return changed
}

// Reset replaces the set's contents with items, publishing the resulting
// change set as a single batch.
func (s *SubjectSet[T]) Reset(items []T) {
	s.set.Reset(items)
	s.core.PublishPendingNotifications()
}

// Subscribe joins the change-set stream. The first delivered value is a
// synthesised change set describing the set's current contents.
func (s *SubjectSet[T]) Subscribe(observer reactive.Observer[changeset.DistinctChangeSet[T]]) reactive.Disposable {
	return s.core.Subscribe(observer)
}

// CollectionChanged emits a tick whenever a notification batch is about
// to be published.
func (s *SubjectSet[T]) CollectionChanged() reactive.Observable[reactive.Unit] {
	return s.core.CollectionChanged()
}

// SuspendNotifications defers publication until every returned handle has
// been disposed.
func (s *SubjectSet[T]) SuspendNotifications() reactive.Disposable {
	return s.core.SuspendNotifications()
}

// Dispose completes every stream this subject owns.
func (s *SubjectSet[T]) Dispose() {
	s.core.Dispose()
}
