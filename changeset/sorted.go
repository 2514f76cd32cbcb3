package changeset

import "github.com/reactivemarbles/DynamicDataVNext/change"

// SortedChangeSet is an immutable, ordered batch of change.SortedChange
// values together with its classification.
type SortedChangeSet[T any] struct {
	changes []change.SortedChange[T]
	typ     Type
}

// EmptySortedChangeSet returns the distinguished zero-change set.
func EmptySortedChangeSet[T any]() SortedChangeSet[T] {
	return SortedChangeSet[T]{}
}

// Type reports this set's classification.
func (cs SortedChangeSet[T]) Type() Type {
	return cs.typ
}

// Changes returns the ordered atomic changes. Callers must not mutate the
// returned slice.
func (cs SortedChangeSet[T]) Changes() []change.SortedChange[T] {
	return cs.changes
}

// Len reports the number of atomic changes in this set.
func (cs SortedChangeSet[T]) Len() int {
	return len(cs.changes)
}

// IsEmpty reports whether this is the distinguished empty change set.
func (cs SortedChangeSet[T]) IsEmpty() bool {
	return len(cs.changes) == 0
}

// SortedChangeSetBuilder accumulates change.SortedChange values and infers
// the resulting SortedChangeSet's Type automatically.
type SortedChangeSetBuilder[T any] struct {
	classifier
	changes []change.SortedChange[T]
}

// NewSortedChangeSetBuilder returns an empty builder.
func NewSortedChangeSetBuilder[T any]() *SortedChangeSetBuilder[T] {
	return &SortedChangeSetBuilder[T]{}
}

// EnsureCapacity grows the internal buffer so that at least n more changes
// can be appended without reallocating. It is a hint only.
func (b *SortedChangeSetBuilder[T]) EnsureCapacity(n int) {
	if n <= 0 {
		return
	}
	if cap(b.changes)-len(b.changes) >= n {
		return
	}
	grown := make([]change.SortedChange[T], len(b.changes), len(b.changes)+n)
	copy(grown, b.changes)
	b.changes = grown
}

// Capacity reports the buffer's current capacity.
func (b *SortedChangeSetBuilder[T]) Capacity() int {
	return cap(b.changes)
}

// Count reports the number of buffered changes.
func (b *SortedChangeSetBuilder[T]) Count() int {
	return len(b.changes)
}

// AddChange appends c to the buffer and updates the classification state.
func (b *SortedChangeSetBuilder[T]) AddChange(c change.SortedChange[T]) {
	b.observe(c.IsRemoval(), c.IsAdditionLike())
	b.changes = append(b.changes, c)
}

// OnSourceCleared signals that the mutation just recorded emptied the
// source collection, refining the classification per spec §4.1.1.
func (b *SortedChangeSetBuilder[T]) OnSourceCleared() {
	b.onSourceCleared()
}

// Clear drops all buffered changes and classification state without
// producing a change set.
func (b *SortedChangeSetBuilder[T]) Clear() {
	b.changes = b.changes[:0]
	b.reset()
}

// BuildAndClear returns the assembled change set and resets the builder to
// empty, following the same reuseBuffer contract as
// DistinctChangeSetBuilder.BuildAndClear.
func (b *SortedChangeSetBuilder[T]) BuildAndClear(reuseBuffer bool) SortedChangeSet[T] {
	if b.isEmpty() {
		return EmptySortedChangeSet[T]()
	}

	typ := b.publicType()
	var changes []change.SortedChange[T]
	if reuseBuffer {
		changes = make([]change.SortedChange[T], len(b.changes))
		copy(changes, b.changes)
		b.changes = b.changes[:0]
	} else {
		changes = b.changes
		b.changes = nil
	}

	b.reset()
	return SortedChangeSet[T]{changes: changes, typ: typ}
}
