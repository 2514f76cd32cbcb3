package changeset

import "github.com/reactivemarbles/DynamicDataVNext/change"

// DistinctChangeSet is an immutable, ordered batch of change.DistinctChange
// values together with its classification.
type DistinctChangeSet[T any] struct {
	changes []change.DistinctChange[T]
	typ     Type
}

// EmptyDistinctChangeSet returns the distinguished zero-change set, used
// whenever a DistinctChangeSetBuilder's buffer is empty at build time.
func EmptyDistinctChangeSet[T any]() DistinctChangeSet[T] {
	return DistinctChangeSet[T]{}
}

// Type reports this set's classification.
func (cs DistinctChangeSet[T]) Type() Type {
	return cs.typ
}

// Changes returns the ordered atomic changes. Callers must not mutate the
// returned slice.
func (cs DistinctChangeSet[T]) Changes() []change.DistinctChange[T] {
	return cs.changes
}

// Len reports the number of atomic changes in this set.
func (cs DistinctChangeSet[T]) Len() int {
	return len(cs.changes)
}

// IsEmpty reports whether this is the distinguished empty change set.
func (cs DistinctChangeSet[T]) IsEmpty() bool {
	return len(cs.changes) == 0
}

// DistinctChangeSetBuilder accumulates change.DistinctChange values and
// infers the resulting DistinctChangeSet's Type automatically.
type DistinctChangeSetBuilder[T any] struct {
	classifier
	changes []change.DistinctChange[T]
}

// NewDistinctChangeSetBuilder returns an empty builder.
func NewDistinctChangeSetBuilder[T any]() *DistinctChangeSetBuilder[T] {
	return &DistinctChangeSetBuilder[T]{}
}

// EnsureCapacity grows the internal buffer so that at least n more changes
// can be appended without reallocating. It is a hint only.
func (b *DistinctChangeSetBuilder[T]) EnsureCapacity(n int) {
	if n <= 0 {
		return
	}
	if cap(b.changes)-len(b.changes) >= n {
		return
	}
	grown := make([]change.DistinctChange[T], len(b.changes), len(b.changes)+n)
	copy(grown, b.changes)
	b.changes = grown
}

// Capacity reports the buffer's current capacity.
func (b *DistinctChangeSetBuilder[T]) Capacity() int {
	return cap(b.changes)
}

// Count reports the number of buffered changes.
func (b *DistinctChangeSetBuilder[T]) Count() int {
	return len(b.changes)
}

// AddChange appends c to the buffer and updates the classification state.
func (b *DistinctChangeSetBuilder[T]) AddChange(c change.DistinctChange[T]) {
	b.observe(c.IsRemoval(), c.IsAdditionLike())
	b.changes = append(b.changes, c)
}

// OnSourceCleared signals that the mutation just recorded emptied the
// source collection, refining the classification per spec §4.1.1.
func (b *DistinctChangeSetBuilder[T]) OnSourceCleared() {
	b.onSourceCleared()
}

// Clear drops all buffered changes and classification state without
// producing a change set.
func (b *DistinctChangeSetBuilder[T]) Clear() {
	b.changes = b.changes[:0]
	b.reset()
}

// BuildAndClear returns the assembled change set and resets the builder to
// empty. If reuseBuffer is true, the builder copies its buffer into the
// result so that it can keep using its own backing array; if false, the
// buffer's ownership transfers into the result (no copy), and the builder
// allocates a fresh one on its next AddChange.
func (b *DistinctChangeSetBuilder[T]) BuildAndClear(reuseBuffer bool) DistinctChangeSet[T] {
	if b.isEmpty() {
		return EmptyDistinctChangeSet[T]()
	}

	typ := b.publicType()
	var changes []change.DistinctChange[T]
	if reuseBuffer {
		changes = make([]change.DistinctChange[T], len(b.changes))
		copy(changes, b.changes)
		b.changes = b.changes[:0]
	} else {
		changes = b.changes
		b.changes = nil
	}

	b.reset()
	return DistinctChangeSet[T]{changes: changes, typ: typ}
}
