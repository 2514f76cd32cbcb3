package changeset

import "github.com/reactivemarbles/DynamicDataVNext/change"

// KeyedChangeSet is an immutable, ordered batch of change.KeyedChange
// values together with its classification.
type KeyedChangeSet[K, V any] struct {
	changes []change.KeyedChange[K, V]
	typ     Type
}

// EmptyKeyedChangeSet returns the distinguished zero-change set.
func EmptyKeyedChangeSet[K, V any]() KeyedChangeSet[K, V] {
	return KeyedChangeSet[K, V]{}
}

// Type reports this set's classification.
func (cs KeyedChangeSet[K, V]) Type() Type {
	return cs.typ
}

// Changes returns the ordered atomic changes. Callers must not mutate the
// returned slice.
func (cs KeyedChangeSet[K, V]) Changes() []change.KeyedChange[K, V] {
	return cs.changes
}

// Len reports the number of atomic changes in this set.
func (cs KeyedChangeSet[K, V]) Len() int {
	return len(cs.changes)
}

// IsEmpty reports whether this is the distinguished empty change set.
func (cs KeyedChangeSet[K, V]) IsEmpty() bool {
	return len(cs.changes) == 0
}

// KeyedChangeSetBuilder accumulates change.KeyedChange values and infers
// the resulting KeyedChangeSet's Type automatically.
type KeyedChangeSetBuilder[K, V any] struct {
	classifier
	changes []change.KeyedChange[K, V]
}

// NewKeyedChangeSetBuilder returns an empty builder.
func NewKeyedChangeSetBuilder[K, V any]() *KeyedChangeSetBuilder[K, V] {
	return &KeyedChangeSetBuilder[K, V]{}
}

// EnsureCapacity grows the internal buffer so that at least n more changes
// can be appended without reallocating. It is a hint only.
func (b *KeyedChangeSetBuilder[K, V]) EnsureCapacity(n int) {
	if n <= 0 {
		return
	}
	if cap(b.changes)-len(b.changes) >= n {
		return
	}
	grown := make([]change.KeyedChange[K, V], len(b.changes), len(b.changes)+n)
	copy(grown, b.changes)
	b.changes = grown
}

// Capacity reports the buffer's current capacity.
func (b *KeyedChangeSetBuilder[K, V]) Capacity() int {
	return cap(b.changes)
}

// Count reports the number of buffered changes.
func (b *KeyedChangeSetBuilder[K, V]) Count() int {
	return len(b.changes)
}

// AddChange appends c to the buffer and updates the classification state.
func (b *KeyedChangeSetBuilder[K, V]) AddChange(c change.KeyedChange[K, V]) {
	b.observe(c.IsRemoval(), c.IsAdditionLike())
	b.changes = append(b.changes, c)
}

// OnSourceCleared signals that the mutation just recorded emptied the
// source collection, refining the classification per spec §4.1.1.
func (b *KeyedChangeSetBuilder[K, V]) OnSourceCleared() {
	b.onSourceCleared()
}

// Clear drops all buffered changes and classification state without
// producing a change set.
func (b *KeyedChangeSetBuilder[K, V]) Clear() {
	b.changes = b.changes[:0]
	b.reset()
}

// BuildAndClear returns the assembled change set and resets the builder to
// empty, following the same reuseBuffer contract as
// DistinctChangeSetBuilder.BuildAndClear.
func (b *KeyedChangeSetBuilder[K, V]) BuildAndClear(reuseBuffer bool) KeyedChangeSet[K, V] {
	if b.isEmpty() {
		return EmptyKeyedChangeSet[K, V]()
	}

	typ := b.publicType()
	var changes []change.KeyedChange[K, V]
	if reuseBuffer {
		changes = make([]change.KeyedChange[K, V], len(b.changes))
		copy(changes, b.changes)
		b.changes = b.changes[:0]
	} else {
		changes = b.changes
		b.changes = nil
	}

	b.reset()
	return KeyedChangeSet[K, V]{changes: changes, typ: typ}
}
