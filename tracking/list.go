package tracking

import (
	"github.com/reactivemarbles/DynamicDataVNext/change"
	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/errs"
)

// List is the change-tracking engine behind an index-ordered collection.
// Unlike Set, Dictionary, and Cache it carries no comparable constraint:
// it is backed by a plain slice, and equals is used only to suppress a
// no-op Set (indexer) call and to implement Remove-by-value — it never
// affects how items are stored or located by index.
type List[T any] struct {
	items   []T
	equals  func(a, b T) bool
	builder *changeset.SortedChangeSetBuilder[T]
	enabled bool
	dirty   bool
}

// NewList returns an empty List using github.com/google/go-cmp's
// structural equality to detect no-op replacements.
func NewList[T any]() *List[T] {
	return &List[T]{
		equals:  defaultEquals[T],
		builder: changeset.NewSortedChangeSetBuilder[T](),
	}
}

// NewListWithEquality returns an empty List that uses equals, rather than
// structural equality, to detect no-op replacements and to implement
// Remove by value.
func NewListWithEquality[T any](equals func(a, b T) bool) *List[T] {
	l := NewList[T]()
	l.equals = equals
	return l
}

func (l *List[T]) EnableChangeCollection() { l.enabled = true }

// DisableChangeCollection stops recording mutations and discards any
// changes already buffered: per spec §4.2, turning collection back on
// later must start from an empty buffer rather than resume a stale one.
func (l *List[T]) DisableChangeCollection() {
	l.enabled = false
	l.builder.Clear()
}
func (l *List[T]) IsChangeCollectionEnabled() bool { return l.enabled }
func (l *List[T]) IsDirty() bool                   { return l.dirty }

// CaptureChangesAndClean returns the accumulated change set and resets the
// builder and dirty flag.
func (l *List[T]) CaptureChangesAndClean(reuseBuffer bool) changeset.SortedChangeSet[T] {
	cs := l.builder.BuildAndClear(reuseBuffer)
	l.dirty = false
	return cs
}

// Equals reports whether a and b are equal under this list's equality
// relation (structural equality if none was supplied).
func (l *List[T]) Equals(a, b T) bool { return l.equals(a, b) }

// At returns the item at index, or errs.ErrIndexOutOfRange if index is out
// of bounds.
func (l *List[T]) At(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, errs.IndexOutOfRange(index, len(l.items))
	}
	return l.items[index], nil
}

// Count reports the number of items.
func (l *List[T]) Count() int { return len(l.items) }

// Items returns a freshly allocated snapshot of the list's contents, in
// order.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ForEach calls fn once per item, in index order.
func (l *List[T]) ForEach(fn func(index int, item T)) {
	for i, item := range l.items {
		fn(i, item)
	}
}

// Add appends item to the end of the list.
func (l *List[T]) Add(item T) {
	index := len(l.items)
	l.items = append(l.items, item)
	l.recordChange(change.NewSortedInsertion(index, item))
	l.dirty = true
}

// Insert places item at index, shifting everything at or after index one
// place to the right. index == Count() appends.
func (l *List[T]) Insert(index int, item T) error {
	if index < 0 || index > len(l.items) {
		return errs.IndexOutOfRange(index, len(l.items))
	}
	l.insertAt(index, item)
	l.recordChange(change.NewSortedInsertion(index, item))
	l.dirty = true
	return nil
}

// AddRange appends every item in items, in order.
func (l *List[T]) AddRange(items []T) {
	for _, item := range items {
		l.Add(item)
	}
}

// InsertRange places every item in items starting at index, preserving
// their relative order.
func (l *List[T]) InsertRange(index int, items []T) error {
	if index < 0 || index > len(l.items) {
		return errs.IndexOutOfRange(index, len(l.items))
	}
	for i, item := range items {
		at := index + i
		l.insertAt(at, item)
		l.recordChange(change.NewSortedInsertion(at, item))
	}
	if len(items) > 0 {
		l.dirty = true
	}
	return nil
}

// RemoveAt removes the item at index.
func (l *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= len(l.items) {
		return errs.IndexOutOfRange(index, len(l.items))
	}
	l.removeAt(index)
	l.dirty = true
	return nil
}

// Remove removes the first item equal to item, reporting whether anything
// was removed.
func (l *List[T]) Remove(item T) bool {
	for i, existing := range l.items {
		if l.equals(existing, item) {
			l.removeAt(i)
			l.dirty = true
			return true
		}
	}
	return false
}

// RemoveRange removes count items starting at index. Changes are recorded
// in descending index order, so that each emitted removal index is still
// valid against the list as it existed immediately before that removal.
// It returns errs.ErrInvalidArgument if the span runs past the end of the
// list.
func (l *List[T]) RemoveRange(index, count int) error {
	if index < 0 || count < 0 || index+count > len(l.items) {
		return errs.InvalidArgument("RemoveRange span is out of bounds")
	}
	if count == 0 {
		return nil
	}
	for i := index + count - 1; i >= index; i-- {
		l.removeAt(i)
	}
	l.dirty = true
	return nil
}

// Set replaces the item at index. A replacement equal to the item already
// stored there is a no-op. index == Count() appends, matching Insert.
func (l *List[T]) Set(index int, item T) error {
	if index < 0 || index > len(l.items) {
		return errs.IndexOutOfRange(index, len(l.items))
	}
	if index == len(l.items) {
		l.items = append(l.items, item)
		l.recordChange(change.NewSortedInsertion(index, item))
		l.dirty = true
		return nil
	}
	old := l.items[index]
	if l.equals(old, item) {
		return nil
	}
	l.items[index] = item
	l.recordChange(change.NewSortedReplacement(index, old, item))
	l.dirty = true
	return nil
}

// Move relocates the item at oldIndex to newIndex, shifting the items
// between the two positions accordingly.
func (l *List[T]) Move(oldIndex, newIndex int) error {
	n := len(l.items)
	if oldIndex < 0 || oldIndex >= n {
		return errs.IndexOutOfRange(oldIndex, n)
	}
	if newIndex < 0 || newIndex >= n {
		return errs.IndexOutOfRange(newIndex, n)
	}
	if oldIndex == newIndex {
		return nil
	}
	item := l.items[oldIndex]
	l.items = append(l.items[:oldIndex], l.items[oldIndex+1:]...)
	l.insertAt(newIndex, item)
	l.recordChange(change.NewSortedMovement(oldIndex, newIndex, item))
	l.dirty = true
	return nil
}

// Clear removes every item.
func (l *List[T]) Clear() {
	if len(l.items) == 0 {
		return
	}
	for i := len(l.items) - 1; i >= 0; i-- {
		l.recordChange(change.NewSortedRemoval(i, l.items[i]))
	}
	l.items = nil
	l.onCleared()
	l.dirty = true
}

// Reset replaces the list's contents with items. No-op computation of a
// minimal diff is out of scope: Reset always clears and re-adds. onCleared
// is signalled explicitly rather than relying on Clear alone, since Clear
// is a no-op when the list is already empty and the classifier still
// needs the source-cleared transition to derive Clear or Reset instead of
// Update.
func (l *List[T]) Reset(items []T) {
	l.Clear()
	l.onCleared()
	l.AddRange(items)
}

func (l *List[T]) insertAt(index int, item T) {
	l.items = append(l.items, item)
	copy(l.items[index+1:], l.items[index:len(l.items)-1])
	l.items[index] = item
}

func (l *List[T]) removeAt(index int) {
	item := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.recordChange(change.NewSortedRemoval(index, item))
	if len(l.items) == 0 {
		l.onCleared()
	}
}

func (l *List[T]) recordChange(c change.SortedChange[T]) {
	if l.enabled {
		l.builder.AddChange(c)
	}
}

func (l *List[T]) onCleared() {
	if l.enabled {
		l.builder.OnSourceCleared()
	}
}
