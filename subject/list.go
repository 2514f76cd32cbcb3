package subject

import (
	"github.com/reactivemarbles/DynamicDataVNext/change"
	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/reactive"
	"github.com/reactivemarbles/DynamicDataVNext/tracking"
)

// SubjectList wraps a tracking.List and publishes every mutation as a
// change.SortedChange stream.
type SubjectList[T any] struct {
	list *tracking.List[T]
	core *core[changeset.SortedChangeSet[T]]
}

// NewSubjectList returns an empty SubjectList using structural equality
// to detect no-op replacements.
func NewSubjectList[T any]() *SubjectList[T] {
	return newSubjectList(tracking.NewList[T]())
}

// NewSubjectListWithEquality returns an empty SubjectList that uses
// equals to detect no-op replacements and implement Remove by value.
func NewSubjectListWithEquality[T any](equals func(a, b T) bool) *SubjectList[T] {
	return newSubjectList(tracking.NewListWithEquality(equals))
}

func newSubjectList[T any](list *tracking.List[T]) *SubjectList[T] {
	l := &SubjectList[T]{list: list}
	l.core = newCore[changeset.SortedChangeSet[T]](list, l.snapshot)
	return l
}

func (l *SubjectList[T]) snapshot() changeset.SortedChangeSet[T] {
	items := l.list.Items()
	if len(items) == 0 {
		return changeset.EmptySortedChangeSet[T]()
	}
	builder := changeset.NewSortedChangeSetBuilder[T]()
	for index, item := range items {
		builder.AddChange(change.NewSortedInsertion(index, item))
	}
	return builder.BuildAndClear(false)
}

func (l *SubjectList[T]) At(index int) (T, error)            { return l.list.At(index) }
func (l *SubjectList[T]) Count() int                         { return l.list.Count() }
func (l *SubjectList[T]) IsDirty() bool                      { return l.list.IsDirty() }
func (l *SubjectList[T]) Items() []T                         { return l.list.Items() }
func (l *SubjectList[T]) ForEach(fn func(index int, item T)) { l.list.ForEach(fn) }

// Add appends item, publishing the resulting change set.
func (l *SubjectList[T]) Add(item T) {
	l.list.Add(item)
	l.core.PublishPendingNotifications()
}

// Insert places item at index, publishing the resulting change set.
func (l *SubjectList[T]) Insert(index int, item T) error {
	err := l.list.Insert(index, item)
	l.core.PublishPendingNotifications()
	return err
}

// AddRange appends every item in items, publishing the combined result as
// a single batch.
func (l *SubjectList[T]) AddRange(items []T) {
	l.list.AddRange(items)
	l.core.PublishPendingNotifications()
}

// InsertRange places every item in items starting at index, publishing
// the combined result as a single batch.
func (l *SubjectList[T]) InsertRange(index int, items []T) error {
	err := l.list.InsertRange(index, items)
	l.core.PublishPendingNotifications()
	return err
}

// RemoveAt removes the item at index, publishing the resulting change
// set.
func (l *SubjectList[T]) RemoveAt(index int) error {
	err := l.list.RemoveAt(index)
	l.core.PublishPendingNotifications()
	return err
}

// Remove removes the first item equal to item, publishing the resulting
// change set.
func (l *SubjectList[T]) Remove(item T) bool {
	removed := l.list.Remove(item)
	l.core.PublishPendingNotifications()
	return removed
}

// RemoveRange removes count items starting at index, publishing the
// combined result as a single batch.
func (l *SubjectList[T]) RemoveRange(index, count int) error {
	err := l.list.RemoveRange(index, count)
	l.core.PublishPendingNotifications()
	return err
}

// Set replaces the item at index, publishing the resulting change set. A
// replacement equal to the item already stored there is a no-op.
func (l *SubjectList[T]) Set(index int, item T) error {
	err := l.list.Set(index, item)
	l.core.PublishPendingNotifications()
	return err
}

// Move relocates the item at oldIndex to newIndex, publishing the
// resulting change set.
func (l *SubjectList[T]) Move(oldIndex, newIndex int) error {
	err := l.list.Move(oldIndex, newIndex)
	l.core.PublishPendingNotifications()
	return err
}

// Clear removes every item, publishing the resulting change set.
func (l *SubjectList[T]) Clear() {
	l.list.Clear()
	l.core.PublishPendingNotifications()
}

// Reset replaces the list's contents with items, publishing the
// resulting change set as a single batch.
func (l *SubjectList[T]) Reset(items []T) {
	l.list.Reset(items)
	l.core.PublishPendingNotifications()
}

// Subscribe joins the change-set stream. The first delivered value is a
// synthesised change set describing the list's current contents.
func (l *SubjectList[T]) Subscribe(observer reactive.Observer[changeset.SortedChangeSet[T]]) reactive.Disposable {
	return l.core.Subscribe(observer)
}

// CollectionChanged emits a tick whenever a notification batch is about
// to be published.
func (l *SubjectList[T]) CollectionChanged() reactive.Observable[reactive.Unit] {
	return l.core.CollectionChanged()
}

// SuspendNotifications defers publication until every returned handle has
// been disposed.
func (l *SubjectList[T]) SuspendNotifications() reactive.Disposable {
	return l.core.SuspendNotifications()
}

// Dispose completes every stream this subject owns.
func (l *SubjectList[T]) Dispose() {
	l.core.Dispose()
}

// ObserveValue streams the value at index: immediately if index is
// currently in bounds, then on every subsequent change that leaves the
// value at index different from the last one emitted, completing when
// index falls out of bounds or the collection is cleared. If index is not
// currently in bounds, the stream completes immediately without
// emitting. If publication is suspended when ObserveValue is called,
// delivery (including the bounds check) is deferred until the suspension
// ends.
func (l *SubjectList[T]) ObserveValue(index int) reactive.Observable[T] {
	return reactive.Switch[T](reactive.Select[reactive.Unit, reactive.Observable[T]](
		l.core.readySignal(),
		func(reactive.Unit) reactive.Observable[T] { return l.observeValueNow(index) },
	))
}

func (l *SubjectList[T]) observeValueNow(index int) reactive.Observable[T] {
	l.list.EnableChangeCollection()
	value, err := l.list.At(index)
	if err != nil {
		return reactive.Empty[T]()
	}

	last := value
	live := reactive.ObservableFunc[T](func(observer reactive.Observer[T]) reactive.Disposable {
		var sub reactive.Disposable
		sub = l.core.subscribeToChanges().Subscribe(reactive.NewObserver(
			func(cs changeset.SortedChangeSet[T]) {
				if cs.Type() == changeset.Clear {
					observer.OnCompleted()
					if sub != nil {
						sub.Dispose()
					}
					return
				}
				v, err := l.list.At(index)
				if err != nil {
					observer.OnCompleted()
					if sub != nil {
						sub.Dispose()
					}
					return
				}
				if !l.list.Equals(last, v) {
					last = v
					observer.OnNext(v)
				}
			},
			observer.OnError,
			observer.OnCompleted,
		))
		return sub
	})

	return reactive.Prepend[T](live, value)
}
