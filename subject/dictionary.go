package subject

import (
	"github.com/reactivemarbles/DynamicDataVNext/change"
	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/reactive"
	"github.com/reactivemarbles/DynamicDataVNext/tracking"
)

// SubjectDictionary wraps a tracking.Dictionary and publishes every
// mutation as a change.KeyedChange stream.
type SubjectDictionary[K comparable, V any] struct {
	dict *tracking.Dictionary[K, V]
	core *core[changeset.KeyedChangeSet[K, V]]
}

// NewSubjectDictionary returns an empty SubjectDictionary using K's
// native equality and structural value equality.
func NewSubjectDictionary[K comparable, V any]() *SubjectDictionary[K, V] {
	return newSubjectDictionary(tracking.NewDictionary[K, V]())
}

// NewSubjectDictionaryWithEquality returns an empty SubjectDictionary
// with custom key and/or value equality.
func NewSubjectDictionaryWithEquality[K comparable, V any](keyEquals func(a, b K) bool, valueEquals func(a, b V) bool) *SubjectDictionary[K, V] {
	return newSubjectDictionary(tracking.NewDictionaryWithEquality[K, V](keyEquals, valueEquals))
}

func newSubjectDictionary[K comparable, V any](dict *tracking.Dictionary[K, V]) *SubjectDictionary[K, V] {
	d := &SubjectDictionary[K, V]{dict: dict}
	d.core = newCore[changeset.KeyedChangeSet[K, V]](dict, d.snapshot)
	return d
}

func (d *SubjectDictionary[K, V]) snapshot() changeset.KeyedChangeSet[K, V] {
	keys := d.dict.Keys()
	if len(keys) == 0 {
		return changeset.EmptyKeyedChangeSet[K, V]()
	}
	builder := changeset.NewKeyedChangeSetBuilder[K, V]()
	for _, key := range keys {
		value, _ := d.dict.TryGetValue(key)
		builder.AddChange(change.NewKeyedAddition(key, value))
	}
	return builder.BuildAndClear(false)
}

func (d *SubjectDictionary[K, V]) ContainsKey(key K) bool          { return d.dict.ContainsKey(key) }
func (d *SubjectDictionary[K, V]) TryGetValue(key K) (V, bool)     { return d.dict.TryGetValue(key) }
func (d *SubjectDictionary[K, V]) Get(key K) (V, error)            { return d.dict.Get(key) }
func (d *SubjectDictionary[K, V]) Count() int                      { return d.dict.Count() }
func (d *SubjectDictionary[K, V]) IsDirty() bool                   { return d.dict.IsDirty() }
func (d *SubjectDictionary[K, V]) Keys() []K                       { return d.dict.Keys() }
func (d *SubjectDictionary[K, V]) Values() []V                     { return d.dict.Values() }
func (d *SubjectDictionary[K, V]) ForEach(fn func(key K, value V)) { d.dict.ForEach(fn) }

// Add inserts key/value, publishing the resulting change set. It returns
// errs.ErrDuplicateKey if key is already present.
func (d *SubjectDictionary[K, V]) Add(key K, value V) error {
	err := d.dict.Add(key, value)
	d.core.PublishPendingNotifications()
	return err
}

// AddOrReplace inserts key/value, or replaces the existing value under
// key, publishing the resulting change set. A replacement with a value
// equal to the one already stored is a no-op and publishes nothing.
func (d *SubjectDictionary[K, V]) AddOrReplace(key K, value V) bool {
	changed := d.dict.AddOrReplace(key, value)
	d.core.PublishPendingNotifications()
	return changed
}

// Remove deletes key if present, publishing the resulting change set.
func (d *SubjectDictionary[K, V]) Remove(key K) bool {
	changed := d.dict.Remove(key)
	d.core.PublishPendingNotifications()
	return changed
}

// RemoveValue deletes key only if its current value equals value,
// publishing the resulting change set.
func (d *SubjectDictionary[K, V]) RemoveValue(key K, value V) bool {
	changed := d.dict.RemoveValue(key, value)
	d.core.PublishPendingNotifications()
	return changed
}

// Clear removes every entry, publishing the resulting change set.
func (d *SubjectDictionary[K, V]) Clear() {
	d.dict.Clear()
	d.core.PublishPendingNotifications()
}

// AddOrReplaceRange applies AddOrReplace to every entry in items,
// publishing the combined result as a single batch.
func (d *SubjectDictionary[K, V]) AddOrReplaceRange(items map[K]V) {
	d.dict.AddOrReplaceRange(items)
	d.core.PublishPendingNotifications()
}

// Reset replaces the dictionary's contents with items, publishing the
// resulting change set as a single batch.
func (d *SubjectDictionary[K, V]) Reset(items map[K]V) {
	d.dict.Reset(items)
	d.core.PublishPendingNotifications()
}

// Subscribe joins the change-set stream. The first delivered value is a
// synthesised change set describing the dictionary's current contents.
func (d *SubjectDictionary[K, V]) Subscribe(observer reactive.Observer[changeset.KeyedChangeSet[K, V]]) reactive.Disposable {
	return d.core.Subscribe(observer)
}

// CollectionChanged emits a tick whenever a notification batch is about
// to be published.
func (d *SubjectDictionary[K, V]) CollectionChanged() reactive.Observable[reactive.Unit] {
	return d.core.CollectionChanged()
}

// SuspendNotifications defers publication until every returned handle has
// been disposed.
func (d *SubjectDictionary[K, V]) SuspendNotifications() reactive.Disposable {
	return d.core.SuspendNotifications()
}

// Dispose completes every stream this subject owns.
func (d *SubjectDictionary[K, V]) Dispose() {
	d.core.Dispose()
}

// ObserveValue streams the value stored under key: immediately if key is
// currently present, then on every subsequent replacement, completing
// when key is removed or the collection is cleared. If key is not
// currently present, the stream completes immediately without emitting.
// If publication is suspended when ObserveValue is called, delivery
// (including the presence check) is deferred until the suspension ends.
func (d *SubjectDictionary[K, V]) ObserveValue(key K) reactive.Observable[V] {
	return reactive.Switch[V](reactive.Select[reactive.Unit, reactive.Observable[V]](
		d.core.readySignal(),
		func(reactive.Unit) reactive.Observable[V] { return d.observeValueNow(key) },
	))
}

func (d *SubjectDictionary[K, V]) observeValueNow(key K) reactive.Observable[V] {
	d.dict.EnableChangeCollection()
	value, present := d.dict.TryGetValue(key)
	if !present {
		return reactive.Empty[V]()
	}

	live := reactive.ObservableFunc[V](func(observer reactive.Observer[V]) reactive.Disposable {
		var sub reactive.Disposable
		sub = d.core.subscribeToChanges().Subscribe(reactive.NewObserver(
			func(cs changeset.KeyedChangeSet[K, V]) {
				switch cs.Type() {
				case changeset.Clear:
					observer.OnCompleted()
					if sub != nil {
						sub.Dispose()
					}
				case changeset.Reset:
					v, ok := d.dict.TryGetValue(key)
					if !ok {
						observer.OnCompleted()
						if sub != nil {
							sub.Dispose()
						}
						return
					}
					observer.OnNext(v)
				default:
					for _, c := range cs.Changes() {
						switch c.Reason() {
						case change.KeyedRemoval:
							removedKey, _, _ := c.Removal()
							if d.dict.KeyEquals(removedKey, key) {
								observer.OnCompleted()
								if sub != nil {
									sub.Dispose()
								}
								return
							}
						case change.KeyedReplacement:
							replacedKey, _, newItem, _ := c.Replacement()
							if d.dict.KeyEquals(replacedKey, key) {
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
