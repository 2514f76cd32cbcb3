package subject

import (
	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/reactive"
	"github.com/reactivemarbles/DynamicDataVNext/tracking"
)

// The interfaces below let a consumer depend on a Subject*'s reactive and
// mutating surface without naming its concrete type, mirroring the
// Readable/Mutable split in tracking.facade.go. Observable* embeds the
// matching tracking facade for the synchronous read surface and adds the
// publication protocol from spec.md §4.5; Mutable* adds the corresponding
// mutation methods.

// ObservableSet is the reactive facade of SubjectSet.
type ObservableSet[T comparable] interface {
	tracking.ReadableSet[T]

	Subscribe(observer reactive.Observer[changeset.DistinctChangeSet[T]]) reactive.Disposable
	CollectionChanged() reactive.Observable[reactive.Unit]
	SuspendNotifications() reactive.Disposable
	Dispose()
}

// MutableObservableSet is the read/write reactive facade of SubjectSet.
type MutableObservableSet[T comparable] interface {
	ObservableSet[T]

	Add(item T) bool
	Remove(item T) bool
	Clear()
	UnionWith(items []T) bool
	ExceptWith(items []T) bool
	IntersectWith(items []T) bool
	SymmetricExceptWith(items []T) bool
	Reset(items []T)
}

// ObservableDictionary is the reactive facade shared by SubjectDictionary
// and SubjectCache.
type ObservableDictionary[K comparable, V any] interface {
	tracking.ReadableDictionary[K, V]

	Subscribe(observer reactive.Observer[changeset.KeyedChangeSet[K, V]]) reactive.Disposable
	CollectionChanged() reactive.Observable[reactive.Unit]
	SuspendNotifications() reactive.Disposable
	Dispose()
	ObserveValue(key K) reactive.Observable[V]
}

// MutableObservableDictionary is the read/write reactive facade of
// SubjectDictionary.
type MutableObservableDictionary[K comparable, V any] interface {
	ObservableDictionary[K, V]

	Add(key K, value V) error
	AddOrReplace(key K, value V) bool
	Remove(key K) bool
	RemoveValue(key K, value V) bool
	Clear()
	AddOrReplaceRange(items map[K]V)
	Reset(items map[K]V)
}

// MutableObservableCache is the read/write reactive facade of
// SubjectCache: the same capability set as MutableObservableDictionary,
// but items carry their own key via the cache's key selector.
type MutableObservableCache[K comparable, V any] interface {
	ObservableDictionary[K, V]

	AddOrUpdate(item V) bool
	Remove(item V) bool
	RemoveKey(key K) bool
	Clear()
	AddOrUpdateRange(items []V)
	Reset(items []V)
}

// ObservableList is the reactive facade of SubjectList.
type ObservableList[T any] interface {
	tracking.ReadableList[T]

	Subscribe(observer reactive.Observer[changeset.SortedChangeSet[T]]) reactive.Disposable
	CollectionChanged() reactive.Observable[reactive.Unit]
	SuspendNotifications() reactive.Disposable
	Dispose()
	ObserveValue(index int) reactive.Observable[T]
}

// MutableObservableList is the read/write reactive facade of SubjectList.
type MutableObservableList[T any] interface {
	ObservableList[T]

	Add(item T)
	Insert(index int, item T) error
	AddRange(items []T)
	InsertRange(index int, items []T) error
	RemoveAt(index int) error
	Remove(item T) bool
	RemoveRange(index, count int) error
	Set(index int, item T) error
	Move(oldIndex, newIndex int) error
	Clear()
	Reset(items []T)
}
