// Package subject wraps the tracking package's change-tracking collection
// engines with a reactive publication protocol: mutations are turned into
// a stream of change sets, subscribers join with a coherent snapshot of
// current contents, notifications can be suspended and resumed as one
// coalesced batch, and change collection on the underlying engine is
// enabled only while at least one subscriber is present.
package subject

import (
	"github.com/google/uuid"

	"github.com/reactivemarbles/DynamicDataVNext/internal/telemetry"
	"github.com/reactivemarbles/DynamicDataVNext/reactive"
)

// changeSetOps is satisfied by every changeset.*ChangeSet[...] type,
// regardless of its type parameters.
type changeSetOps interface {
	IsEmpty() bool
	Len() int
}

// changeTracker is satisfied by every tracking engine (Set, Dictionary,
// Cache, List): the subset of their surface that the publication
// protocol needs, independent of storage shape.
type changeTracker[CS changeSetOps] interface {
	IsDirty() bool
	CaptureChangesAndClean(reuseBuffer bool) CS
	EnableChangeCollection()
	DisableChangeCollection()
}

// core implements the notification protocol from spec.md §4.5.1 and the
// snapshot-then-stream subscribe protocol from §4.5.2, generic over the
// change-set family. Each Subject* wrapper embeds a core and supplies a
// snapshotFactory that builds the synthetic initial change set for its
// own shape.
type core[CS changeSetOps] struct {
	tracker         changeTracker[CS]
	snapshotFactory func() CS

	changesSubject       *reactive.Subject[CS]
	collectionChanged    *reactive.Subject[reactive.Unit]
	notificationsResumed *reactive.Subject[reactive.Unit]

	suspensionCount int
	observerCount   int
}

func newCore[CS changeSetOps](tracker changeTracker[CS], snapshotFactory func() CS) *core[CS] {
	return &core[CS]{
		tracker:              tracker,
		snapshotFactory:      snapshotFactory,
		changesSubject:       reactive.NewSubject[CS](),
		collectionChanged:    reactive.NewSubject[reactive.Unit](),
		notificationsResumed: reactive.NewSubject[reactive.Unit](),
	}
}

// PublishPendingNotifications flushes the underlying collection's pending
// changes onto the change-set stream, unless publication is suspended or
// nothing has changed.
func (c *core[CS]) PublishPendingNotifications() {
	if c.suspensionCount != 0 || !c.tracker.IsDirty() {
		return
	}
	c.collectionChanged.OnNext(reactive.UnitValue)
	cs := c.tracker.CaptureChangesAndClean(false)
	telemetry.Logger.Debugw("publishing change set", "len", cs.Len())
	c.changesSubject.OnNext(cs)
}

// SuspendNotifications defers publication until every returned handle has
// been disposed, at which point any changes accumulated in the meantime
// flush as a single batch.
func (c *core[CS]) SuspendNotifications() reactive.Disposable {
	id := uuid.New()
	c.suspensionCount++
	telemetry.Logger.Debugw("notifications suspended", "suspensionID", id)
	released := false
	return reactive.DisposableFunc(func() {
		if released {
			return
		}
		released = true
		c.suspensionCount--
		if c.suspensionCount == 0 {
			telemetry.Logger.Debugw("notifications resumed", "suspensionID", id)
			c.PublishPendingNotifications()
			c.notificationsResumed.OnNext(reactive.UnitValue)
		}
	})
}

// CollectionChanged is a valueless tick emitted whenever a notification
// batch is about to be published, strictly before the matching change set
// appears on Subscribe's stream.
func (c *core[CS]) CollectionChanged() reactive.Observable[reactive.Unit] {
	return c.collectionChanged
}

// Subscribe implements the snapshot-then-stream protocol: the first
// delivered value is a synthesised change set describing the collection's
// full current contents, followed by every subsequently published change
// set. If a suspension is active when Subscribe is called, the snapshot
// is deferred until the suspension ends, so the subscriber never sees a
// snapshot immediately followed by a stale pending batch.
func (c *core[CS]) Subscribe(observer reactive.Observer[CS]) reactive.Disposable {
	id := uuid.New()
	c.tracker.EnableChangeCollection()
	c.observerCount++
	telemetry.Logger.Debugw("subscriber joined", "subscriptionID", id)
	release := func() {
		c.observerCount--
		if c.observerCount == 0 {
			c.tracker.DisableChangeCollection()
		}
		telemetry.Logger.Debugw("subscriber left", "subscriptionID", id)
	}

	initial := c.readySnapshot()
	stream := reactive.Finally[CS](reactive.Concat[CS](initial, c.changesSubject), release)
	return stream.Subscribe(observer)
}

// readySnapshot returns an observable of exactly one value: the current
// snapshot immediately if there is no active suspension, or the snapshot
// computed at the moment the pending suspension ends.
func (c *core[CS]) readySnapshot() reactive.Observable[CS] {
	if c.suspensionCount == 0 {
		return reactive.OfFunc(c.snapshotFactory)
	}
	return reactive.Select[reactive.Unit, CS](
		reactive.Take1[reactive.Unit](c.notificationsResumed),
		func(reactive.Unit) CS { return c.snapshotFactory() },
	)
}

// readySignal resolves immediately if there is no active suspension, or
// waits for the pending suspension to end. Used by ObserveValue, which
// synthesises its own initial value rather than a full snapshot.
func (c *core[CS]) readySignal() reactive.Observable[reactive.Unit] {
	if c.suspensionCount == 0 {
		return reactive.Of(reactive.UnitValue)
	}
	return reactive.Take1[reactive.Unit](c.notificationsResumed)
}

// subscribeToChanges exposes the live change-set stream with the same
// change-collection enable/disable gating as Subscribe, but without
// prepending a synthesised snapshot.
func (c *core[CS]) subscribeToChanges() reactive.Observable[CS] {
	return reactive.ObservableFunc[CS](func(observer reactive.Observer[CS]) reactive.Disposable {
		c.tracker.EnableChangeCollection()
		c.observerCount++
		release := func() {
			c.observerCount--
			if c.observerCount == 0 {
				c.tracker.DisableChangeCollection()
			}
		}
		return reactive.Finally[CS](c.changesSubject, release).Subscribe(observer)
	})
}

// Dispose completes every stream the subject owns. Subsequent mutations
// will not be delivered to any observer.
func (c *core[CS]) Dispose() {
	c.changesSubject.OnCompleted()
	c.collectionChanged.OnCompleted()
	c.notificationsResumed.OnCompleted()
}
