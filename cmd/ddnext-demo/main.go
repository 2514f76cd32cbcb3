// Command ddnext-demo is a small runnable walkthrough of the reactive
// collections: it builds a SubjectDictionary of orders keyed by a
// generated id, subscribes to the change-set stream, watches one order
// with ObserveValue, and suspends notifications around a batch of
// mutations to show the coalesced publish.
package main

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/internal/telemetry"
	"github.com/reactivemarbles/DynamicDataVNext/reactive"
	"github.com/reactivemarbles/DynamicDataVNext/subject"
)

type order struct {
	id     uuid.UUID
	status string
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}
	telemetry.SetLogger(logger.Sugar())
	defer func() { _ = logger.Sync() }()

	orders := subject.NewSubjectDictionary[uuid.UUID, order]()

	sub := orders.Subscribe(reactive.NewObserver(
		func(cs changeset.KeyedChangeSet[uuid.UUID, order]) {
			telemetry.Logger.Infow("orders changed", "type", cs.Type(), "count", cs.Len())
		},
		func(err error) { telemetry.Logger.Errorw("orders stream errored", "error", err) },
		func() { telemetry.Logger.Info("orders stream completed") },
	))
	defer sub.Dispose()

	first := uuid.New()
	_ = orders.Add(first, order{id: first, status: "placed"})
	watch := orders.ObserveValue(first).Subscribe(reactive.NewObserver(
		func(o order) { telemetry.Logger.Infow("watched order updated", "status", o.status) },
		nil,
		func() { telemetry.Logger.Info("watched order stream completed") },
	))
	defer watch.Dispose()

	_ = orders.AddOrReplace(first, order{id: first, status: "paid"})

	handle := orders.SuspendNotifications()
	second := uuid.New()
	_ = orders.Add(second, order{id: second, status: "placed"})
	orders.Remove(first)
	handle.Dispose()

	pending := subject.NewSubjectSet[string]()
	pendingSub := pending.Subscribe(reactive.NewObserver(
		func(cs changeset.DistinctChangeSet[string]) {
			telemetry.Logger.Infow("pending tags changed", "type", cs.Type(), "count", cs.Len())
		},
		nil, nil,
	))
	defer pendingSub.Dispose()
	pending.UnionWith([]string{"rush", "gift-wrap"})
	pending.Remove("rush")

	timeline := subject.NewSubjectList[string]()
	timelineSub := timeline.Subscribe(reactive.NewObserver(
		func(cs changeset.SortedChangeSet[string]) {
			telemetry.Logger.Infow("timeline changed", "type", cs.Type(), "count", cs.Len())
		},
		nil, nil,
	))
	defer timelineSub.Dispose()
	timeline.AddRange([]string{"placed", "paid", "shipped"})
	_ = timeline.Move(2, 0)

	fmt.Println("orders remaining:", orders.Count())
	fmt.Println("pending tags:", pending.Items())
	fmt.Println("timeline:", timeline.Items())
}
