package subject

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/reactivemarbles/DynamicDataVNext/change"
	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/reactive"
)

type SetTestSuite struct {
	suite.Suite
}

func TestSetTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SetTestSuite))
}

func (s *SetTestSuite) TestSubscribeDeliversSnapshotThenLiveChanges() {
	// arrange
	set := NewSubjectSet[int]()
	set.Add(1)
	set.Add(2)
	var received []changeset.DistinctChangeSet[int]
	sub := set.Subscribe(reactive.NewObserver(
		func(cs changeset.DistinctChangeSet[int]) { received = append(received, cs) },
		nil, nil,
	))
	defer sub.Dispose()

	// act
	set.Add(3)

	// assert
	s.Require().Len(received, 2)
	s.Equal(changeset.Update, received[0].Type())
	s.Len(received[0].Changes(), 2)
	s.Equal(changeset.Update, received[1].Type())
	s.Len(received[1].Changes(), 1)
	added, err := received[1].Changes()[0].Addition()
	s.NoError(err)
	s.Equal(3, added)
}

func (s *SetTestSuite) TestAddClearEmitsUpdateThenClear() {
	// arrange: S1 — distinct set additions then clear. Each mutation
	// publishes on its own, and the repeated Add(1) publishes nothing.
	set := NewSubjectSet[int]()
	var received []changeset.DistinctChangeSet[int]
	sub := set.Subscribe(reactive.NewObserver(
		func(cs changeset.DistinctChangeSet[int]) { received = append(received, cs) },
		nil, nil,
	))
	defer sub.Dispose()
	received = nil // drop the empty initial snapshot

	// act
	set.Add(1)
	set.Add(2)
	set.Add(1)
	set.Clear()

	// assert
	s.Require().Len(received, 3)
	s.Equal(changeset.Update, received[0].Type())
	s.Len(received[0].Changes(), 1)
	s.Equal(changeset.Update, received[1].Type())
	s.Len(received[1].Changes(), 1)
	s.Equal(changeset.Clear, received[2].Type())
	s.Len(received[2].Changes(), 2)
}

func (s *SetTestSuite) TestSuspendNotificationsCoalescesIntoOneBatch() {
	// arrange: S5 — suspend coalescing.
	set := NewSubjectSet[int]()
	var received []changeset.DistinctChangeSet[int]
	sub := set.Subscribe(reactive.NewObserver(
		func(cs changeset.DistinctChangeSet[int]) { received = append(received, cs) },
		nil, nil,
	))
	defer sub.Dispose()
	received = nil

	// act
	handle := set.SuspendNotifications()
	set.Add(1)
	set.Remove(1)
	set.Add(2)
	s.Empty(received)
	handle.Dispose()

	// assert
	s.Require().Len(received, 1)
	s.Equal(changeset.Update, received[0].Type())
	changes := received[0].Changes()
	s.Require().Len(changes, 3)
	s.Equal(change.DistinctAddition, changes[0].Reason())
	s.Equal(change.DistinctRemoval, changes[1].Reason())
	s.Equal(change.DistinctAddition, changes[2].Reason())
}

func (s *SetTestSuite) TestSubscribeDuringSuspensionDefersSnapshotUntilResume() {
	// arrange: a subscriber joins while a suspension is active and must not
	// observe a snapshot until the suspension ends.
	set := NewSubjectSet[int]()
	set.Add(1)
	handle := set.SuspendNotifications()
	set.Add(2)

	var received []changeset.DistinctChangeSet[int]
	sub := set.Subscribe(reactive.NewObserver(
		func(cs changeset.DistinctChangeSet[int]) { received = append(received, cs) },
		nil, nil,
	))
	defer sub.Dispose()
	s.Empty(received)

	// act
	handle.Dispose()

	// assert: the deferred snapshot reflects state as of resume, i.e. {1,2}.
	s.Require().Len(received, 1)
	s.Equal(2, received[0].Len())
}

func (s *SetTestSuite) TestDisposeCompletesSubscribers() {
	// arrange
	set := NewSubjectSet[int]()
	completed := false
	sub := set.Subscribe(reactive.NewObserver(
		func(changeset.DistinctChangeSet[int]) {},
		nil,
		func() { completed = true },
	))
	defer sub.Dispose()

	// act
	set.Dispose()

	// assert
	s.True(completed)
}
