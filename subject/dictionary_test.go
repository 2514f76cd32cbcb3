package subject

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/reactive"
)

type DictionaryTestSuite struct {
	suite.Suite
}

func TestSubjectDictionaryTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DictionaryTestSuite))
}

func (s *DictionaryTestSuite) TestSubscribeMidStreamDeliversCurrentSnapshotFirst() {
	// arrange: S6 — subscribe mid-stream snapshot.
	dict := NewSubjectDictionary[string, int]()
	_ = dict.Add("a", 1)
	_ = dict.Add("b", 2)

	var received []changeset.KeyedChangeSet[string, int]
	sub := dict.Subscribe(reactive.NewObserver(
		func(cs changeset.KeyedChangeSet[string, int]) { received = append(received, cs) },
		nil, nil,
	))
	defer sub.Dispose()

	// act
	_ = dict.Add("c", 3)

	// assert
	s.Require().Len(received, 2)
	s.Equal(changeset.Update, received[0].Type())
	s.Len(received[0].Changes(), 2)
	s.Equal(changeset.Update, received[1].Type())
	s.Len(received[1].Changes(), 1)
}

func (s *DictionaryTestSuite) TestResetEmitsSingleResetBatch() {
	// arrange: S3 — keyed reset.
	dict := NewSubjectDictionary[string, int]()
	_ = dict.Add("a", 1)
	_ = dict.Add("b", 2)
	var received []changeset.KeyedChangeSet[string, int]
	sub := dict.Subscribe(reactive.NewObserver(
		func(cs changeset.KeyedChangeSet[string, int]) { received = append(received, cs) },
		nil, nil,
	))
	defer sub.Dispose()
	received = nil

	// act
	dict.Reset(map[string]int{"c": 3, "d": 4})

	// assert
	s.Require().Len(received, 1)
	s.Equal(changeset.Reset, received[0].Type())
	s.Len(received[0].Changes(), 4)
}

func (s *DictionaryTestSuite) TestNoOpReplacePublishesNothing() {
	// arrange: S2 — keyed no-op replace.
	dict := NewSubjectDictionary[string, int]()
	_ = dict.Add("a", 1)
	var received []changeset.KeyedChangeSet[string, int]
	sub := dict.Subscribe(reactive.NewObserver(
		func(cs changeset.KeyedChangeSet[string, int]) { received = append(received, cs) },
		nil, nil,
	))
	defer sub.Dispose()
	received = nil

	// act
	changed := dict.AddOrReplace("a", 1)

	// assert
	s.False(changed)
	s.False(dict.IsDirty())
	s.Empty(received)
}

func (s *DictionaryTestSuite) TestObserveValueLifecycle() {
	// arrange: S7 — ObserveValue lifecycle.
	dict := NewSubjectDictionary[string, int]()
	_ = dict.Add("a", 1)
	var received []int
	completed := false
	sub := dict.ObserveValue("a").Subscribe(reactive.NewObserver(
		func(v int) { received = append(received, v) },
		nil,
		func() { completed = true },
	))
	defer sub.Dispose()
	s.Require().Equal([]int{1}, received)

	// act: [a] = 2
	dict.AddOrReplace("a", 2)
	s.Equal([]int{1, 2}, received)

	// act: Remove(a)
	dict.Remove("a")
	s.True(completed)

	// act: Add(a, 3) must not reach the already-completed stream.
	_ = dict.Add("a", 3)

	// assert
	s.Equal([]int{1, 2}, received)
}

func (s *DictionaryTestSuite) TestObserveValueOnMissingKeyCompletesImmediately() {
	// arrange
	dict := NewSubjectDictionary[string, int]()
	completed := false
	emitted := false

	// act
	sub := dict.ObserveValue("missing").Subscribe(reactive.NewObserver(
		func(int) { emitted = true },
		nil,
		func() { completed = true },
	))
	defer sub.Dispose()

	// assert
	s.False(emitted)
	s.True(completed)
}

func (s *DictionaryTestSuite) TestObserveValueCompletesOnClear() {
	// arrange
	dict := NewSubjectDictionary[string, int]()
	_ = dict.Add("a", 1)
	completed := false
	sub := dict.ObserveValue("a").Subscribe(reactive.NewObserver(
		func(int) {},
		nil,
		func() { completed = true },
	))
	defer sub.Dispose()

	// act
	dict.Clear()

	// assert
	s.True(completed)
}

func (s *DictionaryTestSuite) TestObserveValueDeferredUntilSuspensionEnds() {
	// arrange: even the presence check must wait out an active suspension.
	dict := NewSubjectDictionary[string, int]()
	handle := dict.SuspendNotifications()
	_ = dict.Add("a", 1)

	var received []int
	sub := dict.ObserveValue("a").Subscribe(reactive.NewObserver(
		func(v int) { received = append(received, v) },
		nil, nil,
	))
	defer sub.Dispose()
	s.Empty(received)

	// act
	handle.Dispose()

	// assert
	s.Equal([]int{1}, received)
}
