package changeset

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/reactivemarbles/DynamicDataVNext/change"
)

type DistinctChangeSetBuilderTestSuite struct {
	suite.Suite
}

func TestDistinctChangeSetBuilderTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DistinctChangeSetBuilderTestSuite))
}

func (s *DistinctChangeSetBuilderTestSuite) TestEmptyBuilderProducesEmptyChangeSet() {
	// arrange
	builder := NewDistinctChangeSetBuilder[int]()

	// act
	result := builder.BuildAndClear(true)

	// assert
	s.True(result.IsEmpty())
	s.Equal(0, result.Len())
}

func (s *DistinctChangeSetBuilderTestSuite) TestAdditionsClassifyAsUpdate() {
	// arrange
	builder := NewDistinctChangeSetBuilder[int]()
	builder.AddChange(change.NewDistinctAddition(1))
	builder.AddChange(change.NewDistinctAddition(2))

	// act
	result := builder.BuildAndClear(true)

	// assert
	s.Equal(Update, result.Type())
	s.Len(result.Changes(), 2)
}

func (s *DistinctChangeSetBuilderTestSuite) TestRemovalsFollowedBySourceClearedClassifyAsClear() {
	// arrange
	builder := NewDistinctChangeSetBuilder[int]()
	builder.AddChange(change.NewDistinctRemoval(1))
	builder.AddChange(change.NewDistinctRemoval(2))
	builder.OnSourceCleared()

	// act
	result := builder.BuildAndClear(true)

	// assert
	s.Equal(Clear, result.Type())
	for _, c := range result.Changes() {
		s.True(c.IsRemoval())
	}
}

func (s *DistinctChangeSetBuilderTestSuite) TestClearThenAdditionsClassifyAsReset() {
	// arrange
	builder := NewDistinctChangeSetBuilder[int]()
	builder.AddChange(change.NewDistinctRemoval(1))
	builder.OnSourceCleared()
	builder.AddChange(change.NewDistinctAddition(2))
	builder.AddChange(change.NewDistinctAddition(3))

	// act
	result := builder.BuildAndClear(true)

	// assert
	s.Equal(Reset, result.Type())
	s.Len(result.Changes(), 3)
}

func (s *DistinctChangeSetBuilderTestSuite) TestBuildAndClearResetsStateForNextBatch() {
	// arrange
	builder := NewDistinctChangeSetBuilder[int]()
	builder.AddChange(change.NewDistinctAddition(1))
	_ = builder.BuildAndClear(true)

	// act
	second := builder.BuildAndClear(true)

	// assert
	s.True(second.IsEmpty())
}

func (s *DistinctChangeSetBuilderTestSuite) TestBuildAndClearReuseBufferCopiesOut() {
	// arrange
	builder := NewDistinctChangeSetBuilder[int]()
	builder.AddChange(change.NewDistinctAddition(1))

	// act
	result := builder.BuildAndClear(true)
	builder.AddChange(change.NewDistinctAddition(2))
	second := builder.BuildAndClear(true)

	// assert
	s.Len(result.Changes(), 1)
	s.Len(second.Changes(), 1)
}

func (s *DistinctChangeSetBuilderTestSuite) TestBuildAndClearTransfersOwnershipWhenNotReusing() {
	// arrange
	builder := NewDistinctChangeSetBuilder[int]()
	builder.AddChange(change.NewDistinctAddition(1))
	builder.AddChange(change.NewDistinctAddition(2))

	// act
	result := builder.BuildAndClear(false)

	// assert
	s.Len(result.Changes(), 2)
	s.Equal(0, builder.Count())
}

func (s *DistinctChangeSetBuilderTestSuite) TestClearDropsBufferedChangesWithoutBuilding() {
	// arrange
	builder := NewDistinctChangeSetBuilder[int]()
	builder.AddChange(change.NewDistinctAddition(1))

	// act
	builder.Clear()
	result := builder.BuildAndClear(true)

	// assert
	s.True(result.IsEmpty())
}

func (s *DistinctChangeSetBuilderTestSuite) TestEnsureCapacityGrowsWithoutChangingCount() {
	// arrange
	builder := NewDistinctChangeSetBuilder[int]()

	// act
	builder.EnsureCapacity(8)

	// assert
	s.GreaterOrEqual(builder.Capacity(), 8)
	s.Equal(0, builder.Count())
}

func (s *DistinctChangeSetBuilderTestSuite) TestAdditionAfterRemovalWithoutSourceClearedStaysUpdate() {
	// arrange
	builder := NewDistinctChangeSetBuilder[int]()
	builder.AddChange(change.NewDistinctRemoval(1))
	builder.AddChange(change.NewDistinctAddition(2))

	// act
	result := builder.BuildAndClear(true)

	// assert
	s.Equal(Update, result.Type())
}
