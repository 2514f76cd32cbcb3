package changeset

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/reactivemarbles/DynamicDataVNext/change"
)

type SortedChangeSetBuilderTestSuite struct {
	suite.Suite
}

func TestSortedChangeSetBuilderTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SortedChangeSetBuilderTestSuite))
}

func (s *SortedChangeSetBuilderTestSuite) TestDescendingRemovalOrderScenario() {
	// arrange: S4 — [10,20,30,40,50], RemoveRange(1,3) emits removals in
	// descending index order so each one is valid against the state
	// produced by the previous removal.
	builder := NewSortedChangeSetBuilder[int]()
	builder.AddChange(change.NewSortedRemoval(3, 40))
	builder.AddChange(change.NewSortedRemoval(2, 30))
	builder.AddChange(change.NewSortedRemoval(1, 20))

	// act
	result := builder.BuildAndClear(true)

	// assert
	s.Equal(Update, result.Type())
	indices := make([]int, 0, 3)
	for _, c := range result.Changes() {
		idx, _, err := c.Removal()
		s.NoError(err)
		indices = append(indices, idx)
	}
	s.Equal([]int{3, 2, 1}, indices)
}

func (s *SortedChangeSetBuilderTestSuite) TestMovementIsNeitherRemovalNorAdditionLike() {
	// arrange
	builder := NewSortedChangeSetBuilder[string]()
	builder.AddChange(change.NewSortedRemoval(0, "x"))
	builder.OnSourceCleared()
	builder.AddChange(change.NewSortedMovement(0, 1, "y"))

	// act
	result := builder.BuildAndClear(true)

	// assert: a Movement after an emptying removal must not read as Reset.
	s.Equal(Update, result.Type())
}

func (s *SortedChangeSetBuilderTestSuite) TestClearThenInsertionsClassifyAsReset() {
	// arrange
	builder := NewSortedChangeSetBuilder[string]()
	builder.AddChange(change.NewSortedRemoval(1, "b"))
	builder.AddChange(change.NewSortedRemoval(0, "a"))
	builder.OnSourceCleared()
	builder.AddChange(change.NewSortedInsertion(0, "c"))

	// act
	result := builder.BuildAndClear(true)

	// assert
	s.Equal(Reset, result.Type())
}
