package change

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/reactivemarbles/DynamicDataVNext/errs"
)

type SortedChangeTestSuite struct {
	suite.Suite
}

func TestSortedChangeTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SortedChangeTestSuite))
}

func (s *SortedChangeTestSuite) TestMovementAccessor() {
	// arrange
	c := NewSortedMovement(3, 1, "x")

	// act
	oldIndex, newIndex, item, err := c.Movement()

	// assert
	s.NoError(err)
	s.Equal(3, oldIndex)
	s.Equal(1, newIndex)
	s.Equal("x", item)
	s.False(c.IsRemoval())
	s.False(c.IsAdditionLike())
}

func (s *SortedChangeTestSuite) TestUpdateAccessor() {
	// arrange
	c := NewSortedUpdate(0, "old", 2, "new")

	// act
	oldIndex, oldItem, newIndex, newItem, err := c.Update()

	// assert
	s.NoError(err)
	s.Equal(0, oldIndex)
	s.Equal("old", oldItem)
	s.Equal(2, newIndex)
	s.Equal("new", newItem)
}

func (s *SortedChangeTestSuite) TestInsertionIsAdditionLike() {
	// arrange
	c := NewSortedInsertion(0, "x")

	// act + assert
	s.True(c.IsAdditionLike())
	s.False(c.IsRemoval())
}

func (s *SortedChangeTestSuite) TestInsertionAccessorOnReplacementFails() {
	// arrange
	c := NewSortedReplacement(0, "old", "new")

	// act
	_, _, err := c.Insertion()

	// assert
	s.ErrorIs(err, errs.ErrInvalidVariant)
}
