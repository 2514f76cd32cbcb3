package tracking

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/reactivemarbles/DynamicDataVNext/changeset"
	"github.com/reactivemarbles/DynamicDataVNext/errs"
)

type DictionaryTestSuite struct {
	suite.Suite
}

func TestDictionaryTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DictionaryTestSuite))
}

func (s *DictionaryTestSuite) TestAddRejectsDuplicateKey() {
	// arrange
	dict := NewDictionary[string, int]()
	s.Require().NoError(dict.Add("a", 1))

	// act
	err := dict.Add("a", 2)

	// assert
	s.ErrorIs(err, errs.ErrDuplicateKey)
}

func (s *DictionaryTestSuite) TestTryGetValueReportsAbsence() {
	// arrange
	dict := NewDictionary[string, int]()

	// act
	_, found := dict.TryGetValue("missing")

	// assert
	s.False(found)
}

func (s *DictionaryTestSuite) TestGetReturnsKeyNotFoundOnMissingKey() {
	// arrange
	dict := NewDictionary[string, int]()

	// act
	_, err := dict.Get("missing")

	// assert
	s.ErrorIs(err, errs.ErrKeyNotFound)
}

func (s *DictionaryTestSuite) TestGetReturnsStoredValue() {
	// arrange
	dict := NewDictionary[string, int]()
	s.Require().NoError(dict.Add("a", 1))

	// act
	value, err := dict.Get("a")

	// assert
	s.NoError(err)
	s.Equal(1, value)
}

func (s *DictionaryTestSuite) TestAddOrReplaceWithEqualValueIsNoOp() {
	// arrange
	dict := NewDictionary[string, int]()
	_ = dict.Add("a", 1)
	dict.EnableChangeCollection()

	// act
	changed := dict.AddOrReplace("a", 1)
	result := dict.CaptureChangesAndClean(true)

	// assert
	s.False(changed)
	s.True(result.IsEmpty())
}

func (s *DictionaryTestSuite) TestAddOrReplaceWithDifferentValueRecordsReplacement() {
	// arrange
	dict := NewDictionary[string, int]()
	_ = dict.Add("a", 1)
	dict.EnableChangeCollection()

	// act
	changed := dict.AddOrReplace("a", 2)
	result := dict.CaptureChangesAndClean(true)

	// assert
	s.True(changed)
	s.Equal(changeset.Update, result.Type())
	value, _ := dict.TryGetValue("a")
	s.Equal(2, value)
}

func (s *DictionaryTestSuite) TestResetToDisjointKeysClassifiesAsReset() {
	// arrange
	dict := NewDictionary[string, int]()
	_ = dict.Add("a", 1)
	_ = dict.Add("b", 2)
	dict.EnableChangeCollection()

	// act
	dict.Reset(map[string]int{"c": 3, "d": 4})
	result := dict.CaptureChangesAndClean(true)

	// assert
	s.Equal(changeset.Reset, result.Type())
	s.Equal(2, dict.Count())
	s.True(dict.ContainsKey("c"))
	s.True(dict.ContainsKey("d"))
}

func (s *DictionaryTestSuite) TestResetOnEmptyDictionaryClassifiesAsReset() {
	// arrange
	dict := NewDictionary[string, int]()
	dict.EnableChangeCollection()

	// act
	dict.Reset(map[string]int{"a": 1})
	result := dict.CaptureChangesAndClean(true)

	// assert: the dictionary was already empty, so clear has nothing to
	// remove, but the source-cleared transition must still surface as
	// Reset rather than Update.
	s.Equal(changeset.Reset, result.Type())
	s.True(dict.ContainsKey("a"))
}

func (s *DictionaryTestSuite) TestReplacementAfterClearDoesNotContinueResetClassification() {
	// arrange
	dict := NewDictionary[string, int]()
	_ = dict.Add("a", 1)
	dict.EnableChangeCollection()

	// act
	dict.Remove("a")
	_ = dict.Add("a", 2)
	dict.AddOrReplace("a", 3)
	result := dict.CaptureChangesAndClean(true)

	// assert: the addition after the clear continues Reset, but the
	// replacement that follows is neither a removal nor addition-like, so
	// it falls back to Update.
	s.Equal(changeset.Update, result.Type())
}

func (s *DictionaryTestSuite) TestSingleKeyRemovalEmptyingDictionaryClassifiesAsClear() {
	// arrange
	dict := NewDictionary[string, int]()
	_ = dict.Add("a", 1)
	dict.EnableChangeCollection()

	// act
	dict.Remove("a")
	result := dict.CaptureChangesAndClean(true)

	// assert
	s.Equal(changeset.Clear, result.Type())
}

func (s *DictionaryTestSuite) TestRemoveValueOnlyRemovesOnMatch() {
	// arrange
	dict := NewDictionary[string, int]()
	_ = dict.Add("a", 1)

	// act
	removedWrong := dict.RemoveValue("a", 2)
	removedRight := dict.RemoveValue("a", 1)

	// assert
	s.False(removedWrong)
	s.True(removedRight)
	s.Equal(0, dict.Count())
}

func (s *DictionaryTestSuite) TestCustomKeyEqualityIsUsedForLookup() {
	// arrange
	dict := NewDictionaryWithEquality[string, int](func(a, b string) bool { return len(a) == len(b) }, nil)
	_ = dict.Add("ab", 1)

	// act
	err := dict.Add("cd", 2)

	// assert
	s.ErrorIs(err, errs.ErrDuplicateKey)
}
