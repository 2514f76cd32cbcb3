package change

import (
	"fmt"

	"github.com/reactivemarbles/DynamicDataVNext/errs"
)

// SortedReason tags the variant carried by a SortedChange.
type SortedReason int

const (
	// SortedNone is the zero-value sentinel of an uninitialised
	// SortedChange. It must never appear in a published change set.
	SortedNone SortedReason = iota
	SortedInsertion
	SortedRemoval
	SortedMovement
	SortedReplacement
	SortedUpdate
)

func (r SortedReason) String() string {
	switch r {
	case SortedInsertion:
		return "Insertion"
	case SortedRemoval:
		return "Removal"
	case SortedMovement:
		return "Movement"
	case SortedReplacement:
		return "Replacement"
	case SortedUpdate:
		return "Update"
	default:
		return "None"
	}
}

// SortedChange is a single mutation against an index-ordered list.
//
// Update is a combined replace-and-move: it is emitted by operators (not
// specified here) that need to report both a new value and a new position
// for an item in one atomic step; ChangeTrackingList itself never emits it
// (Move emits Movement, and an indexer-set replacement emits Replacement),
// but the type exists so downstream producers can construct one.
type SortedChange[T any] struct {
	reason   SortedReason
	index    int
	oldIndex int
	newIndex int
	item     T
	oldItem  T
	newItem  T
}

// NewSortedInsertion builds the Insertion variant.
func NewSortedInsertion[T any](index int, item T) SortedChange[T] {
	return SortedChange[T]{reason: SortedInsertion, index: index, item: item}
}

// NewSortedRemoval builds the Removal variant.
func NewSortedRemoval[T any](index int, item T) SortedChange[T] {
	return SortedChange[T]{reason: SortedRemoval, index: index, item: item}
}

// NewSortedMovement builds the Movement variant.
func NewSortedMovement[T any](oldIndex, newIndex int, item T) SortedChange[T] {
	return SortedChange[T]{reason: SortedMovement, oldIndex: oldIndex, newIndex: newIndex, item: item}
}

// NewSortedReplacement builds the Replacement variant.
func NewSortedReplacement[T any](index int, oldItem, newItem T) SortedChange[T] {
	return SortedChange[T]{reason: SortedReplacement, index: index, oldItem: oldItem, newItem: newItem}
}

// NewSortedUpdate builds the combined replace-and-move Update variant.
func NewSortedUpdate[T any](oldIndex int, oldItem T, newIndex int, newItem T) SortedChange[T] {
	return SortedChange[T]{reason: SortedUpdate, oldIndex: oldIndex, oldItem: oldItem, newIndex: newIndex, newItem: newItem}
}

// Reason reports which variant this change carries.
func (c SortedChange[T]) Reason() SortedReason {
	return c.reason
}

// IsRemoval reports whether this change is a Removal.
func (c SortedChange[T]) IsRemoval() bool {
	return c.reason == SortedRemoval
}

// IsAdditionLike reports whether this change is a pure Insertion, the only
// variant that can continue a Reset classification (see the changeset
// package's builders).
func (c SortedChange[T]) IsAdditionLike() bool {
	return c.reason == SortedInsertion
}

// Insertion returns the insertion index and item, or errs.ErrInvalidVariant
// if this change is not the Insertion variant.
func (c SortedChange[T]) Insertion() (int, T, error) {
	if c.reason != SortedInsertion {
		var zero T
		return 0, zero, errs.InvalidVariant("SortedChange", "Insertion")
	}
	return c.index, c.item, nil
}

// Removal returns the removal index and item, or errs.ErrInvalidVariant if
// this change is not the Removal variant.
func (c SortedChange[T]) Removal() (int, T, error) {
	if c.reason != SortedRemoval {
		var zero T
		return 0, zero, errs.InvalidVariant("SortedChange", "Removal")
	}
	return c.index, c.item, nil
}

// Movement returns the old index, new index, and moved item, or
// errs.ErrInvalidVariant if this change is not the Movement variant.
func (c SortedChange[T]) Movement() (int, int, T, error) {
	if c.reason != SortedMovement {
		var zero T
		return 0, 0, zero, errs.InvalidVariant("SortedChange", "Movement")
	}
	return c.oldIndex, c.newIndex, c.item, nil
}

// Replacement returns the index, old item, and new item, or
// errs.ErrInvalidVariant if this change is not the Replacement variant.
func (c SortedChange[T]) Replacement() (int, T, T, error) {
	if c.reason != SortedReplacement {
		var zero T
		return 0, zero, zero, errs.InvalidVariant("SortedChange", "Replacement")
	}
	return c.index, c.oldItem, c.newItem, nil
}

// Update returns the old index/item and new index/item, or
// errs.ErrInvalidVariant if this change is not the Update variant.
func (c SortedChange[T]) Update() (oldIndex int, oldItem T, newIndex int, newItem T, err error) {
	if c.reason != SortedUpdate {
		var zero T
		return 0, zero, 0, zero, errs.InvalidVariant("SortedChange", "Update")
	}
	return c.oldIndex, c.oldItem, c.newIndex, c.newItem, nil
}

// String renders a debug form, for diagnostics and test failure messages.
func (c SortedChange[T]) String() string {
	switch c.reason {
	case SortedInsertion:
		return fmt.Sprintf("Insertion(%d, %v)", c.index, c.item)
	case SortedRemoval:
		return fmt.Sprintf("Removal(%d, %v)", c.index, c.item)
	case SortedMovement:
		return fmt.Sprintf("Movement(%d -> %d, %v)", c.oldIndex, c.newIndex, c.item)
	case SortedReplacement:
		return fmt.Sprintf("Replacement(%d, %v -> %v)", c.index, c.oldItem, c.newItem)
	case SortedUpdate:
		return fmt.Sprintf("Update(%d:%v -> %d:%v)", c.oldIndex, c.oldItem, c.newIndex, c.newItem)
	default:
		return "None"
	}
}
