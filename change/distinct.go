package change

import (
	"fmt"

	"github.com/reactivemarbles/DynamicDataVNext/errs"
)

// DistinctReason tags the variant carried by a DistinctChange.
type DistinctReason int

const (
	// DistinctNone is the zero-value sentinel of an uninitialised
	// DistinctChange. It must never appear in a published change set.
	DistinctNone DistinctReason = iota
	DistinctAddition
	DistinctRemoval
)

func (r DistinctReason) String() string {
	switch r {
	case DistinctAddition:
		return "Addition"
	case DistinctRemoval:
		return "Removal"
	default:
		return "None"
	}
}

// DistinctChange is a single mutation against a distinct-element set: the
// addition or removal of one item.
type DistinctChange[T any] struct {
	reason DistinctReason
	item   T
}

// NewDistinctAddition builds the Addition variant.
func NewDistinctAddition[T any](item T) DistinctChange[T] {
	return DistinctChange[T]{reason: DistinctAddition, item: item}
}

// NewDistinctRemoval builds the Removal variant.
func NewDistinctRemoval[T any](item T) DistinctChange[T] {
	return DistinctChange[T]{reason: DistinctRemoval, item: item}
}

// Reason reports which variant this change carries.
func (c DistinctChange[T]) Reason() DistinctReason {
	return c.reason
}

// IsRemoval reports whether this change is a Removal.
func (c DistinctChange[T]) IsRemoval() bool {
	return c.reason == DistinctRemoval
}

// IsAdditionLike reports whether this change is a pure Addition, the only
// variant that can continue a Reset classification (see the changeset
// package's builders).
func (c DistinctChange[T]) IsAdditionLike() bool {
	return c.reason == DistinctAddition
}

// Addition returns the added item, or errs.ErrInvalidVariant if this change
// is not the Addition variant.
func (c DistinctChange[T]) Addition() (T, error) {
	if c.reason != DistinctAddition {
		var zero T
		return zero, errs.InvalidVariant("DistinctChange", "Addition")
	}
	return c.item, nil
}

// Removal returns the removed item, or errs.ErrInvalidVariant if this
// change is not the Removal variant.
func (c DistinctChange[T]) Removal() (T, error) {
	if c.reason != DistinctRemoval {
		var zero T
		return zero, errs.InvalidVariant("DistinctChange", "Removal")
	}
	return c.item, nil
}

// String renders a debug form, for diagnostics and test failure messages.
func (c DistinctChange[T]) String() string {
	return fmt.Sprintf("%s(%v)", c.reason, c.item)
}
