package change

import (
	"fmt"

	"github.com/reactivemarbles/DynamicDataVNext/errs"
)

// KeyedReason tags the variant carried by a KeyedChange.
type KeyedReason int

const (
	// KeyedNone is the zero-value sentinel of an uninitialised KeyedChange.
	// It must never appear in a published change set.
	KeyedNone KeyedReason = iota
	KeyedAddition
	KeyedRemoval
	KeyedReplacement
)

func (r KeyedReason) String() string {
	switch r {
	case KeyedAddition:
		return "Addition"
	case KeyedRemoval:
		return "Removal"
	case KeyedReplacement:
		return "Replacement"
	default:
		return "None"
	}
}

// KeyedChange is a single mutation against a keyed collection (a
// ChangeTrackingDictionary or ChangeTrackingCache): the addition, removal,
// or in-place replacement of the value stored under a key.
type KeyedChange[K, V any] struct {
	reason  KeyedReason
	key     K
	oldItem V
	newItem V
}

// NewKeyedAddition builds the Addition variant.
func NewKeyedAddition[K, V any](key K, item V) KeyedChange[K, V] {
	return KeyedChange[K, V]{reason: KeyedAddition, key: key, newItem: item}
}

// NewKeyedRemoval builds the Removal variant.
func NewKeyedRemoval[K, V any](key K, item V) KeyedChange[K, V] {
	return KeyedChange[K, V]{reason: KeyedRemoval, key: key, oldItem: item}
}

// NewKeyedReplacement builds the Replacement variant.
func NewKeyedReplacement[K, V any](key K, oldItem, newItem V) KeyedChange[K, V] {
	return KeyedChange[K, V]{reason: KeyedReplacement, key: key, oldItem: oldItem, newItem: newItem}
}

// Reason reports which variant this change carries.
func (c KeyedChange[K, V]) Reason() KeyedReason {
	return c.reason
}

// Key returns the key this change applies to, regardless of variant.
func (c KeyedChange[K, V]) Key() K {
	return c.key
}

// IsRemoval reports whether this change is a Removal.
func (c KeyedChange[K, V]) IsRemoval() bool {
	return c.reason == KeyedRemoval
}

// IsAdditionLike reports whether this change is a pure Addition, the only
// variant that can continue a Reset classification (see the changeset
// package's builders).
func (c KeyedChange[K, V]) IsAdditionLike() bool {
	return c.reason == KeyedAddition
}

// Addition returns the added key and item, or errs.ErrInvalidVariant if
// this change is not the Addition variant.
func (c KeyedChange[K, V]) Addition() (K, V, error) {
	if c.reason != KeyedAddition {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, errs.InvalidVariant("KeyedChange", "Addition")
	}
	return c.key, c.newItem, nil
}

// Removal returns the removed key and item, or errs.ErrInvalidVariant if
// this change is not the Removal variant.
func (c KeyedChange[K, V]) Removal() (K, V, error) {
	if c.reason != KeyedRemoval {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, errs.InvalidVariant("KeyedChange", "Removal")
	}
	return c.key, c.oldItem, nil
}

// Replacement returns the key, old item, and new item, or
// errs.ErrInvalidVariant if this change is not the Replacement variant.
func (c KeyedChange[K, V]) Replacement() (K, V, V, error) {
	if c.reason != KeyedReplacement {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, zeroV, errs.InvalidVariant("KeyedChange", "Replacement")
	}
	return c.key, c.oldItem, c.newItem, nil
}

// String renders a debug form, for diagnostics and test failure messages.
func (c KeyedChange[K, V]) String() string {
	switch c.reason {
	case KeyedAddition:
		return fmt.Sprintf("Addition(%v, %v)", c.key, c.newItem)
	case KeyedRemoval:
		return fmt.Sprintf("Removal(%v, %v)", c.key, c.oldItem)
	case KeyedReplacement:
		return fmt.Sprintf("Replacement(%v, %v -> %v)", c.key, c.oldItem, c.newItem)
	default:
		return "None"
	}
}
