// Package errs defines the error taxonomy shared by every change-tracking
// collection: a small set of sentinel errors plus constructors that wrap
// them with the offending value, in the style of dockyard's apiError
// package. Callers should use errors.Is against the sentinels below.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNullArgument is returned when a mandatory argument is nil. The
	// only such argument is Cache's key-selector; nil equality functions
	// select the default and nil slices are treated as empty.
	ErrNullArgument = errors.New("null argument")

	// ErrDuplicateKey is returned by Add when the key is already present.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeyNotFound is returned by a keyed lookup for a missing key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange is returned when a list index is outside the
	// collection's valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned for malformed range arguments, such as
	// a RemoveRange span that runs past the end of the list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidVariant is returned when an atomic change's typed accessor
	// is called against a change carrying a different tag.
	ErrInvalidVariant = errors.New("invalid variant")
)

// NullArgument reports that the named argument was nil or a zero value
// where a value was required.
func NullArgument(name string) error {
	return fmt.Errorf("%s must not be nil: %w", name, ErrNullArgument)
}

// DuplicateKey reports that key is already present in a keyed collection.
func DuplicateKey(key any) error {
	return fmt.Errorf("key %v already exists: %w", key, ErrDuplicateKey)
}

// KeyNotFound reports that key is absent from a keyed collection.
func KeyNotFound(key any) error {
	return fmt.Errorf("key %v not found: %w", key, ErrKeyNotFound)
}

// IndexOutOfRange reports that index is outside [0, length) (or, for an
// insertion point, [0, length]).
func IndexOutOfRange(index, length int) error {
	return fmt.Errorf("index %d out of range for length %d: %w", index, length, ErrIndexOutOfRange)
}

// InvalidArgument reports a malformed argument with a human-readable
// explanation.
func InvalidArgument(message string) error {
	return fmt.Errorf("%s: %w", message, ErrInvalidArgument)
}

// InvalidVariant reports that accessor was called on a typeName value that
// does not carry that variant's tag.
func InvalidVariant(typeName, accessor string) error {
	return fmt.Errorf("%s is not a %s: %w", typeName, accessor, ErrInvalidVariant)
}
