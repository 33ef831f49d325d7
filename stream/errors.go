package stream

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Stream terminal operations.
var (
	// ErrInvalidArgument is returned when a required callback (predicate,
	// transform, comparator, key extractor, merge function) or source is nil.
	// The error is recorded when the stage is built and reported by the first
	// terminal operation, before any element is evaluated.
	ErrInvalidArgument = errors.New("stream: invalid argument")

	// ErrDuplicateKey is returned by [ToAssociation] and [ToMap] when two
	// elements produce the same key and no merge function was supplied.
	ErrDuplicateKey = errors.New("stream: duplicate key")
)

// DuplicateKeyError reports the first key collision found while building an
// association. It matches [ErrDuplicateKey] with [errors.Is].
type DuplicateKeyError struct {
	// Key is the colliding key.
	Key any
}

// Error implements the error interface.
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDuplicateKey.Error(), e.Key)
}

// Is reports whether target is [ErrDuplicateKey].
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

func invalidArgument(what string) error {
	return fmt.Errorf("%w: %s must not be nil", ErrInvalidArgument, what)
}
