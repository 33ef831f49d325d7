package stream

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
)

// Enumerable is the type-preserving surface of [Stream][T].
//
// Accept Enumerable in your own functions so that callers can pass a Stream
// at any point of a chain, or substitute another implementation, without
// depending on the concrete *Stream type.
type Enumerable[T any] interface {
	// Seq returns the composed sequence; it yields nothing when Err is set.
	Seq() iter.Seq[T]

	// Err returns the error recorded while building the pipeline.
	Err() error

	// Filter returns the elements for which pred returns true.
	Filter(pred func(T) bool) *Stream[T]

	// Sorted returns the elements in stable cmp order.
	Sorted(cmp Comparator[T]) *Stream[T]

	// Collect materializes the elements.
	Collect() ([]T, error)

	// Count returns the number of elements.
	Count() (int, error)

	// AnyMatch reports whether some element satisfies pred.
	AnyMatch(pred func(T) bool) (bool, error)

	// AllMatch reports whether every element satisfies pred.
	AllMatch(pred func(T) bool) (bool, error)

	// Reduce folds the elements with op and no seed.
	Reduce(op func(acc, item T) T) (optional.Value[T], error)
}

var _ Enumerable[int] = (*Stream[int])(nil)
