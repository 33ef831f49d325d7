package stream

import (
	"cmp"

	"github.com/go-softwarelab/common/pkg/types"
)

// Comparator orders two values: negative when a sorts before b, zero when they
// are equal, positive when a sorts after b. It has the shape expected by
// [slices.SortStableFunc].
type Comparator[T any] func(a, b T) int

// NaturalOrder compares ordered values ascending.
func NaturalOrder[T types.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(a, b) }
}

// ReverseOrder compares ordered values descending.
func ReverseOrder[T types.Ordered]() Comparator[T] {
	return NaturalOrder[T]().Reversed()
}

// Comparing orders values ascending by the key extracted with key.
//
//	byReadTime := stream.Comparing(func(p blog.Post) int { return p.ReadTime() })
func Comparing[T any, K types.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Reversed returns a comparator with the opposite order.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// ThenComparing returns a comparator that falls back to next when c reports
// the values as equal.
func (c Comparator[T]) ThenComparing(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}
