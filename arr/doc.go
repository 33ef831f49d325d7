// Package arr provides eager, allocation-per-call counterparts of the
// [github.com/hasbyte1/go-stream-utils/stream] operations for callers that
// already hold a plain []T and do not need laziness.
//
// The helpers share their semantics with stream where they overlap: Sort is
// stable, GroupBy keeps groups in first-appearance order and omits keys
// with no element, KeyBy rejects colliding keys
// with a [*stream.DuplicateKeyError], and Reduce reports an empty input
// instead of inventing an identity value:
//
//	evens  := arr.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
//	sorted := arr.Sort(names, stream.NaturalOrder[string]())
//	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
//
// # Nil callbacks
//
// Functions that return an error report a nil callback as
// [stream.ErrInvalidArgument]. The others panic with an error wrapping it,
// the same way the slices package panics on misuse.
package arr
