// Package stream provides a lazy, chainable sequence pipeline over Go 1.23
// range-over-func iterators ([iter.Seq]).
//
// # Overview
//
// The central type is [Stream][T], an immutable description of a chain of
// stages over an ordered source. Nothing runs until a terminal operation is
// called:
//
//	evens, err := stream.Of(1, 2, 3, 4, 5, 6, 7, 8, 9).
//	    Filter(func(n int) bool { return n > 5 && n%2 == 0 }).
//	    Collect() // → [6 8], nil
//
// # Laziness
//
// Intermediate operations (Filter, Sorted, Peek, Limit, …) return a new
// Stream whose sequence composes over the previous one. A terminal operation
// (Collect, Count, AnyMatch, Reduce, [Sum], [GroupBy], [ToAssociation], …)
// pulls each element through each stage at most once. Elements dropped by an
// earlier stage never reach a later one.
//
// A Stream can be reused: every terminal call re-evaluates the chain from the
// source snapshot taken at construction.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type, or that need extra constraints on
// it, are package-level functions:
//
//	strs, _ := stream.Map(stream.Of(1, 2, 3),
//	    func(n int) string { return strconv.Itoa(n * 2) }).Collect()
//
//	total, _ := stream.Sum(stream.Of(1, 2, 3, 4, 5)) // → 15
//
// Package-level functions: [Map], [FlatMap], [Distinct], [DistinctBy],
// [Sum], [SumBy], [Average], [Fold], [GroupBy], [ToAssociation],
// [ToAssociationMerge], [ToMap], [ToMapMerge], [Join], [Checksum].
//
// # Errors
//
// Stages cannot return errors without breaking method chaining. A stage built
// with a nil callback records [ErrInvalidArgument] on the stream it returns,
// and every terminal operation reports it without evaluating anything.
// [ToAssociation] reports collisions as a [*DuplicateKeyError].
package stream
