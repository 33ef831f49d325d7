package arr

import (
	"fmt"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"

	"github.com/hasbyte1/go-stream-utils/stream"
)

// required panics with an error wrapping [stream.ErrInvalidArgument] when a
// callback is missing.
func required(ok bool, what string) {
	if !ok {
		panic(fmt.Errorf("%w: %s must not be nil", stream.ErrInvalidArgument, what))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		required(fns[0] != nil, "predicate")
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		required(fns[0] != nil, "predicate")
		for i := len(items) - 1; i >= 0; i-- {
			if fns[0](items[i]) {
				return items[i], true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// AnyMatch reports whether at least one element satisfies fn. It stops at the
// first match and is false for an empty slice.
func AnyMatch[T any](items []T, fn func(T) bool) bool {
	required(fn != nil, "predicate")
	return slices.ContainsFunc(items, fn)
}

// AllMatch reports whether every element satisfies fn. It stops at the first
// element that fails and is true for an empty slice.
func AllMatch[T any](items []T, fn func(T) bool) bool {
	required(fn != nil, "predicate")
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// NoneMatch reports whether no element satisfies fn.
func NoneMatch[T any](items []T, fn func(T) bool) bool {
	return !AnyMatch(items, fn)
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	required(fn != nil, "predicate")
	return slices.IndexFunc(items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns a new slice of the same length.
func Map[T, U any](items []T, fn func(T) U) []U {
	required(fn != nil, "transform")
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Filter returns the elements for which fn returns true, in order.
func Filter[T any](items []T, fn func(T) bool) []T {
	required(fn != nil, "predicate")
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn returns false.
func Reject[T any](items []T, fn func(T) bool) []T {
	required(fn != nil, "predicate")
	return Filter(items, func(item T) bool { return !fn(item) })
}

// FlatMap applies fn to each element (producing a []U) and flattens the results.
func FlatMap[T, U any](items []T, fn func(T) []U) []U {
	required(fn != nil, "transform")
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item)...)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
// ─────────────────────────────────────────────────────────────────────────────

// Fold reduces items to a single value of type U, starting from initial.
func Fold[T, U any](items []T, fn func(U, T) U, initial U) U {
	required(fn != nil, "accumulator")
	result := initial
	for _, item := range items {
		result = fn(result, item)
	}
	return result
}

// Reduce folds items left to right with no seed. Returns the zero value and
// false for an empty slice; a single element is returned unchanged.
func Reduce[T any](items []T, fn func(acc, item T) T) (T, bool) {
	required(fn != nil, "operator")
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	result := items[0]
	for _, item := range items[1:] {
		result = fn(result, item)
	}
	return result, true
}

// Sum returns the arithmetic sum of items, or 0 for an empty slice.
func Sum[N types.Number](items []N) N {
	var total N
	for _, n := range items {
		total += n
	}
	return total
}

// Min returns the smallest element according to cmp; ties keep the first.
// Returns the zero value and false if items is empty.
func Min[T any](items []T, cmp stream.Comparator[T]) (T, bool) {
	required(cmp != nil, "comparator")
	return Reduce(items, func(acc, item T) T {
		if cmp(item, acc) < 0 {
			return item
		}
		return acc
	})
}

// Max returns the largest element according to cmp; ties keep the first.
// Returns the zero value and false if items is empty.
func Max[T any](items []T, cmp stream.Comparator[T]) (T, bool) {
	required(cmp != nil, "comparator")
	return Reduce(items, func(acc, item T) T {
		if cmp(item, acc) > 0 {
			return item
		}
		return acc
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence (requires comparable T).
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, func(item T) T { return item })
}

// UniqueBy returns elements with duplicates removed using a key function.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	required(fn != nil, "key extractor")
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for chunk := range slices.Chunk(items, size) {
		chunks = append(chunks, slices.Clone(chunk))
	}
	return chunks
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	out := slices.Clone(items)
	slices.Reverse(out)
	return out
}

// Partition splits items into two slices: those satisfying fn and those that
// do not, both in their original order.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	required(fn != nil, "predicate")
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & keying
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by the key returned by fn. Groups are ordered by the
// first appearance of their key, elements within a group keep their order,
// and keys with no element are absent.
func GroupBy[T any, K comparable](items []T, fn func(T) K) *stream.Groups[K, T] {
	required(fn != nil, "key extractor")
	groups, err := stream.GroupBy(stream.FromSlice(items), fn)
	if err != nil {
		panic(err)
	}
	return groups
}

// KeyBy returns a map keyed by the value extracted by fn. Two elements with
// the same key are rejected with a [*stream.DuplicateKeyError]; use
// [KeyByMerge] to resolve collisions.
func KeyBy[T any, K comparable](items []T, fn func(T) K) (map[K]T, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: key extractor must not be nil", stream.ErrInvalidArgument)
	}
	out := make(map[K]T, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := out[k]; ok {
			return nil, &stream.DuplicateKeyError{Key: k}
		}
		out[k] = item
	}
	return out, nil
}

// KeyByMerge is like [KeyBy] but resolves collisions with
// merge(existing, incoming).
func KeyByMerge[T any, K comparable](items []T, fn func(T) K, merge func(existing, incoming T) T) map[K]T {
	required(fn != nil, "key extractor")
	required(merge != nil, "merge function")
	out := make(map[K]T, len(items))
	for _, item := range items {
		k := fn(item)
		if existing, ok := out[k]; ok {
			out[k] = merge(existing, item)
			continue
		}
		out[k] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a copy of items sorted stably by cmp.
func Sort[T any](items []T, cmp stream.Comparator[T]) []T {
	required(cmp != nil, "comparator")
	out := slices.Clone(items)
	slices.SortStableFunc(out, cmp)
	return out
}
