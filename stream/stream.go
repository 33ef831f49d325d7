package stream

import (
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/rs/zerolog"
)

// Stream is a lazy, immutable pipeline over an ordered sequence of T.
//
// Every intermediate method returns a *new* Stream, leaving the receiver
// unchanged. No callback runs until a terminal method is called, and each
// terminal call pulls every element through every stage at most once.
//
// # Creating a stream
//
//	s := stream.Of(1, 2, 3, 4, 5)
//	s := stream.FromSlice([]string{"a", "b", "c"})
//	s := stream.FromSeq(maps.Keys(m))
//	s := stream.Empty[int]()
//
// # Method chaining
//
//	top, err := stream.FromSlice(posts).
//	    Filter(func(p Post) bool { return p.ReadTime() > 10 }).
//	    Sorted(stream.Comparing(Post.ReadTime).Reversed()).
//	    Limit(3).
//	    Collect()
//
// # Conventions
//
//   - Terminal methods return an error as their last result; it carries
//     [ErrInvalidArgument] recorded by a stage built with a nil callback.
//   - Type-transforming operations ([Map], [GroupBy], …) are package-level
//     functions.
//   - A Stream may be consumed more than once.
type Stream[T any] struct {
	seq iter.Seq[T]
	err error
	log zerolog.Logger
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of creates a Stream from a variadic list of items (copied).
func Of[T any](items ...T) *Stream[T] {
	return FromSlice(items)
}

// FromSlice creates a Stream over a copy of items. Later changes to items are
// not visible to the stream.
func FromSlice[T any](items []T) *Stream[T] {
	return &Stream[T]{seq: seq.FromSlice(slices.Clone(items)), log: zerolog.Nop()}
}

// FromSeq wraps an existing sequence. The sequence is not copied; it is
// iterated once per terminal call.
func FromSeq[T any](src iter.Seq[T]) *Stream[T] {
	if src == nil {
		return &Stream[T]{seq: seq.Empty[T](), err: invalidArgument("source"), log: zerolog.Nop()}
	}
	return &Stream[T]{seq: src, log: zerolog.Nop()}
}

// Empty creates an empty Stream of type T.
func Empty[T any]() *Stream[T] {
	return &Stream[T]{seq: seq.Empty[T](), log: zerolog.Nop()}
}

// Concat joins streams sequentially: every element of the first stream is
// yielded before the second, and so on. The result carries the first error
// recorded by any input and the logger of the first input.
func Concat[T any](streams ...*Stream[T]) *Stream[T] {
	out := Empty[T]()
	parts := make([]iter.Seq[T], 0, len(streams))
	for i, s := range streams {
		if s == nil {
			out.err = invalidArgument("stream")
			return out
		}
		if i == 0 {
			out.log = s.log
		}
		if s.err != nil && out.err == nil {
			out.err = s.err
		}
		parts = append(parts, s.seq)
	}
	out.seq = seq.Concat(parts...)
	return out
}

// derive builds the next stage, inheriting the error and logger of s.
func derive[T, R any](s *Stream[T], next iter.Seq[R]) *Stream[R] {
	return &Stream[R]{seq: next, err: s.err, log: s.log}
}

// fail builds a stage that carries err, unless s already carries one.
func fail[T, R any](s *Stream[T], err error) *Stream[R] {
	if s.err != nil {
		err = s.err
	}
	return &Stream[R]{seq: seq.Empty[R](), err: err, log: s.log}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// WithLogger returns a copy of s that logs terminal operations to l at debug
// level. Every stage derived from the copy inherits l.
func (s *Stream[T]) WithLogger(l zerolog.Logger) *Stream[T] {
	return &Stream[T]{seq: s.seq, err: s.err, log: l}
}

// Err returns the error recorded while building the pipeline, if any.
func (s *Stream[T]) Err() error { return s.err }

// Seq returns the composed sequence so it can be ranged over directly.
// A stream that carries an error yields nothing; check [Stream.Err].
func (s *Stream[T]) Seq() iter.Seq[T] {
	if s.err != nil {
		return seq.Empty[T]()
	}
	return s.seq
}

// trace starts a debug event for a terminal operation.
func (s *Stream[T]) trace(op string) *zerolog.Event {
	return s.log.Debug().Str("op", op)
}

// check reports the recorded error, if any, logging the rejection.
func (s *Stream[T]) check(op string) error {
	if s.err != nil {
		s.trace(op).Err(s.err).Msg("stream: terminal operation rejected")
	}
	return s.err
}

// ─────────────────────────────────────────────────────────────────────────────
// Intermediate operations (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a stream of the elements for which pred returns true,
// preserving their relative order.
func (s *Stream[T]) Filter(pred func(T) bool) *Stream[T] {
	if pred == nil {
		return fail[T, T](s, invalidArgument("predicate"))
	}
	return derive(s, seq.Filter(s.seq, pred))
}

// Reject returns a stream without the elements for which pred returns true.
// It is the complement of [Stream.Filter].
func (s *Stream[T]) Reject(pred func(T) bool) *Stream[T] {
	if pred == nil {
		return fail[T, T](s, invalidArgument("predicate"))
	}
	return s.Filter(func(item T) bool { return !pred(item) })
}

// Peek calls fn for every element as it flows through the pipeline and passes
// the element on unchanged. Useful for debugging.
func (s *Stream[T]) Peek(fn func(T)) *Stream[T] {
	if fn == nil {
		return fail[T, T](s, invalidArgument("consumer"))
	}
	return derive(s, seq.Tap(s.seq, fn))
}

// Limit returns a stream of at most n elements. Upstream stops being pulled
// as soon as the n-th element is yielded; n <= 0 pulls nothing.
func (s *Stream[T]) Limit(n int) *Stream[T] {
	if n <= 0 {
		return derive(s, seq.Empty[T]())
	}
	src := s.seq
	return derive(s, func(yield func(T) bool) {
		taken := 0
		for item := range src {
			if !yield(item) {
				return
			}
			if taken++; taken == n {
				return
			}
		}
	})
}

// Skip returns a stream without its first n elements.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	if n <= 0 {
		return s
	}
	return derive(s, seq.Skip(s.seq, n))
}

// TakeWhile returns the leading elements for which pred returns true and stops
// pulling at the first element that fails it.
func (s *Stream[T]) TakeWhile(pred func(T) bool) *Stream[T] {
	if pred == nil {
		return fail[T, T](s, invalidArgument("predicate"))
	}
	return derive(s, seq.TakeWhile(s.seq, pred))
}

// Sorted returns a stream ordered by cmp. The sort is stable: elements that
// compare equal keep their encounter order. The source is never mutated.
//
// Sorted is a barrier: the first element is yielded only after the whole
// upstream has been pulled, once per terminal call.
func (s *Stream[T]) Sorted(cmp Comparator[T]) *Stream[T] {
	if cmp == nil {
		return fail[T, T](s, invalidArgument("comparator"))
	}
	src := s.seq
	return derive(s, func(yield func(T) bool) {
		items := seq.Collect(src)
		slices.SortStableFunc(items, cmp)
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal operations
// ─────────────────────────────────────────────────────────────────────────────

// Collect materializes the stream into a new slice. An empty stream yields an
// empty (possibly nil) slice.
func (s *Stream[T]) Collect() ([]T, error) {
	if err := s.check("collect"); err != nil {
		return nil, err
	}
	items := seq.Collect(s.seq)
	s.trace("collect").Int("elements", len(items)).Msg("stream: terminal operation completed")
	return items, nil
}

// Count returns the number of elements.
func (s *Stream[T]) Count() (int, error) {
	if err := s.check("count"); err != nil {
		return 0, err
	}
	n := seq.Count(s.seq)
	s.trace("count").Int("elements", n).Msg("stream: terminal operation completed")
	return n, nil
}

// ForEach calls fn for every element in order.
func (s *Stream[T]) ForEach(fn func(T)) error {
	if fn == nil {
		return invalidArgument("consumer")
	}
	if err := s.check("for_each"); err != nil {
		return err
	}
	seq.ForEach(s.seq, fn)
	return nil
}

// AnyMatch reports whether at least one element satisfies pred. It stops at
// the first match and returns false for an empty stream.
func (s *Stream[T]) AnyMatch(pred func(T) bool) (bool, error) {
	if pred == nil {
		return false, invalidArgument("predicate")
	}
	if err := s.check("any_match"); err != nil {
		return false, err
	}
	ok := seq.Exists(s.seq, pred)
	s.trace("any_match").Bool("result", ok).Msg("stream: terminal operation completed")
	return ok, nil
}

// AllMatch reports whether every element satisfies pred. It stops at the first
// element that fails and returns true for an empty stream.
func (s *Stream[T]) AllMatch(pred func(T) bool) (bool, error) {
	if pred == nil {
		return false, invalidArgument("predicate")
	}
	if err := s.check("all_match"); err != nil {
		return false, err
	}
	ok := seq.Every(s.seq, pred)
	s.trace("all_match").Bool("result", ok).Msg("stream: terminal operation completed")
	return ok, nil
}

// NoneMatch reports whether no element satisfies pred. It returns true for an
// empty stream.
func (s *Stream[T]) NoneMatch(pred func(T) bool) (bool, error) {
	ok, err := s.AnyMatch(pred)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// FindFirst returns the first element, or an empty value when the stream is
// empty. Only one element is pulled.
func (s *Stream[T]) FindFirst() (optional.Value[T], error) {
	if err := s.check("find_first"); err != nil {
		return optional.Empty[T](), err
	}
	for item := range s.seq {
		return optional.Some(item), nil
	}
	return optional.Empty[T](), nil
}

// Reduce folds the elements left to right with op and no seed:
// op(op(op(e0, e1), e2), e3). An empty stream yields an empty value; a single
// element is returned unchanged. The result is present whenever the stream
// is non-empty, even if it is a nil pointer.
//
// For a seeded fold that may change the result type, use [Fold].
func (s *Stream[T]) Reduce(op func(acc, item T) T) (optional.Value[T], error) {
	if op == nil {
		return optional.Empty[T](), invalidArgument("operator")
	}
	if err := s.check("reduce"); err != nil {
		return optional.Empty[T](), err
	}
	var (
		acc  T
		seen bool
	)
	for item := range s.seq {
		if !seen {
			acc, seen = item, true
			continue
		}
		acc = op(acc, item)
	}
	s.trace("reduce").Bool("present", seen).Msg("stream: terminal operation completed")
	if !seen {
		return optional.Empty[T](), nil
	}
	return optional.Some(acc), nil
}

// Min returns the smallest element according to cmp. On ties the first
// encountered element wins.
func (s *Stream[T]) Min(cmp Comparator[T]) (optional.Value[T], error) {
	if cmp == nil {
		return optional.Empty[T](), invalidArgument("comparator")
	}
	return s.Reduce(func(acc, item T) T {
		if cmp(item, acc) < 0 {
			return item
		}
		return acc
	})
}

// Max returns the largest element according to cmp. On ties the first
// encountered element wins.
func (s *Stream[T]) Max(cmp Comparator[T]) (optional.Value[T], error) {
	if cmp == nil {
		return optional.Empty[T](), invalidArgument("comparator")
	}
	return s.Reduce(func(acc, item T) T {
		if cmp(item, acc) > 0 {
			return item
		}
		return acc
	})
}

// Partition splits the stream in one pass: matched holds the elements for
// which pred returns true, rest the others, both in encounter order.
func (s *Stream[T]) Partition(pred func(T) bool) (matched, rest []T, err error) {
	if pred == nil {
		return nil, nil, invalidArgument("predicate")
	}
	if err := s.check("partition"); err != nil {
		return nil, nil, err
	}
	matched, rest = []T{}, []T{}
	for item := range s.seq {
		if pred(item) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matched, rest, nil
}
