package stream

// This file contains package-level generic functions for operations that
// change the element type of a Stream or need an extra constraint on it.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	strs, err := stream.Map(
//	    stream.Of(1, 2, 3, 4, 5).Filter(func(n int) bool { return n%2 == 0 }),
//	    strconv.Itoa,
//	).Collect()

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"
	"golang.org/x/crypto/blake2b"
)

// ─────────────────────────────────────────────────────────────────────────────
// Intermediate
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a stream with fn applied to every element, one output per input
// and in the same order.
func Map[T, R any](s *Stream[T], fn func(T) R) *Stream[R] {
	if fn == nil {
		return fail[T, R](s, invalidArgument("transform"))
	}
	return derive(s, seq.Map(s.seq, fn))
}

// FlatMap applies fn to every element and flattens the returned slices into a
// single stream.
//
//	words := stream.FlatMap(stream.Of("hello world", "foo bar"), strings.Fields)
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, R any](s *Stream[T], fn func(T) []R) *Stream[R] {
	if fn == nil {
		return fail[T, R](s, invalidArgument("transform"))
	}
	return derive(s, seq.FlatMapSlices(s.seq, fn))
}

// Distinct returns a stream that keeps only the first occurrence of every
// element.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	return derive(s, seq.Uniq(s.seq))
}

// DistinctBy keeps only the first element for every key extracted by key.
func DistinctBy[T any, K comparable](s *Stream[T], key func(T) K) *Stream[T] {
	if key == nil {
		return fail[T, T](s, invalidArgument("key extractor"))
	}
	return derive(s, seq.UniqBy(s.seq, key))
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the arithmetic sum of all elements, or 0 for an empty stream.
func Sum[N types.Number](s *Stream[N]) (N, error) {
	if err := s.check("sum"); err != nil {
		return 0, err
	}
	total := seq.Reduce(s.seq, func(acc, n N) N { return acc + n }, 0)
	s.trace("sum").Msg("stream: terminal operation completed")
	return total, nil
}

// SumBy sums the numeric value extracted by fn from every element.
//
//	minutes, err := stream.SumBy(stream.FromSlice(posts), blog.Post.ReadTime)
func SumBy[T any, N types.Number](s *Stream[T], fn func(T) N) (N, error) {
	if fn == nil {
		return 0, invalidArgument("transform")
	}
	return Sum(Map(s, fn))
}

// Average returns the arithmetic mean of all elements, or an empty value for
// an empty stream.
func Average[N types.Number](s *Stream[N]) (optional.Value[float64], error) {
	if err := s.check("average"); err != nil {
		return optional.Empty[float64](), err
	}
	var (
		total float64
		n     int
	)
	for v := range s.seq {
		total += float64(v)
		n++
	}
	if n == 0 {
		return optional.Empty[float64](), nil
	}
	return optional.Some(total / float64(n)), nil
}

// Fold reduces the stream to a single value of type R, starting from initial
// and applying fn left to right. An empty stream yields initial.
//
//	csv, err := stream.Fold(stream.Of(1, 2, 3), "", func(acc string, n int) string {
//	    if acc == "" {
//	        return strconv.Itoa(n)
//	    }
//	    return acc + "," + strconv.Itoa(n)
//	}) // → "1,2,3"
func Fold[T, R any](s *Stream[T], initial R, fn func(acc R, item T) R) (R, error) {
	if fn == nil {
		return initial, invalidArgument("accumulator")
	}
	if err := s.check("fold"); err != nil {
		return initial, err
	}
	return seq.Reduce(s.seq, fn, initial), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Join converts every element with fn and joins the results with sep.
func Join[T any](s *Stream[T], sep string, fn func(T) string) (string, error) {
	if fn == nil {
		return "", invalidArgument("transform")
	}
	parts, err := Map(s, fn).Collect()
	if err != nil {
		return "", err
	}
	return strings.Join(parts, sep), nil
}

// Checksum returns the hex-encoded BLAKE2b-256 digest of the stream. Every
// element is encoded with encode and written length-prefixed, so two streams
// have equal checksums exactly when they yield equal encodings in the same
// order. It is meant for reproducibility checks, e.g. that sorting twice gives
// the same result as sorting once.
func Checksum[T any](s *Stream[T], encode func(T) []byte) (string, error) {
	if encode == nil {
		return "", invalidArgument("encoder")
	}
	if err := s.check("checksum"); err != nil {
		return "", err
	}
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	var prefix [binary.MaxVarintLen64]byte
	n := 0
	for item := range s.seq {
		b := encode(item)
		h.Write(prefix[:binary.PutUvarint(prefix[:], uint64(len(b)))])
		h.Write(b)
		n++
	}
	s.trace("checksum").Int("elements", n).Msg("stream: terminal operation completed")
	return hex.EncodeToString(h.Sum(nil)), nil
}
