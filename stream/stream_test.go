package stream_test

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-stream-utils/stream"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *stream.Stream[int] { return stream.Of(ns...) }

func collect[T any](t *testing.T, s *stream.Stream[T]) []T {
	t.Helper()
	got, err := s.Collect()
	require.NoError(t, err)
	return got
}

func isEven(n int) bool { return n%2 == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestOf(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, collect(t, ints(1, 2, 3)))
}

func TestFromSliceCopies(t *testing.T) {
	src := []string{"a", "b", "c"}
	s := stream.FromSlice(src)
	src[0] = "z"
	assert.Equal(t, []string{"a", "b", "c"}, collect(t, s))
}

func TestFromSeq(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	keys := collect(t, stream.FromSeq(maps.Keys(m)).Sorted(stream.NaturalOrder[string]()))
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestFromSeqNil(t *testing.T) {
	_, err := stream.FromSeq[int](nil).Collect()
	require.ErrorIs(t, err, stream.ErrInvalidArgument)
}

func TestEmpty(t *testing.T) {
	n, err := stream.Empty[int]().Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestConcat(t *testing.T) {
	got := collect(t, stream.Concat(ints(1, 2), stream.Empty[int](), ints(3)))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestConcatPropagatesError(t *testing.T) {
	_, err := stream.Concat(ints(1), ints(2).Filter(nil)).Collect()
	require.ErrorIs(t, err, stream.ErrInvalidArgument)

	_, err = stream.Concat(ints(1), nil).Collect()
	require.ErrorIs(t, err, stream.ErrInvalidArgument)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sum
// ─────────────────────────────────────────────────────────────────────────────

func TestSum(t *testing.T) {
	total, err := stream.Sum(ints(1, 2, 3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, 15, total)
}

func TestSumEmpty(t *testing.T) {
	total, err := stream.Sum(stream.Empty[int64]())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestSumIsOrderIndependent(t *testing.T) {
	src := []int{7, -3, 12, 0, 5, 5, -40}
	rev := slices.Clone(src)
	slices.Reverse(rev)

	a, err := stream.Sum(stream.FromSlice(src))
	require.NoError(t, err)
	b, err := stream.Sum(stream.FromSlice(rev))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSumBy(t *testing.T) {
	total, err := stream.SumBy(stream.Of("a", "bb", "ccc"), func(s string) int { return len(s) })
	require.NoError(t, err)
	assert.Equal(t, 6, total)
}

func TestAverage(t *testing.T) {
	avg, err := stream.Average(ints(1, 2, 3, 4))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, avg.MustGet(), 1e-9)

	avg, err = stream.Average(stream.Empty[int]())
	require.NoError(t, err)
	assert.True(t, avg.IsEmpty())
}

// ─────────────────────────────────────────────────────────────────────────────
// Filter / Map
// ─────────────────────────────────────────────────────────────────────────────

func TestFilter(t *testing.T) {
	got := collect(t, ints(1, 2, 3, 4, 5, 6, 7, 8, 9).
		Filter(func(n int) bool { return n > 5 && n%2 == 0 }))
	assert.Equal(t, []int{6, 8}, got)
}

func TestFilterKeepsOrderAndPartitionsByPredicate(t *testing.T) {
	src := []int{9, 4, 7, 2, 2, 11, 8, 3}
	kept := collect(t, stream.FromSlice(src).Filter(isEven))

	assert.Equal(t, []int{4, 2, 2, 8}, kept)
	for _, n := range kept {
		assert.True(t, isEven(n))
	}
	dropped := collect(t, stream.FromSlice(src).Reject(isEven))
	assert.Equal(t, []int{9, 7, 11, 3}, dropped)
	for _, n := range dropped {
		assert.False(t, isEven(n))
	}
}

func TestMap(t *testing.T) {
	got := collect(t, stream.Map(ints(1, 2, 3, 4, 5), func(n int) string {
		return strconv.Itoa(n * 2)
	}))
	assert.Equal(t, []string{"2", "4", "6", "8", "10"}, got)
}

func TestMapPreservesLength(t *testing.T) {
	for _, src := range [][]int{nil, {1}, {3, 1, 2}, {5, 5, 5, 5, 5, 5}} {
		n, err := stream.Map(stream.FromSlice(src), func(n int) bool { return n > 2 }).Count()
		require.NoError(t, err)
		assert.Equal(t, len(src), n)
	}
}

func TestFlatMap(t *testing.T) {
	got := collect(t, stream.FlatMap(ints(1, 2, 3), func(n int) []string {
		return []string{strconv.Itoa(n), strconv.Itoa(n * 10)}
	}))
	assert.Equal(t, []string{"1", "10", "2", "20", "3", "30"}, got)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, collect(t, stream.Distinct(ints(3, 1, 3, 2, 1))))
}

func TestDistinctBy(t *testing.T) {
	got := collect(t, stream.DistinctBy(stream.Of("apple", "avocado", "banana", "blueberry", "cherry"),
		func(s string) byte { return s[0] }))
	assert.Equal(t, []string{"apple", "banana", "cherry"}, got)
}

func TestLimitSkipTakeWhile(t *testing.T) {
	assert.Equal(t, []int{1, 2}, collect(t, ints(1, 2, 3, 4).Limit(2)))
	assert.Empty(t, collect(t, ints(1, 2, 3).Limit(0)))
	assert.Equal(t, []int{3, 4}, collect(t, ints(1, 2, 3, 4).Skip(2)))
	assert.Equal(t, []int{1, 2, 3}, collect(t, ints(1, 2, 3).Skip(-1)))
	assert.Empty(t, collect(t, ints(1, 2, 3).Skip(5)))
	assert.Equal(t, []int{2, 4}, collect(t, ints(2, 4, 5, 6).TakeWhile(isEven)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Laziness
// ─────────────────────────────────────────────────────────────────────────────

func TestStagesDoNotRunBeforeTerminal(t *testing.T) {
	calls := 0
	s := stream.Map(ints(1, 2, 3).Filter(func(n int) bool {
		calls++
		return true
	}), func(n int) int {
		calls++
		return n
	}).Sorted(stream.NaturalOrder[int]())

	assert.Zero(t, calls, "no stage may run before a terminal operation")

	_, err := s.Collect()
	require.NoError(t, err)
	assert.Equal(t, 6, calls)
}

func TestMapSkipsFilteredElements(t *testing.T) {
	var mapped []int
	got := collect(t, stream.Map(ints(1, 2, 3, 4, 5).Filter(isEven), func(n int) int {
		mapped = append(mapped, n)
		return n * n
	}))
	assert.Equal(t, []int{4, 16}, got)
	assert.Equal(t, []int{2, 4}, mapped)
}

func TestEachElementSeenOncePerTerminal(t *testing.T) {
	seen := map[int]int{}
	s := ints(5, 3, 1, 4).
		Peek(func(n int) { seen[n]++ }).
		Sorted(stream.NaturalOrder[int]())

	_, err := s.Collect()
	require.NoError(t, err)
	assert.Equal(t, map[int]int{5: 1, 3: 1, 1: 1, 4: 1}, seen)

	_, err = s.Count()
	require.NoError(t, err)
	assert.Equal(t, map[int]int{5: 2, 3: 2, 1: 2, 4: 2}, seen)
}

func TestLimitStopsPullingUpstream(t *testing.T) {
	pulled := 0
	got := collect(t, ints(1, 2, 3, 4, 5).Peek(func(int) { pulled++ }).Limit(2))
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, pulled)
}

// ─────────────────────────────────────────────────────────────────────────────
// Matching
// ─────────────────────────────────────────────────────────────────────────────

func TestAnyMatch(t *testing.T) {
	ok, err := ints(1, 2, 3, 4, 5).AnyMatch(func(n int) bool { return n > 4 })
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ints(1, 2, 3).AnyMatch(func(n int) bool { return n > 4 })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnyMatchShortCircuits(t *testing.T) {
	checked := 0
	ok, err := ints(1, 5, 2, 3).AnyMatch(func(n int) bool {
		checked++
		return n > 4
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, checked)
}

func TestAllMatch(t *testing.T) {
	ok, err := ints(2, 4, 6).AllMatch(isEven)
	require.NoError(t, err)
	assert.True(t, ok)

	checked := 0
	ok, err = ints(2, 3, 4, 6).AllMatch(func(n int) bool {
		checked++
		return isEven(n)
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, checked)
}

func TestMatchOnEmpty(t *testing.T) {
	empty := stream.Empty[int]()

	anyOK, err := empty.AnyMatch(isEven)
	require.NoError(t, err)
	assert.False(t, anyOK)

	allOK, err := empty.AllMatch(isEven)
	require.NoError(t, err)
	assert.True(t, allOK)

	noneOK, err := empty.NoneMatch(isEven)
	require.NoError(t, err)
	assert.True(t, noneOK)
}

func TestFindFirst(t *testing.T) {
	first, err := ints(7, 8).FindFirst()
	require.NoError(t, err)
	assert.Equal(t, 7, first.MustGet())

	first, err = stream.Empty[int]().FindFirst()
	require.NoError(t, err)
	assert.True(t, first.IsEmpty())
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

func TestSortedNaturalOrder(t *testing.T) {
	got := collect(t, stream.Of("B", "A", "D", "E", "C").Sorted(stream.NaturalOrder[string]()))
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, got)
}

func TestSortedDoesNotMutateSource(t *testing.T) {
	src := []int{3, 1, 2}
	s := stream.FromSlice(src)
	assert.Equal(t, []int{1, 2, 3}, collect(t, s.Sorted(stream.NaturalOrder[int]())))
	assert.Equal(t, []int{3, 1, 2}, collect(t, s))
	assert.Equal(t, []int{3, 1, 2}, src)
}

func TestSortedIsStable(t *testing.T) {
	type word struct {
		text string
		pos  int
	}
	words := []word{{"bb", 0}, {"a", 1}, {"cc", 2}, {"d", 3}, {"ee", 4}}
	got := collect(t, stream.FromSlice(words).Sorted(stream.Comparing(func(w word) int { return len(w.text) })))
	assert.Equal(t, []word{{"a", 1}, {"d", 3}, {"bb", 0}, {"cc", 2}, {"ee", 4}}, got)
}

func TestSortedIsIdempotent(t *testing.T) {
	byNatural := stream.NaturalOrder[int]()
	encode := func(n int) []byte { return []byte(strconv.Itoa(n)) }

	once := stream.Of(9, -1, 4, 4, 0, 12, 3).Sorted(byNatural)
	twice := once.Sorted(byNatural)

	assert.Equal(t, collect(t, once), collect(t, twice))

	a, err := stream.Checksum(once, encode)
	require.NoError(t, err)
	b, err := stream.Checksum(twice, encode)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComparators(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, collect(t, ints(1, 3, 2).Sorted(stream.ReverseOrder[int]())))

	byLen := stream.Comparing(func(s string) int { return len(s) })
	got := collect(t, stream.Of("bb", "c", "aa", "b").Sorted(byLen.ThenComparing(stream.NaturalOrder[string]())))
	assert.Equal(t, []string{"b", "c", "aa", "bb"}, got)

	got = collect(t, stream.Of("bb", "c", "aaa").Sorted(byLen.Reversed()))
	assert.Equal(t, []string{"aaa", "bb", "c"}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
// ─────────────────────────────────────────────────────────────────────────────

func TestReducePositivesByMultiplication(t *testing.T) {
	product, err := stream.Of(15.0, -8.0, 10.0, -8.6, 2.0).
		Filter(func(f float64) bool { return f > 0 }).
		Reduce(func(acc, f float64) float64 { return acc * f })
	require.NoError(t, err)
	require.True(t, product.IsPresent())
	assert.InDelta(t, 300.0, product.MustGet(), 1e-9)
}

func TestReduceEmptyAndSingle(t *testing.T) {
	calls := 0
	op := func(acc, n int) int {
		calls++
		return acc + n
	}

	empty, err := stream.Empty[int]().Reduce(op)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	single, err := ints(42).Reduce(op)
	require.NoError(t, err)
	assert.Equal(t, 42, single.MustGet())
	assert.Zero(t, calls)
}

func TestReduceIsLeftAssociative(t *testing.T) {
	got, err := stream.Of("a", "b", "c").Reduce(func(acc, s string) string { return "(" + acc + s + ")" })
	require.NoError(t, err)
	assert.Equal(t, "((ab)c)", got.MustGet())
}

type node struct{ id int }

func TestReduceKeepsNilPointerResult(t *testing.T) {
	single, err := stream.Of((*node)(nil)).Reduce(func(acc, n *node) *node { return n })
	require.NoError(t, err)
	require.True(t, single.IsPresent())
	assert.Nil(t, single.MustGet())

	dropped, err := stream.Of(&node{1}, &node{2}).Reduce(func(acc, n *node) *node { return nil })
	require.NoError(t, err)
	require.True(t, dropped.IsPresent())
	assert.Nil(t, dropped.MustGet())

	lo, err := stream.Of((*node)(nil), (*node)(nil)).Min(func(a, b *node) int { return 0 })
	require.NoError(t, err)
	assert.True(t, lo.IsPresent())
}

func TestFold(t *testing.T) {
	csv, err := stream.Fold(ints(1, 2, 3), "", func(acc string, n int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	})
	require.NoError(t, err)
	assert.Equal(t, "1,2,3", csv)
}

func TestMinMax(t *testing.T) {
	lo, err := ints(4, 1, 9, 1).Min(stream.NaturalOrder[int]())
	require.NoError(t, err)
	assert.Equal(t, 1, lo.MustGet())

	hi, err := ints(4, 1, 9, 1).Max(stream.NaturalOrder[int]())
	require.NoError(t, err)
	assert.Equal(t, 9, hi.MustGet())

	hi, err = stream.Empty[int]().Max(stream.NaturalOrder[int]())
	require.NoError(t, err)
	assert.True(t, hi.IsEmpty())
}

func TestPartition(t *testing.T) {
	evens, odds, err := ints(1, 2, 3, 4, 5).Partition(isEven)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, evens)
	assert.Equal(t, []int{1, 3, 5}, odds)
}

func TestJoin(t *testing.T) {
	s, err := stream.Join(ints(1, 2, 3), ", ", strconv.Itoa)
	require.NoError(t, err)
	assert.Equal(t, "1, 2, 3", s)
}

func TestChecksumDependsOnOrderAndBoundaries(t *testing.T) {
	encode := func(s string) []byte { return []byte(s) }

	ab, err := stream.Checksum(stream.Of("a", "b"), encode)
	require.NoError(t, err)
	ba, err := stream.Checksum(stream.Of("b", "a"), encode)
	require.NoError(t, err)
	joined, err := stream.Checksum(stream.Of("ab"), encode)
	require.NoError(t, err)

	assert.Len(t, ab, 64)
	assert.NotEqual(t, ab, ba)
	assert.NotEqual(t, ab, joined)
}

// ─────────────────────────────────────────────────────────────────────────────
// Invalid arguments
// ─────────────────────────────────────────────────────────────────────────────

func TestNilCallbacksAreRejected(t *testing.T) {
	calls := 0
	src := ints(1, 2, 3).Peek(func(int) { calls++ })

	cases := map[string]func() error{
		"filter": func() error { _, err := src.Filter(nil).Collect(); return err },
		"reject": func() error { _, err := src.Reject(nil).Collect(); return err },
		"peek":   func() error { _, err := src.Peek(nil).Count(); return err },
		"sorted": func() error { _, err := src.Sorted(nil).Collect(); return err },
		"map":    func() error { _, err := stream.Map[int, int](src, nil).Collect(); return err },
		"flat":   func() error { _, err := stream.FlatMap[int, int](src, nil).Collect(); return err },
		"any":    func() error { _, err := src.AnyMatch(nil); return err },
		"all":    func() error { _, err := src.AllMatch(nil); return err },
		"reduce": func() error { _, err := src.Reduce(nil); return err },
		"fold":   func() error { _, err := stream.Fold[int, int](src, 0, nil); return err },
		"group":  func() error { _, err := stream.GroupBy[int, int](src, nil); return err },
		"assoc":  func() error { _, err := stream.ToAssociation[int, int](src, nil); return err },
		"merge": func() error {
			_, err := stream.ToAssociationMerge(src, func(n int) int { return n }, nil)
			return err
		},
		"sum of filtered": func() error { _, err := stream.Sum(src.Filter(nil)); return err },
		"group of sorted": func() error {
			_, err := stream.GroupBy(src.Sorted(nil), func(n int) int { return n })
			return err
		},
	}
	for name, run := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, run(), stream.ErrInvalidArgument)
		})
	}
	assert.Zero(t, calls, "no element may be evaluated when a callback is missing")
}

func TestErrorPropagatesThroughLaterStages(t *testing.T) {
	s := stream.Map(ints(1, 2).Filter(nil).Limit(1), strconv.Itoa)
	require.ErrorIs(t, s.Err(), stream.ErrInvalidArgument)

	n := 0
	for range s.Seq() {
		n++
	}
	assert.Zero(t, n)
}

func TestWithLogger(t *testing.T) {
	var buf writerFunc
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := stream.Sum(ints(1, 2).WithLogger(log).Filter(isEven))
	require.NoError(t, err)
	assert.Contains(t, string(buf), `"op":"sum"`)

	_, err = ints(1).WithLogger(log).Filter(nil).Collect()
	require.Error(t, err)
	assert.Contains(t, string(buf), "terminal operation rejected")
}

type writerFunc []byte

func (w *writerFunc) Write(p []byte) (int, error) {
	*w = append(*w, p...)
	return len(p), nil
}

func TestEnumerable(t *testing.T) {
	count := func(e stream.Enumerable[int]) int {
		n, err := e.Filter(isEven).Count()
		require.NoError(t, err)
		return n
	}
	assert.Equal(t, 2, count(ints(1, 2, 3, 4)))
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(stream.ErrInvalidArgument, stream.ErrDuplicateKey))
}
