package stream

import (
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/seq2"
)

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// Groups is the result of [GroupBy]: a mapping from key to the elements that
// produced it. Keys are kept in the order they were first encountered and
// elements keep their encounter order within a group. A key only exists when
// at least one element produced it.
type Groups[K comparable, T any] struct {
	keys  []K
	items map[K][]T
}

// Len returns the number of distinct keys.
func (g *Groups[K, T]) Len() int { return len(g.keys) }

// Keys returns the keys in first-encounter order.
func (g *Groups[K, T]) Keys() []K { return slices.Clone(g.keys) }

// Has reports whether at least one element produced key.
func (g *Groups[K, T]) Has(key K) bool {
	_, ok := g.items[key]
	return ok
}

// Get returns a copy of the group for key, or nil and false when no element
// produced key.
func (g *Groups[K, T]) Get(key K) ([]T, bool) {
	items, ok := g.items[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(items), true
}

// All iterates over the groups in first-encounter order of their keys.
func (g *Groups[K, T]) All() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for _, k := range g.keys {
			if !yield(k, slices.Clone(g.items[k])) {
				return
			}
		}
	}
}

// Map returns the groups as a plain map.
func (g *Groups[K, T]) Map() map[K][]T {
	return seq2.CollectToMap(g.All())
}

// Counts returns the size of every group.
func (g *Groups[K, T]) Counts() map[K]int {
	out := make(map[K]int, len(g.keys))
	for _, k := range g.keys {
		out[k] = len(g.items[k])
	}
	return out
}

// GroupBy partitions the elements into groups by the key extracted with key.
//
//	byType, err := stream.GroupBy(stream.FromSlice(posts), blog.Post.Type)
//	news, _ := byType.Get(blog.News)
func GroupBy[T any, K comparable](s *Stream[T], key func(T) K) (*Groups[K, T], error) {
	if key == nil {
		return nil, invalidArgument("key extractor")
	}
	if err := s.check("group_by"); err != nil {
		return nil, err
	}
	g := &Groups[K, T]{items: make(map[K][]T)}
	for item := range s.seq {
		k := key(item)
		if _, ok := g.items[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.items[k] = append(g.items[k], item)
	}
	s.trace("group_by").Int("groups", len(g.keys)).Msg("stream: terminal operation completed")
	return g, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Associations
// ─────────────────────────────────────────────────────────────────────────────

// ToAssociation builds a map from the key extracted with key to the element
// that produced it. Two elements producing the same key are an error: the
// first collision in encounter order is reported as a [*DuplicateKeyError]
// and no partial map is returned. Use [ToAssociationMerge] to resolve
// collisions instead.
//
//	byTitle, err := stream.ToAssociation(stream.FromSlice(posts), blog.Post.Title)
func ToAssociation[T any, K comparable](s *Stream[T], key func(T) K) (map[K]T, error) {
	return ToMap(s, key, identity[T])
}

// ToAssociationMerge is like [ToAssociation] but resolves collisions with
// merge(existing, incoming) instead of failing.
func ToAssociationMerge[T any, K comparable](s *Stream[T], key func(T) K, merge func(existing, incoming T) T) (map[K]T, error) {
	return ToMapMerge(s, key, identity[T], merge)
}

// ToMap builds a map from the key extracted with key to the value extracted
// with value. Collisions are reported as with [ToAssociation].
func ToMap[T any, K comparable, V any](s *Stream[T], key func(T) K, value func(T) V) (map[K]V, error) {
	return toMap(s, key, value, nil)
}

// ToMapMerge is like [ToMap] but resolves collisions with
// merge(existing, incoming).
func ToMapMerge[T any, K comparable, V any](s *Stream[T], key func(T) K, value func(T) V, merge func(existing, incoming V) V) (map[K]V, error) {
	if merge == nil {
		return nil, invalidArgument("merge function")
	}
	return toMap(s, key, value, merge)
}

func toMap[T any, K comparable, V any](s *Stream[T], key func(T) K, value func(T) V, merge func(V, V) V) (map[K]V, error) {
	if key == nil {
		return nil, invalidArgument("key extractor")
	}
	if value == nil {
		return nil, invalidArgument("value extractor")
	}
	if err := s.check("to_map"); err != nil {
		return nil, err
	}
	out := make(map[K]V)
	for item := range s.seq {
		k, v := key(item), value(item)
		existing, ok := out[k]
		switch {
		case !ok:
			out[k] = v
		case merge != nil:
			out[k] = merge(existing, v)
		default:
			err := &DuplicateKeyError{Key: k}
			s.trace("to_map").Err(err).Msg("stream: terminal operation failed")
			return nil, err
		}
	}
	s.trace("to_map").Int("entries", len(out)).Msg("stream: terminal operation completed")
	return out, nil
}

func identity[T any](v T) T { return v }
