package kv

import (
	"iter"
)

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Storage is an associative structure for storing (key, value) pairs. It acts as a map but
// uses linear search instead, which proves to be more efficient on relatively low amount of
// entries, which often enough is the case. Pairs are kept in insertion order.
type Storage[K comparable, V any] struct {
	pairs []Pair[K, V]
}

func New[K comparable, V any]() *Storage[K, V] {
	return new(Storage[K, V])
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc[K comparable, V any](n int) *Storage[K, V] {
	return &Storage[K, V]{
		pairs: make([]Pair[K, V], 0, n),
	}
}

// NewFromMap returns a new instance with already inserted values from given map.
// Note: as maps are unordered, resulting underlying structure will also contain unordered
// pairs.
func NewFromMap[K comparable, V any](m map[K]V) *Storage[K, V] {
	s := NewPrealloc[K, V](len(m))

	// keys of a map are already unique, so there's no need to search for duplicates
	for key, value := range m {
		s.pairs = append(s.pairs, Pair[K, V]{
			Key:   key,
			Value: value,
		})
	}

	return s
}

// Insert stores the value by the key. If the key is already presented, its value is
// overridden in place and the previous one is returned alongside with true.
func (s *Storage[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	for i := range s.pairs {
		if s.pairs[i].Key == key {
			prev, s.pairs[i].Value = s.pairs[i].Value, value
			return prev, true
		}
	}

	s.pairs = append(s.pairs, Pair[K, V]{
		Key:   key,
		Value: value,
	})

	return prev, false
}

// Get returns a value and a bool, indicating whether the value was found. If it wasn't, it'll
// be a zero value.
func (s *Storage[K, V]) Get(key K) (value V, found bool) {
	for _, pair := range s.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return value, false
}

// Has indicates, whether there's an entry of the key.
func (s *Storage[K, V]) Has(key K) bool {
	_, found := s.Get(key)
	return found
}

// Iter returns an iterator over the pairs.
func (s *Storage[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, pair := range s.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// IterMut returns an iterator over the pairs, where each value is yielded by a pointer
// into the underlying storage. The pointer must not be retained after the iteration.
func (s *Storage[K, V]) IterMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for i := range s.pairs {
			if !yield(s.pairs[i].Key, &s.pairs[i].Value) {
				break
			}
		}
	}
}

// Len returns a number of stored pairs.
func (s *Storage[K, V]) Len() int {
	return len(s.pairs)
}

func (s *Storage[K, V]) Empty() bool {
	return s.Len() == 0
}

// Clone creates a copy, which may be used later or stored somewhere safely. Values
// themselves are copied by assignment.
func (s *Storage[K, V]) Clone() *Storage[K, V] {
	return &Storage[K, V]{
		pairs: clone(s.pairs),
	}
}

// Expose exposes the underlying pairs slice.
func (s *Storage[K, V]) Expose() []Pair[K, V] {
	return s.pairs
}

// Clear all the entries. However, all the allocated space won't be freed.
func (s *Storage[K, V]) Clear() *Storage[K, V] {
	clear(s.pairs)
	s.pairs = s.pairs[:0]
	return s
}

// Drain hands the pairs over to the returned iterator and leaves the storage empty. Unlike
// Clear, the underlying slice isn't retained, so it may be consumed lazily even after new
// pairs are inserted.
func (s *Storage[K, V]) Drain() iter.Seq2[K, V] {
	pairs := s.pairs
	s.pairs = nil

	return func(yield func(K, V) bool) {
		for _, pair := range pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
