package store

import (
	"iter"
	"maps"

	"github.com/indigo-web/optimap/kv"
)

// Kind identifies the representation a Store currently uses.
type Kind uint8

const (
	Linear Kind = iota
	Hashed
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Hashed:
		return "hashed"
	default:
		return "unknown"
	}
}

// Store is either a linear storage or a hashmap, but never both at once. Exactly one of
// the fields is populated, corresponding to the kind. The zero value is an empty linear
// storage.
type Store[K comparable, V any] struct {
	kind   Kind
	linear *kv.Storage[K, V]
	hashed map[K]V
}

func NewLinear[K comparable, V any](n int) Store[K, V] {
	return Store[K, V]{
		kind:   Linear,
		linear: kv.NewPrealloc[K, V](n),
	}
}

func NewHashed[K comparable, V any](n int) Store[K, V] {
	return Store[K, V]{
		kind:   Hashed,
		hashed: make(map[K]V, n),
	}
}

func (s *Store[K, V]) Kind() Kind {
	return s.kind
}

// Iter returns an iterator over the entries. Linear storage yields them in insertion order,
// hashed one doesn't guarantee any order at all.
func (s *Store[K, V]) Iter() iter.Seq2[K, V] {
	if s.kind == Hashed {
		return maps.All(s.hashed)
	}

	return s.lin().Iter()
}

// IterMut is the same as Iter, however every value is yielded by a pointer, so it can be
// modified in place. The pointer is valid only until the yield returns.
func (s *Store[K, V]) IterMut() iter.Seq2[K, *V] {
	if s.kind == Linear {
		return s.lin().IterMut()
	}

	hashed := s.hashed
	return func(yield func(K, *V) bool) {
		for key, value := range hashed {
			// map values aren't addressable, so the value is written back once the yield
			// is done with it. Overriding an existing key during the iteration is fine.
			more := yield(key, &value)
			hashed[key] = value
			if !more {
				return
			}
		}
	}
}

// Insert stores the value by the key. In case the key is already presented, the previous
// value is returned alongside with true.
func (s *Store[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	if s.kind == Linear {
		return s.lin().Insert(key, value)
	}

	prev, replaced = s.hashed[key]
	s.hashed[key] = value

	return prev, replaced
}

func (s *Store[K, V]) Len() int {
	if s.kind == Hashed {
		return len(s.hashed)
	}

	if s.linear == nil {
		return 0
	}

	return s.linear.Len()
}

// ToHashed converts the linear storage into a hashmap. Does nothing if the store is already
// hashed.
func (s *Store[K, V]) ToHashed() {
	if s.kind == Hashed {
		return
	}

	linear := s.lin()
	hashed := make(map[K]V, linear.Len()+1)
	for key, value := range linear.Drain() {
		hashed[key] = value
	}

	*s = Store[K, V]{
		kind:   Hashed,
		hashed: hashed,
	}
}

// ToLinear converts the hashmap back into the linear storage. Does nothing if the store is
// already linear.
func (s *Store[K, V]) ToLinear() {
	if s.kind == Linear {
		return
	}

	*s = Store[K, V]{
		kind:   Linear,
		linear: kv.NewFromMap(s.hashed),
	}
}

// Drain hands all the entries over to the returned iterator. The store itself is left empty,
// keeping its kind.
func (s *Store[K, V]) Drain() iter.Seq2[K, V] {
	if s.kind == Linear {
		return s.lin().Drain()
	}

	hashed := s.hashed
	s.hashed = make(map[K]V)

	return maps.All(hashed)
}

func (s *Store[K, V]) Clone() Store[K, V] {
	if s.kind == Hashed {
		return Store[K, V]{
			kind:   Hashed,
			hashed: maps.Clone(s.hashed),
		}
	}

	return Store[K, V]{
		kind:   Linear,
		linear: s.lin().Clone(),
	}
}

// lin returns the linear storage, initializing it if the store is a zero value.
func (s *Store[K, V]) lin() *kv.Storage[K, V] {
	if s.linear == nil {
		s.linear = kv.New[K, V]()
	}

	return s.linear
}
