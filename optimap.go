package optimap

import (
	"fmt"
	"iter"

	"github.com/indigo-web/optimap/config"
	"github.com/indigo-web/optimap/internal/store"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Map is an associative container, which starts as a linear storage and escapes to a hashmap
// once the number of entries exceeds the threshold. Linear search is cheaper for a small
// amount of entries, as no hashing is involved and all the entries lie next to each other in
// memory. The escape happens only once: the map never turns back into the linear storage.
//
// The zero value is an empty map with the default threshold, ready to use. Map isn't safe for
// concurrent use.
type Map[K comparable, V any] struct {
	store     store.Store[K, V]
	threshold int
}

// New returns an empty map with the default threshold.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		store:     store.NewLinear[K, V](0),
		threshold: config.DefaultThreshold,
	}
}

// NewPrealloc returns an empty map, pre-allocated to hold n entries. If n is below the
// threshold, the linear storage is used, otherwise the map is a hashmap right from the start.
func NewPrealloc[K comparable, V any](n int) *Map[K, V] {
	cfg := config.Default()
	cfg.Prealloc = n

	return NewWithConfig[K, V](cfg)
}

// NewWithConfig returns an empty map with the threshold and pre-allocation taken from the
// config. Unset fields are filled with default values.
func NewWithConfig[K comparable, V any](cfg *config.Config) *Map[K, V] {
	cfg = config.Fill(cfg)
	m := &Map[K, V]{threshold: cfg.Threshold}

	if cfg.Prealloc < cfg.Threshold {
		m.store = store.NewLinear[K, V](cfg.Prealloc)
	} else {
		m.store = store.NewHashed[K, V](cfg.Prealloc)
	}

	return m
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.store.Len()
}

func (m *Map[K, V]) Empty() bool {
	return m.Len() == 0
}

// Threshold returns the number of entries the linear storage may hold. The next insertion
// escapes to the hashmap.
func (m *Map[K, V]) Threshold() int {
	if m.threshold <= 0 {
		return config.DefaultThreshold
	}

	return m.threshold
}

// Hashed reports whether the map has already escaped to the hashmap.
func (m *Map[K, V]) Hashed() bool {
	return m.store.Kind() == store.Hashed
}

// Insert stores the value by the key. If the key was already presented, the previous value
// is returned alongside with true.
//
// Note: the escape to the hashmap is decided upon the number of entries only, so overriding
// an existing key while the map holds exactly Threshold() entries escapes as well.
func (m *Map[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	if m.store.Len() == m.Threshold() && m.store.Kind() == store.Linear {
		m.store.ToHashed()
	}

	return m.store.Insert(key, value)
}

// Iter returns an iterator over the entries. Until the map has escaped to the hashmap, the
// entries are yielded in insertion order. Afterwards, the order is unspecified and may
// differ from call to call. The map must not be modified during the iteration.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return m.store.Iter()
}

// IterMut is the same as Iter, however values are yielded by pointers and can be modified
// in place. A pointer must not be retained after the yield returns.
func (m *Map[K, V]) IterMut() iter.Seq2[K, *V] {
	return m.store.IterMut()
}

// Drain hands all the entries over to the returned iterator and leaves the map empty. The
// map keeps its representation, so a map which has already escaped to the hashmap stays
// such.
func (m *Map[K, V]) Drain() iter.Seq2[K, V] {
	return m.store.Drain()
}

// Clone returns an independent copy of the map with the same threshold and representation.
// Values are copied by assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		store:     m.store.Clone(),
		threshold: m.threshold,
	}
}

// String formats the map in the same manner as fmt does for the built-in maps, however
// entries follow the iteration order.
func (m *Map[K, V]) String() string {
	buff := append(make([]byte, 0, 16+m.Len()*8), "optimap.Map["...)
	first := true

	for key, value := range m.Iter() {
		if !first {
			buff = append(buff, ' ')
		}

		first = false
		buff = fmt.Appendf(buff, "%v:%v", key, value)
	}

	return uf.B2S(append(buff, ']'))
}

// MarshalJSON encodes the map as a JSON object. Keys are sorted, as they are by
// encoding/json for the built-in maps.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	entries := make(map[K]V, m.Len())
	for key, value := range m.Iter() {
		entries[key] = value
	}

	return json.ConfigCompatibleWithStandardLibrary.Marshal(entries)
}

// UnmarshalJSON decodes a JSON object and inserts every its member into the map. Existing
// entries are kept, unless overridden by the members.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var entries map[K]V
	if err := json.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &entries); err != nil {
		return err
	}

	for key, value := range entries {
		m.Insert(key, value)
	}

	return nil
}
