package store

import (
	"maps"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func fill(s *Store[int, string], n int) map[int]string {
	want := make(map[int]string, n)
	for i := 0; i < n; i++ {
		s.Insert(i, strconv.Itoa(i))
		want[i] = strconv.Itoa(i)
	}

	return want
}

func TestStore(t *testing.T) {
	for _, tc := range []struct {
		Name string
		New  func() Store[int, string]
		Kind Kind
	}{
		{"zero value", func() Store[int, string] { return Store[int, string]{} }, Linear},
		{"linear", func() Store[int, string] { return NewLinear[int, string](4) }, Linear},
		{"hashed", func() Store[int, string] { return NewHashed[int, string](4) }, Hashed},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			t.Run("insert", func(t *testing.T) {
				s := tc.New()
				require.Equal(t, tc.Kind, s.Kind())
				require.Zero(t, s.Len())

				want := fill(&s, 10)
				require.Equal(t, 10, s.Len())
				require.Equal(t, want, maps.Collect(s.Iter()))
				require.Equal(t, tc.Kind, s.Kind())
			})

			t.Run("override", func(t *testing.T) {
				s := tc.New()
				prev, replaced := s.Insert(1, "one")
				require.False(t, replaced)
				require.Empty(t, prev)

				prev, replaced = s.Insert(1, "uno")
				require.True(t, replaced)
				require.Equal(t, "one", prev)
				require.Equal(t, 1, s.Len())
			})

			t.Run("iter mut", func(t *testing.T) {
				s := tc.New()
				fill(&s, 10)
				for _, value := range s.IterMut() {
					*value += "!"
				}

				for key, value := range s.Iter() {
					require.Equal(t, strconv.Itoa(key)+"!", value)
				}
				require.Equal(t, 10, s.Len())
			})

			t.Run("iter mut break", func(t *testing.T) {
				s := tc.New()
				fill(&s, 10)
				var seen int
				for _, value := range s.IterMut() {
					*value = "changed"
					seen++
					break
				}

				require.Equal(t, 1, seen)
				var changed int
				for _, value := range s.Iter() {
					if value == "changed" {
						changed++
					}
				}
				require.Equal(t, 1, changed)
			})

			t.Run("drain", func(t *testing.T) {
				s := tc.New()
				want := fill(&s, 10)
				require.Equal(t, want, maps.Collect(s.Drain()))
				require.Zero(t, s.Len())
				require.Equal(t, tc.Kind, s.Kind())

				s.Insert(42, "answer")
				require.Equal(t, 1, s.Len())
			})

			t.Run("clone", func(t *testing.T) {
				s := tc.New()
				want := fill(&s, 10)
				cloned := s.Clone()
				s.Insert(0, "modified")
				s.Insert(100, "new")

				require.Equal(t, tc.Kind, cloned.Kind())
				require.Equal(t, want, maps.Collect(cloned.Iter()))
			})
		})
	}
}

func TestConversion(t *testing.T) {
	t.Run("to hashed", func(t *testing.T) {
		s := NewLinear[int, string](0)
		want := fill(&s, 100)
		s.ToHashed()
		require.Equal(t, Hashed, s.Kind())
		require.Nil(t, s.linear)
		require.Equal(t, 100, s.Len())
		require.Equal(t, want, maps.Collect(s.Iter()))
	})

	t.Run("to hashed is idempotent", func(t *testing.T) {
		s := NewHashed[int, string](0)
		want := fill(&s, 10)
		hashed := s.hashed
		s.ToHashed()
		require.Equal(t, Hashed, s.Kind())
		require.Equal(t, want, maps.Collect(s.Iter()))
		s.Insert(11, "11")
		require.Len(t, hashed, 11, "the same map must be kept")
	})

	t.Run("zero value to hashed", func(t *testing.T) {
		var s Store[int, string]
		s.ToHashed()
		require.Equal(t, Hashed, s.Kind())
		require.Zero(t, s.Len())
		s.Insert(1, "1")
		require.Equal(t, 1, s.Len())
	})

	t.Run("to linear", func(t *testing.T) {
		s := NewHashed[int, string](0)
		want := fill(&s, 100)
		s.ToLinear()
		require.Equal(t, Linear, s.Kind())
		require.Nil(t, s.hashed)
		require.Equal(t, 100, s.Len())
		require.Equal(t, want, maps.Collect(s.Iter()))
	})

	t.Run("round trip", func(t *testing.T) {
		s := NewLinear[int, string](0)
		want := fill(&s, 50)
		s.ToHashed()
		s.ToLinear()
		s.ToLinear()
		require.Equal(t, Linear, s.Kind())
		require.Equal(t, want, maps.Collect(s.Iter()))
	})
}

func TestKindString(t *testing.T) {
	require.Equal(t, "linear", Linear.String())
	require.Equal(t, "hashed", Hashed.String())
	require.Equal(t, "unknown", Kind(42).String())
}
