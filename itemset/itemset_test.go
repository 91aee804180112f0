package itemset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("SortsAndDeduplicates", func(t *testing.T) {
		s := New(3, 1, 2, 3, 1)
		assert.Equal(t, Itemset[int]{1, 2, 3}, s)
	})

	t.Run("Empty", func(t *testing.T) {
		s := New[int]()
		assert.Equal(t, 0, s.Len())
	})

	t.Run("DoesNotAliasInput", func(t *testing.T) {
		in := []string{"b", "a"}
		s := New(in...)
		in[0] = "z"
		assert.Equal(t, Itemset[string]{"a", "b"}, s)
	})
}

func TestContains(t *testing.T) {
	s := New(1, 3, 5)
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(2))
	assert.False(t, New[int]().Contains(1))
}

func TestSupersetOf(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Itemset[int]
		super bool
	}{
		{"ProperSuperset", New(1, 2, 3), New(1, 3), true},
		{"Equal", New(1, 2), New(1, 2), true},
		{"Disjoint", New(1, 2), New(3, 4), false},
		{"Overlapping", New(1, 2, 3), New(2, 4), false},
		{"EmptySubset", New(1, 2), New[int](), true},
		{"EmptyOfEmpty", New[int](), New[int](), true},
		{"SmallerCannotContain", New(1), New(1, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.super, tt.a.SupersetOf(tt.b))
			assert.Equal(t, tt.super, tt.b.SubsetOf(tt.a))
		})
	}
}

func TestUnion(t *testing.T) {
	a := New(1, 3, 5)
	b := New(2, 3, 6)

	u := a.Union(b)
	assert.Equal(t, Itemset[int]{1, 2, 3, 5, 6}, u)

	// Inputs untouched.
	assert.Equal(t, Itemset[int]{1, 3, 5}, a)
	assert.Equal(t, Itemset[int]{2, 3, 6}, b)

	assert.Equal(t, a, a.Union(New[int]()))
	assert.Equal(t, b, New[int]().Union(b))
}

func TestEqualAndClone(t *testing.T) {
	a := New(1, 2)
	b := a.Clone()
	require.True(t, a.Equal(b))

	b[0] = 9
	assert.False(t, a.Equal(b))
	assert.Equal(t, Itemset[int]{1, 2}, a)
}

func TestString(t *testing.T) {
	assert.Equal(t, "{1, 2, 3}", New(3, 1, 2).String())
	assert.Equal(t, "{}", New[int]().String())
}

func TestSortCanonical(t *testing.T) {
	sets := []Itemset[int]{New(2, 3), New(1, 3), New(1, 2), New(1)}
	SortCanonical(sets)
	assert.Equal(t, []Itemset[int]{New(1), New(1, 2), New(1, 3), New(2, 3)}, sets)
}
