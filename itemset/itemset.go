package itemset

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Itemset is a canonically sorted, duplicate-free set of items.
//
// The zero value is the empty itemset. Itemsets produced by New are always
// in canonical form; the set-algebra methods rely on it.
type Itemset[T cmp.Ordered] []T

// New builds an itemset from the given items, sorting and deduplicating them.
func New[T cmp.Ordered](items ...T) Itemset[T] {
	s := slices.Clone(items)
	slices.Sort(s)
	return slices.Compact(s)
}

// Len returns the number of items in the set.
func (s Itemset[T]) Len() int { return len(s) }

// Contains reports whether item is a member of the set.
func (s Itemset[T]) Contains(item T) bool {
	_, ok := slices.BinarySearch(s, item)
	return ok
}

// SupersetOf reports whether every item of other is contained in s.
// Both sets must be in canonical form; the check is a single merge walk.
func (s Itemset[T]) SupersetOf(other Itemset[T]) bool {
	if len(other) > len(s) {
		return false
	}
	i := 0
	for _, item := range other {
		for i < len(s) && s[i] < item {
			i++
		}
		if i == len(s) || s[i] != item {
			return false
		}
		i++
	}
	return true
}

// SubsetOf reports whether every item of s is contained in other.
func (s Itemset[T]) SubsetOf(other Itemset[T]) bool {
	return other.SupersetOf(s)
}

// Union returns a new canonical itemset containing the items of both sets.
func (s Itemset[T]) Union(other Itemset[T]) Itemset[T] {
	out := make(Itemset[T], 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			out = append(out, s[i])
			i++
		case s[i] > other[j]:
			out = append(out, other[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	out = append(out, other[j:]...)
	return out
}

// Equal reports whether both sets contain exactly the same items.
func (s Itemset[T]) Equal(other Itemset[T]) bool {
	return slices.Equal(s, other)
}

// Clone returns an independent copy of the set.
func (s Itemset[T]) Clone() Itemset[T] {
	return slices.Clone(s)
}

// String renders the set as {a, b, c}.
func (s Itemset[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, item := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", item)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Compare orders two canonical itemsets lexicographically.
// It is suitable for slices.SortFunc.
func Compare[T cmp.Ordered](a, b Itemset[T]) int {
	return slices.Compare(a, b)
}

// SortCanonical sorts a collection of itemsets into the canonical
// lexicographic order, making result collections directly comparable.
func SortCanonical[T cmp.Ordered](sets []Itemset[T]) {
	slices.SortFunc(sets, Compare[T])
}
