package engine

import (
	"cmp"
	"sync"

	"github.com/hupe1980/mafigo/itemset"
)

// ResultSet collects maximal frequent itemsets as an antichain: no member is
// a subset of another. The antichain property is maintained entirely by
// Insert, so callers never need to re-check subsumption themselves.
//
// All methods are safe for concurrent use. Insert performs its
// read-then-conditionally-write under one exclusive lock; Covers may observe
// a snapshot that is an insert behind, which is harmless for HUT pruning.
type ResultSet[T cmp.Ordered] struct {
	mu   sync.RWMutex
	sets []itemset.Itemset[T]
}

// NewResultSet creates an empty result set.
func NewResultSet[T cmp.Ordered]() *ResultSet[T] {
	return &ResultSet[T]{}
}

// Covers reports whether some member is a superset of set.
func (r *ResultSet[T]) Covers(set itemset.Itemset[T]) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sets {
		if s.SupersetOf(set) {
			return true
		}
	}
	return false
}

// Insert adds candidate to the set unless an existing member already
// subsumes it. Members that are proper subsets of candidate are removed.
// It reports whether candidate was added.
func (r *ResultSet[T]) Insert(candidate itemset.Itemset[T]) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sets {
		if s.SupersetOf(candidate) {
			return false
		}
	}

	// Drop members the candidate strictly subsumes. Equal sets were caught
	// above, so SupersetOf here means proper subset.
	kept := r.sets[:0]
	for _, s := range r.sets {
		if !candidate.SupersetOf(s) {
			kept = append(kept, s)
		}
	}
	r.sets = append(kept, candidate)

	return true
}

// Len returns the current number of members.
func (r *ResultSet[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sets)
}

// Itemsets returns the members in canonical lexicographic order.
// The returned slice is a copy and safe to retain.
func (r *ResultSet[T]) Itemsets() []itemset.Itemset[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]itemset.Itemset[T], len(r.sets))
	for i, s := range r.sets {
		out[i] = s.Clone()
	}
	itemset.SortCanonical(out)

	return out
}
