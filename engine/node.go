package engine

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// node is one point in the itemset lattice: a committed prefix (head) and the
// candidate extensions still under consideration (tail).
//
// rows is the bit vector of transactions containing head. It doubles as the
// path-scoped support memo: every child derives its own rows from it with a
// single AND, all siblings reuse it, and it becomes unreachable the moment
// the frame returns — cache lifetime is exactly the recursion path.
//
// Nodes are created per recursive call and discarded on return; the search
// tree is never materialized.
type node[T cmp.Ordered] struct {
	head    []T
	tail    []T
	support uint64
	rows    *roaring.Bitmap
}

// newNode builds a child node. head and tail overlapping is a defect in the
// pruning logic, never an input condition, so it panics.
func newNode[T cmp.Ordered](head, tail []T, support uint64, rows *roaring.Bitmap) *node[T] {
	for _, item := range head {
		if slices.Contains(tail, item) {
			panic(fmt.Sprintf("engine: head and tail overlap on item %v", item))
		}
	}

	return &node[T]{
		head:    head,
		tail:    tail,
		support: support,
		rows:    rows,
	}
}
