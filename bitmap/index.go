// Package bitmap provides the vertical-bitmap representation of a transaction
// database used for support counting.
//
// Every distinct item gets one Roaring bit vector with bit i set iff the item
// occurs in transaction i. The support of an itemset is the cardinality of the
// AND of its items' bit vectors. The index is built once and never mutated, so
// concurrent readers need no synchronization.
package bitmap

import (
	"cmp"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/mafigo/itemset"
)

// Index is the immutable vertical-bitmap index of a transaction database.
type Index[T cmp.Ordered] struct {
	items        []T
	rows         map[T]*roaring.Bitmap
	transactions uint64
}

// Build constructs the index for the given transactions.
//
// The item universe is the sorted set of distinct items across all
// transactions. Duplicate items within a transaction are ignored. An empty
// database yields an index with an empty universe; mining it is a degenerate
// but valid run.
//
// Transaction indices are stored as 32-bit Roaring keys, so the database
// must hold fewer than 2^32 transactions.
func Build[T cmp.Ordered](transactions [][]T) *Index[T] {
	rows := make(map[T]*roaring.Bitmap)

	for i, transaction := range transactions {
		for _, item := range transaction {
			rb, ok := rows[item]
			if !ok {
				rb = roaring.New()
				rows[item] = rb
			}
			rb.Add(uint32(i))
		}
	}

	items := make([]T, 0, len(rows))
	for item := range rows {
		items = append(items, item)
	}
	slices.Sort(items)

	return &Index[T]{
		items:        items,
		rows:         rows,
		transactions: uint64(len(transactions)),
	}
}

// Items returns the item universe in its fixed total order.
// The returned slice is shared; callers must not modify it.
func (ix *Index[T]) Items() []T { return ix.items }

// TransactionCount returns the number of transactions in the database.
func (ix *Index[T]) TransactionCount() uint64 { return ix.transactions }

// Rows returns the bit vector of transactions containing item, or nil if the
// item does not occur in the database. The returned bitmap is shared and must
// be treated as read-only.
func (ix *Index[T]) Rows(item T) *roaring.Bitmap { return ix.rows[item] }

// AllRows returns a fresh bitmap with every transaction id set. It seeds the
// root of a search, where the empty head is contained in every transaction.
func (ix *Index[T]) AllRows() *roaring.Bitmap {
	rb := roaring.New()
	if ix.transactions > 0 {
		rb.AddRange(0, ix.transactions)
	}
	return rb
}

// Support returns the number of transactions containing every item of set.
// The empty itemset is contained in all transactions.
func (ix *Index[T]) Support(set itemset.Itemset[T]) uint64 {
	if set.Len() == 0 {
		return ix.transactions
	}

	first := ix.rows[set[0]]
	if first == nil {
		return 0
	}
	if set.Len() == 1 {
		return first.GetCardinality()
	}

	acc := first.Clone()
	for _, item := range set[1:] {
		rb := ix.rows[item]
		if rb == nil {
			return 0
		}
		acc.And(rb)
		if acc.IsEmpty() {
			return 0
		}
	}
	return acc.GetCardinality()
}
