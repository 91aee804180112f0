package engine

import (
	"cmp"
	"context"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/mafigo/bitmap"
	"github.com/hupe1980/mafigo/itemset"
)

// Options configures an Engine.
type Options struct {
	// Parallelism bounds the number of concurrently explored subtrees.
	// Values <= 1 select the sequential traversal.
	Parallelism int

	// Observer receives traversal events. Nil means no observation.
	Observer TraversalObserver
}

// Engine runs the pruned depth-first search for maximal frequent itemsets
// over an immutable bitmap index.
type Engine[T cmp.Ordered] struct {
	index      *bitmap.Index[T]
	minSupport uint64
	results    *ResultSet[T]
	observer   TraversalObserver
	workers    *workerLimit
}

// New creates an engine for one mining run. minSupport must be validated by
// the caller; the engine assumes it is positive.
func New[T cmp.Ordered](index *bitmap.Index[T], minSupport uint64, opts Options) *Engine[T] {
	observer := opts.Observer
	if observer == nil {
		observer = NoopTraversalObserver{}
	}

	return &Engine[T]{
		index:      index,
		minSupport: minSupport,
		results:    NewResultSet[T](),
		observer:   observer,
		workers:    newWorkerLimit(opts.Parallelism),
	}
}

// Mine runs the traversal to completion and returns the maximal frequent
// itemsets in canonical order.
//
// On context cancellation it returns the context error together with the
// antichain discovered so far — internally consistent but possibly
// incomplete. The caller decides whether to surface or discard it.
func (e *Engine[T]) Mine(ctx context.Context) ([]itemset.Itemset[T], error) {
	root := newNode(nil, slices.Clone(e.index.Items()), e.index.TransactionCount(), e.index.AllRows())

	err := e.explore(ctx, root)

	return e.results.Itemsets(), err
}

// extension is a frequent child candidate: the tail item, the support of
// head+item, and the rows bitmap that child will own.
type extension[T cmp.Ordered] struct {
	item    T
	support uint64
	rows    *roaring.Bitmap
}

func (e *Engine[T]) explore(ctx context.Context, n *node[T]) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.observer.OnNode()

	// HUT pruning: head ∪ tail is the largest itemset this subtree can
	// produce; if a discovered maximal itemset subsumes it, nothing below
	// can contribute.
	hut := itemset.New(slices.Concat(n.head, n.tail)...)
	if e.results.Covers(hut) {
		e.observer.OnHUTPrune()
		return nil
	}

	head := n.head
	folded := 0

	exts := make([]extension[T], 0, len(n.tail))
	for _, item := range n.tail {
		rows := roaring.And(n.rows, e.index.Rows(item))
		e.observer.OnSupportCount()

		support := rows.GetCardinality()
		switch {
		case support < e.minSupport:
			// Anti-monotone: no superset of an infrequent itemset can be
			// frequent, so the item is dropped from every downstream tail.
		case support == n.support:
			// PEP: the item does not discriminate; fold it into the head.
			head = append(head, item)
			folded++
		default:
			exts = append(exts, extension[T]{item: item, support: support, rows: rows})
		}
	}

	if folded > 0 {
		e.observer.OnPEPFold(folded)
	}

	if len(exts) == 0 {
		// Leaf. An empty head means nothing in the database is frequent;
		// the empty itemset is not a result.
		if len(head) == 0 {
			return nil
		}
		e.observer.OnInsert(e.results.Insert(itemset.New(head...)))
		return nil
	}

	// Most selective extensions first: low support shrinks the subtree and
	// lets HUT pruning fire early. Stable sort keeps universe order on ties.
	slices.SortStableFunc(exts, func(a, b extension[T]) int {
		return cmp.Compare(a.support, b.support)
	})

	tail := make([]T, len(exts))
	for i, x := range exts {
		tail[i] = x.item
	}

	children := make([]*node[T], len(exts))
	for i, x := range exts {
		childHead := make([]T, len(head)+1)
		copy(childHead, head)
		childHead[len(head)] = x.item

		// Suffix rule: each child considers only items after its own
		// position, so no itemset is generated twice.
		children[i] = newNode(childHead, tail[i+1:], x.support, x.rows)
	}

	return e.exploreChildren(ctx, children)
}
