// Package engine implements the depth-first MAFIA traversal over the itemset
// lattice.
//
// The traversal starts at the root node (empty head, full item universe as
// tail) and explores child nodes built by extending the head with one tail
// item at a time. Three mechanisms keep the exponential lattice tractable:
//
//   - HUT pruning: if head ∪ tail is already subsumed by a discovered
//     maximal itemset, the entire subtree is skipped.
//   - Anti-monotone filtering: a tail item whose extension is infrequent is
//     dropped from every downstream tail.
//   - Parent-equivalence pruning (PEP): a tail item whose extension has the
//     same support as the head is folded into the head instead of spawning a
//     redundant branch.
//
// Remaining children are explored most-selective-first (ascending support),
// each receiving only the suffix of its siblings as tail, which guarantees
// every itemset is generated at most once.
//
// # Concurrency Model
//
// After PEP folding, sibling subtrees are independent subproblems. With
// parallelism > 1 the engine fans siblings out to bounded workers. The
// ResultSet is the only state shared across branches: its Insert is mutually
// exclusive, and HUT pruning tolerates a slightly stale snapshot (a missed
// early prune, never an incorrect final result). Each frame owns the bitmap
// of transactions containing its head, so support counting needs no locks.
package engine
