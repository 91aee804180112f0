// Package mafigo provides an embedded maximal-frequent-itemset (MFI) mining
// engine for Go, implementing the MAFIA algorithm.
//
// Given a transaction database and a minimum support count, mafigo
// enumerates every itemset that is frequent and has no frequent proper
// superset. The exponential itemset lattice is kept tractable by
// head-union-tail (HUT) pruning, parent-equivalence folding (PEP) and
// subsumption checks against already-discovered maximal itemsets, all on
// top of a Roaring-bitmap support-counting substrate.
//
// # Quick Start
//
//	transactions := [][]string{
//	    {"beer", "bread", "milk"},
//	    {"beer", "bread"},
//	    {"bread", "milk"},
//	}
//
//	mfis, err := mafigo.Mine(context.Background(), transactions, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, mfi := range mfis {
//	    fmt.Println(mfi)
//	}
//
// Reuse the index across thresholds:
//
//	miner := mafigo.NewMiner(transactions)
//	strict, _ := miner.Mine(ctx, 3)
//	loose, _ := miner.Mine(ctx, 2)
//
// # Key Features
//
//   - Generic over any ordered item type (cmp.Ordered)
//   - Vertical Roaring bitmaps: support = AND + popcount
//   - HUT pruning, PEP folding, anti-monotone tail filtering
//   - Optional bounded parallel exploration of sibling subtrees
//   - Opt-in partial results on context cancellation
//   - Structured logging (log/slog) and pluggable metrics
//
// The result is independent of traversal order and parallelism: any sound
// pruning-respecting depth-first order yields the identical set of maximal
// frequent itemsets.
package mafigo
