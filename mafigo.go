package mafigo

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/mafigo/bitmap"
	"github.com/hupe1980/mafigo/engine"
	"github.com/hupe1980/mafigo/itemset"
)

// Miner mines maximal frequent itemsets from an in-memory transaction
// database using the MAFIA algorithm.
//
// The bitmap index is built once at construction and reused across runs, so
// mining the same database with several thresholds pays the build cost only
// once. A Miner is safe for concurrent use; every Mine call runs on its own
// engine state.
type Miner[T cmp.Ordered] struct {
	index *bitmap.Index[T]
	opts  options
}

// NewMiner builds the bitmap index for the given transactions.
//
// Each transaction is a set of items; duplicate items within a transaction
// are ignored. An empty database is valid and mines to an empty result.
func NewMiner[T cmp.Ordered](transactions [][]T, optFns ...Option) *Miner[T] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	index := bitmap.Build(transactions)
	opts.logger.LogIndexBuild(context.Background(), len(index.Items()), int(index.TransactionCount()))

	return &Miner[T]{
		index: index,
		opts:  opts,
	}
}

// Index exposes the underlying bitmap index, e.g. for support queries on
// itemsets returned by Mine.
func (m *Miner[T]) Index() *bitmap.Index[T] { return m.index }

// Mine returns every itemset that is frequent under minSupport and has no
// frequent proper superset. The result is canonically ordered: each itemset
// ascending, itemsets sorted lexicographically.
//
// minSupport is an absolute transaction count and must be positive;
// otherwise Mine fails with ErrInvalidMinSupport before any search work.
// A threshold exceeding the database size is valid and yields an empty
// result. A threshold that every item meets is a degenerate but valid run.
//
// On context cancellation Mine returns the context error and no output,
// unless WithPartialResults was set (see ErrInterrupted).
func (m *Miner[T]) Mine(ctx context.Context, minSupport int) ([]itemset.Itemset[T], error) {
	start := time.Now()

	result, err := m.mine(ctx, minSupport)

	m.opts.metricsCollector.RecordMine(time.Since(start), err)
	m.opts.logger.LogMine(ctx, minSupport, len(result), time.Since(start), err)

	return result, err
}

func (m *Miner[T]) mine(ctx context.Context, minSupport int) ([]itemset.Itemset[T], error) {
	if minSupport <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMinSupport, minSupport)
	}

	e := engine.New(m.index, uint64(minSupport), engine.Options{
		Parallelism: m.opts.parallelism,
		Observer:    m.opts.metricsCollector,
	})

	result, err := e.Mine(ctx)
	if err != nil {
		if m.opts.partialResults {
			return result, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		return nil, err
	}

	return result, nil
}

// Mine is the one-shot entry point: it builds the index and runs a single
// mining pass.
func Mine[T cmp.Ordered](ctx context.Context, transactions [][]T, minSupport int, optFns ...Option) ([]itemset.Itemset[T], error) {
	return NewMiner(transactions, optFns...).Mine(ctx, minSupport)
}
