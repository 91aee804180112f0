package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// workerLimit bounds how many subtrees are explored concurrently. A nil
// semaphore selects the purely sequential traversal.
type workerLimit struct {
	sem *semaphore.Weighted
}

func newWorkerLimit(parallelism int) *workerLimit {
	if parallelism <= 1 {
		return &workerLimit{}
	}
	// The caller's goroutine always explores inline, so only the extra
	// workers need tokens.
	return &workerLimit{sem: semaphore.NewWeighted(int64(parallelism - 1))}
}

// exploreChildren visits sibling subtrees, fanning them out to workers when
// tokens are available and exploring inline otherwise. Siblings share no
// state beyond the ResultSet, whose Insert is mutually exclusive; a worker
// pruning against a snapshot that misses a concurrent insert only loses an
// early prune, never correctness.
func (e *Engine[T]) exploreChildren(ctx context.Context, children []*node[T]) error {
	if e.workers.sem == nil {
		for _, child := range children {
			if err := e.explore(ctx, child); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	var inlineErr error

	for _, child := range children {
		if e.workers.sem.TryAcquire(1) {
			g.Go(func() error {
				defer e.workers.sem.Release(1)
				return e.explore(ctx, child)
			})
			continue
		}
		if err := e.explore(ctx, child); err != nil {
			inlineErr = err
			break
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return inlineErr
}
