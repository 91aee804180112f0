package mafigo

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/mafigo/engine"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus. It extends the engine's traversal observer with the
// run-level hook.
//
// Implementations must be safe for concurrent use: with parallelism > 1 the
// traversal hooks fire from multiple workers.
type MetricsCollector interface {
	engine.TraversalObserver

	// RecordMine is called after each mining run.
	// duration is the total time taken, err is nil if successful.
	RecordMine(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct {
	engine.NoopTraversalObserver
}

func (NoopMetricsCollector) RecordMine(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	MineCount       atomic.Int64
	MineErrors      atomic.Int64
	MineTotalNanos  atomic.Int64
	NodesExplored   atomic.Int64
	HUTPrunes       atomic.Int64
	PEPFolds        atomic.Int64
	SupportCounts   atomic.Int64
	InsertsAccepted atomic.Int64
	InsertsRejected atomic.Int64
}

// RecordMine implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMine(duration time.Duration, err error) {
	b.MineCount.Add(1)
	b.MineTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MineErrors.Add(1)
	}
}

// OnNode implements engine.TraversalObserver.
func (b *BasicMetricsCollector) OnNode() { b.NodesExplored.Add(1) }

// OnHUTPrune implements engine.TraversalObserver.
func (b *BasicMetricsCollector) OnHUTPrune() { b.HUTPrunes.Add(1) }

// OnPEPFold implements engine.TraversalObserver.
func (b *BasicMetricsCollector) OnPEPFold(items int) { b.PEPFolds.Add(int64(items)) }

// OnSupportCount implements engine.TraversalObserver.
func (b *BasicMetricsCollector) OnSupportCount() { b.SupportCounts.Add(1) }

// OnInsert implements engine.TraversalObserver.
func (b *BasicMetricsCollector) OnInsert(accepted bool) {
	if accepted {
		b.InsertsAccepted.Add(1)
	} else {
		b.InsertsRejected.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		MineCount:       b.MineCount.Load(),
		MineErrors:      b.MineErrors.Load(),
		MineAvgNanos:    b.getAvgMineNanos(),
		NodesExplored:   b.NodesExplored.Load(),
		HUTPrunes:       b.HUTPrunes.Load(),
		PEPFolds:        b.PEPFolds.Load(),
		SupportCounts:   b.SupportCounts.Load(),
		InsertsAccepted: b.InsertsAccepted.Load(),
		InsertsRejected: b.InsertsRejected.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgMineNanos() int64 {
	count := b.MineCount.Load()
	if count == 0 {
		return 0
	}
	return b.MineTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	MineCount       int64
	MineErrors      int64
	MineAvgNanos    int64
	NodesExplored   int64
	HUTPrunes       int64
	PEPFolds        int64
	SupportCounts   int64
	InsertsAccepted int64
	InsertsRejected int64
}
