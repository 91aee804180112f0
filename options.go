package mafigo

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	parallelism      int
	partialResults   bool
}

func defaultOptions() options {
	return options{
		logger:           NewLogger(nil),
		metricsCollector: NoopMetricsCollector{},
		parallelism:      1,
	}
}

// Option configures miner behavior.
type Option func(*options)

// WithLogger configures the logger used for run-level diagnostics.
//
// If nil is passed, the default text logger is used.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NewLogger(nil)
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures metrics collection.
//
// If nil is passed, metrics collection is disabled.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metricsCollector = collector
	}
}

// WithParallelism bounds the number of concurrently explored subtrees.
//
// Values <= 1 select the sequential depth-first traversal (the default).
// Sibling subtrees are independent after parent-equivalence folding, so the
// final result is identical for any parallelism; only performance differs.
func WithParallelism(parallelism int) Option {
	return func(o *options) {
		o.parallelism = parallelism
	}
}

// WithPartialResults opts into receiving the itemsets discovered before the
// context was cancelled.
//
// By default cancellation discards all output and returns only the context
// error (all-or-nothing contract). With this option, Mine returns the
// partial antichain alongside ErrInterrupted. The partial result is
// internally consistent — every member is frequent, no member subsumes
// another — but maximal itemsets may be missing.
func WithPartialResults() Option {
	return func(o *options) {
		o.partialResults = true
	}
}
