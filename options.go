package binomial

import (
	"github.com/davidvella/binomial/alloc"
	"github.com/davidvella/binomial/monitoring"
)

// options defines all configuration options for a heap.
type options struct {
	allocator alloc.Allocator   // Consulted before every node and root array allocation
	logger    monitoring.Logger // Receives rollback and teardown events
	stats     monitoring.Stats  // Receives operation counts
	name      string            // Identifies the heap in logs and metrics
}

// Option is a function that configures the heap options.
type Option func(*options)

// WithAllocator sets the allocator. Every tree is freed through the
// allocator of the heap that created it, so heaps with different allocators
// may be merged.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithLogger sets the logger.
func WithLogger(l monitoring.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStats sets the statistics sink.
func WithStats(s monitoring.Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// WithName sets the name reported in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		allocator: alloc.Unbounded(),
		logger:    monitoring.NopLogger(),
		stats:     monitoring.NopStats(),
		name:      "binomial",
	}
}
