package monitoring

import (
	"github.com/davidvella/binomial/metrics"
)

const (
	MetricInserts       = "binomial_inserts_total"
	MetricPops          = "binomial_pops_total"
	MetricMerges        = "binomial_merges_total"
	MetricAllocFailures = "binomial_alloc_failures_total"
	MetricEntries       = "binomial_entries"
)

// Stats receives heap operation statistics. Every method takes the name of
// the heap the event belongs to.
type Stats interface {
	RecordInsert(heap string)
	RecordPop(heap string)
	RecordMerge(heap string)
	RecordAllocFailure(heap, op string)
	SetEntries(heap string, n int)
}

type stats struct {
	registry *metrics.Registry
}

// NewStats registers the heap metrics on registry and returns a Stats
// recording into it.
func NewStats(registry *metrics.Registry) Stats {
	registry.Register(metrics.Metric{
		Name:        MetricInserts,
		Type:        metrics.Counter,
		Description: "Total number of successful inserts",
	})

	registry.Register(metrics.Metric{
		Name:        MetricPops,
		Type:        metrics.Counter,
		Description: "Total number of values extracted",
	})

	registry.Register(metrics.Metric{
		Name:        MetricMerges,
		Type:        metrics.Counter,
		Description: "Total number of successful heap merges",
	})

	registry.Register(metrics.Metric{
		Name:        MetricAllocFailures,
		Type:        metrics.Counter,
		Description: "Total number of operations rolled back on allocation failure, by operation",
	})

	registry.Register(metrics.Metric{
		Name:        MetricEntries,
		Type:        metrics.Gauge,
		Description: "Number of values held by the heap",
	})

	return &stats{
		registry: registry,
	}
}

func (s *stats) RecordInsert(heap string) {
	s.registry.RecordCounter(MetricInserts, 1, map[string]string{"heap": heap})
}

func (s *stats) RecordPop(heap string) {
	s.registry.RecordCounter(MetricPops, 1, map[string]string{"heap": heap})
}

func (s *stats) RecordMerge(heap string) {
	s.registry.RecordCounter(MetricMerges, 1, map[string]string{"heap": heap})
}

func (s *stats) RecordAllocFailure(heap, op string) {
	s.registry.RecordCounter(MetricAllocFailures, 1, map[string]string{
		"heap": heap,
		"op":   op,
	})
}

func (s *stats) SetEntries(heap string, n int) {
	s.registry.RecordGauge(MetricEntries, float64(n), map[string]string{"heap": heap})
}

type nopStats struct{}

func (nopStats) RecordInsert(string)               {}
func (nopStats) RecordPop(string)                  {}
func (nopStats) RecordMerge(string)                {}
func (nopStats) RecordAllocFailure(string, string) {}
func (nopStats) SetEntries(string, int)            {}

// NopStats discards everything.
func NopStats() Stats {
	return nopStats{}
}
