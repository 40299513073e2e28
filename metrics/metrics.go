// Package metrics is a small in-process registry of counters and gauges.
package metrics

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
)

// Metric represents a single metric
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// MetricValue represents the current value of a metric for one label set
type MetricValue struct {
	Value     float64
	Timestamp time.Time
	Labels    map[string]string
}

// Registry stores and manages metrics. Counters accumulate per label set;
// gauges keep the last value per label set.
type Registry struct {
	metrics map[string]Metric
	values  map[string]map[string]MetricValue
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string]map[string]MetricValue),
	}
}

func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[metric.Name] = metric
}

func (r *Registry) RecordCounter(name string, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Counter {
		key := labelKey(labels)
		cur := r.series(name)[key]
		r.values[name][key] = MetricValue{
			Value:     cur.Value + value,
			Timestamp: time.Now(),
			Labels:    labels,
		}
	}
}

func (r *Registry) RecordGauge(name string, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Gauge {
		r.series(name)[labelKey(labels)] = MetricValue{
			Value:     value,
			Timestamp: time.Now(),
			Labels:    labels,
		}
	}
}

// Value returns the current value of name for the given labels.
func (r *Registry) Value(name string, labels map[string]string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[name][labelKey(labels)]
	return v.Value, ok
}

func (r *Registry) GetMetrics() map[string][]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]MetricValue)
	for name, series := range r.values {
		keys := make([]string, 0, len(series))
		for k := range series {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			result[name] = append(result[name], series[k])
		}
	}
	return result
}

// series must be called with mu held.
func (r *Registry) series(name string) map[string]MetricValue {
	s, ok := r.values[name]
	if !ok {
		s = make(map[string]MetricValue)
		r.values[name] = s
	}
	return s
}

func labelKey(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
		b.WriteByte(',')
	}
	return b.String()
}
