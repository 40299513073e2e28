package metrics_test

import (
	"testing"

	"github.com/davidvella/binomial/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCounter(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "ops_total", Type: metrics.Counter})

	a := map[string]string{"heap": "a"}
	b := map[string]string{"heap": "b"}

	r.RecordCounter("ops_total", 1, a)
	r.RecordCounter("ops_total", 2, a)
	r.RecordCounter("ops_total", 5, b)

	v, ok := r.Value("ops_total", a)
	require.True(t, ok)
	assert.InDelta(t, 3, v, 0)

	v, ok = r.Value("ops_total", b)
	require.True(t, ok)
	assert.InDelta(t, 5, v, 0)

	assert.Len(t, r.GetMetrics()["ops_total"], 2)
}

func TestRegistryGauge(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "entries", Type: metrics.Gauge})

	labels := map[string]string{"heap": "a"}
	r.RecordGauge("entries", 10, labels)
	r.RecordGauge("entries", 4, labels)

	v, ok := r.Value("entries", labels)
	require.True(t, ok)
	assert.InDelta(t, 4, v, 0)
}

func TestRegistryIgnoresUnknownAndMistyped(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "entries", Type: metrics.Gauge})

	r.RecordCounter("entries", 1, nil)
	r.RecordCounter("missing", 1, nil)

	_, ok := r.Value("entries", nil)
	assert.False(t, ok)
	_, ok = r.Value("missing", nil)
	assert.False(t, ok)
	assert.Empty(t, r.GetMetrics())
}

func TestRegistryLabelOrderIrrelevant(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "ops_total", Type: metrics.Counter})

	r.RecordCounter("ops_total", 1, map[string]string{"x": "1", "y": "2"})
	r.RecordCounter("ops_total", 1, map[string]string{"y": "2", "x": "1"})

	v, ok := r.Value("ops_total", map[string]string{"x": "1", "y": "2"})
	require.True(t, ok)
	assert.InDelta(t, 2, v, 0)
}
