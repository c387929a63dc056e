package iothubsas

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	// Test that NoopMetrics methods don't panic
	metrics := &NoopMetrics{}

	metrics.IncCounter("test_counter", map[string]string{"tag": "value"})
	metrics.ObserveHistogram("test_histogram", 1.5, map[string]string{"tag": "value"})
	metrics.SetGauge("test_gauge", 2.5, map[string]string{"tag": "value"})
}

func TestPrometheusMetrics(t *testing.T) {
	// Reset the default registry to avoid conflicts with other tests
	prometheus.DefaultRegisterer = prometheus.NewRegistry()

	metrics := NewPrometheusMetrics()

	t.Run("IncCounter", func(t *testing.T) {
		tags := map[string]string{"mode": "key"}
		metrics.IncCounter("test_tokens_total", tags)
		metrics.IncCounter("test_tokens_total", tags)

		promMetrics, ok := metrics.(*PrometheusMetrics)
		require.True(t, ok)
		counter, ok := promMetrics.counters["test_tokens_total"]
		require.True(t, ok, "Counter should be registered")

		metric := &dto.Metric{}
		err := counter.With(prometheus.Labels(tags)).(prometheus.Metric).Write(metric)
		require.NoError(t, err)
		assert.Equal(t, float64(2), *metric.Counter.Value)
	})

	t.Run("ObserveHistogram", func(t *testing.T) {
		tags := map[string]string{"mode": "presigned"}
		metrics.ObserveHistogram("test_duration_seconds", 0.25, tags)

		promMetrics := metrics.(*PrometheusMetrics)
		_, ok := promMetrics.histograms["test_duration_seconds"]
		assert.True(t, ok, "Histogram should be registered")
	})

	t.Run("SetGauge", func(t *testing.T) {
		tags := map[string]string{"mode": "key"}
		metrics.SetGauge("test_gauge", 2.5, tags)

		promMetrics := metrics.(*PrometheusMetrics)
		gauge, ok := promMetrics.gauges["test_gauge"]
		require.True(t, ok, "Gauge should be registered")

		metric := &dto.Metric{}
		err := gauge.With(prometheus.Labels(tags)).(prometheus.Metric).Write(metric)
		require.NoError(t, err)
		assert.Equal(t, 2.5, *metric.Gauge.Value)
	})
}

func TestGetTokenCountsIssuance(t *testing.T) {
	metrics := &recordingMetrics{}
	creds, err := New(hubProperties(),
		WithSigner(&mockSigner{}),
		WithMetrics(metrics),
	)
	require.NoError(t, err)

	_, err = creds.GetToken(context.Background(), "", "", nil)
	require.NoError(t, err)
	require.Len(t, metrics.counters, 1)
	assert.Equal(t, "iothubsas_tokens_issued_total", metrics.counters[0].name)
	assert.Equal(t, "key", metrics.counters[0].tags["mode"])
	require.Len(t, metrics.histograms, 1)
	assert.Equal(t, "iothubsas_token_issue_duration_seconds", metrics.histograms[0].name)
}

type recordingMetrics struct {
	counters   []metricCall
	histograms []metricCall
}

type metricCall struct {
	name string
	tags map[string]string
}

func (m *recordingMetrics) IncCounter(name string, tags map[string]string) {
	m.counters = append(m.counters, metricCall{name, tags})
}

func (m *recordingMetrics) ObserveHistogram(name string, value float64, tags map[string]string) {
	m.histograms = append(m.histograms, metricCall{name, tags})
}

func (m *recordingMetrics) SetGauge(name string, value float64, tags map[string]string) {}
