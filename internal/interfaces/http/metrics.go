package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog/log"
)

// MetricsRegistry holds all Prometheus metrics for the dashboard server
type MetricsRegistry struct {
	registry *prometheus.Registry

	// Request metrics
	RequestDuration *prometheus.HistogramVec
	Requests        *prometheus.CounterVec
	RateLimited     prometheus.Counter

	// Render metrics
	RenderDuration *prometheus.HistogramVec
	Renders        *prometheus.CounterVec

	// Dataset metrics
	DatasetRecords *prometheus.GaugeVec
}

// NewMetricsRegistry creates a registry with runtime collectors and all
// dashboard metrics registered. Each server owns its own registry.
func NewMetricsRegistry() *MetricsRegistry {
	m := &MetricsRegistry{
		registry: prometheus.NewRegistry(),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "defiboard_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"route", "method"},
		),

		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defiboard_http_requests_total",
				Help: "Total HTTP requests by route and status code",
			},
			[]string{"route", "method", "status"},
		),

		RateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "defiboard_http_rate_limited_total",
				Help: "Total requests rejected by the per-client rate limiter",
			},
		),

		RenderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "defiboard_render_duration_seconds",
				Help:    "Duration of dashboard page builds by output format",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"format"},
		),

		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defiboard_renders_total",
				Help: "Total dashboard page builds by format and result",
			},
			[]string{"format", "result"},
		),

		DatasetRecords: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "defiboard_dataset_records",
				Help: "Number of records held per collection",
			},
			[]string{"collection"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.Requests,
		m.RateLimited,
		m.RenderDuration,
		m.Renders,
		m.DatasetRecords,
	)

	return m
}

// ObserveRequest records one served request
func (m *MetricsRegistry) ObserveRequest(route, method string, status int, d time.Duration) {
	m.RequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
	m.Requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// ObserveRender records one page build
func (m *MetricsRegistry) ObserveRender(format string, d time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.RenderDuration.WithLabelValues(format).Observe(d.Seconds())
	m.Renders.WithLabelValues(format, result).Inc()

	log.Debug().
		Str("format", format).
		Str("result", result).
		Dur("duration", d).
		Msg("Dashboard page built")
}

// SetDatasetRecords publishes collection sizes
func (m *MetricsRegistry) SetDatasetRecords(counts map[string]int) {
	for collection, n := range counts {
		m.DatasetRecords.WithLabelValues(collection).Set(float64(n))
	}
}

// RenderCount returns how many builds of format finished with result
func (m *MetricsRegistry) RenderCount(format, result string) float64 {
	counter, err := m.Renders.GetMetricWithLabelValues(format, result)
	if err != nil {
		return 0
	}
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		return 0
	}
	return metric.GetCounter().GetValue()
}

// Gatherer exposes the underlying registry, mainly for tests
func (m *MetricsRegistry) Gatherer() prometheus.Gatherer {
	return m.registry
}

// MetricsHandler returns an HTTP handler for Prometheus metrics
func (m *MetricsRegistry) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
