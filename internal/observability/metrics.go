package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// MetricsNamespace is the namespace for all metrics.
	MetricsNamespace = "site_content"
)

// Metrics holds the Prometheus metrics for content loading, artifact
// generation and HTTP serving. Each Metrics owns its registry.
type Metrics struct {
	registry *prometheus.Registry

	// Content metrics
	LoadsTotal     *prometheus.CounterVec
	LoadDuration   *prometheus.HistogramVec
	RecordsLoaded  *prometheus.GaugeVec
	GateRejections prometheus.Counter

	// Artifact metrics
	ArtifactsTotal *prometheus.CounterVec

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RateLimited     prometheus.Counter
}

// NewMetrics creates and registers all metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	factory := promauto.With(reg)
	m := &Metrics{registry: reg}
	m.initContentMetrics(factory)
	m.initArtifactMetrics(factory)
	m.initHTTPMetrics(factory)
	return m
}

func (m *Metrics) initContentMetrics(factory promauto.Factory) {
	m.LoadsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: "content",
			Name:      "loads_total",
			Help:      "Total number of category load attempts",
		},
		[]string{"category", "status"},
	)
	m.LoadDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Subsystem: "content",
			Name:      "load_duration_seconds",
			Help:      "Time to read, validate and index a category",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"category"},
	)
	m.RecordsLoaded = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Subsystem: "content",
			Name:      "records",
			Help:      "Number of records held per category",
		},
		[]string{"category"},
	)
	m.GateRejections = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: "content",
			Name:      "gate_rejections_total",
			Help:      "Loads rejected because a record required human review",
		},
	)
}

func (m *Metrics) initArtifactMetrics(factory promauto.Factory) {
	m.ArtifactsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: "artifacts",
			Name:      "generated_total",
			Help:      "Total number of generated artifacts by kind",
		},
		[]string{"kind"},
	)
}

func (m *Metrics) initHTTPMetrics(factory promauto.Factory) {
	m.RequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "code"},
	)
	m.RequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)
	m.RateLimited = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		},
	)
}

// reviewer is implemented by load errors that need a person to fix the
// backing document.
type reviewer interface {
	ReviewRequired() bool
}

// ObserveLoad records one category load attempt.
func (m *Metrics) ObserveLoad(category string, records int, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		var r reviewer
		if errors.As(err, &r) && r.ReviewRequired() {
			m.GateRejections.Inc()
		}
	}
	m.LoadsTotal.WithLabelValues(category, status).Inc()
	m.LoadDuration.WithLabelValues(category).Observe(elapsed.Seconds())
	if err == nil {
		m.RecordsLoaded.WithLabelValues(category).Set(float64(records))
	}
}

// ObserveArtifact counts one generated artifact (sitemap, robots, jsonld).
func (m *Metrics) ObserveArtifact(kind string) {
	m.ArtifactsTotal.WithLabelValues(kind).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route string, code int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
