// Package metrics holds the Prometheus collectors shared by the API and the worker.
package metrics

import (
	"net/http"
	"sync"

	"socialdesk/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	WebhookEvents   *prometheus.CounterVec
	InboundMessages *prometheus.CounterVec
	WorkerEvents    *prometheus.CounterVec
	GraphRequests   *prometheus.CounterVec
	GraphLatency    *prometheus.HistogramVec
	HTTPRequests    *prometheus.CounterVec
	HTTPLatency     *prometheus.HistogramVec
	SlowQueries     prometheus.Counter
	Errors          *prometheus.CounterVec

	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// New provides the process-wide collectors registered under the configured namespace.
func New(cfg *config.Config) *Metrics {
	namespace := "socialdesk"
	if cfg != nil && cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	return Registry(namespace)
}

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = build(namespace, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	})

	return metricsInstance
}

// NewIsolated registers a fresh set of collectors in its own registry. Used by tests.
func NewIsolated(namespace string) *Metrics {
	reg := prometheus.NewRegistry()

	return build(namespace, reg, reg)
}

func build(namespace string, registerer prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		WebhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_events_total",
			Help:      "Meta webhook deliveries by outcome.",
		}, []string{"outcome"}),
		InboundMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inbound_messages_total",
			Help:      "Inbound messages by platform and result.",
		}, []string{"platform", "result"}),
		WorkerEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_events_total",
			Help:      "Queued webhook events handled by the worker, by source and result.",
		}, []string{"source", "result"}),
		GraphRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_requests_total",
			Help:      "Meta Graph API requests by endpoint and status.",
		}, []string{"endpoint", "status"}),
		GraphLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_request_duration_seconds",
			Help:      "Latency distribution for Meta Graph API calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SlowQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_slow_queries_total",
			Help:      "Database statements slower than the logging threshold.",
		}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total errors grouped by component.",
		}, []string{"component"}),
		registerer: registerer,
		gatherer:   gatherer,
	}

	registerer.MustRegister(
		m.WebhookEvents,
		m.InboundMessages,
		m.WorkerEvents,
		m.GraphRequests,
		m.GraphLatency,
		m.HTTPRequests,
		m.HTTPLatency,
		m.SlowQueries,
		m.Errors,
	)

	return m
}

// Handler exposes the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{Registry: m.registerer})
}

// CountError increments the error counter of component. Safe on a nil receiver.
func (m *Metrics) CountError(component string) {
	if m == nil {
		return
	}
	m.Errors.WithLabelValues(component).Inc()
}
