package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its own registry so that several instances (tests) never
// collide on the global one. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	sessionsStarted *prometheus.CounterVec
	sessionsDone    *prometheus.CounterVec
	scores          *prometheus.HistogramVec
	storageErrors   *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		sessionsStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quiz_sessions_started_total",
				Help: "Sessions that drew at least one question",
			},
			[]string{"mode", "category"},
		),
		sessionsDone: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quiz_sessions_completed_total",
				Help: "Sessions that reached the completed state",
			},
			[]string{"mode", "category"},
		),
		scores: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quiz_session_score",
				Help:    "Final score of completed sessions",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
			[]string{"mode"},
		),
		storageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "progress_storage_errors_total",
				Help: "Storage faults that were logged and swallowed",
			},
			[]string{"op", "key"},
		),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) SessionStarted(mode, category string) {
	if m == nil {
		return
	}
	m.sessionsStarted.WithLabelValues(mode, category).Inc()
}

func (m *Metrics) SessionCompleted(mode, category string, score int) {
	if m == nil {
		return
	}
	m.sessionsDone.WithLabelValues(mode, category).Inc()
	m.scores.WithLabelValues(mode).Observe(float64(score))
}

func (m *Metrics) StorageError(op, key string) {
	if m == nil {
		return
	}
	m.storageErrors.WithLabelValues(op, key).Inc()
}
