package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "users_api"

// PrometheusRecorder exposes metrics through a dedicated Prometheus registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	usersCreated       prometheus.Counter
	validationFailures prometheus.Counter
	storeFailures      *prometheus.CounterVec
}

// NewPrometheus creates a recorder with its own registry, including Go and process collectors.
func NewPrometheus() *PrometheusRecorder {
	reg := prometheus.NewRegistry()

	p := &PrometheusRecorder{
		registry: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"code", "method", "route"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_created_total",
			Help:      "Users inserted successfully.",
		}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_validation_failures_total",
			Help:      "Create requests rejected for missing fields.",
		}),
		storeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_failures_total",
			Help:      "Database failures by operation and kind.",
		}, []string{"op", "kind"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.requestsTotal,
		p.requestDuration,
		p.usersCreated,
		p.validationFailures,
		p.storeFailures,
	)

	return p
}

// ObserveRequest records a served request.
func (p *PrometheusRecorder) ObserveRequest(method, route string, status int, duration time.Duration) {
	p.requestsTotal.WithLabelValues(strconv.Itoa(status), method, route).Inc()
	p.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncUserCreated increments users created counter.
func (p *PrometheusRecorder) IncUserCreated() {
	p.usersCreated.Inc()
}

// IncValidationFailure increments rejected create requests.
func (p *PrometheusRecorder) IncValidationFailure() {
	p.validationFailures.Inc()
}

// IncStoreFailure increments the failure counter for op and kind.
func (p *PrometheusRecorder) IncStoreFailure(op, kind string) {
	p.storeFailures.WithLabelValues(op, kind).Inc()
}

// Handler serves the registry in Prometheus exposition format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
