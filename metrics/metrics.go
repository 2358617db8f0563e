package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	CustomersAdded   prometheus.Counter
	AddressUpdates   *prometheus.CounterVec
}

// New creates all metrics on a fresh registry, together with the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "customers_http_request_duration_seconds",
			Help:    "Latency of HTTP requests in seconds, labeled by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		RequestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "customers_http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		}),
		CustomersAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "customers_added_total",
			Help: "Total number of customers added",
		}),
		AddressUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "customers_address_updates_total",
			Help: "Total number of address updates, labeled by whether the store confirmed them",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncrementCustomersAdded() {
	m.CustomersAdded.Inc()
}

// ObserveAddressUpdate counts an address update as either "updated" or "unconfirmed".
func (m *Metrics) ObserveAddressUpdate(updated bool) {
	result := "updated"
	if !updated {
		result = "unconfirmed"
	}
	m.AddressUpdates.WithLabelValues(result).Inc()
}

// ObserveRequest records the latency of a single request.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records the latency of every request. Requests are labeled with the chi route
// pattern rather than the raw path, so ids do not end up in label values.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.RequestsInFlight.Inc()
		defer m.RequestsInFlight.Dec()

		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(wrapped, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := wrapped.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.ObserveRequest(r.Method, route, status, time.Since(start))
	})
}
