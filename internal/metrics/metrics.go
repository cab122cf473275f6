package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "radio_api"

// Metrics holds the service's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	hostAttempts    *prometheus.CounterVec
	hostLatency     *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	partialFailures *prometheus.CounterVec
	stationsServed  *prometheus.CounterVec
}

// New creates the collectors on a private registry, including Go and process collectors
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		hostAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "directory_host_attempts_total",
			Help:      "Requests sent to radio-browser hosts, by outcome.",
		}, []string{"host", "outcome"}),
		hostLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "directory_host_latency_seconds",
			Help:      "Latency of radio-browser requests per host.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2, 4, 8},
		}, []string{"host"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Station cache lookups, by result.",
		}, []string{"result"}),
		partialFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "partial_fetch_failures_total",
			Help:      "Fan-out tasks that failed and contributed no stations.",
		}, []string{"endpoint"}),
		stationsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stations_served_total",
			Help:      "Stations returned to clients, by endpoint.",
		}, []string{"endpoint"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.hostAttempts,
		m.hostLatency,
		m.cacheLookups,
		m.partialFailures,
		m.stationsServed,
	)
	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// HostAttempt records one request to a directory host
func (m *Metrics) HostAttempt(host string, ok bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.hostAttempts.WithLabelValues(host, outcome).Inc()
	m.hostLatency.WithLabelValues(host).Observe(elapsed.Seconds())
}

// CacheLookup records a cache hit or miss
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// PartialFailure records a failed fan-out task
func (m *Metrics) PartialFailure(endpoint string) {
	if m == nil {
		return
	}
	m.partialFailures.WithLabelValues(endpoint).Inc()
}

// StationsServed records the size of a response
func (m *Metrics) StationsServed(endpoint string, n int) {
	if m == nil {
		return
	}
	m.stationsServed.WithLabelValues(endpoint).Add(float64(n))
}

// Middleware records request counts and latency per matched route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
