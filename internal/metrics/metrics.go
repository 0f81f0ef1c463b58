// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for PathQueries.
const (
	OutcomeFound       = "found"
	OutcomeNoRoute     = "no_route"
	OutcomeUnknownNode = "unknown_node"
	OutcomeInvalid     = "invalid"
	OutcomeTimeout     = "timeout"
)

// Collector holds all Prometheus metrics for the service.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	PathQueries      *prometheus.CounterVec
	PathQueryLatency prometheus.Histogram
	GraphReloads     *prometheus.CounterVec
	GraphVertices    prometheus.Gauge
}

// NewCollector creates a Collector registered on its own registry, so
// several instances (e.g. one per test) never collide.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		PathQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "path_queries_total",
				Help:      "Path queries by outcome",
			},
			[]string{"outcome"},
		),
		PathQueryLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_query_duration_seconds",
				Help:      "Time spent computing shortest and second-best paths",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		GraphReloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graph_reloads_total",
				Help:      "Graph reload attempts by result",
			},
			[]string{"result"},
		),
		GraphVertices: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "graph_vertices",
				Help:      "Vertices in the currently served graph",
			},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.PathQueries,
		c.PathQueryLatency,
		c.GraphReloads,
		c.GraphVertices,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Registry returns the registry the collectors are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one finished request.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObservePathQuery records one path query.
func (c *Collector) ObservePathQuery(outcome string, d time.Duration) {
	c.PathQueries.WithLabelValues(outcome).Inc()
	if d > 0 {
		c.PathQueryLatency.Observe(d.Seconds())
	}
}

// ObserveReload records a graph reload attempt.
func (c *Collector) ObserveReload(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	c.GraphReloads.WithLabelValues(result).Inc()
}

// SetGraphVertices publishes the size of the served graph.
func (c *Collector) SetGraphVertices(n int) {
	c.GraphVertices.Set(float64(n))
}
