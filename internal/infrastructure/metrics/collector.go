// Package metrics collects Prometheus metrics for the HTTP surface and the
// write paths that have interesting outcomes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes of a catalog upsert
const (
	UpsertExisting     = "existing"
	UpsertCreated      = "created"
	UpsertRaceResolved = "race_resolved"
)

// Collector owns every metric of the service. Register it on a dedicated
// registry so tests can create as many as they like.
type Collector struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	catalogUpserts *prometheus.CounterVec
	uowFallbacks   *prometheus.CounterVec
	oauthCallbacks *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "artsoul_http_requests_total",
			Help: "Total number of HTTP requests processed.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "artsoul_http_request_duration_seconds",
			Help:    "Histogram of latencies for HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		catalogUpserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "artsoul_catalog_upserts_total",
			Help: "Catalog upserts by outcome.",
		}, []string{"outcome"}),
		uowFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "artsoul_unit_of_work_fallbacks_total",
			Help: "Mutations that ran without a unit of work because the store could not open one.",
		}, []string{"operation"}),
		oauthCallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "artsoul_oauth_callbacks_total",
			Help: "Identity provider callbacks by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.catalogUpserts,
		c.uowFallbacks,
		c.oauthCallbacks,
	)
	return c
}

// ObserveHTTPRequest records one served request. route is the route template,
// not the raw path, to keep label cardinality bounded.
func (c *Collector) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (c *Collector) RecordCatalogUpsert(outcome string) {
	c.catalogUpserts.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordUnitOfWorkFallback(operation string) {
	c.uowFallbacks.WithLabelValues(operation).Inc()
}

func (c *Collector) RecordOAuthCallback(outcome string) {
	c.oauthCallbacks.WithLabelValues(outcome).Inc()
}

// Handler returns the scrape endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
