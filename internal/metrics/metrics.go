// Package metrics provides Prometheus metrics for the content index.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector, registered on its own registry so tests
// can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	// HTTP
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Index
	QueriesTotal  *prometheus.CounterVec
	ResultsTotal  *prometheus.CounterVec
	RecordsLoaded *prometheus.GaugeVec
	ReloadsTotal  *prometheus.CounterVec
	LastReload    prometheus.Gauge

	// Collaborators
	DownloadsTotal *prometheus.CounterVec
	ImportsTotal   *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "code"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "folio_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_queries_total",
				Help: "Total number of index queries",
			},
			[]string{"kind", "op"},
		),
		ResultsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_query_results_total",
				Help: "Total number of records returned by index queries",
			},
			[]string{"kind", "op"},
		),
		RecordsLoaded: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "folio_records_loaded",
				Help: "Number of records in the current snapshot",
			},
			[]string{"kind"},
		),
		ReloadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_reloads_total",
				Help: "Snapshot rebuilds by result",
			},
			[]string{"result"},
		),
		LastReload: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "folio_last_reload_timestamp_seconds",
				Help: "Unix time of the last successful snapshot swap",
			},
		),
		DownloadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_cv_downloads_total",
				Help: "CV downloads recorded by format",
			},
			[]string{"format"},
		),
		ImportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_imports_total",
				Help: "Article imports by result",
			},
			[]string{"result"},
		),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveQuery counts one query and the size of its result.
func (m *Metrics) ObserveQuery(kind, op string, results int) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(kind, op).Inc()
	m.ResultsTotal.WithLabelValues(kind, op).Add(float64(results))
}

// ObserveReload records the outcome of a snapshot rebuild.
func (m *Metrics) ObserveReload(err error, articles, projects int) {
	if m == nil {
		return
	}
	if err != nil {
		m.ReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	m.ReloadsTotal.WithLabelValues("ok").Inc()
	m.RecordsLoaded.WithLabelValues("article").Set(float64(articles))
	m.RecordsLoaded.WithLabelValues("project").Set(float64(projects))
	m.LastReload.Set(float64(time.Now().Unix()))
}
