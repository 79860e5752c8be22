package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	DocumentsProcessed prometheus.Counter
	ExtractionFailures *prometheus.CounterVec
	RequestsTotal      *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	documentsProcessed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "docbiz",
		Name:      "documents_processed_total",
		Help:      "Documents successfully extracted and stored.",
	})
	extractionFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "docbiz",
		Name:      "extraction_failures_total",
		Help:      "Extraction pipeline failures by reason.",
	}, []string{"reason"})
	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "docbiz",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	registry.MustRegister(
		documentsProcessed,
		extractionFailures,
		requestsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:           registry,
		DocumentsProcessed: documentsProcessed,
		ExtractionFailures: extractionFailures,
		RequestsTotal:      requestsTotal,
	}
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
