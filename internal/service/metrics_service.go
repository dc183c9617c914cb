package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsSnapshot aggregates counters for lightweight status endpoints.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	ExportsTotal             uint64    `json:"exportsTotal"`
	AIFallbacksTotal         uint64    `json:"aiFallbacksTotal"`
	StudentsImportedTotal    uint64    `json:"studentsImportedTotal"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	exportsTotal     *prometheus.CounterVec
	aiFallbacks      prometheus.Counter
	studentsImported prometheus.Counter

	requestCount         uint64
	requestDurationTotal uint64
	exportCount          uint64
	aiFallbackCount      uint64
	importedCount        uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	exportsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exports_total",
		Help: "Total number of generated export files",
	}, []string{"format"})

	aiFallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ai_fallbacks_total",
		Help: "Total AI drafting calls that fell back to canned text",
	})

	studentsImported := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "students_imported_total",
		Help: "Total students created or updated through spreadsheet import",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, exportsTotal, aiFallbacks, studentsImported, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:         registry,
		handler:          handler,
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		exportsTotal:     exportsTotal,
		aiFallbacks:      aiFallbacks,
		studentsImported: studentsImported,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveExport counts a generated export file by format (csv, pdf, xlsx).
func (m *MetricsService) ObserveExport(format string) {
	if m == nil {
		return
	}
	m.exportsTotal.WithLabelValues(format).Inc()
	atomic.AddUint64(&m.exportCount, 1)
}

// ObserveAIFallback counts a drafting call that returned canned fallback text.
func (m *MetricsService) ObserveAIFallback() {
	if m == nil {
		return
	}
	m.aiFallbacks.Inc()
	atomic.AddUint64(&m.aiFallbackCount, 1)
}

// ObserveStudentsImported counts students touched by a spreadsheet import.
func (m *MetricsService) ObserveStudentsImported(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.studentsImported.Add(float64(count))
	atomic.AddUint64(&m.importedCount, uint64(count))
}

// Snapshot returns aggregated metrics suitable for status endpoints.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return MetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		ExportsTotal:             atomic.LoadUint64(&m.exportCount),
		AIFallbacksTotal:         atomic.LoadUint64(&m.aiFallbackCount),
		StudentsImportedTotal:    atomic.LoadUint64(&m.importedCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
