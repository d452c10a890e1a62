package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsCollector manages all metrics for the assessment service
type MetricsCollector struct {
	meter metric.Meter

	// Report pipeline metrics
	reportGenerations metric.Int64Counter
	reportLatency     metric.Float64Histogram
	reportCacheHits   metric.Int64Counter

	// Narrative enrichment metrics
	enrichmentRequests metric.Int64Counter

	// HTTP metrics
	httpRequests metric.Int64Counter
	httpLatency  metric.Float64Histogram

	// Server for Prometheus scraping
	prometheusServer *http.Server
}

// MetricsConfig configures the metrics collector
type MetricsConfig struct {
	Enabled        bool `yaml:"enabled"`
	PrometheusPort int  `yaml:"prometheus_port"`
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(config MetricsConfig) (*MetricsCollector, error) {
	if !config.Enabled {
		return &MetricsCollector{}, nil
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter("mosaic")

	reportGenerations, err := meter.Int64Counter(
		"mosaic.report.generations.total",
		metric.WithDescription("Total number of generated assessment reports"),
		metric.WithUnit("{report}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create report_generations counter: %w", err)
	}

	reportLatency, err := meter.Float64Histogram(
		"mosaic.report.latency",
		metric.WithDescription("Report generation latency"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create report_latency histogram: %w", err)
	}

	reportCacheHits, err := meter.Int64Counter(
		"mosaic.report.cache.hits.total",
		metric.WithDescription("Report cache hits keyed by answer-set content"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create report_cache_hits counter: %w", err)
	}

	enrichmentRequests, err := meter.Int64Counter(
		"mosaic.enrichment.requests.total",
		metric.WithDescription("Narrative enrichment requests by outcome (remote, fallback, canned)"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrichment_requests counter: %w", err)
	}

	httpRequests, err := meter.Int64Counter(
		"mosaic.http.requests.total",
		metric.WithDescription("Total HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_requests counter: %w", err)
	}

	httpLatency, err := meter.Float64Histogram(
		"mosaic.http.latency",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_latency histogram: %w", err)
	}

	collector := &MetricsCollector{
		meter:              meter,
		reportGenerations:  reportGenerations,
		reportLatency:      reportLatency,
		reportCacheHits:    reportCacheHits,
		enrichmentRequests: enrichmentRequests,
		httpRequests:       httpRequests,
		httpLatency:        httpLatency,
	}

	if config.PrometheusPort > 0 {
		collector.startPrometheusServer(config.PrometheusPort)
	}

	return collector, nil
}

// startPrometheusServer starts the HTTP server for Prometheus scraping
func (m *MetricsCollector) startPrometheusServer(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promclient.Handler())

	m.prometheusServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		if err := m.prometheusServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("prometheus server error: %v\n", err)
		}
	}()
}

// RecordReportGeneration records one generated report and its latency.
func (m *MetricsCollector) RecordReportGeneration(ctx context.Context, archetype string, duration time.Duration) {
	if m.reportGenerations == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("archetype", archetype))
	m.reportGenerations.Add(ctx, 1, attrs)
	m.reportLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
}

// RecordReportCacheHit records a content-addressed cache hit.
func (m *MetricsCollector) RecordReportCacheHit(ctx context.Context) {
	if m.reportCacheHits == nil {
		return
	}
	m.reportCacheHits.Add(ctx, 1)
}

// RecordEnrichment records one narrative enrichment request by outcome.
func (m *MetricsCollector) RecordEnrichment(ctx context.Context, outcome string) {
	if m.enrichmentRequests == nil {
		return
	}
	m.enrichmentRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordHTTPRequest records one HTTP request with its status and latency.
func (m *MetricsCollector) RecordHTTPRequest(ctx context.Context, method, route string, status int, duration time.Duration) {
	if m.httpRequests == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	)
	m.httpRequests.Add(ctx, 1, attrs)
	m.httpLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
}

// Shutdown stops the Prometheus scrape server.
func (m *MetricsCollector) Shutdown(ctx context.Context) error {
	if m.prometheusServer == nil {
		return nil
	}
	return m.prometheusServer.Shutdown(ctx)
}
