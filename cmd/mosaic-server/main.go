package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"mosaic/internal/assessment"
	"mosaic/internal/config"
	mosaicerrors "mosaic/internal/errors"
	"mosaic/internal/llm"
	"mosaic/internal/logging"
	"mosaic/internal/narrative"
	"mosaic/internal/observability"
	"mosaic/internal/report"
	serverhttp "mosaic/internal/server/http"
	"mosaic/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	obsLogger := observability.NewLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger := logging.FromObservabilityWithComponent(obsLogger, "Server")
	logger.Info("starting mosaic server")

	var metrics *observability.MetricsCollector
	if cfg.Metrics.Enabled {
		metrics, err = observability.NewMetricsCollector(observability.MetricsConfig{
			Enabled:        true,
			PrometheusPort: cfg.Metrics.PrometheusPort,
		})
		if err != nil {
			log.Fatalf("initialize metrics: %v", err)
		}
	}

	tracerProvider, err := observability.NewTracerProvider(observability.TracingConfig{
		Enabled:      cfg.Tracing.Enabled,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
	})
	if err != nil {
		log.Fatalf("initialize tracing: %v", err)
	}

	bank, err := assessment.LoadBank(logging.FromObservabilityWithComponent(obsLogger, "Bank"))
	if err != nil {
		log.Fatalf("load question bank: %v", err)
	}
	table, err := narrative.LoadTable()
	if err != nil {
		log.Fatalf("load narrative content: %v", err)
	}

	var enricher narrative.Enricher
	if cfg.LLM.Enabled() {
		client, err := llm.NewOpenAIClient(cfg.LLM.Model, llm.Config{
			APIKey:     cfg.LLM.APIKey,
			BaseURL:    cfg.LLM.BaseURL,
			Timeout:    cfg.LLM.Timeout,
			MaxRetries: cfg.LLM.MaxRetries,
		})
		if err != nil {
			log.Fatalf("initialize llm client: %v", err)
		}
		enricher = narrative.NewLLMEnricher(
			llm.NewRetryClient(client, mosaicerrors.RetryConfigWithRetries(cfg.LLM.MaxRetries)),
			narrative.NewCannedEnricher(table),
		)
		logger.Info("llm enrichment enabled model=%s", cfg.LLM.Model)
	} else {
		enricher = narrative.NewCannedEnricher(table)
		logger.Info("llm enrichment disabled, using canned content")
	}

	generator, err := report.NewGenerator(bank, table, enricher,
		report.WithLogger(logging.FromObservabilityWithComponent(obsLogger, "Generator")),
		report.WithMetrics(metrics),
	)
	if err != nil {
		log.Fatalf("initialize report generator: %v", err)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("open report store: %v", err)
	}

	handler := serverhttp.NewAPIHandler(generator, store, bank,
		logging.FromObservabilityWithComponent(obsLogger, "API"))
	srv := serverhttp.NewServer(cfg.Server, handler, obsLogger, metrics, tracerProvider)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(srv.Start)
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := group.Wait(); err != nil {
		logger.Error("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Close(); err != nil {
		logger.Error("close store: %v", err)
	}
	if metrics != nil {
		if err := metrics.Shutdown(ctx); err != nil {
			logger.Error("shutdown metrics: %v", err)
		}
	}
	if err := tracerProvider.Shutdown(ctx); err != nil {
		logger.Error("shutdown tracing: %v", err)
	}
	logger.Info("server stopped")
}
