// Command server computes the analytics report at startup and serves it
// over HTTP alongside health and Prometheus metrics endpoints.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clientpulse/internal/analytics"
	"clientpulse/internal/config"
	"clientpulse/internal/dataload"
	"clientpulse/internal/infrastructure"
	"clientpulse/internal/middleware"
	transporthttp "clientpulse/internal/transport/http"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("Server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	configPath := "config.yaml"
	if v := os.Getenv("CLIENTPULSE_CONFIG"); v != "" {
		configPath = v
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	ctx := context.Background()
	report := computeReport(ctx, logger, cfg)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.StructuredLogger(logger))
	router.Use(chimiddleware.Recoverer)
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	health := transporthttp.NewHealthHandler(version)
	router.Get("/healthz", health.Health)
	router.Handle("/metrics", promhttp.Handler())
	router.Mount("/api/report", transporthttp.NewReportHandler(report, logger).Routes())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "Starting server",
			slog.String("version", version),
			slog.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		logger.InfoContext(ctx, "Received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.InfoContext(ctx, "Server shutdown complete")
	return nil
}

// computeReport runs the pipeline once at startup. A failure leaves the
// server running with a nil report so /healthz and /metrics stay up while
// the report routes answer 503.
func computeReport(ctx context.Context, logger *slog.Logger, cfg *config.Config) *analytics.Report {
	clients, err := dataload.ReadWorkbook(cfg.Data.ClientsFile)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read clients workbook",
			slog.String("path", cfg.Data.ClientsFile),
			slog.String("error", err.Error()))
		return nil
	}

	finance, err := dataload.ReadWorkbook(cfg.Data.FinanceFile)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read finance workbook",
			slog.String("path", cfg.Data.FinanceFile),
			slog.String("error", err.Error()))
		return nil
	}

	pipeline := analytics.NewPipeline(logger, prometheus.DefaultRegisterer)
	report, err := pipeline.Run(ctx, clients, finance)
	if err != nil {
		logger.ErrorContext(ctx, "Pipeline failed", slog.String("error", err.Error()))
		return nil
	}
	return report
}
