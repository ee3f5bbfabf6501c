// Command analyzer reads the client contract and department finance
// workbooks, runs the full analytics pipeline, and writes the derived
// tables as CSV files plus a combined JSON report.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"clientpulse/internal/analytics"
	"clientpulse/internal/config"
	"clientpulse/internal/dataload"
	"clientpulse/internal/exporter"
	"clientpulse/internal/infrastructure"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	clientsFile := flag.String("clients", "", "client contracts workbook (overrides config)")
	financeFile := flag.String("finance", "", "department finance workbook (overrides config)")
	outDir := flag.String("out", "", "output directory for reports (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *clientsFile != "" {
		cfg.Data.ClientsFile = *clientsFile
	}
	if *financeFile != "" {
		cfg.Data.FinanceFile = *financeFile
	}
	if *outDir != "" {
		cfg.Data.OutputDir = *outDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	logger.InfoContext(ctx, "Starting analyzer",
		slog.String("clients_file", cfg.Data.ClientsFile),
		slog.String("finance_file", cfg.Data.FinanceFile),
		slog.String("output_dir", cfg.Data.OutputDir))

	clients, err := dataload.ReadWorkbook(cfg.Data.ClientsFile)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read clients workbook",
			slog.String("path", cfg.Data.ClientsFile),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	finance, err := dataload.ReadWorkbook(cfg.Data.FinanceFile)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read finance workbook",
			slog.String("path", cfg.Data.FinanceFile),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := analytics.NewPipeline(logger, prometheus.DefaultRegisterer)
	report, err := pipeline.Run(ctx, clients, finance)
	if err != nil {
		logger.ErrorContext(ctx, "Pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	writer := exporter.NewWriter(logger, cfg.Data.OutputDir)
	if err := writer.WriteAll(ctx, report); err != nil {
		logger.ErrorContext(ctx, "Failed to write reports",
			slog.String("output_dir", cfg.Data.OutputDir),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Analyzer finished",
		slog.Int("client_rows", report.ClientRows),
		slog.Int("finance_rows", report.FinanceRows),
		slog.Int("dropped_rows", report.DroppedRows))
}
