// Package exporter writes the derived report tables to CSV and JSON
// files for the external presentation layer.
package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"clientpulse/internal/analytics"
)

// Writer exports report tables into an output directory.
type Writer struct {
	logger *slog.Logger
	outDir string
	bom    bool
}

// NewWriter creates an exporter rooted at outDir. The UTF-8 BOM prefix
// is on by default so Excel recognizes the encoding.
func NewWriter(logger *slog.Logger, outDir string) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger, outDir: outDir, bom: true}
}

// WriteAll writes one CSV per derived table plus the combined JSON report.
func (w *Writer) WriteAll(ctx context.Context, report *analytics.Report) error {
	tables := []struct {
		file    string
		header  []string
		records [][]string
	}{
		{"yearly_activity.csv",
			[]string{"Year", "ActiveClients", "GrowthPercent"},
			activityRecords(report.Activity)},
		{"renewal_distribution.csv",
			[]string{"RenewalTimes", "NumberOfClients"},
			renewalRecords(report.Renewals)},
		{"market_share.csv",
			[]string{"Department", "TotalContracts", "SharePercent"},
			shareRecords(report.MarketShare)},
		{"first_contract_share.csv",
			[]string{"Department", "TotalContracts", "SharePercent"},
			shareRecords(report.FirstShare)},
		{"churn_retention.csv",
			[]string{"Year", "ChurnPercent", "RetentionPercent"},
			churnRecords(report.Churn)},
		{"financial_summary.csv",
			[]string{"Department", "Year", "TotalSales", "TotalProfit", "ProfitMarginPercent"},
			financeRecords(report.Finance)},
		{"top_clients.csv",
			[]string{"Department", "Company", "Year", "ContractSharePercent", "EstimatedProfit"},
			topClientRecords(report.TopClients)},
	}

	for _, table := range tables {
		path := filepath.Join(w.outDir, table.file)
		if err := w.writeCSV(path, table.header, table.records); err != nil {
			return fmt.Errorf("write %s: %w", table.file, err)
		}
	}

	if err := w.WriteJSON(ctx, filepath.Join(w.outDir, "report.json"), report); err != nil {
		return err
	}

	w.logger.InfoContext(ctx, "report exported",
		slog.String("out_dir", w.outDir),
		slog.Int("tables", len(tables)))

	return nil
}

func (w *Writer) writeCSV(path string, header []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8.
	if w.bom {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// formatOptional serializes an undefined metric as an empty cell, never zero.
func formatOptional(v *float64, decimals int) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

func activityRecords(rows []analytics.YearlyActivity) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.ActiveClients),
			formatOptional(row.GrowthPercent, 1),
		})
	}
	return records
}

func renewalRecords(rows []analytics.RenewalBucket) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(row.RenewalTimes),
			strconv.Itoa(row.NumberOfClients),
		})
	}
	return records
}

func shareRecords(rows []analytics.DepartmentShare) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Department,
			strconv.Itoa(row.TotalContracts),
			strconv.FormatFloat(row.SharePercent, 'f', 1, 64),
		})
	}
	return records
}

func churnRecords(rows []analytics.ChurnRetention) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(row.Year),
			formatOptional(row.ChurnPercent, 1),
			formatOptional(row.RetentionPercent, 1),
		})
	}
	return records
}

func financeRecords(rows []analytics.FinancialSummary) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Department,
			strconv.Itoa(row.Year),
			strconv.FormatFloat(row.TotalSales, 'f', 2, 64),
			strconv.FormatFloat(row.TotalProfit, 'f', 2, 64),
			formatOptional(row.ProfitMarginPercent, 1),
		})
	}
	return records
}

func topClientRecords(rows []analytics.ClientProfitShare) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Department,
			row.Company,
			strconv.Itoa(row.Year),
			strconv.FormatFloat(row.ContractSharePercent, 'f', 1, 64),
			strconv.FormatFloat(row.EstimatedProfit, 'f', 2, 64),
		})
	}
	return records
}
