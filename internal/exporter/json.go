package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"clientpulse/internal/analytics"
)

// WriteJSON writes the full report as one JSON document with metadata,
// the format the web reporting surface consumes.
func (w *Writer) WriteJSON(ctx context.Context, path string, report *analytics.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	doc := map[string]interface{}{
		"report":       report,
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "clientpulse_report_v1",
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	w.logger.InfoContext(ctx, "report JSON written", slog.String("path", path))

	return nil
}
