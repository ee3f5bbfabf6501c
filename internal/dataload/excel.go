// Package dataload reads the raw client and finance workbooks into
// tabular datasets. It performs no cleaning beyond dropping fully empty
// rows; header cells are kept verbatim so the normalizer can apply its
// own column-name handling.
package dataload

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Dataset holds one sheet's raw tabular data.
type Dataset struct {
	Sheet  string
	Header []string
	Rows   [][]string
}

// ReadWorkbook opens the workbook at path and reads its first sheet.
func ReadWorkbook(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	ds, err := ReadSheet(f, sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read workbook %s: %w", path, err)
	}

	slog.Info("workbook loaded",
		slog.String("path", path),
		slog.String("sheet", ds.Sheet),
		slog.Int("rows", len(ds.Rows)))

	return ds, nil
}

// ReadSheet reads a named sheet from an open workbook. The first
// non-empty row becomes the header; later rows are padded to the header
// width so positional access is always in bounds.
func ReadSheet(f *excelize.File, sheet string) (*Dataset, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	ds := &Dataset{Sheet: sheet}
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		if ds.Header == nil {
			ds.Header = row
			continue
		}
		if len(row) < len(ds.Header) {
			padded := make([]string, len(ds.Header))
			copy(padded, row)
			row = padded
		}
		ds.Rows = append(ds.Rows, row)
	}

	if ds.Header == nil {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	return ds, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
