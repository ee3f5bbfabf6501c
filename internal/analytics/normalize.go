package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"clientpulse/internal/dataload"
)

// FinanceYearError reports a finance row whose Year cell cannot be cast
// to an integer. Year integrity is assumed by every downstream join, so
// this aborts the pipeline before any analyzer runs.
type FinanceYearError struct {
	Row   int    // 1-based data row number within the sheet
	Value string // offending cell content
}

func (e *FinanceYearError) Error() string {
	return fmt.Sprintf("finance row %d: year %q is not an integer", e.Row, e.Value)
}

// Normalizer cleans the two raw datasets into the typed snapshot the
// analyzers read. Client rows with a missing company, department or an
// unparseable year are dropped and counted; a bad finance year is fatal.
type Normalizer struct {
	logger *slog.Logger
}

// NewNormalizer creates a normalizer. A nil logger falls back to slog.Default.
func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger}
}

// Normalize validates and converts the raw client and finance datasets.
func (n *Normalizer) Normalize(ctx context.Context, clients, finance *dataload.Dataset) (*Snapshot, error) {
	snap := &Snapshot{}

	clientRecords, dropped, err := n.normalizeClients(ctx, clients)
	if err != nil {
		return nil, fmt.Errorf("normalize clients: %w", err)
	}
	snap.Clients = clientRecords
	snap.Dropped = dropped

	financeRecords, err := n.normalizeFinance(ctx, finance)
	if err != nil {
		return nil, fmt.Errorf("normalize finance: %w", err)
	}
	snap.Finance = financeRecords

	n.logger.InfoContext(ctx, "normalization complete",
		slog.Int("client_records", len(snap.Clients)),
		slog.Int("dropped_client_rows", snap.Dropped),
		slog.Int("finance_records", len(snap.Finance)))

	return snap, nil
}

func (n *Normalizer) normalizeClients(ctx context.Context, ds *dataload.Dataset) ([]ClientRecord, int, error) {
	cols, err := resolveColumns(ds.Header, map[string][]string{
		"company":    {"Company", "Company Name"},
		"department": {"Department"},
		"renewal_no": {"Renewal Number", "Renewal_No"},
		"date":       {"Renewal Date", "Renewal_Date"},
	})
	if err != nil {
		return nil, 0, err
	}

	var records []ClientRecord
	dropped := 0

	for i, row := range ds.Rows {
		company := strings.TrimSpace(row[cols["company"]])
		department := strings.TrimSpace(row[cols["department"]])
		date, ok := parseYearDate(row[cols["date"]])

		if company == "" || department == "" || !ok {
			dropped++
			n.logger.DebugContext(ctx, "dropping client row",
				slog.Int("row", i+1),
				slog.String("company", company),
				slog.String("department", department),
				slog.String("renewal_date", row[cols["date"]]))
			continue
		}

		renewalNo, err := parseInt(row[cols["renewal_no"]])
		if err != nil {
			// Renewal number defects do not invalidate the row; the
			// record still counts as an original contract.
			renewalNo = 0
			n.logger.WarnContext(ctx, "unparseable renewal number, assuming original contract",
				slog.Int("row", i+1),
				slog.String("value", row[cols["renewal_no"]]))
		}

		records = append(records, ClientRecord{
			Company:     company,
			Department:  department,
			RenewalNo:   renewalNo,
			RenewalDate: date,
			Year:        date.Year(),
		})
	}

	return records, dropped, nil
}

func (n *Normalizer) normalizeFinance(ctx context.Context, ds *dataload.Dataset) ([]FinanceRecord, error) {
	cols, err := resolveColumns(ds.Header, map[string][]string{
		"department": {"Department"},
		"year":       {"Year"},
		"sales":      {"Total Sales", "Total_Sales"},
		"profit":     {"Total Profit", "Total_Profit"},
	})
	if err != nil {
		return nil, err
	}

	records := make([]FinanceRecord, 0, len(ds.Rows))
	for i, row := range ds.Rows {
		year, err := parseInt(row[cols["year"]])
		if err != nil {
			return nil, &FinanceYearError{Row: i + 1, Value: row[cols["year"]]}
		}

		sales, err := parseFloat(row[cols["sales"]])
		if err != nil {
			sales = 0
			n.logger.WarnContext(ctx, "unparseable total sales, using zero",
				slog.Int("row", i+1),
				slog.String("value", row[cols["sales"]]))
		}
		profit, err := parseFloat(row[cols["profit"]])
		if err != nil {
			profit = 0
			n.logger.WarnContext(ctx, "unparseable total profit, using zero",
				slog.Int("row", i+1),
				slog.String("value", row[cols["profit"]]))
		}

		records = append(records, FinanceRecord{
			Department:  strings.TrimSpace(row[cols["department"]]),
			Year:        year,
			TotalSales:  sales,
			TotalProfit: profit,
		})
	}

	return records, nil
}

// resolveColumns maps canonical field keys to header positions. Header
// cells are matched after trimming surrounding whitespace.
func resolveColumns(header []string, wanted map[string][]string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, cell := range header {
		byName[strings.TrimSpace(cell)] = i
	}

	cols := make(map[string]int, len(wanted))
	var missing []string
	for key, names := range wanted {
		found := false
		for _, name := range names {
			if idx, ok := byName[name]; ok {
				cols[key] = idx
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, names[0])
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required columns not found: %v (header: %v)", missing, header)
	}

	return cols, nil
}

// parseYearDate interprets a year-like cell as a calendar date anchored
// to January 1. Anything that is not a plain four-digit year fails.
func parseYearDate(value string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(value)+"-01-01")
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func parseInt(value string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(value), ",", ""))
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value), ",", ""), 64)
}
