package analytics

// ComputeFinancialSummary passes the finance rows through at their
// source granularity (one row per department-year) and derives the
// profit margin. Margin is nil when sales are zero.
func ComputeFinancialSummary(s *Snapshot) []FinancialSummary {
	out := make([]FinancialSummary, 0, len(s.Finance))
	for _, f := range s.Finance {
		row := FinancialSummary{
			Department:  f.Department,
			Year:        f.Year,
			TotalSales:  f.TotalSales,
			TotalProfit: f.TotalProfit,
		}
		if f.TotalSales != 0 {
			row.ProfitMarginPercent = roundPtr(100*f.TotalProfit/f.TotalSales, 1)
		}
		out = append(out, row)
	}

	return out
}
