package analytics

import "time"

// ClientRecord is a single normalized contract row from the clients workbook.
// Every retained record has a non-empty Company and Department and a valid Year.
type ClientRecord struct {
	Company     string    `json:"company"`
	Department  string    `json:"department"`
	RenewalNo   int       `json:"renewal_no"` // 0 = original contract, N = the N-th renewal
	RenewalDate time.Time `json:"renewal_date"`
	Year        int       `json:"year"`
}

// FinanceRecord is a single normalized row from the finance workbook.
// The source is assumed to carry one row per (Department, Year) pair;
// the pipeline does not deduplicate.
type FinanceRecord struct {
	Department  string  `json:"department"`
	Year        int     `json:"year"`
	TotalSales  float64 `json:"total_sales"`
	TotalProfit float64 `json:"total_profit"`
}

// Snapshot holds the normalized inputs every analyzer reads from.
// It is never mutated after Normalize returns it.
type Snapshot struct {
	Clients []ClientRecord
	Finance []FinanceRecord

	// Dropped counts client rows discarded during normalization.
	Dropped int
}

// YearlyActivity reports distinct active clients for one year.
// GrowthPercent is nil for the first observed year.
type YearlyActivity struct {
	Year          int      `json:"year"`
	ActiveClients int      `json:"active_clients"`
	GrowthPercent *float64 `json:"growth_percent"`
}

// RenewalBucket counts companies whose furthest renewal reached RenewalTimes.
type RenewalBucket struct {
	RenewalTimes    int `json:"renewal_times"`
	NumberOfClients int `json:"number_of_clients"`
}

// DepartmentShare reports a department's share of contract count within a view.
type DepartmentShare struct {
	Department     string  `json:"department"`
	TotalContracts int     `json:"total_contracts"`
	SharePercent   float64 `json:"share_percent"`
}

// ChurnRetention covers one consecutive pair of observed years, keyed by the
// earlier year. Both rates are nil when the earlier year's cohort is empty.
type ChurnRetention struct {
	Year             int      `json:"year"`
	ChurnPercent     *float64 `json:"churn_percent"`
	RetentionPercent *float64 `json:"retention_percent"`
}

// FinancialSummary reports sales, profit and margin for one department-year.
// ProfitMarginPercent is nil when TotalSales is zero.
type FinancialSummary struct {
	Department          string   `json:"department"`
	Year                int      `json:"year"`
	TotalSales          float64  `json:"total_sales"`
	TotalProfit         float64  `json:"total_profit"`
	ProfitMarginPercent *float64 `json:"profit_margin_percent"`
}

// ClientProfitShare is one row of the top-clients attribution table.
// EstimatedProfit is a proxy figure allocated by contract-count share of
// departmental profit, not a measured value.
type ClientProfitShare struct {
	Department           string  `json:"department"`
	Company              string  `json:"company"`
	Year                 int     `json:"year"`
	ContractSharePercent float64 `json:"contract_share_percent"`
	EstimatedProfit      float64 `json:"estimated_profit"`
}

// Report bundles all derived tables produced by one pipeline run.
type Report struct {
	Activity    []YearlyActivity    `json:"activity"`
	Renewals    []RenewalBucket     `json:"renewals"`
	MarketShare []DepartmentShare   `json:"market_share"`
	FirstShare  []DepartmentShare   `json:"first_contract_share"`
	Churn       []ChurnRetention    `json:"churn_retention"`
	Finance     []FinancialSummary  `json:"financial_summary"`
	TopClients  []ClientProfitShare `json:"top_clients"`
	ClientRows  int                 `json:"client_rows"`
	FinanceRows int                 `json:"finance_rows"`
	DroppedRows int                 `json:"dropped_rows"`
}
