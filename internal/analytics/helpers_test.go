package analytics

// Shared fixtures for the analyzer tests.

func client(company, department string, renewalNo, year int) ClientRecord {
	return ClientRecord{
		Company:    company,
		Department: department,
		RenewalNo:  renewalNo,
		Year:       year,
	}
}

func finance(department string, year int, sales, profit float64) FinanceRecord {
	return FinanceRecord{
		Department:  department,
		Year:        year,
		TotalSales:  sales,
		TotalProfit: profit,
	}
}

func fptr(v float64) *float64 {
	return &v
}
