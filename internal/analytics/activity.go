package analytics

import "sort"

// ComputeClientActivity counts distinct active companies per year and
// the year-over-year growth rate. Rows are ordered ascending by year;
// the first year has no growth figure.
func ComputeClientActivity(s *Snapshot) []YearlyActivity {
	byYear := make(map[int]map[string]struct{})
	for _, c := range s.Clients {
		set := byYear[c.Year]
		if set == nil {
			set = make(map[string]struct{})
			byYear[c.Year] = set
		}
		set[c.Company] = struct{}{}
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	out := make([]YearlyActivity, 0, len(years))
	for i, year := range years {
		row := YearlyActivity{Year: year, ActiveClients: len(byYear[year])}
		if i > 0 {
			prev := len(byYear[years[i-1]])
			if prev > 0 {
				row.GrowthPercent = roundPtr(100*float64(row.ActiveClients-prev)/float64(prev), 1)
			}
		}
		out = append(out, row)
	}

	return out
}
