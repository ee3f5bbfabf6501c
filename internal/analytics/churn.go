package analytics

import "sort"

// ComputeChurnRetention reports client churn and retention for every
// consecutive pair of observed years. Calendar gaps are treated as
// adjacent in sequence order. Churn is the fraction of the earlier
// year's companies absent from the later year; retention is its
// complement. Both are nil when the earlier cohort is empty. The
// output has one row per pair, keyed by the earlier year.
func ComputeChurnRetention(s *Snapshot) []ChurnRetention {
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

	var out []ChurnRetention
	for i := 0; i+1 < len(years); i++ {
		current := byYear[years[i]]
		next := byYear[years[i+1]]

		row := ChurnRetention{Year: years[i]}
		if len(current) > 0 {
			lost := 0
			for company := range current {
				if _, ok := next[company]; !ok {
					lost++
				}
			}
			churn := roundTo(100*float64(lost)/float64(len(current)), 1)
			retention := 100 - churn
			row.ChurnPercent = &churn
			row.RetentionPercent = &retention
		}
		out = append(out, row)
	}

	return out
}
