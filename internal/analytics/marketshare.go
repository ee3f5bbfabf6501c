package analytics

import "sort"

// ComputeMarketShare groups contract rows by department and reports
// each department's share of the total count. With firstOnly set the
// grouping is restricted to original contracts (renewal number zero);
// a department with no original contracts is simply absent from that
// view. Rows are ordered ascending by department name.
func ComputeMarketShare(s *Snapshot, firstOnly bool) []DepartmentShare {
	counts := make(map[string]int)
	total := 0
	for _, c := range s.Clients {
		if firstOnly && c.RenewalNo != 0 {
			continue
		}
		counts[c.Department]++
		total++
	}
	if total == 0 {
		return nil
	}

	departments := make([]string, 0, len(counts))
	for dept := range counts {
		departments = append(departments, dept)
	}
	sort.Strings(departments)

	out := make([]DepartmentShare, 0, len(departments))
	for _, dept := range departments {
		out = append(out, DepartmentShare{
			Department:     dept,
			TotalContracts: counts[dept],
			SharePercent:   roundTo(100*float64(counts[dept])/float64(total), 1),
		})
	}

	return out
}
