package analytics

import "sort"

// maxTopClients caps how many attribution rows each department emits.
const maxTopClients = 15

// ComputeProfitAttribution estimates each client's profit contribution
// within its department, using contract volume as a proxy weight since
// no per-client profit signal exists in the inputs.
//
// A company's contract count is its furthest renewal plus one. The
// count share is taken against the department's total contracts, and
// the share is joined against every finance row of the department —
// deliberately not matched on year, so a client's estimate repeats
// once per finance year. See DESIGN.md for the reasoning behind the
// join key.
//
// Rows are grouped by department (ascending), ordered by descending
// estimated profit within each group with stable input-order ties, and
// capped at maxTopClients per department.
func ComputeProfitAttribution(s *Snapshot) []ClientProfitShare {
	type deptCompany struct {
		department string
		company    string
	}

	maxRenewal := make(map[deptCompany]int)
	var order []deptCompany
	for _, c := range s.Clients {
		key := deptCompany{c.Department, c.Company}
		if cur, ok := maxRenewal[key]; !ok {
			maxRenewal[key] = c.RenewalNo
			order = append(order, key)
		} else if c.RenewalNo > cur {
			maxRenewal[key] = c.RenewalNo
		}
	}

	deptTotals := make(map[string]int)
	for key, max := range maxRenewal {
		deptTotals[key.department] += max + 1
	}

	var rows []ClientProfitShare
	for _, key := range order {
		contracts := maxRenewal[key] + 1
		total := deptTotals[key.department]
		if total == 0 {
			continue
		}
		share := roundTo(100*float64(contracts)/float64(total), 1)

		for _, f := range s.Finance {
			if f.Department != key.department {
				continue
			}
			rows = append(rows, ClientProfitShare{
				Department:           key.department,
				Company:              key.company,
				Year:                 f.Year,
				ContractSharePercent: share,
				EstimatedProfit:      roundTo(share/100*f.TotalProfit, 2),
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Department != rows[j].Department {
			return rows[i].Department < rows[j].Department
		}
		return rows[i].EstimatedProfit > rows[j].EstimatedProfit
	})

	perDept := make(map[string]int)
	out := make([]ClientProfitShare, 0, len(rows))
	for _, row := range rows {
		if perDept[row.Department] >= maxTopClients {
			continue
		}
		perDept[row.Department]++
		out = append(out, row)
	}

	return out
}
