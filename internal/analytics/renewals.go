package analytics

import "sort"

// ComputeRenewalDistribution buckets companies by the furthest renewal
// they reached. Each company lands in exactly one bucket; rows are
// ordered ascending by renewal count.
func ComputeRenewalDistribution(s *Snapshot) []RenewalBucket {
	maxByCompany := make(map[string]int)
	for _, c := range s.Clients {
		if cur, ok := maxByCompany[c.Company]; !ok || c.RenewalNo > cur {
			maxByCompany[c.Company] = c.RenewalNo
		}
	}

	counts := make(map[int]int)
	for _, max := range maxByCompany {
		counts[max]++
	}

	times := make([]int, 0, len(counts))
	for t := range counts {
		times = append(times, t)
	}
	sort.Ints(times)

	out := make([]RenewalBucket, 0, len(times))
	for _, t := range times {
		out = append(out, RenewalBucket{RenewalTimes: t, NumberOfClients: counts[t]})
	}

	return out
}
