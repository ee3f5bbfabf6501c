package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRenewalDistribution(t *testing.T) {
	t.Run("buckets companies by furthest renewal", func(t *testing.T) {
		snap := &Snapshot{Clients: []ClientRecord{
			client("A", "Sales", 0, 2020),
			client("A", "Sales", 2, 2022),
			client("A", "Sales", 1, 2021),
			client("B", "Sales", 0, 2020),
			client("C", "Ops", 0, 2020),
			client("C", "Ops", 2, 2022),
		}}

		got := ComputeRenewalDistribution(snap)
		require.Len(t, got, 2)
		assert.Equal(t, RenewalBucket{RenewalTimes: 0, NumberOfClients: 1}, got[0])
		assert.Equal(t, RenewalBucket{RenewalTimes: 2, NumberOfClients: 2}, got[1])
	})

	t.Run("buckets partition all companies exactly once", func(t *testing.T) {
		snap := &Snapshot{Clients: []ClientRecord{
			client("A", "Sales", 0, 2020),
			client("A", "Sales", 3, 2023),
			client("B", "Sales", 1, 2021),
			client("C", "Ops", 0, 2020),
			client("D", "Ops", 1, 2021),
			client("D", "Ops", 1, 2022),
		}}

		got := ComputeRenewalDistribution(snap)

		total := 0
		for _, bucket := range got {
			total += bucket.NumberOfClients
		}
		assert.Equal(t, 4, total, "sum of bucket counts must equal distinct companies")
	})

	t.Run("empty snapshot", func(t *testing.T) {
		assert.Empty(t, ComputeRenewalDistribution(&Snapshot{}))
	})
}
