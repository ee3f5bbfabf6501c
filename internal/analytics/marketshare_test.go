package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMarketShare(t *testing.T) {
	snap := &Snapshot{Clients: []ClientRecord{
		client("A", "Sales", 0, 2020),
		client("A", "Sales", 1, 2021),
		client("B", "Sales", 0, 2020),
		client("C", "Ops", 0, 2020),
		client("C", "Ops", 1, 2021),
		client("D", "Legal", 1, 2021),
	}}

	t.Run("all contracts", func(t *testing.T) {
		got := ComputeMarketShare(snap, false)
		require.Len(t, got, 3)

		// Departments ordered ascending.
		assert.Equal(t, DepartmentShare{Department: "Legal", TotalContracts: 1, SharePercent: 16.7}, got[0])
		assert.Equal(t, DepartmentShare{Department: "Ops", TotalContracts: 2, SharePercent: 33.3}, got[1])
		assert.Equal(t, DepartmentShare{Department: "Sales", TotalContracts: 3, SharePercent: 50.0}, got[2])
	})

	t.Run("first contracts only", func(t *testing.T) {
		got := ComputeMarketShare(snap, true)
		require.Len(t, got, 2, "Legal has no original contract and is absent")

		assert.Equal(t, DepartmentShare{Department: "Ops", TotalContracts: 1, SharePercent: 33.3}, got[0])
		assert.Equal(t, DepartmentShare{Department: "Sales", TotalContracts: 2, SharePercent: 66.7}, got[1])
	})

	t.Run("shares sum to 100 within rounding tolerance", func(t *testing.T) {
		for _, firstOnly := range []bool{false, true} {
			sum := 0.0
			for _, row := range ComputeMarketShare(snap, firstOnly) {
				sum += row.SharePercent
			}
			assert.InDelta(t, 100.0, sum, 0.1)
		}
	})

	t.Run("empty snapshot", func(t *testing.T) {
		assert.Empty(t, ComputeMarketShare(&Snapshot{}, false))
		assert.Empty(t, ComputeMarketShare(&Snapshot{}, true))
	})
}
