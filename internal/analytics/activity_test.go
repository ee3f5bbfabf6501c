package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeClientActivity(t *testing.T) {
	t.Run("counts distinct companies and growth", func(t *testing.T) {
		snap := &Snapshot{Clients: []ClientRecord{
			client("A", "Sales", 0, 2020),
			client("A", "Sales", 1, 2021),
			client("B", "Sales", 0, 2020),
		}}

		got := ComputeClientActivity(snap)
		require.Len(t, got, 2)

		assert.Equal(t, 2020, got[0].Year)
		assert.Equal(t, 2, got[0].ActiveClients)
		assert.Nil(t, got[0].GrowthPercent, "first year has no growth figure")

		assert.Equal(t, 2021, got[1].Year)
		assert.Equal(t, 1, got[1].ActiveClients)
		require.NotNil(t, got[1].GrowthPercent)
		assert.Equal(t, -50.0, *got[1].GrowthPercent)
	})

	t.Run("same company twice in a year counts once", func(t *testing.T) {
		snap := &Snapshot{Clients: []ClientRecord{
			client("A", "Sales", 0, 2020),
			client("A", "Ops", 0, 2020),
		}}

		got := ComputeClientActivity(snap)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ActiveClients)
	})

	t.Run("years are ordered ascending regardless of input order", func(t *testing.T) {
		snap := &Snapshot{Clients: []ClientRecord{
			client("A", "Sales", 0, 2022),
			client("B", "Sales", 0, 2019),
			client("C", "Sales", 0, 2021),
		}}

		got := ComputeClientActivity(snap)
		require.Len(t, got, 3)
		assert.Equal(t, []int{2019, 2021, 2022}, []int{got[0].Year, got[1].Year, got[2].Year})
	})

	t.Run("growth rounds to one decimal", func(t *testing.T) {
		// 3 -> 4 clients is +33.333...%, rounded to 33.3.
		snap := &Snapshot{Clients: []ClientRecord{
			client("A", "Sales", 0, 2020),
			client("B", "Sales", 0, 2020),
			client("C", "Sales", 0, 2020),
			client("A", "Sales", 1, 2021),
			client("B", "Sales", 1, 2021),
			client("C", "Sales", 1, 2021),
			client("D", "Sales", 0, 2021),
		}}

		got := ComputeClientActivity(snap)
		require.Len(t, got, 2)
		require.NotNil(t, got[1].GrowthPercent)
		assert.Equal(t, 33.3, *got[1].GrowthPercent)
	})

	t.Run("empty snapshot", func(t *testing.T) {
		assert.Empty(t, ComputeClientActivity(&Snapshot{}))
	})
}
