package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFinancialSummary(t *testing.T) {
	t.Run("margin per department-year row", func(t *testing.T) {
		snap := &Snapshot{Finance: []FinanceRecord{
			finance("Sales", 2021, 1000, 250),
			finance("Ops", 2021, 300, -60),
		}}

		got := ComputeFinancialSummary(snap)
		require.Len(t, got, 2)

		require.NotNil(t, got[0].ProfitMarginPercent)
		assert.Equal(t, 25.0, *got[0].ProfitMarginPercent)
		assert.Equal(t, 1000.0, got[0].TotalSales)
		assert.Equal(t, 250.0, got[0].TotalProfit)

		require.NotNil(t, got[1].ProfitMarginPercent)
		assert.Equal(t, -20.0, *got[1].ProfitMarginPercent)
	})

	t.Run("zero sales leaves margin undefined", func(t *testing.T) {
		snap := &Snapshot{Finance: []FinanceRecord{finance("Sales", 2021, 0, 100)}}

		got := ComputeFinancialSummary(snap)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].ProfitMarginPercent)
	})

	t.Run("source row order is preserved", func(t *testing.T) {
		snap := &Snapshot{Finance: []FinanceRecord{
			finance("Zeta", 2022, 10, 1),
			finance("Alpha", 2020, 10, 1),
		}}

		got := ComputeFinancialSummary(snap)
		require.Len(t, got, 2)
		assert.Equal(t, "Zeta", got[0].Department)
		assert.Equal(t, "Alpha", got[1].Department)
	})

	t.Run("margin rounds to one decimal", func(t *testing.T) {
		snap := &Snapshot{Finance: []FinanceRecord{finance("Sales", 2021, 300, 100)}}

		got := ComputeFinancialSummary(snap)
		require.NotNil(t, got[0].ProfitMarginPercent)
		assert.Equal(t, 33.3, *got[0].ProfitMarginPercent)
	})
}
