package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProfitAttribution(t *testing.T) {
	t.Run("contract share and estimated profit", func(t *testing.T) {
		snap := &Snapshot{
			Clients: []ClientRecord{
				client("A", "Sales", 0, 2019),
				client("A", "Sales", 2, 2021),
				client("B", "Sales", 0, 2020),
			},
			Finance: []FinanceRecord{
				finance("Sales", 2020, 2000, 400),
				finance("Sales", 2021, 1000, 200),
			},
		}

		got := ComputeProfitAttribution(snap)
		require.Len(t, got, 4, "each client joins every finance year of its department")

		// A holds 3 of 4 department contracts, B holds 1 of 4.
		assert.Equal(t, ClientProfitShare{Department: "Sales", Company: "A", Year: 2020, ContractSharePercent: 75.0, EstimatedProfit: 300.0}, got[0])
		assert.Equal(t, ClientProfitShare{Department: "Sales", Company: "A", Year: 2021, ContractSharePercent: 75.0, EstimatedProfit: 150.0}, got[1])
		assert.Equal(t, ClientProfitShare{Department: "Sales", Company: "B", Year: 2020, ContractSharePercent: 25.0, EstimatedProfit: 100.0}, got[2])
		assert.Equal(t, ClientProfitShare{Department: "Sales", Company: "B", Year: 2021, ContractSharePercent: 25.0, EstimatedProfit: 50.0}, got[3])
	})

	t.Run("rows ordered by descending estimate within department", func(t *testing.T) {
		snap := &Snapshot{
			Clients: []ClientRecord{
				client("Small", "Sales", 0, 2020),
				client("Big", "Sales", 4, 2021),
			},
			Finance: []FinanceRecord{finance("Sales", 2021, 1000, 600)},
		}

		got := ComputeProfitAttribution(snap)
		require.Len(t, got, 2)
		assert.Equal(t, "Big", got[0].Company)
		assert.Equal(t, "Small", got[1].Company)
		assert.Greater(t, got[0].EstimatedProfit, got[1].EstimatedProfit)
	})

	t.Run("caps at fifteen rows per department with stable ties", func(t *testing.T) {
		snap := &Snapshot{
			Finance: []FinanceRecord{finance("Sales", 2021, 1000, 160)},
		}
		for i := 0; i < 16; i++ {
			snap.Clients = append(snap.Clients, client(fmt.Sprintf("C%02d", i), "Sales", 0, 2021))
		}

		got := ComputeProfitAttribution(snap)
		require.Len(t, got, maxTopClients)

		// All estimates tie, so input order decides who survives the cap.
		for i, row := range got {
			assert.Equal(t, fmt.Sprintf("C%02d", i), row.Company)
		}
	})

	t.Run("contract shares sum to 100 across a department", func(t *testing.T) {
		snap := &Snapshot{
			Clients: []ClientRecord{
				client("A", "Sales", 2, 2021),
				client("B", "Sales", 0, 2021),
			},
			Finance: []FinanceRecord{finance("Sales", 2021, 1000, 100)},
		}

		sum := 0.0
		for _, row := range ComputeProfitAttribution(snap) {
			sum += row.ContractSharePercent
		}
		assert.InDelta(t, 100.0, sum, 0.1)
	})

	t.Run("department without finance rows is absent", func(t *testing.T) {
		snap := &Snapshot{
			Clients: []ClientRecord{client("A", "Legal", 0, 2020)},
			Finance: []FinanceRecord{finance("Sales", 2020, 100, 10)},
		}

		assert.Empty(t, ComputeProfitAttribution(snap))
	})

	t.Run("departments grouped ascending", func(t *testing.T) {
		snap := &Snapshot{
			Clients: []ClientRecord{
				client("Z", "Ops", 0, 2020),
				client("A", "Legal", 0, 2020),
			},
			Finance: []FinanceRecord{
				finance("Ops", 2020, 100, 10),
				finance("Legal", 2020, 100, 10),
			},
		}

		got := ComputeProfitAttribution(snap)
		require.Len(t, got, 2)
		assert.Equal(t, "Legal", got[0].Department)
		assert.Equal(t, "Ops", got[1].Department)
	})
}
