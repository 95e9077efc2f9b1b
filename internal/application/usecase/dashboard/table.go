package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fleet-dashboard/backend/internal/domain/entity"
)

// SummaryRow is one (branch, agent) line of the summary table.
type SummaryRow struct {
	Branch       string
	Agent        string
	Revenue      decimal.Decimal
	Ancillaries  decimal.Decimal
	BookingCount int
}

type branchAgentKey struct {
	branch string
	agent  string
}

// SummarizeByBranchAgent groups bookings by (branch, agent) and sorts the rows
// by revenue descending. Ties are ordered by branch, then agent, ascending.
func SummarizeByBranchAgent(bookings []entity.Booking) []SummaryRow {
	index := make(map[branchAgentKey]int)
	rows := make([]SummaryRow, 0)

	for _, b := range bookings {
		k := branchAgentKey{branch: b.BranchOffice, agent: b.Agent}
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, SummaryRow{
				Branch:      b.BranchOffice,
				Agent:       b.Agent,
				Revenue:     decimal.Zero,
				Ancillaries: decimal.Zero,
			})
		}
		rows[i].Revenue = rows[i].Revenue.Add(b.Revenue.Decimal())
		rows[i].Ancillaries = rows[i].Ancillaries.Add(b.Ancillaries.Decimal())
		rows[i].BookingCount++
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].Revenue.Cmp(rows[j].Revenue); c != 0 {
			return c > 0
		}
		if rows[i].Branch != rows[j].Branch {
			return rows[i].Branch < rows[j].Branch
		}
		return rows[i].Agent < rows[j].Agent
	})

	return rows
}
