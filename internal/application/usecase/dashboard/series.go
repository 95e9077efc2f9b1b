package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

// DailySeries is a gap-filled per-day series. All three slices have exactly
// one entry per day of the window.
type DailySeries struct {
	Labels   []string
	Counts   []int
	Revenues []decimal.Decimal
}

// BuildDailySeries counts bookings and sums revenue per pickup day over every
// day of window. Days without bookings are present with zero values.
func BuildDailySeries(bookings []entity.Booking, window valueobject.DateWindow) DailySeries {
	pickupDate := func(b entity.Booking) string { return b.PickupDate }
	byDateCount := Count(bookings, pickupDate)
	byDateRevenue := SumBy(bookings, pickupDate, func(b entity.Booking) valueobject.Amount { return b.Revenue })

	// Generate all days in the window to ensure no gaps
	days := window.Days()
	series := DailySeries{
		Labels:   days,
		Counts:   make([]int, len(days)),
		Revenues: make([]decimal.Decimal, len(days)),
	}
	for i, day := range days {
		series.Counts[i], _ = byDateCount.Get(day)
		if rev, ok := byDateRevenue.Get(day); ok {
			series.Revenues[i] = rev
		} else {
			series.Revenues[i] = decimal.Zero
		}
	}
	return series
}

// CountAt returns the booking count for an ISO day, or zero when the day is
// outside the series.
func (s DailySeries) CountAt(day string) int {
	for i, label := range s.Labels {
		if label == day {
			return s.Counts[i]
		}
	}
	return 0
}

// FleetSeries returns a constant series of the fleet size shown next to the
// trend. When exactly one branch is selected the value is that branch's unit
// count, unless it has none, in which case the unrestricted total is kept so
// the series is never visually empty.
func FleetSeries(fleet []entity.FleetUnit, selectedBranches valueobject.StringSet, length int) []int {
	shown := len(fleet)
	if selectedBranches.Len() == 1 {
		branch := selectedBranches.Values()[0]
		n := 0
		for _, unit := range fleet {
			if unit.BranchOffice == branch {
				n++
			}
		}
		if n > 0 {
			shown = n
		}
	}

	if length < 0 {
		length = 0
	}
	series := make([]int, length)
	for i := range series {
		series[i] = shown
	}
	return series
}
