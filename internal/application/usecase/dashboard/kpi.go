package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

// KPIs is the scalar summary of a filtered booking subset.
type KPIs struct {
	TotalRevenue      decimal.Decimal
	TotalAncillaries  decimal.Decimal
	TotalDurationDays int64
	// RevenuePerDay and AncillariesPerDay are normalized per rental day across
	// the whole subset, not averaged per booking.
	RevenuePerDay     decimal.Decimal
	AncillariesPerDay decimal.Decimal
	IncidentCost      decimal.Decimal
	BookingCount      int
	// AverageDuration is nil when there are no bookings.
	AverageDuration *decimal.Decimal
}

// ComputeKPIs derives the KPI set from a booking subset and its incidents.
func ComputeKPIs(bookings []entity.Booking, incidents []entity.Incident) KPIs {
	revenue := Total(bookings, func(b entity.Booking) valueobject.Amount { return b.Revenue })
	ancillaries := Total(bookings, func(b entity.Booking) valueobject.Amount { return b.Ancillaries })
	duration := Total(bookings, func(b entity.Booking) valueobject.Days { return b.DurationDays })

	kpis := KPIs{
		TotalRevenue:      revenue,
		TotalAncillaries:  ancillaries,
		TotalDurationDays: duration.IntPart(),
		RevenuePerDay:     perDay(revenue, duration),
		AncillariesPerDay: perDay(ancillaries, duration),
		IncidentCost:      Total(incidents, func(i entity.Incident) valueobject.Amount { return i.TotalPrice }),
		BookingCount:      len(bookings),
	}

	if kpis.BookingCount > 0 {
		avg := duration.Div(decimal.NewFromInt(int64(kpis.BookingCount)))
		kpis.AverageDuration = &avg
	}

	return kpis
}

// perDay divides value by days, yielding zero when there are no rental days.
func perDay(value, days decimal.Decimal) decimal.Decimal {
	if !days.IsPositive() {
		return decimal.Zero
	}
	return value.Div(days)
}
