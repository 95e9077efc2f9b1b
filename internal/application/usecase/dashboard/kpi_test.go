package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

func TestComputeKPIs(t *testing.T) {
	t.Run("december scenario", func(t *testing.T) {
		bookings := decemberBookings()
		incidents := []entity.Incident{incident("1", 25), incident("", 1000)}

		kpis := ComputeKPIs(bookings, IncidentsFor(bookings, incidents))

		if kpis.BookingCount != 3 {
			t.Errorf("expected 3 bookings, got %d", kpis.BookingCount)
		}
		assertDecimal(t, "revenue", 150, kpis.TotalRevenue)
		assertDecimal(t, "ancillaries", 15, kpis.TotalAncillaries)
		if kpis.TotalDurationDays != 6 {
			t.Errorf("expected 6 rental days, got %d", kpis.TotalDurationDays)
		}
		assertDecimal(t, "revenue per day", 25, kpis.RevenuePerDay)
		assertDecimal(t, "incident cost", 25, kpis.IncidentCost)

		if kpis.AverageDuration == nil {
			t.Fatal("expected average duration")
		}
		assertDecimal(t, "average duration", 2, *kpis.AverageDuration)
	})

	t.Run("zero duration yields zero per-day values", func(t *testing.T) {
		bookings := []entity.Booking{
			booking("1", "2025-12-05", "Milano", "Rossi", 100, 0),
		}

		kpis := ComputeKPIs(bookings, nil)

		assertDecimal(t, "revenue", 100, kpis.TotalRevenue)
		if !kpis.RevenuePerDay.IsZero() {
			t.Errorf("expected zero revenue per day, got %s", kpis.RevenuePerDay)
		}
		if !kpis.AncillariesPerDay.IsZero() {
			t.Errorf("expected zero ancillaries per day, got %s", kpis.AncillariesPerDay)
		}
	})

	t.Run("empty subset", func(t *testing.T) {
		kpis := ComputeKPIs(nil, nil)

		if kpis.BookingCount != 0 {
			t.Errorf("expected 0 bookings, got %d", kpis.BookingCount)
		}
		if kpis.AverageDuration != nil {
			t.Errorf("expected no average duration, got %s", kpis.AverageDuration)
		}
		if !kpis.TotalRevenue.IsZero() {
			t.Errorf("expected zero revenue, got %s", kpis.TotalRevenue)
		}
	})

	t.Run("missing numbers count as zero", func(t *testing.T) {
		bookings := []entity.Booking{
			booking("1", "2025-12-05", "Milano", "Rossi", 80, 4),
			{
				ID:           valueobject.StringID("2"),
				PickupDate:   "2025-12-05",
				Revenue:      valueobject.MissingAmount(),
				Ancillaries:  valueobject.AmountFromFloat(0),
				DurationDays: valueobject.DaysFromNullInt(nil),
			},
		}

		kpis := ComputeKPIs(bookings, nil)

		if kpis.BookingCount != 2 {
			t.Errorf("expected 2 bookings, got %d", kpis.BookingCount)
		}
		assertDecimal(t, "revenue", 80, kpis.TotalRevenue)
		if kpis.TotalDurationDays != 4 {
			t.Errorf("expected 4 rental days, got %d", kpis.TotalDurationDays)
		}
		assertDecimal(t, "average duration", 2, *kpis.AverageDuration)
	})

	t.Run("per-day values are not rounded", func(t *testing.T) {
		bookings := []entity.Booking{
			booking("1", "2025-12-05", "Milano", "Rossi", 100, 3),
		}

		kpis := ComputeKPIs(bookings, nil)

		expected := decimal.NewFromInt(100).Div(decimal.NewFromInt(3))
		if !kpis.RevenuePerDay.Equal(expected) {
			t.Errorf("expected %s, got %s", expected, kpis.RevenuePerDay)
		}
	})
}
