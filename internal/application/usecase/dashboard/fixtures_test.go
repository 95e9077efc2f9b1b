package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/fleet-dashboard/backend/internal/domain/error"
	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

func booking(id, date, branch, agent string, revenue int64, days int64) entity.Booking {
	return entity.Booking{
		ID:           valueobject.StringID(id),
		PickupDate:   date,
		BranchOffice: branch,
		Agent:        agent,
		Channel:      "Web",
		Provider:     "Acme",
		Revenue:      valueobject.NewAmount(decimal.NewFromInt(revenue)),
		Ancillaries:  valueobject.NewAmount(decimal.NewFromInt(revenue / 10)),
		DurationDays: valueobject.NewDays(days),
	}
}

func incident(bookingID string, price int64) entity.Incident {
	var id valueobject.RecordID
	if bookingID != "" {
		id = valueobject.StringID(bookingID)
	}
	return entity.Incident{
		BookingID:  id,
		TotalPrice: valueobject.NewAmount(decimal.NewFromInt(price)),
	}
}

func day(iso string) time.Time {
	t, err := valueobject.ParseDate(iso)
	if err != nil {
		panic(err)
	}
	return t
}

// decemberBookings is three December bookings: two on the 5th, one on the 6th.
func decemberBookings() []entity.Booking {
	return []entity.Booking{
		booking("1", "2025-12-05", "Milano", "Rossi", 50, 2),
		booking("2", "2025-12-05", "Roma", "Bianchi", 70, 3),
		booking("3", "2025-12-06", "Milano", "Verdi", 30, 1),
	}
}

// stubReader is an in-memory DatasetReader.
type stubReader struct {
	data    *entity.Dataset
	loadErr error
}

func (s *stubReader) Snapshot() (*entity.Dataset, error) {
	if s.data == nil {
		return nil, domainerror.ErrDatasetNotLoaded
	}
	return s.data, nil
}

func (s *stubReader) LoadError() error {
	return s.loadErr
}

func assertDecimal(t testing.TB, name string, expected int64, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(decimal.NewFromInt(expected)) {
		t.Errorf("expected %s %d, got %s", name, expected, got.String())
	}
}
