package dashboard

import (
	"testing"

	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

func TestBuildDailySeries(t *testing.T) {
	month := valueobject.MustDateWindow("2025-12-01", "2025-12-31")

	t.Run("december scenario", func(t *testing.T) {
		series := BuildDailySeries(decemberBookings(), month)

		if len(series.Labels) != 31 {
			t.Fatalf("expected 31 days, got %d", len(series.Labels))
		}
		if series.CountAt("2025-12-05") != 2 {
			t.Errorf("expected 2 bookings on 05, got %d", series.CountAt("2025-12-05"))
		}
		if series.CountAt("2025-12-06") != 1 {
			t.Errorf("expected 1 booking on 06, got %d", series.CountAt("2025-12-06"))
		}

		total := 0
		for i, label := range series.Labels {
			total += series.Counts[i]
			if label != "2025-12-05" && label != "2025-12-06" && series.Counts[i] != 0 {
				t.Errorf("expected 0 bookings on %s, got %d", label, series.Counts[i])
			}
		}
		if total != 3 {
			t.Errorf("expected 3 bookings in total, got %d", total)
		}
		assertDecimal(t, "revenue on 05", 120, series.Revenues[4])
		assertDecimal(t, "revenue on 01", 0, series.Revenues[0])
	})

	t.Run("labels are ordered and gap-free", func(t *testing.T) {
		window := valueobject.MustDateWindow("2025-12-30", "2026-01-02")
		series := BuildDailySeries(nil, window)

		expected := []string{"2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02"}
		if len(series.Labels) != len(expected) {
			t.Fatalf("expected %d labels, got %d", len(expected), len(series.Labels))
		}
		for i := range expected {
			if series.Labels[i] != expected[i] {
				t.Errorf("expected label %s, got %s", expected[i], series.Labels[i])
			}
			if series.Counts[i] != 0 {
				t.Errorf("expected 0 on %s, got %d", expected[i], series.Counts[i])
			}
		}
	})

	t.Run("bookings outside the window are not counted", func(t *testing.T) {
		window := valueobject.MustDateWindow("2025-12-06", "2025-12-06")
		series := BuildDailySeries(decemberBookings(), window)

		if len(series.Counts) != 1 || series.Counts[0] != 1 {
			t.Errorf("expected [1], got %v", series.Counts)
		}
	})
}

func TestFleetSeries(t *testing.T) {
	fleet := []entity.FleetUnit{
		{BranchOffice: "Milano", Provider: "Acme"},
		{BranchOffice: "Milano", Provider: "Acme"},
		{BranchOffice: "Roma", Provider: "Beta"},
	}

	tests := []struct {
		name     string
		branches []string
		expected int
	}{
		{name: "no branch selected uses the whole fleet", branches: nil, expected: 3},
		{name: "single branch uses its units", branches: []string{"Milano"}, expected: 2},
		{name: "single branch without units keeps the total", branches: []string{"Napoli"}, expected: 3},
		{name: "several branches use the whole fleet", branches: []string{"Milano", "Roma"}, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := FleetSeries(fleet, valueobject.NewStringSet(tt.branches), 5)

			if len(series) != 5 {
				t.Fatalf("expected 5 points, got %d", len(series))
			}
			for i, v := range series {
				if v != tt.expected {
					t.Errorf("expected %d at %d, got %d", tt.expected, i, v)
				}
			}
		})
	}
}
