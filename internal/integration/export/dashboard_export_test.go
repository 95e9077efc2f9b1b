package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/fleet-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

func sampleOutput() *dashboard.GetDashboardOutput {
	avg := decimal.NewFromFloat(2.5)
	return &dashboard.GetDashboardOutput{
		Filter: valueobject.FilterState{Start: "2025-12-01", End: "2025-12-02"},
		KPIs: dashboard.KPIs{
			TotalRevenue:      decimal.NewFromInt(120),
			TotalAncillaries:  decimal.NewFromInt(12),
			TotalDurationDays: 5,
			RevenuePerDay:     decimal.NewFromInt(24),
			AncillariesPerDay: decimal.RequireFromString("2.4"),
			IncidentCost:      decimal.Zero,
			BookingCount:      2,
			AverageDuration:   &avg,
		},
		Trend: dashboard.TrendSeries{
			DailySeries: dashboard.DailySeries{
				Labels:   []string{"2025-12-01", "2025-12-02"},
				Counts:   []int{1, 1},
				Revenues: []decimal.Decimal{decimal.NewFromInt(50), decimal.NewFromInt(70)},
			},
			Fleet: []int{3, 3},
		},
		Table: []dashboard.SummaryRow{
			{Branch: "Forlì", Agent: "Rossi", Revenue: decimal.NewFromInt(70), Ancillaries: decimal.NewFromInt(7), BookingCount: 1},
			{Branch: "Milano", Agent: "Verdi", Revenue: decimal.NewFromInt(50), Ancillaries: decimal.NewFromInt(5), BookingCount: 1},
		},
	}
}

func TestBuildDashboardXLSX(t *testing.T) {
	body, err := BuildDashboardXLSX(sampleOutput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	expected := []string{"summary", "branch_agent", "daily"}
	if len(sheets) != len(expected) {
		t.Fatalf("expected sheets %v, got %v", expected, sheets)
	}

	tests := []struct {
		sheet    string
		cell     string
		expected string
	}{
		{sheet: "summary", cell: "B4", expected: "2"},
		{sheet: "summary", cell: "B5", expected: "120.00"},
		{sheet: "branch_agent", cell: "A2", expected: "Forlì"},
		{sheet: "branch_agent", cell: "E3", expected: "1"},
		{sheet: "daily", cell: "A3", expected: "2025-12-02"},
		{sheet: "daily", cell: "D2", expected: "3"},
	}
	for _, tt := range tests {
		t.Run(tt.sheet+"!"+tt.cell, func(t *testing.T) {
			got, err := f.GetCellValue(tt.sheet, tt.cell)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBuildDashboardPDF(t *testing.T) {
	t.Run("with rows", func(t *testing.T) {
		body, err := BuildDashboardPDF(sampleOutput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(body, []byte("%PDF-")) {
			t.Errorf("expected PDF header, got %q", body[:8])
		}
	})

	t.Run("empty dashboard", func(t *testing.T) {
		body, err := BuildDashboardPDF(&dashboard.GetDashboardOutput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(body) == 0 {
			t.Error("expected a non-empty document")
		}
	})
}

func TestKPILines(t *testing.T) {
	out := sampleOutput()
	out.KPIs.AverageDuration = nil

	lines := kpiLines(out)

	for _, line := range lines {
		if line.label == "Average duration (days)" && line.value != noValue {
			t.Errorf("expected %q for missing average, got %q", noValue, line.value)
		}
	}
	if lines[0].value != "2025-12-01 / 2025-12-02" {
		t.Errorf("expected period line, got %q", lines[0].value)
	}
}
