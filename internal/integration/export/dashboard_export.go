// Package export renders dashboard results as downloadable documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/fleet-dashboard/backend/internal/application/usecase/dashboard"
)

// Export formats.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// Content types of the export formats.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

const noValue = "-"

type kpiLine struct {
	label string
	value string
}

func kpiLines(out *dashboard.GetDashboardOutput) []kpiLine {
	k := out.KPIs
	avg := noValue
	if k.AverageDuration != nil {
		avg = k.AverageDuration.StringFixed(1)
	}

	return []kpiLine{
		{"Period", out.Filter.Start + " / " + out.Filter.End},
		{"Bookings", fmt.Sprintf("%d", k.BookingCount)},
		{"Revenue", money(k.TotalRevenue)},
		{"Ancillaries", money(k.TotalAncillaries)},
		{"Rental days", fmt.Sprintf("%d", k.TotalDurationDays)},
		{"Revenue per day", money(k.RevenuePerDay)},
		{"Ancillaries per day", money(k.AncillariesPerDay)},
		{"Average duration (days)", avg},
		{"Incident cost", money(k.IncidentCost)},
		{"Fleet", fmt.Sprintf("%d", out.Fleet.Total)},
		{"In service", fmt.Sprintf("%d", out.Fleet.InService)},
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// BuildDashboardXLSX renders the KPIs, the summary table and the daily series.
func BuildDashboardXLSX(out *dashboard.GetDashboardOutput) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	summarySheet := "summary"
	tableSheet := "branch_agent"
	dailySheet := "daily"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(tableSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(dailySheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Fleet Dashboard")
	for i, line := range kpiLines(out) {
		row := i + 3
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), line.label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), line.value)
	}

	_ = f.SetCellValue(tableSheet, "A1", "Branch")
	_ = f.SetCellValue(tableSheet, "B1", "Agent")
	_ = f.SetCellValue(tableSheet, "C1", "Revenue")
	_ = f.SetCellValue(tableSheet, "D1", "Ancillaries")
	_ = f.SetCellValue(tableSheet, "E1", "Bookings")
	for i, r := range out.Table {
		row := i + 2
		revenue, _ := r.Revenue.Float64()
		ancillaries, _ := r.Ancillaries.Float64()
		_ = f.SetCellValue(tableSheet, fmt.Sprintf("A%d", row), r.Branch)
		_ = f.SetCellValue(tableSheet, fmt.Sprintf("B%d", row), r.Agent)
		_ = f.SetCellValue(tableSheet, fmt.Sprintf("C%d", row), revenue)
		_ = f.SetCellValue(tableSheet, fmt.Sprintf("D%d", row), ancillaries)
		_ = f.SetCellValue(tableSheet, fmt.Sprintf("E%d", row), r.BookingCount)
	}

	_ = f.SetCellValue(dailySheet, "A1", "Day")
	_ = f.SetCellValue(dailySheet, "B1", "Bookings")
	_ = f.SetCellValue(dailySheet, "C1", "Revenue")
	_ = f.SetCellValue(dailySheet, "D1", "Fleet")
	trend := out.Trend
	for i, day := range trend.Labels {
		row := i + 2
		revenue, _ := trend.Revenues[i].Float64()
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("A%d", row), day)
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("B%d", row), trend.Counts[i])
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("C%d", row), revenue)
		if i < len(trend.Fleet) {
			_ = f.SetCellValue(dailySheet, fmt.Sprintf("D%d", row), trend.Fleet[i])
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildDashboardPDF renders the KPIs and the summary table on an A4 page.
func BuildDashboardPDF(out *dashboard.GetDashboardOutput) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Fleet Dashboard")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	for _, line := range kpiLines(out) {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %s", line.label, line.value))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 6, "Branch", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Agent", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Revenue", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Ancillaries", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "Bookings", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, r := range out.Table {
		pdf.CellFormat(50, 6, tr(r.Branch), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, tr(r.Agent), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, money(r.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, money(r.Ancillaries), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", r.BookingCount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
