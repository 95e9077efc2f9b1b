package valueobject

import (
	"time"

	domainerror "github.com/fleet-dashboard/backend/internal/domain/error"
)

// DateWindow is an inclusive, validated range of ISO days.
type DateWindow struct {
	Start string
	End   string

	startDate time.Time
	endDate   time.Time
}

// NewDateWindow validates both bounds and their ordering.
func NewDateWindow(start, end string) (DateWindow, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return DateWindow{}, err
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return DateWindow{}, err
	}
	if endDate.Before(startDate) {
		return DateWindow{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateWindow,
			"window "+start+".."+end+" is reversed",
			domainerror.ErrInvalidDateWindow,
		)
	}
	return DateWindow{Start: start, End: end, startDate: startDate, endDate: endDate}, nil
}

// MustDateWindow is NewDateWindow for compile-time constants; it panics on error.
func MustDateWindow(start, end string) DateWindow {
	w, err := NewDateWindow(start, end)
	if err != nil {
		panic(err)
	}
	return w
}

// Contains reports whether the ISO day lies inside the window.
func (w DateWindow) Contains(iso string) bool {
	return iso >= w.Start && iso <= w.End
}

// Clamp snaps an ISO day into the window; empty input yields Start.
func (w DateWindow) Clamp(iso string) string {
	return Clamp(iso, w.Start, w.End)
}

// Days lists every day of the window.
func (w DateWindow) Days() []string {
	return EnumerateDays(w.startDate, w.endDate)
}

// Len returns the number of days in the window.
func (w DateWindow) Len() int {
	return len(w.Days())
}

// ReportingCalendar holds the two global windows: the reactive range that
// bounds every date selection, and the fixed month shown regardless of it.
type ReportingCalendar struct {
	Range DateWindow
	Month DateWindow
}

// Default window bounds.
const (
	DefaultDateMin  = "2025-12-01"
	DefaultDateMax  = "2026-01-04"
	DefaultMonthMin = "2025-12-01"
	DefaultMonthMax = "2025-12-31"
)

// DefaultReportingCalendar returns the built-in windows.
func DefaultReportingCalendar() ReportingCalendar {
	return ReportingCalendar{
		Range: MustDateWindow(DefaultDateMin, DefaultDateMax),
		Month: MustDateWindow(DefaultMonthMin, DefaultMonthMax),
	}
}
