package valueobject

import (
	"time"

	domainerror "github.com/fleet-dashboard/backend/internal/domain/error"
)

// ISODateLayout is the only accepted date shape.
const ISODateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into local midnight of that day.
// No timezone conversion is applied.
func ParseDate(iso string) (time.Time, error) {
	if len(iso) != len(ISODateLayout) {
		return time.Time{}, domainerror.NewFormatError(iso)
	}
	t, err := time.ParseInLocation(ISODateLayout, iso, time.Local)
	if err != nil {
		return time.Time{}, domainerror.NewFormatError(iso)
	}
	return t, nil
}

// FormatDate formats a date as zero-padded YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// Clamp snaps an ISO date into [lower, upper]. An empty value yields lower.
func Clamp(iso, lower, upper string) string {
	return ClampOr(iso, lower, lower, upper)
}

// ClampOr is Clamp with an explicit fallback for empty input, so callers can
// default an end bound high and a start bound low.
func ClampOr(iso, fallback, lower, upper string) string {
	switch {
	case iso == "":
		return fallback
	case iso < lower:
		return lower
	case iso > upper:
		return upper
	default:
		return iso
	}
}

// EnumerateDays lists every day from start to end, both inclusive.
// The result is empty when start is after end.
func EnumerateDays(start, end time.Time) []string {
	start = midnight(start)
	end = midnight(end)
	if start.After(end) {
		return []string{}
	}

	days := make([]string, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDate(d))
	}
	return days
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
