package dashboard

import (
	"time"

	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

// Selection is the raw user input, independent of how it was captured.
// Dates holds 0, 1 or more picked days; only the first two are used. A zero
// time is an unset slot.
type Selection struct {
	Dates    []time.Time
	Branches []string
	Agents   []string
}

// ResolveFilterState normalizes a selection into a canonical FilterState.
// Picked dates are clamped into window; missing bounds default to the
// window edges (start low, end high).
func ResolveFilterState(sel Selection, window valueobject.DateWindow) valueobject.FilterState {
	start, end := window.Start, window.End
	if len(sel.Dates) >= 1 && !sel.Dates[0].IsZero() {
		start = valueobject.ClampOr(valueobject.FormatDate(sel.Dates[0]), window.Start, window.Start, window.End)
	}
	if len(sel.Dates) >= 2 && !sel.Dates[1].IsZero() {
		end = valueobject.ClampOr(valueobject.FormatDate(sel.Dates[1]), window.End, window.Start, window.End)
	}

	return valueobject.FilterState{
		Start:    start,
		End:      end,
		Branches: valueobject.NewStringSet(sel.Branches),
		Agents:   valueobject.NewStringSet(sel.Agents),
	}
}

// FilterPolicy selects the date predicate used by FilterBookings.
type FilterPolicy int

const (
	// PolicyRange bounds pickup dates by the FilterState's Start and End.
	PolicyRange FilterPolicy = iota
	// PolicyFixedMonth bounds pickup dates by the calendar's month window
	// and ignores Start and End.
	PolicyFixedMonth
)

// String returns the policy name used in logs.
func (p FilterPolicy) String() string {
	switch p {
	case PolicyRange:
		return "range"
	case PolicyFixedMonth:
		return "fixed_month"
	default:
		return "unknown"
	}
}

// FilterBookings returns the bookings that satisfy the date predicate of the
// policy and the shared branch/agent predicate. The result never aliases the
// input slice.
func FilterBookings(
	bookings []entity.Booking,
	state valueobject.FilterState,
	policy FilterPolicy,
	calendar valueobject.ReportingCalendar,
) []entity.Booking {
	start, end := state.Start, state.End
	if policy == PolicyFixedMonth {
		start, end = calendar.Month.Start, calendar.Month.End
	}

	out := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.PickupDate < start || b.PickupDate > end {
			continue
		}
		if !matchesSelection(b, state) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// matchesSelection is the branch/agent predicate shared by every policy.
func matchesSelection(b entity.Booking, state valueobject.FilterState) bool {
	return state.Branches.Allows(b.BranchOffice) && state.Agents.Allows(b.Agent)
}

// IncidentsFor returns the incidents attributed to one of the given bookings.
// Identities must match exactly, kind included. Bookings without an id are
// never join targets and unattributed incidents never match.
func IncidentsFor(bookings []entity.Booking, incidents []entity.Incident) []entity.Incident {
	ids := make(map[valueobject.RecordID]struct{}, len(bookings))
	for _, b := range bookings {
		if b.ID.Present() {
			ids[b.ID] = struct{}{}
		}
	}

	out := make([]entity.Incident, 0)
	for _, inc := range incidents {
		if !inc.BookingID.Present() {
			continue
		}
		if _, ok := ids[inc.BookingID]; ok {
			out = append(out, inc)
		}
	}
	return out
}
