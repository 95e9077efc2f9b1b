// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/fleet-dashboard/backend/internal/domain/valueobject"

// Booking represents a single rental booking.
// PickupDate drives every date-range and calendar-window filter.
type Booking struct {
	ID           valueobject.RecordID `json:"id"`
	PickupDate   string               `json:"pickupDate"`
	BranchOffice string               `json:"branchOffice"`
	Agent        string               `json:"agent"`
	Channel      string               `json:"channel"`
	Provider     string               `json:"provider"`
	Revenue      valueobject.Amount   `json:"revenue"`
	Ancillaries  valueobject.Amount   `json:"ancillaries"` // Add-on revenue, separate from base rental
	DurationDays valueobject.Days     `json:"durationDays"`
}

// Incident represents a damage or penalty event, optionally tied to a booking.
type Incident struct {
	BookingID  valueobject.RecordID `json:"bookingId"` // missing = unattributed
	TotalPrice valueobject.Amount   `json:"totalPrice"`
}
