package entity

import (
	"time"

	"github.com/google/uuid"
)

// Collection names, used in logs and load errors.
const (
	CollectionBookings   = "bookings"
	CollectionOccupation = "occupation"
	CollectionFleet      = "fleet"
	CollectionService    = "service"
	CollectionIncidents  = "incidents"
)

// Dataset is an immutable snapshot of the five record collections.
// It is never modified after NewDataset returns.
type Dataset struct {
	SnapshotID    uuid.UUID
	LoadedAt      time.Time
	Bookings      []Booking
	Occupation    []OccupationRecord
	Fleet         []FleetUnit
	ServiceEvents []ServiceEvent
	Incidents     []Incident
}

// NewDataset creates a new snapshot from fully loaded collections.
func NewDataset(
	bookings []Booking,
	occupation []OccupationRecord,
	fleet []FleetUnit,
	serviceEvents []ServiceEvent,
	incidents []Incident,
) *Dataset {
	return &Dataset{
		SnapshotID:    uuid.New(),
		LoadedAt:      time.Now().UTC(),
		Bookings:      bookings,
		Occupation:    occupation,
		Fleet:         fleet,
		ServiceEvents: serviceEvents,
		Incidents:     incidents,
	}
}
