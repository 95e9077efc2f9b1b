// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fleet-dashboard/backend/internal/domain/entity"
)

// RecordSource defines the interface for reading the five record collections.
// Implementations return every record of a collection in source order and
// never filter, deduplicate or coerce values.
type RecordSource interface {
	// Bookings returns all bookings.
	Bookings(ctx context.Context) ([]entity.Booking, error)

	// Occupation returns the per-branch utilization records.
	Occupation(ctx context.Context) ([]entity.OccupationRecord, error)

	// Fleet returns the vehicle inventory.
	Fleet(ctx context.Context) ([]entity.FleetUnit, error)

	// ServiceEvents returns the maintenance events.
	ServiceEvents(ctx context.Context) ([]entity.ServiceEvent, error)

	// Incidents returns damage and penalty events.
	Incidents(ctx context.Context) ([]entity.Incident, error)
}
