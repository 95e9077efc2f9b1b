// Package persistence implements the record sources the dataset loader reads.
package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fleet-dashboard/backend/internal/application/adapter"
	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/integration/persistence/model"
)

// gormRecordSource implements the adapter.RecordSource interface over SQL tables.
type gormRecordSource struct {
	db *gorm.DB
}

// NewGormRecordSource creates a record source backed by a GORM connection.
func NewGormRecordSource(db *gorm.DB) adapter.RecordSource {
	return &gormRecordSource{
		db: db,
	}
}

// Bookings returns all bookings in insertion order.
func (s *gormRecordSource) Bookings(ctx context.Context) ([]entity.Booking, error) {
	var rows []model.BookingModel
	if err := s.db.WithContext(ctx).Order("row_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}

	bookings := make([]entity.Booking, 0, len(rows))
	for i := range rows {
		bookings = append(bookings, rows[i].ToEntity())
	}
	return bookings, nil
}

// Occupation returns all occupation records.
func (s *gormRecordSource) Occupation(ctx context.Context) ([]entity.OccupationRecord, error) {
	var rows []model.OccupationModel
	if err := s.db.WithContext(ctx).Order("row_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query occupation: %w", err)
	}

	records := make([]entity.OccupationRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToEntity())
	}
	return records, nil
}

// Fleet returns the vehicle inventory.
func (s *gormRecordSource) Fleet(ctx context.Context) ([]entity.FleetUnit, error) {
	var rows []model.FleetUnitModel
	if err := s.db.WithContext(ctx).Order("row_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query fleet: %w", err)
	}

	fleet := make([]entity.FleetUnit, 0, len(rows))
	for i := range rows {
		fleet = append(fleet, rows[i].ToEntity())
	}
	return fleet, nil
}

// ServiceEvents returns all maintenance events.
func (s *gormRecordSource) ServiceEvents(ctx context.Context) ([]entity.ServiceEvent, error) {
	var rows []model.ServiceEventModel
	if err := s.db.WithContext(ctx).Order("row_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query service events: %w", err)
	}

	events := make([]entity.ServiceEvent, 0, len(rows))
	for i := range rows {
		events = append(events, rows[i].ToEntity())
	}
	return events, nil
}

// Incidents returns all incidents.
func (s *gormRecordSource) Incidents(ctx context.Context) ([]entity.Incident, error) {
	var rows []model.IncidentModel
	if err := s.db.WithContext(ctx).Order("row_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query incidents: %w", err)
	}

	incidents := make([]entity.Incident, 0, len(rows))
	for i := range rows {
		incidents = append(incidents, rows[i].ToEntity())
	}
	return incidents, nil
}
