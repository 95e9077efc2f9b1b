package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/fleet-dashboard/backend/internal/application/adapter"
	"github.com/fleet-dashboard/backend/internal/domain/entity"
)

// File names read from the data directory.
const (
	BookingsFile   = "bookings.json"
	OccupationFile = "occupation.json"
	FleetFile      = "fleet.json"
	ServiceFile    = "service.json"
	IncidentsFile  = "incidents.json"
)

// fileRecordSource implements the adapter.RecordSource interface over JSON files.
type fileRecordSource struct {
	dir string
}

// NewFileRecordSource creates a record source reading JSON arrays from dir.
func NewFileRecordSource(dir string) adapter.RecordSource {
	return &fileRecordSource{
		dir: dir,
	}
}

// Bookings reads bookings.json.
func (s *fileRecordSource) Bookings(ctx context.Context) ([]entity.Booking, error) {
	return readJSONFile[entity.Booking](ctx, filepath.Join(s.dir, BookingsFile))
}

// Occupation reads occupation.json.
func (s *fileRecordSource) Occupation(ctx context.Context) ([]entity.OccupationRecord, error) {
	return readJSONFile[entity.OccupationRecord](ctx, filepath.Join(s.dir, OccupationFile))
}

// Fleet reads fleet.json.
func (s *fileRecordSource) Fleet(ctx context.Context) ([]entity.FleetUnit, error) {
	return readJSONFile[entity.FleetUnit](ctx, filepath.Join(s.dir, FleetFile))
}

// ServiceEvents reads service.json.
func (s *fileRecordSource) ServiceEvents(ctx context.Context) ([]entity.ServiceEvent, error) {
	return readJSONFile[entity.ServiceEvent](ctx, filepath.Join(s.dir, ServiceFile))
}

// Incidents reads incidents.json.
func (s *fileRecordSource) Incidents(ctx context.Context) ([]entity.Incident, error) {
	return readJSONFile[entity.Incident](ctx, filepath.Join(s.dir, IncidentsFile))
}

func readJSONFile[T any](ctx context.Context, path string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	return decodeRecords[T](raw, filepath.Base(path))
}

// decodeRecords decodes a JSON array. A JSON null is an empty collection.
func decodeRecords[T any](raw []byte, name string) ([]T, error) {
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}
