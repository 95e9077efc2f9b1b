// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

// Status messages shown to the user.
const (
	StatusMessageLoading = "Loading data"
	StatusMessageFailed  = "Data load failed"
)

// GetStatusOutput represents the dataset status.
type GetStatusOutput struct {
	Loaded       bool
	Message      string
	SnapshotID   *uuid.UUID
	LoadedAt     *time.Time
	BookingCount int
}

// GetStatusUseCase reports whether the record sets are available.
type GetStatusUseCase struct {
	datasets DatasetReader
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(datasets DatasetReader) *GetStatusUseCase {
	return &GetStatusUseCase{
		datasets: datasets,
	}
}

// Execute returns a single user-visible status for the whole dataset.
func (uc *GetStatusUseCase) Execute(ctx context.Context) (*GetStatusOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := uc.datasets.Snapshot()
	if err != nil {
		msg := StatusMessageLoading
		if uc.datasets.LoadError() != nil {
			msg = StatusMessageFailed
		}
		return &GetStatusOutput{Loaded: false, Message: msg}, nil
	}

	id := data.SnapshotID
	loadedAt := data.LoadedAt
	return &GetStatusOutput{
		Loaded:       true,
		Message:      fmt.Sprintf("Data OK • %d bookings", len(data.Bookings)),
		SnapshotID:   &id,
		LoadedAt:     &loadedAt,
		BookingCount: len(data.Bookings),
	}, nil
}

// GetOptionsUseCase lists the selectable branches and agents.
type GetOptionsUseCase struct {
	datasets DatasetReader
	settings Settings
}

// NewGetOptionsUseCase creates a new GetOptionsUseCase instance.
func NewGetOptionsUseCase(datasets DatasetReader, settings Settings) *GetOptionsUseCase {
	return &GetOptionsUseCase{
		datasets: datasets,
		settings: settings,
	}
}

// Execute returns the collated branch and agent lists plus the date window.
func (uc *GetOptionsUseCase) Execute(ctx context.Context) (*GetOptionsOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := uc.datasets.Snapshot()
	if err != nil {
		return nil, notLoadedError(err)
	}

	return &GetOptionsOutput{
		Options: FilterOptions(data.Bookings, NewLabelOrder(uc.settings.Language)),
		Range:   uc.settings.Calendar.Range,
		Month:   uc.settings.Calendar.Month,
	}, nil
}

// GetOptionsOutput represents the filter options.
type GetOptionsOutput struct {
	Options
	Range valueobject.DateWindow
	Month valueobject.DateWindow
}
