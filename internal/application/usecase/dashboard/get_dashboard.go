// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domainerror "github.com/fleet-dashboard/backend/internal/domain/error"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

// GetDashboardInput represents the input for computing the dashboard.
type GetDashboardInput struct {
	Selection Selection
}

// TrendSeries is the full-window daily series plus the fleet size shown next to it.
type TrendSeries struct {
	DailySeries
	Fleet []int
}

// GetDashboardOutput holds every value the presentation layer renders.
type GetDashboardOutput struct {
	SnapshotID      uuid.UUID
	Filter          valueobject.FilterState
	KPIs            KPIs
	Channels        CategoryBreakdown
	Providers       []CategoryCount
	Trend           TrendSeries
	MonthDaily      DailySeries
	Table           []SummaryRow
	FleetByProvider []CategoryCount
	ServiceByType   []CategoryCount
	Occupation      Occupation
	Fleet           Fleet
}

// GetDashboardUseCase recomputes the whole dashboard for a selection.
type GetDashboardUseCase struct {
	datasets DatasetReader
	settings Settings
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(datasets DatasetReader, settings Settings) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		datasets: datasets,
		settings: settings,
	}
}

// Execute derives the dashboard from the current snapshot.
// Every value is recomputed from the unmodified source collections.
func (uc *GetDashboardUseCase) Execute(
	ctx context.Context,
	input GetDashboardInput,
) (*GetDashboardOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dashboard request cancelled: %w", err)
	}

	data, err := uc.datasets.Snapshot()
	if err != nil {
		return nil, notLoadedError(err)
	}

	calendar := uc.settings.Calendar
	order := NewLabelOrder(uc.settings.Language)

	state := ResolveFilterState(input.Selection, calendar.Range)
	filtered := FilterBookings(data.Bookings, state, PolicyRange, calendar)
	monthly := FilterBookings(data.Bookings, state, PolicyFixedMonth, calendar)
	incidents := IncidentsFor(filtered, data.Incidents)

	trend := BuildDailySeries(filtered, calendar.Range)

	return &GetDashboardOutput{
		SnapshotID: data.SnapshotID,
		Filter:     state,
		KPIs:       ComputeKPIs(filtered, incidents),
		Channels:   ChannelBreakdown(filtered, uc.settings.Highlight),
		Providers:  ProviderShare(filtered),
		Trend: TrendSeries{
			DailySeries: trend,
			Fleet:       FleetSeries(data.Fleet, state.Branches, len(trend.Labels)),
		},
		MonthDaily:      BuildDailySeries(monthly, calendar.Month),
		Table:           SummarizeByBranchAgent(filtered),
		FleetByProvider: FleetByProvider(data.Fleet, order),
		ServiceByType:   ServiceByType(data.ServiceEvents),
		Occupation:      OccupationOverview(data.Occupation, order),
		Fleet:           FleetStatus(data.Fleet, data.ServiceEvents),
	}, nil
}

// notLoadedError converts a snapshot failure into a dashboard error.
func notLoadedError(err error) error {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		return dashErr
	}
	return domainerror.NewDashboardError(
		domainerror.ErrCodeDatasetNotLoaded,
		"dashboard data is not available",
		err,
	)
}
