// Package dataset contains the use cases that load the record collections.
package dataset

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fleet-dashboard/backend/internal/application/adapter"
	domainerror "github.com/fleet-dashboard/backend/internal/domain/error"
	"github.com/fleet-dashboard/backend/internal/domain/entity"
)

// Load results reported to the observer.
const (
	resultSuccess = "success"
	resultError   = "error"
)

// LoadObserver receives load timings and collection sizes.
type LoadObserver interface {
	ObserveDatasetLoad(result string, duration time.Duration)
	SetDatasetRecords(collection string, count int)
}

// LoadDatasetOutput represents the output of a successful load.
type LoadDatasetOutput struct {
	Dataset  *entity.Dataset
	Duration time.Duration
}

// LoadDatasetUseCase fetches the five collections and publishes a snapshot.
type LoadDatasetUseCase struct {
	source   adapter.RecordSource
	store    *Store
	observer LoadObserver
	timeout  time.Duration
}

// NewLoadDatasetUseCase creates a new LoadDatasetUseCase instance.
// observer may be nil. A zero timeout means no deadline beyond ctx.
func NewLoadDatasetUseCase(
	source adapter.RecordSource,
	store *Store,
	observer LoadObserver,
	timeout time.Duration,
) *LoadDatasetUseCase {
	return &LoadDatasetUseCase{
		source:   source,
		store:    store,
		observer: observer,
		timeout:  timeout,
	}
}

// Execute fetches all collections concurrently. Either every collection
// loads and a new snapshot is stored, or nothing is stored and the failure is
// recorded in the store.
func (uc *LoadDatasetUseCase) Execute(ctx context.Context) (*LoadDatasetOutput, error) {
	started := time.Now()

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	var (
		bookings   []entity.Booking
		occupation []entity.OccupationRecord
		fleet      []entity.FleetUnit
		service    []entity.ServiceEvent
		incidents  []entity.Incident
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = uc.source.Bookings(gctx)
		return fetchError(entity.CollectionBookings, err)
	})
	g.Go(func() error {
		var err error
		occupation, err = uc.source.Occupation(gctx)
		return fetchError(entity.CollectionOccupation, err)
	})
	g.Go(func() error {
		var err error
		fleet, err = uc.source.Fleet(gctx)
		return fetchError(entity.CollectionFleet, err)
	})
	g.Go(func() error {
		var err error
		service, err = uc.source.ServiceEvents(gctx)
		return fetchError(entity.CollectionService, err)
	})
	g.Go(func() error {
		var err error
		incidents, err = uc.source.Incidents(gctx)
		return fetchError(entity.CollectionIncidents, err)
	})

	if err := g.Wait(); err != nil {
		elapsed := time.Since(started)
		uc.store.MarkFailed(err)
		uc.observeLoad(resultError, elapsed)

		var dsErr *domainerror.DatasetError
		if errors.As(err, &dsErr) {
			slog.Error("Dataset load failed",
				"collection", dsErr.Collection,
				"code", dsErr.Code,
				"error", dsErr.Err,
				"duration", elapsed,
			)
		} else {
			slog.Error("Dataset load failed", "error", err, "duration", elapsed)
		}
		return nil, err
	}

	data := entity.NewDataset(bookings, occupation, fleet, service, incidents)
	uc.store.Put(data)

	elapsed := time.Since(started)
	uc.observeLoad(resultSuccess, elapsed)
	uc.observeRecords(data)

	slog.Info("Dataset loaded",
		"snapshotID", data.SnapshotID.String(),
		"bookings", len(data.Bookings),
		"occupation", len(data.Occupation),
		"fleet", len(data.Fleet),
		"service", len(data.ServiceEvents),
		"incidents", len(data.Incidents),
		"duration", elapsed,
	)

	return &LoadDatasetOutput{
		Dataset:  data,
		Duration: elapsed,
	}, nil
}

func fetchError(collection string, err error) error {
	if err == nil {
		return nil
	}
	var dsErr *domainerror.DatasetError
	if errors.As(err, &dsErr) {
		return err
	}
	return domainerror.NewDatasetError(
		domainerror.ErrCodeSourceFetchFailed,
		collection,
		"failed to fetch records",
		errors.Join(domainerror.ErrSourceFetchFailed, err),
	)
}

func (uc *LoadDatasetUseCase) observeLoad(result string, elapsed time.Duration) {
	if uc.observer == nil {
		return
	}
	uc.observer.ObserveDatasetLoad(result, elapsed)
}

func (uc *LoadDatasetUseCase) observeRecords(data *entity.Dataset) {
	if uc.observer == nil {
		return
	}
	uc.observer.SetDatasetRecords(entity.CollectionBookings, len(data.Bookings))
	uc.observer.SetDatasetRecords(entity.CollectionOccupation, len(data.Occupation))
	uc.observer.SetDatasetRecords(entity.CollectionFleet, len(data.Fleet))
	uc.observer.SetDatasetRecords(entity.CollectionService, len(data.ServiceEvents))
	uc.observer.SetDatasetRecords(entity.CollectionIncidents, len(data.Incidents))
}
