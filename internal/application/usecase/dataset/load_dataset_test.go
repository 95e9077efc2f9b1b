package dataset

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerror "github.com/fleet-dashboard/backend/internal/domain/error"
	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

// fakeSource serves fixed collections; failOn names a collection that errors.
type fakeSource struct {
	failOn string
	block  bool
}

func (f *fakeSource) fail(ctx context.Context, collection string) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if f.failOn == collection {
		return errors.New("connection refused")
	}
	return nil
}

func (f *fakeSource) Bookings(ctx context.Context) ([]entity.Booking, error) {
	if err := f.fail(ctx, entity.CollectionBookings); err != nil {
		return nil, err
	}
	return []entity.Booking{{ID: valueobject.StringID("1")}, {ID: valueobject.StringID("2")}}, nil
}

func (f *fakeSource) Occupation(ctx context.Context) ([]entity.OccupationRecord, error) {
	if err := f.fail(ctx, entity.CollectionOccupation); err != nil {
		return nil, err
	}
	return []entity.OccupationRecord{{BranchOffice: "Roma"}}, nil
}

func (f *fakeSource) Fleet(ctx context.Context) ([]entity.FleetUnit, error) {
	if err := f.fail(ctx, entity.CollectionFleet); err != nil {
		return nil, err
	}
	return []entity.FleetUnit{{Provider: "Acme"}, {Provider: "Beta"}, {Provider: "Acme"}}, nil
}

func (f *fakeSource) ServiceEvents(ctx context.Context) ([]entity.ServiceEvent, error) {
	if err := f.fail(ctx, entity.CollectionService); err != nil {
		return nil, err
	}
	return []entity.ServiceEvent{}, nil
}

func (f *fakeSource) Incidents(ctx context.Context) ([]entity.Incident, error) {
	if err := f.fail(ctx, entity.CollectionIncidents); err != nil {
		return nil, err
	}
	return []entity.Incident{{}}, nil
}

type recordingObserver struct {
	results []string
	records map[string]int
}

func (o *recordingObserver) ObserveDatasetLoad(result string, _ time.Duration) {
	o.results = append(o.results, result)
}

func (o *recordingObserver) SetDatasetRecords(collection string, count int) {
	if o.records == nil {
		o.records = map[string]int{}
	}
	o.records[collection] = count
}

func TestLoadDatasetUseCase_Execute(t *testing.T) {
	t.Run("all collections load", func(t *testing.T) {
		store := NewStore()
		observer := &recordingObserver{}
		uc := NewLoadDatasetUseCase(&fakeSource{}, store, observer, time.Second)

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snapshot, err := store.Snapshot()
		if err != nil {
			t.Fatalf("expected snapshot, got %v", err)
		}
		if snapshot != out.Dataset {
			t.Error("expected stored snapshot to be the loaded dataset")
		}
		if len(snapshot.Bookings) != 2 || len(snapshot.Fleet) != 3 {
			t.Errorf("expected 2 bookings and 3 units, got %d and %d", len(snapshot.Bookings), len(snapshot.Fleet))
		}
		if len(observer.results) != 1 || observer.results[0] != resultSuccess {
			t.Errorf("expected one success, got %v", observer.results)
		}
		if observer.records[entity.CollectionFleet] != 3 {
			t.Errorf("expected fleet gauge 3, got %d", observer.records[entity.CollectionFleet])
		}
	})

	t.Run("one failing collection stores nothing", func(t *testing.T) {
		store := NewStore()
		observer := &recordingObserver{}
		uc := NewLoadDatasetUseCase(&fakeSource{failOn: entity.CollectionIncidents}, store, observer, time.Second)

		_, err := uc.Execute(context.Background())

		var dsErr *domainerror.DatasetError
		if !errors.As(err, &dsErr) {
			t.Fatalf("expected DatasetError, got %v", err)
		}
		if dsErr.Code != domainerror.ErrCodeSourceFetchFailed {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeSourceFetchFailed, dsErr.Code)
		}
		if dsErr.Collection != entity.CollectionIncidents {
			t.Errorf("expected collection %s, got %s", entity.CollectionIncidents, dsErr.Collection)
		}
		if !errors.Is(err, domainerror.ErrSourceFetchFailed) {
			t.Error("expected error to wrap ErrSourceFetchFailed")
		}

		if _, err := store.Snapshot(); !errors.Is(err, domainerror.ErrDatasetNotLoaded) {
			t.Errorf("expected ErrDatasetNotLoaded, got %v", err)
		}
		if store.LoadError() == nil {
			t.Error("expected load error to be recorded")
		}
		if len(observer.results) != 1 || observer.results[0] != resultError {
			t.Errorf("expected one error, got %v", observer.results)
		}
		if len(observer.records) != 0 {
			t.Errorf("expected no record gauges, got %v", observer.records)
		}
	})

	t.Run("timeout cancels the load", func(t *testing.T) {
		store := NewStore()
		uc := NewLoadDatasetUseCase(&fakeSource{block: true}, store, nil, 10*time.Millisecond)

		_, err := uc.Execute(context.Background())

		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected deadline exceeded, got %v", err)
		}
		if store.LoadError() == nil {
			t.Error("expected load error to be recorded")
		}
	})
}
