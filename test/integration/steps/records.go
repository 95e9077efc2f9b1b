package steps

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cucumber/godog"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/fleet-dashboard/backend/config"
	"github.com/fleet-dashboard/backend/internal/application/adapter"
	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
	"github.com/fleet-dashboard/backend/internal/infra/dependency"
	"github.com/fleet-dashboard/backend/internal/integration/persistence"
	"github.com/fleet-dashboard/backend/internal/integration/persistence/model"
	"github.com/fleet-dashboard/backend/test/integration/mock"
)

const redisPrefix = "itest"

// tableRows turns a data table into one map per row, keyed by the header.
func tableRows(table *godog.Table) []map[string]string {
	if table == nil || len(table.Rows) == 0 {
		return nil
	}

	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i].Value] = cell.Value
		}
		rows = append(rows, values)
	}
	return rows
}

// amount parses a table cell; an empty or non-numeric cell is a missing value.
func amount(raw string) valueobject.Amount {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return valueobject.MissingAmount()
	}
	return valueobject.NewAmount(d)
}

func theFollowingBookingsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	for _, row := range tableRows(table) {
		var days valueobject.Days
		if n, err := strconv.ParseInt(row["days"], 10, 64); err == nil {
			days = valueobject.NewDays(n)
		}

		tc.bookings = append(tc.bookings, entity.Booking{
			ID:           valueobject.StringID(row["id"]),
			PickupDate:   row["pickup_date"],
			BranchOffice: row["branch"],
			Agent:        row["agent"],
			Channel:      row["channel"],
			Provider:     row["provider"],
			Revenue:      amount(row["revenue"]),
			Ancillaries:  amount(row["ancillaries"]),
			DurationDays: days,
		})
	}
	return nil
}

func theFollowingFleetExists(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	for _, row := range tableRows(table) {
		tc.fleet = append(tc.fleet, entity.FleetUnit{
			BranchOffice: row["branch"],
			Provider:     row["provider"],
			LicensePlate: row["plate"],
		})
	}
	return nil
}

func theFollowingServiceEventsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	for _, row := range tableRows(table) {
		tc.service = append(tc.service, entity.ServiceEvent{
			LicensePlate: row["plate"],
			Car:          row["car"],
			Status:       row["status"],
			Type:         row["type"],
		})
	}
	return nil
}

func theFollowingIncidentsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	for _, row := range tableRows(table) {
		var bookingID valueobject.RecordID
		if raw := row["booking_id"]; raw != "" {
			bookingID = valueobject.StringID(raw)
		}
		tc.incidents = append(tc.incidents, entity.Incident{
			BookingID:  bookingID,
			TotalPrice: amount(row["total_price"]),
		})
	}
	return nil
}

func theFollowingOccupationExists(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	for _, row := range tableRows(table) {
		ratio := valueobject.RatioFromNullFloat(nil)
		if f, err := strconv.ParseFloat(row["occupation"], 64); err == nil {
			ratio = valueobject.NewRatio(f)
		}
		tc.occupation = append(tc.occupation, entity.OccupationRecord{
			BranchOffice: row["branch"],
			Occupation:   ratio,
		})
	}
	return nil
}

// theDashboardIsLoadedFrom publishes the declared records to the named
// source, loads the dataset and starts the API. The load must succeed.
func theDashboardIsLoadedFrom(ctx context.Context, source string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	var (
		recordSource adapter.RecordSource
		err          error
	)
	switch source {
	case config.DataSourceSQLite:
		err = tc.publishToDB()
		recordSource = persistence.NewGormRecordSource(tc.db.DbConn)
	case config.DataSourceRedis:
		err = tc.publishToRedis()
		recordSource = persistence.NewRedisRecordSource(tc.redis, redisPrefix)
	case config.DataSourceFile:
		err = tc.publishToDir()
		recordSource = persistence.NewFileRecordSource(tc.dir)
	default:
		return ctx, fmt.Errorf("unsupported source %q", source)
	}
	if err != nil {
		return ctx, fmt.Errorf("failed to publish records: %w", err)
	}

	if err := tc.start(recordSource, true); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

// theDashboardIsStartedWithAnUnreachableSource starts the API over a source
// whose collections are absent, so the initial load fails.
func theDashboardIsStartedWithAnUnreachableSource(ctx context.Context, source string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	var recordSource adapter.RecordSource
	switch source {
	case config.DataSourceRedis:
		recordSource = persistence.NewRedisRecordSource(tc.redis, redisPrefix)
	case config.DataSourceFile:
		recordSource = persistence.NewFileRecordSource(tc.dir)
	default:
		return ctx, fmt.Errorf("unsupported source %q", source)
	}

	if err := tc.start(recordSource, false); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) start(source adapter.RecordSource, expectLoaded bool) error {
	injector, err := dependency.NewInjector(tc.cfg, source, func() bool { return true })
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}

	_, loadErr := injector.Loader.Execute(context.Background())
	if expectLoaded && loadErr != nil {
		return fmt.Errorf("failed to load dataset: %w", loadErr)
	}
	if !expectLoaded && loadErr == nil {
		return fmt.Errorf("expected the dataset load to fail")
	}

	tc.server = httptest.NewServer(injector.Router.Setup("test"))
	return nil
}

func (tc *TestContext) publishToDB() error {
	conn := tc.db.DbConn
	for _, b := range tc.bookings {
		if err := conn.Create(model.BookingFromEntity(b)).Error; err != nil {
			return err
		}
	}
	for _, i := range tc.incidents {
		if err := conn.Create(model.IncidentFromEntity(i)).Error; err != nil {
			return err
		}
	}
	for _, o := range tc.occupation {
		if err := conn.Create(model.OccupationFromEntity(o)).Error; err != nil {
			return err
		}
	}
	for _, f := range tc.fleet {
		if err := conn.Create(model.FleetUnitFromEntity(f)).Error; err != nil {
			return err
		}
	}
	for _, s := range tc.service {
		if err := conn.Create(model.ServiceEventFromEntity(s)).Error; err != nil {
			return err
		}
	}
	return nil
}

// collections pairs each collection name with its records as JSON.
func (tc *TestContext) collections() (map[string][]byte, error) {
	records := map[string]any{
		entity.CollectionBookings:   nonNil(tc.bookings),
		entity.CollectionOccupation: nonNil(tc.occupation),
		entity.CollectionFleet:      nonNil(tc.fleet),
		entity.CollectionService:    nonNil(tc.service),
		entity.CollectionIncidents:  nonNil(tc.incidents),
	}

	out := make(map[string][]byte, len(records))
	for name, items := range records {
		raw, err := json.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", name, err)
		}
		out[name] = raw
	}
	return out, nil
}

func (tc *TestContext) publishToRedis() error {
	docs, err := tc.collections()
	if err != nil {
		return err
	}
	for name, raw := range docs {
		if err := mock.SetJSON(tc.redis, persistence.RedisKey(redisPrefix, name), string(raw)); err != nil {
			return err
		}
	}
	return nil
}

var collectionFiles = map[string]string{
	entity.CollectionBookings:   persistence.BookingsFile,
	entity.CollectionOccupation: persistence.OccupationFile,
	entity.CollectionFleet:      persistence.FleetFile,
	entity.CollectionService:    persistence.ServiceFile,
	entity.CollectionIncidents:  persistence.IncidentsFile,
}

func (tc *TestContext) publishToDir() error {
	docs, err := tc.collections()
	if err != nil {
		return err
	}
	for name, raw := range docs {
		if err := os.WriteFile(filepath.Join(tc.dir, collectionFiles[name]), raw, 0o600); err != nil {
			return err
		}
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
