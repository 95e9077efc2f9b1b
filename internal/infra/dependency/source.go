package dependency

import (
	"context"
	"time"

	"github.com/fleet-dashboard/backend/config"
	"github.com/fleet-dashboard/backend/internal/application/adapter"
	domainerror "github.com/fleet-dashboard/backend/internal/domain/error"
	"github.com/fleet-dashboard/backend/internal/infra/cache"
	"github.com/fleet-dashboard/backend/internal/infra/db"
	"github.com/fleet-dashboard/backend/internal/integration/persistence"
	"github.com/fleet-dashboard/backend/internal/integration/persistence/model"
)

// RecordSource is a configured source plus its connection lifecycle.
type RecordSource struct {
	Source      adapter.RecordSource
	HealthCheck func() bool // nil when there is no connection to check
	Close       func() error
}

// NewRecordSource opens the source selected by DATA_SOURCE.
func NewRecordSource(cfg *config.Config) (*RecordSource, error) {
	switch cfg.Data.Source {
	case config.DataSourceFile:
		return &RecordSource{
			Source: persistence.NewFileRecordSource(cfg.Data.Dir),
			Close:  func() error { return nil },
		}, nil

	case config.DataSourcePostgres, config.DataSourceSQLite:
		var (
			database *db.Database
			err      error
		)
		if cfg.Data.Source == config.DataSourcePostgres {
			database, err = db.NewPostgresConnection(&cfg.Database)
		} else {
			database, err = db.NewSQLiteConnection(&cfg.Database)
		}
		if err != nil {
			return nil, domainerror.NewDatasetError(
				domainerror.ErrCodeSourceFetchFailed, "", "failed to open database", err,
			)
		}
		// A new SQLite file starts without tables; create them so the load
		// reads empty collections instead of failing.
		if cfg.Data.Source == config.DataSourceSQLite {
			if err := database.AutoMigrate(model.All()...); err != nil {
				_ = database.Close()
				return nil, domainerror.NewDatasetError(
					domainerror.ErrCodeSourceFetchFailed, "", "failed to prepare database", err,
				)
			}
		}
		return &RecordSource{
			Source:      persistence.NewGormRecordSource(database.DB()),
			HealthCheck: database.HealthCheck,
			Close:       database.Close,
		}, nil

	case config.DataSourceRedis:
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, domainerror.NewDatasetError(
				domainerror.ErrCodeSourceFetchFailed, "", "failed to open redis", err,
			)
		}
		return &RecordSource{
			Source: persistence.NewRedisRecordSource(client, cfg.Redis.KeyPrefix),
			HealthCheck: func() bool {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return client.Ping(ctx).Err() == nil
			},
			Close: client.Close,
		}, nil

	default:
		return nil, domainerror.NewDatasetError(
			domainerror.ErrCodeUnknownDataSource,
			"",
			"unsupported data source "+cfg.Data.Source,
			domainerror.ErrUnknownDataSource,
		)
	}
}
