// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/fleet-dashboard/backend/config"
	"github.com/fleet-dashboard/backend/internal/application/adapter"
	"github.com/fleet-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/fleet-dashboard/backend/internal/application/usecase/dataset"
	"github.com/fleet-dashboard/backend/internal/infra/metrics"
	"github.com/fleet-dashboard/backend/internal/infra/server/router"
	"github.com/fleet-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/fleet-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Store  *dataset.Store
	Loader *dataset.LoadDatasetUseCase
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// sourceHealth may be nil for sources without a connection to check.
func NewInjector(cfg *config.Config, source adapter.RecordSource, sourceHealth func() bool) (*Injector, error) {
	calendar, err := cfg.Dashboard.Calendar()
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard configuration: %w", err)
	}

	settings := dashboard.Settings{
		Calendar:  calendar,
		Highlight: cfg.Dashboard.Highlight,
		Language:  cfg.Dashboard.Language,
	}
	recorder := metrics.Recorder{}

	// Create dataset store and loader
	store := dataset.NewStore()
	loader := dataset.NewLoadDatasetUseCase(source, store, recorder, cfg.Data.LoadTimeout)

	// Create dashboard use cases
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(store, settings)
	getOptionsUseCase := dashboard.NewGetOptionsUseCase(store, settings)
	getStatusUseCase := dashboard.NewGetStatusUseCase(store)

	// Create controllers
	healthController := controller.NewHealthController(sourceHealth, func() bool {
		_, err := store.Snapshot()
		return err == nil
	})

	dashboardController := controller.NewDashboardController(
		getDashboardUseCase,
		getOptionsUseCase,
		getStatusUseCase,
		recorder,
	)

	// Create middleware
	exportRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Export.RateLimit, cfg.Export.RateWindow)

	// Create router
	r := router.NewRouter(healthController, dashboardController, exportRateLimiter)

	return &Injector{
		Config: cfg,
		Store:  store,
		Loader: loader,
		Router: r,
	}, nil
}
