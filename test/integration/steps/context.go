// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/fleet-dashboard/backend/config"
	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/integration/persistence/model"
	"github.com/fleet-dashboard/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	status       int
	contentType  string
	responseBody []byte

	// Record sources
	db    *mock.Db
	redis *redis.Client
	dir   string

	// Records declared by the scenario, published to the chosen source on load
	bookings   []entity.Booking
	occupation []entity.OccupationRecord
	fleet      []entity.FleetUnit
	service    []entity.ServiceEvent
	incidents  []entity.Incident

	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cfg, err := config.Load()
		if err != nil {
			return ctx, fmt.Errorf("failed to load config: %w", err)
		}

		dir, err := os.MkdirTemp("", "fleet-dashboard-*")
		if err != nil {
			return ctx, fmt.Errorf("failed to create data dir: %w", err)
		}

		tc := &TestContext{
			cfg: cfg,
			dir: dir,
			db: mock.NewDb(map[string]any{
				"bookings":       &model.BookingModel{},
				"incidents":      &model.IncidentModel{},
				"occupation":     &model.OccupationModel{},
				"fleet":          &model.FleetUnitModel{},
				"service_events": &model.ServiceEventModel{},
			}),
			redis: mock.NewRedis(),
		}

		if err := tc.db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := mock.ClearRedis(tc.redis); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc == nil {
			return ctx, nil
		}
		if tc.server != nil {
			tc.server.Close()
		}
		_ = os.RemoveAll(tc.dir)
		return ctx, nil
	})

	registerRecordSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerRecordSteps registers dataset setup steps.
func registerRecordSteps(ctx *godog.ScenarioContext) {
	ctx.Given(`^the following bookings exist:$`, theFollowingBookingsExist)
	ctx.Given(`^the following fleet exists:$`, theFollowingFleetExists)
	ctx.Given(`^the following service events exist:$`, theFollowingServiceEventsExist)
	ctx.Given(`^the following incidents exist:$`, theFollowingIncidentsExist)
	ctx.Given(`^the following occupation exists:$`, theFollowingOccupationExists)
	ctx.Given(`^the dashboard is loaded from "([^"]*)"$`, theDashboardIsLoadedFrom)
	ctx.Given(`^the dashboard is started with an unreachable "([^"]*)" source$`, theDashboardIsStartedWithAnUnreachableSource)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Then(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Then(`^the response content type should be "([^"]*)"$`, theResponseContentTypeShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, theResponseFieldShouldHaveItems)
}
