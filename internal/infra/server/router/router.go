// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fleet-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/fleet-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	dashboardController *controller.DashboardController
	exportRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	exportRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		dashboardController: dashboardController,
		exportRateLimiter:   exportRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("", r.dashboardController.GetDashboard)
				dashboard.GET("/status", r.dashboardController.GetStatus)
				dashboard.GET("/options", r.dashboardController.GetOptions)
				exports := dashboard.Group("")
				if r.exportRateLimiter != nil {
					exports.Use(r.exportRateLimiter.Middleware())
				}
				exports.GET("/export.xlsx", r.dashboardController.ExportXLSX)
				exports.GET("/export.pdf", r.dashboardController.ExportPDF)
			}
		}
	}
}
