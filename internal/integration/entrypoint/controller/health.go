// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	sourceHealthChecker func() bool
	datasetLoaded       func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Source    string `json:"source"`
	Dataset   string `json:"dataset"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// Either checker may be nil.
func NewHealthController(sourceHealthChecker, datasetLoaded func() bool) *HealthController {
	return &HealthController{
		sourceHealthChecker: sourceHealthChecker,
		datasetLoaded:       datasetLoaded,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	sourceStatus := "disconnected"
	if h.sourceHealthChecker != nil && h.sourceHealthChecker() {
		sourceStatus = "connected"
	}

	datasetStatus := "not_loaded"
	if h.datasetLoaded != nil && h.datasetLoaded() {
		datasetStatus = "loaded"
	}

	response := HealthResponse{
		Status:    "ok",
		Source:    sourceStatus,
		Dataset:   datasetStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
