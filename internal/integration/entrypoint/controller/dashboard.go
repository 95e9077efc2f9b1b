// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleet-dashboard/backend/internal/application/usecase/dashboard"
	domainerror "github.com/fleet-dashboard/backend/internal/domain/error"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
	"github.com/fleet-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/fleet-dashboard/backend/internal/integration/export"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// DashboardObserver receives request timings and export counts.
type DashboardObserver interface {
	ObserveDashboardCompute(result string, duration time.Duration)
	IncExport(format, result string)
}

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDashboardUseCase *dashboard.GetDashboardUseCase
	getOptionsUseCase   *dashboard.GetOptionsUseCase
	getStatusUseCase    *dashboard.GetStatusUseCase
	observer            DashboardObserver
}

// NewDashboardController creates a new dashboard controller instance.
// observer may be nil.
func NewDashboardController(
	getDashboardUseCase *dashboard.GetDashboardUseCase,
	getOptionsUseCase *dashboard.GetOptionsUseCase,
	getStatusUseCase *dashboard.GetStatusUseCase,
	observer DashboardObserver,
) *DashboardController {
	return &DashboardController{
		getDashboardUseCase: getDashboardUseCase,
		getOptionsUseCase:   getOptionsUseCase,
		getStatusUseCase:    getStatusUseCase,
		observer:            observer,
	}
}

// GetDashboard handles GET /dashboard requests.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	output, ok := c.compute(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetOptions handles GET /dashboard/options requests.
func (c *DashboardController) GetOptions(ctx *gin.Context) {
	output, err := c.getOptionsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOptionsResponse(output))
}

// GetStatus handles GET /dashboard/status requests.
func (c *DashboardController) GetStatus(ctx *gin.Context) {
	output, err := c.getStatusUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatusResponse(output))
}

// ExportXLSX handles GET /dashboard/export.xlsx requests.
func (c *DashboardController) ExportXLSX(ctx *gin.Context) {
	c.export(ctx, export.FormatXLSX, export.ContentTypeXLSX, export.BuildDashboardXLSX)
}

// ExportPDF handles GET /dashboard/export.pdf requests.
func (c *DashboardController) ExportPDF(ctx *gin.Context) {
	c.export(ctx, export.FormatPDF, export.ContentTypePDF, export.BuildDashboardPDF)
}

func (c *DashboardController) export(
	ctx *gin.Context,
	format string,
	contentType string,
	build func(*dashboard.GetDashboardOutput) ([]byte, error),
) {
	output, ok := c.compute(ctx)
	if !ok {
		return
	}

	body, err := build(output)
	if err != nil {
		slog.Error("Failed to render dashboard export", "format", format, "error", err)
		c.incExport(format, resultError)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to render export",
			Code:  string(domainerror.ErrCodeDashboardInternalError),
		})
		return
	}

	c.incExport(format, resultSuccess)
	ctx.Header("Content-Disposition", "attachment; filename=dashboard."+format)
	ctx.Data(http.StatusOK, contentType, body)
}

// compute parses the selection and runs the dashboard use case. It writes
// the error response itself and reports false on failure.
func (c *DashboardController) compute(ctx *gin.Context) (*dashboard.GetDashboardOutput, bool) {
	started := time.Now()

	selection, err := parseSelection(ctx)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return nil, false
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		Selection: selection,
	})
	if err != nil {
		c.observeCompute(resultError, time.Since(started))
		c.handleDashboardError(ctx, err)
		return nil, false
	}

	c.observeCompute(resultSuccess, time.Since(started))
	return output, true
}

// parseSelection reads the repeatable dates, branch and agent query parameters.
func parseSelection(ctx *gin.Context) (dashboard.Selection, error) {
	var sel dashboard.Selection
	for _, raw := range ctx.QueryArray("dates") {
		// An empty value keeps its slot and falls back to the window edge.
		if strings.TrimSpace(raw) == "" {
			sel.Dates = append(sel.Dates, time.Time{})
			continue
		}
		day, err := valueobject.ParseDate(raw)
		if err != nil {
			return dashboard.Selection{}, err
		}
		sel.Dates = append(sel.Dates, day)
	}
	sel.Branches = ctx.QueryArray("branch")
	sel.Agents = ctx.QueryArray("agent")
	return sel, nil
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := c.getStatusCodeForDashboardError(dashErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	slog.Error("Unexpected dashboard error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
		Code:  string(domainerror.ErrCodeDashboardInternalError),
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidDateWindow:
		return http.StatusBadRequest
	case domainerror.ErrCodeDatasetNotLoaded:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (c *DashboardController) observeCompute(result string, elapsed time.Duration) {
	if c.observer != nil {
		c.observer.ObserveDashboardCompute(result, elapsed)
	}
}

func (c *DashboardController) incExport(format, result string) {
	if c.observer != nil {
		c.observer.IncExport(format, result)
	}
}
