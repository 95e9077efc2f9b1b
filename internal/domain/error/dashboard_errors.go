// Package error defines domain-specific errors for the fleet reporting backend.
package error

import (
	"errors"
	"fmt"
)

// Dashboard domain errors.
var (
	// ErrInvalidDateFormat is returned when a date is not in YYYY-MM-DD shape.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidDateWindow is returned when a configured window is reversed.
	ErrInvalidDateWindow = errors.New("window end must not be before window start")

	// ErrDatasetNotLoaded is returned when the dashboard is queried before
	// the record sets finished loading (or after loading failed).
	ErrDatasetNotLoaded = errors.New("dataset is not loaded")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateFormat DashboardErrorCode = "DSH-010006"
	ErrCodeInvalidDateWindow DashboardErrorCode = "DSH-010007"

	// Availability errors (02XXXX)
	ErrCodeDatasetNotLoaded DashboardErrorCode = "DSH-020001"

	// Throttling errors (03XXXX)
	ErrCodeExportRateLimited DashboardErrorCode = "DSH-030001"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewFormatError creates the error returned for malformed ISO dates.
func NewFormatError(value string) *DashboardError {
	return NewDashboardError(
		ErrCodeInvalidDateFormat,
		fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value),
		ErrInvalidDateFormat,
	)
}
