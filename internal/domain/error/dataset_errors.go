// Package error defines domain-specific errors for the fleet reporting backend.
package error

import "errors"

// Dataset domain errors.
var (
	// ErrSourceFetchFailed is returned when one of the record collections cannot be loaded.
	ErrSourceFetchFailed = errors.New("record source fetch failed")

	// ErrUnknownDataSource is returned when the configured data source is not supported.
	ErrUnknownDataSource = errors.New("unknown data source")
)

// DatasetErrorCode defines error codes for dataset loading errors.
// Format: DST-XXYYYY where XX is category and YYYY is specific error.
type DatasetErrorCode string

const (
	ErrCodeSourceFetchFailed DatasetErrorCode = "DST-010001"
	ErrCodeUnknownDataSource DatasetErrorCode = "DST-010002"
)

// DatasetError represents an initialization failure of the record sets.
type DatasetError struct {
	Code       DatasetErrorCode
	Collection string
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *DatasetError) Error() string {
	msg := e.Message
	if e.Collection != "" {
		msg = e.Collection + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *DatasetError) Unwrap() error {
	return e.Err
}

// NewDatasetError creates a new DatasetError for the given collection.
func NewDatasetError(code DatasetErrorCode, collection, message string, err error) *DatasetError {
	return &DatasetError{
		Code:       code,
		Collection: collection,
		Message:    message,
		Err:        err,
	}
}
