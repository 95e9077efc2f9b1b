// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

// DatasetReader provides the loaded record snapshot.
type DatasetReader interface {
	// Snapshot returns the current dataset, or an error wrapping
	// domainerror.ErrDatasetNotLoaded when initialization has not succeeded.
	Snapshot() (*entity.Dataset, error)

	// LoadError returns the initialization failure, if any.
	LoadError() error
}

// Settings are the engine parameters that come from configuration.
type Settings struct {
	Calendar  valueobject.ReportingCalendar
	Highlight string // Channel substring flagged in the channel breakdown
	Language  string // BCP 47 tag used to collate labels
}

// DefaultSettings returns the built-in windows, highlight and collation.
func DefaultSettings() Settings {
	return Settings{
		Calendar:  valueobject.DefaultReportingCalendar(),
		Highlight: DefaultHighlight,
		Language:  "it",
	}
}
