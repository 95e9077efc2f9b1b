package model

import (
	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

// OccupationModel represents the occupation table in the database.
type OccupationModel struct {
	RowID        uint     `gorm:"column:row_id;primaryKey;autoIncrement"`
	BranchOffice string   `gorm:"type:varchar(100)"`
	Occupation   *float64 // NULL when the branch has no measurement
}

// TableName returns the table name for the OccupationModel.
func (OccupationModel) TableName() string {
	return "occupation"
}

// ToEntity converts an OccupationModel to a domain OccupationRecord.
func (m *OccupationModel) ToEntity() entity.OccupationRecord {
	return entity.OccupationRecord{
		BranchOffice: m.BranchOffice,
		Occupation:   valueobject.RatioFromNullFloat(m.Occupation),
	}
}

// OccupationFromEntity creates an OccupationModel from a domain OccupationRecord.
func OccupationFromEntity(r entity.OccupationRecord) *OccupationModel {
	var ratio *float64
	if r.Occupation.Valid() {
		f := r.Occupation.Float()
		ratio = &f
	}
	return &OccupationModel{
		BranchOffice: r.BranchOffice,
		Occupation:   ratio,
	}
}

// FleetUnitModel represents the fleet table in the database.
type FleetUnitModel struct {
	RowID        uint   `gorm:"column:row_id;primaryKey;autoIncrement"`
	BranchOffice string `gorm:"type:varchar(100);index"`
	Provider     string `gorm:"type:varchar(100)"`
	LicensePlate string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for the FleetUnitModel.
func (FleetUnitModel) TableName() string {
	return "fleet"
}

// ToEntity converts a FleetUnitModel to a domain FleetUnit.
func (m *FleetUnitModel) ToEntity() entity.FleetUnit {
	return entity.FleetUnit{
		BranchOffice: m.BranchOffice,
		Provider:     m.Provider,
		LicensePlate: m.LicensePlate,
	}
}

// FleetUnitFromEntity creates a FleetUnitModel from a domain FleetUnit.
func FleetUnitFromEntity(f entity.FleetUnit) *FleetUnitModel {
	return &FleetUnitModel{
		BranchOffice: f.BranchOffice,
		Provider:     f.Provider,
		LicensePlate: f.LicensePlate,
	}
}

// ServiceEventModel represents the service_events table in the database.
type ServiceEventModel struct {
	RowID        uint   `gorm:"column:row_id;primaryKey;autoIncrement"`
	LicensePlate string `gorm:"type:varchar(20)"`
	Car          string `gorm:"type:varchar(100)"`
	Status       string `gorm:"type:varchar(50)"`
	Type         string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for the ServiceEventModel.
func (ServiceEventModel) TableName() string {
	return "service_events"
}

// ToEntity converts a ServiceEventModel to a domain ServiceEvent.
func (m *ServiceEventModel) ToEntity() entity.ServiceEvent {
	return entity.ServiceEvent{
		LicensePlate: m.LicensePlate,
		Car:          m.Car,
		Status:       m.Status,
		Type:         m.Type,
	}
}

// ServiceEventFromEntity creates a ServiceEventModel from a domain ServiceEvent.
func ServiceEventFromEntity(s entity.ServiceEvent) *ServiceEventModel {
	return &ServiceEventModel{
		LicensePlate: s.LicensePlate,
		Car:          s.Car,
		Status:       s.Status,
		Type:         s.Type,
	}
}

// All returns every record model, for migrations.
func All() []interface{} {
	return []interface{}{
		&BookingModel{},
		&OccupationModel{},
		&FleetUnitModel{},
		&ServiceEventModel{},
		&IncidentModel{},
	}
}
