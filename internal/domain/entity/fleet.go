package entity

import "github.com/fleet-dashboard/backend/internal/domain/valueobject"

// OccupationRecord is the fleet utilization of a branch.
type OccupationRecord struct {
	BranchOffice string            `json:"branchOffice"`
	Occupation   valueobject.Ratio `json:"occupation"`
}

// FleetUnit is a vehicle in the inventory.
type FleetUnit struct {
	BranchOffice string `json:"branchOffice"`
	Provider     string `json:"provider"`
	LicensePlate string `json:"licensePlate,omitempty"`
}

// ServiceEvent is a maintenance or repair event for a vehicle.
type ServiceEvent struct {
	LicensePlate string `json:"licensePlate,omitempty"`
	Car          string `json:"car,omitempty"` // Fallback identity when the plate is missing
	Status       string `json:"status"`
	Type         string `json:"type"`
}
