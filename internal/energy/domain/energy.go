package domain

import (
	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
)

// Record is a site energy reading. Unit is informational.
type Record struct {
	activity.Meta
	EnergyType             string  `json:"energyType"`
	ElectricityConsumption float64 `json:"electricityConsumption"`
	HeatingConsumption     float64 `json:"heatingConsumption"`
	Unit                   string  `json:"unit,omitempty"`
}

// EmissionInput returns the calculator input for r.
func (r *Record) EmissionInput() emission.Input {
	return emission.BuildingInput{
		Kind:                   emission.CategoryEnergy,
		EnergyType:             r.EnergyType,
		ElectricityConsumption: r.ElectricityConsumption,
		HeatingConsumption:     r.HeatingConsumption,
	}
}

// Validate checks the non-emission fields.
func (r *Record) Validate() error {
	return r.ValidateOwner()
}
