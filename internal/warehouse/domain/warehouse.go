package domain

import (
	"fmt"

	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
)

// Record is the energy use of one warehouse over a period.
type Record struct {
	activity.Meta
	Area                   float64 `json:"area"`
	EnergyType             string  `json:"energyType"`
	ElectricityConsumption float64 `json:"energyConsumption"`
	HeatingConsumption     float64 `json:"heatingConsumption"`
}

// EmissionInput returns the calculator input for r.
func (r *Record) EmissionInput() emission.Input {
	return emission.BuildingInput{
		Kind:                   emission.CategoryWarehouse,
		EnergyType:             r.EnergyType,
		ElectricityConsumption: r.ElectricityConsumption,
		HeatingConsumption:     r.HeatingConsumption,
	}
}

// Validate checks the non-emission fields.
func (r *Record) Validate() error {
	if err := r.ValidateOwner(); err != nil {
		return err
	}
	if r.Area < 0 {
		return fmt.Errorf("%w: area must not be negative", emission.ErrInvalidArgument)
	}
	return nil
}
