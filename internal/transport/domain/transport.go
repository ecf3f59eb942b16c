package domain

import (
	"fmt"

	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
)

// Record is one transport leg. LoadFactor and the locations are stored but do not affect the emission.
type Record struct {
	activity.Meta
	Distance          float64 `json:"distance"`
	VehicleType       string  `json:"vehicleType"`
	FuelType          string  `json:"fuelType"`
	Consumption       float64 `json:"consumption"`
	LoadFactor        float64 `json:"loadFactor"`
	DepartureLocation string  `json:"departureLocation"`
	ArrivalLocation   string  `json:"arrivalLocation"`
}

// EmissionInput returns the calculator input for r.
func (r *Record) EmissionInput() emission.Input {
	return emission.TransportInput{Distance: r.Distance, Consumption: r.Consumption, FuelType: r.FuelType}
}

// Validate checks the non-emission fields.
func (r *Record) Validate() error {
	if err := r.ValidateOwner(); err != nil {
		return err
	}
	if r.LoadFactor < 0 {
		return fmt.Errorf("%w: load factor must not be negative", emission.ErrInvalidArgument)
	}
	return nil
}
