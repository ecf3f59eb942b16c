package domain

import (
	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
)

// Record is a quantity of waste. TreatmentMethod is recorded but does not change the factor.
type Record struct {
	activity.Meta
	WasteType       string  `json:"wasteType"`
	Quantity        float64 `json:"quantity"`
	TreatmentMethod string  `json:"treatmentMethod,omitempty"`
}

// EmissionInput returns the calculator input for r.
func (r *Record) EmissionInput() emission.Input {
	return emission.WasteInput{WasteType: r.WasteType, Quantity: r.Quantity}
}

// Validate checks the non-emission fields.
func (r *Record) Validate() error {
	return r.ValidateOwner()
}
