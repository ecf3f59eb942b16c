package domain

import (
	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
)

// Record is a print job. The factor is keyed by PaperType; Type and PrintType are informational.
type Record struct {
	activity.Meta
	Type      string `json:"type,omitempty"`
	PrintType string `json:"printType"`
	PaperType string `json:"paperType"`
	Quantity  int    `json:"quantity"`
}

// EmissionInput returns the calculator input for r.
func (r *Record) EmissionInput() emission.Input {
	return emission.PrintingInput{PaperType: r.PaperType, Quantity: r.Quantity}
}

// Validate checks the non-emission fields.
func (r *Record) Validate() error {
	return r.ValidateOwner()
}
