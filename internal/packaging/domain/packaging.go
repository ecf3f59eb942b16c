package domain

import (
	"fmt"

	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
)

// Record is a packaging shipment. Weight is optional: pallet-only shipments carry no weight and
// have zero emission.
type Record struct {
	activity.Meta
	PackagingType string   `json:"packagingType,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Quantity      int      `json:"quantity"`
	PalletCount   *int     `json:"palletCount,omitempty"`
	PalletWeight  *float64 `json:"palletWeight,omitempty"`
	PalletType    string   `json:"palletType,omitempty"`
}

// EmissionInput returns the calculator input for r.
func (r *Record) EmissionInput() emission.Input {
	return emission.PackagingInput{PackagingType: r.PackagingType, Weight: r.Weight}
}

// Validate checks the non-emission fields.
func (r *Record) Validate() error {
	if err := r.ValidateOwner(); err != nil {
		return err
	}
	if r.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", emission.ErrInvalidArgument)
	}
	if r.PalletCount != nil && *r.PalletCount < 0 {
		return fmt.Errorf("%w: pallet count must not be negative", emission.ErrInvalidArgument)
	}
	if r.PalletWeight != nil && *r.PalletWeight < 0 {
		return fmt.Errorf("%w: pallet weight must not be negative", emission.ErrInvalidArgument)
	}
	return nil
}
