// Package emission converts raw activity figures into kg CO2e using static factor tables.
// All functions are pure and safe for concurrent use.
package emission

import (
	"fmt"
	"math"
	"strings"
)

// Transport returns (distance * consumption / 100) * fuel factor.
// distance is in km and consumption in L (or kWh) per 100 km.
func Transport(distance, consumption float64, fuel FuelType) (float64, error) {
	if err := nonNegative("distance", distance); err != nil {
		return 0, err
	}
	if err := nonNegative("consumption", consumption); err != nil {
		return 0, err
	}
	factor, ok := fuelFactors[fuel]
	if !ok {
		return 0, &UnsupportedValueError{Kind: "fuel type", Value: fuel.String()}
	}
	return result((distance * consumption / 100) * factor)
}

// Building returns electricity*electricityFactor + heating*heatingFactor for the energy type.
// Warehouse and energy records share this formula.
func Building(electricity, heating float64, energy EnergyType) (float64, error) {
	if err := nonNegative("electricity consumption", electricity); err != nil {
		return 0, err
	}
	if err := nonNegative("heating consumption", heating); err != nil {
		return 0, err
	}
	f, ok := energyFactors[energy]
	if !ok {
		return 0, &UnsupportedValueError{Kind: "energy type", Value: energy.String()}
	}
	return result(electricity*f.Electricity + heating*f.Heating)
}

// Packaging returns weight * packaging factor. weight is in kg.
func Packaging(weight float64, packaging PackagingType) (float64, error) {
	if err := nonNegative("weight", weight); err != nil {
		return 0, err
	}
	factor, ok := packagingFactors[packaging]
	if !ok {
		return 0, &UnsupportedValueError{Kind: "packaging type", Value: fmt.Sprint(int(packaging))}
	}
	return result(weight * factor)
}

// Waste returns quantity * waste factor. quantity is in kg.
func Waste(quantity float64, waste WasteType) (float64, error) {
	if err := nonNegative("quantity", quantity); err != nil {
		return 0, err
	}
	factor, ok := wasteFactors[waste]
	if !ok {
		return 0, &UnsupportedValueError{Kind: "waste type", Value: fmt.Sprint(int(waste))}
	}
	return result(quantity * factor)
}

// Printing returns pages * paper factor.
func Printing(pages float64, paper PaperType) (float64, error) {
	if err := nonNegative("quantity", pages); err != nil {
		return 0, err
	}
	factor, ok := paperFactors[paper]
	if !ok {
		return 0, &UnsupportedValueError{Kind: "paper type", Value: fmt.Sprint(int(paper))}
	}
	return result(pages * factor)
}

// result rejects products that overflowed to +Inf; such a value cannot be stored or encoded.
func result(v float64) (float64, error) {
	if err := nonNegative("emission", v); err != nil {
		return 0, err
	}
	return v, nil
}

func nonNegative(field string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidArgument(field, v)
	}
	return nil
}

// Input is a raw, string-typed calculator input as received at a boundary.
type Input interface {
	Category() Category
	Emission() (float64, error)
}

// Compute evaluates in and annotates failures with its category.
func Compute(in Input) (float64, error) {
	if in == nil {
		return 0, fmtRequired("input")
	}
	v, err := in.Emission()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", in.Category(), err)
	}
	return v, nil
}

// TransportInput holds raw transport fields.
type TransportInput struct {
	Distance    float64
	Consumption float64
	FuelType    string
}

func (TransportInput) Category() Category { return CategoryTransport }

// Emission parses the fuel type and applies Transport.
func (in TransportInput) Emission() (float64, error) {
	fuel, err := ParseFuelType(in.FuelType)
	if err != nil {
		return 0, err
	}
	return Transport(in.Distance, in.Consumption, fuel)
}

// BuildingInput holds raw warehouse or energy fields. Kind selects which category it reports as.
type BuildingInput struct {
	Kind                   Category
	EnergyType             string
	ElectricityConsumption float64
	HeatingConsumption     float64
}

func (in BuildingInput) Category() Category {
	if in.Kind == "" {
		return CategoryEnergy
	}
	return in.Kind
}

// Emission parses the energy type and applies Building.
func (in BuildingInput) Emission() (float64, error) {
	energy, err := ParseEnergyType(in.EnergyType)
	if err != nil {
		return 0, err
	}
	return Building(in.ElectricityConsumption, in.HeatingConsumption, energy)
}

// PackagingInput holds raw packaging fields. Weight is optional.
type PackagingInput struct {
	PackagingType string
	Weight        *float64
}

func (PackagingInput) Category() Category { return CategoryPackaging }

// Emission is zero without error when weight is absent or the packaging type is blank,
// e.g. pallet-only shipments. Otherwise an unknown packaging type is rejected.
func (in PackagingInput) Emission() (float64, error) {
	if in.Weight != nil {
		if err := nonNegative("weight", *in.Weight); err != nil {
			return 0, err
		}
	}
	if in.Weight == nil || strings.TrimSpace(in.PackagingType) == "" {
		return 0, nil
	}
	p, err := ParsePackagingType(in.PackagingType)
	if err != nil {
		return 0, err
	}
	return Packaging(*in.Weight, p)
}

// WasteInput holds raw waste fields.
type WasteInput struct {
	WasteType string
	Quantity  float64
}

func (WasteInput) Category() Category { return CategoryWaste }

// Emission parses the waste type and applies Waste.
func (in WasteInput) Emission() (float64, error) {
	w, err := ParseWasteType(in.WasteType)
	if err != nil {
		return 0, err
	}
	return Waste(in.Quantity, w)
}

// PrintingInput holds raw printing fields. Only PaperType drives the factor.
type PrintingInput struct {
	PaperType string
	Quantity  int
}

func (PrintingInput) Category() Category { return CategoryPrinting }

// Emission parses the paper type and applies Printing.
func (in PrintingInput) Emission() (float64, error) {
	p, err := ParsePaperType(in.PaperType)
	if err != nil {
		return 0, err
	}
	return Printing(float64(in.Quantity), p)
}
