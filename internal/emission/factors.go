package emission

import (
	"strings"
)

// FuelType is the transport fuel vocabulary.
type FuelType int

const (
	FuelDiesel FuelType = iota + 1
	FuelPetrol
	FuelElectric
)

// Fuel factors in kg CO2e per litre (or kWh) consumed.
var fuelFactors = map[FuelType]float64{
	FuelDiesel:   2.58,
	FuelPetrol:   2.31,
	FuelElectric: 0.0,
}

var fuelNames = map[string]FuelType{
	"diesel":   FuelDiesel,
	"essence":  FuelPetrol,
	"petrol":   FuelPetrol,
	"electric": FuelElectric,
}

// ParseFuelType matches s case-insensitively against the fuel vocabulary.
func ParseFuelType(s string) (FuelType, error) {
	if f, ok := fuelNames[normalizeKey(s)]; ok {
		return f, nil
	}
	return 0, &UnsupportedValueError{Kind: "fuel type", Value: s}
}

// Factor returns the emission factor for f.
func (f FuelType) Factor() float64 { return fuelFactors[f] }

func (f FuelType) String() string {
	switch f {
	case FuelDiesel:
		return "diesel"
	case FuelPetrol:
		return "petrol"
	case FuelElectric:
		return "electric"
	}
	return "unknown"
}

// EnergyType is the warehouse/energy vocabulary. Each type carries an electricity and a heating factor.
type EnergyType int

const (
	EnergyElectricity EnergyType = iota + 1
	EnergyGas
	EnergyOil
)

// EnergyFactors is the (electricity, heating) factor pair in kg CO2e per kWh.
type EnergyFactors struct {
	Electricity float64
	Heating     float64
}

var energyFactors = map[EnergyType]EnergyFactors{
	EnergyElectricity: {Electricity: 0.10, Heating: 0.05},
	EnergyGas:         {Electricity: 0.20, Heating: 0.25},
	EnergyOil:         {Electricity: 0.30, Heating: 0.35},
}

var energyNames = map[string]EnergyType{
	"Electricity": EnergyElectricity,
	"Gas":         EnergyGas,
	"Oil":         EnergyOil,
}

// ParseEnergyType normalizes s to first-letter-capital form ("gas" -> "Gas") and looks it up.
// A blank s is an ErrInvalidArgument rather than an unsupported value.
func ParseEnergyType(s string) (EnergyType, error) {
	key := normalizeKey(s)
	if key == "" {
		return 0, fmtRequired("energy type")
	}
	key = strings.ToUpper(key[:1]) + key[1:]
	if e, ok := energyNames[key]; ok {
		return e, nil
	}
	return 0, &UnsupportedValueError{Kind: "energy type", Value: s}
}

// Factors returns the electricity and heating factors for e.
func (e EnergyType) Factors() EnergyFactors { return energyFactors[e] }

func (e EnergyType) String() string {
	for name, v := range energyNames {
		if v == e {
			return name
		}
	}
	return "unknown"
}

// PackagingType is the packaging material vocabulary.
type PackagingType int

const (
	PackagingCarton PackagingType = iota + 1
	PackagingPlastic
)

// kg CO2e per kg of packaging material.
var packagingFactors = map[PackagingType]float64{
	PackagingCarton:  0.94,
	PackagingPlastic: 2.5,
}

var packagingNames = map[string]PackagingType{
	"carton":    PackagingCarton,
	"plastic":   PackagingPlastic,
	"plastique": PackagingPlastic,
}

// ParsePackagingType matches s case-insensitively against the packaging vocabulary.
func ParsePackagingType(s string) (PackagingType, error) {
	if p, ok := packagingNames[normalizeKey(s)]; ok {
		return p, nil
	}
	return 0, &UnsupportedValueError{Kind: "packaging type", Value: s}
}

// Factor returns the emission factor for p.
func (p PackagingType) Factor() float64 { return packagingFactors[p] }

// WasteType is the waste stream vocabulary.
type WasteType int

const (
	WastePlastic WasteType = iota + 1
	WastePaper
	WasteOrganic
	WasteGlass
)

// kg CO2e per kg of waste.
var wasteFactors = map[WasteType]float64{
	WastePlastic: 6.0,
	WastePaper:   1.8,
	WasteOrganic: 0.5,
	WasteGlass:   0.2,
}

var wasteNames = map[string]WasteType{
	"plastic": WastePlastic,
	"paper":   WastePaper,
	"organic": WasteOrganic,
	"glass":   WasteGlass,
}

// ParseWasteType matches s case-insensitively against the waste vocabulary.
func ParseWasteType(s string) (WasteType, error) {
	if w, ok := wasteNames[normalizeKey(s)]; ok {
		return w, nil
	}
	return 0, &UnsupportedValueError{Kind: "waste type", Value: s}
}

// Factor returns the emission factor for w.
func (w WasteType) Factor() float64 { return wasteFactors[w] }

// PaperType is the printing paper vocabulary.
type PaperType int

const (
	PaperStandard PaperType = iota + 1
	PaperRecycled
	PaperPhoto
)

// kg CO2e per printed page.
var paperFactors = map[PaperType]float64{
	PaperStandard: 0.005,
	PaperRecycled: 0.003,
	PaperPhoto:    0.01,
}

var paperNames = map[string]PaperType{
	"standard": PaperStandard,
	"recycled": PaperRecycled,
	"photo":    PaperPhoto,
}

// ParsePaperType matches s case-insensitively against the paper vocabulary.
func ParsePaperType(s string) (PaperType, error) {
	if p, ok := paperNames[normalizeKey(s)]; ok {
		return p, nil
	}
	return 0, &UnsupportedValueError{Kind: "paper type", Value: s}
}

// Factor returns the emission factor for p.
func (p PaperType) Factor() float64 { return paperFactors[p] }

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
