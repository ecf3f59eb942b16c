package emission

// Factor is one row of a category's factor table, listed under its canonical type name.
type Factor struct {
	Type string
	// Value is kg CO2e per Unit. For warehouse and energy it is the electricity factor.
	Value float64
	// Heating is the heating factor for warehouse and energy; zero elsewhere.
	Heating float64
	Unit    string
}

// FactorTable returns the factors in effect for c in a stable order. Unknown categories have none.
func FactorTable(c Category) []Factor {
	switch c {
	case CategoryTransport:
		out := make([]Factor, 0, len(fuelFactors))
		for _, f := range []FuelType{FuelDiesel, FuelPetrol, FuelElectric} {
			out = append(out, Factor{Type: f.String(), Value: f.Factor(), Unit: "L or kWh"})
		}
		return out
	case CategoryWarehouse, CategoryEnergy:
		out := make([]Factor, 0, len(energyFactors))
		for _, e := range []EnergyType{EnergyElectricity, EnergyGas, EnergyOil} {
			ef := e.Factors()
			out = append(out, Factor{Type: e.String(), Value: ef.Electricity, Heating: ef.Heating, Unit: "kWh"})
		}
		return out
	case CategoryPackaging:
		return []Factor{
			{Type: "carton", Value: PackagingCarton.Factor(), Unit: "kg"},
			{Type: "plastic", Value: PackagingPlastic.Factor(), Unit: "kg"},
		}
	case CategoryWaste:
		return []Factor{
			{Type: "plastic", Value: WastePlastic.Factor(), Unit: "kg"},
			{Type: "paper", Value: WastePaper.Factor(), Unit: "kg"},
			{Type: "organic", Value: WasteOrganic.Factor(), Unit: "kg"},
			{Type: "glass", Value: WasteGlass.Factor(), Unit: "kg"},
		}
	case CategoryPrinting:
		return []Factor{
			{Type: "standard", Value: PaperStandard.Factor(), Unit: "page"},
			{Type: "recycled", Value: PaperRecycled.Factor(), Unit: "page"},
			{Type: "photo", Value: PaperPhoto.Factor(), Unit: "page"},
		}
	}
	return nil
}
