package emission

import "testing"

func TestFactorTable(t *testing.T) {
	for _, c := range Categories() {
		rows := FactorTable(c)
		if len(rows) == 0 {
			t.Errorf("%s: empty factor table", c)
		}
	}
	gas := FactorTable(CategoryWarehouse)[1]
	if gas.Type != "Gas" || gas.Value != 0.20 || gas.Heating != 0.25 {
		t.Errorf("gas row = %+v", gas)
	}
	if FactorTable("travel") != nil {
		t.Error("unknown category should have no factors")
	}
}

func TestFactorTable_TypesParse(t *testing.T) {
	parsers := map[Category]func(string) error{
		CategoryTransport: func(s string) error { _, err := ParseFuelType(s); return err },
		CategoryWarehouse: func(s string) error { _, err := ParseEnergyType(s); return err },
		CategoryEnergy:    func(s string) error { _, err := ParseEnergyType(s); return err },
		CategoryPackaging: func(s string) error { _, err := ParsePackagingType(s); return err },
		CategoryWaste:     func(s string) error { _, err := ParseWasteType(s); return err },
		CategoryPrinting:  func(s string) error { _, err := ParsePaperType(s); return err },
	}
	for c, parse := range parsers {
		for _, f := range FactorTable(c) {
			if err := parse(f.Type); err != nil {
				t.Errorf("%s: listed type %q does not parse: %v", c, f.Type, err)
			}
		}
	}
}
