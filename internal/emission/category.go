package emission

import (
	"strings"
)

// Category is one of the six independently tracked activity types.
type Category string

const (
	CategoryTransport Category = "transport"
	CategoryWarehouse Category = "warehouse"
	CategoryPackaging Category = "packaging"
	CategoryWaste     Category = "waste"
	CategoryEnergy    Category = "energy"
	CategoryPrinting  Category = "printing"
)

var categoryOrder = [...]Category{
	CategoryTransport,
	CategoryWarehouse,
	CategoryPackaging,
	CategoryWaste,
	CategoryEnergy,
	CategoryPrinting,
}

// Categories returns all categories in breakdown order: Transport, Warehouse, Packaging, Waste, Energy, Printing.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder[:])
	return out
}

// Label returns the display label used in breakdowns and reports.
func (c Category) Label() string {
	switch c {
	case CategoryTransport:
		return "Transport"
	case CategoryWarehouse:
		return "Warehouse"
	case CategoryPackaging:
		return "Packaging"
	case CategoryWaste:
		return "Waste"
	case CategoryEnergy:
		return "Energy"
	case CategoryPrinting:
		return "Printing"
	default:
		return string(c)
	}
}

// ParseCategory maps a case-insensitive category name to a Category.
func ParseCategory(s string) (Category, error) {
	key := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range categoryOrder {
		if c == key {
			return c, nil
		}
	}
	return "", &UnsupportedValueError{Kind: "category", Value: s}
}
