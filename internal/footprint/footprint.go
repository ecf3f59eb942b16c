// Package footprint rolls a user's category records up into subtotals, a grand total and a
// fixed-order breakdown. Footprints are computed on demand and never cached.
package footprint

import (
	"strings"

	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	energydomain "carbon-footprint/backend/internal/energy/domain"
	packagingdomain "carbon-footprint/backend/internal/packaging/domain"
	printingdomain "carbon-footprint/backend/internal/printing/domain"
	transportdomain "carbon-footprint/backend/internal/transport/domain"
	warehousedomain "carbon-footprint/backend/internal/warehouse/domain"
	wastedomain "carbon-footprint/backend/internal/waste/domain"
)

// UnspecifiedVehicleType groups transport records that carry no vehicle type.
const UnspecifiedVehicleType = "unspecified"

// Collections holds every record of one user, one slice per category.
type Collections struct {
	UserID    string
	Transport []*transportdomain.Record
	Warehouse []*warehousedomain.Record
	Packaging []*packagingdomain.Record
	Waste     []*wastedomain.Record
	Energy    []*energydomain.Record
	Printing  []*printingdomain.Record
}

// Subtotal returns the summed emission of category c. Unknown categories total zero.
func (c *Collections) Subtotal(cat emission.Category) float64 {
	if c == nil {
		return 0
	}
	switch cat {
	case emission.CategoryTransport:
		return activity.TotalEmission(c.Transport)
	case emission.CategoryWarehouse:
		return activity.TotalEmission(c.Warehouse)
	case emission.CategoryPackaging:
		return activity.TotalEmission(c.Packaging)
	case emission.CategoryWaste:
		return activity.TotalEmission(c.Waste)
	case emission.CategoryEnergy:
		return activity.TotalEmission(c.Energy)
	case emission.CategoryPrinting:
		return activity.TotalEmission(c.Printing)
	}
	return 0
}

// Len returns the number of records across all categories.
func (c *Collections) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Transport) + len(c.Warehouse) + len(c.Packaging) + len(c.Waste) + len(c.Energy) + len(c.Printing)
}

// Entry is one (label, subtotal) pair of a breakdown.
type Entry struct {
	Category emission.Category `json:"category"`
	Label    string            `json:"label"`
	Value    float64           `json:"value"`
}

// Footprint is the per-user rollup. Total always equals the sum of the breakdown values.
type Footprint struct {
	UserID    string  `json:"userId"`
	Total     float64 `json:"total"`
	Breakdown []Entry `json:"breakdown"`
}

// Subtotal returns the breakdown value for cat.
func (f *Footprint) Subtotal(cat emission.Category) float64 {
	for _, e := range f.Breakdown {
		if e.Category == cat {
			return e.Value
		}
	}
	return 0
}

// Summarize reduces c into a Footprint with the breakdown in emission.Categories order.
func Summarize(userID string, c *Collections) *Footprint {
	f := &Footprint{UserID: userID, Breakdown: make([]Entry, 0, len(emission.Categories()))}
	for _, cat := range emission.Categories() {
		v := c.Subtotal(cat)
		f.Breakdown = append(f.Breakdown, Entry{Category: cat, Label: cat.Label(), Value: v})
		f.Total += v
	}
	return f
}

// ByVehicleType sums transport emission per vehicle type.
func ByVehicleType(records []*transportdomain.Record) map[string]float64 {
	out := make(map[string]float64)
	for _, r := range records {
		key := strings.TrimSpace(r.VehicleType)
		if key == "" {
			key = UnspecifiedVehicleType
		}
		out[key] += r.Emission
	}
	return out
}
