// Package report assembles a user's records into a sectioned emission report with an advisory banner.
package report

import (
	"fmt"
	"time"

	"carbon-footprint/backend/internal/emission"
	"carbon-footprint/backend/internal/footprint"
)

// EmissionThreshold is the total, in kg CO2e, above which a report carries the high-emission banner.
const EmissionThreshold = 500.0

// Level classifies a report total against EmissionThreshold.
type Level string

const (
	LevelSatisfactory Level = "satisfactory"
	LevelHigh         Level = "high"
)

const (
	highHeadline = "High emissions detected"
	highAdvice   = "Your emissions are above the recommended level. Consider:\n" +
		"- Driving less or switching to electric transport.\n" +
		"- Optimizing warehouse energy consumption.\n" +
		"- Reducing packaging and waste.\n" +
		"- Using renewable energy sources where possible."

	satisfactoryHeadline = "Emission level: satisfactory"
	satisfactoryMessage  = "Congratulations! Your emissions are within the recommended thresholds.\n" +
		"Keep up your current efforts to maintain a sustainable carbon footprint."
)

// Row is one record in a section: the record's type label and its emission.
type Row struct {
	Label    string  `json:"label"`
	Emission float64 `json:"emission"`
}

// Section is the table of one category.
type Section struct {
	Category    emission.Category `json:"category"`
	Title       string            `json:"title"`
	LabelHeader string            `json:"labelHeader"`
	Rows        []Row             `json:"rows"`
	Subtotal    float64           `json:"subtotal"`
}

// Banner is the closing advisory.
type Banner struct {
	Level    Level   `json:"level"`
	Headline string  `json:"headline"`
	Message  string  `json:"message"`
	Total    float64 `json:"total"`
}

// Summary returns the total line printed under the banner.
func (b Banner) Summary() string {
	return fmt.Sprintf("Total emissions: %.2f kg CO2e", b.Total)
}

// Report is the structured document handed to renderers.
type Report struct {
	UserID      string    `json:"userId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Sections    []Section `json:"sections"`
	Total       float64   `json:"total"`
	Banner      Banner    `json:"banner"`
}

// Assemble builds the report for userID from c. Sections follow emission.Categories order and the
// total is summed from the records themselves.
func Assemble(userID string, c *footprint.Collections) (*Report, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: collections are required", emission.ErrInvalidArgument)
	}
	r := &Report{UserID: userID, Sections: make([]Section, 0, len(emission.Categories()))}
	for _, cat := range emission.Categories() {
		s := Section{Category: cat, Title: cat.Label() + " emissions", LabelHeader: labelHeader(cat), Rows: rows(cat, c)}
		for _, row := range s.Rows {
			s.Subtotal += row.Emission
		}
		r.Sections = append(r.Sections, s)
		r.Total += s.Subtotal
	}
	r.Banner = BannerFor(r.Total)
	return r, nil
}

// BannerFor selects the banner for total. Only a total strictly above EmissionThreshold is high.
func BannerFor(total float64) Banner {
	if total > EmissionThreshold {
		return Banner{Level: LevelHigh, Headline: highHeadline, Message: highAdvice, Total: total}
	}
	return Banner{Level: LevelSatisfactory, Headline: satisfactoryHeadline, Message: satisfactoryMessage, Total: total}
}

func labelHeader(cat emission.Category) string {
	switch cat {
	case emission.CategoryTransport:
		return "Fuel type"
	case emission.CategoryWarehouse, emission.CategoryEnergy:
		return "Energy type"
	case emission.CategoryPackaging:
		return "Packaging type"
	case emission.CategoryWaste:
		return "Waste type"
	case emission.CategoryPrinting:
		return "Print type"
	}
	return "Type"
}

func rows(cat emission.Category, c *footprint.Collections) []Row {
	var out []Row
	switch cat {
	case emission.CategoryTransport:
		for _, r := range c.Transport {
			out = append(out, Row{Label: r.FuelType, Emission: r.Emission})
		}
	case emission.CategoryWarehouse:
		for _, r := range c.Warehouse {
			out = append(out, Row{Label: r.EnergyType, Emission: r.Emission})
		}
	case emission.CategoryPackaging:
		for _, r := range c.Packaging {
			out = append(out, Row{Label: r.PackagingType, Emission: r.Emission})
		}
	case emission.CategoryWaste:
		for _, r := range c.Waste {
			out = append(out, Row{Label: r.WasteType, Emission: r.Emission})
		}
	case emission.CategoryEnergy:
		for _, r := range c.Energy {
			out = append(out, Row{Label: r.EnergyType, Emission: r.Emission})
		}
	case emission.CategoryPrinting:
		for _, r := range c.Printing {
			out = append(out, Row{Label: r.PrintType, Emission: r.Emission})
		}
	}
	return out
}
