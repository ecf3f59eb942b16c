package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	energydomain "carbon-footprint/backend/internal/energy/domain"
	"carbon-footprint/backend/internal/footprint"
	packagingdomain "carbon-footprint/backend/internal/packaging/domain"
	printingdomain "carbon-footprint/backend/internal/printing/domain"
	transportdomain "carbon-footprint/backend/internal/transport/domain"
	warehousedomain "carbon-footprint/backend/internal/warehouse/domain"
	wastedomain "carbon-footprint/backend/internal/waste/domain"
)

func meta(kg float64) activity.Meta { return activity.Meta{UserID: "u1", Emission: kg} }

func exampleCollections() *footprint.Collections {
	return &footprint.Collections{
		UserID:    "u1",
		Transport: []*transportdomain.Record{{Meta: meta(77.4), FuelType: "diesel"}},
		Warehouse: []*warehousedomain.Record{{Meta: meta(65.0), EnergyType: "Gas"}},
		Waste:     []*wastedomain.Record{{Meta: meta(300.0), WasteType: "plastic"}},
	}
}

func TestAssemble_ExampleIsSatisfactory(t *testing.T) {
	r, err := Assemble("u1", exampleCollections())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if math.Abs(r.Total-442.4) > 1e-9 {
		t.Errorf("Total = %v, want 442.4", r.Total)
	}
	if r.Banner.Level != LevelSatisfactory || r.Banner.Headline != satisfactoryHeadline {
		t.Errorf("Banner = %+v", r.Banner)
	}
	wantTitles := []string{"Transport emissions", "Warehouse emissions", "Packaging emissions", "Waste emissions", "Energy emissions", "Printing emissions"}
	if len(r.Sections) != len(wantTitles) {
		t.Fatalf("%d sections", len(r.Sections))
	}
	for i, s := range r.Sections {
		if s.Title != wantTitles[i] {
			t.Errorf("Sections[%d].Title = %q, want %q", i, s.Title, wantTitles[i])
		}
	}
	transport := r.Sections[0]
	if transport.LabelHeader != "Fuel type" || len(transport.Rows) != 1 || transport.Rows[0] != (Row{Label: "diesel", Emission: 77.4}) {
		t.Errorf("transport section = %+v", transport)
	}
	if len(r.Sections[2].Rows) != 0 || r.Sections[2].Subtotal != 0 {
		t.Errorf("packaging section should be empty: %+v", r.Sections[2])
	}
}

func TestAssemble_TotalMatchesAggregate(t *testing.T) {
	c := exampleCollections()
	c.Printing = []*printingdomain.Record{{Meta: meta(3), PrintType: "offset"}}
	c.Energy = []*energydomain.Record{{Meta: meta(110), EnergyType: "Electricity"}}
	r, err := Assemble("u1", c)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if fp := footprint.Summarize("u1", c); r.Total != fp.Total {
		t.Errorf("report total %v != aggregate total %v", r.Total, fp.Total)
	}
	if r.Sections[5].Rows[0].Label != "offset" || r.Sections[4].LabelHeader != "Energy type" {
		t.Errorf("sections = %+v", r.Sections)
	}
}

func TestAssemble_RowLabels(t *testing.T) {
	c := &footprint.Collections{
		Packaging: []*packagingdomain.Record{{Meta: meta(9.4), PackagingType: "carton"}},
		Printing:  []*printingdomain.Record{{Meta: meta(3), PrintType: "digital", PaperType: "recycled"}},
	}
	r, err := Assemble("u1", c)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got := r.Sections[2].Rows[0].Label; got != "carton" {
		t.Errorf("packaging label = %q", got)
	}
	if got := r.Sections[5].Rows[0].Label; got != "digital" {
		t.Errorf("printing label = %q, want print type", got)
	}
}

func TestAssemble_NilCollections(t *testing.T) {
	if _, err := Assemble("u1", nil); !errors.Is(err, emission.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestBannerFor_Threshold(t *testing.T) {
	tests := []struct {
		total float64
		want  Level
	}{
		{0, LevelSatisfactory},
		{442.4, LevelSatisfactory},
		{500.0, LevelSatisfactory},
		{500.01, LevelHigh},
		{10000, LevelHigh},
	}
	for _, tt := range tests {
		b := BannerFor(tt.total)
		if b.Level != tt.want {
			t.Errorf("BannerFor(%v).Level = %q, want %q", tt.total, b.Level, tt.want)
		}
		if b.Total != tt.total {
			t.Errorf("BannerFor(%v).Total = %v", tt.total, b.Total)
		}
	}
	if h := BannerFor(501); h.Headline != highHeadline || !strings.Contains(h.Message, "renewable") {
		t.Errorf("high banner = %+v", h)
	}
}

func TestRenderText(t *testing.T) {
	r, err := Assemble("u1", exampleCollections())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	var buf bytes.Buffer
	if err := RenderText(&buf, r); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Carbon Footprint Report",
		"Transport emissions",
		"Fuel type",
		"diesel",
		"77.40",
		"No records",
		satisfactoryHeadline,
		"Total emissions: 442.40 kg CO2e",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q:\n%s", want, out)
		}
	}
	if err := RenderText(&buf, nil); err == nil {
		t.Error("RenderText(nil) should fail")
	}
}

type stubCollector struct {
	c   *footprint.Collections
	err error
}

func (s stubCollector) Collect(ctx context.Context, userID string) (*footprint.Collections, error) {
	return s.c, s.err
}

func TestService_Generate(t *testing.T) {
	r, err := NewService(stubCollector{c: exampleCollections()}, nil).Generate(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if r.GeneratedAt.IsZero() || r.UserID != "u1" || r.Banner.Level != LevelSatisfactory {
		t.Errorf("report = %+v", r)
	}

	failure := fmt.Errorf("%w: waste: timeout", footprint.ErrAggregationFailed)
	if _, err := NewService(stubCollector{err: failure}, nil).Generate(context.Background(), "u1"); !errors.Is(err, footprint.ErrAggregationFailed) {
		t.Errorf("err = %v, want ErrAggregationFailed", err)
	}
}
