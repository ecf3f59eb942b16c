package footprint

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	energydomain "carbon-footprint/backend/internal/energy/domain"
	packagingdomain "carbon-footprint/backend/internal/packaging/domain"
	printingdomain "carbon-footprint/backend/internal/printing/domain"
	"carbon-footprint/backend/internal/telemetry"
	transportdomain "carbon-footprint/backend/internal/transport/domain"
	warehousedomain "carbon-footprint/backend/internal/warehouse/domain"
	wastedomain "carbon-footprint/backend/internal/waste/domain"
)

// mockLister returns the records owned by the requested user, or err.
type mockLister[R activity.Record] struct {
	records []R
	err     error
	block   bool

	mu    sync.Mutex
	calls int
}

func (m *mockLister[R]) ListByUser(ctx context.Context, userID string) ([]R, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	var out []R
	for _, r := range m.records {
		if r.GetMeta().UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func meta(userID string, kg float64) activity.Meta {
	return activity.Meta{UserID: userID, Emission: kg}
}

type fixture struct {
	transport *mockLister[*transportdomain.Record]
	warehouse *mockLister[*warehousedomain.Record]
	packaging *mockLister[*packagingdomain.Record]
	waste     *mockLister[*wastedomain.Record]
	energy    *mockLister[*energydomain.Record]
	printing  *mockLister[*printingdomain.Record]
}

func newFixture() *fixture {
	return &fixture{
		transport: &mockLister[*transportdomain.Record]{},
		warehouse: &mockLister[*warehousedomain.Record]{},
		packaging: &mockLister[*packagingdomain.Record]{},
		waste:     &mockLister[*wastedomain.Record]{},
		energy:    &mockLister[*energydomain.Record]{},
		printing:  &mockLister[*printingdomain.Record]{},
	}
}

func (f *fixture) sources() Sources {
	return Sources{
		Transport: f.transport,
		Warehouse: f.warehouse,
		Packaging: f.packaging,
		Waste:     f.waste,
		Energy:    f.energy,
		Printing:  f.printing,
	}
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAggregate_ExampleUser(t *testing.T) {
	f := newFixture()
	f.transport.records = []*transportdomain.Record{{Meta: meta("u1", 77.4), VehicleType: "truck"}}
	f.warehouse.records = []*warehousedomain.Record{{Meta: meta("u1", 65.0)}}
	f.waste.records = []*wastedomain.Record{{Meta: meta("u1", 300.0)}}
	// Another user's records must not leak in.
	f.printing.records = []*printingdomain.Record{{Meta: meta("u2", 1000)}}

	fp, err := NewService(f.sources()).Aggregate(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if !almostEqual(fp.Total, 442.4) {
		t.Errorf("Total = %v, want 442.4", fp.Total)
	}
	wantLabels := []string{"Transport", "Warehouse", "Packaging", "Waste", "Energy", "Printing"}
	wantValues := []float64{77.4, 65.0, 0, 300.0, 0, 0}
	if len(fp.Breakdown) != len(wantLabels) {
		t.Fatalf("breakdown has %d entries", len(fp.Breakdown))
	}
	var sum float64
	for i, e := range fp.Breakdown {
		if e.Label != wantLabels[i] || !almostEqual(e.Value, wantValues[i]) {
			t.Errorf("Breakdown[%d] = %+v, want %s=%v", i, e, wantLabels[i], wantValues[i])
		}
		sum += e.Value
	}
	if sum != fp.Total {
		t.Errorf("sum of breakdown %v != total %v", sum, fp.Total)
	}
	if got := fp.Subtotal(emission.CategoryWaste); got != 300 {
		t.Errorf("Subtotal(waste) = %v", got)
	}
}

func TestAggregate_NoRecords(t *testing.T) {
	fp, err := NewService(newFixture().sources()).Aggregate(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if fp.Total != 0 || len(fp.Breakdown) != 6 {
		t.Errorf("footprint = %+v", fp)
	}
}

func TestAggregate_EmptyUser(t *testing.T) {
	f := newFixture()
	_, err := NewService(f.sources()).Aggregate(context.Background(), "  ")
	if !errors.Is(err, emission.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if f.transport.calls != 0 {
		t.Error("store was queried for an empty user")
	}
}

func TestCollect_FailsAsWhole(t *testing.T) {
	cause := errors.New("connection reset")
	f := newFixture()
	f.energy.err = cause
	f.transport.block = true // must observe the cancelled context

	c, err := NewService(f.sources()).Collect(context.Background(), "u1")
	if c != nil {
		t.Errorf("partial result returned: %+v", c)
	}
	if !errors.Is(err, ErrAggregationFailed) {
		t.Fatalf("err = %v, want ErrAggregationFailed", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want cause preserved", err)
	}
	if !strings.Contains(err.Error(), "energy") {
		t.Errorf("err %q does not name the category", err)
	}
}

func TestCollect_MissingSource(t *testing.T) {
	s := newFixture().sources()
	s.Printing = nil
	if _, err := NewService(s).Collect(context.Background(), "u1"); !errors.Is(err, ErrAggregationFailed) {
		t.Errorf("err = %v, want ErrAggregationFailed", err)
	}
}

func TestAggregate_EmitsEvent(t *testing.T) {
	f := newFixture()
	f.waste.records = []*wastedomain.Record{{Meta: meta("u1", 300)}}
	em := &captureEmitter{done: make(chan *telemetry.Event, 1)}

	if _, err := NewService(f.sources(), WithEventEmitter(em)).Aggregate(context.Background(), "u1"); err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	ev := <-em.done
	if ev.Type != telemetry.EventFootprintAggregated || ev.UserID != "u1" || ev.Total != 300 {
		t.Errorf("event = %+v", ev)
	}
}

type captureEmitter struct {
	done chan *telemetry.Event
}

func (c *captureEmitter) Emit(ctx context.Context, e *telemetry.Event) error {
	c.done <- e
	return nil
}

func TestAggregateTransportByVehicleType(t *testing.T) {
	f := newFixture()
	f.transport.records = []*transportdomain.Record{
		{Meta: meta("u1", 10), VehicleType: "truck"},
		{Meta: meta("u1", 5), VehicleType: "truck"},
		{Meta: meta("u1", 2), VehicleType: "van"},
		{Meta: meta("u1", 1), VehicleType: " "},
		{Meta: meta("u2", 99), VehicleType: "truck"},
	}
	got, err := NewService(f.sources()).AggregateTransportByVehicleType(context.Background(), "u1")
	if err != nil {
		t.Fatalf("AggregateTransportByVehicleType: %v", err)
	}
	want := map[string]float64{"truck": 15, "van": 2, UnspecifiedVehicleType: 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}

	f.transport.err = errors.New("boom")
	if _, err := NewService(f.sources()).AggregateTransportByVehicleType(context.Background(), "u1"); !errors.Is(err, ErrAggregationFailed) {
		t.Errorf("err = %v, want ErrAggregationFailed", err)
	}
}

func TestCategoryTotal(t *testing.T) {
	f := newFixture()
	weight := 10.0
	f.packaging.records = []*packagingdomain.Record{
		{Meta: meta("u1", 9.4), Weight: &weight},
		{Meta: meta("u1", 0.6)},
	}
	svc := NewService(f.sources())
	got, err := svc.CategoryTotal(context.Background(), "u1", emission.CategoryPackaging)
	if err != nil {
		t.Fatalf("CategoryTotal: %v", err)
	}
	if !almostEqual(got, 10) {
		t.Errorf("CategoryTotal = %v, want 10", got)
	}
	if f.transport.calls != 0 {
		t.Error("CategoryTotal queried other categories")
	}
	if _, err := svc.CategoryTotal(context.Background(), "u1", "travel"); !errors.Is(err, emission.ErrUnsupportedCategoryValue) {
		t.Errorf("err = %v, want ErrUnsupportedCategoryValue", err)
	}
}

func TestSummarize_MatchesRecordSum(t *testing.T) {
	c := &Collections{
		Transport: []*transportdomain.Record{{Meta: meta("u", 1.1)}, {Meta: meta("u", 2.2)}},
		Energy:    []*energydomain.Record{{Meta: meta("u", 3.3)}},
		Printing:  []*printingdomain.Record{{Meta: meta("u", 0.005)}},
	}
	fp := Summarize("u", c)
	var records float64
	for _, v := range []float64{1.1, 2.2, 3.3, 0.005} {
		records += v
	}
	if !almostEqual(fp.Total, records) {
		t.Errorf("Total = %v, want %v", fp.Total, records)
	}
	if c.Len() != 4 {
		t.Errorf("Len = %d", c.Len())
	}
}
