package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records emission and aggregation instruments. A nil *Metrics is valid and records nothing.
type Metrics struct {
	emissions    metric.Float64Counter
	records      metric.Int64Counter
	aggregations metric.Float64Histogram
}

// NewMetrics registers the instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	emissions, err := meter.Float64Counter("footprint.emission",
		metric.WithUnit("kg"),
		metric.WithDescription("Emission computed for written records, in kg CO2e"))
	if err != nil {
		return nil, err
	}
	records, err := meter.Int64Counter("footprint.records.written",
		metric.WithDescription("Category records created or updated"))
	if err != nil {
		return nil, err
	}
	aggregations, err := meter.Float64Histogram("footprint.aggregation.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of per-user footprint aggregation"))
	if err != nil {
		return nil, err
	}
	return &Metrics{emissions: emissions, records: records, aggregations: aggregations}, nil
}

// RecordEmission adds kg to the emission counter for category.
func (m *Metrics) RecordEmission(ctx context.Context, category string, kg float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("category", category))
	m.emissions.Add(ctx, kg, attrs)
	m.records.Add(ctx, 1, attrs)
}

// RecordAggregation observes the duration of one aggregation and whether it failed.
func (m *Metrics) RecordAggregation(ctx context.Context, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.aggregations.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.Bool("error", err != nil)))
}
