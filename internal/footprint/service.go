package footprint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	energydomain "carbon-footprint/backend/internal/energy/domain"
	"carbon-footprint/backend/internal/logging"
	packagingdomain "carbon-footprint/backend/internal/packaging/domain"
	printingdomain "carbon-footprint/backend/internal/printing/domain"
	"carbon-footprint/backend/internal/telemetry"
	transportdomain "carbon-footprint/backend/internal/transport/domain"
	warehousedomain "carbon-footprint/backend/internal/warehouse/domain"
	wastedomain "carbon-footprint/backend/internal/waste/domain"
)

// ErrAggregationFailed is returned when any category fetch fails. No partial footprint is returned.
var ErrAggregationFailed = errors.New("aggregation failed")

// Lister is the minimal record store needed by the aggregation service.
type Lister[R activity.Record] interface {
	ListByUser(ctx context.Context, userID string) ([]R, error)
}

// Sources holds one record store per category. All six are required.
type Sources struct {
	Transport Lister[*transportdomain.Record]
	Warehouse Lister[*warehousedomain.Record]
	Packaging Lister[*packagingdomain.Record]
	Waste     Lister[*wastedomain.Record]
	Energy    Lister[*energydomain.Record]
	Printing  Lister[*printingdomain.Record]
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics records aggregation durations on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithEventEmitter emits a footprint.aggregated event after each successful aggregation.
func WithEventEmitter(e telemetry.EventEmitter) Option {
	return func(s *Service) { s.emitter = e }
}

// WithTracer wraps each aggregation in a span from t.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// Service aggregates a user's records across the six categories.
type Service struct {
	sources Sources
	metrics *telemetry.Metrics
	emitter telemetry.EventEmitter
	tracer  trace.Tracer
}

// NewService returns an aggregation Service reading from sources.
func NewService(sources Sources, opts ...Option) *Service {
	s := &Service{sources: sources, tracer: noop.NewTracerProvider().Tracer("")}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Collect fetches the six collections of userID concurrently and waits for all of them.
// The first failure cancels the remaining fetches and is returned wrapped in ErrAggregationFailed.
func (s *Service) Collect(ctx context.Context, userID string) (*Collections, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	c := &Collections{UserID: userID}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(fetch(gCtx, emission.CategoryTransport, userID, s.sources.Transport, &c.Transport))
	g.Go(fetch(gCtx, emission.CategoryWarehouse, userID, s.sources.Warehouse, &c.Warehouse))
	g.Go(fetch(gCtx, emission.CategoryPackaging, userID, s.sources.Packaging, &c.Packaging))
	g.Go(fetch(gCtx, emission.CategoryWaste, userID, s.sources.Waste, &c.Waste))
	g.Go(fetch(gCtx, emission.CategoryEnergy, userID, s.sources.Energy, &c.Energy))
	g.Go(fetch(gCtx, emission.CategoryPrinting, userID, s.sources.Printing, &c.Printing))
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}

// Aggregate computes the footprint of userID from its current records.
func (s *Service) Aggregate(ctx context.Context, userID string) (*Footprint, error) {
	ctx, span := s.tracer.Start(ctx, "footprint.Aggregate", trace.WithAttributes(attribute.String("user_id", userID)))
	defer span.End()
	logger := logging.FromContext(ctx).With().
		Str("component", "footprint").
		Str("operation", "aggregate").
		Str("user_id", userID).
		Logger()

	start := time.Now()
	c, err := s.Collect(ctx, userID)
	s.metrics.RecordAggregation(ctx, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn().Err(err).Msg("aggregation failed")
		return nil, err
	}
	f := Summarize(userID, c)
	span.SetAttributes(attribute.Float64("footprint.total", f.Total), attribute.Int("footprint.records", c.Len()))
	logger.Debug().Float64("total", f.Total).Int("records", c.Len()).Msg("footprint aggregated")
	telemetry.EmitAsync(s.emitter, ctx, &telemetry.Event{
		Type:      telemetry.EventFootprintAggregated,
		UserID:    userID,
		Total:     f.Total,
		Source:    "footprint",
		CreatedAt: time.Now().UTC(),
	})
	return f, nil
}

// AggregateTransportByVehicleType sums the transport emission of userID per vehicle type.
func (s *Service) AggregateTransportByVehicleType(ctx context.Context, userID string) (map[string]float64, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	var records []*transportdomain.Record
	if err := fetch(ctx, emission.CategoryTransport, userID, s.sources.Transport, &records)(); err != nil {
		return nil, err
	}
	return ByVehicleType(records), nil
}

// CategoryTotal returns the summed emission of one category for userID.
func (s *Service) CategoryTotal(ctx context.Context, userID string, cat emission.Category) (float64, error) {
	if err := requireUser(userID); err != nil {
		return 0, err
	}
	c := &Collections{UserID: userID}
	var run func() error
	switch cat {
	case emission.CategoryTransport:
		run = fetch(ctx, cat, userID, s.sources.Transport, &c.Transport)
	case emission.CategoryWarehouse:
		run = fetch(ctx, cat, userID, s.sources.Warehouse, &c.Warehouse)
	case emission.CategoryPackaging:
		run = fetch(ctx, cat, userID, s.sources.Packaging, &c.Packaging)
	case emission.CategoryWaste:
		run = fetch(ctx, cat, userID, s.sources.Waste, &c.Waste)
	case emission.CategoryEnergy:
		run = fetch(ctx, cat, userID, s.sources.Energy, &c.Energy)
	case emission.CategoryPrinting:
		run = fetch(ctx, cat, userID, s.sources.Printing, &c.Printing)
	default:
		return 0, &emission.UnsupportedValueError{Kind: "category", Value: string(cat)}
	}
	if err := run(); err != nil {
		return 0, err
	}
	return c.Subtotal(cat), nil
}

func fetch[R activity.Record](ctx context.Context, cat emission.Category, userID string, src Lister[R], dst *[]R) func() error {
	return func() error {
		if src == nil {
			return fmt.Errorf("%w: %s: no record source", ErrAggregationFailed, cat)
		}
		records, err := src.ListByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrAggregationFailed, cat, err)
		}
		*dst = records
		return nil
	}
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", emission.ErrInvalidArgument)
	}
	return nil
}
