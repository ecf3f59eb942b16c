package report

import (
	"context"
	"time"

	"carbon-footprint/backend/internal/footprint"
	"carbon-footprint/backend/internal/logging"
	"carbon-footprint/backend/internal/telemetry"
)

// Collector is the minimal aggregation dependency of the report service.
type Collector interface {
	Collect(ctx context.Context, userID string) (*footprint.Collections, error)
}

// Service generates reports from freshly collected records.
type Service struct {
	collector Collector
	emitter   telemetry.EventEmitter
	now       func() time.Time
}

// NewService returns a report Service. emitter may be nil.
func NewService(collector Collector, emitter telemetry.EventEmitter) *Service {
	return &Service{collector: collector, emitter: emitter, now: func() time.Time { return time.Now().UTC() }}
}

// Generate collects the records of userID and assembles its report.
// Collection failures are returned unchanged, so they still match footprint.ErrAggregationFailed.
func (s *Service) Generate(ctx context.Context, userID string) (*Report, error) {
	c, err := s.collector.Collect(ctx, userID)
	if err != nil {
		return nil, err
	}
	r, err := Assemble(userID, c)
	if err != nil {
		return nil, err
	}
	r.GeneratedAt = s.now()
	logging.FromContext(ctx).Info().
		Str("component", "report").
		Str("user_id", userID).
		Float64("total", r.Total).
		Str("level", string(r.Banner.Level)).
		Msg("report generated")
	telemetry.EmitAsync(s.emitter, ctx, &telemetry.Event{
		Type:      telemetry.EventReportGenerated,
		UserID:    userID,
		Total:     r.Total,
		Source:    "report",
		CreatedAt: r.GeneratedAt,
	})
	return r, nil
}
