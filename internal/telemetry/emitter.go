package telemetry

import (
	"context"
	"time"
)

// Event types emitted by the footprint services.
const (
	EventRecordWritten       = "record.written"
	EventFootprintAggregated = "footprint.aggregated"
	EventReportGenerated     = "report.generated"
)

// Event is a single business event. Total is the emission in kg CO2e the event refers to.
type Event struct {
	Type      string
	UserID    string
	Category  string
	Total     float64
	Source    string
	CreatedAt time.Time
}

// EventEmitter emits telemetry events (e.g. to OTel Logs). Best-effort; callers log and ignore errors.
type EventEmitter interface {
	Emit(ctx context.Context, event *Event) error
}
