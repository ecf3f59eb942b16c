package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"carbon-footprint/backend/internal/emission"
	"carbon-footprint/backend/internal/logging"
	"carbon-footprint/backend/internal/telemetry"
)

// Entity is a pointer to a category record.
type Entity interface {
	comparable
	Record
	EmissionInput() emission.Input
	Validate() error
}

// Repository is the persistence contract shared by every category repository.
type Repository[R Entity] interface {
	GetByID(ctx context.Context, id string) (R, error)
	ListAll(ctx context.Context) ([]R, error)
	ListByUser(ctx context.Context, userID string) ([]R, error)
	Create(ctx context.Context, rec R) error
	Update(ctx context.Context, rec R) error
	Delete(ctx context.Context, id string) error
}

// Option configures a Service.
type Option func(*options)

type options struct {
	metrics *telemetry.Metrics
	now     func() time.Time
	newID   func() string
}

// WithMetrics records the emission of every write on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithClock overrides the time source used to default RecordedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// Service is the record store for one category. The emission of a record is computed here on every
// create and update; any emission supplied by the caller is overwritten.
type Service[R Entity] struct {
	category emission.Category
	repo     Repository[R]
	opts     options
}

// NewService returns a record service for category backed by repo.
func NewService[R Entity](category emission.Category, repo Repository[R], opts ...Option) *Service[R] {
	o := options{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Service[R]{category: category, repo: repo, opts: o}
}

// Category returns the category this service stores.
func (s *Service[R]) Category() emission.Category { return s.category }

// Create assigns an id, defaults the timestamp, computes the emission and persists rec.
func (s *Service[R]) Create(ctx context.Context, rec R) (R, error) {
	var zero R
	if rec == zero {
		return zero, fmt.Errorf("%w: record is required", emission.ErrInvalidArgument)
	}
	meta := rec.GetMeta()
	meta.ID = s.opts.newID()
	meta.Stamp(s.opts.now())
	if err := s.prepare(rec); err != nil {
		return zero, err
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return zero, err
	}
	s.recordWrite(ctx, "create", meta)
	return rec, nil
}

// Update replaces an existing record owned by the same user and recomputes its emission.
// A missing record, or one owned by another user, yields ErrNotFound.
func (s *Service[R]) Update(ctx context.Context, rec R) (R, error) {
	var zero R
	if rec == zero {
		return zero, fmt.Errorf("%w: record is required", emission.ErrInvalidArgument)
	}
	meta := rec.GetMeta()
	if strings.TrimSpace(meta.ID) == "" {
		return zero, fmt.Errorf("%w: id is required", emission.ErrInvalidArgument)
	}
	existing, err := s.repo.GetByID(ctx, meta.ID)
	if err != nil {
		return zero, err
	}
	if existing == zero || existing.GetMeta().UserID != meta.UserID {
		return zero, ErrNotFound
	}
	if meta.RecordedAt.IsZero() {
		meta.RecordedAt = existing.GetMeta().RecordedAt
	}
	if err := s.prepare(rec); err != nil {
		return zero, err
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		return zero, err
	}
	s.recordWrite(ctx, "update", meta)
	return rec, nil
}

// Delete removes the record with id. Returns ErrNotFound when it does not exist.
func (s *Service[R]) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", emission.ErrInvalidArgument)
	}
	return s.repo.Delete(ctx, id)
}

// Get returns the record with id. Returns ErrNotFound when it does not exist.
func (s *Service[R]) Get(ctx context.Context, id string) (R, error) {
	var zero R
	if strings.TrimSpace(id) == "" {
		return zero, fmt.Errorf("%w: id is required", emission.ErrInvalidArgument)
	}
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if rec == zero {
		return zero, ErrNotFound
	}
	return rec, nil
}

// GetForUser is Get restricted to records owned by userID.
func (s *Service[R]) GetForUser(ctx context.Context, userID, id string) (R, error) {
	var zero R
	rec, err := s.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	if rec.GetMeta().UserID != userID {
		return zero, ErrNotFound
	}
	return rec, nil
}

// ListAll returns every stored record.
func (s *Service[R]) ListAll(ctx context.Context) ([]R, error) {
	return s.repo.ListAll(ctx)
}

// ListByUser returns the records owned by userID; an unknown user has none.
func (s *Service[R]) ListByUser(ctx context.Context, userID string) ([]R, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", emission.ErrInvalidArgument)
	}
	return s.repo.ListByUser(ctx, userID)
}

// Preview computes the emission rec would be stored with, without persisting it.
func (s *Service[R]) Preview(rec R) (float64, error) {
	var zero R
	if rec == zero {
		return 0, fmt.Errorf("%w: record is required", emission.ErrInvalidArgument)
	}
	return emission.Compute(rec.EmissionInput())
}

func (s *Service[R]) prepare(rec R) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	kg, err := emission.Compute(rec.EmissionInput())
	if err != nil {
		return err
	}
	rec.GetMeta().Emission = kg
	return nil
}

func (s *Service[R]) recordWrite(ctx context.Context, op string, meta *Meta) {
	s.opts.metrics.RecordEmission(ctx, string(s.category), meta.Emission)
	logging.FromContext(ctx).Debug().
		Str("component", "activity").
		Str("operation", op).
		Str("category", string(s.category)).
		Str("record_id", meta.ID).
		Float64("emission", meta.Emission).
		Msg("record written")
}
