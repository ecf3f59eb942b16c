package repository

import (
	"context"

	"carbon-footprint/backend/internal/packaging/domain"
)

// Repository defines persistence for packaging records.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	ListAll(ctx context.Context) ([]*domain.Record, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Record, error)
	Create(ctx context.Context, r *domain.Record) error
	Update(ctx context.Context, r *domain.Record) error
	Delete(ctx context.Context, id string) error
}
