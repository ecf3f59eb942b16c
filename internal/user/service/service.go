package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	"carbon-footprint/backend/internal/logging"
	"carbon-footprint/backend/internal/user/domain"
	"carbon-footprint/backend/internal/user/repository"
)

// Sentinel errors for the user service; handlers map them to HTTP status codes.
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// UserService creates, looks up and deletes users.
type UserService struct {
	repo repository.Repository
	now  func() time.Time
}

// NewUserService returns a UserService backed by repo.
func NewUserService(repo repository.Repository) *UserService {
	return &UserService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Create registers a user with a normalized email. Emails are unique.
func (s *UserService) Create(ctx context.Context, email, name string) (*domain.User, error) {
	u := &domain.User{
		ID:        uuid.New().String(),
		Email:     strings.TrimSpace(strings.ToLower(email)),
		Name:      strings.TrimSpace(name),
		CreatedAt: s.now(),
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Get returns the user for id. Returns activity.ErrNotFound when it does not exist.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: user id is required", emission.ErrInvalidArgument)
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, activity.ErrNotFound
	}
	return u, nil
}

// Delete removes the user and, through the schema, all of its category records.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: user id is required", emission.ErrInvalidArgument)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Str("component", "user").Str("user_id", id).Msg("user deleted with all records")
	return nil
}
