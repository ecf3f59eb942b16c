package repository

import (
	"context"
	"database/sql"
	"errors"

	"carbon-footprint/backend/internal/db"
	"carbon-footprint/backend/internal/user/domain"
)

const selectColumns = `SELECT id, email, name, created_at FROM users`

type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository returns a user repository that uses the given db for persistence.
func NewSQLRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

// GetByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *SQLRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, selectColumns+` WHERE id = $1`, id)
}

// GetByEmail returns the user with the given email, or nil if not found.
func (r *SQLRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, selectColumns+` WHERE email = $1`, email)
}

// Create persists the user to the database. The user must have ID set; it is not assigned by this method.
func (r *SQLRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (id, email, name, created_at) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Email, u.Name, u.CreatedAt.UTC())
	return err
}

// Delete removes the user. Returns activity.ErrNotFound when no row matches.
func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return db.ExpectAffected(res)
}

func (r *SQLRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
