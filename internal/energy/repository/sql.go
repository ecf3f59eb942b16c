package repository

import (
	"context"
	"database/sql"
	"errors"

	"carbon-footprint/backend/internal/db"
	"carbon-footprint/backend/internal/energy/domain"
)

const selectColumns = `SELECT id, user_id, recorded_at, emission, energy_type,
	electricity_consumption, heating_consumption, unit FROM energy_records`

type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository returns an energy repository that uses the given db for persistence.
func NewSQLRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

// GetByID returns the record for id, or nil if not found.
func (r *SQLRepository) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

func (r *SQLRepository) ListAll(ctx context.Context) ([]*domain.Record, error) {
	return db.QueryList(ctx, r.db, scanRecord, selectColumns+` ORDER BY recorded_at, id`)
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Record, error) {
	return db.QueryList(ctx, r.db, scanRecord, selectColumns+` WHERE user_id = $1 ORDER BY recorded_at, id`, userID)
}

// Create persists the record. The record must have ID set.
func (r *SQLRepository) Create(ctx context.Context, rec *domain.Record) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO energy_records
		(id, user_id, recorded_at, emission, energy_type, electricity_consumption, heating_consumption, unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.UserID, rec.RecordedAt.UTC(), rec.Emission, rec.EnergyType,
		rec.ElectricityConsumption, rec.HeatingConsumption, rec.Unit)
	return err
}

// Update overwrites the record with the same id. Returns activity.ErrNotFound when no row matches.
func (r *SQLRepository) Update(ctx context.Context, rec *domain.Record) error {
	res, err := r.db.ExecContext(ctx, `UPDATE energy_records SET
		recorded_at = $2, emission = $3, energy_type = $4,
		electricity_consumption = $5, heating_consumption = $6, unit = $7
		WHERE id = $1`,
		rec.ID, rec.RecordedAt.UTC(), rec.Emission, rec.EnergyType,
		rec.ElectricityConsumption, rec.HeatingConsumption, rec.Unit)
	if err != nil {
		return err
	}
	return db.ExpectAffected(res)
}

// Delete removes the record. Returns activity.ErrNotFound when no row matches.
func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM energy_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return db.ExpectAffected(res)
}

func scanRecord(s db.Scanner) (*domain.Record, error) {
	var rec domain.Record
	if err := s.Scan(&rec.ID, &rec.UserID, &rec.RecordedAt, &rec.Emission, &rec.EnergyType,
		&rec.ElectricityConsumption, &rec.HeatingConsumption, &rec.Unit); err != nil {
		return nil, err
	}
	return &rec, nil
}
