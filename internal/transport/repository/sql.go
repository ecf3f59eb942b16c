package repository

import (
	"context"
	"database/sql"
	"errors"

	"carbon-footprint/backend/internal/db"
	"carbon-footprint/backend/internal/transport/domain"
)

const selectColumns = `SELECT id, user_id, recorded_at, emission, distance, vehicle_type, fuel_type,
	consumption, load_factor, departure_location, arrival_location FROM transport_records`

type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository returns a transport repository that uses the given db for persistence.
func NewSQLRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

// GetByID returns the record for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *SQLRepository) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// ListAll returns every transport record, oldest first.
func (r *SQLRepository) ListAll(ctx context.Context) ([]*domain.Record, error) {
	return db.QueryList(ctx, r.db, scanRecord, selectColumns+` ORDER BY recorded_at, id`)
}

// ListByUser returns the records owned by userID, oldest first.
func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Record, error) {
	return db.QueryList(ctx, r.db, scanRecord, selectColumns+` WHERE user_id = $1 ORDER BY recorded_at, id`, userID)
}

// Create persists the record. The record must have ID set; it is not assigned by this method.
func (r *SQLRepository) Create(ctx context.Context, rec *domain.Record) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO transport_records
		(id, user_id, recorded_at, emission, distance, vehicle_type, fuel_type, consumption, load_factor, departure_location, arrival_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.UserID, rec.RecordedAt.UTC(), rec.Emission, rec.Distance, rec.VehicleType, rec.FuelType,
		rec.Consumption, rec.LoadFactor, rec.DepartureLocation, rec.ArrivalLocation)
	return err
}

// Update overwrites the record with the same id. Returns activity.ErrNotFound when no row matches.
func (r *SQLRepository) Update(ctx context.Context, rec *domain.Record) error {
	res, err := r.db.ExecContext(ctx, `UPDATE transport_records SET
		recorded_at = $2, emission = $3, distance = $4, vehicle_type = $5, fuel_type = $6,
		consumption = $7, load_factor = $8, departure_location = $9, arrival_location = $10
		WHERE id = $1`,
		rec.ID, rec.RecordedAt.UTC(), rec.Emission, rec.Distance, rec.VehicleType, rec.FuelType,
		rec.Consumption, rec.LoadFactor, rec.DepartureLocation, rec.ArrivalLocation)
	if err != nil {
		return err
	}
	return db.ExpectAffected(res)
}

// Delete removes the record. Returns activity.ErrNotFound when no row matches.
func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transport_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return db.ExpectAffected(res)
}

func scanRecord(s db.Scanner) (*domain.Record, error) {
	var rec domain.Record
	err := s.Scan(&rec.ID, &rec.UserID, &rec.RecordedAt, &rec.Emission, &rec.Distance, &rec.VehicleType,
		&rec.FuelType, &rec.Consumption, &rec.LoadFactor, &rec.DepartureLocation, &rec.ArrivalLocation)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
