package repository

import (
	"context"
	"database/sql"
	"errors"

	"carbon-footprint/backend/internal/db"
	"carbon-footprint/backend/internal/packaging/domain"
)

const selectColumns = `SELECT id, user_id, recorded_at, emission, packaging_type, weight, quantity,
	pallet_count, pallet_weight, pallet_type FROM packaging_records`

type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository returns a packaging repository that uses the given db for persistence.
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
	weight, palletCount, palletWeight := nullables(rec)
	_, err := r.db.ExecContext(ctx, `INSERT INTO packaging_records
		(id, user_id, recorded_at, emission, packaging_type, weight, quantity, pallet_count, pallet_weight, pallet_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.UserID, rec.RecordedAt.UTC(), rec.Emission, rec.PackagingType, weight, rec.Quantity,
		palletCount, palletWeight, rec.PalletType)
	return err
}

// Update overwrites the record with the same id. Returns activity.ErrNotFound when no row matches.
func (r *SQLRepository) Update(ctx context.Context, rec *domain.Record) error {
	weight, palletCount, palletWeight := nullables(rec)
	res, err := r.db.ExecContext(ctx, `UPDATE packaging_records SET
		recorded_at = $2, emission = $3, packaging_type = $4, weight = $5, quantity = $6,
		pallet_count = $7, pallet_weight = $8, pallet_type = $9
		WHERE id = $1`,
		rec.ID, rec.RecordedAt.UTC(), rec.Emission, rec.PackagingType, weight, rec.Quantity,
		palletCount, palletWeight, rec.PalletType)
	if err != nil {
		return err
	}
	return db.ExpectAffected(res)
}

// Delete removes the record. Returns activity.ErrNotFound when no row matches.
func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM packaging_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return db.ExpectAffected(res)
}

func nullables(rec *domain.Record) (weight sql.NullFloat64, palletCount sql.NullInt64, palletWeight sql.NullFloat64) {
	if rec.Weight != nil {
		weight = sql.NullFloat64{Float64: *rec.Weight, Valid: true}
	}
	if rec.PalletCount != nil {
		palletCount = sql.NullInt64{Int64: int64(*rec.PalletCount), Valid: true}
	}
	if rec.PalletWeight != nil {
		palletWeight = sql.NullFloat64{Float64: *rec.PalletWeight, Valid: true}
	}
	return weight, palletCount, palletWeight
}

func scanRecord(s db.Scanner) (*domain.Record, error) {
	var (
		rec          domain.Record
		weight       sql.NullFloat64
		palletCount  sql.NullInt64
		palletWeight sql.NullFloat64
	)
	if err := s.Scan(&rec.ID, &rec.UserID, &rec.RecordedAt, &rec.Emission, &rec.PackagingType, &weight,
		&rec.Quantity, &palletCount, &palletWeight, &rec.PalletType); err != nil {
		return nil, err
	}
	if weight.Valid {
		rec.Weight = &weight.Float64
	}
	if palletCount.Valid {
		n := int(palletCount.Int64)
		rec.PalletCount = &n
	}
	if palletWeight.Valid {
		rec.PalletWeight = &palletWeight.Float64
	}
	return &rec, nil
}
