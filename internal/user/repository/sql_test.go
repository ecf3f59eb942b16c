package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/db/dbtest"
	"carbon-footprint/backend/internal/user/domain"
)

func TestSQLRepository_CreateGetDelete(t *testing.T) {
	repo := NewSQLRepository(dbtest.Open(t))
	ctx := context.Background()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	u := &domain.User{ID: "u1", Email: "ops@example.com", Name: "Ops", CreatedAt: created}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "u1")
	if err != nil || got == nil {
		t.Fatalf("GetByID = %v, %v", got, err)
	}
	if got.Email != "ops@example.com" || got.Name != "Ops" || !got.CreatedAt.Equal(created) {
		t.Errorf("got %+v", got)
	}
	byEmail, err := repo.GetByEmail(ctx, "ops@example.com")
	if err != nil || byEmail == nil || byEmail.ID != "u1" {
		t.Errorf("GetByEmail = %v, %v", byEmail, err)
	}
	if err := repo.Create(ctx, &domain.User{ID: "u2", Email: "ops@example.com", CreatedAt: created}); err == nil {
		t.Error("duplicate email should violate the unique constraint")
	}

	if err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "u1"); !errors.Is(err, activity.ErrNotFound) {
		t.Errorf("second Delete: err = %v, want ErrNotFound", err)
	}
	missing, err := repo.GetByID(ctx, "u1")
	if err != nil || missing != nil {
		t.Errorf("GetByID after delete = %v, %v", missing, err)
	}
}
