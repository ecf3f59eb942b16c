package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/db/dbtest"
	"carbon-footprint/backend/internal/printing/domain"
)

func TestSQLRepository_CRUD(t *testing.T) {
	conn := dbtest.Open(t)
	dbtest.InsertUser(t, conn, "u1")
	repo := NewSQLRepository(conn)
	ctx := context.Background()
	at := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

	rec := &domain.Record{
		Meta:      activity.Meta{ID: "r1", UserID: "u1", RecordedAt: at, Emission: 3},
		Type:      "brochure",
		PrintType: "offset",
		PaperType: "recycled",
		Quantity:  1000,
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(ctx, "r1")
	if err != nil || got == nil {
		t.Fatalf("GetByID = %v, %v", got, err)
	}
	if got.PaperType != "recycled" || got.PrintType != "offset" || got.Quantity != 1000 || got.Emission != 3 || !got.RecordedAt.Equal(at) {
		t.Errorf("got %+v", got)
	}

	got.Emission = 1
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	list, err := repo.ListByUser(ctx, "u1")
	if err != nil || len(list) != 1 || list[0].Emission != 1 {
		t.Fatalf("ListByUser = %v, %v", list, err)
	}
	all, err := repo.ListAll(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListAll = %v, %v", all, err)
	}

	if err := repo.Delete(ctx, "r1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "r1"); !errors.Is(err, activity.ErrNotFound) {
		t.Errorf("second Delete: err = %v, want ErrNotFound", err)
	}
	if err := repo.Update(ctx, got); !errors.Is(err, activity.ErrNotFound) {
		t.Errorf("Update after delete: err = %v, want ErrNotFound", err)
	}
	missing, err := repo.GetByID(ctx, "r1")
	if err != nil || missing != nil {
		t.Errorf("GetByID after delete = %v, %v", missing, err)
	}
}
