package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	snapDomain "lendhub-backend/internal/domain/snapshot"
	"lendhub-backend/pkg/id"
)

func TestSnapshotCreateAndGetLatest(t *testing.T) {
	db := openTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	appID := id.NewID32()
	actor := id.NewID32()

	older := &snapDomain.Snapshot{
		SnapshotID:        id.NewID32(),
		LoanApplicationID: appID,
		CreatedBy:         actor,
		ApprovalStage:     "loan_approved",
		SnapshotData:      `{"application":{"status":"approved"}}`,
	}
	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("Create older: %v", err)
	}
	// Force distinct created_at so ordering is deterministic
	if err := db.Model(older).Update("created_at", time.Now().UTC().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	latest := &snapDomain.Snapshot{
		SnapshotID:        id.NewID32(),
		LoanApplicationID: appID,
		CreatedBy:         actor,
		ApprovalStage:     "loan_approved",
		SnapshotData:      `{"application":{"status":"disbursed"}}`,
	}
	if err := repo.Create(ctx, latest); err != nil {
		t.Fatalf("Create latest: %v", err)
	}

	got, err := repo.GetLatestByApplicationID(ctx, appID)
	if err != nil {
		t.Fatalf("GetLatestByApplicationID: %v", err)
	}
	if got.SnapshotID != latest.SnapshotID {
		t.Errorf("unexpected latest snapshot: %+v", got)
	}

	all, err := repo.ListByApplicationID(ctx, appID)
	if err != nil {
		t.Fatalf("ListByApplicationID: %v", err)
	}
	if len(all) != 2 || all[0].SnapshotID != latest.SnapshotID {
		t.Fatalf("unexpected order: %+v", all)
	}
}

func TestSnapshotGetBySnapshotID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewSnapshotRepository(db)

	_, err := repo.GetBySnapshotID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
