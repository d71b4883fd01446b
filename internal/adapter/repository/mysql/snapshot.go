package mysql

import (
	"context"

	"gorm.io/gorm"

	snapDomain "lendhub-backend/internal/domain/snapshot"
)

type SnapshotRepository struct{ db *gorm.DB }

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository { return &SnapshotRepository{db: db} }

func (r *SnapshotRepository) Create(ctx context.Context, s *snapDomain.Snapshot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SnapshotRepository) GetBySnapshotID(ctx context.Context, snapshotID string) (*snapDomain.Snapshot, error) {
	var out snapDomain.Snapshot
	res := r.db.WithContext(ctx).Where("snapshot_id = ?", snapshotID).First(&out)
	return &out, res.Error
}

func (r *SnapshotRepository) ListByApplicationID(ctx context.Context, loanApplicationID string) ([]snapDomain.Snapshot, error) {
	var out []snapDomain.Snapshot
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ?", loanApplicationID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *SnapshotRepository) GetLatestByApplicationID(ctx context.Context, loanApplicationID string) (*snapDomain.Snapshot, error) {
	var out snapDomain.Snapshot
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ?", loanApplicationID).
		Order("created_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}
