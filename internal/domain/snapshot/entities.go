package snapshot

import (
	"time"

	"lendhub-backend/pkg/apperr"
)

var (
	ErrNotFound = apperr.NotFound("SNAPSHOT_NOT_FOUND", "snapshot not found")
)

const StageLoanApproved = "loan_approved"

// Snapshot is an immutable point-in-time capture of an application's full
// aggregate state. Rows are insert-only; SnapshotData is never rewritten.
type Snapshot struct {
	ID                uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	SnapshotID        string    `gorm:"column:snapshot_id;type:char(32);not null;uniqueIndex"`
	LoanApplicationID string    `gorm:"column:loan_application_id;type:char(32);not null;index:idx_snapshots_app_created"`
	CreatedBy         string    `gorm:"column:created_by;type:char(32);not null"`
	ApprovalStage     string    `gorm:"column:approval_stage;size:64;not null"`
	SnapshotData      string    `gorm:"column:snapshot_data;type:longtext;not null"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime;index:idx_snapshots_app_created"`
}

func (Snapshot) TableName() string { return "loan_application_snapshots" }
