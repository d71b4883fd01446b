package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"lendhub-backend/internal/domain/application"
	domainSnapshot "lendhub-backend/internal/domain/snapshot"
	"lendhub-backend/internal/domain/uow"
	"lendhub-backend/pkg/apperr"
	"lendhub-backend/pkg/id"
)

type Usecase struct{ repo domainSnapshot.Repository }

func NewUsecase(r domainSnapshot.Repository) *Usecase { return &Usecase{repo: r} }

// payload is the denormalized capture written to snapshot_data. Content is
// a historical record, not a cache: it is never read back for logic.
type payload struct {
	Application       *application.LoanApplication `json:"application"`
	BusinessProfile   any                          `json:"business_profile,omitempty"`
	PersonalDocuments any                          `json:"personal_documents,omitempty"`
	BusinessDocuments any                          `json:"business_documents,omitempty"`
	Meta              meta                         `json:"meta"`
}

type meta struct {
	CreatedBy     string    `json:"created_by"`
	ApprovalStage string    `json:"approval_stage"`
	CapturedAt    time.Time `json:"captured_at"`
}

// CreateInTx captures the application aggregate with the tx-bound repos so
// the snapshot row commits atomically with the status transition that
// triggered it. Each call inserts a new row; there is no per-stage merge.
func CreateInTx(ctx context.Context, r uow.Repos, a *application.LoanApplication, createdBy, approvalStage string) (*domainSnapshot.Snapshot, error) {
	p := payload{
		Application: a,
		Meta: meta{
			CreatedBy:     createdBy,
			ApprovalStage: approvalStage,
			CapturedAt:    time.Now().UTC(),
		},
	}

	if a.BusinessID != "" {
		biz, err := r.Businesses.GetByBusinessID(ctx, a.BusinessID)
		switch {
		case err == nil:
			p.BusinessProfile = biz
			docs, derr := r.BusinessDocs.ListByBusinessID(ctx, a.BusinessID)
			if derr != nil {
				return nil, derr
			}
			p.BusinessDocuments = docs
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	personal, err := r.PersonalDocs.ListByUserID(ctx, a.UserID)
	if err != nil {
		return nil, err
	}
	p.PersonalDocuments = personal

	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	s := &domainSnapshot.Snapshot{
		SnapshotID:        id.NewID32(),
		LoanApplicationID: a.ApplicationID,
		CreatedBy:         createdBy,
		ApprovalStage:     approvalStage,
		SnapshotData:      string(data),
	}
	if err := r.Snapshots.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *Usecase) GetSnapshot(ctx context.Context, snapshotID string) (*domainSnapshot.Snapshot, error) {
	s, err := u.repo.GetBySnapshotID(ctx, snapshotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainSnapshot.ErrNotFound
		}
		return nil, apperr.Wrap(err, "GET_SNAPSHOT_ERROR")
	}
	return s, nil
}

func (u *Usecase) GetSnapshots(ctx context.Context, loanApplicationID string) ([]domainSnapshot.Snapshot, error) {
	out, err := u.repo.ListByApplicationID(ctx, loanApplicationID)
	if err != nil {
		return nil, apperr.Wrap(err, "GET_SNAPSHOTS_ERROR")
	}
	return out, nil
}

func (u *Usecase) GetLatestSnapshot(ctx context.Context, loanApplicationID string) (*domainSnapshot.Snapshot, error) {
	s, err := u.repo.GetLatestByApplicationID(ctx, loanApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainSnapshot.ErrNotFound
		}
		return nil, apperr.Wrap(err, "GET_LATEST_SNAPSHOT_ERROR")
	}
	return s, nil
}
