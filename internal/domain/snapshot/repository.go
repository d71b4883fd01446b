package snapshot

import "context"

type Repository interface {
	Create(ctx context.Context, s *Snapshot) error
	GetBySnapshotID(ctx context.Context, snapshotID string) (*Snapshot, error)
	ListByApplicationID(ctx context.Context, loanApplicationID string) ([]Snapshot, error)
	GetLatestByApplicationID(ctx context.Context, loanApplicationID string) (*Snapshot, error)
}
