package snapmock

import (
	"context"
	"sync"

	domain "lendhub-backend/internal/domain/snapshot"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock for snapshots. When CreateFn is not set,
// Create records rows in Created so tests can count snapshot inserts.
type Repo struct {
	mu      sync.Mutex
	Created []domain.Snapshot

	CreateFn                   func(ctx context.Context, s *domain.Snapshot) error
	GetBySnapshotIDFn          func(ctx context.Context, snapshotID string) (*domain.Snapshot, error)
	ListByApplicationIDFn      func(ctx context.Context, loanApplicationID string) ([]domain.Snapshot, error)
	GetLatestByApplicationIDFn func(ctx context.Context, loanApplicationID string) (*domain.Snapshot, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Snapshot) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, *s)
	return nil
}

func (m *Repo) GetBySnapshotID(ctx context.Context, snapshotID string) (*domain.Snapshot, error) {
	if m.GetBySnapshotIDFn != nil {
		return m.GetBySnapshotIDFn(ctx, snapshotID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByApplicationID(ctx context.Context, loanApplicationID string) ([]domain.Snapshot, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, loanApplicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetLatestByApplicationID(ctx context.Context, loanApplicationID string) (*domain.Snapshot, error) {
	if m.GetLatestByApplicationIDFn != nil {
		return m.GetLatestByApplicationIDFn(ctx, loanApplicationID)
	}
	return nil, context.Canceled
}
