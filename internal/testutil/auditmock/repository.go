package auditmock

import (
	"context"
	"sync"

	domain "lendhub-backend/internal/domain/audit"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock for the audit trail. When CreateFn is not
// set, Create records entries in Entries so tests can assert what was
// appended inside a transaction.
type Repo struct {
	mu      sync.Mutex
	Entries []domain.Entry

	CreateFn             func(ctx context.Context, e *domain.Entry) error
	ListFn               func(ctx context.Context, f domain.Filter) ([]domain.Entry, error)
	CountFn              func(ctx context.Context, loanApplicationID string) (int64, error)
	CountByActionFn      func(ctx context.Context, loanApplicationID string) (map[domain.Action]int64, error)
	ListByActionPrefixFn func(ctx context.Context, loanApplicationID, prefix string) ([]domain.Entry, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, *e)
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Entry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) Count(ctx context.Context, loanApplicationID string) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, loanApplicationID)
	}
	return 0, context.Canceled
}

func (m *Repo) CountByAction(ctx context.Context, loanApplicationID string) (map[domain.Action]int64, error) {
	if m.CountByActionFn != nil {
		return m.CountByActionFn(ctx, loanApplicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByActionPrefix(ctx context.Context, loanApplicationID, prefix string) ([]domain.Entry, error) {
	if m.ListByActionPrefixFn != nil {
		return m.ListByActionPrefixFn(ctx, loanApplicationID, prefix)
	}
	return nil, context.Canceled
}
