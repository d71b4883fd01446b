package bizmock

import (
	"context"

	domain "lendhub-backend/internal/domain/business"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, p *domain.Profile) error
	GetByBusinessIDFn func(ctx context.Context, businessID string) (*domain.Profile, error)
	GetByUserIDFn     func(ctx context.Context, userID string) (*domain.Profile, error)
	SaveFn            func(ctx context.Context, p *domain.Profile) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Profile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *Repo) GetByBusinessID(ctx context.Context, businessID string) (*domain.Profile, error) {
	if m.GetByBusinessIDFn != nil {
		return m.GetByBusinessIDFn(ctx, businessID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, p *domain.Profile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
