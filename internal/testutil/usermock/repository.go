package usermock

import (
	"context"

	domain "lendhub-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, u *domain.User) error
	GetByUserIDFn     func(ctx context.Context, userID string) (*domain.User, error)
	GetByExternalIDFn func(ctx context.Context, externalID string) (*domain.User, error)
	SaveFn            func(ctx context.Context, u *domain.User) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	if m.GetByExternalIDFn != nil {
		return m.GetByExternalIDFn(ctx, externalID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}
