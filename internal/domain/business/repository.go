package business

import "context"

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByBusinessID(ctx context.Context, businessID string) (*Profile, error)
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
}
