package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByExternalID(ctx context.Context, externalID string) (*User, error)
	Save(ctx context.Context, u *User) error
}
