package productmock

import (
	"context"

	domain "lendhub-backend/internal/domain/product"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, p *domain.LoanProduct) error
	GetByProductIDFn func(ctx context.Context, productID string) (*domain.LoanProduct, error)
	ListActiveFn     func(ctx context.Context) ([]domain.LoanProduct, error)
	SaveFn           func(ctx context.Context, p *domain.LoanProduct) error
	SoftDeleteFn     func(ctx context.Context, p *domain.LoanProduct) error
}

func (m *Repo) Create(ctx context.Context, p *domain.LoanProduct) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *Repo) GetByProductID(ctx context.Context, productID string) (*domain.LoanProduct, error) {
	if m.GetByProductIDFn != nil {
		return m.GetByProductIDFn(ctx, productID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListActive(ctx context.Context) ([]domain.LoanProduct, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, p *domain.LoanProduct) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
func (m *Repo) SoftDelete(ctx context.Context, p *domain.LoanProduct) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, p)
	}
	return nil
}
