package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *LoanProduct) error
	GetByProductID(ctx context.Context, productID string) (*LoanProduct, error)
	ListActive(ctx context.Context) ([]LoanProduct, error)
	Save(ctx context.Context, p *LoanProduct) error
	SoftDelete(ctx context.Context, p *LoanProduct) error
}
