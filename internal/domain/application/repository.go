package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*LoanApplication, error)
	// GetByApplicationIDForUpdate locks the row (SELECT ... FOR UPDATE);
	// only meaningful inside a transaction.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*LoanApplication, error)
	ListByUserID(ctx context.Context, userID string) ([]LoanApplication, error)
	Save(ctx context.Context, a *LoanApplication) error
	SoftDelete(ctx context.Context, a *LoanApplication, deletedBy string) error
}
