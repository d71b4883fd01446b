package document

import "context"

type PersonalRepository interface {
	// Upsert replaces the live row for (userID, documentType) or inserts one.
	Upsert(ctx context.Context, d *PersonalDocument) error
	GetByUserAndType(ctx context.Context, userID, documentType string) (*PersonalDocument, error)
	ListByUserID(ctx context.Context, userID string) ([]PersonalDocument, error)
}

type BusinessRepository interface {
	Upsert(ctx context.Context, d *BusinessDocument) error
	GetByBusinessAndType(ctx context.Context, businessID, documentType string) (*BusinessDocument, error)
	ListByBusinessID(ctx context.Context, businessID string) ([]BusinessDocument, error)
}

type RequestRepository interface {
	Create(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	ListPendingByUserAndType(ctx context.Context, userID, documentType string) ([]Request, error)
	ListByApplicationID(ctx context.Context, loanApplicationID string) ([]Request, error)
	Save(ctx context.Context, r *Request) error
}
