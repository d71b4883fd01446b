package docmock

import (
	"context"

	domain "lendhub-backend/internal/domain/document"
)

var (
	_ domain.PersonalRepository = (*PersonalRepo)(nil)
	_ domain.BusinessRepository = (*BusinessRepo)(nil)
	_ domain.RequestRepository  = (*RequestRepo)(nil)
)

// PersonalRepo is a function-backed mock for personal documents.
type PersonalRepo struct {
	UpsertFn           func(ctx context.Context, d *domain.PersonalDocument) error
	GetByUserAndTypeFn func(ctx context.Context, userID, documentType string) (*domain.PersonalDocument, error)
	ListByUserIDFn     func(ctx context.Context, userID string) ([]domain.PersonalDocument, error)
}

func (m *PersonalRepo) Upsert(ctx context.Context, d *domain.PersonalDocument) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, d)
	}
	return nil
}
func (m *PersonalRepo) GetByUserAndType(ctx context.Context, userID, documentType string) (*domain.PersonalDocument, error) {
	if m.GetByUserAndTypeFn != nil {
		return m.GetByUserAndTypeFn(ctx, userID, documentType)
	}
	return nil, context.Canceled
}
func (m *PersonalRepo) ListByUserID(ctx context.Context, userID string) ([]domain.PersonalDocument, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

// BusinessRepo is a function-backed mock for business documents.
type BusinessRepo struct {
	UpsertFn               func(ctx context.Context, d *domain.BusinessDocument) error
	GetByBusinessAndTypeFn func(ctx context.Context, businessID, documentType string) (*domain.BusinessDocument, error)
	ListByBusinessIDFn     func(ctx context.Context, businessID string) ([]domain.BusinessDocument, error)
}

func (m *BusinessRepo) Upsert(ctx context.Context, d *domain.BusinessDocument) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, d)
	}
	return nil
}
func (m *BusinessRepo) GetByBusinessAndType(ctx context.Context, businessID, documentType string) (*domain.BusinessDocument, error) {
	if m.GetByBusinessAndTypeFn != nil {
		return m.GetByBusinessAndTypeFn(ctx, businessID, documentType)
	}
	return nil, context.Canceled
}
func (m *BusinessRepo) ListByBusinessID(ctx context.Context, businessID string) ([]domain.BusinessDocument, error) {
	if m.ListByBusinessIDFn != nil {
		return m.ListByBusinessIDFn(ctx, businessID)
	}
	return nil, nil
}

// RequestRepo is a function-backed mock for document requests.
type RequestRepo struct {
	CreateFn                   func(ctx context.Context, r *domain.Request) error
	GetByRequestIDFn           func(ctx context.Context, requestID string) (*domain.Request, error)
	ListPendingByUserAndTypeFn func(ctx context.Context, userID, documentType string) ([]domain.Request, error)
	ListByApplicationIDFn      func(ctx context.Context, loanApplicationID string) ([]domain.Request, error)
	SaveFn                     func(ctx context.Context, r *domain.Request) error
}

func (m *RequestRepo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *RequestRepo) GetByRequestID(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *RequestRepo) ListPendingByUserAndType(ctx context.Context, userID, documentType string) ([]domain.Request, error) {
	if m.ListPendingByUserAndTypeFn != nil {
		return m.ListPendingByUserAndTypeFn(ctx, userID, documentType)
	}
	return nil, nil
}
func (m *RequestRepo) ListByApplicationID(ctx context.Context, loanApplicationID string) ([]domain.Request, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, loanApplicationID)
	}
	return nil, nil
}
func (m *RequestRepo) Save(ctx context.Context, r *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
