package offermock

import (
	"context"

	domain "lendhub-backend/internal/domain/offer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, o *domain.OfferLetter) error
	GetByOfferIDFn             func(ctx context.Context, offerID string) (*domain.OfferLetter, error)
	GetByOfferIDForUpdateFn    func(ctx context.Context, offerID string) (*domain.OfferLetter, error)
	GetByEnvelopeIDFn          func(ctx context.Context, envelopeID string) (*domain.OfferLetter, error)
	GetActiveByApplicationIDFn func(ctx context.Context, loanApplicationID string) (*domain.OfferLetter, error)
	MaxVersionFn               func(ctx context.Context, loanApplicationID string) (int, error)
	ListByApplicationIDFn      func(ctx context.Context, loanApplicationID string) ([]domain.OfferLetter, error)
	SaveFn                     func(ctx context.Context, o *domain.OfferLetter) error
	SoftDeleteFn               func(ctx context.Context, o *domain.OfferLetter, deletedBy string) error
}

func (m *Repo) Create(ctx context.Context, o *domain.OfferLetter) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}
func (m *Repo) GetByOfferID(ctx context.Context, offerID string) (*domain.OfferLetter, error) {
	if m.GetByOfferIDFn != nil {
		return m.GetByOfferIDFn(ctx, offerID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByOfferIDForUpdate(ctx context.Context, offerID string) (*domain.OfferLetter, error) {
	if m.GetByOfferIDForUpdateFn != nil {
		return m.GetByOfferIDForUpdateFn(ctx, offerID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByEnvelopeID(ctx context.Context, envelopeID string) (*domain.OfferLetter, error) {
	if m.GetByEnvelopeIDFn != nil {
		return m.GetByEnvelopeIDFn(ctx, envelopeID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetActiveByApplicationID(ctx context.Context, loanApplicationID string) (*domain.OfferLetter, error) {
	if m.GetActiveByApplicationIDFn != nil {
		return m.GetActiveByApplicationIDFn(ctx, loanApplicationID)
	}
	return nil, context.Canceled
}
func (m *Repo) MaxVersion(ctx context.Context, loanApplicationID string) (int, error) {
	if m.MaxVersionFn != nil {
		return m.MaxVersionFn(ctx, loanApplicationID)
	}
	return 0, context.Canceled
}
func (m *Repo) ListByApplicationID(ctx context.Context, loanApplicationID string) ([]domain.OfferLetter, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, loanApplicationID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, o *domain.OfferLetter) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}
func (m *Repo) SoftDelete(ctx context.Context, o *domain.OfferLetter, deletedBy string) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, o, deletedBy)
	}
	return nil
}
