package offer

import "context"

type Repository interface {
	Create(ctx context.Context, o *OfferLetter) error
	GetByOfferID(ctx context.Context, offerID string) (*OfferLetter, error)
	GetByOfferIDForUpdate(ctx context.Context, offerID string) (*OfferLetter, error)
	GetByEnvelopeID(ctx context.Context, envelopeID string) (*OfferLetter, error)
	GetActiveByApplicationID(ctx context.Context, loanApplicationID string) (*OfferLetter, error)
	// MaxVersion returns 0 when the application has no offers yet
	// (soft-deleted offers still count towards versioning).
	MaxVersion(ctx context.Context, loanApplicationID string) (int, error)
	ListByApplicationID(ctx context.Context, loanApplicationID string) ([]OfferLetter, error)
	Save(ctx context.Context, o *OfferLetter) error
	SoftDelete(ctx context.Context, o *OfferLetter, deletedBy string) error
}
