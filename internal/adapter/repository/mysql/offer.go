package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	offerDomain "lendhub-backend/internal/domain/offer"
)

type OfferRepository struct{ db *gorm.DB }

func NewOfferRepository(db *gorm.DB) *OfferRepository { return &OfferRepository{db: db} }

func (r *OfferRepository) Create(ctx context.Context, o *offerDomain.OfferLetter) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepository) Save(ctx context.Context, o *offerDomain.OfferLetter) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OfferRepository) GetByOfferID(ctx context.Context, offerID string) (*offerDomain.OfferLetter, error) {
	var out offerDomain.OfferLetter
	res := r.db.WithContext(ctx).Where("offer_id = ?", offerID).First(&out)
	return &out, res.Error
}

func (r *OfferRepository) GetByOfferIDForUpdate(ctx context.Context, offerID string) (*offerDomain.OfferLetter, error) {
	var out offerDomain.OfferLetter
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("offer_id = ?", offerID).
		First(&out)
	return &out, res.Error
}

func (r *OfferRepository) GetByEnvelopeID(ctx context.Context, envelopeID string) (*offerDomain.OfferLetter, error) {
	var out offerDomain.OfferLetter
	res := r.db.WithContext(ctx).Where("envelope_id = ?", envelopeID).First(&out)
	return &out, res.Error
}

func (r *OfferRepository) GetActiveByApplicationID(ctx context.Context, loanApplicationID string) (*offerDomain.OfferLetter, error) {
	var out offerDomain.OfferLetter
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ? AND is_active = ?", loanApplicationID, true).
		Order("version DESC").
		First(&out)
	return &out, res.Error
}

func (r *OfferRepository) MaxVersion(ctx context.Context, loanApplicationID string) (int, error) {
	var v *int
	res := r.db.WithContext(ctx).
		Model(&offerDomain.OfferLetter{}).
		Unscoped(). // soft-deleted offers keep their version slot
		Select("MAX(version)").
		Where("loan_application_id = ?", loanApplicationID).
		Scan(&v)
	if res.Error != nil {
		return 0, res.Error
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}

func (r *OfferRepository) ListByApplicationID(ctx context.Context, loanApplicationID string) ([]offerDomain.OfferLetter, error) {
	var out []offerDomain.OfferLetter
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ?", loanApplicationID).
		Order("version DESC").
		Find(&out)
	return out, res.Error
}

func (r *OfferRepository) SoftDelete(ctx context.Context, o *offerDomain.OfferLetter, deletedBy string) error {
	updates := map[string]any{"deleted_by": deletedBy, "is_active": false}
	if err := r.db.WithContext(ctx).Model(o).Updates(updates).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(o).Error
}
