package mysql

import (
	"context"

	"gorm.io/gorm"

	bizDomain "lendhub-backend/internal/domain/business"
)

type BusinessRepository struct{ db *gorm.DB }

func NewBusinessRepository(db *gorm.DB) *BusinessRepository { return &BusinessRepository{db: db} }

func (r *BusinessRepository) Create(ctx context.Context, p *bizDomain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *BusinessRepository) Save(ctx context.Context, p *bizDomain.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *BusinessRepository) GetByBusinessID(ctx context.Context, businessID string) (*bizDomain.Profile, error) {
	var out bizDomain.Profile
	res := r.db.WithContext(ctx).Where("business_id = ?", businessID).First(&out)
	return &out, res.Error
}

func (r *BusinessRepository) GetByUserID(ctx context.Context, userID string) (*bizDomain.Profile, error) {
	var out bizDomain.Profile
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}
