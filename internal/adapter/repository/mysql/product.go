package mysql

import (
	"context"

	"gorm.io/gorm"

	productDomain "lendhub-backend/internal/domain/product"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) Create(ctx context.Context, p *productDomain.LoanProduct) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) Save(ctx context.Context, p *productDomain.LoanProduct) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductRepository) GetByProductID(ctx context.Context, productID string) (*productDomain.LoanProduct, error) {
	var out productDomain.LoanProduct
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&out)
	return &out, res.Error
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]productDomain.LoanProduct, error) {
	var out []productDomain.LoanProduct
	res := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&out)
	return out, res.Error
}

func (r *ProductRepository) SoftDelete(ctx context.Context, p *productDomain.LoanProduct) error {
	return r.db.WithContext(ctx).Delete(p).Error
}
