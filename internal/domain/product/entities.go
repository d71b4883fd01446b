package product

import (
	"time"

	"gorm.io/gorm"

	"lendhub-backend/pkg/apperr"
)

var (
	ErrNotFound     = apperr.NotFound("LOAN_PRODUCT_NOT_FOUND", "loan product not found")
	ErrInvalidRange = apperr.BadRequest("INVALID_AMOUNT_RANGE", "minAmount must not exceed maxAmount")
)

type LoanProduct struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID    string         `gorm:"column:product_id;type:char(32);not null;uniqueIndex"`
	Name         string         `gorm:"column:name;size:255;not null"`
	Description  string         `gorm:"column:description;type:text"`
	MinAmount    float64        `gorm:"column:min_amount;type:decimal(18,2);not null"`
	MaxAmount    float64        `gorm:"column:max_amount;type:decimal(18,2);not null"`
	MinTerm      int            `gorm:"column:min_term;not null"`
	MaxTerm      int            `gorm:"column:max_term;not null"`
	InterestRate float64        `gorm:"column:interest_rate;type:decimal(6,4);not null"`
	Currency     string         `gorm:"column:currency;size:3;not null"`
	IsActive     bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (LoanProduct) TableName() string { return "loan_products" }
