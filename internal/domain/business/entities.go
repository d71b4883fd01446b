package business

import (
	"time"

	"gorm.io/gorm"

	"lendhub-backend/pkg/apperr"
)

var (
	ErrNotFound = apperr.NotFound("BUSINESS_NOT_FOUND", "business profile not found")
)

type Profile struct {
	ID                 uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	BusinessID         string         `gorm:"column:business_id;type:char(32);not null;uniqueIndex"`
	UserID             string         `gorm:"column:user_id;type:char(32);not null;index"`
	Name               string         `gorm:"column:name;size:255;not null"`
	RegistrationNumber string         `gorm:"column:registration_number;size:64"`
	Industry           string         `gorm:"column:industry;size:128"`
	Address            string         `gorm:"column:address;type:text"`
	Country            string         `gorm:"column:country;size:2"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Profile) TableName() string { return "business_profiles" }
