package user

import (
	"time"

	"gorm.io/gorm"

	"lendhub-backend/pkg/apperr"
)

var (
	ErrNotFound = apperr.NotFound("USER_NOT_FOUND", "user not found")
)

// User rows are created/updated by identity-provider webhook events;
// ExternalID is the provider-side subject identifier.
type User struct {
	ID         uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	UserID     string         `gorm:"column:user_id;type:char(32);not null;uniqueIndex"`
	ExternalID string         `gorm:"column:external_id;size:64;not null;uniqueIndex"`
	Email      string         `gorm:"column:email;size:255;not null;index"`
	FirstName  string         `gorm:"column:first_name;size:128;not null"`
	LastName   string         `gorm:"column:last_name;size:128"`
	Phone      string         `gorm:"column:phone;size:32"`
	Metadata   string         `gorm:"column:metadata;type:text"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string { return "users" }

// DisplayName joins the name parts for notification templates and the
// status-history view.
func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
