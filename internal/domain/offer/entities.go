package offer

import (
	"time"

	"gorm.io/gorm"

	"lendhub-backend/pkg/apperr"
)

var (
	ErrNotFound     = apperr.NotFound("OFFER_LETTER_NOT_FOUND", "offer letter not found")
	ErrActiveExists = apperr.BadRequest("ACTIVE_OFFER_EXISTS", "an active offer letter already exists for this application")
	ErrNotDraft     = apperr.BadRequest("OFFER_NOT_DRAFT", "offer letter is not in draft status")
	ErrTerminal     = apperr.BadRequest("OFFER_TERMINAL_STATUS", "offer letter is in a terminal status")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusViewed    Status = "viewed"
	StatusSigned    Status = "signed"
	StatusDeclined  Status = "declined"
	StatusVoided    Status = "voided"
	StatusExpired   Status = "expired"
)

// IsTerminal reports whether s permits no further provider or API-driven
// transitions.
func IsTerminal(s Status) bool {
	switch s {
	case StatusSigned, StatusDeclined, StatusVoided, StatusExpired:
		return true
	}
	return false
}

type OfferLetter struct {
	ID                uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	OfferID           string `gorm:"column:offer_id;type:char(32);not null;uniqueIndex"`
	LoanApplicationID string `gorm:"column:loan_application_id;type:char(32);not null;index:idx_offers_app_active"`
	OfferNumber       string `gorm:"column:offer_number;size:32;not null"`
	// Version is monotonic per application, starting at 1.
	Version int `gorm:"column:version;not null"`

	OfferAmount  float64 `gorm:"column:offer_amount;type:decimal(18,2);not null"`
	OfferTerm    int     `gorm:"column:offer_term;not null"`
	InterestRate float64 `gorm:"column:interest_rate;type:decimal(6,4);not null"`
	Currency     string  `gorm:"column:currency;size:3;not null"`

	RecipientEmail string `gorm:"column:recipient_email;size:255;not null"`
	RecipientName  string `gorm:"column:recipient_name;size:255"`

	Status Status `gorm:"column:status;type:varchar(32);not null;default:'draft'"`
	// ProviderStatus mirrors the e-sign provider's envelope status string.
	ProviderStatus string `gorm:"column:provider_status;size:32"`
	EnvelopeID     string `gorm:"column:envelope_id;size:64;index"`

	IsActive  bool       `gorm:"column:is_active;not null;default:true;index:idx_offers_app_active"`
	ExpiresAt *time.Time `gorm:"column:expires_at"`

	SentAt      *time.Time `gorm:"column:sent_at"`
	DeliveredAt *time.Time `gorm:"column:delivered_at"`
	ViewedAt    *time.Time `gorm:"column:viewed_at"`
	SignedAt    *time.Time `gorm:"column:signed_at"`
	DeclinedAt  *time.Time `gorm:"column:declined_at"`
	ExpiredAt   *time.Time `gorm:"column:expired_at"`

	CreatedBy string         `gorm:"column:created_by;type:char(32);not null"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
	DeletedBy string         `gorm:"column:deleted_by;type:char(32)"`
}

func (OfferLetter) TableName() string { return "offer_letters" }
