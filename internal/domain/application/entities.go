package application

import (
	"time"

	"gorm.io/gorm"

	"lendhub-backend/pkg/apperr"
)

var (
	ErrNotFound = apperr.NotFound("APPLICATION_NOT_FOUND", "loan application not found")
)

// OfferStage tracks the offer-letter milestone of an application. It is a
// separate, smaller state machine from Status so e-sign events never leak
// into the core lifecycle enum.
type OfferStage string

const (
	OfferStageNone    OfferStage = "none"
	OfferStageCreated OfferStage = "offer_created"
	OfferStageSent    OfferStage = "offer_sent"
	OfferStageSigned  OfferStage = "offer_signed"
)

type LoanApplication struct {
	ID                uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	ApplicationID     string `gorm:"column:application_id;type:char(32);not null;uniqueIndex:ux_applications_app_id_active"`
	ApplicationNumber string `gorm:"column:application_number;size:32;not null;index"`

	UserID        string `gorm:"column:user_id;type:char(32);not null;index:idx_applications_user_active"`
	BusinessID    string `gorm:"column:business_id;type:char(32);index"`
	LoanProductID string `gorm:"column:loan_product_id;type:char(32);not null"`

	LoanAmount         float64 `gorm:"column:loan_amount;type:decimal(18,2);not null"`
	LoanTerm           int     `gorm:"column:loan_term;not null"`
	Currency           string  `gorm:"column:currency;size:3;not null"`
	Purpose            string  `gorm:"column:purpose;size:64"`
	PurposeDescription string  `gorm:"column:purpose_description;type:text"`
	// JSON array of 32-char user ids
	CoApplicantIDs string `gorm:"column:co_applicant_ids;type:text"`

	Status          Status     `gorm:"column:status;type:varchar(32);not null;default:'draft'"`
	StatusReason    string     `gorm:"column:status_reason;type:text"`
	RejectionReason string     `gorm:"column:rejection_reason;type:text"`
	OfferStage      OfferStage `gorm:"column:offer_stage;type:varchar(32);not null;default:'none'"`

	LastUpdatedBy string    `gorm:"column:last_updated_by;type:char(32)"`
	LastUpdatedAt time.Time `gorm:"column:last_updated_at"`

	SubmittedAt *time.Time `gorm:"column:submitted_at"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at"`
	ApprovedAt  *time.Time `gorm:"column:approved_at"`
	RejectedAt  *time.Time `gorm:"column:rejected_at"`
	WithdrawnAt *time.Time `gorm:"column:withdrawn_at"`
	DisbursedAt *time.Time `gorm:"column:disbursed_at"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
	DeletedBy string         `gorm:"column:deleted_by;type:char(32)"`
}

func (LoanApplication) TableName() string { return "loan_applications" }
