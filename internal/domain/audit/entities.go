package audit

import (
	"time"

	"lendhub-backend/internal/domain/application"
	"lendhub-backend/pkg/apperr"
)

var (
	ErrNotFound = apperr.NotFound("AUDIT_ENTRY_NOT_FOUND", "audit entry not found")
)

// Action tags every audit entry. One flat table spans applications,
// documents, document requests and offer letters so a single chronological
// history exists per loan application.
type Action string

const (
	ActionApplicationCreated     Action = "application_created"
	ActionApplicationSubmitted   Action = "application_submitted"
	ActionApplicationUnderReview Action = "application_under_review"
	ActionApplicationApproved    Action = "application_approved"
	ActionApplicationRejected    Action = "application_rejected"
	ActionApplicationWithdrawn   Action = "application_withdrawn"
	ActionApplicationDisbursed   Action = "application_disbursed"

	ActionSnapshotCreated Action = "snapshot_created"

	ActionOfferLetterCreated  Action = "offer_letter_created"
	ActionOfferLetterUpdated  Action = "offer_letter_updated"
	ActionOfferLetterSent     Action = "offer_letter_sent"
	ActionOfferLetterSigned   Action = "offer_letter_signed"
	ActionOfferLetterDeclined Action = "offer_letter_declined"
	ActionOfferLetterVoided   Action = "offer_letter_voided"
	ActionOfferLetterExpired  Action = "offer_letter_expired"
	ActionOfferLetterDeleted  Action = "offer_letter_deleted"

	ActionDocumentUploaded         Action = "document_uploaded"
	ActionDocumentRequestCreated   Action = "document_request_created"
	ActionDocumentRequestFulfilled Action = "document_request_fulfilled"
)

// ActionForStatus maps a lifecycle status to its application_<status> tag.
func ActionForStatus(s application.Status) Action {
	return Action("application_" + string(s))
}

// ApplicationStatusActionPrefix selects status-change entries out of the
// flat log (as opposed to document/offer actions sharing the table).
const ApplicationStatusActionPrefix = "application_"

// Entry is append-only: never updated or deleted through normal operation,
// hence no soft-delete column.
type Entry struct {
	ID                uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	EntryID           string    `gorm:"column:entry_id;type:char(32);not null;uniqueIndex"`
	LoanApplicationID string    `gorm:"column:loan_application_id;type:char(32);not null;index:idx_audit_app_created"`
	UserID            string    `gorm:"column:user_id;type:char(32);not null"`
	Action            Action    `gorm:"column:action;type:varchar(64);not null;index"`
	Reason            string    `gorm:"column:reason;type:text"`
	Details           string    `gorm:"column:details;type:text"`
	Metadata          string    `gorm:"column:metadata;type:text"`
	BeforeData        string    `gorm:"column:before_data;type:text"`
	AfterData         string    `gorm:"column:after_data;type:text"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime;index:idx_audit_app_created"`
}

func (Entry) TableName() string { return "application_audit_trail" }
