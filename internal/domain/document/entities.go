package document

import (
	"time"

	"gorm.io/gorm"

	"lendhub-backend/pkg/apperr"
)

var (
	ErrNotFound        = apperr.NotFound("DOCUMENT_NOT_FOUND", "document not found")
	ErrRequestNotFound = apperr.NotFound("DOCUMENT_REQUEST_NOT_FOUND", "document request not found")
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestFulfilled RequestStatus = "fulfilled"
)

// PersonalDocument is upserted by (user, type): a new upload for the same
// type replaces the live row's file fields instead of inserting a sibling.
type PersonalDocument struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	DocumentID   string         `gorm:"column:document_id;type:char(32);not null;uniqueIndex"`
	UserID       string         `gorm:"column:user_id;type:char(32);not null;index:idx_personal_docs_user_type"`
	DocumentType string         `gorm:"column:document_type;size:64;not null;index:idx_personal_docs_user_type"`
	FileName     string         `gorm:"column:file_name;size:255;not null"`
	FileURL      string         `gorm:"column:file_url;type:text;not null"`
	ContentType  string         `gorm:"column:content_type;size:128"`
	UploadedBy   string         `gorm:"column:uploaded_by;type:char(32);not null"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (PersonalDocument) TableName() string { return "personal_documents" }

type BusinessDocument struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	DocumentID   string         `gorm:"column:document_id;type:char(32);not null;uniqueIndex"`
	BusinessID   string         `gorm:"column:business_id;type:char(32);not null;index:idx_business_docs_biz_type"`
	DocumentType string         `gorm:"column:document_type;size:64;not null;index:idx_business_docs_biz_type"`
	FileName     string         `gorm:"column:file_name;size:255;not null"`
	FileURL      string         `gorm:"column:file_url;type:text;not null"`
	ContentType  string         `gorm:"column:content_type;size:128"`
	UploadedBy   string         `gorm:"column:uploaded_by;type:char(32);not null"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (BusinessDocument) TableName() string { return "business_documents" }

// Request asks a specific user for a specific document type; it flips to
// fulfilled when a matching document is uploaded.
type Request struct {
	ID                uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	RequestID         string         `gorm:"column:request_id;type:char(32);not null;uniqueIndex"`
	LoanApplicationID string         `gorm:"column:loan_application_id;type:char(32);not null;index"`
	UserID            string         `gorm:"column:user_id;type:char(32);not null;index"`
	DocumentType      string         `gorm:"column:document_type;size:64;not null"`
	Status            RequestStatus  `gorm:"column:status;type:varchar(16);not null;default:'pending'"`
	Message           string         `gorm:"column:message;type:text"`
	RequestedBy       string         `gorm:"column:requested_by;type:char(32);not null"`
	FulfilledAt       *time.Time     `gorm:"column:fulfilled_at"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Request) TableName() string { return "document_requests" }
