package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	docDomain "lendhub-backend/internal/domain/document"
)

type PersonalDocRepository struct{ db *gorm.DB }

func NewPersonalDocRepository(db *gorm.DB) *PersonalDocRepository {
	return &PersonalDocRepository{db: db}
}

func (r *PersonalDocRepository) Upsert(ctx context.Context, d *docDomain.PersonalDocument) error {
	var existing docDomain.PersonalDocument
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND document_type = ?", d.UserID, d.DocumentType).
		First(&existing)
	switch {
	case res.Error == nil:
		existing.FileName = d.FileName
		existing.FileURL = d.FileURL
		existing.ContentType = d.ContentType
		existing.UploadedBy = d.UploadedBy
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return err
		}
		*d = existing
		return nil
	case errors.Is(res.Error, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(d).Error
	default:
		return res.Error
	}
}

func (r *PersonalDocRepository) GetByUserAndType(ctx context.Context, userID, documentType string) (*docDomain.PersonalDocument, error) {
	var out docDomain.PersonalDocument
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND document_type = ?", userID, documentType).
		First(&out)
	return &out, res.Error
}

func (r *PersonalDocRepository) ListByUserID(ctx context.Context, userID string) ([]docDomain.PersonalDocument, error) {
	var out []docDomain.PersonalDocument
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("document_type ASC").
		Find(&out)
	return out, res.Error
}

type BusinessDocRepository struct{ db *gorm.DB }

func NewBusinessDocRepository(db *gorm.DB) *BusinessDocRepository {
	return &BusinessDocRepository{db: db}
}

func (r *BusinessDocRepository) Upsert(ctx context.Context, d *docDomain.BusinessDocument) error {
	var existing docDomain.BusinessDocument
	res := r.db.WithContext(ctx).
		Where("business_id = ? AND document_type = ?", d.BusinessID, d.DocumentType).
		First(&existing)
	switch {
	case res.Error == nil:
		existing.FileName = d.FileName
		existing.FileURL = d.FileURL
		existing.ContentType = d.ContentType
		existing.UploadedBy = d.UploadedBy
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return err
		}
		*d = existing
		return nil
	case errors.Is(res.Error, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(d).Error
	default:
		return res.Error
	}
}

func (r *BusinessDocRepository) GetByBusinessAndType(ctx context.Context, businessID, documentType string) (*docDomain.BusinessDocument, error) {
	var out docDomain.BusinessDocument
	res := r.db.WithContext(ctx).
		Where("business_id = ? AND document_type = ?", businessID, documentType).
		First(&out)
	return &out, res.Error
}

func (r *BusinessDocRepository) ListByBusinessID(ctx context.Context, businessID string) ([]docDomain.BusinessDocument, error) {
	var out []docDomain.BusinessDocument
	res := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("document_type ASC").
		Find(&out)
	return out, res.Error
}

type DocumentRequestRepository struct{ db *gorm.DB }

func NewDocumentRequestRepository(db *gorm.DB) *DocumentRequestRepository {
	return &DocumentRequestRepository{db: db}
}

func (r *DocumentRequestRepository) Create(ctx context.Context, req *docDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *DocumentRequestRepository) Save(ctx context.Context, req *docDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *DocumentRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*docDomain.Request, error) {
	var out docDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *DocumentRequestRepository) ListPendingByUserAndType(ctx context.Context, userID, documentType string) ([]docDomain.Request, error) {
	var out []docDomain.Request
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND document_type = ? AND status = ?", userID, documentType, docDomain.RequestPending).
		Order("created_at ASC").
		Find(&out)
	return out, res.Error
}

func (r *DocumentRequestRepository) ListByApplicationID(ctx context.Context, loanApplicationID string) ([]docDomain.Request, error) {
	var out []docDomain.Request
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ?", loanApplicationID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
