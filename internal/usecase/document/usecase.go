package document

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	domainAudit "lendhub-backend/internal/domain/audit"
	domainDoc "lendhub-backend/internal/domain/document"
	"lendhub-backend/internal/domain/uow"
	"lendhub-backend/internal/logger"
	auditUC "lendhub-backend/internal/usecase/audit"
	"lendhub-backend/pkg/apperr"
	"lendhub-backend/pkg/id"
)

// Notifier delivers document-request notifications; failures are logged
// and swallowed.
type Notifier interface {
	SendDocumentRequest(ctx context.Context, recipientID, applicationID, documentType, message string) error
}

type Usecase struct {
	uow      uow.UnitOfWork
	requests domainDoc.RequestRepository
	notifier Notifier
}

func NewUsecase(tx uow.UnitOfWork, requests domainDoc.RequestRepository, notifier Notifier) *Usecase {
	return &Usecase{uow: tx, requests: requests, notifier: notifier}
}

type CreateRequestInput struct {
	LoanApplicationID string
	UserID            string
	DocumentType      string
	Message           string
	RequestedBy       string
}

// CreateRequest opens a pending request for one document type from one user.
func (u *Usecase) CreateRequest(ctx context.Context, in CreateRequestInput) (*domainDoc.Request, error) {
	if in.LoanApplicationID == "" || in.UserID == "" || in.DocumentType == "" || in.RequestedBy == "" {
		return nil, apperr.BadRequest("INVALID_PARAMETERS", "loanApplicationId, userId, documentType and requestedBy are required")
	}

	req := &domainDoc.Request{
		RequestID:         id.NewID32(),
		LoanApplicationID: in.LoanApplicationID,
		UserID:            in.UserID,
		DocumentType:      in.DocumentType,
		Status:            domainDoc.RequestPending,
		Message:           in.Message,
		RequestedBy:       in.RequestedBy,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.DocumentRequests.Create(ctx, req); err != nil {
			return err
		}
		_, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
			LoanApplicationID: in.LoanApplicationID,
			UserID:            in.RequestedBy,
			Action:            domainAudit.ActionDocumentRequestCreated,
			AfterData:         map[string]any{"document_type": in.DocumentType, "requested_from": in.UserID},
		})
		return err
	})
	if err != nil {
		return nil, apperr.Wrap(err, "CREATE_DOCUMENT_REQUEST_ERROR")
	}

	if u.notifier != nil {
		if err := u.notifier.SendDocumentRequest(ctx, in.UserID, in.LoanApplicationID, in.DocumentType, in.Message); err != nil {
			logger.CtxError(ctx, "document request notification failed", err,
				slog.String("request_id", req.RequestID))
		}
	}
	return req, nil
}

type UploadPersonalInput struct {
	UserID            string
	DocumentType      string
	FileName          string
	FileURL           string
	ContentType       string
	UploadedBy        string
	LoanApplicationID string // optional: for the audit trail
}

// UploadPersonal upserts the user's document of the given type and
// fulfills any pending requests matching it.
func (u *Usecase) UploadPersonal(ctx context.Context, in UploadPersonalInput) (*domainDoc.PersonalDocument, error) {
	if in.UserID == "" || in.DocumentType == "" || in.FileURL == "" {
		return nil, apperr.BadRequest("INVALID_PARAMETERS", "userId, documentType and fileUrl are required")
	}

	d := &domainDoc.PersonalDocument{
		DocumentID:   id.NewID32(),
		UserID:       in.UserID,
		DocumentType: in.DocumentType,
		FileName:     in.FileName,
		FileURL:      in.FileURL,
		ContentType:  in.ContentType,
		UploadedBy:   in.UploadedBy,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.PersonalDocs.Upsert(ctx, d); err != nil {
			return err
		}

		pending, err := r.DocumentRequests.ListPendingByUserAndType(ctx, in.UserID, in.DocumentType)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		for i := range pending {
			req := &pending[i]
			req.Status = domainDoc.RequestFulfilled
			req.FulfilledAt = &now
			if err := r.DocumentRequests.Save(ctx, req); err != nil {
				return err
			}
			if _, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
				LoanApplicationID: req.LoanApplicationID,
				UserID:            in.UploadedBy,
				Action:            domainAudit.ActionDocumentRequestFulfilled,
				AfterData:         map[string]any{"document_type": in.DocumentType, "document_id": d.DocumentID},
			}); err != nil {
				return err
			}
		}

		if in.LoanApplicationID != "" {
			if _, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
				LoanApplicationID: in.LoanApplicationID,
				UserID:            in.UploadedBy,
				Action:            domainAudit.ActionDocumentUploaded,
				AfterData:         map[string]any{"document_type": in.DocumentType, "document_id": d.DocumentID},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(err, "UPLOAD_DOCUMENT_ERROR")
	}
	return d, nil
}

type UploadBusinessInput struct {
	BusinessID        string
	DocumentType      string
	FileName          string
	FileURL           string
	ContentType       string
	UploadedBy        string
	LoanApplicationID string
}

func (u *Usecase) UploadBusiness(ctx context.Context, in UploadBusinessInput) (*domainDoc.BusinessDocument, error) {
	if in.BusinessID == "" || in.DocumentType == "" || in.FileURL == "" {
		return nil, apperr.BadRequest("INVALID_PARAMETERS", "businessId, documentType and fileUrl are required")
	}

	d := &domainDoc.BusinessDocument{
		DocumentID:   id.NewID32(),
		BusinessID:   in.BusinessID,
		DocumentType: in.DocumentType,
		FileName:     in.FileName,
		FileURL:      in.FileURL,
		ContentType:  in.ContentType,
		UploadedBy:   in.UploadedBy,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.BusinessDocs.Upsert(ctx, d); err != nil {
			return err
		}
		if in.LoanApplicationID != "" {
			if _, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
				LoanApplicationID: in.LoanApplicationID,
				UserID:            in.UploadedBy,
				Action:            domainAudit.ActionDocumentUploaded,
				AfterData:         map[string]any{"document_type": in.DocumentType, "document_id": d.DocumentID},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(err, "UPLOAD_DOCUMENT_ERROR")
	}
	return d, nil
}

func (u *Usecase) GetRequest(ctx context.Context, requestID string) (*domainDoc.Request, error) {
	req, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainDoc.ErrRequestNotFound
		}
		return nil, apperr.Wrap(err, "GET_DOCUMENT_REQUEST_ERROR")
	}
	return req, nil
}

func (u *Usecase) ListRequestsByApplication(ctx context.Context, loanApplicationID string) ([]domainDoc.Request, error) {
	out, err := u.requests.ListByApplicationID(ctx, loanApplicationID)
	if err != nil {
		return nil, apperr.Wrap(err, "LIST_DOCUMENT_REQUESTS_ERROR")
	}
	return out, nil
}
