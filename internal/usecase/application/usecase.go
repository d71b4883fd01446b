package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domainApp "lendhub-backend/internal/domain/application"
	domainAudit "lendhub-backend/internal/domain/audit"
	domainProduct "lendhub-backend/internal/domain/product"
	"lendhub-backend/internal/domain/uow"
	auditUC "lendhub-backend/internal/usecase/audit"
	"lendhub-backend/pkg/apperr"
	"lendhub-backend/pkg/id"
)

type Usecase struct {
	repo     domainApp.Repository
	products domainProduct.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(repo domainApp.Repository, products domainProduct.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, products: products, uow: tx}
}

type CreateInput struct {
	UserID             string
	BusinessID         string
	LoanProductID      string
	LoanAmount         float64
	LoanTerm           int
	Purpose            string
	PurposeDescription string
	CoApplicantIDs     []string
	SubmitImmediately  bool
}

type DTO struct {
	ApplicationID      string                `json:"application_id"`
	ApplicationNumber  string                `json:"application_number"`
	UserID             string                `json:"user_id"`
	BusinessID         string                `json:"business_id,omitempty"`
	LoanProductID      string                `json:"loan_product_id"`
	LoanAmount         float64               `json:"loan_amount"`
	LoanTerm           int                   `json:"loan_term"`
	Currency           string                `json:"currency"`
	Purpose            string                `json:"purpose,omitempty"`
	Status             domainApp.Status      `json:"status"`
	OfferStage         domainApp.OfferStage  `json:"offer_stage"`
	CoApplicantIDs     []string              `json:"co_applicant_ids,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
}

func toDTO(a *domainApp.LoanApplication) *DTO {
	var co []string
	if a.CoApplicantIDs != "" {
		_ = json.Unmarshal([]byte(a.CoApplicantIDs), &co)
	}
	return &DTO{
		ApplicationID:     a.ApplicationID,
		ApplicationNumber: a.ApplicationNumber,
		UserID:            a.UserID,
		BusinessID:        a.BusinessID,
		LoanProductID:     a.LoanProductID,
		LoanAmount:        a.LoanAmount,
		LoanTerm:          a.LoanTerm,
		Currency:          a.Currency,
		Purpose:           a.Purpose,
		Status:            a.Status,
		OfferStage:        a.OfferStage,
		CoApplicantIDs:    co,
		CreatedAt:         a.CreatedAt,
	}
}

// Create opens a new application in draft (or submitted) against an active
// loan product, checking the requested amount and term against the
// product's bounds.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*DTO, error) {
	if in.UserID == "" || len(in.UserID) != 32 {
		return nil, apperr.BadRequest("INVALID_PARAMETERS", "userId must be a 32-char id")
	}
	if in.LoanAmount <= 0 {
		return nil, apperr.BadRequest("INVALID_PARAMETERS", "loanAmount must be positive")
	}

	p, err := u.products.GetByProductID(ctx, in.LoanProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainProduct.ErrNotFound
		}
		return nil, apperr.Wrap(err, "CREATE_APPLICATION_ERROR")
	}
	if !p.IsActive {
		return nil, apperr.BadRequest("PRODUCT_INACTIVE", "loan product is not active")
	}
	if in.LoanAmount < p.MinAmount || in.LoanAmount > p.MaxAmount {
		return nil, apperr.BadRequest("AMOUNT_OUT_OF_RANGE",
			fmt.Sprintf("loanAmount must be between %.2f and %.2f", p.MinAmount, p.MaxAmount))
	}
	if in.LoanTerm < p.MinTerm || in.LoanTerm > p.MaxTerm {
		return nil, apperr.BadRequest("TERM_OUT_OF_RANGE",
			fmt.Sprintf("loanTerm must be between %d and %d months", p.MinTerm, p.MaxTerm))
	}

	now := time.Now().UTC()
	status := domainApp.StatusDraft
	var submittedAt *time.Time
	if in.SubmitImmediately {
		status = domainApp.StatusSubmitted
		submittedAt = &now
	}

	var co string
	if len(in.CoApplicantIDs) > 0 {
		b, _ := json.Marshal(in.CoApplicantIDs)
		co = string(b)
	}

	a := &domainApp.LoanApplication{
		ApplicationID:      id.NewID32(),
		ApplicationNumber:  id.NewApplicationNumber(now),
		UserID:             in.UserID,
		BusinessID:         in.BusinessID,
		LoanProductID:      p.ProductID,
		LoanAmount:         in.LoanAmount,
		LoanTerm:           in.LoanTerm,
		Currency:           p.Currency,
		Purpose:            in.Purpose,
		PurposeDescription: in.PurposeDescription,
		CoApplicantIDs:     co,
		Status:             status,
		OfferStage:         domainApp.OfferStageNone,
		LastUpdatedBy:      in.UserID,
		LastUpdatedAt:      now,
		SubmittedAt:        submittedAt,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		_, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
			LoanApplicationID: a.ApplicationID,
			UserID:            in.UserID,
			Action:            domainAudit.ActionApplicationCreated,
			AfterData:         map[string]any{"status": status, "loan_amount": in.LoanAmount},
		})
		return err
	})
	if err != nil {
		return nil, apperr.Wrap(err, "CREATE_APPLICATION_ERROR")
	}
	return toDTO(a), nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*DTO, error) {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainApp.ErrNotFound
		}
		return nil, apperr.Wrap(err, "GET_APPLICATION_ERROR")
	}
	return toDTO(a), nil
}

func (u *Usecase) ListByUser(ctx context.Context, userID string) ([]DTO, error) {
	apps, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "LIST_APPLICATIONS_ERROR")
	}
	out := make([]DTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out, nil
}

// Remove soft-deletes an application; only draft or withdrawn rows may go.
func (u *Usecase) Remove(ctx context.Context, applicationID, actorUserID string) error {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainApp.ErrNotFound
		}
		return apperr.Wrap(err, "DELETE_APPLICATION_ERROR")
	}
	if a.Status != domainApp.StatusDraft && a.Status != domainApp.StatusWithdrawn {
		return apperr.BadRequest("APPLICATION_NOT_DELETABLE", "only draft or withdrawn applications can be deleted")
	}
	if err := u.repo.SoftDelete(ctx, a, actorUserID); err != nil {
		return apperr.Wrap(err, "DELETE_APPLICATION_ERROR")
	}
	return nil
}
