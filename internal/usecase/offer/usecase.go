package offer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"lendhub-backend/internal/domain/application"
	domainAudit "lendhub-backend/internal/domain/audit"
	domainOffer "lendhub-backend/internal/domain/offer"
	"lendhub-backend/internal/domain/uow"
	"lendhub-backend/internal/infrastructure/esign"
	"lendhub-backend/internal/logger"
	auditUC "lendhub-backend/internal/usecase/audit"
	"lendhub-backend/pkg/apperr"
	"lendhub-backend/pkg/id"
)

// EnvelopeService is the outbound e-signature port.
type EnvelopeService interface {
	CreateAndSend(ctx context.Context, req esign.EnvelopeRequest) (string, error)
	Void(ctx context.Context, envelopeID, reason string) error
}

// Notifier delivers the offer-sent notification; failures are logged and
// swallowed, same contract as the status engine.
type Notifier interface {
	SendOfferSent(ctx context.Context, recipientID, applicationID, offerNumber string) error
}

type Usecase struct {
	uow       uow.UnitOfWork
	offers    domainOffer.Repository
	envelopes EnvelopeService
	notifier  Notifier
}

func NewUsecase(tx uow.UnitOfWork, offers domainOffer.Repository, envelopes EnvelopeService, notifier Notifier) *Usecase {
	return &Usecase{uow: tx, offers: offers, envelopes: envelopes, notifier: notifier}
}

// Create issues a new draft offer for an approved application. At most one
// active offer may exist per application; versions are monotonic and
// soft-deleted offers keep their version slot.
func (u *Usecase) Create(ctx context.Context, in CreateOfferInput) (*OfferDTO, error) {
	if in.LoanApplicationID == "" || in.ActorUserID == "" || in.OfferAmount <= 0 {
		return nil, apperr.BadRequest("INVALID_PARAMETERS", "loanApplicationId, actor and a positive offerAmount are required")
	}

	var dto *OfferDTO
	err := u.uow.WithinApplicationTx(ctx, in.LoanApplicationID, func(r uow.Repos, a *application.LoanApplication) error {
		if a.Status != application.StatusApproved && a.OfferStage == application.OfferStageNone {
			return apperr.BadRequest("APPLICATION_NOT_APPROVED", "offer letters require an approved application")
		}

		if _, err := r.Offers.GetActiveByApplicationID(ctx, a.ApplicationID); err == nil {
			return domainOffer.ErrActiveExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		maxVersion, err := r.Offers.MaxVersion(ctx, a.ApplicationID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		o := &domainOffer.OfferLetter{
			OfferID:           id.NewID32(),
			LoanApplicationID: a.ApplicationID,
			OfferNumber:       id.NewOfferNumber(now),
			Version:           maxVersion + 1,
			OfferAmount:       in.OfferAmount,
			OfferTerm:         in.OfferTerm,
			InterestRate:      in.InterestRate,
			Currency:          in.Currency,
			RecipientEmail:    in.RecipientEmail,
			RecipientName:     in.RecipientName,
			Status:            domainOffer.StatusDraft,
			IsActive:          true,
			ExpiresAt:         in.ExpiresAt,
			CreatedBy:         in.ActorUserID,
		}
		if err := r.Offers.Create(ctx, o); err != nil {
			return err
		}

		if a.OfferStage == application.OfferStageNone {
			a.OfferStage = application.OfferStageCreated
			if err := r.Applications.Save(ctx, a); err != nil {
				return err
			}
		}

		if _, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
			LoanApplicationID: a.ApplicationID,
			UserID:            in.ActorUserID,
			Action:            domainAudit.ActionOfferLetterCreated,
			AfterData:         map[string]any{"offer_id": o.OfferID, "version": o.Version},
		}); err != nil {
			return err
		}

		dto = toDTO(o)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, apperr.Wrap(err, "CREATE_OFFER_LETTER_ERROR")
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, offerID string) (*OfferDTO, error) {
	o, err := u.offers.GetByOfferID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainOffer.ErrNotFound
		}
		return nil, apperr.Wrap(err, "GET_OFFER_LETTER_ERROR")
	}
	return toDTO(o), nil
}

func (u *Usecase) ListByApplication(ctx context.Context, applicationID string) ([]OfferDTO, error) {
	offers, err := u.offers.ListByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, apperr.Wrap(err, "LIST_OFFER_LETTERS_ERROR")
	}
	out := make([]OfferDTO, 0, len(offers))
	for i := range offers {
		out = append(out, *toDTO(&offers[i]))
	}
	return out, nil
}

// Update edits a draft offer; any other status is rejected.
func (u *Usecase) Update(ctx context.Context, offerID string, in UpdateOfferInput) (*OfferDTO, error) {
	var dto *OfferDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Offers.GetByOfferIDForUpdate(ctx, offerID)
		if err != nil {
			return err
		}
		if o.Status != domainOffer.StatusDraft {
			return domainOffer.ErrNotDraft
		}

		before := map[string]any{"offer_amount": o.OfferAmount, "offer_term": o.OfferTerm, "interest_rate": o.InterestRate}
		if in.OfferAmount != nil {
			o.OfferAmount = *in.OfferAmount
		}
		if in.OfferTerm != nil {
			o.OfferTerm = *in.OfferTerm
		}
		if in.InterestRate != nil {
			o.InterestRate = *in.InterestRate
		}
		if in.RecipientEmail != nil {
			o.RecipientEmail = *in.RecipientEmail
		}
		if in.RecipientName != nil {
			o.RecipientName = *in.RecipientName
		}
		if in.ExpiresAt != nil {
			o.ExpiresAt = in.ExpiresAt
		}
		if err := r.Offers.Save(ctx, o); err != nil {
			return err
		}

		if _, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
			LoanApplicationID: o.LoanApplicationID,
			UserID:            in.ActorUserID,
			Action:            domainAudit.ActionOfferLetterUpdated,
			BeforeData:        before,
			AfterData:         map[string]any{"offer_amount": o.OfferAmount, "offer_term": o.OfferTerm, "interest_rate": o.InterestRate},
		}); err != nil {
			return err
		}
		dto = toDTO(o)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainOffer.ErrNotFound
		}
		return nil, apperr.Wrap(err, "UPDATE_OFFER_LETTER_ERROR")
	}
	return dto, nil
}

// Remove soft-deletes a draft offer and frees the active slot.
func (u *Usecase) Remove(ctx context.Context, offerID, actorUserID string) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Offers.GetByOfferIDForUpdate(ctx, offerID)
		if err != nil {
			return err
		}
		if o.Status != domainOffer.StatusDraft {
			return domainOffer.ErrNotDraft
		}
		if err := r.Offers.SoftDelete(ctx, o, actorUserID); err != nil {
			return err
		}
		_, err = auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
			LoanApplicationID: o.LoanApplicationID,
			UserID:            actorUserID,
			Action:            domainAudit.ActionOfferLetterDeleted,
			BeforeData:        map[string]any{"offer_id": o.OfferID, "version": o.Version},
		})
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainOffer.ErrNotFound
		}
		return apperr.Wrap(err, "DELETE_OFFER_LETTER_ERROR")
	}
	return nil
}

// Send routes a draft offer through the e-sign provider. The provider call
// runs before the transaction so the row lock covers only the local writes;
// the draft guard is re-checked against the locked row, and an envelope
// whose send did not commit is voided best effort (a crash in between
// leaves it orphaned, reconciled by the unknown-envelope webhook path).
func (u *Usecase) Send(ctx context.Context, offerID, actorUserID string) (*OfferDTO, error) {
	o, err := u.offers.GetByOfferID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainOffer.ErrNotFound
		}
		return nil, apperr.Wrap(err, "SEND_OFFER_LETTER_ERROR")
	}
	if o.Status != domainOffer.StatusDraft {
		return nil, domainOffer.ErrNotDraft
	}

	envelopeID, err := u.envelopes.CreateAndSend(ctx, esign.EnvelopeRequest{
		OfferID:        o.OfferID,
		OfferNumber:    o.OfferNumber,
		RecipientEmail: o.RecipientEmail,
		RecipientName:  o.RecipientName,
		OfferAmount:    o.OfferAmount,
		Currency:       o.Currency,
		Subject:        "Loan offer " + o.OfferNumber,
	})
	if err != nil {
		return nil, apperr.Wrap(err, "SEND_ENVELOPE_ERROR")
	}

	var dto *OfferDTO
	var ownerID, appID, offerNumber string

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Offers.GetByOfferIDForUpdate(ctx, offerID)
		if err != nil {
			return err
		}
		if o.Status != domainOffer.StatusDraft {
			return domainOffer.ErrNotDraft
		}

		a, err := r.Applications.GetByApplicationID(ctx, o.LoanApplicationID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		o.Status = domainOffer.StatusSent
		o.ProviderStatus = "sent"
		o.EnvelopeID = envelopeID
		o.SentAt = &now
		if err := r.Offers.Save(ctx, o); err != nil {
			return err
		}

		a.OfferStage = application.OfferStageSent
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		if _, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
			LoanApplicationID: o.LoanApplicationID,
			UserID:            actorUserID,
			Action:            domainAudit.ActionOfferLetterSent,
			AfterData:         map[string]any{"envelope_id": envelopeID},
		}); err != nil {
			return err
		}

		ownerID, appID, offerNumber = a.UserID, a.ApplicationID, o.OfferNumber
		dto = toDTO(o)
		return nil
	})
	if err != nil {
		if verr := u.envelopes.Void(ctx, envelopeID, "send not committed"); verr != nil {
			logger.CtxWarn(ctx, "surplus envelope void failed",
				slog.String("envelope_id", envelopeID),
				slog.Any("error", verr))
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainOffer.ErrNotFound
		}
		return nil, apperr.Wrap(err, "SEND_OFFER_LETTER_ERROR")
	}

	if u.notifier != nil {
		if err := u.notifier.SendOfferSent(ctx, ownerID, appID, offerNumber); err != nil {
			logger.CtxError(ctx, "offer notification dispatch failed", err,
				slog.String("offer_id", offerID))
		}
	}
	return dto, nil
}

// Void cancels an offer that has not reached a terminal state.
func (u *Usecase) Void(ctx context.Context, offerID, actorUserID, reason string) (*OfferDTO, error) {
	var dto *OfferDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Offers.GetByOfferIDForUpdate(ctx, offerID)
		if err != nil {
			return err
		}
		if domainOffer.IsTerminal(o.Status) {
			return domainOffer.ErrTerminal
		}

		if o.EnvelopeID != "" {
			if err := u.envelopes.Void(ctx, o.EnvelopeID, reason); err != nil {
				// provider-side void is best effort; local state stays canonical
				logger.CtxWarn(ctx, "provider envelope void failed",
					slog.String("envelope_id", o.EnvelopeID),
					slog.Any("error", err))
			}
		}

		before := o.Status
		o.Status = domainOffer.StatusVoided
		o.ProviderStatus = "voided"
		o.IsActive = false
		if err := r.Offers.Save(ctx, o); err != nil {
			return err
		}

		if _, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
			LoanApplicationID: o.LoanApplicationID,
			UserID:            actorUserID,
			Action:            domainAudit.ActionOfferLetterVoided,
			Reason:            reason,
			BeforeData:        map[string]any{"status": before},
			AfterData:         map[string]any{"status": domainOffer.StatusVoided},
		}); err != nil {
			return err
		}
		dto = toDTO(o)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainOffer.ErrNotFound
		}
		return nil, apperr.Wrap(err, "VOID_OFFER_LETTER_ERROR")
	}
	return dto, nil
}

// envelopeTransition maps one provider envelope status to the local offer
// status plus the audit tag recorded for it.
type envelopeTransition struct {
	status domainOffer.Status
	action domainAudit.Action
}

var envelopeTransitions = map[string]envelopeTransition{
	"sent":      {domainOffer.StatusSent, domainAudit.ActionOfferLetterSent},
	"delivered": {domainOffer.StatusDelivered, ""},
	"viewed":    {domainOffer.StatusViewed, ""},
	"completed": {domainOffer.StatusSigned, domainAudit.ActionOfferLetterSigned},
	"declined":  {domainOffer.StatusDeclined, domainAudit.ActionOfferLetterDeclined},
	"voided":    {domainOffer.StatusVoided, domainAudit.ActionOfferLetterVoided},
	"expired":   {domainOffer.StatusExpired, domainAudit.ActionOfferLetterExpired},
}

// HandleEnvelopeEvent applies one inbound webhook event. Unknown envelope
// ids are acknowledged without mutating anything; replayed events for a
// status the offer already holds are no-ops the same way. Offers in a
// terminal status never move again, so late or out-of-order events against
// them are acknowledged and dropped.
func (u *Usecase) HandleEnvelopeEvent(ctx context.Context, ev EnvelopeEvent) (*WebhookResult, error) {
	tr, ok := envelopeTransitions[ev.Status]
	if !ok {
		logger.CtxWarn(ctx, "unrecognized envelope status, acknowledged",
			slog.String("envelope_id", ev.EnvelopeID),
			slog.String("status", ev.Status))
		return &WebhookResult{Matched: false, Message: "unrecognized envelope status " + ev.Status}, nil
	}

	if _, err := u.offers.GetByEnvelopeID(ctx, ev.EnvelopeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.CtxInfo(ctx, "webhook for unknown envelope, acknowledged",
				slog.String("envelope_id", ev.EnvelopeID))
			return &WebhookResult{Matched: false, Message: "envelope not found"}, nil
		}
		return nil, apperr.Wrap(err, "ESIGN_WEBHOOK_ERROR")
	}

	var result *WebhookResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Offers.GetByEnvelopeID(ctx, ev.EnvelopeID)
		if err != nil {
			return err
		}
		if o.Status == tr.status {
			result = &WebhookResult{Matched: true, Message: "status already applied", OfferID: o.OfferID, Status: o.Status}
			return nil
		}
		if domainOffer.IsTerminal(o.Status) {
			logger.CtxWarn(ctx, "envelope event for terminal offer dropped",
				slog.String("envelope_id", ev.EnvelopeID),
				slog.String("offer_status", string(o.Status)),
				slog.String("event_status", ev.Status))
			result = &WebhookResult{Matched: true, Message: "terminal status retained", OfferID: o.OfferID, Status: o.Status}
			return nil
		}

		at := ev.StatusChangedAt
		if at.IsZero() {
			at = time.Now().UTC()
		}
		before := o.Status
		o.Status = tr.status
		o.ProviderStatus = ev.Status
		applyEnvelopeTimestamp(o, tr.status, at)
		if domainOffer.IsTerminal(tr.status) && tr.status != domainOffer.StatusSigned {
			o.IsActive = false
		}
		if err := r.Offers.Save(ctx, o); err != nil {
			return err
		}

		if tr.status == domainOffer.StatusSigned {
			a, err := r.Applications.GetByApplicationID(ctx, o.LoanApplicationID)
			if err != nil {
				return err
			}
			a.OfferStage = application.OfferStageSigned
			if err := r.Applications.Save(ctx, a); err != nil {
				return err
			}
		}

		if tr.action != "" {
			if _, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
				LoanApplicationID: o.LoanApplicationID,
				UserID:            o.CreatedBy,
				Action:            tr.action,
				Details:           "envelope " + ev.EnvelopeID + " reported " + ev.Status,
				BeforeData:        map[string]any{"status": before},
				AfterData:         map[string]any{"status": tr.status},
			}); err != nil {
				return err
			}
		}

		result = &WebhookResult{Matched: true, Message: "envelope status applied", OfferID: o.OfferID, Status: o.Status}
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(err, "ESIGN_WEBHOOK_ERROR")
	}
	return result, nil
}

func applyEnvelopeTimestamp(o *domainOffer.OfferLetter, s domainOffer.Status, at time.Time) {
	switch s {
	case domainOffer.StatusSent:
		o.SentAt = &at
	case domainOffer.StatusDelivered:
		o.DeliveredAt = &at
	case domainOffer.StatusViewed:
		o.ViewedAt = &at
	case domainOffer.StatusSigned:
		o.SignedAt = &at
	case domainOffer.StatusDeclined:
		o.DeclinedAt = &at
	case domainOffer.StatusExpired:
		o.ExpiredAt = &at
	}
}
