package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"lendhub-backend/internal/domain/application"
	domainAudit "lendhub-backend/internal/domain/audit"
	domainSnapshot "lendhub-backend/internal/domain/snapshot"
	"lendhub-backend/internal/domain/uow"
	domainUser "lendhub-backend/internal/domain/user"
	"lendhub-backend/internal/logger"
	auditUC "lendhub-backend/internal/usecase/audit"
	snapshotUC "lendhub-backend/internal/usecase/snapshot"
	"lendhub-backend/pkg/apperr"
)

// Notifier delivers the post-commit status notification. Errors from it are
// logged and swallowed: a successful transition is never undone by a
// delivery failure.
type Notifier interface {
	SendStatusUpdate(ctx context.Context, recipientID, applicationID, previousStatus, newStatus, reason string) error
}

// Cache holds the GetStatus projection. All methods are best-effort from
// the engine's point of view.
type Cache interface {
	Get(ctx context.Context, applicationID string, out any) (bool, error)
	Set(ctx context.Context, applicationID string, v any) error
	Invalidate(ctx context.Context, applicationID string) error
}

type Usecase struct {
	uow      uow.UnitOfWork
	users    domainUser.Repository
	apps     application.Repository
	auditLog domainAudit.Repository
	notifier Notifier
	cache    Cache
}

func NewUsecase(tx uow.UnitOfWork, users domainUser.Repository, apps application.Repository, auditLog domainAudit.Repository, notifier Notifier, cache Cache) *Usecase {
	return &Usecase{uow: tx, users: users, apps: apps, auditLog: auditLog, notifier: notifier, cache: cache}
}

// ValidateTransition reports validity and always returns the outgoing set,
// so callers can render available actions either way.
func (u *Usecase) ValidateTransition(current, requested application.Status) (bool, []application.Status) {
	return application.ValidateTransition(current, requested)
}

func invalidTransitionErr(current, requested application.Status, allowed []application.Status) error {
	return apperr.BadRequest("INVALID_TRANSITION",
		fmt.Sprintf("cannot transition from %s to %s", current, requested)).
		WithDetails(map[string]any{"allowed_transitions": allowed})
}

func (u *Usecase) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*UpdateStatusResult, error) {
	if !application.IsValidStatus(in.NewStatus) {
		return nil, apperr.BadRequest("INVALID_STATUS", "unknown status: "+string(in.NewStatus))
	}
	if in.ActorUserID == "" {
		return nil, apperr.BadRequest("INVALID_PARAMETERS", "actor user id is required")
	}

	actor, err := u.users.GetByUserID(ctx, in.ActorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrNotFound
		}
		return nil, apperr.Wrap(err, "UPDATE_STATUS_ERROR")
	}

	var result *UpdateStatusResult

	// Status write, audit append and conditional snapshot are one
	// transaction; the row lock serializes concurrent transitions so
	// validation always runs against committed state.
	err = u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *application.LoanApplication) error {
		previous := a.Status
		valid, allowed := application.ValidateTransition(previous, in.NewStatus)
		if !valid {
			return invalidTransitionErr(previous, in.NewStatus, allowed)
		}

		now := time.Now().UTC()
		a.Status = in.NewStatus
		a.StatusReason = in.Reason
		a.LastUpdatedBy = actor.UserID
		a.LastUpdatedAt = now
		applyStageTimestamp(a, in.NewStatus, now)
		if in.NewStatus == application.StatusRejected {
			a.RejectionReason = in.RejectionReason
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		entry, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
			LoanApplicationID: a.ApplicationID,
			UserID:            actor.UserID,
			Action:            domainAudit.ActionForStatus(in.NewStatus),
			Reason:            in.Reason,
			Metadata:          in.Metadata,
			BeforeData:        map[string]any{"status": previous},
			AfterData:         map[string]any{"status": in.NewStatus},
		})
		if err != nil {
			return err
		}

		snapshotCreated := false
		if in.NewStatus == application.StatusApproved {
			snap, err := snapshotUC.CreateInTx(ctx, r, a, actor.UserID, domainSnapshot.StageLoanApproved)
			if err != nil {
				return err
			}
			if _, err := auditUC.Append(ctx, r.Audit, auditUC.LogActionInput{
				LoanApplicationID: a.ApplicationID,
				UserID:            actor.UserID,
				Action:            domainAudit.ActionSnapshotCreated,
				Details:           "snapshot " + snap.SnapshotID + " at stage " + snap.ApprovalStage,
			}); err != nil {
				return err
			}
			snapshotCreated = true
		}

		result = &UpdateStatusResult{
			ApplicationID:      a.ApplicationID,
			PreviousStatus:     previous,
			NewStatus:          in.NewStatus,
			Message:            fmt.Sprintf("application status updated from %s to %s", previous, in.NewStatus),
			SnapshotCreated:    snapshotCreated,
			AuditEntryID:       entry.EntryID,
			AllowedTransitions: application.AllowedTransitions(in.NewStatus),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, apperr.Wrap(err, "UPDATE_STATUS_ERROR")
	}

	u.afterCommit(ctx, in, result)
	return result, nil
}

// afterCommit runs the side effects that must never roll back the
// transition: cache invalidation and notification dispatch.
func (u *Usecase) afterCommit(ctx context.Context, in UpdateStatusInput, res *UpdateStatusResult) {
	if u.cache != nil {
		if err := u.cache.Invalidate(ctx, in.ApplicationID); err != nil {
			logger.CtxWarn(ctx, "status cache invalidation failed",
				slog.String("application_id", in.ApplicationID),
				slog.Any("error", err))
		}
	}
	if u.notifier != nil {
		owner, err := u.ownerOf(ctx, in.ApplicationID)
		if err == nil {
			err = u.notifier.SendStatusUpdate(ctx, owner, in.ApplicationID,
				string(res.PreviousStatus), string(res.NewStatus), in.Reason)
		}
		if err != nil {
			logger.CtxError(ctx, "status notification dispatch failed", err,
				slog.String("application_id", in.ApplicationID))
		}
	}
}

func (u *Usecase) ownerOf(ctx context.Context, applicationID string) (string, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return "", err
	}
	return a.UserID, nil
}

func (u *Usecase) GetStatus(ctx context.Context, applicationID string) (*StatusDTO, error) {
	if u.cache != nil {
		var cached StatusDTO
		if hit, err := u.cache.Get(ctx, applicationID, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, apperr.Wrap(err, "GET_STATUS_ERROR")
	}

	dto := &StatusDTO{
		ApplicationID:      a.ApplicationID,
		Status:             a.Status,
		StatusReason:       a.StatusReason,
		LastUpdatedBy:      a.LastUpdatedBy,
		LastUpdatedAt:      a.LastUpdatedAt,
		AllowedTransitions: application.AllowedTransitions(a.Status),
	}
	if u.cache != nil {
		if err := u.cache.Set(ctx, applicationID, dto); err != nil {
			logger.CtxWarn(ctx, "status cache set failed",
				slog.String("application_id", applicationID),
				slog.Any("error", err))
		}
	}
	return dto, nil
}

// GetStatusHistory returns only application-level status changes out of the
// flat audit table, newest first, enriched with actor name and email.
func (u *Usecase) GetStatusHistory(ctx context.Context, applicationID string) ([]HistoryEntry, error) {
	if _, err := u.apps.GetByApplicationID(ctx, applicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, apperr.Wrap(err, "GET_STATUS_HISTORY_ERROR")
	}

	entries, err := u.auditLog.ListByActionPrefix(ctx, applicationID, domainAudit.ApplicationStatusActionPrefix)
	if err != nil {
		return nil, apperr.Wrap(err, "GET_STATUS_HISTORY_ERROR")
	}

	actors := map[string]*domainUser.User{}
	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		h := HistoryEntry{
			EntryID:   e.EntryID,
			Action:    string(e.Action),
			Reason:    e.Reason,
			ActorID:   e.UserID,
			CreatedAt: e.CreatedAt,
		}
		actor, ok := actors[e.UserID]
		if !ok {
			if actor, err = u.users.GetByUserID(ctx, e.UserID); err != nil {
				actor = nil
			}
			actors[e.UserID] = actor
		}
		if actor != nil {
			h.ActorName = actor.DisplayName()
			h.ActorMail = actor.Email
		}
		out = append(out, h)
	}
	return out, nil
}

func applyStageTimestamp(a *application.LoanApplication, s application.Status, now time.Time) {
	switch s {
	case application.StatusSubmitted:
		a.SubmittedAt = &now
	case application.StatusUnderReview:
		a.ReviewedAt = &now
	case application.StatusApproved:
		a.ApprovedAt = &now
	case application.StatusRejected:
		a.RejectedAt = &now
	case application.StatusWithdrawn:
		a.WithdrawnAt = &now
	case application.StatusDisbursed:
		a.DisbursedAt = &now
	}
}
