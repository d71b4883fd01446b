package audit

import (
	"context"
	"encoding/json"
	"time"

	domainAudit "lendhub-backend/internal/domain/audit"
	"lendhub-backend/pkg/apperr"
	"lendhub-backend/pkg/id"
)

type Usecase struct{ repo domainAudit.Repository }

func NewUsecase(r domainAudit.Repository) *Usecase { return &Usecase{repo: r} }

type LogActionInput struct {
	LoanApplicationID string
	UserID            string
	Action            domainAudit.Action
	Reason            string
	Details           string
	Metadata          map[string]any
	BeforeData        map[string]any
	AfterData         map[string]any
}

func encode(m map[string]any) string {
	if len(m) == 0 {
		return ""
	}
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}

// Append validates and inserts one entry through the given repository.
// Callers inside a unit-of-work pass the tx-bound repo so the entry commits
// or rolls back with the rest of the transition.
func Append(ctx context.Context, repo domainAudit.Repository, in LogActionInput) (*domainAudit.Entry, error) {
	if in.LoanApplicationID == "" || in.UserID == "" || in.Action == "" {
		return nil, apperr.BadRequest("INVALID_PARAMETERS", "loanApplicationId, userId and action are required")
	}
	e := &domainAudit.Entry{
		EntryID:           id.NewID32(),
		LoanApplicationID: in.LoanApplicationID,
		UserID:            in.UserID,
		Action:            in.Action,
		Reason:            in.Reason,
		Details:           in.Details,
		Metadata:          encode(in.Metadata),
		BeforeData:        encode(in.BeforeData),
		AfterData:         encode(in.AfterData),
	}
	if err := repo.Create(ctx, e); err != nil {
		return nil, apperr.Wrap(err, "LOG_ACTION_ERROR")
	}
	return e, nil
}

func (u *Usecase) LogAction(ctx context.Context, in LogActionInput) (*domainAudit.Entry, error) {
	return Append(ctx, u.repo, in)
}

const defaultTrailLimit = 50

func (u *Usecase) GetAuditTrail(ctx context.Context, f domainAudit.Filter) ([]domainAudit.Entry, error) {
	if f.LoanApplicationID == "" {
		return nil, apperr.BadRequest("INVALID_PARAMETERS", "loanApplicationId is required")
	}
	if f.Limit <= 0 {
		f.Limit = defaultTrailLimit
	}
	out, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(err, "GET_AUDIT_TRAIL_ERROR")
	}
	return out, nil
}

type Summary struct {
	LoanApplicationID string                       `json:"loan_application_id"`
	TotalEntries      int64                        `json:"total_entries"`
	LastAction        domainAudit.Action           `json:"last_action,omitempty"`
	LastActionAt      *time.Time                   `json:"last_action_at,omitempty"`
	ActionCounts      map[domainAudit.Action]int64 `json:"action_counts"`
}

func (u *Usecase) GetAuditTrailSummary(ctx context.Context, loanApplicationID string) (*Summary, error) {
	if loanApplicationID == "" {
		return nil, apperr.BadRequest("INVALID_PARAMETERS", "loanApplicationId is required")
	}
	total, err := u.repo.Count(ctx, loanApplicationID)
	if err != nil {
		return nil, apperr.Wrap(err, "GET_AUDIT_SUMMARY_ERROR")
	}
	counts, err := u.repo.CountByAction(ctx, loanApplicationID)
	if err != nil {
		return nil, apperr.Wrap(err, "GET_AUDIT_SUMMARY_ERROR")
	}
	s := &Summary{
		LoanApplicationID: loanApplicationID,
		TotalEntries:      total,
		ActionCounts:      counts,
	}
	if total > 0 {
		latest, err := u.repo.List(ctx, domainAudit.Filter{LoanApplicationID: loanApplicationID, Limit: 1})
		if err != nil {
			return nil, apperr.Wrap(err, "GET_AUDIT_SUMMARY_ERROR")
		}
		if len(latest) == 1 {
			s.LastAction = latest[0].Action
			at := latest[0].CreatedAt
			s.LastActionAt = &at
		}
	}
	return s, nil
}
