package audit

import "context"

type Filter struct {
	LoanApplicationID string
	Action            Action // optional
	Limit             int
	Offset            int
}

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	// List returns entries newest-first.
	List(ctx context.Context, f Filter) ([]Entry, error)
	Count(ctx context.Context, loanApplicationID string) (int64, error)
	// CountByAction returns per-action-tag entry counts for one application.
	CountByAction(ctx context.Context, loanApplicationID string) (map[Action]int64, error)
	// ListByActionPrefix returns entries whose action starts with prefix,
	// newest-first (used for the status-only history view).
	ListByActionPrefix(ctx context.Context, loanApplicationID, prefix string) ([]Entry, error)
}
