package application

type Status string

const (
	StatusDraft       Status = "draft"
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
	StatusDisbursed   Status = "disbursed"
)

// transitions is the fixed outgoing-edge table for the application
// lifecycle. Terminal statuses map to an empty slice.
var transitions = map[Status][]Status{
	StatusDraft:       {StatusSubmitted, StatusWithdrawn},
	StatusSubmitted:   {StatusUnderReview, StatusWithdrawn},
	StatusUnderReview: {StatusApproved, StatusRejected, StatusWithdrawn},
	StatusApproved:    {StatusDisbursed, StatusWithdrawn},
	StatusRejected:    {StatusSubmitted, StatusWithdrawn},
	StatusWithdrawn:   {},
	StatusDisbursed:   {},
}

// IsValidStatus reports whether s is one of the known lifecycle statuses.
func IsValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// AllowedTransitions returns the outgoing set for current. The returned
// slice is a copy; callers may not mutate the table through it.
func AllowedTransitions(current Status) []Status {
	out := transitions[current]
	cp := make([]Status, len(out))
	copy(cp, out)
	return cp
}

// ValidateTransition reports whether current -> requested is permitted and
// always returns the full outgoing set of current.
func ValidateTransition(current, requested Status) (bool, []Status) {
	allowed := AllowedTransitions(current)
	for _, s := range allowed {
		if s == requested {
			return true, allowed
		}
	}
	return false, allowed
}

// IsTerminalStatus is true exactly when the outgoing set is empty.
func IsTerminalStatus(s Status) bool {
	out, ok := transitions[s]
	return ok && len(out) == 0
}

// Editable reports whether the application row may still be mutated by the
// applicant (early states only).
func Editable(s Status) bool {
	return s == StatusDraft || s == StatusRejected
}
