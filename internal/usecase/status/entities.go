package status

import (
	"time"

	"lendhub-backend/internal/domain/application"
)

type UpdateStatusInput struct {
	ApplicationID   string
	NewStatus       application.Status
	ActorUserID     string
	Reason          string
	RejectionReason string
	Metadata        map[string]any
}

type UpdateStatusResult struct {
	ApplicationID      string               `json:"application_id"`
	PreviousStatus     application.Status   `json:"previous_status"`
	NewStatus          application.Status   `json:"new_status"`
	Message            string               `json:"message"`
	SnapshotCreated    bool                 `json:"snapshot_created"`
	AuditEntryID       string               `json:"audit_entry_id"`
	AllowedTransitions []application.Status `json:"allowed_transitions"`
}

type StatusDTO struct {
	ApplicationID      string               `json:"application_id"`
	Status             application.Status   `json:"status"`
	StatusReason       string               `json:"status_reason,omitempty"`
	LastUpdatedBy      string               `json:"last_updated_by,omitempty"`
	LastUpdatedAt      time.Time            `json:"last_updated_at"`
	AllowedTransitions []application.Status `json:"allowed_transitions"`
}

type HistoryEntry struct {
	EntryID   string    `json:"entry_id"`
	Action    string    `json:"action"`
	Reason    string    `json:"reason,omitempty"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name,omitempty"`
	ActorMail string    `json:"actor_email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
