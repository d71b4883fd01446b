package user

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	domainUser "lendhub-backend/internal/domain/user"
	"lendhub-backend/pkg/apperr"
	"lendhub-backend/pkg/id"
)

type Usecase struct{ repo domainUser.Repository }

func NewUsecase(r domainUser.Repository) *Usecase { return &Usecase{repo: r} }

const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
)

// IdentityEvent is one inbound identity-provider webhook payload.
type IdentityEvent struct {
	Event      string         `json:"event"`
	ExternalID string         `json:"external_id"`
	Email      string         `json:"email"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Phone      string         `json:"phone"`
	Metadata   map[string]any `json:"metadata"`
}

func requiredFields(ev IdentityEvent) []string {
	var missing []string
	if ev.ExternalID == "" {
		missing = append(missing, "external_id")
	}
	if ev.Email == "" {
		missing = append(missing, "email")
	}
	if ev.FirstName == "" {
		missing = append(missing, "first_name")
	}
	return missing
}

// HandleIdentityEvent upserts a user from a provider lifecycle event.
// Missing required fields fail with INVALID_METADATA enumerating them.
func (u *Usecase) HandleIdentityEvent(ctx context.Context, ev IdentityEvent) (*domainUser.User, error) {
	switch ev.Event {
	case EventUserCreated, EventUserUpdated:
	default:
		return nil, apperr.BadRequest("UNSUPPORTED_EVENT", "unsupported identity event: "+ev.Event)
	}

	if missing := requiredFields(ev); len(missing) > 0 {
		return nil, apperr.BadRequest("INVALID_METADATA", "missing required fields: "+strings.Join(missing, ", "))
	}

	var meta string
	if len(ev.Metadata) > 0 {
		b, _ := json.Marshal(ev.Metadata)
		meta = string(b)
	}

	existing, err := u.repo.GetByExternalID(ctx, ev.ExternalID)
	switch {
	case err == nil:
		existing.Email = ev.Email
		existing.FirstName = ev.FirstName
		existing.LastName = ev.LastName
		existing.Phone = ev.Phone
		if meta != "" {
			existing.Metadata = meta
		}
		if err := u.repo.Save(ctx, existing); err != nil {
			return nil, apperr.Wrap(err, "UPSERT_USER_ERROR")
		}
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		nu := &domainUser.User{
			UserID:     id.NewID32(),
			ExternalID: ev.ExternalID,
			Email:      ev.Email,
			FirstName:  ev.FirstName,
			LastName:   ev.LastName,
			Phone:      ev.Phone,
			Metadata:   meta,
		}
		if err := u.repo.Create(ctx, nu); err != nil {
			return nil, apperr.Wrap(err, "CREATE_USER_ERROR")
		}
		return nu, nil
	default:
		return nil, apperr.Wrap(err, "UPSERT_USER_ERROR")
	}
}

func (u *Usecase) Get(ctx context.Context, userID string) (*domainUser.User, error) {
	out, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrNotFound
		}
		return nil, apperr.Wrap(err, "GET_USER_ERROR")
	}
	return out, nil
}
