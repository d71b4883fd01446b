package offer

import (
	"time"

	domainOffer "lendhub-backend/internal/domain/offer"
)

type CreateOfferInput struct {
	LoanApplicationID string
	OfferAmount       float64
	OfferTerm         int
	InterestRate      float64
	Currency          string
	RecipientEmail    string
	RecipientName     string
	ExpiresAt         *time.Time
	ActorUserID       string
}

type UpdateOfferInput struct {
	OfferAmount    *float64
	OfferTerm      *int
	InterestRate   *float64
	RecipientEmail *string
	RecipientName  *string
	ExpiresAt      *time.Time
	ActorUserID    string
}

type OfferDTO struct {
	OfferID           string             `json:"offer_id"`
	LoanApplicationID string             `json:"loan_application_id"`
	OfferNumber       string             `json:"offer_number"`
	Version           int                `json:"version"`
	OfferAmount       float64            `json:"offer_amount"`
	OfferTerm         int                `json:"offer_term"`
	InterestRate      float64            `json:"interest_rate"`
	Currency          string             `json:"currency"`
	RecipientEmail    string             `json:"recipient_email"`
	RecipientName     string             `json:"recipient_name,omitempty"`
	Status            domainOffer.Status `json:"status"`
	ProviderStatus    string             `json:"provider_status,omitempty"`
	EnvelopeID        string             `json:"envelope_id,omitempty"`
	IsActive          bool               `json:"is_active"`
	ExpiresAt         *time.Time         `json:"expires_at,omitempty"`
	SentAt            *time.Time         `json:"sent_at,omitempty"`
	SignedAt          *time.Time         `json:"signed_at,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

func toDTO(o *domainOffer.OfferLetter) *OfferDTO {
	return &OfferDTO{
		OfferID:           o.OfferID,
		LoanApplicationID: o.LoanApplicationID,
		OfferNumber:       o.OfferNumber,
		Version:           o.Version,
		OfferAmount:       o.OfferAmount,
		OfferTerm:         o.OfferTerm,
		InterestRate:      o.InterestRate,
		Currency:          o.Currency,
		RecipientEmail:    o.RecipientEmail,
		RecipientName:     o.RecipientName,
		Status:            o.Status,
		ProviderStatus:    o.ProviderStatus,
		EnvelopeID:        o.EnvelopeID,
		IsActive:          o.IsActive,
		ExpiresAt:         o.ExpiresAt,
		SentAt:            o.SentAt,
		SignedAt:          o.SignedAt,
		CreatedAt:         o.CreatedAt,
	}
}

// EnvelopeEvent is one inbound e-sign webhook occurrence, already
// normalized out of the provider's payload shapes by the handler.
type EnvelopeEvent struct {
	Event           string
	EnvelopeID      string
	Status          string
	StatusChangedAt time.Time
}

// WebhookResult is always a success acknowledgment; unknown envelopes are
// reported, not errored, so replayed or foreign traffic stays idempotent.
type WebhookResult struct {
	Matched bool               `json:"matched"`
	Message string             `json:"message"`
	OfferID string             `json:"offer_id,omitempty"`
	Status  domainOffer.Status `json:"status,omitempty"`
}
