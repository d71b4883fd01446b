package http

import (
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	offerUC "lendhub-backend/internal/usecase/offer"
	userUC "lendhub-backend/internal/usecase/user"
)

type WebhookHandler struct {
	users  *userUC.Usecase
	offers *offerUC.Usecase
}

func NewWebhookHandler(users *userUC.Usecase, offers *offerUC.Usecase) *WebhookHandler {
	return &WebhookHandler{users: users, offers: offers}
}

func (h *WebhookHandler) Identity(c echo.Context) error {
	var ev userUC.IdentityEvent
	if err := c.Bind(&ev); err != nil {
		return respondBind(c)
	}

	u, err := h.users.HandleIdentityEvent(c.Request().Context(), ev)
	if err != nil {
		return respondErr(c, err, "IDENTITY_WEBHOOK_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "identity event processed", map[string]any{
		"user_id":     u.UserID,
		"external_id": u.ExternalID,
	})
}

// esignWebhookPayload accepts both shapes the provider emits: the flat
// connect form with top-level envelopeId/status, and the JSON-SIM form
// nesting them under data.envelopeSummary.
type esignWebhookPayload struct {
	Event           string `json:"event"`
	EnvelopeID      string `json:"envelopeId"`
	Status          string `json:"status"`
	StatusChangedAt string `json:"statusChangedDateTime"`
	Data            struct {
		EnvelopeID      string `json:"envelopeId"`
		EnvelopeSummary struct {
			Status          string `json:"status"`
			StatusChangedAt string `json:"statusChangedDateTime"`
		} `json:"envelopeSummary"`
	} `json:"data"`
}

func (p *esignWebhookPayload) toEvent() offerUC.EnvelopeEvent {
	ev := offerUC.EnvelopeEvent{
		Event:      p.Event,
		EnvelopeID: p.EnvelopeID,
		Status:     p.Status,
	}
	changedAt := p.StatusChangedAt
	if ev.EnvelopeID == "" {
		ev.EnvelopeID = p.Data.EnvelopeID
	}
	if ev.Status == "" {
		ev.Status = p.Data.EnvelopeSummary.Status
		changedAt = p.Data.EnvelopeSummary.StatusChangedAt
	}
	if changedAt != "" {
		if t, err := time.Parse(time.RFC3339, changedAt); err == nil {
			ev.StatusChangedAt = t.UTC()
		}
	}
	return ev
}

func (h *WebhookHandler) ESign(c echo.Context) error {
	var payload esignWebhookPayload
	if err := c.Bind(&payload); err != nil {
		return respondBind(c)
	}

	ev := payload.toEvent()
	if ev.EnvelopeID == "" || ev.Status == "" {
		return c.JSON(nethttp.StatusBadRequest, Envelope{
			Success: false,
			Error:   "envelopeId and status are required",
			Code:    "INVALID_WEBHOOK_PAYLOAD",
		})
	}

	res, err := h.offers.HandleEnvelopeEvent(c.Request().Context(), ev)
	if err != nil {
		return respondErr(c, err, "ESIGN_WEBHOOK_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, res.Message, res)
}
