package http

import (
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	offerUC "lendhub-backend/internal/usecase/offer"
)

type OfferHandler struct {
	offers *offerUC.Usecase
}

func NewOfferHandler(offers *offerUC.Usecase) *OfferHandler {
	return &OfferHandler{offers: offers}
}

type createOfferRequest struct {
	LoanApplicationID string     `json:"loan_application_id" validate:"required,hex32"`
	OfferAmount       float64    `json:"offer_amount" validate:"required,gt=0,dec2"`
	OfferTerm         int        `json:"offer_term" validate:"required,gt=0"`
	InterestRate      float64    `json:"interest_rate" validate:"gte=0"`
	Currency          string     `json:"currency" validate:"required,len=3"`
	RecipientEmail    string     `json:"recipient_email" validate:"required,email"`
	RecipientName     string     `json:"recipient_name"`
	ExpiresAt         *time.Time `json:"expires_at"`
}

func (h *OfferHandler) Create(c echo.Context) error {
	var req createOfferRequest
	if err := c.Bind(&req); err != nil {
		return respondBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	dto, err := h.offers.Create(c.Request().Context(), offerUC.CreateOfferInput{
		LoanApplicationID: req.LoanApplicationID,
		OfferAmount:       req.OfferAmount,
		OfferTerm:         req.OfferTerm,
		InterestRate:      req.InterestRate,
		Currency:          req.Currency,
		RecipientEmail:    req.RecipientEmail,
		RecipientName:     req.RecipientName,
		ExpiresAt:         req.ExpiresAt,
		ActorUserID:       actorID(c),
	})
	if err != nil {
		return respondErr(c, err, "CREATE_OFFER_LETTER_ERROR")
	}
	return respondOK(c, nethttp.StatusCreated, "offer letter created", dto)
}

func (h *OfferHandler) Get(c echo.Context) error {
	dto, err := h.offers.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err, "GET_OFFER_LETTER_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", dto)
}

func (h *OfferHandler) ListByApplication(c echo.Context) error {
	out, err := h.offers.ListByApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err, "LIST_OFFER_LETTERS_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", out)
}

type updateOfferRequest struct {
	OfferAmount    *float64   `json:"offer_amount" validate:"omitempty,gt=0,dec2"`
	OfferTerm      *int       `json:"offer_term" validate:"omitempty,gt=0"`
	InterestRate   *float64   `json:"interest_rate" validate:"omitempty,gte=0"`
	RecipientEmail *string    `json:"recipient_email" validate:"omitempty,email"`
	RecipientName  *string    `json:"recipient_name"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

func (h *OfferHandler) Update(c echo.Context) error {
	var req updateOfferRequest
	if err := c.Bind(&req); err != nil {
		return respondBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	dto, err := h.offers.Update(c.Request().Context(), c.Param("id"), offerUC.UpdateOfferInput{
		OfferAmount:    req.OfferAmount,
		OfferTerm:      req.OfferTerm,
		InterestRate:   req.InterestRate,
		RecipientEmail: req.RecipientEmail,
		RecipientName:  req.RecipientName,
		ExpiresAt:      req.ExpiresAt,
		ActorUserID:    actorID(c),
	})
	if err != nil {
		return respondErr(c, err, "UPDATE_OFFER_LETTER_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "offer letter updated", dto)
}

func (h *OfferHandler) Delete(c echo.Context) error {
	if err := h.offers.Remove(c.Request().Context(), c.Param("id"), actorID(c)); err != nil {
		return respondErr(c, err, "DELETE_OFFER_LETTER_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "offer letter deleted", nil)
}

func (h *OfferHandler) Send(c echo.Context) error {
	dto, err := h.offers.Send(c.Request().Context(), c.Param("id"), actorID(c))
	if err != nil {
		return respondErr(c, err, "SEND_OFFER_LETTER_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "offer letter sent for signature", dto)
}

type voidOfferRequest struct {
	Reason string `json:"reason"`
}

func (h *OfferHandler) Void(c echo.Context) error {
	var req voidOfferRequest
	if err := c.Bind(&req); err != nil {
		return respondBind(c)
	}

	dto, err := h.offers.Void(c.Request().Context(), c.Param("id"), actorID(c), req.Reason)
	if err != nil {
		return respondErr(c, err, "VOID_OFFER_LETTER_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "offer letter voided", dto)
}
