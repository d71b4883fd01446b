package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domainApp "lendhub-backend/internal/domain/application"
	domainAudit "lendhub-backend/internal/domain/audit"
	appUC "lendhub-backend/internal/usecase/application"
	auditUC "lendhub-backend/internal/usecase/audit"
	snapshotUC "lendhub-backend/internal/usecase/snapshot"
	statusUC "lendhub-backend/internal/usecase/status"
)

// actorHeader carries the authenticated user id, injected upstream by the
// API gateway.
const actorHeader = "Ax-User-Id"

func actorID(c echo.Context) string { return c.Request().Header.Get(actorHeader) }

type ApplicationHandler struct {
	apps      *appUC.Usecase
	status    *statusUC.Usecase
	audits    *auditUC.Usecase
	snapshots *snapshotUC.Usecase
}

func NewApplicationHandler(apps *appUC.Usecase, status *statusUC.Usecase, audits *auditUC.Usecase, snapshots *snapshotUC.Usecase) *ApplicationHandler {
	return &ApplicationHandler{apps: apps, status: status, audits: audits, snapshots: snapshots}
}

type createApplicationRequest struct {
	UserID             string   `json:"user_id" validate:"required,hex32"`
	BusinessID         string   `json:"business_id" validate:"omitempty,hex32"`
	LoanProductID      string   `json:"loan_product_id" validate:"required,hex32"`
	LoanAmount         float64  `json:"loan_amount" validate:"required,gt=0,dec2"`
	LoanTerm           int      `json:"loan_term" validate:"required,gt=0"`
	Purpose            string   `json:"purpose"`
	PurposeDescription string   `json:"purpose_description"`
	CoApplicantIDs     []string `json:"co_applicant_ids" validate:"omitempty,dive,hex32"`
	SubmitImmediately  bool     `json:"submit_immediately"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationRequest
	if err := c.Bind(&req); err != nil {
		return respondBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	dto, err := h.apps.Create(c.Request().Context(), appUC.CreateInput{
		UserID:             req.UserID,
		BusinessID:         req.BusinessID,
		LoanProductID:      req.LoanProductID,
		LoanAmount:         req.LoanAmount,
		LoanTerm:           req.LoanTerm,
		Purpose:            req.Purpose,
		PurposeDescription: req.PurposeDescription,
		CoApplicantIDs:     req.CoApplicantIDs,
		SubmitImmediately:  req.SubmitImmediately,
	})
	if err != nil {
		return respondErr(c, err, "CREATE_APPLICATION_ERROR")
	}
	return respondOK(c, nethttp.StatusCreated, "loan application created", dto)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	dto, err := h.apps.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err, "GET_APPLICATION_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", dto)
}

func (h *ApplicationHandler) ListByUser(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = actorID(c)
	}
	out, err := h.apps.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return respondErr(c, err, "LIST_APPLICATIONS_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", out)
}

func (h *ApplicationHandler) Delete(c echo.Context) error {
	if err := h.apps.Remove(c.Request().Context(), c.Param("id"), actorID(c)); err != nil {
		return respondErr(c, err, "DELETE_APPLICATION_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "loan application deleted", nil)
}

type updateStatusRequest struct {
	Status          string         `json:"status" validate:"required"`
	Reason          string         `json:"reason"`
	RejectionReason string         `json:"rejection_reason"`
	Metadata        map[string]any `json:"metadata"`
}

func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	res, err := h.status.UpdateStatus(c.Request().Context(), statusUC.UpdateStatusInput{
		ApplicationID:   c.Param("id"),
		NewStatus:       domainApp.Status(req.Status),
		ActorUserID:     actorID(c),
		Reason:          req.Reason,
		RejectionReason: req.RejectionReason,
		Metadata:        req.Metadata,
	})
	if err != nil {
		return respondErr(c, err, "UPDATE_STATUS_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, res.Message, res)
}

func (h *ApplicationHandler) GetStatus(c echo.Context) error {
	dto, err := h.status.GetStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err, "GET_STATUS_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", dto)
}

func (h *ApplicationHandler) GetStatusHistory(c echo.Context) error {
	out, err := h.status.GetStatusHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err, "GET_STATUS_HISTORY_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", out)
}

func (h *ApplicationHandler) GetAuditTrail(c echo.Context) error {
	f := domainAudit.Filter{LoanApplicationID: c.Param("id")}
	if v := c.QueryParam("action"); v != "" {
		f.Action = domainAudit.Action(v)
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Offset = n
		}
	}

	out, err := h.audits.GetAuditTrail(c.Request().Context(), f)
	if err != nil {
		return respondErr(c, err, "GET_AUDIT_TRAIL_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", out)
}

func (h *ApplicationHandler) GetAuditSummary(c echo.Context) error {
	out, err := h.audits.GetAuditTrailSummary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err, "GET_AUDIT_SUMMARY_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", out)
}

func (h *ApplicationHandler) ListSnapshots(c echo.Context) error {
	out, err := h.snapshots.GetSnapshots(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err, "GET_SNAPSHOTS_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", out)
}

func (h *ApplicationHandler) GetLatestSnapshot(c echo.Context) error {
	out, err := h.snapshots.GetLatestSnapshot(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err, "GET_LATEST_SNAPSHOT_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", out)
}

func (h *ApplicationHandler) GetSnapshot(c echo.Context) error {
	out, err := h.snapshots.GetSnapshot(c.Request().Context(), c.Param("snapshotId"))
	if err != nil {
		return respondErr(c, err, "GET_SNAPSHOT_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", out)
}
