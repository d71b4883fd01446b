package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	documentUC "lendhub-backend/internal/usecase/document"
)

type DocumentHandler struct {
	documents *documentUC.Usecase
}

func NewDocumentHandler(documents *documentUC.Usecase) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

type createDocumentRequestRequest struct {
	LoanApplicationID string `json:"loan_application_id" validate:"required,hex32"`
	UserID            string `json:"user_id" validate:"required,hex32"`
	DocumentType      string `json:"document_type" validate:"required"`
	Message           string `json:"message"`
}

func (h *DocumentHandler) CreateRequest(c echo.Context) error {
	var req createDocumentRequestRequest
	if err := c.Bind(&req); err != nil {
		return respondBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	out, err := h.documents.CreateRequest(c.Request().Context(), documentUC.CreateRequestInput{
		LoanApplicationID: req.LoanApplicationID,
		UserID:            req.UserID,
		DocumentType:      req.DocumentType,
		Message:           req.Message,
		RequestedBy:       actorID(c),
	})
	if err != nil {
		return respondErr(c, err, "CREATE_DOCUMENT_REQUEST_ERROR")
	}
	return respondOK(c, nethttp.StatusCreated, "document request created", out)
}

func (h *DocumentHandler) GetRequest(c echo.Context) error {
	out, err := h.documents.GetRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err, "GET_DOCUMENT_REQUEST_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", out)
}

func (h *DocumentHandler) ListRequestsByApplication(c echo.Context) error {
	out, err := h.documents.ListRequestsByApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err, "LIST_DOCUMENT_REQUESTS_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", out)
}

type uploadPersonalRequest struct {
	UserID            string `json:"user_id" validate:"required,hex32"`
	DocumentType      string `json:"document_type" validate:"required"`
	FileName          string `json:"file_name"`
	FileURL           string `json:"file_url" validate:"required,url"`
	ContentType       string `json:"content_type"`
	LoanApplicationID string `json:"loan_application_id" validate:"omitempty,hex32"`
}

func (h *DocumentHandler) UploadPersonal(c echo.Context) error {
	var req uploadPersonalRequest
	if err := c.Bind(&req); err != nil {
		return respondBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	out, err := h.documents.UploadPersonal(c.Request().Context(), documentUC.UploadPersonalInput{
		UserID:            req.UserID,
		DocumentType:      req.DocumentType,
		FileName:          req.FileName,
		FileURL:           req.FileURL,
		ContentType:       req.ContentType,
		UploadedBy:        actorID(c),
		LoanApplicationID: req.LoanApplicationID,
	})
	if err != nil {
		return respondErr(c, err, "UPLOAD_DOCUMENT_ERROR")
	}
	return respondOK(c, nethttp.StatusCreated, "personal document uploaded", out)
}

type uploadBusinessRequest struct {
	BusinessID        string `json:"business_id" validate:"required,hex32"`
	DocumentType      string `json:"document_type" validate:"required"`
	FileName          string `json:"file_name"`
	FileURL           string `json:"file_url" validate:"required,url"`
	ContentType       string `json:"content_type"`
	LoanApplicationID string `json:"loan_application_id" validate:"omitempty,hex32"`
}

func (h *DocumentHandler) UploadBusiness(c echo.Context) error {
	var req uploadBusinessRequest
	if err := c.Bind(&req); err != nil {
		return respondBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	out, err := h.documents.UploadBusiness(c.Request().Context(), documentUC.UploadBusinessInput{
		BusinessID:        req.BusinessID,
		DocumentType:      req.DocumentType,
		FileName:          req.FileName,
		FileURL:           req.FileURL,
		ContentType:       req.ContentType,
		UploadedBy:        actorID(c),
		LoanApplicationID: req.LoanApplicationID,
	})
	if err != nil {
		return respondErr(c, err, "UPLOAD_DOCUMENT_ERROR")
	}
	return respondOK(c, nethttp.StatusCreated, "business document uploaded", out)
}
