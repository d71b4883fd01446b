package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	domainApp "lendhub-backend/internal/domain/application"
	domainProduct "lendhub-backend/internal/domain/product"
	"lendhub-backend/internal/domain/uow"
	"lendhub-backend/internal/testutil/appmock"
	"lendhub-backend/internal/testutil/auditmock"
	"lendhub-backend/internal/testutil/productmock"
	"lendhub-backend/internal/testutil/uowmock"
	appUC "lendhub-backend/internal/usecase/application"
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func testApplicationUsecase() *appUC.Usecase {
	apps := &appmock.Repo{}
	products := &productmock.Repo{
		GetByProductIDFn: func(ctx context.Context, id string) (*domainProduct.LoanProduct, error) {
			return &domainProduct.LoanProduct{
				ProductID: id,
				Name:      "Working Capital",
				MinAmount: 10_000_000,
				MaxAmount: 500_000_000,
				MinTerm:   6,
				MaxTerm:   36,
				Currency:  "IDR",
				IsActive:  true,
			}, nil
		},
	}
	tx := uowmock.New().WithWithinTx(func(ctx context.Context, fn func(uow.Repos) error) error {
		return fn(uow.Repos{Applications: apps, Audit: &auditmock.Repo{}})
	})
	return appUC.NewUsecase(apps, products, tx)
}

func TestCreateApplication_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := NewApplicationHandler(testApplicationUsecase(), nil, nil, nil)

	reqBody := map[string]any{
		"user_id":         strings.Repeat("1", 32),
		"loan_product_id": strings.Repeat("2", 32),
		"loan_amount":     25_000_000,
		"loan_term":       12,
		"purpose":         "working_capital",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loan-applications", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}

	var env struct {
		Success bool      `json:"success"`
		Data    appUC.DTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !env.Success {
		t.Fatalf("expected success envelope: %s", rec.Body.String())
	}
	if env.Data.Status != domainApp.StatusDraft || len(env.Data.ApplicationID) != 32 {
		t.Fatalf("unexpected dto: %+v", env.Data)
	}
	if env.Data.Currency != "IDR" {
		t.Fatalf("currency must come from the product: %+v", env.Data)
	}
}

func TestCreateApplication_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewApplicationHandler(testApplicationUsecase(), nil, nil, nil)

	req := httptest.NewRequest(stdhttp.MethodPost, "/loan-applications", strings.NewReader(`{"user_id":`)) // broken JSON
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var env Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Code != "INVALID_BODY" {
		t.Fatalf("code = %q, want INVALID_BODY", env.Code)
	}
}

func TestCreateApplication_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewApplicationHandler(testApplicationUsecase(), nil, nil, nil)

	// user_id not hex32, amount has too many decimals, term missing
	reqBody := map[string]any{
		"user_id":         "NOT_HEX_32",
		"loan_product_id": strings.Repeat("2", 32),
		"loan_amount":     25_000_000.123,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loan-applications", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var env struct {
		Code    string       `json:"code"`
		Details []FieldError `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if env.Code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", env.Code)
	}
	if !containsFieldMsg(env.Details, "UserID", "32-char lowercase hex") {
		t.Fatalf("missing hex32 detail: %+v", env.Details)
	}
	if !containsFieldMsg(env.Details, "LoanAmount", "at most 2 decimal places") {
		t.Fatalf("missing dec2 detail: %+v", env.Details)
	}
	if !containsFieldMsg(env.Details, "LoanTerm", "is required") {
		t.Fatalf("missing required detail: %+v", env.Details)
	}
}

func TestCreateApplication_AmountOutOfRange(t *testing.T) {
	e := newEchoWithValidator()
	h := NewApplicationHandler(testApplicationUsecase(), nil, nil, nil)

	reqBody := map[string]any{
		"user_id":         strings.Repeat("1", 32),
		"loan_product_id": strings.Repeat("2", 32),
		"loan_amount":     1_000_000, // below the product floor
		"loan_term":       12,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loan-applications", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body=%s", rec.Code, rec.Body.String())
	}
	var env Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Code != "AMOUNT_OUT_OF_RANGE" {
		t.Fatalf("code = %q, want AMOUNT_OUT_OF_RANGE", env.Code)
	}
}

func TestGetApplication_NotFound(t *testing.T) {
	e := echo.New()
	apps := &appmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*domainApp.LoanApplication, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := appUC.NewUsecase(apps, &productmock.Repo{}, uowmock.New())
	h := NewApplicationHandler(uc, nil, nil, nil)

	req := httptest.NewRequest(stdhttp.MethodGet, "/loan-applications/"+strings.Repeat("9", 32), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strings.Repeat("9", 32))

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404, body=%s", rec.Code, rec.Body.String())
	}
}
