package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	productUC "lendhub-backend/internal/usecase/product"
)

type ProductHandler struct {
	products *productUC.Usecase
}

func NewProductHandler(products *productUC.Usecase) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	MinAmount    float64 `json:"min_amount" validate:"required,gt=0,dec2"`
	MaxAmount    float64 `json:"max_amount" validate:"required,gt=0,dec2"`
	MinTerm      int     `json:"min_term" validate:"required,gt=0"`
	MaxTerm      int     `json:"max_term" validate:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0"`
	Currency     string  `json:"currency" validate:"required,len=3"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return respondBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	p, err := h.products.Create(c.Request().Context(), productUC.CreateInput{
		Name:         req.Name,
		Description:  req.Description,
		MinAmount:    req.MinAmount,
		MaxAmount:    req.MaxAmount,
		MinTerm:      req.MinTerm,
		MaxTerm:      req.MaxTerm,
		InterestRate: req.InterestRate,
		Currency:     req.Currency,
	})
	if err != nil {
		return respondErr(c, err, "CREATE_PRODUCT_ERROR")
	}
	return respondOK(c, nethttp.StatusCreated, "loan product created", p)
}

func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err, "GET_PRODUCT_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", p)
}

func (h *ProductHandler) List(c echo.Context) error {
	out, err := h.products.List(c.Request().Context())
	if err != nil {
		return respondErr(c, err, "LIST_PRODUCTS_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "", out)
}

type updateProductRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	MinAmount    *float64 `json:"min_amount" validate:"omitempty,gt=0,dec2"`
	MaxAmount    *float64 `json:"max_amount" validate:"omitempty,gt=0,dec2"`
	MinTerm      *int     `json:"min_term" validate:"omitempty,gt=0"`
	MaxTerm      *int     `json:"max_term" validate:"omitempty,gt=0"`
	InterestRate *float64 `json:"interest_rate" validate:"omitempty,gte=0"`
	IsActive     *bool    `json:"is_active"`
}

func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return respondBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	p, err := h.products.Update(c.Request().Context(), c.Param("id"), productUC.UpdateInput{
		Name:         req.Name,
		Description:  req.Description,
		MinAmount:    req.MinAmount,
		MaxAmount:    req.MaxAmount,
		MinTerm:      req.MinTerm,
		MaxTerm:      req.MaxTerm,
		InterestRate: req.InterestRate,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return respondErr(c, err, "UPDATE_PRODUCT_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "loan product updated", p)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return respondErr(c, err, "DELETE_PRODUCT_ERROR")
	}
	return respondOK(c, nethttp.StatusOK, "loan product deleted", nil)
}
