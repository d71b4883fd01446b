package product

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainProduct "lendhub-backend/internal/domain/product"
	"lendhub-backend/pkg/apperr"
	"lendhub-backend/pkg/id"
)

type Usecase struct{ repo domainProduct.Repository }

func NewUsecase(r domainProduct.Repository) *Usecase { return &Usecase{repo: r} }

type CreateInput struct {
	Name         string
	Description  string
	MinAmount    float64
	MaxAmount    float64
	MinTerm      int
	MaxTerm      int
	InterestRate float64
	Currency     string
}

type UpdateInput struct {
	Name         *string
	Description  *string
	MinAmount    *float64
	MaxAmount    *float64
	MinTerm      *int
	MaxTerm      *int
	InterestRate *float64
	IsActive     *bool
}

func validateRange(minAmount, maxAmount float64, minTerm, maxTerm int) error {
	if minAmount > maxAmount {
		return domainProduct.ErrInvalidRange
	}
	if minTerm > maxTerm {
		return apperr.BadRequest("INVALID_TERM_RANGE", "minTerm must not exceed maxTerm")
	}
	return nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domainProduct.LoanProduct, error) {
	if in.Name == "" || in.Currency == "" {
		return nil, apperr.BadRequest("INVALID_PARAMETERS", "name and currency are required")
	}
	if err := validateRange(in.MinAmount, in.MaxAmount, in.MinTerm, in.MaxTerm); err != nil {
		return nil, err
	}
	p := &domainProduct.LoanProduct{
		ProductID:    id.NewID32(),
		Name:         in.Name,
		Description:  in.Description,
		MinAmount:    in.MinAmount,
		MaxAmount:    in.MaxAmount,
		MinTerm:      in.MinTerm,
		MaxTerm:      in.MaxTerm,
		InterestRate: in.InterestRate,
		Currency:     in.Currency,
		IsActive:     true,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, apperr.Wrap(err, "CREATE_PRODUCT_ERROR")
	}
	return p, nil
}

func (u *Usecase) Get(ctx context.Context, productID string) (*domainProduct.LoanProduct, error) {
	p, err := u.repo.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainProduct.ErrNotFound
		}
		return nil, apperr.Wrap(err, "GET_PRODUCT_ERROR")
	}
	return p, nil
}

func (u *Usecase) List(ctx context.Context) ([]domainProduct.LoanProduct, error) {
	out, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "LIST_PRODUCTS_ERROR")
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, productID string, in UpdateInput) (*domainProduct.LoanProduct, error) {
	p, err := u.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.MinAmount != nil {
		p.MinAmount = *in.MinAmount
	}
	if in.MaxAmount != nil {
		p.MaxAmount = *in.MaxAmount
	}
	if in.MinTerm != nil {
		p.MinTerm = *in.MinTerm
	}
	if in.MaxTerm != nil {
		p.MaxTerm = *in.MaxTerm
	}
	if in.InterestRate != nil {
		p.InterestRate = *in.InterestRate
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := validateRange(p.MinAmount, p.MaxAmount, p.MinTerm, p.MaxTerm); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, apperr.Wrap(err, "UPDATE_PRODUCT_ERROR")
	}
	return p, nil
}

func (u *Usecase) Remove(ctx context.Context, productID string) error {
	p, err := u.Get(ctx, productID)
	if err != nil {
		return err
	}
	if err := u.repo.SoftDelete(ctx, p); err != nil {
		return apperr.Wrap(err, "DELETE_PRODUCT_ERROR")
	}
	return nil
}
