package uow

import (
	"context"

	"lendhub-backend/internal/domain/application"
	"lendhub-backend/internal/domain/audit"
	"lendhub-backend/internal/domain/business"
	"lendhub-backend/internal/domain/document"
	"lendhub-backend/internal/domain/offer"
	"lendhub-backend/internal/domain/snapshot"
	"lendhub-backend/internal/domain/user"
)

type Repos struct {
	Applications     application.Repository
	Audit            audit.Repository
	Snapshots        snapshot.Repository
	Offers           offer.Repository
	Users            user.Repository
	Businesses       business.Repository
	PersonalDocs     document.PersonalRepository
	BusinessDocs     document.BusinessRepository
	DocumentRequests document.RequestRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.LoanApplication) error) error
}
