package mysql

import (
	"context"

	"gorm.io/gorm"

	"lendhub-backend/internal/domain/application"
	"lendhub-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Applications:     &ApplicationRepository{db: tx},
		Audit:            &AuditRepository{db: tx},
		Snapshots:        &SnapshotRepository{db: tx},
		Offers:           &OfferRepository{db: tx},
		Users:            &UserRepository{db: tx},
		Businesses:       &BusinessRepository{db: tx},
		PersonalDocs:     &PersonalDocRepository{db: tx},
		BusinessDocs:     &BusinessDocRepository{db: tx},
		DocumentRequests: &DocumentRequestRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.LoanApplication) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the application row up-front to prevent races
		a, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
