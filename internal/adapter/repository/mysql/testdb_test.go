package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appDomain "lendhub-backend/internal/domain/application"
	auditDomain "lendhub-backend/internal/domain/audit"
	bizDomain "lendhub-backend/internal/domain/business"
	docDomain "lendhub-backend/internal/domain/document"
	offerDomain "lendhub-backend/internal/domain/offer"
	productDomain "lendhub-backend/internal/domain/product"
	snapDomain "lendhub-backend/internal/domain/snapshot"
	userDomain "lendhub-backend/internal/domain/user"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The
// domain models avoid MySQL-only column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&appDomain.LoanApplication{},
		&auditDomain.Entry{},
		&snapDomain.Snapshot{},
		&offerDomain.OfferLetter{},
		&userDomain.User{},
		&bizDomain.Profile{},
		&productDomain.LoanProduct{},
		&docDomain.PersonalDocument{},
		&docDomain.BusinessDocument{},
		&docDomain.Request{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeApplication(applicationID, userID string) *appDomain.LoanApplication {
	return &appDomain.LoanApplication{
		ApplicationID:     applicationID,
		ApplicationNumber: "APP-20260801-000001",
		UserID:            userID,
		LoanProductID:     "11111111111111111111111111111111",
		LoanAmount:        25_000_000.00,
		LoanTerm:          12,
		Currency:          "IDR",
		Status:            appDomain.StatusDraft,
		OfferStage:        appDomain.OfferStageNone,
		LastUpdatedBy:     userID,
		LastUpdatedAt:     time.Now().UTC(),
	}
}
