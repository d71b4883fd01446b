package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "lendhub-backend/internal/adapter/http"
	appmw "lendhub-backend/internal/adapter/middleware"
	"lendhub-backend/internal/adapter/repository/mysql"
	"lendhub-backend/internal/config"
	"lendhub-backend/internal/infrastructure/cache"
	"lendhub-backend/internal/infrastructure/db"
	"lendhub-backend/internal/infrastructure/esign"
	"lendhub-backend/internal/infrastructure/mail"
	"lendhub-backend/internal/logger"
	applicationUC "lendhub-backend/internal/usecase/application"
	auditUC "lendhub-backend/internal/usecase/audit"
	documentUC "lendhub-backend/internal/usecase/document"
	notificationUC "lendhub-backend/internal/usecase/notification"
	offerUC "lendhub-backend/internal/usecase/offer"
	productUC "lendhub-backend/internal/usecase/product"
	snapshotUC "lendhub-backend/internal/usecase/snapshot"
	statusUC "lendhub-backend/internal/usecase/status"
	userUC "lendhub-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger.Init(cfg.LogLevel)

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// repositories
	appRepo := mysql.NewApplicationRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	snapRepo := mysql.NewSnapshotRepository(gdb)
	offerRepo := mysql.NewOfferRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	productRepo := mysql.NewProductRepository(gdb)
	requestRepo := mysql.NewDocumentRequestRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	// infrastructure clients
	statusCache := cache.NewStatusCache(rdb, time.Duration(cfg.StatusCacheTTLSecs)*time.Second)
	mailer := mail.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom, cfg.SMTPUser, cfg.SMTPPass)
	envelopes := esign.NewClient(cfg.ESignBaseURL, cfg.ESignAPIKey)

	// usecases
	notifications := notificationUC.NewUsecase(userRepo, mailer)
	audits := auditUC.NewUsecase(auditRepo)
	snapshots := snapshotUC.NewUsecase(snapRepo)
	statuses := statusUC.NewUsecase(uow, userRepo, appRepo, auditRepo, notifications, statusCache)
	applications := applicationUC.NewUsecase(appRepo, productRepo, uow)
	offers := offerUC.NewUsecase(uow, offerRepo, envelopes, notifications)
	products := productUC.NewUsecase(productRepo)
	users := userUC.NewUsecase(userRepo)
	documents := documentUC.NewUsecase(uow, requestRepo, notifications)

	// handlers
	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(applications, statuses, audits, snapshots)
	offerH := httpadp.NewOfferHandler(offers)
	productH := httpadp.NewProductHandler(products)
	documentH := httpadp.NewDocumentHandler(documents)
	webhookH := httpadp.NewWebhookHandler(users, offers)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(appmw.RequestID(), echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)

	// webhooks skip the idempotency middleware: providers carry their own
	// replay semantics and never send the Ax-* headers
	e.POST("/webhooks/identity", webhookH.Identity)
	e.POST("/webhooks/esign", webhookH.ESign)

	api := e.Group("", appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	api.POST("/loan-applications", appH.Create)
	api.GET("/loan-applications", appH.ListByUser)
	api.GET("/loan-applications/:id", appH.Get)
	api.DELETE("/loan-applications/:id", appH.Delete)
	api.PATCH("/loan-applications/:id/status", appH.UpdateStatus)
	api.GET("/loan-applications/:id/status", appH.GetStatus)
	api.GET("/loan-applications/:id/status-history", appH.GetStatusHistory)
	api.GET("/loan-applications/:id/audit-trail", appH.GetAuditTrail)
	api.GET("/loan-applications/:id/audit-trail/summary", appH.GetAuditSummary)
	api.GET("/loan-applications/:id/snapshots", appH.ListSnapshots)
	api.GET("/loan-applications/:id/snapshots/latest", appH.GetLatestSnapshot)
	api.GET("/loan-applications/:id/offer-letters", offerH.ListByApplication)

	api.GET("/snapshots/:snapshotId", appH.GetSnapshot)

	api.POST("/offer-letters", offerH.Create)
	api.GET("/offer-letters/:id", offerH.Get)
	api.PATCH("/offer-letters/:id", offerH.Update)
	api.DELETE("/offer-letters/:id", offerH.Delete)
	api.POST("/offer-letters/:id/send", offerH.Send)
	api.POST("/offer-letters/:id/void", offerH.Void)

	api.POST("/loan-products", productH.Create)
	api.GET("/loan-products", productH.List)
	api.GET("/loan-products/:id", productH.Get)
	api.PATCH("/loan-products/:id", productH.Update)
	api.DELETE("/loan-products/:id", productH.Delete)

	api.POST("/document-requests", documentH.CreateRequest)
	api.GET("/document-requests/:id", documentH.GetRequest)
	api.GET("/loan-applications/:id/document-requests", documentH.ListRequestsByApplication)
	api.POST("/documents/personal", documentH.UploadPersonal)
	api.POST("/documents/business", documentH.UploadBusiness)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
