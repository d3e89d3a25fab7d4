package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/gmfurtado/rhpulse/config"
	"github.com/gmfurtado/rhpulse/internal/api"
	"github.com/gmfurtado/rhpulse/internal/notify"
	"github.com/gmfurtado/rhpulse/internal/service"
	"github.com/gmfurtado/rhpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (postings, candidates, approvals).
//   - Builds the notification mailer from SMTP config.
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router and registers health probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Repository layer (DB access)
	postingRepo := storage.NewPostingRepository(db)
	candidateRepo := storage.NewCandidateRepository(db)
	approvalRepo := storage.NewApprovalRepository(db)

	// Notification boundary
	mailer := notify.NewMailer(cfg.SMTP)

	// Service layer (business logic)
	postingSvc := service.NewPostingService(postingRepo)
	candidateSvc := service.NewCandidateService(candidateRepo, mailer, cfg.SMTP.HRInbox)
	approvalSvc := service.NewApprovalService(approvalRepo, postingRepo, mailer)

	// HTTP layer
	handler := api.NewHandler(postingSvc, candidateSvc, approvalSvc)
	router := api.NewRouter(handler)

	// Health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
