package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gmfurtado/rhpulse/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in
//     app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		postings := v1.Group("/postings")
		{
			postings.GET("", handler.ListPostings)
			postings.POST("", handler.CreatePosting)
			postings.GET("/:id", handler.GetPosting)
			postings.PUT("/:id", handler.UpdatePosting)
			postings.DELETE("/:id", handler.DeletePosting)
		}

		candidates := v1.Group("/candidates")
		{
			candidates.GET("", handler.ListCandidates)
			candidates.GET("/:id/timeline", handler.GetCandidateTimeline)
			candidates.POST("/:id/status", handler.ChangeCandidateStatus)
		}

		approvals := v1.Group("/approvals")
		{
			approvals.GET("", handler.ListPendingApprovals)
			approvals.POST("", handler.CreateApproval)
			approvals.POST("/:id/decision", handler.DecideApproval)
		}
	}

	return router
}
