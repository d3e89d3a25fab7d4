package main

//
//  @title           rhpulse API
//  @version         1.0
//  @description     Recruitment back-office service: job postings, candidate pipeline and approval workflows.
//  @termsOfService  https://github.com/gmfurtado/rhpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/gmfurtado/rhpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        postings
//  @tag.description Job postings with business-day expiry tracking
//
//  @tag.name        candidates
//  @tag.description Candidate pipeline and stage timelines
//
//  @tag.name        approvals
//  @tag.description Multi-role approval workflow
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gmfurtado/rhpulse/config"
	_ "github.com/gmfurtado/rhpulse/docs" // swagger docs
	"github.com/gmfurtado/rhpulse/internal/app"
	"github.com/gmfurtado/rhpulse/internal/logger"
	"github.com/gmfurtado/rhpulse/internal/notify"
	"github.com/gmfurtado/rhpulse/internal/sweep"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the rhpulse application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API for the back-office dashboard.
//   - sweep: Runs the posting-expiry sweep once and exits (cron-friendly).
//
// Flags:
//   - --mode:    Execution mode ("api" or "sweep"). Default: "api".
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --dry-run: In sweep mode, only log what would expire.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or sweep")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	dryRun := flag.Bool("dry-run", false, "Sweep mode: report expirations without writing")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "sweep":
		logger.L().Info().Msg("running posting-expiry sweep")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		mailer := notify.NewMailer(config.AppConfig.SMTP)
		res, err := sweep.Run(ctx, db, mailer, config.AppConfig.SMTP.HRInbox, *dryRun)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("sweep failed")
		}
		logger.L().Info().Int("scanned", res.Scanned).Int("expired", res.Expired).Msg("sweep completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
