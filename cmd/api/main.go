package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
	svix "github.com/svix/svix-webhooks/go"

	"github.com/ArbabsLab/GymBab/internal/database"
	"github.com/ArbabsLab/GymBab/internal/geminiservice"
	"github.com/ArbabsLab/GymBab/internal/identity"
	"github.com/ArbabsLab/GymBab/internal/intake"
	"github.com/ArbabsLab/GymBab/internal/plan"
	"github.com/ArbabsLab/GymBab/internal/server"
)

const activePlanCacheSize = 512

func gracefulShutdown(apiServer *http.Server, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// Give in-flight requests 5 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")

	done <- true
}

func main() {
	dbService, err := database.NewService()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to database")
	}
	defer dbService.Close()

	// The webhook route cannot operate without the signing secret, so a
	// missing secret is fatal at startup rather than a per-request 500.
	whSecret := os.Getenv("CLERK_WEBHOOK_SECRET")
	if whSecret == "" {
		log.Fatal().Msg("CLERK_WEBHOOK_SECRET environment variable is not set")
	}
	verifier, err := svix.NewWebhook(whSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not initialize webhook verifier")
	}

	cache, err := plan.NewActiveCache(activePlanCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not initialize plan cache")
	}

	gemini := geminiservice.NewClient(os.Getenv("GEMINI_API_KEY"))
	generator := geminiservice.NewService(gemini, dbService.Queries(), cache)

	webhook := identity.NewWebhookHandler(verifier, dbService.Queries())
	intakeWS := intake.NewSocketHandler(generator)

	apiServer := server.NewServer(dbService, generator, webhook, intakeWS, cache)

	done := make(chan bool, 1)

	go gracefulShutdown(apiServer, done)

	log.Info().Str("addr", apiServer.Addr).Msg("Starting GymBab API server")
	if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("HTTP server error")
	}

	<-done
	log.Info().Msg("Graceful shutdown complete.")
}
