/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the
route handlers to their dependencies.
*/
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/ArbabsLab/GymBab/internal/admin"
	"github.com/ArbabsLab/GymBab/internal/database"
	"github.com/ArbabsLab/GymBab/internal/identity"
	"github.com/ArbabsLab/GymBab/internal/intake"
	"github.com/ArbabsLab/GymBab/internal/plan"
)

// PlanGenerator is the plan-generation capability the routes call into.
type PlanGenerator interface {
	GenerateRoutine(ctx context.Context, log *zerolog.Logger, attrs plan.UserAttributes) (*plan.GeneratedPlan, error)
}

// Server bundles the dependencies of the HTTP service. Everything is
// passed in explicitly; handlers hold no package-level state.
type Server struct {
	port int

	db        database.Service
	generator PlanGenerator
	webhook   *identity.WebhookHandler
	intakeWS  *intake.SocketHandler
	status    *admin.StatusHandler
	cache     *plan.ActiveCache
}

// NewServer builds a configured *http.Server around the route table.
// The port comes from the environment with a fallback to 8080.
func NewServer(db database.Service, generator PlanGenerator, webhook *identity.WebhookHandler, intakeWS *intake.SocketHandler, cache *plan.ActiveCache) *http.Server {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port == 0 {
		port = 8080
	}

	app := &Server{
		port:      port,
		db:        db,
		generator: generator,
		webhook:   webhook,
		intakeWS:  intakeWS,
		status:    admin.NewStatusHandler(db),
		cache:     cache,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", app.port),
		Handler:      app.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		// Generation performs two sequential model calls of up to 30s each.
		WriteTimeout: 90 * time.Second,
	}
}
