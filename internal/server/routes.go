package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ArbabsLab/GymBab/internal/database"
	"github.com/ArbabsLab/GymBab/internal/plan"
	"github.com/ArbabsLab/GymBab/internal/utility"
)

// generateResponse is the envelope of the generation endpoint. Every
// failure in the generation path collapses into this shape exactly once.
type generateResponse struct {
	Success bool                `json:"success"`
	Data    *plan.GeneratedPlan `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
}

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:       300,
	}))

	e.Use(LoggerMiddleware)

	// Clerk webhook and plan generation
	e.POST("/webhook", s.webhook.Handle)
	e.POST("/generate-routine", s.generateRoutineHandler)

	// Conversational intake
	e.GET("/intake/ws", s.intakeWS.Chat)

	// Plan reads
	e.GET("/plans/:user_id", s.listPlansHandler)
	e.GET("/plans/:user_id/active", s.activePlanHandler)
	e.GET("/profile/:user_id/overview", s.overviewHandler)

	// Ops
	e.GET("/health", s.healthHandler)
	e.GET("/admin/status", s.status.SystemStatus)

	return e
}

// LoggerMiddleware attaches a request-scoped logger carrying a request id.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()

		c.Set("logger", &logger)

		return next(c)
	}
}

// generateRoutineHandler drives the two-stage generation workflow. No
// distinction is drawn between a malformed request, bad model output, and
// a failed store write: all collapse into the 500 envelope with the
// error's message.
func (s *Server) generateRoutineHandler(c echo.Context) error {
	logger := utility.GetLogger(c)

	var attrs plan.UserAttributes
	if err := c.Bind(&attrs); err != nil {
		logger.Error().Err(err).Msg("Failed to bind generation request")
		return c.JSON(http.StatusInternalServerError, generateResponse{Success: false, Error: "invalid request body"})
	}

	result, err := s.generator.GenerateRoutine(c.Request().Context(), logger, attrs)
	if err != nil {
		logger.Error().Err(err).Str("user_id", attrs.UserID).Msg("Plan generation failed")
		return c.JSON(http.StatusInternalServerError, generateResponse{Success: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, generateResponse{Success: true, Data: result})
}

// listPlansHandler returns every plan of a user, newest first.
func (s *Server) listPlansHandler(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("user_id")

	plans, err := s.db.Queries().ListPlansByUser(ctx, userID)
	if err != nil {
		utility.GetLogger(c).Error().Err(err).Msg("Failed to list plans")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load plans"})
	}
	if plans == nil {
		plans = []database.Plan{}
	}

	return c.JSON(http.StatusOK, map[string]any{"plans": plans})
}

// activePlanHandler resolves the user's current plan: the newest row still
// flagged active. Served from the LRU cache when possible.
func (s *Server) activePlanHandler(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("user_id")

	if cached, ok := s.cache.Get(userID); ok {
		return c.JSON(http.StatusOK, cached)
	}

	active, err := s.db.Queries().GetActivePlan(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No active plan"})
		}
		utility.GetLogger(c).Error().Err(err).Msg("Failed to load active plan")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load active plan"})
	}

	s.cache.Add(userID, active)
	return c.JSON(http.StatusOK, active)
}

// overviewHandler aggregates the user row and their plans in one response
// for app hydration; both reads run concurrently.
func (s *Server) overviewHandler(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("user_id")
	q := s.db.Queries()

	var (
		user  database.User
		plans []database.Plan
	)

	g, grpCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		user, err = q.GetUserByClerkID(grpCtx, userID)
		return err
	})

	g.Go(func() error {
		var err error
		plans, err = q.ListPlansByUser(grpCtx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		utility.GetLogger(c).Error().Err(err).Msg("Failed to load profile overview")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile overview"})
	}

	if plans == nil {
		plans = []database.Plan{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user":  user,
		"plans": plans,
	})
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, s.db.Health())
}
