package geminiservice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ArbabsLab/GymBab/internal/database"
	"github.com/ArbabsLab/GymBab/internal/plan"
	"github.com/ArbabsLab/GymBab/internal/utility"
)

// Generator is the model capability the orchestrator consumes.
type Generator interface {
	Generate(ctx context.Context, log *zerolog.Logger, prompt string, schema *Schema) (string, error)
}

// PlanStore is the single write the orchestrator issues against Postgres.
type PlanStore interface {
	CreatePlan(ctx context.Context, arg database.CreatePlanParams) (database.Plan, error)
}

// Service orchestrates plan generation: two sequential model calls
// (workout, then diet), validation of each response, and one persisted
// Plan record.
type Service struct {
	model Generator
	store PlanStore
	cache *plan.ActiveCache
}

func NewService(model Generator, store PlanStore, cache *plan.ActiveCache) *Service {
	return &Service{model: model, store: store, cache: cache}
}

// GenerateRoutine runs the whole generation workflow for one request.
// There is no partial success: a diet failure aborts the request even when
// the workout stage already succeeded, and nothing is persisted until both
// plans validated.
func (s *Service) GenerateRoutine(ctx context.Context, log *zerolog.Logger, attrs plan.UserAttributes) (*plan.GeneratedPlan, error) {
	log.Info().Str("user_id", attrs.UserID).Msg("Generating workout plan...")

	workoutText, err := s.model.Generate(ctx, log, BuildWorkoutPrompt(attrs), WorkoutResponseSchema)
	if err != nil {
		return nil, err
	}

	workoutRaw, err := parsePlanJSON(workoutText)
	if err != nil {
		return nil, fmt.Errorf("invalid workout plan: %w", err)
	}
	workout, err := plan.ValidateWorkoutPlan(workoutRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid workout plan: %w", err)
	}

	log.Info().Str("user_id", attrs.UserID).Msg("Generating diet plan...")

	dietText, err := s.model.Generate(ctx, log, BuildDietPrompt(attrs), DietResponseSchema)
	if err != nil {
		return nil, err
	}

	dietRaw, err := parsePlanJSON(dietText)
	if err != nil {
		return nil, fmt.Errorf("invalid diet plan: %w", err)
	}
	diet, err := plan.ValidateDietPlan(dietRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid diet plan: %w", err)
	}

	workoutJSON, err := json.Marshal(workout)
	if err != nil {
		return nil, fmt.Errorf("failed to encode workout plan: %w", err)
	}
	dietJSON, err := json.Marshal(diet)
	if err != nil {
		return nil, fmt.Errorf("failed to encode diet plan: %w", err)
	}

	// Always active on creation; prior active plans are left untouched and
	// readers pick the newest one.
	record, err := s.store.CreatePlan(ctx, database.CreatePlanParams{
		UserID:      attrs.UserID,
		Name:        fmt.Sprintf("%s Plan - %s", attrs.FitnessGoal, time.Now().Format("1/2/2006")),
		WorkoutPlan: workoutJSON,
		DietPlan:    dietJSON,
		IsActive:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(attrs.UserID)
	}

	planID, err := utility.PgtypeUUIDToString(record.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan id: %w", err)
	}

	log.Info().Str("user_id", attrs.UserID).Str("plan_id", planID).Msg("Plan generated and saved")

	return &plan.GeneratedPlan{
		PlanID:      planID,
		WorkoutPlan: workout,
		DietPlan:    diet,
	}, nil
}

// parsePlanJSON parses the model's response text, treating an absent or
// blank body as an empty object.
func parsePlanJSON(text string) (map[string]any, error) {
	if strings.TrimSpace(text) == "" {
		text = "{}"
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
