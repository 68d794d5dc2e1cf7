package database

import (
	"encoding/json"

	"github.com/jackc/pgx/v5/pgtype"
)

// User mirrors the users table. Rows are owned by the Clerk webhook sync;
// this service never creates users on its own.
type User struct {
	UserID    pgtype.UUID        `json:"user_id"`
	ClerkID   string             `json:"clerk_id"`
	Email     string             `json:"email"`
	Name      string             `json:"name"`
	Image     pgtype.Text        `json:"image"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

// Plan mirrors the plans table. The workout and diet halves are stored as
// jsonb exactly as the validator produced them.
type Plan struct {
	PlanID      pgtype.UUID        `json:"plan_id"`
	UserID      string             `json:"user_id"`
	Name        string             `json:"name"`
	WorkoutPlan json.RawMessage    `json:"workout_plan"`
	DietPlan    json.RawMessage    `json:"diet_plan"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type SyncUserParams struct {
	ClerkID string
	Email   string
	Name    string
	Image   pgtype.Text
}

type UpdateUserParams struct {
	ClerkID string
	Email   string
	Name    string
	Image   pgtype.Text
}

type CreatePlanParams struct {
	UserID      string
	Name        string
	WorkoutPlan json.RawMessage
	DietPlan    json.RawMessage
	IsActive    bool
}
