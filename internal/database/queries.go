package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx used by Queries; both *pgxpool.Pool and pgx.Tx
// satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries bundles the SQL this service issues.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const syncUser = `
INSERT INTO users (clerk_id, email, name, image)
VALUES ($1, $2, $3, $4)
ON CONFLICT (clerk_id) DO UPDATE
SET email = EXCLUDED.email,
    name = EXCLUDED.name,
    image = EXCLUDED.image,
    updated_at = now()
RETURNING user_id, clerk_id, email, name, image, created_at, updated_at
`

// SyncUser creates the user on first delivery of a Clerk event and updates
// it on redelivery, so the write is idempotent per clerk_id.
func (q *Queries) SyncUser(ctx context.Context, arg SyncUserParams) (User, error) {
	row := q.db.QueryRow(ctx, syncUser, arg.ClerkID, arg.Email, arg.Name, arg.Image)
	var u User
	err := row.Scan(&u.UserID, &u.ClerkID, &u.Email, &u.Name, &u.Image, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const updateUser = `
UPDATE users
SET email = $2, name = $3, image = $4, updated_at = now()
WHERE clerk_id = $1
RETURNING user_id, clerk_id, email, name, image, created_at, updated_at
`

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, updateUser, arg.ClerkID, arg.Email, arg.Name, arg.Image)
	var u User
	err := row.Scan(&u.UserID, &u.ClerkID, &u.Email, &u.Name, &u.Image, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const getUserByClerkID = `
SELECT user_id, clerk_id, email, name, image, created_at, updated_at
FROM users
WHERE clerk_id = $1
`

func (q *Queries) GetUserByClerkID(ctx context.Context, clerkID string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByClerkID, clerkID)
	var u User
	err := row.Scan(&u.UserID, &u.ClerkID, &u.Email, &u.Name, &u.Image, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const createPlan = `
INSERT INTO plans (user_id, name, workout_plan, diet_plan, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING plan_id, user_id, name, workout_plan, diet_plan, is_active, created_at
`

func (q *Queries) CreatePlan(ctx context.Context, arg CreatePlanParams) (Plan, error) {
	row := q.db.QueryRow(ctx, createPlan, arg.UserID, arg.Name, arg.WorkoutPlan, arg.DietPlan, arg.IsActive)
	var p Plan
	err := row.Scan(&p.PlanID, &p.UserID, &p.Name, &p.WorkoutPlan, &p.DietPlan, &p.IsActive, &p.CreatedAt)
	return p, err
}

const getActivePlan = `
SELECT plan_id, user_id, name, workout_plan, diet_plan, is_active, created_at
FROM plans
WHERE user_id = $1 AND is_active = TRUE
ORDER BY created_at DESC
LIMIT 1
`

// GetActivePlan returns the most recent active plan. Plan creation never
// deactivates earlier plans, so "the" active plan is resolved by recency.
func (q *Queries) GetActivePlan(ctx context.Context, userID string) (Plan, error) {
	row := q.db.QueryRow(ctx, getActivePlan, userID)
	var p Plan
	err := row.Scan(&p.PlanID, &p.UserID, &p.Name, &p.WorkoutPlan, &p.DietPlan, &p.IsActive, &p.CreatedAt)
	return p, err
}

const listPlansByUser = `
SELECT plan_id, user_id, name, workout_plan, diet_plan, is_active, created_at
FROM plans
WHERE user_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListPlansByUser(ctx context.Context, userID string) ([]Plan, error) {
	rows, err := q.db.Query(ctx, listPlansByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		var p Plan
		if err := rows.Scan(&p.PlanID, &p.UserID, &p.Name, &p.WorkoutPlan, &p.DietPlan, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}
