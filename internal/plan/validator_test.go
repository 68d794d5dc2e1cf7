package plan_test

import (
	"reflect"
	"testing"

	"github.com/ArbabsLab/GymBab/internal/plan"
)

func workoutRaw(routines ...map[string]any) map[string]any {
	items := make([]any, 0, len(routines))
	for _, r := range routines {
		items = append(items, any(r))
	}
	return map[string]any{
		"schedule": []any{"Monday", "Wednesday", "Friday"},
		"exercises": []any{
			map[string]any{"day": "Monday", "routines": items},
		},
	}
}

func TestValidateWorkoutPlan_CoercesRoutineCounts(t *testing.T) {
	tests := []struct {
		name     string
		sets     any
		reps     any
		wantSets int
		wantReps int
	}{
		{"numbers kept", float64(4), float64(8), 4, 8},
		{"numeric strings parsed", "5", "12", 5, 12},
		{"non-numeric string defaults", "a few", "twelve", 1, 10},
		{"missing fields default", nil, nil, 1, 10},
		{"wrong types default", true, []any{}, 1, 10},
		{"padded numeric string parsed", " 3 ", " 15 ", 3, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := workoutRaw(map[string]any{"name": "Bench Press", "sets": tc.sets, "reps": tc.reps})

			p, err := plan.ValidateWorkoutPlan(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			routine := p.Exercises[0].Routines[0]
			if routine.Sets != tc.wantSets {
				t.Errorf("sets = %d, want %d", routine.Sets, tc.wantSets)
			}
			if routine.Reps != tc.wantReps {
				t.Errorf("reps = %d, want %d", routine.Reps, tc.wantReps)
			}
		})
	}
}

func TestValidateWorkoutPlan_NumericStringWithNonNumericPartner(t *testing.T) {
	raw := workoutRaw(map[string]any{"name": "Squat", "sets": "5", "reps": "twelve"})

	p, err := plan.ValidateWorkoutPlan(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	routine := p.Exercises[0].Routines[0]
	if routine.Sets != 5 || routine.Reps != 10 {
		t.Fatalf("got sets=%d reps=%d, want sets=5 reps=10", routine.Sets, routine.Reps)
	}
}

func TestValidateWorkoutPlan_RoundTrip(t *testing.T) {
	raw := map[string]any{
		"schedule": []any{"Tuesday", "Thursday"},
		"exercises": []any{
			map[string]any{
				"day": "Tuesday",
				"routines": []any{
					map[string]any{"name": "Deadlift", "sets": float64(3), "reps": float64(5)},
					map[string]any{"name": "Pull Ups", "sets": float64(3), "reps": float64(8)},
				},
			},
		},
	}

	p, err := plan.ValidateWorkoutPlan(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &plan.WorkoutPlan{
		Schedule: []any{"Tuesday", "Thursday"},
		Exercises: []plan.Exercise{
			{
				Day: "Tuesday",
				Routines: []plan.Routine{
					{Name: "Deadlift", Sets: 3, Reps: 5},
					{Name: "Pull Ups", Sets: 3, Reps: 8},
				},
			},
		},
	}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("round trip changed the plan:\ngot  %#v\nwant %#v", p, want)
	}
}

func TestValidateWorkoutPlan_MissingExercises(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"absent", map[string]any{"schedule": []any{"Monday"}}},
		{"not a list", map[string]any{"exercises": "none"}},
		{"empty object", map[string]any{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := plan.ValidateWorkoutPlan(tc.raw); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidateWorkoutPlan_ScheduleCopiedVerbatim(t *testing.T) {
	// Schedule element types are not validated; whatever the model sent
	// is carried over.
	raw := map[string]any{
		"schedule":  []any{"Monday", float64(2), nil},
		"exercises": []any{},
	}

	p, err := plan.ValidateWorkoutPlan(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p.Schedule, []any{"Monday", float64(2), nil}) {
		t.Fatalf("schedule was modified: %#v", p.Schedule)
	}
}

func TestValidateDietPlan_PassesThroughMalformedFields(t *testing.T) {
	// Deliberate non-guarantee: diet fields receive no coercion or
	// defaulting, unlike workout routines.
	raw := map[string]any{
		"dailyCalories": "two thousand",
		"meals": []any{
			map[string]any{"name": "Breakfast", "foods": "just coffee"},
			map[string]any{"name": float64(2)},
		},
	}

	p, err := plan.ValidateDietPlan(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.DailyCalories != "two thousand" {
		t.Errorf("dailyCalories = %#v, want the malformed value unchanged", p.DailyCalories)
	}
	if p.Meals[0].Foods != "just coffee" {
		t.Errorf("foods = %#v, want the malformed value unchanged", p.Meals[0].Foods)
	}
	if p.Meals[1].Foods != nil {
		t.Errorf("missing foods = %#v, want nil", p.Meals[1].Foods)
	}
}

func TestValidateDietPlan_MissingMeals(t *testing.T) {
	p, err := plan.ValidateDietPlan(map[string]any{"dailyCalories": float64(1800)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DailyCalories != float64(1800) {
		t.Errorf("dailyCalories = %#v, want 1800", p.DailyCalories)
	}
	if p.Meals != nil {
		t.Errorf("meals = %#v, want nil for a missing field", p.Meals)
	}
}
