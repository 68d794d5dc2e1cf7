package plan

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults substituted when a routine count cannot be coerced.
const (
	defaultSets = 1
	defaultReps = 10
)

// ValidateWorkoutPlan normalizes an already-parsed model response into a
// WorkoutPlan. The model frequently deviates from the requested schema, so
// this is the only defense before the plan reaches storage: the schedule is
// copied verbatim, and for each routine sets/reps are coerced to integers
// with defaults on failure. It fails when `exercises` is not a list.
func ValidateWorkoutPlan(raw map[string]any) (*WorkoutPlan, error) {
	out := &WorkoutPlan{}

	if schedule, ok := raw["schedule"].([]any); ok {
		out.Schedule = schedule
	}

	exercises, ok := raw["exercises"].([]any)
	if !ok {
		return nil, fmt.Errorf("missing or invalid exercises in workout plan")
	}

	for _, item := range exercises {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("missing or invalid exercises in workout plan")
		}

		routinesRaw, ok := entry["routines"].([]any)
		if !ok {
			return nil, fmt.Errorf("missing or invalid routines in workout plan")
		}

		routines := make([]Routine, 0, len(routinesRaw))
		for _, r := range routinesRaw {
			m, _ := r.(map[string]any)
			routines = append(routines, Routine{
				Name: m["name"],
				Sets: coerceCount(m["sets"], defaultSets),
				Reps: coerceCount(m["reps"], defaultReps),
			})
		}

		out.Exercises = append(out.Exercises, Exercise{
			Day:      entry["day"],
			Routines: routines,
		})
	}

	return out, nil
}

// ValidateDietPlan reshapes the diet response without any coercion or
// defaulting: dailyCalories and meal fields pass through unchanged even
// when malformed. The asymmetry with the workout validator is intentional
// and load-bearing; callers downstream rely on missing fields staying
// missing rather than being papered over.
func ValidateDietPlan(raw map[string]any) (*DietPlan, error) {
	out := &DietPlan{DailyCalories: raw["dailyCalories"]}

	if meals, ok := raw["meals"].([]any); ok {
		out.Meals = make([]Meal, 0, len(meals))
		for _, item := range meals {
			m, _ := item.(map[string]any)
			out.Meals = append(out.Meals, Meal{
				Name:  m["name"],
				Foods: m["foods"],
			})
		}
	}

	return out, nil
}

// coerceCount keeps numeric values, integer-parses numeric strings, and
// substitutes def for everything else.
func coerceCount(v any, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && i != 0 {
			return i
		}
	}
	return def
}
