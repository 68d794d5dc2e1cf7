/*
Package plan holds the fitness/diet plan domain types and the
normalization step that reshapes untrusted model output into them.
*/
package plan

import (
	"bytes"
	"encoding/json"
	"strings"
)

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// FlexString accepts either a JSON string or a bare scalar (number, bool).
// The intake client sends whatever the user typed, and older clients sent
// numeric age/weight unquoted.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	*s = FlexString(bytes.TrimSpace(b))
	return nil
}

// DayList accepts either a JSON array of day names or a single
// comma-delimited string ("Monday, Wednesday, Friday").
type DayList []string

func (d *DayList) UnmarshalJSON(b []byte) error {
	var days []string
	if err := json.Unmarshal(b, &days); err == nil {
		*d = days
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*d = SplitDays(s)
	return nil
}

// SplitDays breaks a comma-delimited day string into trimmed entries.
func SplitDays(s string) []string {
	parts := strings.Split(s, ",")
	days := make([]string, 0, len(parts))
	for _, p := range parts {
		days = append(days, strings.TrimSpace(p))
	}
	return days
}

// UserAttributes is the transient payload collected by the intake chat.
// It lives only for the duration of one generation request.
type UserAttributes struct {
	UserID              string     `json:"user_id"`
	Age                 FlexString `json:"age"`
	Height              FlexString `json:"height"`
	Weight              FlexString `json:"weight"`
	Injuries            FlexString `json:"injuries"`
	WorkoutDays         DayList    `json:"workout_days"`
	FitnessGoal         FlexString `json:"fitness_goal"`
	FitnessLevel        FlexString `json:"fitness_level"`
	DietaryRestrictions FlexString `json:"dietary_restrictions"`
}

/* =================================================================================
								PLAN STRUCTURES
=================================================================================*/

// Routine is a single exercise entry. Sets and reps are always integers
// after validation; the name is carried over from the model untouched.
type Routine struct {
	Name any `json:"name"`
	Sets int `json:"sets"`
	Reps int `json:"reps"`
}

// Exercise groups the routines for one training day.
type Exercise struct {
	Day      any       `json:"day"`
	Routines []Routine `json:"routines"`
}

// WorkoutPlan is the normalized workout half of a generated plan.
type WorkoutPlan struct {
	Schedule  []any      `json:"schedule"`
	Exercises []Exercise `json:"exercises"`
}

// Meal is one entry of a diet plan. Fields are untyped on purpose: the
// diet validator passes model output through without repair.
type Meal struct {
	Name  any `json:"name"`
	Foods any `json:"foods"`
}

// DietPlan is the diet half of a generated plan.
type DietPlan struct {
	DailyCalories any    `json:"dailyCalories"`
	Meals         []Meal `json:"meals"`
}

// GeneratedPlan is the success payload of one generation request.
type GeneratedPlan struct {
	PlanID      string       `json:"planId"`
	WorkoutPlan *WorkoutPlan `json:"workoutPlan"`
	DietPlan    *DietPlan    `json:"dietPlan"`
}
