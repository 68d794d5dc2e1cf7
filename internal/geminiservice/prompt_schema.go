package geminiservice

import (
	"fmt"
	"strings"

	"github.com/ArbabsLab/GymBab/internal/plan"
)

/* =================================================================================
							GEMINI SCHEMA DEFINITION
	This is the structure that tells Gemini how to format its JSON response
=================================================================================*/

// Schema defines the structure for "Controlled Generation" (Structured
// Output). It maps to the response_schema field of the Gemini API.
type Schema struct {
	// Type defines the data type (e.g., "OBJECT", "ARRAY", "STRING", "INTEGER").
	Type string `json:"type"`

	// Description explains the field's purpose to the AI.
	Description string `json:"description,omitempty"`

	// Properties maps field names to their child schemas (used when Type is "OBJECT").
	Properties map[string]*Schema `json:"properties,omitempty"`

	// Items defines the schema for elements within an array.
	Items *Schema `json:"items,omitempty"`

	// Required lists the field names that the AI MUST include in the response.
	Required []string `json:"required,omitempty"`
}

// WorkoutResponseSchema constrains the workout generation call. Routine
// sets/reps are declared INTEGER; the validator still repairs the cases
// where the model ignores that.
var WorkoutResponseSchema = &Schema{
	Type: "OBJECT",
	Properties: map[string]*Schema{
		"schedule": {
			Type:        "ARRAY",
			Description: "Day names the user trains on, in order",
			Items:       &Schema{Type: "STRING"},
		},
		"exercises": {
			Type: "ARRAY",
			Items: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"day": {Type: "STRING"},
					"routines": {
						Type: "ARRAY",
						Items: &Schema{
							Type: "OBJECT",
							Properties: map[string]*Schema{
								"name": {Type: "STRING"},
								"sets": {Type: "INTEGER"},
								"reps": {Type: "INTEGER"},
							},
							Required: []string{"name", "sets", "reps"},
						},
					},
				},
				Required: []string{"day", "routines"},
			},
		},
	},
	Required: []string{"schedule", "exercises"},
}

// DietResponseSchema constrains the diet generation call.
var DietResponseSchema = &Schema{
	Type: "OBJECT",
	Properties: map[string]*Schema{
		"dailyCalories": {Type: "NUMBER"},
		"meals": {
			Type: "ARRAY",
			Items: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"name": {Type: "STRING"},
					"foods": {
						Type:  "ARRAY",
						Items: &Schema{Type: "STRING"},
					},
				},
				Required: []string{"name", "foods"},
			},
		},
	},
	Required: []string{"dailyCalories", "meals"},
}

/* =================================================================================
						PROMPT ENGINEERING & GUARDRAILS
=================================================================================*/

const workoutPromptTemplate = `You are an experienced fitness coach creating a personalized workout plan based on:
Age: %s
Height: %s
Weight: %s
Injuries or limitations: %s
Available days for workout: %s
Fitness goal: %s
Fitness level: %s

As a professional coach:
- Consider muscle group splits to avoid overtraining the same muscles on consecutive days
- Design exercises that match the fitness level and account for any injuries
- Structure the workouts to specifically target the user's fitness goal

CRITICAL SCHEMA INSTRUCTIONS:
- Your output MUST contain ONLY the fields shown in the example below
- "sets" and "reps" MUST ALWAYS be NUMBERS, never strings
- For example: "sets": 3, "reps": 10
- DO NOT use text like "reps": "As many as possible" or "reps": "To failure"
- Instead use specific numbers like "reps": 12 or "reps": 15
- For cardio, use "sets": 1, "reps": 1 or another appropriate number
- NEVER include strings for numerical fields
- NEVER add extra fields not shown in the example below

Return a JSON object with this exact structure:
{
  "schedule": ["Monday", "Wednesday", "Friday"],
  "exercises": [
    {
      "day": "Monday",
      "routines": [
        {
          "name": "Exercise Name",
          "sets": 3,
          "reps": 10
        }
      ]
    }
  ]
}

DO NOT add any fields that are not in this example. Your response should be a valid JSON object with no additional text.`

const dietPromptTemplate = `You are an experienced nutrition coach creating a personalized diet plan based on:
Age: %s
Height: %s
Weight: %s
Fitness goal: %s
Dietary restrictions: %s

As a professional nutrition coach:
- Calculate appropriate daily calorie intake based on the person's stats and goals
- Create a balanced meal plan with proper macronutrient distribution
- Include a variety of nutrient-dense foods while respecting dietary restrictions
- Consider meal timing around workouts

CRITICAL SCHEMA INSTRUCTIONS:
- Your output MUST contain ONLY the fields shown in the example below
- "dailyCalories" MUST be a NUMBER, not a string
- DO NOT add fields like "supplements", "macros", "notes", or ANYTHING else
- ONLY include the EXACT fields shown in the example below
- Each meal should include ONLY a "name" and "foods" array

Return a JSON object with this exact structure:
{
  "dailyCalories": 2000,
  "meals": [
    {
      "name": "Breakfast",
      "foods": ["Oatmeal with berries", "Greek yogurt", "Black coffee"]
    },
    {
      "name": "Lunch",
      "foods": ["Grilled chicken salad", "Whole grain bread", "Water"]
    }
  ]
}

DO NOT add any fields that are not in this example. Your response should be a valid JSON object with no additional text.`

// BuildWorkoutPrompt renders the workout instruction for one user. Pure
// templating: attribute values are inserted as-is, and identical
// attributes always yield identical prompt text.
func BuildWorkoutPrompt(attrs plan.UserAttributes) string {
	return fmt.Sprintf(workoutPromptTemplate,
		attrs.Age,
		attrs.Height,
		attrs.Weight,
		attrs.Injuries,
		strings.Join(attrs.WorkoutDays, ", "),
		attrs.FitnessGoal,
		attrs.FitnessLevel,
	)
}

// BuildDietPrompt renders the diet instruction for one user.
func BuildDietPrompt(attrs plan.UserAttributes) string {
	return fmt.Sprintf(dietPromptTemplate,
		attrs.Age,
		attrs.Height,
		attrs.Weight,
		attrs.FitnessGoal,
		attrs.DietaryRestrictions,
	)
}
