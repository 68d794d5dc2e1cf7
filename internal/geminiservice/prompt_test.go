package geminiservice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArbabsLab/GymBab/internal/geminiservice"
)

func TestBuildWorkoutPrompt(t *testing.T) {
	attrs := testAttrs()

	prompt := geminiservice.BuildWorkoutPrompt(attrs)

	require.Contains(t, prompt, "Age: 21")
	require.Contains(t, prompt, "Height: 5'9")
	require.Contains(t, prompt, "Available days for workout: Monday, Friday")
	require.Contains(t, prompt, "Fitness goal: build muscle")
	require.Contains(t, prompt, `"sets": 3`)

	// Pure templating: identical attributes yield identical prompt text.
	require.Equal(t, prompt, geminiservice.BuildWorkoutPrompt(attrs))
}

func TestBuildDietPrompt(t *testing.T) {
	attrs := testAttrs()
	attrs.DietaryRestrictions = "vegan"

	prompt := geminiservice.BuildDietPrompt(attrs)

	require.Contains(t, prompt, "Dietary restrictions: vegan")
	require.Contains(t, prompt, `"dailyCalories": 2000`)
	require.Equal(t, prompt, geminiservice.BuildDietPrompt(attrs))
}

func TestBuildWorkoutPrompt_InsertsAttributesAsIs(t *testing.T) {
	// No validation happens here; a nonsense age lands in the prompt
	// untouched and surfaces (if at all) downstream.
	attrs := testAttrs()
	attrs.Age = "very old"

	require.Contains(t, geminiservice.BuildWorkoutPrompt(attrs), "Age: very old")
}
