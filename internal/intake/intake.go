/*
Package intake runs the chat-style onboarding that collects user
attributes before plan generation. The flow is a fixed-sequence question
loop: no backward navigation, no validation of the typed answers.
*/
package intake

import (
	"strings"

	"github.com/ArbabsLab/GymBab/internal/plan"
)

// Field pairs an attribute key with the question that collects it.
type Field struct {
	Key      string
	Question string
}

// Fields is the ordered question list, identical to the original chat UI.
var Fields = []Field{
	{Key: "age", Question: "First, how old are you?"},
	{Key: "height", Question: "Thank you! Next, how tall are you? (in ft/in)"},
	{Key: "weight", Question: "What's your weight? (in lbs)"},
	{Key: "injuries", Question: "Do you have any injuries or physical limitations?"},
	{Key: "workout_days", Question: "How many days per week can you work out?"},
	{Key: "fitness_goal", Question: "What's your fitness goal? (e.g. build muscle, lose fat, build endurance)"},
	{Key: "fitness_level", Question: "What's your current fitness level? (beginner, intermediate, advanced)"},
	{Key: "dietary_restrictions", Question: "Any dietary restrictions? (e.g. vegan, lactose intolerant, none)"},
}

const (
	Greeting = "Hello, before I create your personalized fitness plan, I want to know a few things about you! Ready?"
	Closing  = "Thanks! I'm generating your personalized fitness & diet plan now..."
)

// Session is the per-connection state of one intake conversation.
type Session struct {
	userID  string
	answers map[string]string
	index   int
}

func NewSession(userID string) *Session {
	return &Session{
		userID:  userID,
		answers: make(map[string]string, len(Fields)),
	}
}

// FirstQuestion returns the opening question of the flow.
func (s *Session) FirstQuestion() string {
	return Fields[0].Question
}

// Submit records a non-empty answer under the current field and advances.
// Empty input does not advance; the current question is repeated. Once the
// last field is answered, the closing message is returned with done=true.
func (s *Session) Submit(input string) (reply string, done bool) {
	input = strings.TrimSpace(input)
	if s.index >= len(Fields) {
		return Closing, true
	}
	if input == "" {
		return Fields[s.index].Question, false
	}

	s.answers[Fields[s.index].Key] = input
	s.index++

	if s.index < len(Fields) {
		return Fields[s.index].Question, false
	}
	return Closing, true
}

// Done reports whether every field has been answered.
func (s *Session) Done() bool {
	return s.index >= len(Fields)
}

// Request assembles the generation payload from the collected answers,
// splitting a comma-delimited workout_days answer into a day list.
func (s *Session) Request() plan.UserAttributes {
	return plan.UserAttributes{
		UserID:              s.userID,
		Age:                 plan.FlexString(s.answers["age"]),
		Height:              plan.FlexString(s.answers["height"]),
		Weight:              plan.FlexString(s.answers["weight"]),
		Injuries:            plan.FlexString(s.answers["injuries"]),
		WorkoutDays:         plan.SplitDays(s.answers["workout_days"]),
		FitnessGoal:         plan.FlexString(s.answers["fitness_goal"]),
		FitnessLevel:        plan.FlexString(s.answers["fitness_level"]),
		DietaryRestrictions: plan.FlexString(s.answers["dietary_restrictions"]),
	}
}
