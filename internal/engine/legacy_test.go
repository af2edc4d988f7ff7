package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyMatcher_Greeting(t *testing.T) {
	m := NewLegacyMatcher()
	reply := m.Respond("Hello!")
	assert.Equal(t, "Hello there! 👋 Welcome to your fitness companion. How can I help you today?", reply)
	assert.Equal(t, "greeting", m.LastIntent())
}

func TestLegacyMatcher_NormalizationStripsPunctuation(t *testing.T) {
	m := NewLegacyMatcher()
	reply := m.Respond("thanks!!!")
	assert.Equal(t, "You're welcome! 🙌 Keep pushing towards your goals!", reply)
}

func TestLegacyMatcher_WorkoutPlanFollowUp(t *testing.T) {
	m := NewLegacyMatcher()

	reply := m.Respond("I need a workout plan")
	assert.Contains(t, reply, "Are you looking for beginners, strength, cardio, or flexibility?")
	assert.Equal(t, "workout_plan", m.LastIntent())

	// One-step context: the beginner follow-up overrides the generic rule.
	reply = m.Respond("beginner please")
	assert.Equal(t, "Great! Start with squats, push-ups, and planks 💪.", reply)
	assert.Equal(t, "beginner_workout", m.LastIntent())

	// The slot moved on, so "beginner" now hits the regular rule table.
	reply = m.Respond("beginner")
	assert.Equal(t, "For beginners, start with squats, push-ups, and planks. 🔥 Consistency is key!", reply)
}

func TestLegacyMatcher_StrengthAndCardioFollowUps(t *testing.T) {
	m := NewLegacyMatcher()
	m.Respond("show me a workout plan")
	assert.Equal(t, "Strength training = squats, deadlifts, and presses. 🏋️", m.Respond("strength"))

	m = NewLegacyMatcher()
	m.Respond("show me a workout plan")
	assert.Equal(t, "Cardio = running, cycling, swimming. ❤️", m.Respond("cardio"))
}

func TestLegacyMatcher_NutritionRules(t *testing.T) {
	m := NewLegacyMatcher()
	assert.Contains(t, m.Respond("healthy meals please"), "Want ideas for breakfast, lunch, dinner, or snacks?")
	assert.Contains(t, m.Respond("breakfast"), "oatmeal with fruits")
	assert.Contains(t, m.Respond("dinner ideas"), "salmon with sweet potatoes")
}

func TestLegacyMatcher_SleepRules(t *testing.T) {
	m := NewLegacyMatcher()
	assert.Contains(t, m.Respond("sleep tips?"), "rest 7–9 hrs")
	assert.Contains(t, m.Respond("how much sleep do I need"), "Keep a routine")
}

func TestLegacyMatcher_HelpAndExit(t *testing.T) {
	m := NewLegacyMatcher()
	assert.Contains(t, m.Respond("help"), "Try typing: 'workout plan'")
	assert.Equal(t, "Goodbye 👋 Stay fit and healthy!", m.Respond("bye"))
}

func TestLegacyMatcher_DefaultResponse(t *testing.T) {
	m := NewLegacyMatcher()
	reply := m.Respond("what is the meaning of life")
	assert.Equal(t, "🤔 I'm not sure about that. Type 'help' to see what I can do!", reply)
	assert.Equal(t, "unknown", m.LastIntent())
}

func TestLegacyMatcher_FirstMatchWins(t *testing.T) {
	m := NewLegacyMatcher()
	// Matches both the greeting and workout rows; greeting is declared first.
	reply := m.Respond("hey, workout time")
	assert.Contains(t, reply, "Welcome to your fitness companion")
}
