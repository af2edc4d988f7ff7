package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourname/fitcoach/internal"
)

// SmartGoal rewrites a vague goal phrase into a SMART goal. The raw input is
// scanned against the ordered template table; the first phrase found wins.
// With no match the user is prompted with the five SMART criteria instead.
func (b *Bot) SmartGoal(text string) string {
	lower := strings.ToLower(text)
	for _, tpl := range b.catalog.GoalTemplates {
		if strings.Contains(lower, tpl.Vague) {
			return fmt.Sprintf("🎯 SMART Goal Conversion:\nFrom: '%s'\nTo: '%s'\n📅 Let's break this into weekly milestones!",
				tpl.Vague, tpl.Smart)
		}
	}
	return "🎯 Let's make your goal SMART (Specific, Measurable, Achievable, Relevant, Time-bound)! What exactly do you want to achieve?"
}

// MoodCorrelation looks the canonical mood token up in the activity table and
// logs the mood unconditionally. The lookup is exact, no fuzzy matching: the
// caller supplies the token. Unknown moods get the generic suggestion, which
// is still what gets logged.
func (b *Bot) MoodCorrelation(mood string, profile *internal.UserProfile) string {
	activity, ok := b.catalog.MoodActivities[mood]
	if !ok {
		activity = "balanced workout"
	}

	profile.MoodHistory = append(profile.MoodHistory, internal.MoodEntry{
		Date:              b.today(),
		Mood:              mood,
		SuggestedActivity: activity,
	})

	return fmt.Sprintf("😊 Mood-based suggestion: %s", activity)
}

// Hydration recommends a daily water intake: 8 glasses as the base, two more
// when the turn context suggests high energy (a likely workout day). Timing
// advice follows the clock hour. Read-only; the profile is not consulted.
func (b *Bot) Hydration(ctx internal.ContextRecord) string {
	glasses := 8
	hour := b.clock.Now().Hour()

	var timing string
	switch {
	case hour < 12:
		timing = "Start your day with 2 glasses of water"
	case hour < 18:
		timing = "Afternoon hydration: 1 glass every hour"
	default:
		timing = "Evening: Light hydration, avoid overdrinking before bed"
	}

	note := "Standard daily intake"
	if ctx.EnergyOr(5) >= 7 {
		glasses += 2
		note = "Extra 2 glasses for workout recovery"
	}

	return fmt.Sprintf("💧 Hydration Plan: %d glasses today\n⏰ %s\n🏃 %s", glasses, timing, note)
}

// WeeklyChallenge returns a random challenge. Non-deterministic on purpose:
// every call draws fresh.
func (b *Bot) WeeklyChallenge() string {
	return fmt.Sprintf("🎯 This Week's Challenge: %s\n🏆 Complete it for bonus motivation points!",
		b.pick(b.catalog.Challenges))
}

// Reminder picks the first applicable reminder in a fixed priority order:
// the three anchor hours, then Monday and Friday, then the generic nudge.
func (b *Bot) Reminder(profile *internal.UserProfile) string {
	now := b.clock.Now()
	switch {
	case now.Hour() == 7:
		return "🌅 Morning Reminder: Perfect time for a energizing workout!"
	case now.Hour() == 12:
		return "🥗 Lunch Reminder: How about a healthy meal and a short walk?"
	case now.Hour() == 18:
		return "🌆 Evening Reminder: Wind down with some gentle stretching"
	case now.Weekday() == time.Monday:
		return "💪 Monday Motivation: Start the week strong with your fitness goals!"
	case now.Weekday() == time.Friday:
		return "🎉 Friday Focus: Finish the week with a rewarding workout!"
	default:
		return "⏰ Stay consistent with your fitness routine today!"
	}
}

// Recovery suggests how to recover: full rest when energy is depleted,
// active recovery on a long workout streak, light integration otherwise.
// Read-only on the profile.
func (b *Bot) Recovery(ctx internal.ContextRecord, profile *internal.UserProfile) string {
	switch {
	case ctx.EnergyOr(5) <= 3:
		return "🛌 Recovery Day Suggestions:\n• Gentle stretching (10 min)\n• Foam rolling\n• Light walk\n• Focus on sleep quality"
	case profile.WorkoutStreak >= 5:
		return "⚡ Active Recovery:\n• Yoga flow\n• Swimming\n• Light bike ride\n• Meditation + stretching"
	default:
		return "🔄 Recovery Integration:\n• 5-min cool down after workouts\n• Stretch major muscle groups\n• Stay hydrated"
	}
}
